package main

import (
	"log"

	"github.com/blockwise/blockwise/internal/content"
	infra "github.com/blockwise/blockwise/internal/infrastructure"
	"github.com/blockwise/blockwise/internal/infrastructure/driver"
	"github.com/blockwise/blockwise/internal/infrastructure/logging"
	ihttp "github.com/blockwise/blockwise/internal/interfaces/http"
	"github.com/blockwise/blockwise/internal/progress"
	"go.uber.org/zap"
)

func main() {
	log.SetFlags(log.Lshortfile | log.Ldate | log.Ltime)
	option, err := infra.InitConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewLogger(&logging.Config{
		FilePath: option.Logging.FilePath,
		Level:    option.Logging.Level,
		AppID:    option.AppID,
		Env:      option.Env,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %s\n", err)
	}
	logger = logger.With(
		zap.String("service.id", option.AppID),
	)
	defer logger.Sync()

	ContentStore, err := content.LoadStore(option.Content.CorpusPath)
	if err != nil {
		log.Fatalf("Failed to load content corpus: %s\n", err)
	}
	logger.Debug("Loaded content corpus", zap.String("content.corpus_path", option.Content.CorpusPath),
		zap.Strings("content.categories", ContentStore.Categories()),
	)

	var ProgressRepo progress.ProgressRepository
	switch option.Progress.Store {
	case infra.ProgressStoreRedis:
		rdb := driver.NewRedisClient(option.KVStore.Host, option.KVStore.Port, option.KVStore.Password)
		if err := rdb.Ping(); err != nil {
			log.Fatalf("Failed to reach kv store: %s\n", err)
		}
		ProgressRepo = progress.NewRedisRepository(rdb)
		logger.Debug("Create redis progress store", zap.String("kv.host", option.KVStore.Host),
			zap.Int("kv.port", option.KVStore.Port),
		)
	default:
		ProgressRepo = progress.NewMemoryRepository()
	}

	ContentUseCase := content.NewContentUseCase(ContentStore)
	ProgressUseCase := progress.NewProgressUseCase(ProgressRepo)

	ihttp.Serve(option, ContentUseCase, ProgressUseCase, ProgressRepo, logger)
}
