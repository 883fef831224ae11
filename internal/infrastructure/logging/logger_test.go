package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextLoggerRoundTrip(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	ctx := SetLoggerInContext(context.Background(), logger)
	ExtractLoggerFromContext(ctx).Debug("stored logger used")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "stored logger used", logs.All()[0].Message)
}

func TestExtractLoggerFromContext_FallsBackToNop(t *testing.T) {
	logger := ExtractLoggerFromContext(context.Background())

	require.NotNil(t, logger)
	// must not panic on a bare context
	logger.Info("ignored")
}

func TestNewLogger_LevelsAndEnvs(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		logger, err := NewLogger(&Config{Level: "info", Env: env})
		require.NoError(t, err, "env %s", env)
		assert.NotNil(t, logger)
	}
}
