package progress

import (
	"context"
	"fmt"
	"sort"

	"github.com/blockwise/blockwise/internal/infrastructure/driver"
	"github.com/blockwise/blockwise/internal/session"
)

// RedisRepository ProgressRepository on redis sets, one set per
// (session, kind) pair. Toggle atomicity comes from the driver's
// server-side script
type RedisRepository struct {
	Conn driver.KeyValueDB
}

var _ ProgressRepository = &RedisRepository{}

// NewRedisRepository ...
func NewRedisRepository(Conn driver.KeyValueDB) *RedisRepository {
	return &RedisRepository{
		Conn: Conn,
	}
}

func redisKey(sid session.ID, kind string) string {
	return fmt.Sprintf("progress:%s:%s", sid, kind)
}

// Bookmarks implement ProgressRepository
func (repo *RedisRepository) Bookmarks(ctx context.Context, sid session.ID) ([]string, error) {
	return repo.members(ctx, sid, kindBookmarks)
}

// ToggleBookmark implement ProgressRepository
func (repo *RedisRepository) ToggleBookmark(ctx context.Context, sid session.ID, questionID string) (*ToggleResult, error) {
	return repo.toggle(ctx, sid, kindBookmarks, questionID)
}

// Completions implement ProgressRepository
func (repo *RedisRepository) Completions(ctx context.Context, sid session.ID) ([]string, error) {
	return repo.members(ctx, sid, kindCompletions)
}

// ToggleCompletion implement ProgressRepository
func (repo *RedisRepository) ToggleCompletion(ctx context.Context, sid session.ID, questionID string) (*ToggleResult, error) {
	return repo.toggle(ctx, sid, kindCompletions, questionID)
}

// Ping implement ProgressRepository
func (repo *RedisRepository) Ping() error {
	return repo.Conn.Ping()
}

func (repo *RedisRepository) members(ctx context.Context, sid session.ID, kind string) ([]string, error) {
	ids, err := repo.Conn.SetMembers(ctx, redisKey(sid, kind))
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

func (repo *RedisRepository) toggle(ctx context.Context, sid session.ID, kind string, questionID string) (*ToggleResult, error) {
	key := redisKey(sid, kind)
	active, err := repo.Conn.SetToggle(ctx, key, questionID)
	if err != nil {
		return nil, err
	}
	ids, err := repo.Conn.SetMembers(ctx, key)
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return &ToggleResult{
		ID:     questionID,
		Active: active,
		IDs:    ids,
		Count:  len(ids),
	}, nil
}
