package progress

import (
	"context"
	"sort"
	"sync"

	"github.com/blockwise/blockwise/internal/session"
)

const (
	kindBookmarks   = "bookmarks"
	kindCompletions = "completions"
)

// MemoryRepository process-local ProgressRepository. A single mutex guards
// every set, which keeps toggles atomic at the scale this service runs at
type MemoryRepository struct {
	mu       sync.Mutex
	sessions map[session.ID]map[string]map[string]bool
}

var _ ProgressRepository = &MemoryRepository{}

// NewMemoryRepository create an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sessions: make(map[session.ID]map[string]map[string]bool),
	}
}

// Bookmarks implement ProgressRepository
func (repo *MemoryRepository) Bookmarks(ctx context.Context, sid session.ID) ([]string, error) {
	return repo.members(sid, kindBookmarks), nil
}

// ToggleBookmark implement ProgressRepository
func (repo *MemoryRepository) ToggleBookmark(ctx context.Context, sid session.ID, questionID string) (*ToggleResult, error) {
	return repo.toggle(sid, kindBookmarks, questionID), nil
}

// Completions implement ProgressRepository
func (repo *MemoryRepository) Completions(ctx context.Context, sid session.ID) ([]string, error) {
	return repo.members(sid, kindCompletions), nil
}

// ToggleCompletion implement ProgressRepository
func (repo *MemoryRepository) ToggleCompletion(ctx context.Context, sid session.ID, questionID string) (*ToggleResult, error) {
	return repo.toggle(sid, kindCompletions, questionID), nil
}

// Ping implement ProgressRepository
func (repo *MemoryRepository) Ping() error {
	return nil
}

func (repo *MemoryRepository) members(sid session.ID, kind string) []string {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return sortedIDs(repo.sessions[sid][kind])
}

func (repo *MemoryRepository) toggle(sid session.ID, kind string, questionID string) *ToggleResult {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	kinds, ok := repo.sessions[sid]
	if !ok {
		kinds = make(map[string]map[string]bool)
		repo.sessions[sid] = kinds
	}
	set, ok := kinds[kind]
	if !ok {
		set = make(map[string]bool)
		kinds[kind] = set
	}

	active := !set[questionID]
	if active {
		set[questionID] = true
	} else {
		delete(set, questionID)
	}
	ids := sortedIDs(set)
	return &ToggleResult{
		ID:     questionID,
		Active: active,
		IDs:    ids,
		Count:  len(ids),
	}
}

func sortedIDs(set map[string]bool) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
