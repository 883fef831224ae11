package progress

import (
	"context"
	"errors"

	"github.com/blockwise/blockwise/internal/session"
)

// ErrAnonymousToggle mutation attempted without a session token
var ErrAnonymousToggle = errors.New("a session id is required to toggle bookmarks or completions")

// ToggleResult membership state after a toggle
type ToggleResult struct {
	ID     string   `json:"id"`
	Active bool     `json:"active"`
	IDs    []string `json:"ids"`
	Count  int      `json:"count"`
}

// Summary one session's set plus derived count
type Summary struct {
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}

// ProgressRepository session-scoped bookmark and completion sets.
// Toggle implementations must be atomic read-modify-write per set so
// concurrent toggles never lose updates. Question ids are not validated
// against the content corpus on purpose: unknown ids are tracked as-is
type ProgressRepository interface {
	Bookmarks(ctx context.Context, sid session.ID) ([]string, error)
	ToggleBookmark(ctx context.Context, sid session.ID, questionID string) (*ToggleResult, error)
	Completions(ctx context.Context, sid session.ID) ([]string, error)
	ToggleCompletion(ctx context.Context, sid session.ID, questionID string) (*ToggleResult, error)
	Ping() error
}

// ProgressUseCase application service over the per-session sets.
// Bookmarks read back as a bare id sequence, completions as a Summary,
// the two response shapes are part of the external contract
type ProgressUseCase interface {
	GetBookmarks(ctx context.Context, sid session.ID) ([]string, error)
	ToggleBookmark(ctx context.Context, sid session.ID, questionID string) (*ToggleResult, error)
	GetProgress(ctx context.Context, sid session.ID) (*Summary, error)
	ToggleCompletion(ctx context.Context, sid session.ID, questionID string) (*ToggleResult, error)
}
