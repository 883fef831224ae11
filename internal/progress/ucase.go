package progress

import (
	"context"

	"github.com/blockwise/blockwise/internal/session"
	"go.elastic.co/apm"
)

// ProgressUseCaseImpl ...
type ProgressUseCaseImpl struct {
	ProgressRepository ProgressRepository
}

var _ ProgressUseCase = &ProgressUseCaseImpl{}

// NewProgressUseCase ...
func NewProgressUseCase(
	ProgressRepository ProgressRepository,
) *ProgressUseCaseImpl {
	return &ProgressUseCaseImpl{
		ProgressRepository: ProgressRepository,
	}
}

// GetBookmarks bookmark id sequence for the session. Anonymous sessions
// read an empty set, never an error
func (pu *ProgressUseCaseImpl) GetBookmarks(ctx context.Context, sid session.ID) ([]string, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ProgressUseCaseImpl.GetBookmarks", "service")
	defer apmSpan.End()

	if sid.IsAnonymous() {
		return []string{}, nil
	}
	ids, err := pu.ProgressRepository.Bookmarks(ctx, sid)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// ToggleBookmark flip bookmark membership for one question id
func (pu *ProgressUseCaseImpl) ToggleBookmark(ctx context.Context, sid session.ID, questionID string) (*ToggleResult, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ProgressUseCaseImpl.ToggleBookmark", "service")
	defer apmSpan.End()

	if sid.IsAnonymous() {
		return nil, ErrAnonymousToggle
	}
	return pu.ProgressRepository.ToggleBookmark(ctx, sid, questionID)
}

// GetProgress completion summary for the session
func (pu *ProgressUseCaseImpl) GetProgress(ctx context.Context, sid session.ID) (*Summary, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ProgressUseCaseImpl.GetProgress", "service")
	defer apmSpan.End()

	if sid.IsAnonymous() {
		return &Summary{IDs: []string{}}, nil
	}
	ids, err := pu.ProgressRepository.Completions(ctx, sid)
	if err != nil {
		return nil, err
	}
	return &Summary{IDs: ids, Count: len(ids)}, nil
}

// ToggleCompletion flip completion membership for one question id
func (pu *ProgressUseCaseImpl) ToggleCompletion(ctx context.Context, sid session.ID, questionID string) (*ToggleResult, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ProgressUseCaseImpl.ToggleCompletion", "service")
	defer apmSpan.End()

	if sid.IsAnonymous() {
		return nil, ErrAnonymousToggle
	}
	return pu.ProgressRepository.ToggleCompletion(ctx, sid, questionID)
}
