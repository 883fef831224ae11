package progress

import (
	"context"
	"sync"
	"testing"

	"github.com/blockwise/blockwise/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSession = session.ID("k3x9PzWq-lm2abc45")
	otherSess   = session.ID("zz00AAbb-lm2abc46")
)

func TestMemoryRepository_EmptySessionReadsEmpty(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	bookmarks, err := repo.Bookmarks(ctx, testSession)
	require.NoError(t, err)
	assert.Empty(t, bookmarks)

	completions, err := repo.Completions(ctx, testSession)
	require.NoError(t, err)
	assert.Empty(t, completions)
}

func TestMemoryRepository_ToggleAddsThenRemoves(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	result, err := repo.ToggleBookmark(ctx, testSession, "what-is-a-wallet")
	require.NoError(t, err)
	assert.True(t, result.Active)
	assert.Equal(t, []string{"what-is-a-wallet"}, result.IDs)
	assert.Equal(t, 1, result.Count)

	// toggle is its own inverse
	result, err = repo.ToggleBookmark(ctx, testSession, "what-is-a-wallet")
	require.NoError(t, err)
	assert.False(t, result.Active)
	assert.Empty(t, result.IDs)
	assert.Equal(t, 0, result.Count)
}

func TestMemoryRepository_SetsAreIndependent(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.ToggleBookmark(ctx, testSession, "q1")
	require.NoError(t, err)
	_, err = repo.ToggleCompletion(ctx, testSession, "q2")
	require.NoError(t, err)

	bookmarks, _ := repo.Bookmarks(ctx, testSession)
	completions, _ := repo.Completions(ctx, testSession)
	assert.Equal(t, []string{"q1"}, bookmarks)
	assert.Equal(t, []string{"q2"}, completions)
}

func TestMemoryRepository_SessionsAreIndependent(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.ToggleBookmark(ctx, testSession, "q1")
	require.NoError(t, err)

	bookmarks, err := repo.Bookmarks(ctx, otherSess)
	require.NoError(t, err)
	assert.Empty(t, bookmarks)
}

func TestMemoryRepository_UnknownQuestionIDsAreTracked(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	// no foreign-key check against the corpus, by contract
	result, err := repo.ToggleBookmark(ctx, testSession, "no-such-question")
	require.NoError(t, err)
	assert.True(t, result.Active)
}

func TestMemoryRepository_ConcurrentTogglesNeverLoseUpdates(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	const n = 101 // odd, final state must be active
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.ToggleCompletion(ctx, testSession, "q1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	completions, err := repo.Completions(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, []string{"q1"}, completions)

	_, err = repo.ToggleCompletion(ctx, testSession, "q1")
	require.NoError(t, err)
	completions, _ = repo.Completions(ctx, testSession)
	assert.Empty(t, completions)
}
