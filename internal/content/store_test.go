package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := LoadStore("testdata/corpus.yaml")
	require.NoError(t, err)
	return store
}

func TestLoadStore_CategoriesKeepFileOrder(t *testing.T) {
	store := loadTestStore(t)

	assert.Equal(t, []string{"basic", "intermediate", "projects", "rust"}, store.Categories())
}

func TestLoadStore_RejectsUnknownCategory(t *testing.T) {
	_, err := newStore(&corpusFile{
		Categories: []*corpusCategory{{Name: "expert"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expert")
}

func TestLoadStore_RejectsDuplicateTagOnQuestion(t *testing.T) {
	_, err := newStore(&corpusFile{
		Categories: []*corpusCategory{{
			Name: CategoryBasic,
			Questions: []*QuestionModel{
				{Title: "What is gas?", Tags: []string{"fees", "fees"}, Answer: "Execution cost."},
			},
		}},
	})

	require.Error(t, err)
}

func TestQuestionsByCategory(t *testing.T) {
	store := loadTestStore(t)

	questions, err := store.QuestionsByCategory(CategoryBasic)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "What is a blockchain?", questions[0].Title)
	assert.Equal(t, "what-is-a-blockchain", questions[0].ID)
	assert.Equal(t, CategoryBasic, questions[0].Category)
	assert.Equal(t, []string{"fundamentals", "security"}, questions[1].Tags)
}

func TestQuestionsByCategory_EmptyBucket(t *testing.T) {
	store := loadTestStore(t)

	questions, err := store.QuestionsByCategory(CategoryProjects)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestQuestionsByCategory_Unknown(t *testing.T) {
	store := loadTestStore(t)

	_, err := store.QuestionsByCategory("expert")
	assert.Equal(t, ErrCategoryNotFound, err)
}

func TestQuestionsByCategory_ExplicitIDWins(t *testing.T) {
	store := loadTestStore(t)

	questions, err := store.QuestionsByCategory(CategoryRust)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "why-rust", questions[0].ID)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	store := loadTestStore(t)

	upper := store.Search("BLOCKCHAIN")
	lower := store.Search("blockchain")

	require.Len(t, lower, 1)
	assert.Equal(t, lower, upper)
	assert.Equal(t, "What is a blockchain?", lower[0].Title)
}

func TestSearch_MatchesAnswerText(t *testing.T) {
	store := loadTestStore(t)

	result := store.Search("garbage collector")
	require.Len(t, result, 1)
	assert.Equal(t, "why-rust", result[0].ID)
}

func TestSearch_NoMatch(t *testing.T) {
	store := loadTestStore(t)

	assert.Empty(t, store.Search("quantum resistant"))
}

func TestQuestionsByTag_ExactMembership(t *testing.T) {
	store := loadTestStore(t)

	// both basic questions carry "fundamentals", nothing else does
	result := store.QuestionsByTag("fundamentals")
	require.Len(t, result, 2)
	assert.Equal(t, "what-is-a-blockchain", result[0].ID)
	assert.Equal(t, "what-is-a-wallet", result[1].ID)

	assert.Empty(t, store.QuestionsByTag("funda"))
	assert.Empty(t, store.QuestionsByTag("nonexistent"))
}

func TestTags_DistinctFirstSeenOrder(t *testing.T) {
	store := loadTestStore(t)

	assert.Equal(t, []string{"fundamentals", "consensus", "security", "contracts", "rust", "solana"}, store.Tags())
}

func TestProjects(t *testing.T) {
	store := loadTestStore(t)

	projects := store.Projects()
	require.Len(t, projects, 1)
	assert.Equal(t, "uniswap", projects[0].ID)
}

func TestLessons_SortedByOrder(t *testing.T) {
	store := loadTestStore(t)

	lessons, err := store.Lessons("rust")
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "rust-ownership", lessons[0].ID)
	assert.Equal(t, "rust-anchor", lessons[1].ID)
	assert.Equal(t, "rust", lessons[0].Track)
}

func TestLessons_UnknownTrack(t *testing.T) {
	store := loadTestStore(t)

	_, err := store.Lessons("haskell")
	assert.Equal(t, ErrTrackNotFound, err)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "what-is-a-blockchain", Slugify("What is a blockchain?"))
	assert.Equal(t, "how-does-proof-of-stake-differ-from-proof-of-work", Slugify("How does proof of stake differ from proof of work?"))
	assert.Equal(t, "erc-20", Slugify("  ERC-20  "))
}
