package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blockwise/blockwise/internal/content"
	infra "github.com/blockwise/blockwise/internal/infrastructure"
	"github.com/blockwise/blockwise/internal/progress"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSessionID = "k3x9PzWq-lm2abc45"

func newTestApp(t *testing.T) *echo.Echo {
	t.Helper()
	store, err := content.LoadStore("testdata/corpus.yaml")
	require.NoError(t, err)

	option := new(infra.AppConfig)
	option.Env = infra.EnvProduction

	repo := progress.NewMemoryRepository()
	return newApp(option,
		content.NewContentUseCase(store),
		progress.NewProgressUseCase(repo),
		repo,
		zap.NewNop(),
	)
}

func request(t *testing.T, app *echo.Echo, method, target, sessionID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if sessionID != "" {
		req.Header.Set("X-Session-Id", sessionID)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)

	rec := request(t, app, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload HealthPayload
	decode(t, rec, &payload)
	assert.Equal(t, "ok", payload.Status)
	_, err := time.Parse(time.RFC3339, payload.Timestamp)
	assert.NoError(t, err)
}

func TestGetCategories(t *testing.T) {
	app := newTestApp(t)

	rec := request(t, app, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []string
	decode(t, rec, &categories)
	assert.Equal(t, []string{"basic", "intermediate", "projects", "rust"}, categories)
}

func TestGetQuestionsByCategory_ReturnsFixtureIntact(t *testing.T) {
	app := newTestApp(t)

	rec := request(t, app, http.MethodGet, "/api/questions/basic", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var questions []*content.QuestionModel
	decode(t, rec, &questions)
	require.Len(t, questions, 2)
	assert.Equal(t, "What is a blockchain?", questions[0].Title)
	assert.Equal(t, []string{"fundamentals", "consensus"}, questions[0].Tags)
	assert.Contains(t, questions[0].Answer, "<strong>blockchain</strong>")
	assert.Equal(t, "What is a wallet?", questions[1].Title)
	assert.Equal(t, []string{"fundamentals", "security"}, questions[1].Tags)
}

func TestGetQuestionsByCategory_UnknownIs404(t *testing.T) {
	app := newTestApp(t)

	rec := request(t, app, http.MethodGet, "/api/questions/expert", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body RESTStandardError
	decode(t, rec, &body)
	assert.Equal(t, http.StatusNotFound, body.Code)
}

func TestQueryQuestions_SearchIsCaseInsensitive(t *testing.T) {
	app := newTestApp(t)

	upper := request(t, app, http.MethodGet, "/api/questions?search=BLOCKCHAIN", "")
	lower := request(t, app, http.MethodGet, "/api/questions?search=blockchain", "")
	require.Equal(t, http.StatusOK, upper.Code)
	require.Equal(t, http.StatusOK, lower.Code)
	assert.JSONEq(t, lower.Body.String(), upper.Body.String())

	var questions []*content.QuestionModel
	decode(t, lower, &questions)
	require.Len(t, questions, 1)
	assert.Equal(t, "what-is-a-blockchain", questions[0].ID)
}

func TestQueryQuestions_TagFilter(t *testing.T) {
	app := newTestApp(t)

	rec := request(t, app, http.MethodGet, "/api/questions?tag=fundamentals", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var questions []*content.QuestionModel
	decode(t, rec, &questions)
	require.Len(t, questions, 2)
	assert.Equal(t, "what-is-a-blockchain", questions[0].ID)
	assert.Equal(t, "what-is-a-wallet", questions[1].ID)
}

// tag wins over search when both are supplied, this is a documented
// design choice rather than an accident of routing
func TestQueryQuestions_TagTakesPrecedenceOverSearch(t *testing.T) {
	app := newTestApp(t)

	rec := request(t, app, http.MethodGet, "/api/questions?search=blockchain&tag=solana", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var questions []*content.QuestionModel
	decode(t, rec, &questions)
	require.Len(t, questions, 1)
	assert.Equal(t, "why-rust", questions[0].ID)
}

func TestQueryQuestions_NoParamsIs400(t *testing.T) {
	app := newTestApp(t)

	rec := request(t, app, http.MethodGet, "/api/questions", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTags(t *testing.T) {
	app := newTestApp(t)

	rec := request(t, app, http.MethodGet, "/api/tags", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var tags []string
	decode(t, rec, &tags)
	assert.Equal(t, []string{"fundamentals", "consensus", "security", "contracts", "rust", "solana"}, tags)
}

func TestGetProjects(t *testing.T) {
	app := newTestApp(t)

	rec := request(t, app, http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var projects []*content.ProjectModel
	decode(t, rec, &projects)
	require.Len(t, projects, 1)
	assert.Equal(t, "uniswap", projects[0].ID)
}

func TestGetLessons(t *testing.T) {
	app := newTestApp(t)

	rec := request(t, app, http.MethodGet, "/api/lessons/rust", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var lessons []*content.LessonModel
	decode(t, rec, &lessons)
	require.Len(t, lessons, 2)
	assert.Equal(t, "rust-ownership", lessons[0].ID)

	rec = request(t, app, http.MethodGet, "/api/lessons/haskell", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetBookmarks_AnonymousIsEmptyNotError(t *testing.T) {
	app := newTestApp(t)

	rec := request(t, app, http.MethodGet, "/api/bookmarks", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// a bare array, not the summary object /progress returns
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetBookmarks_ReturnsIDSequence(t *testing.T) {
	app := newTestApp(t)

	rec := request(t, app, http.MethodPost, "/api/bookmarks/what-is-a-wallet", testSessionID)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = request(t, app, http.MethodPost, "/api/bookmarks/what-is-a-blockchain", testSessionID)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = request(t, app, http.MethodGet, "/api/bookmarks", testSessionID)
	require.Equal(t, http.StatusOK, rec.Code)

	var ids []string
	decode(t, rec, &ids)
	assert.Equal(t, []string{"what-is-a-blockchain", "what-is-a-wallet"}, ids)
}

func TestToggleBookmark_AnonymousIs400(t *testing.T) {
	app := newTestApp(t)

	rec := request(t, app, http.MethodPost, "/api/bookmarks/what-is-a-wallet", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleBookmark_MalformedSessionIs400(t *testing.T) {
	app := newTestApp(t)

	rec := request(t, app, http.MethodPost, "/api/bookmarks/what-is-a-wallet", "bad token with spaces")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleBookmark_DoubleToggleRestoresState(t *testing.T) {
	app := newTestApp(t)

	rec := request(t, app, http.MethodPost, "/api/bookmarks/what-is-a-wallet", testSessionID)
	require.Equal(t, http.StatusOK, rec.Code)

	var result progress.ToggleResult
	decode(t, rec, &result)
	assert.True(t, result.Active)
	assert.Equal(t, []string{"what-is-a-wallet"}, result.IDs)

	rec = request(t, app, http.MethodPost, "/api/bookmarks/what-is-a-wallet", testSessionID)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &result)
	assert.False(t, result.Active)
	assert.Equal(t, 0, result.Count)

	rec = request(t, app, http.MethodGet, "/api/bookmarks", testSessionID)
	var ids []string
	decode(t, rec, &ids)
	assert.Empty(t, ids)
}

func TestToggleCompletion_TracksUnknownQuestionIDs(t *testing.T) {
	app := newTestApp(t)

	// ids are deliberately not validated against the corpus
	rec := request(t, app, http.MethodPost, "/api/completions/no-such-question", testSessionID)
	require.Equal(t, http.StatusOK, rec.Code)

	var result progress.ToggleResult
	decode(t, rec, &result)
	assert.True(t, result.Active)

	rec = request(t, app, http.MethodGet, "/api/progress", testSessionID)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary progress.Summary
	decode(t, rec, &summary)
	assert.Equal(t, []string{"no-such-question"}, summary.IDs)
	assert.Equal(t, 1, summary.Count)
}

func TestProgress_SessionsAreIsolated(t *testing.T) {
	app := newTestApp(t)

	rec := request(t, app, http.MethodPost, "/api/completions/q1", testSessionID)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = request(t, app, http.MethodGet, "/api/progress", "another-session-0001")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary progress.Summary
	decode(t, rec, &summary)
	assert.Equal(t, 0, summary.Count)
}

func TestCORSHeadersPresent(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set(echo.HeaderOrigin, "http://example.com")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestLivenessProbe(t *testing.T) {
	app := newTestApp(t)

	rec := request(t, app, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
