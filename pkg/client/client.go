// Package client is the typed Go facade over the blockwise HTTP API.
// Every call carries the persisted session token so the server can scope
// bookmark and completion state to this client
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/blockwise/blockwise/internal/content"
	"github.com/blockwise/blockwise/internal/progress"
	"go.uber.org/zap"
)

// HeaderSessionID request header carrying the opaque session token
const HeaderSessionID = "X-Session-Id"

// APIError non-2xx response surfaced to the caller. No retry is
// attempted, user-facing messaging is the caller's concern
type APIError struct {
	StatusCode int    `json:"code"`
	Title      string `json:"title"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Title)
}

// Health liveness payload
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Client blockwise API client
type Client struct {
	baseURL   string
	http      *http.Client
	logger    *zap.Logger
	sessionID string
	headers   http.Header
}

// Option configure the Client
type Option func(*Client)

// WithHTTPClient replace the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger attach a zap logger, zap.NewNop is used otherwise
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithSessionID use an explicit session token instead of the persisted one
func WithSessionID(sid string) Option {
	return func(c *Client) { c.sessionID = sid }
}

// WithHeader set a default header on every request. Session and
// content-type defaults may be overridden this way but never removed
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// New create a Client for the API at baseURL. Unless WithSessionID is
// given the session token is loaded from (or created in) the default
// per-user storage scope
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		logger:  zap.NewNop(),
		headers: make(http.Header),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sessionID == "" {
		dir, err := DefaultSessionDir()
		if err != nil {
			return nil, fmt.Errorf("resolve session scope: %w", err)
		}
		sid, err := GetOrCreateSessionID(dir)
		if err != nil {
			return nil, err
		}
		c.sessionID = sid
	}
	return c, nil
}

// SessionID the token attached to every request
func (c *Client) SessionID() string {
	return c.sessionID
}

// HealthCheck GET /api/health
func (c *Client) HealthCheck(ctx context.Context) (*Health, error) {
	out := new(Health)
	if err := c.get(ctx, "/api/health", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCategories GET /api/categories
func (c *Client) GetCategories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.get(ctx, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetQuestionsByCategory GET /api/questions/:category
func (c *Client) GetQuestionsByCategory(ctx context.Context, category string) ([]*content.QuestionModel, error) {
	var out []*content.QuestionModel
	if err := c.get(ctx, "/api/questions/"+url.PathEscape(category), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchQuestions GET /api/questions?search=
func (c *Client) SearchQuestions(ctx context.Context, query string) ([]*content.QuestionModel, error) {
	var out []*content.QuestionModel
	params := url.Values{"search": []string{query}}
	if err := c.get(ctx, "/api/questions", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetQuestionsByTag GET /api/questions?tag=
func (c *Client) GetQuestionsByTag(ctx context.Context, tag string) ([]*content.QuestionModel, error) {
	var out []*content.QuestionModel
	params := url.Values{"tag": []string{tag}}
	if err := c.get(ctx, "/api/questions", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTags GET /api/tags
func (c *Client) GetTags(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.get(ctx, "/api/tags", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProjects GET /api/projects
func (c *Client) GetProjects(ctx context.Context) ([]*content.ProjectModel, error) {
	var out []*content.ProjectModel
	if err := c.get(ctx, "/api/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLessons GET /api/lessons/:track
func (c *Client) GetLessons(ctx context.Context, track string) ([]*content.LessonModel, error) {
	var out []*content.LessonModel
	if err := c.get(ctx, "/api/lessons/"+url.PathEscape(track), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBookmarks GET /api/bookmarks, the response is a bare id sequence
func (c *Client) GetBookmarks(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.get(ctx, "/api/bookmarks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ToggleBookmark POST /api/bookmarks/:id
func (c *Client) ToggleBookmark(ctx context.Context, questionID string) (*progress.ToggleResult, error) {
	out := new(progress.ToggleResult)
	if err := c.post(ctx, "/api/bookmarks/"+url.PathEscape(questionID), out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProgress GET /api/progress
func (c *Client) GetProgress(ctx context.Context) (*progress.Summary, error) {
	out := new(progress.Summary)
	if err := c.get(ctx, "/api/progress", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ToggleCompletion POST /api/completions/:id
func (c *Client) ToggleCompletion(ctx context.Context, questionID string) (*progress.ToggleResult, error) {
	out := new(progress.ToggleResult)
	if err := c.post(ctx, "/api/completions/"+url.PathEscape(questionID), out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, params, out)
}

func (c *Client) post(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderSessionID, c.sessionID)
	for key, values := range c.headers {
		req.Header[http.CanonicalHeaderKey(key)] = values
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Request failed", zap.String("url.full", target), zap.Error(err))
		return fmt.Errorf("upstream unavailable: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{StatusCode: res.StatusCode, Title: http.StatusText(res.StatusCode)}
		if body, err := ioutil.ReadAll(io.LimitReader(res.Body, 1<<16)); err == nil {
			json.Unmarshal(body, apiErr)
		}
		apiErr.StatusCode = res.StatusCode
		c.logger.Error("API error", zap.String("url.full", target),
			zap.Int("http.response.status_code", res.StatusCode),
		)
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
