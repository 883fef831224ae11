package content

import (
	"context"
	"errors"
)

// fixed category enumeration, corpus files may not introduce new buckets
const (
	CategoryBasic        = "basic"
	CategoryIntermediate = "intermediate"
	CategoryAdvanced     = "advanced"
	CategoryProjects     = "projects"
	CategoryRust         = "rust"
)

// ErrCategoryNotFound requested category is not part of the corpus
var ErrCategoryNotFound = errors.New("no such category")

// ErrTrackNotFound requested lesson track is not part of the corpus
var ErrTrackNotFound = errors.New("no such lesson track")

// QuestionModel a single Q/A entry. Immutable after corpus load
type QuestionModel struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Tags     []string `json:"tags" yaml:"tags"`
	Answer   string   `json:"answer" yaml:"answer"`
	Category string   `json:"category" yaml:"-"`
}

// ProjectModel descriptor record for a showcased ecosystem project
type ProjectModel struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url" yaml:"url"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// LessonModel descriptor record for a language-track lesson module
type LessonModel struct {
	ID      string `json:"id" yaml:"id"`
	Track   string `json:"track" yaml:"-"`
	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary" yaml:"summary"`
	Order   int    `json:"order" yaml:"order"`
}

// ContentRepository read-only corpus access
type ContentRepository interface {
	Categories() []string
	QuestionsByCategory(category string) ([]*QuestionModel, error)
	Search(query string) []*QuestionModel
	QuestionsByTag(tag string) []*QuestionModel
	Tags() []string
	Projects() []*ProjectModel
	Lessons(track string) ([]*LessonModel, error)
}

// ContentUseCase application service over the corpus
type ContentUseCase interface {
	GetCategories(ctx context.Context) ([]string, error)
	GetQuestionsByCategory(ctx context.Context, category string) ([]*QuestionModel, error)
	SearchQuestions(ctx context.Context, query string) ([]*QuestionModel, error)
	GetQuestionsByTag(ctx context.Context, tag string) ([]*QuestionModel, error)
	GetTags(ctx context.Context) ([]string, error)
	GetProjects(ctx context.Context) ([]*ProjectModel, error)
	GetLessons(ctx context.Context, track string) ([]*LessonModel, error)
}
