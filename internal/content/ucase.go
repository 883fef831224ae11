package content

import (
	"context"

	"go.elastic.co/apm"
)

// ContentUseCaseImpl ...
type ContentUseCaseImpl struct {
	ContentRepository ContentRepository
}

var _ ContentUseCase = &ContentUseCaseImpl{}

// NewContentUseCase ...
func NewContentUseCase(
	ContentRepository ContentRepository,
) *ContentUseCaseImpl {
	return &ContentUseCaseImpl{ContentRepository}
}

// GetCategories list corpus categories in file order
func (cu *ContentUseCaseImpl) GetCategories(ctx context.Context) ([]string, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ContentUseCaseImpl.GetCategories", "service")
	defer apmSpan.End()

	return cu.ContentRepository.Categories(), nil
}

// GetQuestionsByCategory all questions in one category
func (cu *ContentUseCaseImpl) GetQuestionsByCategory(ctx context.Context, category string) ([]*QuestionModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ContentUseCaseImpl.GetQuestionsByCategory", "service")
	defer apmSpan.End()

	return cu.ContentRepository.QuestionsByCategory(category)
}

// SearchQuestions case-insensitive substring search over title and answer
func (cu *ContentUseCaseImpl) SearchQuestions(ctx context.Context, query string) ([]*QuestionModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ContentUseCaseImpl.SearchQuestions", "service")
	defer apmSpan.End()

	return cu.ContentRepository.Search(query), nil
}

// GetQuestionsByTag questions whose tag set contains the given tag
func (cu *ContentUseCaseImpl) GetQuestionsByTag(ctx context.Context, tag string) ([]*QuestionModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ContentUseCaseImpl.GetQuestionsByTag", "service")
	defer apmSpan.End()

	return cu.ContentRepository.QuestionsByTag(tag), nil
}

// GetTags distinct tags across all questions
func (cu *ContentUseCaseImpl) GetTags(ctx context.Context) ([]string, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ContentUseCaseImpl.GetTags", "service")
	defer apmSpan.End()

	return cu.ContentRepository.Tags(), nil
}

// GetProjects all project descriptors
func (cu *ContentUseCaseImpl) GetProjects(ctx context.Context) ([]*ProjectModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ContentUseCaseImpl.GetProjects", "service")
	defer apmSpan.End()

	return cu.ContentRepository.Projects(), nil
}

// GetLessons lesson modules of one language track
func (cu *ContentUseCaseImpl) GetLessons(ctx context.Context, track string) ([]*LessonModel, error) {
	apmSpan, _ := apm.StartSpan(ctx, "ContentUseCaseImpl.GetLessons", "service")
	defer apmSpan.End()

	return cu.ContentRepository.Lessons(track)
}
