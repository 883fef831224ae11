package http

import (
	"errors"
	"net/http"

	"github.com/blockwise/blockwise/internal/content"
	"github.com/blockwise/blockwise/internal/infrastructure/logging"
	"github.com/blockwise/blockwise/internal/infrastructure/validate"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ContentHandler struct {
	contentUseCase content.ContentUseCase
	validator      validate.Validator
}

func NewContentHandler(ContentUseCase content.ContentUseCase, Validator validate.Validator) *ContentHandler {
	handler := &ContentHandler{ContentUseCase, Validator}
	return handler
}

// HandleGetCategories GET /categories
func (ch *ContentHandler) HandleGetCategories(c echo.Context) (err error) {
	categories, err := ch.contentUseCase.GetCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// HandleGetQuestionsByCategory GET /questions/:category
func (ch *ContentHandler) HandleGetQuestionsByCategory(c echo.Context) (err error) {
	category := c.Param("category")

	questions, err := ch.contentUseCase.GetQuestionsByCategory(c.Request().Context(), category)
	if err != nil {
		if errors.Is(err, content.ErrCategoryNotFound) {
			logging.ExtractLoggerFromContext(c.Request().Context()).Debug("Unknown category requested",
				zap.String("content.category", category),
			)
			return c.JSON(http.StatusNotFound, NewRESTStandardError(http.StatusNotFound, err.Error()))
		}
		return err
	}
	return c.JSON(http.StatusOK, emptyableQuestions(questions))
}

// HandleQueryQuestions GET /questions?search=&tag=
//
// tag takes precedence over search when both are present
func (ch *ContentHandler) HandleQueryQuestions(c echo.Context) (err error) {
	search := c.QueryParam("search")
	tag := c.QueryParam("tag")

	// validation
	if search == "" && tag == "" {
		return c.JSON(http.StatusBadRequest, NewRESTValidationError(http.StatusBadRequest, "Failed to validate params", []*validate.FieldError{
			validate.NewFieldError("search,tag", "One of search or tag is required"),
		}))
	}
	if fieldErrors := ch.validator.Var("search", search, "omitempty,max=256"); fieldErrors != nil {
		return c.JSON(http.StatusBadRequest, NewRESTValidationError(http.StatusBadRequest, "Failed to validate params", fieldErrors))
	}
	if fieldErrors := ch.validator.Var("tag", tag, "omitempty,max=256"); fieldErrors != nil {
		return c.JSON(http.StatusBadRequest, NewRESTValidationError(http.StatusBadRequest, "Failed to validate params", fieldErrors))
	}

	var questions []*content.QuestionModel
	if tag != "" {
		questions, err = ch.contentUseCase.GetQuestionsByTag(c.Request().Context(), tag)
	} else {
		questions, err = ch.contentUseCase.SearchQuestions(c.Request().Context(), search)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emptyableQuestions(questions))
}

// HandleGetTags GET /tags
func (ch *ContentHandler) HandleGetTags(c echo.Context) (err error) {
	tags, err := ch.contentUseCase.GetTags(c.Request().Context())
	if err != nil {
		return err
	}
	if tags == nil {
		tags = []string{}
	}
	return c.JSON(http.StatusOK, tags)
}

// HandleGetProjects GET /projects
func (ch *ContentHandler) HandleGetProjects(c echo.Context) (err error) {
	projects, err := ch.contentUseCase.GetProjects(c.Request().Context())
	if err != nil {
		return err
	}
	if projects == nil {
		projects = []*content.ProjectModel{}
	}
	return c.JSON(http.StatusOK, projects)
}

// HandleGetLessons GET /lessons/:track
func (ch *ContentHandler) HandleGetLessons(c echo.Context) (err error) {
	track := c.Param("track")

	lessons, err := ch.contentUseCase.GetLessons(c.Request().Context(), track)
	if err != nil {
		if errors.Is(err, content.ErrTrackNotFound) {
			return c.JSON(http.StatusNotFound, NewRESTStandardError(http.StatusNotFound, err.Error()))
		}
		return err
	}
	if lessons == nil {
		lessons = []*content.LessonModel{}
	}
	return c.JSON(http.StatusOK, lessons)
}

func emptyableQuestions(questions []*content.QuestionModel) []*content.QuestionModel {
	if questions == nil {
		return []*content.QuestionModel{}
	}
	return questions
}
