package http

import (
	"errors"
	"net/http"

	"github.com/blockwise/blockwise/internal/infrastructure/logging"
	"github.com/blockwise/blockwise/internal/interfaces/http/middleware"
	"github.com/blockwise/blockwise/internal/progress"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ProgressHandler struct {
	progressUseCase progress.ProgressUseCase
}

func NewProgressHandler(ProgressUseCase progress.ProgressUseCase) *ProgressHandler {
	handler := &ProgressHandler{ProgressUseCase}
	return handler
}

// HandleGetBookmarks GET /bookmarks
//
// unlike /progress this returns the bare id sequence, not a summary object
func (ph *ProgressHandler) HandleGetBookmarks(c echo.Context) (err error) {
	sid := middleware.SessionFromContext(c)

	ids, err := ph.progressUseCase.GetBookmarks(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ids)
}

// HandleToggleBookmark POST /bookmarks/:id
func (ph *ProgressHandler) HandleToggleBookmark(c echo.Context) (err error) {
	sid := middleware.SessionFromContext(c)
	questionID := c.Param("id")

	result, err := ph.progressUseCase.ToggleBookmark(c.Request().Context(), sid, questionID)
	if err != nil {
		if errors.Is(err, progress.ErrAnonymousToggle) {
			return c.JSON(http.StatusBadRequest, NewRESTStandardError(http.StatusBadRequest, err.Error()))
		}
		return err
	}
	logging.ExtractLoggerFromContext(c.Request().Context()).Debug("Toggled bookmark",
		zap.String("question.id", questionID),
		zap.Bool("bookmark.active", result.Active),
	)
	return c.JSON(http.StatusOK, result)
}

// HandleGetProgress GET /progress
func (ph *ProgressHandler) HandleGetProgress(c echo.Context) (err error) {
	sid := middleware.SessionFromContext(c)

	summary, err := ph.progressUseCase.GetProgress(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// HandleToggleCompletion POST /completions/:id
func (ph *ProgressHandler) HandleToggleCompletion(c echo.Context) (err error) {
	sid := middleware.SessionFromContext(c)
	questionID := c.Param("id")

	result, err := ph.progressUseCase.ToggleCompletion(c.Request().Context(), sid, questionID)
	if err != nil {
		if errors.Is(err, progress.ErrAnonymousToggle) {
			return c.JSON(http.StatusBadRequest, NewRESTStandardError(http.StatusBadRequest, err.Error()))
		}
		return err
	}
	logging.ExtractLoggerFromContext(c.Request().Context()).Debug("Toggled completion",
		zap.String("question.id", questionID),
		zap.Bool("completion.active", result.Active),
	)
	return c.JSON(http.StatusOK, result)
}
