package http

import (
	"github.com/labstack/echo/v4"
)

func apiEndpoint(
	ContentHandler *ContentHandler,
	ProgressHandler *ProgressHandler,
	sessionMiddleware echo.MiddlewareFunc,
	requestIDMiddleware echo.MiddlewareFunc,
	traceLoggerMiddleware echo.MiddlewareFunc,
) *endpoint {
	return &endpoint{
		apiVersion:  "api",
		middlewares: []echo.MiddlewareFunc{requestIDMiddleware, traceLoggerMiddleware},
		groups: []*apiGroup{
			{
				prefix: "",
				routes: []*route{
					{"GET", "/health", HandleHealthCheck, nil},
					{"GET", "/categories", ContentHandler.HandleGetCategories, nil},
					{"GET", "/questions", ContentHandler.HandleQueryQuestions, nil},
					{"GET", "/questions/:category", ContentHandler.HandleGetQuestionsByCategory, nil},
					{"GET", "/tags", ContentHandler.HandleGetTags, nil},
					{"GET", "/projects", ContentHandler.HandleGetProjects, nil},
					{"GET", "/lessons/:track", ContentHandler.HandleGetLessons, nil},
				},
			},
			{
				prefix:      "",
				middlewares: []echo.MiddlewareFunc{sessionMiddleware},
				routes: []*route{
					{"GET", "/bookmarks", ProgressHandler.HandleGetBookmarks, nil},
					{"POST", "/bookmarks/:id", ProgressHandler.HandleToggleBookmark, nil},
					{"GET", "/progress", ProgressHandler.HandleGetProgress, nil},
					{"POST", "/completions/:id", ProgressHandler.HandleToggleCompletion, nil},
				},
			},
		},
	}
}
