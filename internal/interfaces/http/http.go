package http

import (
	"expvar"
	"fmt"
	"log"
	"net/http"
	"net/http/pprof"
	"strings"

	"github.com/blockwise/blockwise/internal/content"
	infra "github.com/blockwise/blockwise/internal/infrastructure"
	"github.com/blockwise/blockwise/internal/infrastructure/validate"
	"github.com/blockwise/blockwise/internal/interfaces/http/middleware"
	"github.com/blockwise/blockwise/internal/progress"
	"github.com/labstack/echo/v4"
	echo_middleware "github.com/labstack/echo/v4/middleware"
	"go.elastic.co/apm/module/apmechov4"
	"go.uber.org/zap"
)

type endpoint struct {
	apiVersion  string
	middlewares []echo.MiddlewareFunc
	groups      []*apiGroup
}

type apiGroup struct {
	prefix      string
	middlewares []echo.MiddlewareFunc
	routes      []*route
}

type route struct {
	method      string
	path        string
	handler     echo.HandlerFunc
	middlewares []echo.MiddlewareFunc
}

// Serve create http transport server
func Serve(
	option *infra.AppConfig,
	ContentUseCase content.ContentUseCase,
	ProgressUseCase progress.ProgressUseCase,
	ProgressRepo progress.ProgressRepository,
	logger *zap.Logger,
) {
	app := newApp(option, ContentUseCase, ProgressUseCase, ProgressRepo, logger)
	if option.RequestTimeout > 0 {
		app.Server.ReadTimeout = option.RequestTimeout
		app.Server.WriteTimeout = option.RequestTimeout
	}
	printRoutes(app, logger)
	if err := app.Start(fmt.Sprintf("%s:%d", option.Host, option.Port)); err != nil {
		log.Fatal(err)
	}
}

// newApp assemble the echo application, split out so tests can drive the
// full middleware chain without binding a port
func newApp(
	option *infra.AppConfig,
	ContentUseCase content.ContentUseCase,
	ProgressUseCase progress.ProgressUseCase,
	ProgressRepo progress.ProgressRepository,
	logger *zap.Logger,
) *echo.Echo {
	app := echo.New()
	app.HideBanner = true
	validator := validate.NewValidator()

	registerLivenessProbe(app, ProgressRepo)
	if option.Env == infra.EnvDevelopment {
		registerProfileEndpoints(app)
	}
	app.Use(middleware.Logging(logger, &middleware.LoggingConfig{
		Skipper: func(e echo.Context) bool {
			return strings.HasPrefix(e.Request().RequestURI, "/healthz")
		},
	}))
	app.Use(middleware.ErrorHandling(
		&middleware.ErrorHandlingOption{
			Handler: func(c echo.Context, err error) {
				traceID := c.Response().Header().Get(echo.HeaderXRequestID)
				c.JSON(http.StatusInternalServerError,
					NewRESTStandardError(http.StatusInternalServerError, err.Error()).SetTraceID(traceID),
				)
				logger.Error(err.Error(), zap.String("trace.id", traceID))
			},
			Logger: logger,
		},
	))
	app.Use(echo_middleware.Secure())
	if option.DevOP.APM {
		app.Use(apmechov4.Middleware())
	}
	app.Use(echo_middleware.CORS())
	app.Use(middleware.NoRouteMatched())

	sessionMiddleware := middleware.SessionContext(&middleware.SessionContextOption{
		OnInvalid: func(c echo.Context, err error) error {
			return c.JSON(http.StatusBadRequest, NewRESTValidationError(http.StatusBadRequest, "Failed to validate session", []*validate.FieldError{
				validate.NewFieldError(middleware.HeaderSessionID, err.Error()),
			}))
		},
	})

	ContentHandler := NewContentHandler(ContentUseCase, validator)
	ProgressHandler := NewProgressHandler(ProgressUseCase)

	createEndpoint(app, apiEndpoint(
		ContentHandler,
		ProgressHandler,
		sessionMiddleware,
		echo_middleware.RequestID(),
		middleware.SetTraceLogger(logger),
	))
	return app
}

func printRoutes(app *echo.Echo, logger *zap.Logger) {
	for _, route := range app.Routes() {
		if !strings.HasPrefix(route.Name, "github.com/labstack/echo") {
			name := route.Name
			trimIndex := strings.LastIndexByte(name, '/')
			logger.Debug("Registered route", zap.String("method", route.Method), zap.String("path", route.Path), zap.String("name", string(name[trimIndex+1:])))
		}
	}
}

func registerLivenessProbe(app *echo.Echo, repo progress.ProgressRepository) {
	app.GET("/healthz", func(c echo.Context) error {
		if repo.Ping() == nil {
			c.NoContent(http.StatusOK)
		} else {
			c.NoContent(http.StatusServiceUnavailable)
		}
		return nil
	})
}

func registerProfileEndpoints(app *echo.Echo) {
	expvarHandler := expvar.Handler()
	app.GET("/debug/vars", func(c echo.Context) error {
		expvarHandler.ServeHTTP(c.Response().Writer, c.Request())
		return nil
	})
	app.GET("/debug/pprof/", func(c echo.Context) error {
		pprof.Index(c.Response().Writer, c.Request())
		return nil
	})
	app.GET("/debug/pprof/:name", func(c echo.Context) error {
		switch c.Param("name") {
		case "cmdline":
			pprof.Cmdline(c.Response().Writer, c.Request())
		case "profile":
			pprof.Profile(c.Response().Writer, c.Request())
		case "symbol":
			pprof.Symbol(c.Response().Writer, c.Request())
		case "trace":
			pprof.Trace(c.Response().Writer, c.Request())
		default:
			pprof.Handler(c.Param("name")).ServeHTTP(c.Response().Writer, c.Request())
		}
		return nil
	})
}

func createEndpoint(app *echo.Echo, def *endpoint) {
	type RESTMethod func(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route

	var root *echo.Group
	if strings.HasPrefix(def.apiVersion, "/") {
		root = app.Group(def.apiVersion, def.middlewares...)
	} else {
		root = app.Group("/"+def.apiVersion, def.middlewares...)
	}

	for _, group := range def.groups {
		echoGroup := root.Group(group.prefix, group.middlewares...)
		for _, api := range group.routes {
			var method RESTMethod
			switch api.method {
			case "GET":
				method = echoGroup.GET
			case "POST":
				method = echoGroup.POST
			case "PUT":
				method = echoGroup.PUT
			case "DELETE":
				method = echoGroup.DELETE
			default:
				panic(fmt.Errorf("createEndpoint: unknown method %s", api.method))
			}
			method(api.path, api.handler, api.middlewares...)
		}
	}
}
