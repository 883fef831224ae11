package middleware

import (
	"net/http"

	"github.com/blockwise/blockwise/internal/session"
	"github.com/labstack/echo/v4"
)

// HeaderSessionID request header carrying the opaque session token
const HeaderSessionID = "X-Session-Id"

// ContextSessionKey session ID key in echo context
const ContextSessionKey = "session.id"

// SessionContextOption options for session extraction
type SessionContextOption struct {
	// OnInvalid renders the rejection for a malformed token
	OnInvalid func(c echo.Context, err error) error
}

// SessionContext parse the X-Session-Id header into the echo context.
// A missing header maps to the anonymous session, a malformed one is
// rejected before the handler runs
func SessionContext(options ...*SessionContextOption) echo.MiddlewareFunc {
	custom := &SessionContextOption{
		OnInvalid: func(c echo.Context, err error) error {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"code":  http.StatusBadRequest,
				"title": http.StatusText(http.StatusBadRequest),
			})
		},
	}
	if len(options) > 0 && options[0].OnInvalid != nil {
		custom.OnInvalid = options[0].OnInvalid
	}
	onInvalid := custom.OnInvalid
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(HeaderSessionID)
			if raw == "" {
				c.Set(ContextSessionKey, session.Anonymous)
				return next(c)
			}
			sid, err := session.Parse(raw)
			if err != nil {
				return onInvalid(c, err)
			}
			c.Set(ContextSessionKey, sid)
			return next(c)
		}
	}
}

// SessionFromContext session ID stored by SessionContext, anonymous when
// the middleware did not run
func SessionFromContext(c echo.Context) session.ID {
	if sid, ok := c.Get(ContextSessionKey).(session.ID); ok {
		return sid
	}
	return session.Anonymous
}
