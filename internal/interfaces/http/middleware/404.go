package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// NoRouteMatched render unmatched routes as a JSON 404 body instead of
// echo's default error page
func NoRouteMatched() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if v, ok := err.(*echo.HTTPError); ok && v.Code == http.StatusNotFound {
				return c.JSON(v.Code, echo.Map{
					"code":  v.Code,
					"title": http.StatusText(v.Code),
				})
			}
			return err
		}
	}
}
