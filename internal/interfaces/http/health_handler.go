package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthPayload liveness response body
type HealthPayload struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// HandleHealthCheck GET /health, always succeeds while the process runs
func HandleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthPayload{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
