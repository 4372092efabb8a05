package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"uptime": time.Since(s.startTime).Round(time.Second).String(),
	})
}
