package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const rateLimiterExpiry = 5 * time.Minute

func newRateLimiter(ratePerSecond float64, burst int) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(ratePerSecond),
			Burst:     burst,
			ExpiresIn: rateLimiterExpiry,
		},
	)
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		Store: store,
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
		},
	})
}

// rateLimit returns a fresh per-IP limiter for one route or group, or nothing
// when limiting is disabled.
func (s *Server) rateLimit() []echo.MiddlewareFunc {
	if s.config.APIRatePerSecond <= 0 {
		return nil
	}
	return []echo.MiddlewareFunc{newRateLimiter(s.config.APIRatePerSecond, s.config.APIRateBurst)}
}
