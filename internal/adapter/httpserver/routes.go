package httpserver

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"personal-site/internal/adapter/metrics"
	"personal-site/web"
)

func (s *Server) registerRoutes() {
	s.echo.Use(s.setupRequestLoggerMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(s.httpMetrics.Middleware())
	s.echo.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         63072000,
		ContentSecurityPolicy: "default-src 'self'; " +
			"script-src 'self' 'wasm-unsafe-eval'; " +
			"img-src 'self' https: data:; " +
			"style-src 'self' 'unsafe-inline'; " +
			"frame-ancestors 'none'",
		ReferrerPolicy: "strict-origin-when-cross-origin",
	}))

	s.echo.GET("/", s.handleIndex)
	s.echo.GET("/notes/:slug", s.handleNote)
	s.echo.GET("/feed.xml", s.handleFeed)
	s.echo.GET("/life.svg", s.handleLifeSVG, s.rateLimit()...)
	s.echo.GET("/ws/notes", s.handleNotesSocket)

	api := s.echo.Group("/api", s.rateLimit()...)
	api.GET("/notes", s.handleListNotes)
	api.GET("/notes/:slug", s.handleGetNote)

	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(metrics.Handler(s.registry)))
	s.echo.StaticFS("/static", echo.MustSubFS(web.StaticFiles, "static"))
}

func (s *Server) setupRequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			s.logger.Info(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}
