package httpserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"personal-site/internal/adapter/metrics"
	"personal-site/internal/config"
	"personal-site/internal/domain/model"
	"personal-site/internal/domain/ports"
	"personal-site/web"
)

// NotesService is the notes pipeline the handlers read from.
type NotesService interface {
	ListArticles(ctx context.Context) ([]model.Article, error)
	RenderSlug(ctx context.Context, slug string) (model.Document, error)
	Intro(ctx context.Context) model.Document
	Feed(ctx context.Context) ([]model.Document, error)
}

// Server serves the site pages, the JSON API and the viewer websocket.
type Server struct {
	echo   *echo.Echo
	config *config.Config

	notes        NotesService
	logger       ports.Logger
	registry     *prometheus.Registry
	httpMetrics  *metrics.HTTPMetrics
	notesMetrics ports.NotesMetrics

	templates *template.Template
	upgrader  websocket.Upgrader
	startTime time.Time
}

// NewServer parses templates and registers routes.
func NewServer(cfg *config.Config, notes NotesService, logger ports.Logger, registry *prometheus.Registry, notesMetrics ports.NotesMetrics) (*Server, error) {
	templates, err := template.ParseFS(web.TemplateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	// Debug mode exposes internal error messages in responses.
	e.Debug = !cfg.IsProduction()

	srv := &Server{
		echo:         e,
		config:       cfg,
		notes:        notes,
		logger:       logger,
		registry:     registry,
		httpMetrics:  metrics.NewHTTPMetrics(registry),
		notesMetrics: notesMetrics,
		templates:    templates,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
		},
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start() error {
	s.logger.Info(context.Background(), "starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

func (s *Server) renderTemplate(c echo.Context, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error(c.Request().Context(), "template execution failed", "path", c.Request().URL.Path, "error", err)
		if err := c.String(http.StatusInternalServerError, "Failed to render page"); err != nil {
			return fmt.Errorf("failed to send error response: %w", err)
		}
		return nil
	}
	if err := c.HTMLBlob(status, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to send HTML response: %w", err)
	}
	return nil
}

// statusFor maps pipeline errors to HTTP statuses.
func statusFor(err error) int {
	var fe *model.FetchError
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &fe):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
