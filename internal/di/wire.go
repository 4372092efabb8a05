//go:build wireinject

package di

import (
	"github.com/google/wire"

	"personal-site/internal/adapter/httpserver"
	"personal-site/internal/adapter/logging"
	"personal-site/internal/adapter/metrics"
	"personal-site/internal/app"
	"personal-site/internal/config"
	"personal-site/internal/domain/ports"
	"personal-site/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		metrics.NewRegistry,
		provideNotesMetrics,
		provideArticleProvider,
		provideRenderer,
		provideTextExtractor,
		provideClock,
		provideNotesConfig,
		usecase.NewNotes,
		wire.Bind(new(httpserver.NotesService), new(*usecase.Notes)),
		wire.Bind(new(app.Refresher), new(*usecase.Notes)),
		httpserver.NewServer,
		wire.Bind(new(app.Server), new(*httpserver.Server)),
		provideSchedule,
		app.New,
	)
	return nil, nil
}
