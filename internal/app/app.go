package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"personal-site/internal/domain/ports"
)

const (
	refreshTimeout  = 2 * time.Minute
	shutdownTimeout = 10 * time.Second
)

// Refresher reloads the notes listing.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Server is the HTTP front of the site.
type Server interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// App manages the lifecycle of the HTTP server and the listing refresh schedule.
type App struct {
	cron     *cron.Cron
	notes    Refresher
	server   Server
	logger   ports.Logger
	schedule string
}

// New constructs an App instance.
func New(notes Refresher, server Server, logger ports.Logger, schedule string) *App {
	return &App{
		cron:     cron.New(),
		notes:    notes,
		server:   server,
		logger:   logger,
		schedule: schedule,
	}
}

// Run warms the listing cache, starts the refresh schedule and serves HTTP
// until ctx is cancelled or the server fails.
func (a *App) Run(ctx context.Context) error {
	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.logger.Info(ctx, "warming notes listing")
	if err := a.notes.Refresh(ctx); err != nil {
		a.logger.Error(ctx, "initial listing refresh failed", "error", err)
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(a.server.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})

	err := g.Wait()

	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "scheduler stopped")

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if err := a.notes.Refresh(ctx); err != nil {
			a.logger.Error(ctx, "scheduled listing refresh failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", a.schedule, err)
	}
	return nil
}
