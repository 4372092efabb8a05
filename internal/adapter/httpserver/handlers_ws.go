package httpserver

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"personal-site/internal/usecase"
)

const (
	wsWriteWait   = 10 * time.Second
	wsMaxMessage  = 4096
	wsMaxInFlight = 8
)

type viewerCommand struct {
	Select string `json:"select"`
}

// handleNotesSocket runs one viewer session per connection. Each selection is
// rendered in its own goroutine. A newer selection cancels the previous render
// and the viewer drops any result that still arrives for it.
func (s *Server) handleNotesSocket(c echo.Context) error {
	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		s.logger.Warn(c.Request().Context(), "websocket upgrade failed", "error", err)
		return nil
	}
	defer conn.Close()
	conn.SetReadLimit(wsMaxMessage)

	sessionID := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())

	var writeMu sync.Mutex
	send := func(state usecase.ViewState) {
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteJSON(state); err != nil {
			s.logger.Warn(ctx, "websocket write failed", "session", sessionID, "error", err)
		}
	}

	viewer := usecase.NewViewer(s.notes, s.logger, s.notesMetrics, send)
	s.logger.Info(ctx, "viewer session opened", "session", sessionID)
	viewer.Load(ctx)

	var (
		wg         sync.WaitGroup
		cancelPrev context.CancelFunc = func() {}
	)
	slots := make(chan struct{}, wsMaxInFlight)
	for {
		var cmd viewerCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			break
		}
		if cmd.Select == "" {
			continue
		}

		// Only the newest selection keeps rendering.
		cancelPrev()
		selCtx, selCancel := context.WithCancel(ctx)
		cancelPrev = selCancel

		id := viewer.Begin(cmd.Select)
		slots <- struct{}{}
		wg.Add(1)
		go func(slug string) {
			defer wg.Done()
			defer func() { <-slots }()
			defer selCancel()
			viewer.Complete(selCtx, id, slug)
		}(cmd.Select)
	}

	cancel()
	wg.Wait()
	s.logger.Info(context.Background(), "viewer session closed", "session", sessionID)
	return nil
}
