package httpserver

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"personal-site/internal/adapter/feed"
	"personal-site/internal/domain/model"
)

func (s *Server) handleFeed(c echo.Context) error {
	ctx := c.Request().Context()
	docs, err := s.notes.Feed(ctx)
	if err != nil {
		return c.String(statusFor(err), model.UserMessage(err))
	}
	feed.SortByDate(docs)

	channel := feed.Channel{
		Title:       s.config.SiteTitle,
		Link:        s.config.SiteURL,
		Description: describe(s.notes.Intro(ctx)),
	}

	var buf bytes.Buffer
	if err := feed.WriteRSS(&buf, channel, docs); err != nil {
		s.logger.Error(ctx, "failed to write feed", "error", err)
		return c.String(http.StatusInternalServerError, "Failed to build feed")
	}
	return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", buf.Bytes())
}
