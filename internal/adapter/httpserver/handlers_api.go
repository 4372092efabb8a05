package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"personal-site/internal/domain/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleListNotes(c echo.Context) error {
	articles, err := s.notes.ListArticles(c.Request().Context())
	if err != nil {
		return c.JSON(statusFor(err), errorResponse{Error: model.UserMessage(err)})
	}
	return c.JSON(http.StatusOK, articles)
}

func (s *Server) handleGetNote(c echo.Context) error {
	doc, err := s.notes.RenderSlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return c.JSON(statusFor(err), errorResponse{Error: model.UserMessage(err)})
	}
	return c.JSON(http.StatusOK, doc)
}
