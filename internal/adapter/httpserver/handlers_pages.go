package httpserver

import (
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"personal-site/internal/domain/model"
)

type pageData struct {
	SiteTitle   string
	PageTitle   string
	Description string
	Lang        string

	Articles  []model.Article
	ListError string

	Document model.Document
	Body     template.HTML
	Error    string
}

func (s *Server) basePage(c echo.Context) pageData {
	data := pageData{SiteTitle: s.config.SiteTitle, PageTitle: s.config.SiteTitle}
	articles, err := s.notes.ListArticles(c.Request().Context())
	if err != nil {
		data.ListError = model.UserMessage(err)
	} else {
		data.Articles = articles
	}
	return data
}

func (s *Server) handleIndex(c echo.Context) error {
	data := s.basePage(c)
	data.Document = s.notes.Intro(c.Request().Context())
	data.Description = describe(data.Document)
	data.Lang = data.Document.Metadata.Lang
	// Sanitised by the markdown renderer.
	data.Body = template.HTML(data.Document.HTML)

	return s.renderTemplate(c, http.StatusOK, "index.html", data)
}

func (s *Server) handleNote(c echo.Context) error {
	data := s.basePage(c)

	doc, err := s.notes.RenderSlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		data.Error = model.UserMessage(err)
		return s.renderTemplate(c, statusFor(err), "note.html", data)
	}

	data.Document = doc
	data.PageTitle = doc.Title + " · " + s.config.SiteTitle
	data.Description = describe(doc)
	data.Lang = doc.Metadata.Lang
	data.Body = template.HTML(doc.HTML)
	return s.renderTemplate(c, http.StatusOK, "note.html", data)
}

func describe(doc model.Document) string {
	if doc.Metadata.Description != "" {
		return doc.Metadata.Description
	}
	return doc.Excerpt
}
