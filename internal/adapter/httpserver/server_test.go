package httpserver

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"personal-site/internal/adapter/metrics"
	"personal-site/internal/config"
	"personal-site/internal/domain/model"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

type fakeNotes struct {
	mu       sync.Mutex
	articles []model.Article
	listErr  error
	docs     map[string]model.Document
	errs     map[string]error
	gates    map[string]chan struct{}
	feedErr  error
}

func newFakeNotes() *fakeNotes {
	return &fakeNotes{
		articles: []model.Article{
			{Title: "Hello World", Slug: "hello-world", DownloadURL: "https://raw/hello-world.md", Path: "notes/hello-world.md"},
			{Title: "Second", Slug: "second", DownloadURL: "https://raw/second.md", Path: "notes/second.md"},
		},
		docs: map[string]model.Document{
			"hello-world": {
				Article:  model.Article{Title: "Hello World", Slug: "hello-world"},
				Title:    "Hello, friend",
				Metadata: model.Metadata{Date: "2024-01-02", Tags: model.Tags{"intro"}, Lang: "en"},
				HTML:     "<p>Hi <strong>there</strong></p>",
				Excerpt:  "Hi there",
			},
			"second": {
				Article: model.Article{Title: "Second", Slug: "second"},
				Title:   "Second",
				HTML:    "<p>two</p>",
			},
		},
		errs:  map[string]error{},
		gates: map[string]chan struct{}{},
	}
}

func (f *fakeNotes) ListArticles(context.Context) ([]model.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.articles, f.listErr
}

func (f *fakeNotes) RenderSlug(ctx context.Context, slug string) (model.Document, error) {
	f.mu.Lock()
	gate := f.gates[slug]
	err := f.errs[slug]
	doc, ok := f.docs[slug]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return model.Document{}, ctx.Err()
		}
	}
	if err != nil {
		return model.Document{}, err
	}
	if !ok {
		return model.Document{}, model.ErrNotFound
	}
	return doc, nil
}

func (f *fakeNotes) Intro(context.Context) model.Document {
	return model.Document{
		Article:  model.Article{Title: "Introduction", Slug: "intro"},
		Title:    "Welcome",
		Metadata: model.Metadata{Description: "A small corner of the web."},
		HTML:     "<p>I write notes.</p>",
	}
}

func (f *fakeNotes) Feed(ctx context.Context) ([]model.Document, error) {
	if f.feedErr != nil {
		return nil, f.feedErr
	}
	return []model.Document{f.docs["second"], f.docs["hello-world"]}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Port:         "0",
		SiteTitle:    "Notes",
		SiteURL:      "https://me.dev",
		LifeCellSize: 10,
	}
}

func newTestServer(t *testing.T, notes *fakeNotes) *Server {
	t.Helper()
	return newTestServerWithConfig(t, testConfig(), notes)
}

func newTestServerWithConfig(t *testing.T, cfg *config.Config, notes *fakeNotes) *Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	srv, err := NewServer(cfg, notes, nopLogger{}, reg, metrics.NewNotesMetrics(reg))
	require.NoError(t, err)
	return srv
}

var errBoom = errors.New("boom")
