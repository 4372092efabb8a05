package usecase

import (
	"context"
	"sync"

	"personal-site/internal/domain/model"
	"personal-site/internal/domain/ports"
)

// DocumentSource is the part of Notes a Viewer depends on.
type DocumentSource interface {
	ListArticles(ctx context.Context) ([]model.Article, error)
	RenderSlug(ctx context.Context, slug string) (model.Document, error)
}

// ViewState is a snapshot of what a visitor currently sees.
type ViewState struct {
	Articles  []model.Article `json:"articles"`
	Selected  string          `json:"selected,omitempty"`
	Document  *model.Document `json:"document,omitempty"`
	Loading   bool            `json:"loading"`
	Error     string          `json:"error,omitempty"`
	RequestID uint64          `json:"request_id"`
}

// Viewer is the per-visitor notes view model. Selections may complete out of
// order; only the result of the most recently issued selection is applied.
type Viewer struct {
	source   DocumentSource
	logger   ports.Logger
	metrics  ports.NotesMetrics
	onChange func(ViewState)

	mu     sync.Mutex
	latest uint64
	state  ViewState
}

// NewViewer constructs a Viewer. onChange is invoked with every new state
// while the viewer lock is held, so it must not call back into the Viewer.
func NewViewer(source DocumentSource, logger ports.Logger, metrics ports.NotesMetrics, onChange func(ViewState)) *Viewer {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Viewer{
		source:   source,
		logger:   logger,
		metrics:  metrics,
		onChange: onChange,
	}
}

// Load fills the article list.
func (v *Viewer) Load(ctx context.Context) {
	articles, err := v.source.ListArticles(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.logger.Error(ctx, "viewer failed to load articles", "error", err)
		v.state.Error = model.UserMessage(err)
		v.emitLocked()
		return
	}
	v.state.Articles = articles
	v.state.Error = ""
	v.emitLocked()
}

// Select renders the article with the given slug. It reports whether the
// result was applied; false means a newer selection superseded it.
func (v *Viewer) Select(ctx context.Context, slug string) bool {
	return v.Complete(ctx, v.Begin(slug), slug)
}

// Begin issues the request id for a selection and marks the view as loading.
// Callers that render asynchronously call Begin in arrival order so the last
// selection received always holds the highest id.
func (v *Viewer) Begin(slug string) uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.latest++
	v.state.Selected = slug
	v.state.Document = nil
	v.state.Error = ""
	v.state.Loading = true
	v.state.RequestID = v.latest
	v.emitLocked()
	return v.latest
}

// Complete renders the selection issued as id and applies the result unless a
// newer selection was issued meanwhile or ctx was cancelled.
func (v *Viewer) Complete(ctx context.Context, id uint64, slug string) bool {
	doc, err := v.source.RenderSlug(ctx, slug)

	v.mu.Lock()
	defer v.mu.Unlock()

	if id != v.latest {
		v.metrics.StaleSelectionDiscarded()
		v.logger.Info(ctx, "discarding stale selection", "slug", slug, "request_id", id, "latest", v.latest)
		return false
	}
	if err != nil && ctx.Err() != nil {
		v.logger.Info(ctx, "selection cancelled", "slug", slug, "request_id", id)
		return false
	}

	v.state.Loading = false
	if err != nil {
		v.logger.Error(ctx, "viewer failed to load article", "slug", slug, "error", err)
		v.state.Error = model.UserMessage(err)
	} else {
		v.state.Document = &doc
	}
	v.emitLocked()
	return true
}

// State returns a copy of the current state.
func (v *Viewer) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *Viewer) snapshotLocked() ViewState {
	s := v.state
	s.Articles = cloneArticles(v.state.Articles)
	if v.state.Document != nil {
		doc := *v.state.Document
		s.Document = &doc
	}
	return s
}

func (v *Viewer) emitLocked() {
	if v.onChange != nil {
		v.onChange(v.snapshotLocked())
	}
}
