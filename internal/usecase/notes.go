package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"personal-site/internal/domain/model"
	"personal-site/internal/domain/ports"
	"personal-site/internal/frontmatter"
)

const (
	excerptLimit = 200
	introSlug    = "intro"
)

// Notes fetches, caches and renders markdown notes.
type Notes struct {
	provider ports.ArticleProvider
	renderer ports.MarkdownRenderer
	text     ports.TextExtractor
	logger   ports.Logger
	metrics  ports.NotesMetrics
	clock    clockwork.Clock

	listingTTL      time.Duration
	feedConcurrency int
	introMarkdown   string

	mu       sync.Mutex
	cached   []model.Article
	cachedAt time.Time
}

// NotesConfig controls caching and fan-out behaviour.
type NotesConfig struct {
	ListingTTL      time.Duration
	FeedConcurrency int
	IntroMarkdown   string
}

// NewNotes constructs the Notes use case. metrics may be nil.
func NewNotes(
	provider ports.ArticleProvider,
	renderer ports.MarkdownRenderer,
	text ports.TextExtractor,
	logger ports.Logger,
	metrics ports.NotesMetrics,
	clock clockwork.Clock,
	cfg NotesConfig,
) *Notes {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if cfg.FeedConcurrency <= 0 {
		cfg.FeedConcurrency = 1
	}
	return &Notes{
		provider:        provider,
		renderer:        renderer,
		text:            text,
		logger:          logger,
		metrics:         metrics,
		clock:           clock,
		listingTTL:      cfg.ListingTTL,
		feedConcurrency: cfg.FeedConcurrency,
		introMarkdown:   cfg.IntroMarkdown,
	}
}

// ListArticles returns the cached listing, refreshing it once the TTL has
// passed. A failed refresh falls back to the previous listing when one exists.
func (n *Notes) ListArticles(ctx context.Context) ([]model.Article, error) {
	n.mu.Lock()
	fresh := n.cached != nil && n.clock.Since(n.cachedAt) < n.listingTTL
	cached := n.cached
	n.mu.Unlock()

	if fresh {
		return cloneArticles(cached), nil
	}

	articles, err := n.refresh(ctx)
	if err != nil {
		if cached != nil {
			n.logger.Warn(ctx, "serving stale article listing", "error", err)
			return cloneArticles(cached), nil
		}
		return nil, err
	}
	return articles, nil
}

// Refresh replaces the cached listing unconditionally.
func (n *Notes) Refresh(ctx context.Context) error {
	_, err := n.refresh(ctx)
	return err
}

func (n *Notes) refresh(ctx context.Context) ([]model.Article, error) {
	start := n.clock.Now()
	articles, err := n.provider.ListArticles(ctx)
	if err != nil {
		n.metrics.FetchCompleted("listing", "error")
		n.logger.Error(ctx, "failed to list articles", "error", err)
		return nil, fmt.Errorf("list articles: %w", err)
	}
	n.metrics.FetchCompleted("listing", "ok")

	n.mu.Lock()
	n.cached = cloneArticles(articles)
	n.cachedAt = n.clock.Now()
	n.mu.Unlock()

	n.logger.Info(ctx, "article listing refreshed", "count", len(articles), "duration", n.clock.Since(start))
	return cloneArticles(articles), nil
}

// Find looks up a listed article by slug.
func (n *Notes) Find(ctx context.Context, slug string) (model.Article, error) {
	articles, err := n.ListArticles(ctx)
	if err != nil {
		return model.Article{}, err
	}
	for _, a := range articles {
		if strings.EqualFold(a.Slug, slug) {
			return a, nil
		}
	}
	return model.Article{}, fmt.Errorf("%q: %w", slug, model.ErrNotFound)
}

// RenderSlug finds and renders a listed article.
func (n *Notes) RenderSlug(ctx context.Context, slug string) (model.Document, error) {
	article, err := n.Find(ctx, slug)
	if err != nil {
		return model.Document{}, err
	}
	return n.Render(ctx, article)
}

// Render fetches the raw markdown of an article and renders it. Only fetch
// failures are returned; parse and render problems degrade the document.
func (n *Notes) Render(ctx context.Context, article model.Article) (model.Document, error) {
	raw, err := n.provider.FetchMarkdown(ctx, article.DownloadURL)
	if err != nil {
		n.metrics.FetchCompleted("markdown", "error")
		n.metrics.RenderCompleted("error")
		n.logger.Error(ctx, "failed to fetch markdown", "slug", article.Slug, "error", err)
		return model.Document{}, fmt.Errorf("fetch %s: %w", article.Slug, err)
	}
	n.metrics.FetchCompleted("markdown", "ok")

	return n.renderDocument(ctx, article, raw), nil
}

// Intro renders the static introductory article.
func (n *Notes) Intro(ctx context.Context) model.Document {
	article := model.Article{Title: "Introduction", Slug: introSlug}
	return n.renderDocument(ctx, article, n.introMarkdown)
}

// Feed renders every listed article concurrently, preserving listing order.
// Articles that fail to fetch are left out.
func (n *Notes) Feed(ctx context.Context) ([]model.Document, error) {
	articles, err := n.ListArticles(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]model.Document, len(articles))
	ok := make([]bool, len(articles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n.feedConcurrency)
	for i, article := range articles {
		i, article := i, article
		g.Go(func() error {
			doc, err := n.Render(gctx, article)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			}
			docs[i] = doc
			ok[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]model.Document, 0, len(docs))
	for i, doc := range docs {
		if ok[i] {
			result = append(result, doc)
		}
	}
	return result, nil
}

func (n *Notes) renderDocument(ctx context.Context, article model.Article, raw string) model.Document {
	outcome := "ok"

	meta, body, err := frontmatter.Parse(raw)
	if err != nil {
		outcome = "degraded"
		n.logger.Warn(ctx, "front matter could not be parsed, rendering raw markdown", "slug", article.Slug, "error", err)
	}

	html, err := n.renderer.Render(body)
	if err != nil {
		outcome = "degraded"
		html = ""
		n.logger.Error(ctx, "failed to render markdown", "slug", article.Slug, "error", err)
	}
	n.metrics.RenderCompleted(outcome)

	title := article.Title
	if meta.Title != "" {
		title = meta.Title
	}

	return model.Document{
		Article:  article,
		Title:    title,
		Metadata: meta,
		HTML:     html,
		Excerpt:  summarizeText(n.text.Text(html), excerptLimit),
	}
}

func summarizeText(content string, limit int) string {
	clean := strings.Join(strings.Fields(content), " ")
	if clean == "" {
		return ""
	}

	if len(clean) <= limit {
		return clean
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(clean[cut]) {
		cut--
	}
	trimmed := clean[:cut]
	lastSpace := strings.LastIndex(trimmed, " ")
	if lastSpace > 0 {
		trimmed = trimmed[:lastSpace]
	}

	return trimmed + "..."
}

func cloneArticles(in []model.Article) []model.Article {
	out := make([]model.Article, len(in))
	copy(out, in)
	return out
}

type noopMetrics struct{}

func (noopMetrics) FetchCompleted(string, string) {}
func (noopMetrics) RenderCompleted(string)        {}
func (noopMetrics) StaleSelectionDiscarded()      {}
