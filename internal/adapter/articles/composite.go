package articles

import (
	"context"
	"strings"

	"personal-site/internal/domain/model"
	"personal-site/internal/domain/ports"
)

// CompositeProvider merges listings from several directories.
type CompositeProvider struct {
	logger    ports.Logger
	providers []ports.ArticleProvider
}

var _ ports.ArticleProvider = (*CompositeProvider)(nil)

// NewCompositeProvider constructs a provider that queries the given providers sequentially.
func NewCompositeProvider(logger ports.Logger, providers ...ports.ArticleProvider) *CompositeProvider {
	active := make([]ports.ArticleProvider, 0, len(providers))
	for _, p := range providers {
		if p != nil {
			active = append(active, p)
		}
	}
	return &CompositeProvider{
		logger:    logger,
		providers: active,
	}
}

// ListArticles returns every listed article, de-duplicated by slug. The first
// error is reported only when no provider produced anything.
func (c *CompositeProvider) ListArticles(ctx context.Context) ([]model.Article, error) {
	results := make([]model.Article, 0)
	seen := make(map[string]struct{})
	var firstErr error

	for _, provider := range c.providers {
		items, err := provider.ListArticles(ctx)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if c.logger != nil {
				c.logger.Error(ctx, "article listing failed", "error", err)
			}
			continue
		}

		for _, item := range items {
			key := canonicalArticleKey(item)
			if key == "" {
				continue
			}
			if _, exists := seen[key]; exists {
				continue
			}
			seen[key] = struct{}{}
			results = append(results, item)
		}
	}

	if len(results) == 0 && firstErr != nil {
		return nil, firstErr
	}

	return results, nil
}

// FetchMarkdown delegates to the first provider; download URLs are absolute
// so any provider can retrieve them.
func (c *CompositeProvider) FetchMarkdown(ctx context.Context, url string) (string, error) {
	if len(c.providers) == 0 {
		return "", &model.FetchError{URL: url, Err: model.ErrNotFound}
	}
	return c.providers[0].FetchMarkdown(ctx, url)
}

func canonicalArticleKey(article model.Article) string {
	if article.Slug != "" {
		return strings.ToLower(strings.TrimSpace(article.Slug))
	}
	if article.Path != "" {
		return strings.ToLower(strings.TrimSpace(article.Path))
	}
	return ""
}
