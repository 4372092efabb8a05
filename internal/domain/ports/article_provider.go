package ports

import (
	"context"

	"personal-site/internal/domain/model"
)

// ArticleProvider lists markdown notes and retrieves their raw content.
type ArticleProvider interface {
	ListArticles(ctx context.Context) ([]model.Article, error)
	FetchMarkdown(ctx context.Context, url string) (string, error)
}
