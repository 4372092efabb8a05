package articles

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"personal-site/internal/domain/model"
	"personal-site/internal/domain/ports"
)

const maxMarkdownBytes = 2 << 20

// GitHubProvider lists markdown files from a repository contents endpoint.
type GitHubProvider struct {
	listingURL string
	token      string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.ArticleProvider = (*GitHubProvider)(nil)

// NewGitHubProvider builds a provider for a single directory listing URL.
func NewGitHubProvider(listingURL, token string, timeout time.Duration, logger ports.Logger) *GitHubProvider {
	return &GitHubProvider{
		listingURL: listingURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type contentEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// ListArticles fetches the directory listing and keeps markdown files only.
func (g *GitHubProvider) ListArticles(ctx context.Context) ([]model.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.listingURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create listing request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, &model.FetchError{URL: g.listingURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		if g.logger != nil {
			g.logger.Warn(ctx, "listing request rejected", "status", resp.StatusCode, "body", strings.TrimSpace(string(body)))
		}
		return nil, &model.FetchError{URL: g.listingURL, Status: resp.StatusCode}
	}

	var entries []contentEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}

	return filterMarkdown(entries), nil
}

// FetchMarkdown retrieves the raw markdown behind a download URL.
func (g *GitHubProvider) FetchMarkdown(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create markdown request: %w", err)
	}
	req.Header.Set("Accept", "text/plain, text/markdown")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", &model.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &model.FetchError{URL: url, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxMarkdownBytes+1))
	if err != nil {
		return "", &model.FetchError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(data) > maxMarkdownBytes {
		if g.logger != nil {
			g.logger.Warn(ctx, "markdown note too large", "url", url, "limit", maxMarkdownBytes)
		}
		return "", &model.FetchError{URL: url, Err: fmt.Errorf("note exceeds %d bytes", maxMarkdownBytes)}
	}
	return string(data), nil
}

// filterMarkdown converts listing entries into articles, dropping directories
// and anything that is not a .md file.
func filterMarkdown(entries []contentEntry) []model.Article {
	articles := make([]model.Article, 0, len(entries))
	for _, entry := range entries {
		if entry.Type != "file" || entry.DownloadURL == "" {
			continue
		}
		if !strings.EqualFold(path.Ext(entry.Name), ".md") {
			continue
		}
		slug := strings.TrimSuffix(entry.Name, path.Ext(entry.Name))
		articles = append(articles, model.Article{
			Title:       TitleFromFilename(entry.Name),
			Slug:        slug,
			DownloadURL: entry.DownloadURL,
			Path:        entry.Path,
		})
	}
	return articles
}
