package di

import (
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"personal-site/internal/adapter/articles"
	"personal-site/internal/adapter/logging"
	"personal-site/internal/adapter/markdown"
	"personal-site/internal/adapter/metrics"
	"personal-site/internal/config"
	"personal-site/internal/domain/ports"
	"personal-site/internal/usecase"
	"personal-site/web"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewSlog(os.Stdout, cfg.LogLevel, cfg.LogFormat)
}

func provideNotesMetrics(reg *prometheus.Registry) ports.NotesMetrics {
	return metrics.NewNotesMetrics(reg)
}

func provideArticleProvider(cfg *config.Config, logger ports.Logger) ports.ArticleProvider {
	urls := cfg.ListingURLs()
	providers := make([]ports.ArticleProvider, 0, len(urls))
	for _, url := range urls {
		providers = append(providers, articles.NewGitHubProvider(url, cfg.GitHubToken, cfg.RequestTimeout, logger))
	}
	return articles.NewCompositeProvider(logger, providers...)
}

func provideRenderer() ports.MarkdownRenderer {
	return markdown.NewRenderer()
}

func provideTextExtractor() ports.TextExtractor {
	return markdown.TextExtractor{}
}

func provideClock() clockwork.Clock {
	return clockwork.NewRealClock()
}

func provideNotesConfig(cfg *config.Config) usecase.NotesConfig {
	return usecase.NotesConfig{
		ListingTTL:      cfg.ListingTTL,
		FeedConcurrency: cfg.FeedConcurrency,
		IntroMarkdown:   web.IntroMarkdown,
	}
}

func provideSchedule(cfg *config.Config) string {
	return cfg.RefreshCron
}
