package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go-simpler.org/env"
)

// Config contains runtime configuration values.
type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8080"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"json"`

	NotesListingURLs string `env:"NOTES_LISTING_URLS"`
	GitHubToken      string `env:"GITHUB_TOKEN"`

	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" default:"15s"`
	ListingTTL      time.Duration `env:"LISTING_TTL" default:"5m"`
	RefreshCron     string        `env:"REFRESH_CRON" default:"*/15 * * * *"`
	FeedConcurrency int           `env:"FEED_CONCURRENCY" default:"4"`

	SiteTitle string `env:"SITE_TITLE" default:"Notes"`
	SiteURL   string `env:"SITE_URL" default:"http://localhost:8080"`

	LifeCellSize int `env:"LIFE_CELL_SIZE" default:"12"`

	// Per client IP on /api and /life.svg. API_RATE_PER_SECOND <= 0 disables it.
	APIRatePerSecond float64 `env:"API_RATE_PER_SECOND" default:"10"`
	APIRateBurst     int     `env:"API_RATE_BURST" default:"20"`
}

const (
	defaultTimeout      = 15 * time.Second
	defaultListingTTL   = 5 * time.Minute
	defaultConcurrency  = 4
	defaultLifeCellSize = 12
)

// Load builds a Config from an optional .env file and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ListingURLs returns the configured directory listing endpoints.
func (c *Config) ListingURLs() []string {
	parts := strings.Split(c.NotesListingURLs, ",")
	urls := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			urls = append(urls, part)
		}
	}
	return urls
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) normalize() error {
	if len(c.ListingURLs()) == 0 {
		return errors.New("NOTES_LISTING_URLS is required")
	}

	if _, err := cron.ParseStandard(c.RefreshCron); err != nil {
		return fmt.Errorf("REFRESH_CRON is invalid: %w", err)
	}

	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultTimeout
	}
	if c.ListingTTL <= 0 {
		c.ListingTTL = defaultListingTTL
	}
	if c.FeedConcurrency <= 0 {
		c.FeedConcurrency = defaultConcurrency
	}
	if c.LifeCellSize <= 0 {
		c.LifeCellSize = defaultLifeCellSize
	}
	if c.APIRatePerSecond > 0 && c.APIRateBurst <= 0 {
		c.APIRateBurst = 1
	}
	c.SiteURL = strings.TrimRight(c.SiteURL, "/")
	return nil
}
