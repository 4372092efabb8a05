package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"personal-site/internal/domain/ports"
)

// SLogger is an adapter around slog.Logger implementing ports.Logger.
type SLogger struct {
	logger *slog.Logger
}

var _ ports.Logger = (*SLogger)(nil)

// New creates a new SLogger.
func New(logger *slog.Logger) *SLogger {
	return &SLogger{logger: logger}
}

// NewSlog builds a slog.Logger writing to w.
// level: "debug", "info", "warn", "error" (defaults to "info")
// format: "json" or "text" (defaults to "json")
func NewSlog(w io.Writer, level, format string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	if strings.ToLower(format) == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Info logs an informational message.
func (l *SLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs a degraded-but-handled condition.
func (l *SLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *SLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelError, msg, args...)
}

func (l *SLogger) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Log(ctx, level, msg, args...)
}
