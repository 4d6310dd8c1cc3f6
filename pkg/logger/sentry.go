package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string
	Environment string
	// MinLevel determines which levels are stored as Sentry logs
	// (slog.LevelWarn for warnings and errors). Errors always create issues.
	MinLevel slog.Level
}

// withSentry combines handler with a Sentry handler. An empty DSN disables
// Sentry; a failed initialization is reported through handler and leaves it
// as the only destination.
func withSentry(handler slog.Handler, cfg SentryConfig) slog.Handler {
	if cfg.DSN == "" {
		return handler
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(handler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return handler
	}

	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel,
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return Multi(handler, sentryHandler)
}
