package logger

import (
	"io"
	"log/slog"
)

// New creates a logger. Records are written as JSON to stdout at info level
// unless configured otherwise:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithExtractors(translations.LogExtractor()),
//	)
func New(opts ...Option) *slog.Logger {
	o := newOptions(opts)

	handlerOpts := &slog.HandlerOptions{Level: o.level}
	var handler slog.Handler = slog.NewJSONHandler(o.out, handlerOpts)
	if o.text {
		handler = slog.NewTextHandler(o.out, handlerOpts)
	}

	if o.sentry != nil {
		handler = withSentry(handler, *o.sentry)
	}

	return slog.New(Decorate(handler, o.extractors...))
}

// NewNope creates a logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
