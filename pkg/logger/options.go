package logger

import (
	"io"
	"log/slog"
	"os"
)

type options struct {
	out        io.Writer
	level      slog.Leveler
	text       bool
	extractors []ContextExtractor
	sentry     *SentryConfig
}

// Option configures a logger built with New.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{out: os.Stdout, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithOutput sets the destination of log records. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithLevel sets the minimum level written to the output. Defaults to
// slog.LevelInfo.
func WithLevel(level slog.Leveler) Option {
	return func(o *options) {
		if level != nil {
			o.level = level
		}
	}
}

// WithText switches the output from JSON to the slog text format.
func WithText() Option {
	return func(o *options) {
		o.text = true
	}
}

// WithExtractors adds context extractors applied to every record.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

// WithSentry also sends records to Sentry, see SentryConfig.
func WithSentry(cfg SentryConfig) Option {
	return func(o *options) {
		o.sentry = &cfg
	}
}
