// Package logger provides structured logging on top of log/slog with context
// extraction and optional Sentry integration.
//
// # Basic Usage
//
//	log := logger.New()
//	log.Info("translations loaded", slog.Int("locales", 3))
//	// {"time":"...","level":"INFO","msg":"translations loaded","locales":3}
//
// Output, level and format are set with options:
//
//	log := logger.New(
//		logger.WithOutput(os.Stderr),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithText(),
//	)
//
// # Context Extractors
//
// A ContextExtractor reads a value from the context of a log call and adds
// it as an attribute. Return false to skip the attribute:
//
//	log := logger.New(logger.WithExtractors(translations.LogExtractor()))
//
//	ctx := translations.ContextWithLocale(context.Background(), "de")
//	log.InfoContext(ctx, "page rendered")
//	// {"level":"INFO","msg":"page rendered","locale":"de"}
//
// Decorate adds extractors to any slog.Handler.
//
// # Sentry Integration
//
//	log := logger.New(logger.WithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	}))
//
// Errors create issues in Sentry; records at MinLevel and above are stored
// as Sentry logs. With an empty DSN, or when the SDK fails to initialize,
// records go to the configured output only.
package logger
