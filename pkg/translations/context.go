package translations

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/collection/pkg/logger"
)

// localeKey is the context key for the requested locale.
type localeKey struct{}

// ContextWithLocale returns a copy of ctx carrying locale.
func ContextWithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// LocaleFromContext returns the locale stored by ContextWithLocale.
func LocaleFromContext(ctx context.Context) (string, bool) {
	locale, ok := ctx.Value(localeKey{}).(string)
	return locale, ok && locale != ""
}

// TranslateContext is Translate with the locale taken from ctx. The default
// locale is used when ctx carries none.
func (t *Translations) TranslateContext(ctx context.Context, key string, placeholders ...M) string {
	locale, _ := LocaleFromContext(ctx)
	return t.Translate(locale, key, placeholders...)
}

// LogExtractor returns a logger.ContextExtractor adding the context locale
// to log records.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		locale, ok := LocaleFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("locale", locale), true
	}
}
