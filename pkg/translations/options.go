package translations

import (
	"io/fs"
	"log/slog"
)

// WithLocale sets the default locale.
func WithLocale(locale string) Option {
	return func(t *Translations) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		t.resolver.Locale = locale
		return nil
	}
}

// WithTranslations sets the initial translations, keyed by stored locale:
//
//	translations.WithTranslations(map[string]any{
//		"en": map[string]any{"title": "Car"},
//		"de": map[string]any{"title": "Auto"},
//	})
func WithTranslations(items any) Option {
	return func(t *Translations) error {
		t.items.SetAll(items)
		return nil
	}
}

// WithLocaleMapping maps requested locales to stored ones, e.g. "de-CH"
// to "de".
func WithLocaleMapping(mapping map[string]string) Option {
	return func(t *Translations) error {
		for requested, stored := range mapping {
			if requested == "" || stored == "" {
				return ErrEmptyLocale
			}
		}
		t.resolver.Mapping = cloneMap(mapping)
		return nil
	}
}

// WithLocaleFallbacks sets the locale tried next when a key is missing.
// Locales without an entry fall back to the default locale.
func WithLocaleFallbacks(fallbacks map[string]string) Option {
	return func(t *Translations) error {
		for locale, fallback := range fallbacks {
			if locale == "" || fallback == "" {
				return ErrEmptyLocale
			}
		}
		t.resolver.Fallbacks = cloneMap(fallbacks)
		return nil
	}
}

// WithJSONDir loads translations from JSON files in fsys.
// File convention:
//
//	en.json              whole "en" bucket
//	de/common.json       "common" group of the "de" bucket
//	de/mail/signup.json  "mail.signup" group of the "de" bucket
func WithJSONDir(fsys fs.FS) Option {
	return func(t *Translations) error {
		t.loaders = append(t.loaders, func(t *Translations) error {
			return loadDir(t, fsys, jsonFormat)
		})
		return nil
	}
}

// WithYAMLDir loads translations from .yaml and .yml files in fsys, with the
// file convention of WithJSONDir.
func WithYAMLDir(fsys fs.FS) Option {
	return func(t *Translations) error {
		t.loaders = append(t.loaders, func(t *Translations) error {
			return loadDir(t, fsys, yamlFormat)
		})
		return nil
	}
}

// WithLogger sets the logger used for loading and missing key reports.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translations) error {
		if l == nil {
			return ErrNilLogger
		}
		t.logger = l
		return nil
	}
}

// WithMissingKeyHandler sets a handler called when Translate or
// TranslatePlural finds no translation in the whole fallback chain.
// Useful for detecting untranslated keys during development.
func WithMissingKeyHandler(handler func(locale, key string)) Option {
	return func(t *Translations) error {
		if handler == nil {
			return ErrNilHandler
		}
		t.missing = handler
		return nil
	}
}

// WithPlaceholderSanitizer sets a function applied to every placeholder
// value before substitution, e.g. sanitizer.StripTags.
func WithPlaceholderSanitizer(fn func(string) string) Option {
	return func(t *Translations) error {
		if fn == nil {
			return ErrNilHandler
		}
		t.sanitize = fn
		return nil
	}
}

// WithContentSanitizer sets a function applied to every string loaded by
// WithJSONDir and WithYAMLDir, e.g. sanitizer.SafeHTML for catalogs that
// carry markup from translators.
func WithContentSanitizer(fn func(string) string) Option {
	return func(t *Translations) error {
		if fn == nil {
			return ErrNilHandler
		}
		t.content = fn
		return nil
	}
}
