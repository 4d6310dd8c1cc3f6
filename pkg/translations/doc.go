// Package translations stores translation structures per locale on top of
// package collection, with locale mapping, fallback chains, file loaders,
// placeholder replacement and CLDR plural forms.
//
// # Basic Usage
//
//	t, err := translations.New(
//		translations.WithLocale("en"),
//		translations.WithTranslations(map[string]any{
//			"en": map[string]any{"title": "Car", "greeting": "Hello, {{name}}!"},
//			"de": map[string]any{"title": "Auto"},
//		}),
//	)
//
//	t.Get("title", "de")                                         // "Auto"
//	t.Get("greeting", "de")                                      // "Hello, {{name}}!", from "en"
//	t.Translate("de", "greeting", translations.M{"name": "Max"}) // "Hello, Max!"
//
// # Locales
//
// A requested locale goes through the locale mapping first, so several
// requested locales can share one stored bucket. When a key is missing, Get
// and Translate try the fallback of the locale, then its fallback, until the
// default locale:
//
//	t.SetLocaleMapping(map[string]string{"de-CH": "de"})
//	t.SetLocaleFallbacks(map[string]string{"it": "de"})
//
//	t.Get("title", "de-CH") // read from "de"
//	t.Get("title", "it")    // "it", then "de", then "en"
//
// GetOr never follows fallbacks and returns its default instead. Methods
// ending in In take a list of locales; an empty list means every known
// locale.
//
// # Files
//
// WithJSONDir and WithYAMLDir load translations from an fs.FS. A file at the
// root fills a whole locale, a file in a locale directory fills one group:
//
//	//go:embed locales
//	var locales embed.FS
//
//	sub, _ := fs.Sub(locales, "locales")
//	t, err := translations.New(translations.WithYAMLDir(sub))
//
//	// locales/en.yaml         => "en"
//	// locales/de/common.yaml  => "de.common"
//
// # Plurals
//
// Plural translations are groups keyed by CLDR form. The form for a count is
// chosen with golang.org/x/text/feature/plural:
//
//	// "items": {"zero": "No items", "one": "One item", "other": "{{count}} items"}
//	t.TranslatePlural("en", "items", 3) // "3 items"
//
// # Context
//
// ContextWithLocale and TranslateContext carry the locale through a request;
// LogExtractor adds it to records of a logger built with package logger.
package translations
