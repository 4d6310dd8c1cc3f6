package translations_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/collection/pkg/sanitizer"
	"github.com/dmitrymomot/collection/pkg/translations"
)

func messages() map[string]any {
	return map[string]any{
		"en": map[string]any{
			"greeting": "Hello, {{name}}!",
			"total":    "Total: {{amount}} {{currency}}",
			"count":    42,
			"meta":     map[string]any{"color": "blue"},
			"items": map[string]any{
				"zero":  "No items",
				"one":   "One item",
				"other": "{{count}} items",
			},
			"files": map[string]any{
				"one":   "{{count}} file in {{dir}}",
				"other": "{{count}} files in {{dir}}",
			},
		},
		"pl": map[string]any{
			"items": map[string]any{
				"one":  "{{count}} element",
				"few":  "{{count}} elementy",
				"many": "{{count}} elementów",
			},
		},
		"de": map[string]any{
			"greeting": "Hallo, {{name}}!",
		},
	}
}

func TestReplacePlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		template     string
		placeholders translations.M
		expected     string
	}{
		{"single", "Hello, {{name}}!", translations.M{"name": "John"}, "Hello, John!"},
		{"multiple", "{{a}} and {{b}}", translations.M{"a": 1, "b": 2.5}, "1 and 2.5"},
		{"repeated", "{{x}}{{x}}", translations.M{"x": "ab"}, "abab"},
		{"unknown stays", "Hi {{name}} {{other}}", translations.M{"name": "Jo"}, "Hi Jo {{other}}"},
		{"no placeholders", "Hello", translations.M{"name": "John"}, "Hello"},
		{"nil map", "Hello, {{name}}!", nil, "Hello, {{name}}!"},
		{"non scalar value", "{{v}}", translations.M{"v": []int{1, 2}}, "[1 2]"},
		{"bool value", "{{v}}", translations.M{"v": true}, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, translations.ReplacePlaceholders(tt.template, tt.placeholders))
		})
	}
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	t.Run("replaces placeholders", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, messages())
		assert.Equal(t, "Hallo, Max!", store.Translate("de", "greeting", translations.M{"name": "Max"}))
		assert.Equal(t, "Total: 10 EUR", store.Translate("", "total",
			translations.M{"amount": 10, "currency": "USD"},
			translations.M{"currency": "EUR"},
		))
	})

	t.Run("follows fallbacks", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, messages()).SetLocaleFallbacks(map[string]string{"de-AT": "de"})
		assert.Equal(t, "Hallo, Max!", store.Translate("de-AT", "greeting", translations.M{"name": "Max"}))
		assert.Equal(t, "Hello, Max!", store.Translate("pl", "greeting", translations.M{"name": "Max"}))
	})

	t.Run("converts scalars", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "42", newStore(t, messages()).Translate("en", "count"))
	})

	t.Run("returns key when missing", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, messages())
		assert.Equal(t, "missing.key", store.Translate("de", "missing.key"))
		assert.Equal(t, "meta", store.Translate("en", "meta"))
	})

	t.Run("reports missing keys", func(t *testing.T) {
		t.Parallel()
		var (
			missed []string
			buf    bytes.Buffer
		)
		store := newStore(t, messages(),
			translations.WithMissingKeyHandler(func(locale, key string) {
				missed = append(missed, locale+":"+key)
			}),
			translations.WithLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		)

		store.Translate("de", "nope")
		store.TranslatePlural("pl", "apples", 2)
		store.Translate("en", "greeting")

		assert.Equal(t, []string{"de:nope", "pl:apples"}, missed)
		assert.Contains(t, buf.String(), `"msg":"translation not found"`)
		assert.Contains(t, buf.String(), `"key":"nope"`)
	})

	t.Run("sanitizes placeholder values", func(t *testing.T) {
		t.Parallel()
		store := newStore(t, messages(), translations.WithPlaceholderSanitizer(sanitizer.StripTags))
		got := store.Translate("en", "greeting", translations.M{"name": "<script>alert(1)</script><b>Max</b>"})
		assert.Equal(t, "Hello, Max!", got)
	})
}

func TestTranslatePlural(t *testing.T) {
	t.Parallel()

	store := newStore(t, messages())

	tests := []struct {
		name     string
		locale   string
		key      string
		n        int
		expected string
	}{
		{"english zero", "en", "items", 0, "No items"},
		{"english one", "en", "items", 1, "One item"},
		{"english other", "en", "items", 5, "5 items"},
		{"english negative one", "en", "items", -1, "One item"},
		{"zero falls back to other", "en", "files", 0, "0 files in {{dir}}"},
		{"polish one", "pl", "items", 1, "1 element"},
		{"polish few", "pl", "items", 3, "3 elementy"},
		{"polish many", "pl", "items", 5, "5 elementów"},
		{"polish teens are many", "pl", "items", 12, "12 elementów"},
		{"polish 22 is few", "pl", "items", 22, "22 elementy"},
		{"falls back to default locale", "de", "items", 2, "2 items"},
		{"missing key", "en", "apples", 2, "apples"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, store.TranslatePlural(tt.locale, tt.key, tt.n))
		})
	}

	t.Run("merges placeholders", func(t *testing.T) {
		assert.Equal(t, "2 files in /tmp", store.TranslatePlural("en", "files", 2, translations.M{"dir": "/tmp"}))
	})
}

func TestTranslator(t *testing.T) {
	t.Parallel()

	store := newStore(t, messages())

	de := store.For("de")
	assert.Equal(t, "de", de.Locale())
	assert.Equal(t, "Hallo, Max!", de.T("greeting", translations.M{"name": "Max"}))
	assert.Equal(t, "Hallo, Max!", de.TranslateMessage("greeting", map[string]any{"name": "Max"}))
	assert.Equal(t, "1 file in x", de.N("files", 1, translations.M{"dir": "x"}))
	assert.Equal(t, "blue", de.Get("meta.color"))

	def := store.For("")
	assert.Equal(t, "en", def.Locale())
	require.Equal(t, "One item", def.N("items", 1))
}
