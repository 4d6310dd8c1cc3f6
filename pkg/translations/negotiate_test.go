package translations_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/collection/pkg/arr"
	"github.com/dmitrymomot/collection/pkg/translations"
)

func TestNegotiate(t *testing.T) {
	t.Parallel()

	store := newStore(t, arr.Of(
		"en", arr.Of("title", "Car"),
		"de", arr.Of("title", "Auto"),
		"fr", arr.Of("title", "Voiture"),
	)).SetLocaleMapping(map[string]string{"de-CH": "de"})

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "en"},
		{"exact match", "fr", "fr"},
		{"quality order", "ja;q=0.9,de;q=0.8,fr;q=0.5", "de"},
		{"regional variant", "fr-CA,en;q=0.5", "fr"},
		{"mapped locale", "de-CH", "de-CH"},
		{"no match", "ja,zh;q=0.8", "en"},
		{"garbage", ";;;,,q=abc", "en"},
		{"oversized header", strings.Repeat("fr,,", 2000), "fr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.Negotiate(tt.header))
		})
	}

	t.Run("negotiated locale translates", func(t *testing.T) {
		assert.Equal(t, "Auto", store.Translate(store.Negotiate("de-CH,en;q=0.5"), "title"))
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	store := newStore(t, arr.Of(
		"en", arr.Of("title", "Car"),
		"de", arr.Of("title", "Auto"),
	))

	t.Run("without locale", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		_, ok := translations.LocaleFromContext(ctx)
		assert.False(t, ok)
		assert.Equal(t, "Car", store.TranslateContext(ctx, "title"))
	})

	t.Run("with locale", func(t *testing.T) {
		t.Parallel()
		ctx := translations.ContextWithLocale(context.Background(), "de")
		locale, ok := translations.LocaleFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "de", locale)
		assert.Equal(t, "Auto", store.TranslateContext(ctx, "title"))
	})

	t.Run("log extractor", func(t *testing.T) {
		t.Parallel()
		extract := translations.LogExtractor()

		_, ok := extract(context.Background())
		assert.False(t, ok)

		attr, ok := extract(translations.ContextWithLocale(context.Background(), "de"))
		assert.True(t, ok)
		assert.Equal(t, "locale", attr.Key)
		assert.Equal(t, "de", attr.Value.String())
	})
}
