package translations

import (
	"log/slog"

	"github.com/spf13/cast"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/collection/pkg/arr"
)

// Plural forms as defined by Unicode CLDR. A plural translation is a group
// keyed by form:
//
//	"items": {"zero": "No items", "one": "{{count}} item", "other": "{{count}} items"}
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// Translate returns the translation of key for locale as a string, with
// placeholders replaced. The fallback chain is followed like in Get.
// Returns key when no locale in the chain has a scalar stored under it.
func (t *Translations) Translate(locale, key string, placeholders ...M) string {
	for _, stored := range t.resolver.Chain(locale) {
		if s, ok := t.text(stored, key); ok {
			return replace(s, merge(nil, placeholders), t.sanitize)
		}
	}
	return t.missed(locale, key)
}

// TranslatePlural returns the plural form of key matching n for locale.
// The form is chosen with the CLDR rules of each locale in the fallback
// chain; missing forms fall back to broader ones and finally to "other".
// n is available as the {{count}} placeholder.
func (t *Translations) TranslatePlural(locale, key string, n int, placeholders ...M) string {
	for _, stored := range t.resolver.Chain(locale) {
		for _, form := range pluralForms(stored, n) {
			if s, ok := t.text(stored, key+arr.DefaultSeparator+form); ok {
				return replace(s, merge(M{"count": n}, placeholders), t.sanitize)
			}
		}
	}
	return t.missed(locale, key)
}

func (t *Translations) text(stored, key string) (string, bool) {
	v := t.items.Get(join(stored, key), nil)
	if v == nil {
		return "", false
	}
	if _, isMap := v.(*arr.Map); isMap {
		return "", false
	}
	s, err := cast.ToStringE(v)
	return s, err == nil
}

func (t *Translations) missed(locale, key string) string {
	if t.missing != nil {
		t.missing(locale, key)
	}
	t.logger.Debug("translation not found",
		slog.String("locale", t.resolver.Stored(locale)),
		slog.String("key", key),
	)
	return key
}

// pluralForms lists the forms tried for n in locale, best match first.
// Zero always tries "zero" first, even in languages without that form.
func pluralForms(locale string, n int) []string {
	if n < 0 {
		n = -n
	}

	form := formName(plural.Cardinal.MatchPlural(language.Make(locale), n, 0, 0, 0, 0))
	forms := []string{form}
	if n == 0 && form != PluralZero {
		forms = []string{PluralZero, form}
	}

	return append(forms, pluralFallbacks(form)...)
}

func formName(f plural.Form) string {
	switch f {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

func pluralFallbacks(form string) []string {
	switch form {
	case PluralZero, PluralOne, PluralMany:
		return []string{PluralOther}
	case PluralTwo:
		return []string{PluralFew, PluralMany, PluralOther}
	case PluralFew:
		return []string{PluralMany, PluralOther}
	default:
		return nil
	}
}
