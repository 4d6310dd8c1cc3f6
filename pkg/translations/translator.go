package translations

// Translator is a view of Translations bound to one locale.
type Translator struct {
	t      *Translations
	locale string
}

// For returns a Translator for locale. An empty locale means the default
// locale at the time of each call.
func (t *Translations) For(locale string) *Translator {
	return &Translator{t: t, locale: locale}
}

// Locale returns the requested locale of the translator.
func (tr *Translator) Locale() string {
	if tr.locale == "" {
		return tr.t.Locale()
	}
	return tr.locale
}

// T translates key, see Translations.Translate.
func (tr *Translator) T(key string, placeholders ...M) string {
	return tr.t.Translate(tr.locale, key, placeholders...)
}

// N translates the plural form of key for n, see Translations.TranslatePlural.
func (tr *Translator) N(key string, n int, placeholders ...M) string {
	return tr.t.TranslatePlural(tr.locale, key, n, placeholders...)
}

// TranslateMessage translates key with a single placeholder map, matching
// the func(key string, values map[string]any) string shape used by message
// catalogs.
func (tr *Translator) TranslateMessage(key string, values map[string]any) string {
	return tr.t.Translate(tr.locale, key, M(values))
}

// Get returns the raw translation of key, following fallbacks.
func (tr *Translator) Get(key string) any {
	return tr.t.Get(key, tr.locale)
}
