package translations

import (
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the header parsed by Negotiate.
const maxAcceptLanguageLength = 4096

// Negotiate returns the locale best matching an Accept-Language header,
// chosen among the default locale, the stored locales and the keys of the
// locale mapping. The default locale is returned when nothing matches.
//
//	t.Negotiate("de-CH,de;q=0.9,en;q=0.8") // "de-CH" when mapped, else "de"
func (t *Translations) Negotiate(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.resolver.Locale
	}
	if len(acceptLanguage) > maxAcceptLanguageLength {
		acceptLanguage = acceptLanguage[:maxAcceptLanguageLength]
	}

	var (
		ids  []string
		tags []language.Tag
	)
	candidates := append([]string{t.resolver.Locale}, t.Locales()...)
	candidates = append(candidates, slices.Sorted(maps.Keys(t.resolver.Mapping))...)
	for _, id := range candidates {
		if slices.Contains(ids, id) {
			continue
		}
		tag, err := language.Parse(id)
		if err != nil {
			continue
		}
		ids = append(ids, id)
		tags = append(tags, tag)
	}
	if len(tags) == 0 || ids[0] != t.resolver.Locale {
		return t.resolver.Locale
	}

	_, index := language.MatchStrings(language.NewMatcher(tags), acceptLanguage)
	return ids[index]
}
