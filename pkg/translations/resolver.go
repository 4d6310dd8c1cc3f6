package translations

import "slices"

// Resolver turns requested locales into the locales translations are
// stored under. Mapping renames a requested locale ("de-CH" => "de");
// Fallbacks names the locale to try next when a key is missing. Locales
// without a fallback fall back to the default Locale.
type Resolver struct {
	Locale    string
	Mapping   map[string]string
	Fallbacks map[string]string
}

// Stored returns the stored locale for requested. An empty requested
// locale means the default one.
func (r Resolver) Stored(requested string) string {
	if requested == "" {
		requested = r.Locale
	}
	if stored, ok := r.Mapping[requested]; ok {
		return stored
	}
	return requested
}

// Fallback returns the locale tried after locale.
func (r Resolver) Fallback(locale string) string {
	if fallback, ok := r.Fallbacks[locale]; ok {
		return fallback
	}
	return r.Locale
}

// Normalize resolves a list of requested locales. An empty list expands to
// known plus the default locale, without duplicates and in order; otherwise
// every entry goes through Stored.
func (r Resolver) Normalize(requested, known []string) []string {
	if len(requested) > 0 {
		out := make([]string, len(requested))
		for i, locale := range requested {
			out[i] = r.Stored(locale)
		}
		return out
	}

	out := make([]string, 0, len(known)+1)
	for _, locale := range append(slices.Clip(known), r.Locale) {
		if !slices.Contains(out, locale) {
			out = append(out, locale)
		}
	}
	return out
}

// Chain returns the stored locales a lookup for locale visits, in order:
// the stored locale itself, then one fallback hop at a time until the
// default locale. A fallback cycle jumps straight to the default locale.
//
//	r := Resolver{Locale: "en", Fallbacks: map[string]string{"it": "de"}}
//	r.Chain("it") // ["it", "de", "en"]
func (r Resolver) Chain(locale string) []string {
	last := r.Stored(r.Locale)
	current := r.Stored(locale)

	var chain []string
	for {
		chain = append(chain, current)
		if current == last {
			return chain
		}

		next := r.Stored(r.Fallback(current))
		if slices.Contains(chain, next) {
			next = last
		}
		current = next
	}
}

func (r Resolver) clone() Resolver {
	return Resolver{
		Locale:    r.Locale,
		Mapping:   cloneMap(r.Mapping),
		Fallbacks: cloneMap(r.Fallbacks),
	}
}

func cloneMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
