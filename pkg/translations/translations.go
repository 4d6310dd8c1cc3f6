package translations

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/dmitrymomot/collection/pkg/arr"
	"github.com/dmitrymomot/collection/pkg/collection"
	"github.com/dmitrymomot/collection/pkg/logger"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// Translations stores translation structures per locale. The top level of
// the underlying collection is keyed by stored locale; everything below is
// addressed with dot-notation keys.
//
// Single-locale methods accept a requested locale (empty means the default
// one) and resolve it through the locale mapping. The ...In variants accept
// a list of locales.
//
// Translations is not safe for concurrent use.
type Translations struct {
	items    *collection.Collection
	resolver Resolver

	logger   *slog.Logger
	missing  func(locale, key string)
	sanitize func(string) string
	content  func(string) string
	loaders  []func(*Translations) error
}

var (
	_ arr.Arrayable = (*Translations)(nil)
	_ arr.Jsonable  = (*Translations)(nil)
)

// Option configures Translations during construction.
type Option func(*Translations) error

// New creates a translation store. Loaders registered with WithJSONDir and
// WithYAMLDir run after every other option, in the order given.
func New(opts ...Option) (*Translations, error) {
	t := &Translations{
		items: collection.New(nil),
		resolver: Resolver{
			Locale:    DefaultLocale,
			Mapping:   map[string]string{},
			Fallbacks: map[string]string{},
		},
		logger: logger.NewNope(),
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	for _, load := range t.loaders {
		if err := load(t); err != nil {
			return nil, fmt.Errorf("failed to load translations: %w", err)
		}
	}
	t.loaders = nil

	return t, nil
}

// Get returns the translation stored under key for locale. When nothing is
// stored, the lookup follows the fallback chain up to the default locale.
// Returns nil if no locale in the chain has the key.
func (t *Translations) Get(key, locale string) any {
	v, _ := t.lookup(key, locale)
	return v
}

// GetOr returns the translation stored under key for locale, or def. The
// fallback chain is never followed, even when def is nil. A non-nil def
// also acts as a type guard, see collection.Collection.Get.
func (t *Translations) GetOr(key string, def any, locale string) any {
	return t.items.Get(join(t.resolver.Stored(locale), key), def)
}

// GetIn runs Get for every locale in locales and returns the results keyed
// by the requested locale identifiers. An empty list means every known
// locale plus the default one.
func (t *Translations) GetIn(key string, locales []string) *arr.Map {
	out := arr.NewMap()
	for _, locale := range t.requested(locales) {
		out.Set(locale, t.Get(key, locale))
	}
	return out
}

// GetOrIn is GetIn with an explicit default.
func (t *Translations) GetOrIn(key string, def any, locales []string) *arr.Map {
	out := arr.NewMap()
	for _, locale := range t.requested(locales) {
		out.Set(locale, t.GetOr(key, def, locale))
	}
	return out
}

// Set stores value under key for locale.
func (t *Translations) Set(key string, value any, locale string) *Translations {
	t.items.Set(join(t.resolver.Stored(locale), key), value)
	return t
}

// SetIn stores value under key for every locale in locales. An empty list
// means every known locale plus the default one.
func (t *Translations) SetIn(key string, value any, locales []string) *Translations {
	for _, stored := range t.resolver.Normalize(locales, t.Locales()) {
		t.items.Set(join(stored, key), value)
	}
	return t
}

// Add stores value under key for locale unless a non-nil value is already
// there.
func (t *Translations) Add(key string, value any, locale string) *Translations {
	t.items.Add(join(t.resolver.Stored(locale), key), value)
	return t
}

// AddIn is Add for every locale in locales, with the list rules of SetIn.
func (t *Translations) AddIn(key string, value any, locales []string) *Translations {
	for _, stored := range t.resolver.Normalize(locales, t.Locales()) {
		t.items.Add(join(stored, key), value)
	}
	return t
}

// Has reports whether key exists for locale. Fallbacks are not consulted.
func (t *Translations) Has(key, locale string) bool {
	return t.items.Has(join(t.resolver.Stored(locale), key))
}

// HasIn reports whether key exists for every locale in locales. An empty
// list means every known locale.
func (t *Translations) HasIn(key string, locales []string) bool {
	for _, stored := range t.known(locales) {
		if !t.items.Has(join(stored, key)) {
			return false
		}
	}
	return true
}

// Delete removes key for locale.
func (t *Translations) Delete(key, locale string) *Translations {
	t.items.Delete(join(t.resolver.Stored(locale), key))
	return t
}

// DeleteIn removes key for every locale in locales. An empty list means
// every known locale.
func (t *Translations) DeleteIn(key string, locales []string) *Translations {
	for _, stored := range t.known(locales) {
		t.items.Delete(join(stored, key))
	}
	return t
}

// DeleteAll removes the whole bucket of locale.
func (t *Translations) DeleteAll(locale string) *Translations {
	t.items.Delete(t.resolver.Stored(locale))
	return t
}

// DeleteAllIn removes the buckets of locales. An empty list removes every
// translation.
func (t *Translations) DeleteAllIn(locales []string) *Translations {
	if len(locales) == 0 {
		t.items.SetAll(nil)
		return t
	}
	for _, stored := range t.resolver.Normalize(locales, nil) {
		t.items.Delete(stored)
	}
	return t
}

// All returns the bucket of locale, or an empty map when nothing is stored
// for it. The map must not be modified.
func (t *Translations) All(locale string) *arr.Map {
	return t.bucket(t.resolver.Stored(locale))
}

// AllIn returns the buckets of locales keyed by stored locale. A locale
// without translations maps to an empty map. An empty list returns every
// bucket.
func (t *Translations) AllIn(locales []string) *arr.Map {
	if len(locales) == 0 {
		return t.items.All()
	}
	out := arr.NewMap()
	for _, stored := range t.resolver.Normalize(locales, nil) {
		out.Set(stored, t.bucket(stored))
	}
	return out
}

// Locales returns the stored locales in insertion order.
func (t *Translations) Locales() []string {
	return arr.Keys(t.items.All())
}

// Locale returns the default locale.
func (t *Translations) Locale() string {
	return t.resolver.Locale
}

// Resolver returns a copy of the locale configuration.
func (t *Translations) Resolver() Resolver {
	return t.resolver.clone()
}

// SetLocale changes the default locale. An empty locale is ignored.
func (t *Translations) SetLocale(locale string) *Translations {
	if locale != "" {
		t.resolver.Locale = locale
	}
	return t
}

// SetLocaleMapping replaces the locale mapping (requested => stored).
func (t *Translations) SetLocaleMapping(mapping map[string]string) *Translations {
	t.resolver.Mapping = cloneMap(mapping)
	return t
}

// SetLocaleFallbacks replaces the fallback table (locale => next locale).
func (t *Translations) SetLocaleFallbacks(fallbacks map[string]string) *Translations {
	t.resolver.Fallbacks = cloneMap(fallbacks)
	return t
}

// SetAll replaces every translation. items is accepted in any form
// collection.New accepts; its top level is keyed by stored locale.
func (t *Translations) SetAll(items any) *Translations {
	t.items.SetAll(items)
	return t
}

// Iter iterates over locale buckets.
func (t *Translations) Iter() iter.Seq2[string, any] {
	return t.items.Iter()
}

// ToArray returns every bucket as plain nested maps.
func (t *Translations) ToArray() *arr.Map {
	return t.items.ToArray()
}

// ToJSON encodes every bucket, keeping key order.
func (t *Translations) ToJSON() ([]byte, error) {
	return t.items.ToJSON()
}

// MarshalJSON implements json.Marshaler with the same output as ToJSON.
func (t *Translations) MarshalJSON() ([]byte, error) {
	return t.items.ToJSON()
}

func (t *Translations) lookup(key, locale string) (any, bool) {
	for _, stored := range t.resolver.Chain(locale) {
		if v := t.items.Get(join(stored, key), nil); v != nil {
			return v, true
		}
	}
	return nil, false
}

func (t *Translations) bucket(stored string) *arr.Map {
	if m, ok := t.items.Get(stored, nil).(*arr.Map); ok {
		return m
	}
	return arr.NewMap()
}

// requested expands an empty list to every known locale plus the default
// one, keeping the requested identifiers otherwise.
func (t *Translations) requested(locales []string) []string {
	if len(locales) > 0 {
		return locales
	}
	return t.resolver.Normalize(nil, t.Locales())
}

// known resolves locales, expanding an empty list to the known locales only.
func (t *Translations) known(locales []string) []string {
	if len(locales) == 0 {
		return t.Locales()
	}
	return t.resolver.Normalize(locales, nil)
}

// join builds the path of key inside a locale bucket. An empty key yields
// "<locale>.", which never resolves.
func join(locale, key string) string {
	return locale + arr.DefaultSeparator + key
}
