package arr

import "strings"

// Exists reports whether key is a direct member of s, without splitting it
// on the separator.
func Exists(s any, key string) bool {
	_, ok := lookup(s, key)
	return ok
}

// HasNotation reports whether key contains sep.
func HasNotation(key, sep string) bool {
	return sep != "" && strings.Contains(key, sep)
}

// IsArrayable reports whether v can be used as the root of a key lookup:
// a non-nil *Map or an Accessor. Only a *Map root is walked for notated
// keys.
func IsArrayable(v any) bool {
	switch t := v.(type) {
	case *Map:
		return t != nil
	case Accessor:
		return true
	}
	return false
}

// Has reports whether key resolves in s. A direct member always wins;
// otherwise a notated key is walked segment by segment and fails closed as
// soon as a segment is missing or the current value is not a *Map.
func Has(s any, key string, opts ...Option) bool {
	if !IsArrayable(s) {
		return false
	}
	if Exists(s, key) {
		return true
	}

	o := newOptions(opts)
	if !HasNotation(key, o.separator) {
		return false
	}

	_, ok := walk(s, key, o.separator)
	return ok
}

// Get returns the value at key, or def when it does not resolve.
//
//	arr.Get(m, "meta.color", "none")
func Get(s any, key string, def any, opts ...Option) any {
	if !IsArrayable(s) {
		return def
	}
	if v, ok := lookup(s, key); ok {
		return v
	}

	o := newOptions(opts)
	if !HasNotation(key, o.separator) {
		return def
	}

	if v, ok := walk(s, key, o.separator); ok {
		return v
	}
	return def
}

// Set returns a copy of m with value stored at key. Intermediate levels are
// created as needed; an intermediate value that is not a *Map is replaced by
// an empty one. A nil m yields value itself when it is a *Map, otherwise a
// one-element list holding value. m is never modified.
func Set(m *Map, key string, value any, opts ...Option) *Map {
	e := Edit(m, opts...)
	e.Set(key, value)
	return e.Map()
}

// Add is Set, applied only when the current value at key is nil or absent.
func Add(m *Map, key string, value any, opts ...Option) *Map {
	e := Edit(m, opts...)
	e.Add(key, value)
	return e.Map()
}

// Delete returns a copy of m without key. It is a no-op when any segment of
// a notated key is missing or not descendable.
func Delete(m *Map, key string, opts ...Option) *Map {
	e := Edit(m, opts...)
	e.Delete(key)
	return e.Map()
}

// Only builds a new Map holding every key in keys, each resolved with Get
// (falling back to def) and re-inserted with Set, so dotted keys expand into
// nested levels.
func Only(s any, keys []string, def any, opts ...Option) *Map {
	if !IsArrayable(s) {
		return NewMap()
	}

	e := Edit(NewMap(), opts...)
	for _, key := range keys {
		e.Set(key, Get(s, key, def, opts...))
	}
	return e.Map()
}

// OnlyPresent is Only without the keys that do not resolve.
func OnlyPresent(s any, keys []string, opts ...Option) *Map {
	if !IsArrayable(s) {
		return NewMap()
	}

	e := Edit(NewMap(), opts...)
	for _, key := range keys {
		if Has(s, key, opts...) {
			e.Set(key, Get(s, key, nil, opts...))
		}
	}
	return e.Map()
}

// Except returns a copy of m with every key in keys deleted.
func Except(m *Map, keys []string, opts ...Option) *Map {
	if m == nil {
		return NewMap()
	}

	e := Edit(m, opts...)
	for _, key := range keys {
		e.Delete(key)
	}
	return e.Map()
}

func lookup(s any, key string) (any, bool) {
	switch t := s.(type) {
	case *Map:
		if t == nil {
			return nil, false
		}
		return t.Get(key)
	case Accessor:
		return t.Lookup(key)
	}
	return nil, false
}

func walk(s any, key, sep string) (any, bool) {
	cur := s
	for seg := range strings.SplitSeq(key, sep) {
		m, ok := cur.(*Map)
		if !ok || m == nil {
			return nil, false
		}
		if cur, ok = m.Get(seg); !ok {
			return nil, false
		}
	}
	return cur, true
}
