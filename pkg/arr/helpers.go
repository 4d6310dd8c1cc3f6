package arr

import "strconv"

// PredicateFunc reports whether an entry matches.
type PredicateFunc func(value any, key string) bool

// First returns the first value of m passing fn, or def.
// A nil fn matches the first entry.
func First(m *Map, fn PredicateFunc, def any) any {
	if m == nil {
		return def
	}
	for p := m.Oldest(); p != nil; p = p.Next() {
		if fn == nil || fn(p.Value, p.Key) {
			return p.Value
		}
	}
	return def
}

// Last returns the last value of m passing fn, or def.
// A nil fn matches the last entry.
func Last(m *Map, fn PredicateFunc, def any) any {
	if m == nil {
		return def
	}
	for p := m.Newest(); p != nil; p = p.Prev() {
		if fn == nil || fn(p.Value, p.Key) {
			return p.Value
		}
	}
	return def
}

// FirstKey returns the first key of m.
func FirstKey(m *Map) (string, bool) {
	if m == nil || m.Oldest() == nil {
		return "", false
	}
	return m.Oldest().Key, true
}

// LastKey returns the last key of m.
func LastKey(m *Map) (string, bool) {
	if m == nil || m.Newest() == nil {
		return "", false
	}
	return m.Newest().Key, true
}

// Flatten collects the leaf values of m into a list, descending at most
// depth levels. depth < 1 means no limit. Arrayable values are converted
// before they are inspected.
func Flatten(m *Map, depth int) *Map {
	out := NewMap()
	flatten(out, m, depth)
	return out
}

func flatten(out, m *Map, depth int) {
	if m == nil {
		return
	}
	for p := m.Oldest(); p != nil; p = p.Next() {
		item := p.Value
		if a, ok := item.(Arrayable); ok {
			item = a.ToArray()
		}

		child, ok := item.(*Map)
		if !ok || child == nil {
			push(out, item)
			continue
		}

		if depth == 1 {
			for c := child.Oldest(); c != nil; c = c.Next() {
				push(out, c.Value)
			}
			continue
		}
		flatten(out, child, depth-1)
	}
}

func push(m *Map, v any) {
	m.Set(strconv.Itoa(m.Len()), v)
}

// GroupFunc returns the group of an entry. The result is converted with
// KeyOf, so nil groups under "".
type GroupFunc func(value any, key string) any

// GroupOption configures GroupBy.
type GroupOption func(*groupOptions)

type groupOptions struct {
	as           func(group *Map) any
	preserveKeys bool
}

// WithoutKeys renumbers the entries of every group from zero.
func WithoutKeys() GroupOption {
	return func(o *groupOptions) {
		o.preserveKeys = false
	}
}

// GroupAs transforms every group once grouping is complete.
func GroupAs(fn func(group *Map) any) GroupOption {
	return func(o *groupOptions) {
		o.as = fn
	}
}

// ByKey groups entries by the value found at path inside each entry.
func ByKey(path string, opts ...Option) GroupFunc {
	return func(value any, _ string) any {
		return Get(value, path, nil, opts...)
	}
}

// GroupBy partitions the values of m into groups keyed by by(value, key).
// Original keys are kept inside each group unless WithoutKeys is given.
//
//	arr.GroupBy(items, arr.ByKey("group"))
func GroupBy(m *Map, by GroupFunc, opts ...GroupOption) *Map {
	o := groupOptions{preserveKeys: true}
	for _, opt := range opts {
		opt(&o)
	}

	groups := NewMap()
	if m == nil {
		return groups
	}

	for p := m.Oldest(); p != nil; p = p.Next() {
		name := KeyOf(by(p.Value, p.Key))

		v, _ := groups.Get(name)
		group, ok := v.(*Map)
		if !ok {
			group = NewMap()
			groups.Set(name, group)
		}

		key := p.Key
		if !o.preserveKeys {
			key = strconv.Itoa(group.Len())
		}
		group.Set(key, p.Value)
	}

	if o.as != nil {
		for p := groups.Oldest(); p != nil; p = p.Next() {
			groups.Set(p.Key, o.as(p.Value.(*Map)))
		}
	}

	return groups
}
