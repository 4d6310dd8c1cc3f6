package collection

import "github.com/dmitrymomot/collection/pkg/arr"

// Map returns a collection with every value replaced by fn(value, key).
// Keys are kept.
func (c *Collection) Map(fn func(value any, key string) any) *Collection {
	out := arr.NewMap()
	for p := c.edit().Map().Oldest(); p != nil; p = p.Next() {
		out.Set(p.Key, arr.Normalize(fn(p.Value, p.Key)))
	}
	return wrap(out)
}

// Filter returns a collection holding the items for which fn returns true.
// Keys are kept.
func (c *Collection) Filter(fn arr.PredicateFunc) *Collection {
	out := arr.NewMap()
	for p := c.edit().Map().Oldest(); p != nil; p = p.Next() {
		if fn(p.Value, p.Key) {
			out.Set(p.Key, p.Value)
		}
	}
	return wrap(out)
}

// Keys returns a list of the first-level keys.
func (c *Collection) Keys() *Collection {
	keys := arr.Keys(c.edit().Peek())
	values := make([]any, len(keys))
	for i, k := range keys {
		values[i] = k
	}
	return wrap(arr.List(values...))
}

// KeysOf returns a list of the first-level keys whose value equals search.
// strict compares kind and value; otherwise numbers, numeric strings and
// booleans are compared loosely.
func (c *Collection) KeysOf(search any, strict bool) *Collection {
	equal := looseEqual
	if strict {
		equal = arr.Equal
	}

	var keys []any
	for p := c.edit().Peek().Oldest(); p != nil; p = p.Next() {
		if equal(p.Value, search) {
			keys = append(keys, p.Key)
		}
	}
	return wrap(arr.List(keys...))
}

// Values returns a list of the first-level values.
func (c *Collection) Values() *Collection {
	return wrap(arr.List(arr.Values(c.edit().Map())...))
}

// Flatten returns a list of the leaf values, descending at most depth
// levels. depth < 1 means no limit. Nested collections are unwrapped.
func (c *Collection) Flatten(depth int) *Collection {
	return wrap(arr.Flatten(c.edit().Map(), depth))
}

// Only returns a collection holding keys, each set to its value or def.
// Dotted keys produce nested levels.
func (c *Collection) Only(keys []string, def any) *Collection {
	return wrap(arr.Only(c.edit().Map(), keys, def))
}

// OnlyPresent is Only without the keys that do not resolve.
func (c *Collection) OnlyPresent(keys []string) *Collection {
	return wrap(arr.OnlyPresent(c.edit().Map(), keys))
}

// Except returns a collection without keys.
func (c *Collection) Except(keys []string) *Collection {
	return wrap(arr.Except(c.edit().Map(), keys))
}

// GroupBy partitions the items into groups keyed by by(value, key).
//
//	c.GroupBy(arr.ByKey("type"), arr.WithoutKeys())
func (c *Collection) GroupBy(by arr.GroupFunc, opts ...arr.GroupOption) *Collection {
	return wrap(arr.GroupBy(c.edit().Map(), by, opts...))
}
