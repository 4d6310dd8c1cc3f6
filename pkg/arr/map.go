package arr

import (
	"reflect"
	"strconv"

	"github.com/spf13/cast"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is an insertion-ordered nested structure. Keys are strings; integer
// keys are stored in their canonical decimal form, so "5" and 5 are the
// same key.
type Map = orderedmap.OrderedMap[string, any]

// Pair is a single Map entry.
type Pair = orderedmap.Pair[string, any]

// Accessor is implemented by values that expose direct key lookup.
// Read operations accept an Accessor as a root, but only for direct
// members: a notated key is never walked through an Accessor, so
// Get(acc, "a.b", def) resolves only when acc has the literal key "a.b".
// Nested levels are only descended when they are a *Map.
type Accessor interface {
	Lookup(key string) (any, bool)
}

// Arrayable is implemented by values that can convert themselves into a Map.
type Arrayable interface {
	ToArray() *Map
}

// Jsonable is implemented by values that can serialize themselves to JSON.
type Jsonable interface {
	ToJSON() ([]byte, error)
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return orderedmap.New[string, any]()
}

// Of builds a Map from alternating keys and values:
//
//	arr.Of("title", "Car", "meta", arr.Of("color", "red"))
//
// Values are normalized; a trailing key without a value maps to nil.
func Of(kv ...any) *Map {
	m := NewMap()
	for i := 0; i < len(kv); i += 2 {
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		m.Set(KeyOf(kv[i]), Normalize(v))
	}
	return m
}

// List builds a list-like Map with keys "0".."n-1".
func List(values ...any) *Map {
	m := NewMap()
	for i, v := range values {
		m.Set(strconv.Itoa(i), Normalize(v))
	}
	return m
}

// KeyOf converts v into a Map key. Floats are truncated, booleans become
// "0" or "1" and nil becomes the empty string.
func KeyOf(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case bool:
		if t {
			return "1"
		}
		return "0"
	case float32:
		return strconv.FormatInt(int64(t), 10)
	case float64:
		return strconv.FormatInt(int64(t), 10)
	}
	return cast.ToString(v)
}

// IsIntKey reports whether k is the canonical decimal form of an integer.
func IsIntKey(k string) bool {
	n, err := strconv.ParseInt(k, 10, 64)
	return err == nil && strconv.FormatInt(n, 10) == k
}

// IsList reports whether the keys of m are "0".."n-1" in order.
// An empty or nil Map is a list.
func IsList(m *Map) bool {
	if m == nil {
		return true
	}
	i := 0
	for p := m.Oldest(); p != nil; p = p.Next() {
		if p.Key != strconv.Itoa(i) {
			return false
		}
		i++
	}
	return true
}

// Keys returns the first-level keys of m in order.
func Keys(m *Map) []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, m.Len())
	for p := m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Values returns the first-level values of m in order.
func Values(m *Map) []any {
	if m == nil {
		return nil
	}
	values := make([]any, 0, m.Len())
	for p := m.Oldest(); p != nil; p = p.Next() {
		values = append(values, p.Value)
	}
	return values
}

// Clone returns a shallow copy of m. Nested maps are shared.
func Clone(m *Map) *Map {
	out := NewMap()
	if m == nil {
		return out
	}
	for p := m.Oldest(); p != nil; p = p.Next() {
		out.Set(p.Key, p.Value)
	}
	return out
}

// Equal reports whether a and b hold the same keys in the same order with
// equal values. Non-map values are compared with reflect.DeepEqual.
func Equal(a, b any) bool {
	am, aok := a.(*Map)
	bm, bok := b.(*Map)
	if aok != bok {
		return false
	}
	if !aok {
		return reflect.DeepEqual(a, b)
	}
	if size(am) != size(bm) {
		return false
	}
	if am == nil || bm == nil {
		return true
	}
	for pa, pb := am.Oldest(), bm.Oldest(); pa != nil; pa, pb = pa.Next(), pb.Next() {
		if pa.Key != pb.Key || !Equal(pa.Value, pb.Value) {
			return false
		}
	}
	return true
}

// ToNative converts v into plain Go values: non-empty list-like maps become
// []any and other maps become map[string]any. Key order is lost.
func ToNative(v any) any {
	m, ok := v.(*Map)
	if !ok {
		return v
	}
	if m != nil && m.Len() > 0 && IsList(m) {
		out := make([]any, 0, m.Len())
		for p := m.Oldest(); p != nil; p = p.Next() {
			out = append(out, ToNative(p.Value))
		}
		return out
	}
	out := make(map[string]any, size(m))
	if m == nil {
		return out
	}
	for p := m.Oldest(); p != nil; p = p.Next() {
		out[p.Key] = ToNative(p.Value)
	}
	return out
}

func size(m *Map) int {
	if m == nil {
		return 0
	}
	return m.Len()
}
