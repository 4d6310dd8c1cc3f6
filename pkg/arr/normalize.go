package arr

import (
	"cmp"
	"maps"
	"reflect"
	"slices"
	"strconv"
)

// Normalize converts native Go containers into *Map recursively.
// map[K]V with string or integer keys becomes a Map with its keys sorted;
// slices and arrays (except []byte) become list-like Maps. Scalars, *Map
// values and any other type are returned unchanged.
func Normalize(v any) any {
	switch t := v.(type) {
	case nil, *Map, string, bool, []byte,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	case map[string]any:
		m := NewMap()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			m.Set(k, Normalize(t[k]))
		}
		return m
	case map[string]string:
		m := NewMap()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			m.Set(k, t[k])
		}
		return m
	case []any:
		m := NewMap()
		for i, x := range t {
			m.Set(strconv.Itoa(i), Normalize(x))
		}
		return m
	case []string:
		m := NewMap()
		for i, x := range t {
			m.Set(strconv.Itoa(i), x)
		}
		return m
	}
	return normalizeReflect(v)
}

func normalizeReflect(v any) any {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Map:
		keyOf, less := mapKeyFuncs(rv.Type().Key().Kind())
		if keyOf == nil {
			return v
		}

		keys := rv.MapKeys()
		slices.SortFunc(keys, less)

		m := NewMap()
		for _, k := range keys {
			m.Set(keyOf(k), Normalize(rv.MapIndex(k).Interface()))
		}
		return m

	case reflect.Slice, reflect.Array:
		m := NewMap()
		for i := range rv.Len() {
			m.Set(strconv.Itoa(i), Normalize(rv.Index(i).Interface()))
		}
		return m
	}

	return v
}

func mapKeyFuncs(kind reflect.Kind) (func(reflect.Value) string, func(a, b reflect.Value) int) {
	switch kind {
	case reflect.String:
		return func(k reflect.Value) string { return k.String() },
			func(a, b reflect.Value) int { return cmp.Compare(a.String(), b.String()) }
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(k reflect.Value) string { return strconv.FormatInt(k.Int(), 10) },
			func(a, b reflect.Value) int { return cmp.Compare(a.Int(), b.Int()) }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return func(k reflect.Value) string { return strconv.FormatUint(k.Uint(), 10) },
			func(a, b reflect.Value) int { return cmp.Compare(a.Uint(), b.Uint()) }
	}
	return nil, nil
}
