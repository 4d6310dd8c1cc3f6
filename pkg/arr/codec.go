package arr

import "strings"

// TransformFunc rewrites a value while a structure is flattened or
// unflattened. key is the flat key of the value.
type TransformFunc func(value any, key string) any

var bracketReplacer = strings.NewReplacer("[]", "", "[", DefaultSeparator, "]", "")

// Dot flattens m into a single-level Map whose keys are notated paths,
// each prefixed with prefix. Empty nested maps are not descended and are
// kept as leaf values under their path.
//
//	{"bar": {"bar1": "x"}} => {"bar.bar1": "x"}
func Dot(m *Map, prefix string, opts ...Option) *Map {
	o := newOptions(opts)
	out := NewMap()
	dot(out, m, prefix, o.separator)
	return out
}

func dot(out, m *Map, prefix, sep string) {
	if m == nil {
		return
	}
	for p := m.Oldest(); p != nil; p = p.Next() {
		if child, ok := p.Value.(*Map); ok && child != nil && child.Len() > 0 {
			dot(out, child, prefix+p.Key+sep, sep)
			continue
		}
		out.Set(prefix+p.Key, p.Value)
	}
}

// Undot expands notated keys of flat back into nested levels. fn, when not
// nil, transforms every value before it is stored. Later keys win.
func Undot(flat *Map, fn TransformFunc, opts ...Option) *Map {
	e := Edit(NewMap(), opts...)
	if flat == nil {
		return e.Map()
	}
	for p := flat.Oldest(); p != nil; p = p.Next() {
		v := p.Value
		if fn != nil {
			v = fn(v, p.Key)
		}
		e.Set(p.Key, v)
	}
	return e.Map()
}

// Flat flattens m using bracketed keys: a.b.c becomes a[b][c].
// fn receives the bracketed key.
func Flat(m *Map, fn TransformFunc) *Map {
	out := NewMap()
	for p := Dot(m, "").Oldest(); p != nil; p = p.Next() {
		segs := strings.Split(p.Key, DefaultSeparator)

		var b strings.Builder
		b.WriteString(segs[0])
		for _, seg := range segs[1:] {
			b.WriteByte('[')
			b.WriteString(seg)
			b.WriteByte(']')
		}

		key := b.String()
		v := p.Value
		if fn != nil {
			v = fn(v, key)
		}
		out.Set(key, v)
	}
	return out
}

// Unflat is the inverse of Flat. Trailing [] markers are dropped:
// tags[] is stored as tags.
func Unflat(flat *Map, fn TransformFunc) *Map {
	dotted := NewMap()
	if flat != nil {
		for p := flat.Oldest(); p != nil; p = p.Next() {
			dotted.Set(bracketReplacer.Replace(p.Key), p.Value)
		}
	}
	return Undot(dotted, fn)
}
