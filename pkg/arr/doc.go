// Package arr provides key-path access over ordered nested structures.
//
// A structure is a *Map: an insertion-ordered map from string keys to
// values, where a value is a scalar, another *Map, or any opaque value.
// Sequences are maps whose keys are "0".."n-1". Native Go maps and slices
// are converted with Normalize before they are stored.
//
// # Notation
//
// Keys containing the separator (default ".") are paths. A direct top-level
// key always wins over a path, so given {"a.b": 1, "a": {"b": 2}} the key
// "a.b" resolves to 1:
//
//	m := arr.Of("meta", arr.Of("color", "red"))
//
//	arr.Get(m, "meta.color", nil)     // "red"
//	arr.Has(m, "meta.weight")         // false
//	arr.Get(m, "meta.", "none")       // "none", empty segments never match
//
//	m = arr.Set(m, "meta.weight", 1500)
//	m = arr.Delete(m, "meta.color")
//
// Lookups never fail: missing keys, non-map intermediate values and
// malformed paths resolve to the default.
//
// # Copy on write
//
// Write operations never modify their input. Set, Add and Delete return a
// new root that shares untouched levels with the old one. Editor batches
// writes and clones each level only once:
//
//	e := arr.Edit(m)
//	e.Set("a.b", 1)
//	e.Set("a.c", 2)
//	m = e.Map()
//
// # Flattening
//
// Dot and Undot convert between nested and dotted flat forms; Flat and
// Unflat use bracketed keys:
//
//	arr.Dot(m, "")   // {"meta.color": "red"}
//	arr.Flat(m, nil) // {"meta[color]": "red"}
//
// # Interchange
//
// EncodeJSON, DecodeJSON and DecodeYAML keep key order in both directions.
package arr
