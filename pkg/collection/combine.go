package collection

import (
	"fmt"
	"strconv"

	"github.com/dmitrymomot/collection/pkg/arr"
)

// Replace returns a collection with the items of other written over the
// receiver's, key by key.
func (c *Collection) Replace(other any) *Collection {
	out := arr.Clone(c.edit().Map())
	for p := itemsOf(other).Oldest(); p != nil; p = p.Next() {
		out.Set(p.Key, p.Value)
	}
	return wrap(out)
}

// ReplaceRecursive is Replace, merging nested maps key by key instead of
// overwriting them.
func (c *Collection) ReplaceRecursive(other any) *Collection {
	return wrap(replaceRecursive(c.edit().Map(), itemsOf(other)))
}

func replaceRecursive(base, with *arr.Map) *arr.Map {
	out := arr.Clone(base)
	for p := with.Oldest(); p != nil; p = p.Next() {
		cur, _ := out.Get(p.Key)
		a, aok := cur.(*arr.Map)
		b, bok := p.Value.(*arr.Map)
		if aok && bok && a != nil && b != nil {
			out.Set(p.Key, replaceRecursive(a, b))
			continue
		}
		out.Set(p.Key, p.Value)
	}
	return out
}

// Merge appends the items of other. Integer keys of both sides are
// renumbered in order; string keys of other overwrite the receiver's.
func (c *Collection) Merge(other any) *Collection {
	out := arr.NewMap()
	next := 0
	for _, m := range []*arr.Map{c.edit().Map(), itemsOf(other)} {
		for p := m.Oldest(); p != nil; p = p.Next() {
			if arr.IsIntKey(p.Key) {
				out.Set(strconv.Itoa(next), p.Value)
				next++
				continue
			}
			out.Set(p.Key, p.Value)
		}
	}
	return wrap(out)
}

// MergeRecursive is Merge, except that a string key present on both sides
// collects both values: maps are merged recursively and scalars are turned
// into a list.
//
//	{"title": "Car"} + {"title": "VW"} => {"title": ["Car", "VW"]}
func (c *Collection) MergeRecursive(other any) *Collection {
	return wrap(mergeRecursive(c.edit().Map(), itemsOf(other)))
}

func mergeRecursive(a, b *arr.Map) *arr.Map {
	out := arr.NewMap()
	next := 0
	for _, m := range []*arr.Map{a, b} {
		for p := m.Oldest(); p != nil; p = p.Next() {
			if arr.IsIntKey(p.Key) {
				out.Set(strconv.Itoa(next), p.Value)
				next++
				continue
			}
			cur, ok := out.Get(p.Key)
			if !ok {
				out.Set(p.Key, p.Value)
				continue
			}
			out.Set(p.Key, mergeRecursive(asMap(cur), asMap(p.Value)))
		}
	}
	return out
}

func asMap(v any) *arr.Map {
	if m, ok := v.(*arr.Map); ok && m != nil {
		return m
	}
	return arr.List(v)
}

// Union returns a collection with the items of other added for keys the
// receiver does not have. Colliding keys keep the receiver's value.
func (c *Collection) Union(other any) *Collection {
	out := arr.Clone(c.edit().Map())
	for p := itemsOf(other).Oldest(); p != nil; p = p.Next() {
		if _, ok := out.Get(p.Key); !ok {
			out.Set(p.Key, p.Value)
		}
	}
	return wrap(out)
}

// Combine returns a collection that uses the receiver's values as keys and
// the values of other as values, pairwise in order. It fails with
// ErrLengthMismatch when the two sides differ in length.
func (c *Collection) Combine(other any) (*Collection, error) {
	keys := arr.Values(c.edit().Peek())
	values := arr.Values(itemsOf(other))
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, len(keys), len(values))
	}

	out := arr.NewMap()
	for i, k := range keys {
		out.Set(arr.KeyOf(k), values[i])
	}
	return wrap(out), nil
}
