package arr

import "strings"

// Editor applies successive writes to a Map without touching maps it does
// not own. A level is cloned the first time it is written and reused for
// later writes, so a batch of writes costs one copy per touched level.
//
// Maps handed out by Map are shared with the caller; the editor forgets
// ownership at that point and copies again on the next write.
type Editor struct {
	root  *Map
	owned map[*Map]struct{}
	sep   string
}

// Edit returns an Editor over m. m itself is never modified.
func Edit(m *Map, opts ...Option) *Editor {
	return &Editor{root: m, sep: newOptions(opts).separator}
}

// Peek returns the current root without releasing ownership.
// The result must not be retained or modified.
func (e *Editor) Peek() *Map {
	return e.root
}

// Map returns the current root and releases ownership of every level.
func (e *Editor) Map() *Map {
	e.owned = nil
	return e.root
}

// Release drops ownership so that the next write copies again.
// Call it after exposing any nested level obtained through Peek.
func (e *Editor) Release() {
	e.owned = nil
}

// Set stores value at key. See the package-level Set for the rules.
func (e *Editor) Set(key string, value any) {
	value = Normalize(value)

	if e.root == nil {
		if m, ok := value.(*Map); ok && m != nil {
			e.root = m
			return
		}
		e.root = NewMap()
		e.root.Set("0", value)
		e.own(e.root)
		return
	}

	root := e.writable(e.root)
	e.root = root

	if !HasNotation(key, e.sep) {
		root.Set(key, value)
		return
	}

	segs := strings.Split(key, e.sep)
	last := segs[len(segs)-1]

	cur := root
	for _, seg := range segs[:len(segs)-1] {
		v, _ := cur.Get(seg)
		child, ok := v.(*Map)
		if !ok || child == nil {
			child = NewMap()
			e.own(child)
		} else {
			child = e.writable(child)
		}
		cur.Set(seg, child)
		cur = child
	}
	cur.Set(last, value)
}

// Add stores value at key when the current value there is nil or absent.
func (e *Editor) Add(key string, value any) {
	if Get(e.root, key, nil, WithSeparator(e.sep)) == nil {
		e.Set(key, value)
	}
}

// Delete removes key. A notated key is only removed when every parent
// segment resolves to a *Map and the last segment is present.
func (e *Editor) Delete(key string) {
	if e.root == nil {
		e.root = NewMap()
		e.own(e.root)
		return
	}

	if _, ok := e.root.Get(key); ok {
		e.root = e.writable(e.root)
		e.root.Delete(key)
		return
	}

	if !HasNotation(key, e.sep) {
		return
	}

	segs := strings.Split(key, e.sep)
	parents, last := segs[:len(segs)-1], segs[len(segs)-1]

	cur := e.root
	for _, seg := range parents {
		v, _ := cur.Get(seg)
		child, ok := v.(*Map)
		if !ok || child == nil {
			return
		}
		cur = child
	}
	if _, ok := cur.Get(last); !ok {
		return
	}

	e.root = e.writable(e.root)
	cur = e.root
	for _, seg := range parents {
		v, _ := cur.Get(seg)
		child := e.writable(v.(*Map))
		cur.Set(seg, child)
		cur = child
	}
	cur.Delete(last)
}

func (e *Editor) writable(m *Map) *Map {
	if _, ok := e.owned[m]; ok {
		return m
	}
	c := Clone(m)
	e.own(c)
	return c
}

func (e *Editor) own(m *Map) {
	if e.owned == nil {
		e.owned = make(map[*Map]struct{})
	}
	e.owned[m] = struct{}{}
}
