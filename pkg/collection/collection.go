package collection

import (
	"iter"

	"github.com/iancoleman/strcase"

	"github.com/dmitrymomot/collection/pkg/arr"
)

// Collection is an ordered key/value store with dot-notation access.
// Setters modify the collection in place and return it for chaining;
// transforms return a new Collection and leave the receiver unchanged.
//
// A Collection is not safe for concurrent use.
type Collection struct {
	items *arr.Editor
}

var (
	_ arr.Accessor  = (*Collection)(nil)
	_ arr.Arrayable = (*Collection)(nil)
	_ arr.Jsonable  = (*Collection)(nil)
)

// New creates a collection from items. See SetAll for the accepted types.
func New(items any) *Collection {
	c := &Collection{}
	return c.SetAll(items)
}

// FromJSON creates a collection from a JSON document, keeping key order.
func FromJSON(data []byte) (*Collection, error) {
	m, err := decode(data)
	if err != nil {
		return nil, err
	}
	return wrap(m), nil
}

func wrap(m *arr.Map) *Collection {
	return &Collection{items: arr.Edit(m)}
}

// SetAll replaces every item. items may be nil, a *arr.Map, another
// Collection, an arr.Arrayable, an arr.Jsonable, a json.Marshaler, an
// iter.Seq2[string, any], an iter.Seq[any] or a native map or slice.
// Any other value is stored as a one-element list. Values that fail to
// serialize leave the collection empty.
func (c *Collection) SetAll(items any) *Collection {
	c.items = arr.Edit(itemsOf(items))
	return c
}

// All returns the items. The map is shared with the collection and must not
// be modified.
func (c *Collection) All() *arr.Map {
	return c.edit().Map()
}

// Set stores value at key. Dotted keys create nested levels.
func (c *Collection) Set(key string, value any) *Collection {
	c.edit().Set(key, value)
	return c
}

// Add stores value at key unless a non-nil value is already there.
func (c *Collection) Add(key string, value any) *Collection {
	c.edit().Add(key, value)
	return c
}

// Delete removes key.
func (c *Collection) Delete(key string) *Collection {
	c.edit().Delete(key)
	return c
}

// Count returns the number of first-level items.
func (c *Collection) Count() int {
	return c.edit().Peek().Len()
}

// Iter returns an iterator over the first-level items in order.
func (c *Collection) Iter() iter.Seq2[string, any] {
	root := c.edit().Map()
	return func(yield func(string, any) bool) {
		for p := root.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Get returns the value at key, or def when it is missing.
// A non-nil def also guards the type of the result: the value is returned
// only when it has the same kind as def. Integers and floats are
// interchangeable, numbers are formatted when def is a string, and numeric
// strings are parsed when def is a number. Otherwise def is returned.
//
//	c.Get("meta.weight", 0)    // 1500
//	c.Get("title", 0)          // 0, "Car" is not a number
func (c *Collection) Get(key string, def any) any {
	return ensureType(c.expose(arr.Get(c.edit().Peek(), key, def)), def)
}

// Lookup returns the direct item stored under key without splitting it.
func (c *Collection) Lookup(key string) (any, bool) {
	v, ok := c.edit().Peek().Get(key)
	return c.expose(v), ok
}

// Attr reads the snake_case form of name, so Attr("dateAvailableTo", nil)
// reads "date_available_to". It follows the rules of Get.
func (c *Collection) Attr(name string, def any) any {
	return c.Get(strcase.ToSnake(name), def)
}

// Has reports whether every key resolves.
func (c *Collection) Has(keys ...string) bool {
	root := c.edit().Peek()
	for _, key := range keys {
		if !arr.Has(root, key) {
			return false
		}
	}
	return true
}

// Any reports whether at least one key resolves.
func (c *Collection) Any(keys ...string) bool {
	root := c.edit().Peek()
	for _, key := range keys {
		if arr.Has(root, key) {
			return true
		}
	}
	return false
}

// Empty reports whether the collection holds no items.
func (c *Collection) Empty() bool {
	return c.Count() == 0
}

// EmptyAt reports whether key is missing or holds an empty value:
// nil, false, 0, "", "0" or an empty map.
func (c *Collection) EmptyAt(key string) bool {
	v := arr.Get(c.edit().Peek(), key, nil)
	return !c.Has(key) || isFalsy(v)
}

// First returns the first item passing fn, or def. A nil fn matches any item.
func (c *Collection) First(fn arr.PredicateFunc, def any) any {
	return arr.First(c.edit().Map(), fn, def)
}

// Last returns the last item passing fn, or def. A nil fn matches any item.
func (c *Collection) Last(fn arr.PredicateFunc, def any) any {
	return arr.Last(c.edit().Map(), fn, def)
}

// expose releases ownership of the items when v is a nested level that
// leaves the collection, so later writes copy it instead.
func (c *Collection) expose(v any) any {
	if _, ok := v.(*arr.Map); ok {
		c.edit().Release()
	}
	return v
}

func (c *Collection) edit() *arr.Editor {
	if c.items == nil {
		c.items = arr.Edit(arr.NewMap())
	}
	return c.items
}
