package collection

import "github.com/dmitrymomot/collection/pkg/arr"

// ToArray returns a deep copy of the items in which nested collections and
// other arr.Arrayable values are converted into maps.
func (c *Collection) ToArray() *arr.Map {
	return toArray(c.edit().Map())
}

func toArray(m *arr.Map) *arr.Map {
	out := arr.NewMap()
	if m == nil {
		return out
	}
	for p := m.Oldest(); p != nil; p = p.Next() {
		out.Set(p.Key, unwrap(p.Value))
	}
	return out
}

func unwrap(v any) any {
	switch t := v.(type) {
	case *arr.Map:
		if t == nil {
			return nil
		}
		return toArray(t)
	case arr.Arrayable:
		return toArray(t.ToArray())
	}
	return v
}

// ToJSON encodes the items keeping key order. Lists encode as arrays.
//
//	collection.New(arr.Of("key", "car", "title", "Car")).ToJSON()
//	// {"key":"car","title":"Car"}
func (c *Collection) ToJSON() ([]byte, error) {
	return arr.EncodeJSON(c.edit().Map())
}

// MarshalJSON implements json.Marshaler.
func (c *Collection) MarshalJSON() ([]byte, error) {
	return c.ToJSON()
}

// UnmarshalJSON implements json.Unmarshaler. Key order is kept.
func (c *Collection) UnmarshalJSON(data []byte) error {
	m, err := decode(data)
	if err != nil {
		return err
	}
	c.items = arr.Edit(m)
	return nil
}
