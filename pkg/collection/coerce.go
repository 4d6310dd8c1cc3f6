package collection

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/dmitrymomot/collection/pkg/arr"
)

// itemsOf converts items into a Map, failing open to an empty one.
func itemsOf(items any) *arr.Map {
	m, err := toMap(items)
	if err != nil {
		return arr.NewMap()
	}
	return m
}

func toMap(items any) (*arr.Map, error) {
	switch t := items.(type) {
	case nil:
		return arr.NewMap(), nil
	case *arr.Map:
		if t == nil {
			return arr.NewMap(), nil
		}
		return t, nil
	case *Collection:
		if t == nil {
			return arr.NewMap(), nil
		}
		return t.edit().Map(), nil
	case arr.Arrayable:
		if m := t.ToArray(); m != nil {
			return m, nil
		}
		return arr.NewMap(), nil
	case arr.Jsonable:
		data, err := t.ToJSON()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}
		return decode(data)
	case json.Marshaler:
		data, err := t.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}
		return decode(data)
	case iter.Seq2[string, any]:
		return fromSeq2(t), nil
	case func(yield func(string, any) bool):
		return fromSeq2(t), nil
	case iter.Seq[any]:
		return fromSeq(t), nil
	case func(yield func(any) bool):
		return fromSeq(t), nil
	}

	if m, ok := arr.Normalize(items).(*arr.Map); ok {
		return m, nil
	}
	return arr.List(items), nil
}

func fromSeq2(seq iter.Seq2[string, any]) *arr.Map {
	m := arr.NewMap()
	for k, v := range seq {
		m.Set(k, arr.Normalize(v))
	}
	return m
}

func fromSeq(seq iter.Seq[any]) *arr.Map {
	var values []any
	for v := range seq {
		values = append(values, v)
	}
	return arr.List(values...)
}

func decode(data []byte) (*arr.Map, error) {
	v, err := arr.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	switch t := v.(type) {
	case nil:
		return arr.NewMap(), nil
	case *arr.Map:
		return t, nil
	}
	return arr.List(v), nil
}
