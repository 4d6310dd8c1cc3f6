package arr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"
)

// EncodeJSON encodes v keeping the insertion order of every Map.
// List-like maps, including the empty map, encode as JSON arrays and all
// other maps as objects. Other values are resolved in this order:
// json.Marshaler, Jsonable, Arrayable, then encoding/json. HTML characters
// are not escaped.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJSON(buf *bytes.Buffer, v any) error {
	switch t := v.(type) {
	case *Map:
		return encodeMap(buf, t)
	case json.Marshaler:
		return encodeLeaf(buf, t)
	case Jsonable:
		data, err := t.ToJSON()
		if err != nil {
			return fmt.Errorf("arr: encode json: %w", err)
		}
		if err := json.Compact(buf, data); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}
		return nil
	case Arrayable:
		return encodeMap(buf, t.ToArray())
	}
	return encodeLeaf(buf, v)
}

func encodeMap(buf *bytes.Buffer, m *Map) error {
	if IsList(m) {
		buf.WriteByte('[')
		if m != nil {
			for p := m.Oldest(); p != nil; p = p.Next() {
				if p != m.Oldest() {
					buf.WriteByte(',')
				}
				if err := encodeJSON(buf, p.Value); err != nil {
					return err
				}
			}
		}
		buf.WriteByte(']')
		return nil
	}

	buf.WriteByte('{')
	for p := m.Oldest(); p != nil; p = p.Next() {
		if p != m.Oldest() {
			buf.WriteByte(',')
		}
		if err := encodeLeaf(buf, p.Key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := encodeJSON(buf, p.Value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeLeaf(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("arr: encode json: %w", err)
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

// DecodeJSON decodes data keeping the order of object keys. Objects and
// arrays become *Map, integral numbers int and other numbers float64.
func DecodeJSON(data []byte) (any, error) {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return decodeJSONValue(value, dataType)
}

func decodeJSONValue(value []byte, dataType jsonparser.ValueType) (any, error) {
	switch dataType {
	case jsonparser.Object:
		m := NewMap()
		err := jsonparser.ObjectEach(value, func(key, v []byte, vt jsonparser.ValueType, _ int) error {
			x, err := decodeJSONValue(v, vt)
			if err != nil {
				return err
			}
			m.Set(string(key), x)
			return nil
		})
		if err != nil {
			return nil, wrapJSON(err)
		}
		return m, nil

	case jsonparser.Array:
		m := NewMap()
		var itemErr error
		_, err := jsonparser.ArrayEach(value, func(v []byte, vt jsonparser.ValueType, _ int, err error) {
			if itemErr != nil {
				return
			}
			if err != nil {
				itemErr = err
				return
			}
			x, err := decodeJSONValue(v, vt)
			if err != nil {
				itemErr = err
				return
			}
			push(m, x)
		})
		if err == nil {
			err = itemErr
		}
		if err != nil {
			return nil, wrapJSON(err)
		}
		return m, nil

	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, wrapJSON(err)
		}
		return s, nil

	case jsonparser.Number:
		if !bytes.ContainsAny(value, ".eE") {
			if n, err := strconv.ParseInt(string(value), 10, 64); err == nil {
				return int(n), nil
			}
		}
		f, err := jsonparser.ParseFloat(value)
		if err != nil {
			return nil, wrapJSON(err)
		}
		return f, nil

	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return nil, wrapJSON(err)
		}
		return b, nil

	case jsonparser.Null:
		return nil, nil
	}

	return nil, fmt.Errorf("%w: unexpected value %q", ErrInvalidJSON, value)
}

func wrapJSON(err error) error {
	if errors.Is(err, ErrInvalidJSON) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}
