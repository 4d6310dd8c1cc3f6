package arr

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes data keeping the order of mapping keys. Mappings and
// sequences become *Map; aliases and merge keys are resolved. An empty
// document decodes to an empty Map.
func DecodeYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return NewMap(), nil
	}
	return decodeYAMLNode(&doc)
}

func decodeYAMLNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		return decodeYAMLNode(n.Content[0])

	case yaml.AliasNode:
		return decodeYAMLNode(n.Alias)

	case yaml.MappingNode:
		m := NewMap()
		var merged []*Map
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]

			v, err := decodeYAMLNode(value)
			if err != nil {
				return nil, err
			}

			if key.Tag == "!!merge" {
				merged = append(merged, mergeSources(v)...)
				continue
			}
			m.Set(key.Value, v)
		}
		for _, src := range merged {
			for p := src.Oldest(); p != nil; p = p.Next() {
				if _, ok := m.Get(p.Key); !ok {
					m.Set(p.Key, p.Value)
				}
			}
		}
		return m, nil

	case yaml.SequenceNode:
		m := NewMap()
		for _, item := range n.Content {
			v, err := decodeYAMLNode(item)
			if err != nil {
				return nil, err
			}
			push(m, v)
		}
		return m, nil

	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidYAML, n.Line, err)
		}
		return v, nil
	}

	return nil, fmt.Errorf("%w: unexpected node kind %d at line %d", ErrInvalidYAML, n.Kind, n.Line)
}

// mergeSources returns the maps referenced by a "<<" merge key: a single
// mapping or a sequence of mappings.
func mergeSources(v any) []*Map {
	m, ok := v.(*Map)
	if !ok {
		return nil
	}
	if !IsList(m) {
		return []*Map{m}
	}
	var out []*Map
	for p := m.Oldest(); p != nil; p = p.Next() {
		if src, ok := p.Value.(*Map); ok {
			out = append(out, src)
		}
	}
	return out
}
