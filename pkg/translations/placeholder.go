package translations

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cast"
)

// M is a map of placeholder values.
type M map[string]any

// ReplacePlaceholders replaces {{name}} placeholders in template with
// values from placeholders. Unknown placeholders remain unchanged.
//
//	ReplacePlaceholders("Hello, {{name}}!", M{"name": "John"}) // "Hello, John!"
func ReplacePlaceholders(template string, placeholders M) string {
	return replace(template, placeholders, nil)
}

func replace(template string, placeholders M, sanitize func(string) string) string {
	if len(placeholders) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	pairs := make([]string, 0, len(placeholders)*2)
	for _, key := range slices.Sorted(maps.Keys(placeholders)) {
		value := stringify(placeholders[key])
		if sanitize != nil {
			value = sanitize(value)
		}
		pairs = append(pairs, "{{"+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func stringify(v any) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

func merge(base M, placeholders []M) M {
	out := maps.Clone(base)
	if out == nil {
		out = M{}
	}
	for _, p := range placeholders {
		maps.Copy(out, p)
	}
	return out
}
