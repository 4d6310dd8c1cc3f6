package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/collection/pkg/arr"
)

var (
	strictPolicy *bluemonday.Policy
	safePolicy   *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Markup allowed inside translated messages.
		safePolicy = bluemonday.NewPolicy()
		safePolicy.AllowStandardURLs()
		safePolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		safePolicy.AllowAttrs("href").OnElements("a")
		safePolicy.RequireNoFollowOnLinks(true)
	})
}

// StripTags removes all HTML and returns plain text. Suitable as a
// placeholder sanitizer for values coming from user input.
func StripTags(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SafeHTML keeps basic formatting tags (p, a, strong, em, lists, code) and
// strips scripts, event handlers and javascript: URLs.
func SafeHTML(s string) string {
	initPolicies()
	return safePolicy.Sanitize(s)
}

// Policy returns a sanitizer function for a custom bluemonday policy.
// A nil policy returns input unchanged.
func Policy(policy *bluemonday.Policy) func(string) string {
	if policy == nil {
		return func(s string) string { return s }
	}
	return policy.Sanitize
}

// Tree returns a copy of m with fn applied to every string leaf, at any
// depth. Other values are kept as they are.
func Tree(m *arr.Map, fn func(string) string) *arr.Map {
	out := arr.NewMap()
	if m == nil {
		return out
	}
	for p := m.Oldest(); p != nil; p = p.Next() {
		switch v := p.Value.(type) {
		case string:
			out.Set(p.Key, fn(v))
		case *arr.Map:
			out.Set(p.Key, Tree(v, fn))
		default:
			out.Set(p.Key, v)
		}
	}
	return out
}
