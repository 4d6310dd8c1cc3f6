// Package collection provides Collection, an ordered key/value store with
// dot-notation access built on package arr.
//
// # Basic Usage
//
//	c := collection.New(map[string]any{
//		"key":   "car",
//		"title": "Car",
//		"meta":  map[string]any{"color": "red"},
//	})
//
//	c.Get("meta.color", nil)     // "red"
//	c.Has("title", "meta.color") // true
//	c.Set("meta.weight", 1500).Delete("key")
//
// Native maps are stored with their keys sorted. Build items with arr.Of to
// keep a specific order:
//
//	c := collection.New(arr.Of("key", "car", "title", "Car"))
//	data, _ := c.ToJSON() // {"key":"car","title":"Car"}
//
// # Type Guard
//
// Get treats a non-nil default as the expected type of the result:
//
//	c := collection.New(arr.Of("title", "Car", "count", "5"))
//
//	c.Get("title", "")    // "Car"
//	c.Get("title", 5)     // 5, a string is not a number
//	c.Get("count", 0)     // 5, numeric strings are parsed
//	c.Get("missing", nil) // nil
//
// # Transforms
//
// Map, Filter, Keys, Values, Flatten, Only, OnlyPresent, Except, GroupBy,
// Replace, Merge, Union and Combine return new collections. The receiver is
// never changed, and the result shares untouched nested levels with it:
//
//	doubled := c.Map(func(v any, _ string) any { return v.(int) * 2 })
//
// Combine is the only operation that fails, with ErrLengthMismatch, when
// its keys and values differ in length.
//
// # Attributes
//
// Attr reads camelCase names as snake_case keys:
//
//	c.Attr("dateAvailableTo", nil) // same as c.Get("date_available_to", nil)
package collection
