package collection_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/collection/pkg/arr"
	"github.com/dmitrymomot/collection/pkg/collection"
)

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("keeps keys and the receiver", func(t *testing.T) {
		t.Parallel()
		c := collection.New(arr.Of("a", 1, "b", 2))
		got := c.Map(func(v any, _ string) any { return v.(int) + 1 })

		assert.Equal(t, map[string]any{"a": 1, "b": 2}, native(c))
		assert.Equal(t, map[string]any{"a": 2, "b": 3}, native(got))
		assert.NotSame(t, c, got)
	})

	t.Run("passes keys and normalizes results", func(t *testing.T) {
		t.Parallel()
		got := collection.New([]string{"x", "y"}).Map(func(v any, key string) any {
			return []any{key, v}
		})
		assert.Equal(t, "1", got.Get("1.0", nil))
		assert.Equal(t, "y", got.Get("1.1", nil))
	})
}

func TestFilter(t *testing.T) {
	t.Parallel()

	c := collection.New([]string{"key", "title"})
	got := c.Filter(func(_ any, key string) bool {
		n, _ := strconv.Atoi(key)
		return n >= 1
	})

	assert.Equal(t, []string{"1"}, arr.Keys(got.All()))
	assert.Equal(t, "title", got.Get("1", nil))
	assert.Equal(t, 2, c.Count())
}

func TestKeys(t *testing.T) {
	t.Parallel()

	t.Run("all keys", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []any{"key", "title", "meta"}, native(car().Keys()))
	})

	t.Run("loose search", func(t *testing.T) {
		t.Parallel()
		c := collection.New([]string{"blue", "red", "blue", "green"})
		assert.Equal(t, []any{"0", "2"}, native(c.KeysOf("blue", false)))

		mixed := collection.New([]any{1, "1", true, "a", 1.0, nil})
		assert.Equal(t, []any{"0", "1", "2", "4"}, native(mixed.KeysOf(1, false)))
	})

	t.Run("loose search for nil", func(t *testing.T) {
		t.Parallel()
		c := collection.New([]any{0, "", "0", false, nil, "a", 1})
		assert.Equal(t, []any{"0", "1", "3", "4"}, native(c.KeysOf(nil, false)))
		assert.Equal(t, []any{"4"}, native(c.KeysOf(nil, true)))
	})

	t.Run("strict search", func(t *testing.T) {
		t.Parallel()
		mixed := collection.New([]any{1, "1", true, "a", 1.0})
		assert.Equal(t, []any{"0"}, native(mixed.KeysOf(1, true)))
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()
		assert.True(t, car().KeysOf("missing", true).Empty())
	})
}

func TestValues(t *testing.T) {
	t.Parallel()

	got := collection.New(arr.Of("key", "car", "title", "Car")).Values()
	assert.Equal(t, []any{"car", "Car"}, native(got))
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	c := collection.New(arr.Of(
		"key", "car",
		"title", "Car",
		"meta", arr.Of("foo", "bar"),
	))
	assert.Equal(t, []any{"car", "Car", "bar"}, native(c.Flatten(0)))

	nested := collection.New(arr.List("a", collection.New(arr.List("b", "c"))))
	assert.Equal(t, []any{"a", "b", "c"}, native(nested.Flatten(0)))
}

func TestOnly(t *testing.T) {
	t.Parallel()

	c := collection.New(arr.Of("meta", arr.Of("color", "red", "weight", 1500)))
	got := c.Only([]string{"bar", "meta.foo", "meta.color"}, nil)

	assert.Equal(t, map[string]any{
		"bar":  nil,
		"meta": map[string]any{"foo": nil, "color": "red"},
	}, native(got))
	assert.True(t, c.Has("meta.weight"))
}

func TestOnlyPresent(t *testing.T) {
	t.Parallel()

	got := car().OnlyPresent([]string{"bar", "meta.foo", "meta.color", "title"})
	assert.Equal(t, map[string]any{
		"meta":  map[string]any{"color": "red"},
		"title": "Car",
	}, native(got))
}

func TestExcept(t *testing.T) {
	t.Parallel()

	c := car()
	got := c.Except([]string{"key", "meta.color"})

	assert.Equal(t, map[string]any{
		"title": "Car",
		"meta":  map[string]any{"weight": 1500},
	}, native(got))
	assert.True(t, c.Has("key", "meta.color"))
}

func TestGroupBy(t *testing.T) {
	t.Parallel()

	c := collection.New(arr.List(
		arr.Of("name", "apple", "group", "fruit"),
		arr.Of("name", "carrot", "group", "vegetable"),
		arr.Of("name", "pear", "group", "fruit"),
	))

	got := c.GroupBy(arr.ByKey("group"), arr.WithoutKeys())
	assert.Equal(t, []string{"fruit", "vegetable"}, arr.Keys(got.All()))
	assert.Equal(t, "pear", got.Get("fruit.1.name", nil))
	assert.Equal(t, 3, c.Count())
}
