package arr_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/collection/pkg/arr"
)

type jsonable struct{}

func (jsonable) ToJSON() ([]byte, error) { return []byte(`{ "x" : 1 }`), nil }

type marshaler struct{}

func (marshaler) MarshalJSON() ([]byte, error) { return []byte(`"custom"`), nil }

func TestEncodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "keeps key order", in: arr.Of("key", "car", "title", "Car"), want: `{"key":"car","title":"Car"}`},
		{name: "list", in: arr.List("a", 1, true, nil), want: `["a",1,true,null]`},
		{name: "empty map", in: arr.NewMap(), want: `[]`},
		{name: "sparse integer keys", in: arr.Of("1", "a", "2", "b"), want: `{"1":"a","2":"b"}`},
		{name: "nested", in: arr.Of("z", arr.Of("b", 1.5), "a", arr.List("x")), want: `{"z":{"b":1.5},"a":["x"]}`},
		{name: "does not escape html", in: arr.Of("html", "<b>&</b>"), want: `{"html":"<b>&</b>"}`},
		{name: "jsonable", in: arr.Of("v", jsonable{}), want: `{"v":{"x":1}}`},
		{name: "marshaler", in: arr.Of("v", marshaler{}), want: `{"v":"custom"}`},
		{name: "arrayable", in: arr.Of("v", wrapped{arr.Of("a", 1)}), want: `{"v":{"a":1}}`},
		{name: "scalar", in: "plain", want: `"plain"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := arr.EncodeJSON(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}

	t.Run("reports unsupported values", func(t *testing.T) {
		t.Parallel()
		_, err := arr.EncodeJSON(arr.Of("ch", make(chan int)))
		require.Error(t, err)
	})
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("keeps key order and value types", func(t *testing.T) {
		t.Parallel()
		v, err := arr.DecodeJSON([]byte(`{"b":1,"a":{"y":2.5,"x":[true,null,"sé"]}}`))
		require.NoError(t, err)

		m, ok := v.(*arr.Map)
		require.True(t, ok)
		assert.Equal(t, []string{"b", "a"}, arr.Keys(m))
		assert.Equal(t, []string{"y", "x"}, arr.Keys(arr.Get(m, "a", nil).(*arr.Map)))
		assert.Equal(t, 1, arr.Get(m, "b", nil))
		assert.InDelta(t, 2.5, arr.Get(m, "a.y", nil), 0.0001)
		assert.Equal(t, true, arr.Get(m, "a.x.0", nil))
		assert.True(t, arr.Has(m, "a.x.1"))
		assert.Nil(t, arr.Get(m, "a.x.1", "none"))
		assert.Equal(t, "sé", arr.Get(m, "a.x.2", nil))
	})

	t.Run("decodes scalars", func(t *testing.T) {
		t.Parallel()
		v, err := arr.DecodeJSON([]byte(`"text"`))
		require.NoError(t, err)
		assert.Equal(t, "text", v)
	})

	t.Run("round trips ordered documents", func(t *testing.T) {
		t.Parallel()
		src := `{"title":"Car","meta":{"weight":1500,"color":"red"},"tags":["a","b"]}`
		v, err := arr.DecodeJSON([]byte(src))
		require.NoError(t, err)
		out, err := arr.EncodeJSON(v)
		require.NoError(t, err)
		assert.Equal(t, src, string(out))
	})

	t.Run("agrees with encoding/json on content", func(t *testing.T) {
		t.Parallel()
		src := []byte(`{"a":[1,2,{"b":"c"}],"d":false}`)
		var want any
		require.NoError(t, json.Unmarshal(src, &want))

		v, err := arr.DecodeJSON(src)
		require.NoError(t, err)
		out, err := arr.EncodeJSON(v)
		require.NoError(t, err)

		var got any
		require.NoError(t, json.Unmarshal(out, &got))
		assert.Equal(t, want, got)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()
		for _, src := range []string{"nope", "[1,2", ""} {
			_, err := arr.DecodeJSON([]byte(src))
			assert.ErrorIs(t, err, arr.ErrInvalidJSON, src)
		}
	})
}
