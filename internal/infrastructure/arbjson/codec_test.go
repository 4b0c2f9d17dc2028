package arbjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arbfix/internal/domain"
	"arbfix/internal/domain/entities"
)

func TestCodec_Decode(t *testing.T) {
	c := NewCodec()

	t.Run("Should keep source key order", func(t *testing.T) {
		o, err := c.Decode([]byte(`{"zeta": "z", "alpha": "a", "@zeta": {"description": "Z"}}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"zeta", "alpha", "@zeta"}, o.Keys())

		meta, ok := o.Get("@zeta")
		require.True(t, ok)
		assert.Equal(t, entities.KindObject, meta.Kind)
		desc, _ := meta.Object.Get("description")
		assert.Equal(t, "Z", desc.Text)
	})
	t.Run("Should decode every value kind", func(t *testing.T) {
		o, err := c.Decode([]byte(`{"s": "caf\u00e9", "n": 1.50, "b": true, "z": null, "a": [1, "x"], "o": {}}`))
		require.NoError(t, err)

		s, _ := o.Get("s")
		assert.Equal(t, "café", s.Text)
		n, _ := o.Get("n")
		assert.Equal(t, entities.KindNumber, n.Kind)
		assert.Equal(t, "1.50", string(n.Raw))
		b, _ := o.Get("b")
		assert.Equal(t, entities.KindBool, b.Kind)
		z, _ := o.Get("z")
		assert.Equal(t, entities.KindNull, z.Kind)
		a, _ := o.Get("a")
		require.Equal(t, entities.KindArray, a.Kind)
		assert.Len(t, a.Items, 2)
		obj, _ := o.Get("o")
		assert.Equal(t, 0, obj.Object.Len())
	})
	t.Run("Should strip a UTF-8 byte order mark", func(t *testing.T) {
		o, err := c.Decode(append([]byte{0xEF, 0xBB, 0xBF}, `{"title": "Hallo"}`...))
		require.NoError(t, err)
		assert.Equal(t, []string{"title"}, o.Keys())
	})
	t.Run("Should keep the last value of a repeated key at its first position", func(t *testing.T) {
		o, err := c.Decode([]byte(`{"a": "1", "b": "2", "a": "3"}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, o.Keys())
		a, _ := o.Get("a")
		assert.Equal(t, "3", a.Text)
	})
	t.Run("Should report the position of a trailing comma", func(t *testing.T) {
		_, err := c.Decode([]byte("{\n  \"title\": \"Hello\",\n}"))
		var parseErr *domain.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 3, parseErr.Line)
		assert.Equal(t, 1, parseErr.Column)
	})
	t.Run("Should reject a non-object root", func(t *testing.T) {
		_, err := c.Decode([]byte(`["title"]`))
		assert.ErrorIs(t, err, domain.ErrRootObject)
	})
	t.Run("Should reject invalid UTF-8", func(t *testing.T) {
		_, err := c.Decode([]byte("{\"t\": \"caf\xe9\"}"))
		var parseErr *domain.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.ErrorIs(t, err, ErrInvalidUTF8)
	})
	t.Run("Should reject empty input", func(t *testing.T) {
		_, err := c.Decode(nil)
		var parseErr *domain.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}

func TestCodec_Encode(t *testing.T) {
	c := NewCodec()

	t.Run("Should indent with two spaces and keep non-ASCII literal", func(t *testing.T) {
		meta := entities.NewObject()
		meta.Set("description", entities.String("Grüße <b>&</b>"))
		o := entities.NewObject()
		o.Set(entities.LocaleKey, entities.String("de"))
		o.Set("greeting", entities.String("Grüß dich"))
		o.Set("@greeting", entities.ObjectValue(meta))

		got, err := c.Encode(o)
		require.NoError(t, err)
		want := "{\n" +
			"  \"@@locale\": \"de\",\n" +
			"  \"greeting\": \"Grüß dich\",\n" +
			"  \"@greeting\": {\n" +
			"    \"description\": \"Grüße <b>&</b>\"\n" +
			"  }\n" +
			"}\n"
		assert.Equal(t, want, string(got))
	})
	t.Run("Should expand arrays and keep empty containers inline", func(t *testing.T) {
		o, err := c.Decode([]byte(`{"a": [1, 2], "e": [], "o": {}}`))
		require.NoError(t, err)

		got, err := c.Encode(o)
		require.NoError(t, err)
		want := "{\n" +
			"  \"a\": [\n" +
			"    1,\n" +
			"    2\n" +
			"  ],\n" +
			"  \"e\": [],\n" +
			"  \"o\": {}\n" +
			"}\n"
		assert.Equal(t, want, string(got))
	})
	t.Run("Should escape quotes and control characters", func(t *testing.T) {
		o := entities.NewObject()
		o.Set("k", entities.String("say \"hi\"\n"))

		got, err := c.Encode(o)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"k\": \"say \\\"hi\\\"\\n\"\n}\n", string(got))
	})
	t.Run("Should write line and paragraph separators literally", func(t *testing.T) {
		o, err := c.Decode([]byte("{\"t\": \"a\u2028b\u2029c\", \"e\": \"x\\\\u2028\"}"))
		require.NoError(t, err)

		got, err := c.Encode(o)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"t\": \"a\u2028b\u2029c\",\n  \"e\": \"x\\\\u2028\"\n}\n", string(got))
	})
	t.Run("Should round-trip its own output unchanged", func(t *testing.T) {
		src := []byte(`{"@@locale":"fr","n":1e3,"title":"Bonjour","@title":{"description":"T","placeholders":{"name":{"type":"String"}}}}`)
		o, err := c.Decode(src)
		require.NoError(t, err)
		first, err := c.Encode(o)
		require.NoError(t, err)

		o2, err := c.Decode(first)
		require.NoError(t, err)
		second, err := c.Encode(o2)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second))
	})
}

func TestPosition(t *testing.T) {
	line, col := position([]byte("{\n  \"a\": x"), 10)
	assert.Equal(t, 2, line)
	assert.Equal(t, 8, col)
}
