package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_Set(t *testing.T) {
	t.Run("Should keep first position and last value for repeated keys", func(t *testing.T) {
		o := NewObject()
		o.Set("a", String("1"))
		o.Set("b", String("2"))
		o.Set("a", String("3"))

		assert.Equal(t, []string{"a", "b"}, o.Keys())
		v, ok := o.Get("a")
		require.True(t, ok)
		assert.Equal(t, "3", v.Text)
	})
	t.Run("Should report missing keys", func(t *testing.T) {
		o := NewObject()
		_, ok := o.Get("missing")
		assert.False(t, ok)
		assert.False(t, o.Has("missing"))
		assert.Zero(t, o.Len())
	})
}

func TestObject_Clone(t *testing.T) {
	inner := NewObject()
	inner.Set("description", String("Greeting"))
	o := NewObject()
	o.Set("@hello", ObjectValue(inner))

	c := o.Clone()
	v, _ := c.Get("@hello")
	v.Object.Set("description", String("changed"))

	orig, _ := inner.Get("description")
	assert.Equal(t, "Greeting", orig.Text)
}

func TestLocaleFromPath(t *testing.T) {
	cases := []struct {
		path   string
		locale string
		ok     bool
	}{
		{"lib/l10n/app_de.arb", "de", true},
		{"app_pt_BR.arb", "pt_BR", true},
		{"intl_en.json", "en", true},
		{"messages.arb", "", false},
		{"app_.arb", "", false},
		{"dir_x/messages.arb", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			locale, ok := LocaleFromPath(tc.path)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.locale, locale)
		})
	}
}

func TestMetadataKeys(t *testing.T) {
	assert.True(t, IsMetadataKey("@title"))
	assert.True(t, IsMetadataKey(LocaleKey))
	assert.False(t, IsMetadataKey("title"))
	assert.Equal(t, "@title", MetadataKey("title"))
	assert.Equal(t, "Auto-generated description for title.", AutoDescription("title"))
	assert.Equal(t, "object", KindObject.String())
}
