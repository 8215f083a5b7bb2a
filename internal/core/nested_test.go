package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetNestedProperty(t *testing.T) {
	obj := map[string]any{
		"text": map[string]any{
			"title": "Hello",
			"empty": nil,
		},
		"flat": "value",
	}

	value, ok := GetNestedProperty(obj, "text.title")
	assert.True(t, ok)
	assert.Equal(t, "Hello", value)

	_, ok = GetNestedProperty(obj, "text.missing")
	assert.False(t, ok)

	_, ok = GetNestedProperty(obj, "flat.deeper")
	assert.False(t, ok, "non-object intermediate must stop traversal")

	_, ok = GetNestedProperty(nil, "anything")
	assert.False(t, ok)
}

func TestHasNestedPropertyCountsNilValues(t *testing.T) {
	obj := map[string]any{"text": map[string]any{"empty": nil}}
	assert.True(t, HasNestedProperty(obj, "text.empty"))
	assert.False(t, HasNestedProperty(obj, "text.other"))
}

func TestHasNestedPropertyWithInterfaceKeys(t *testing.T) {
	obj := map[string]any{"media": map[any]any{"src": "a.png"}}
	assert.True(t, HasNestedProperty(obj, "media.src"))
}

func TestSetNestedProperty(t *testing.T) {
	obj := map[string]any{"flat": "value"}

	SetNestedProperty(obj, "text.title", "Hello")
	SetNestedProperty(obj, "flat.deeper", 1)

	value, ok := GetNestedProperty(obj, "text.title")
	assert.True(t, ok)
	assert.Equal(t, "Hello", value)

	value, ok = GetNestedProperty(obj, "flat.deeper")
	assert.True(t, ok)
	assert.Equal(t, 1, value)
}
