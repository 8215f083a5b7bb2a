package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bundled-components/internal/types"
)

func TestGenerateTip(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		rule     types.PropertyRule
		contains string
	}{
		{
			name:     "string false for boolean",
			value:    "false",
			rule:     types.PropertyRule{Type: types.PropertyTypeBoolean},
			contains: "evaluates to true",
		},
		{
			name:     "string true for boolean",
			value:    "true",
			rule:     types.PropertyRule{Type: types.PropertyTypeBoolean},
			contains: "use true (boolean)",
		},
		{
			name:     "numeric string for number",
			value:    "42",
			rule:     types.PropertyRule{Type: types.PropertyTypeNumber},
			contains: "remove the quotes: use 42",
		},
		{
			name:     "heading misspelling",
			value:    "title",
			rule:     types.PropertyRule{Enum: []any{"h1", "h2", "h3", "h4", "h5", "h6"}},
			contains: "h1, h2, h3, h4, h5, or h6",
		},
		{
			name:     "case mismatch",
			value:    "Primary",
			rule:     types.PropertyRule{Enum: []any{"primary", "secondary"}},
			contains: `did you mean "primary"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, GenerateTip(tt.value, tt.rule), tt.contains)
		})
	}
}

func TestGenerateTipNoMatch(t *testing.T) {
	tests := []struct {
		name  string
		value any
		rule  types.PropertyRule
	}{
		{name: "non-string value", value: 1, rule: types.PropertyRule{Type: types.PropertyTypeBoolean}},
		{name: "word for boolean", value: "yes", rule: types.PropertyRule{Type: types.PropertyTypeBoolean}},
		{name: "word for number", value: "many", rule: types.PropertyRule{Type: types.PropertyTypeNumber}},
		{name: "header against non-heading enum", value: "header", rule: types.PropertyRule{Enum: []any{"left", "right"}}},
		{name: "no rule", value: "x", rule: types.PropertyRule{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, GenerateTip(tt.value, tt.rule))
		})
	}
}

func TestHumanList(t *testing.T) {
	assert.Equal(t, "", humanList(nil))
	assert.Equal(t, "a", humanList([]any{"a"}))
	assert.Equal(t, "a or b", humanList([]any{"a", "b"}))
	assert.Equal(t, "a, b, or c", humanList([]any{"a", "b", "c"}))
}
