package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundled-components/internal/types"
)

func TestReportRendererAdapter_RenderValidationReport(t *testing.T) {
	renderer := NewReportRendererAdapter()
	out, err := renderer.RenderValidationReport([]types.FileValidationReport{
		{
			FileName: "index.md",
			Errors: []types.ValidationError{
				{SectionIndex: 0, SectionType: "hero", FileName: "index.md", Message: "index.md: section 0 (hero)\ntitle: required property is missing"},
			},
		},
		{FileName: "about.md"},
		{
			FileName: "blog/<post>.md",
			Errors: []types.ValidationError{
				{SectionIndex: 2, SectionType: "cta", Message: "a"},
				{SectionIndex: 3, SectionType: "cta", Message: "b"},
			},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "index.md: 1 invalid section(s)")
	assert.Contains(t, out, "  - index.md: section 0 (hero)\n    title: required property is missing")
	assert.Contains(t, out, "blog/<post>.md: 2 invalid section(s)")
	assert.NotContains(t, out, "about.md")
}

func TestReportRendererAdapter_Empty(t *testing.T) {
	out, err := NewReportRendererAdapter().RenderValidationReport(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
