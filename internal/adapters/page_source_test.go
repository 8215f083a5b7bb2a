package adapters

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage_Frontmatter(t *testing.T) {
	data := []byte(`---
title: Home
sections:
  - type: hero
    title: Welcome
  - type: cta
---
<h1>{{ title }}</h1>
`)
	page, err := ParsePage(data)
	require.NoError(t, err)

	assert.Equal(t, "<h1>{{ title }}</h1>\n", string(page.Contents))
	assert.Equal(t, map[string]any{"title": "Home"}, page.Frontmatter)
	want := []any{
		map[string]any{"type": "hero", "title": "Welcome"},
		map[string]any{"type": "cta"},
	}
	if diff := cmp.Diff(want, page.Sections); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePage_NoFrontmatter(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "plain", data: "<p>hello</p>\n"},
		{name: "unterminated", data: "---\ntitle: x\n"},
		{name: "rule not at start", data: "intro\n---\nmore\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := ParsePage([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.data, string(page.Contents))
			assert.Nil(t, page.Sections)
			assert.Nil(t, page.Frontmatter)
		})
	}
}

func TestParsePage_CRLF(t *testing.T) {
	page, err := ParsePage([]byte("---\r\nsections:\r\n  - type: hero\r\n---\r\nbody"))
	require.NoError(t, err)
	require.Len(t, page.Sections, 1)
	assert.Equal(t, "body", string(page.Contents))
}

func TestParsePage_SectionsNotList(t *testing.T) {
	page, err := ParsePage([]byte("---\nsections: hero\n---\n"))
	require.NoError(t, err)
	assert.Nil(t, page.Sections)
	assert.Equal(t, "hero", page.Frontmatter["sections"])
}

func TestPageSourceAdapter_LoadPages(t *testing.T) {
	fs := newTestFS(t, map[string]string{
		"src/index.njk":        "---\nsections:\n  - type: hero\n---\n{% include \"components/button/button.njk\" %}",
		"src/blog/post.md":     "# Post\n",
		"src/.drafts/draft.md": "---\nsections: [{type: hero}]\n---\n",
	})

	adapter := NewPageSourceAdapter(fs)
	pages, err := adapter.LoadPages(t.Context(), "src")
	require.NoError(t, err)

	require.Len(t, pages, 2)
	require.Contains(t, pages, "index.njk")
	require.Contains(t, pages, "blog/post.md")
	assert.Len(t, pages["index.njk"].Sections, 1)
	assert.Equal(t, "# Post\n", string(pages["blog/post.md"].Contents))
}

func TestPageSourceAdapter_Errors(t *testing.T) {
	fs := newTestFS(t, map[string]string{
		"broken/page.md": "---\nsections: [\n---\n",
	})
	adapter := NewPageSourceAdapter(fs)

	tests := []struct {
		name     string
		root     string
		wantCode errbuilder.ErrCode
	}{
		{name: "empty root", root: "", wantCode: errbuilder.CodeInvalidArgument},
		{name: "missing root", root: "nowhere", wantCode: errbuilder.CodeNotFound},
		{name: "bad frontmatter", root: "broken", wantCode: errbuilder.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := adapter.LoadPages(t.Context(), tt.root)
			require.Error(t, err)
			if diff := cmp.Diff(tt.wantCode, errbuilder.CodeOf(err)); diff != "" {
				t.Fatalf("error code mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
