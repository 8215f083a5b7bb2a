package ports

import (
	"context"

	"bundled-components/internal/types"
)

// TemplateSourcePort reads layout templates from a directory tree.
type TemplateSourcePort interface {
	// TemplateFiles walks root and returns every readable file whose path
	// matches one of patterns. Unreadable files are skipped; a missing root
	// yields nothing.
	TemplateFiles(ctx context.Context, root string, patterns []string) []types.TemplateFile
}

// PageSourcePort loads the site's page files into the in-memory file map.
type PageSourcePort interface {
	LoadPages(ctx context.Context, root string) (map[string]types.PageFile, error)
}
