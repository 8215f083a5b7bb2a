// Package shared provides common utility functions used across multiple
// packages in the bundled-components codebase.
package shared

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// TemplatePatterns converts template extensions such as ".njk" into
// doublestar patterns matching those files at any depth.
func TemplatePatterns(extensions []string) []string {
	patterns := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		patterns = append(patterns, "**/*"+ext)
	}
	return patterns
}

// MatchesTemplate reports whether path matches any of the patterns. Paths
// are compared in slash form regardless of OS.
func MatchesTemplate(path string, patterns []string) bool {
	normalized := filepath.ToSlash(strings.ReplaceAll(path, "\\", "/"))
	normalized = strings.TrimPrefix(normalized, "/")
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}
	}
	return false
}

// PathSegments splits a template path on both slash styles and drops empty
// segments.
func PathSegments(path string) []string {
	fields := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	segments := fields[:0]
	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			continue
		}
		segments = append(segments, field)
	}
	return segments
}
