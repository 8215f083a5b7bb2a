package core

import (
	"context"
	"regexp"
	"slices"
	"sort"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"bundled-components/internal/ports"
	"bundled-components/internal/shared"
	"bundled-components/internal/types"
)

var (
	// {% from "components/_partials/button/button.njk" import button %}
	importTagPattern = regexp.MustCompile(`\{%-?\s*from\s*["']([^"']+)["']\s*import\b`)
	// {% include "components/sections/hero/hero.njk" %}
	includeTagPattern = regexp.MustCompile(`\{%-?\s*include\s*["']([^"']+)["']`)
)

// UsageScanner finds the components a site actually references.
type UsageScanner struct {
	Layouts ports.TemplateSourcePort

	// Markers are the directory names that precede a component name in a
	// template path, e.g. "_partials" and "sections".
	Markers []string

	// Patterns select which files are scanned for template tags.
	Patterns []string
}

func NewUsageScanner(layouts ports.TemplateSourcePort, markers []string, extensions []string) UsageScanner {
	return UsageScanner{
		Layouts:  layouts,
		Markers:  markers,
		Patterns: shared.TemplatePatterns(extensions),
	}
}

// DetectUsedComponents unions two channels: sectionType declarations in
// page frontmatter, and import/include tags in page templates and in the
// optional layout tree at layoutDir.
func (s UsageScanner) DetectUsedComponents(ctx context.Context, pages map[string]types.PageFile, layoutDir string) types.ComponentSet {
	used := types.NewComponentSet()

	names := make([]string, 0, len(pages))
	for name := range pages {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		page := pages[name]
		for _, section := range page.Sections {
			if _, sectionType, ok := types.SectionType(section); ok {
				used.Add(sectionType)
			}
		}
		if shared.MatchesTemplate(name, s.Patterns) {
			s.scanTemplate(page.Contents, used)
		}
	}

	if s.Layouts != nil && layoutDir != "" {
		layouts := s.Layouts.TemplateFiles(ctx, layoutDir, s.Patterns)
		for _, layout := range layouts {
			s.scanTemplate(layout.Contents, used)
		}
		log.Ctx(ctx).Debug().Str("layouts", layoutDir).Int("files", len(layouts)).Msg("layout templates scanned")
	}

	log.Ctx(ctx).Debug().Int("used", len(used)).Msg("component usage detected")
	return used
}

func (s UsageScanner) scanTemplate(contents []byte, used types.ComponentSet) {
	if len(contents) == 0 || !utf8.Valid(contents) {
		return
	}
	for _, path := range TemplateReferences(string(contents)) {
		if name, ok := ComponentFromPath(path, s.Markers); ok {
			used.Add(name)
		}
	}
}

// TemplateReferences returns every path named by an import or include tag,
// in order of appearance per tag kind.
func TemplateReferences(text string) []string {
	var paths []string
	for _, pattern := range []*regexp.Regexp{importTagPattern, includeTagPattern} {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			paths = append(paths, match[1])
		}
	}
	return paths
}

// ComponentFromPath returns the segment following the first marker segment
// of path.
func ComponentFromPath(path string, markers []string) (string, bool) {
	segments := shared.PathSegments(path)
	for i, segment := range segments {
		if !slices.Contains(markers, segment) {
			continue
		}
		if i+1 < len(segments) {
			return segments[i+1], true
		}
		return "", false
	}
	return "", false
}
