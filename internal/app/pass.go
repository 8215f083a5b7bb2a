package app

import (
	"context"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"bundled-components/internal/core"
	"bundled-components/internal/types"
)

// buildPass holds what every command needs: the resolved options, the
// discovered components with their lookup table, and the page file map.
type buildPass struct {
	opts       types.Options
	components []types.Component
	lookup     types.ComponentLookup
	pages      map[string]types.PageFile
}

func (s Service) prepare(ctx context.Context, projectDir string, opts types.Options) (buildPass, error) {
	resolved, err := resolveOptions(projectDir, opts.WithDefaults())
	if err != nil {
		return buildPass{}, err
	}
	assert.NotEmpty(ctx, resolved.BasePath, "base_path must be set")
	assert.NotEmpty(ctx, resolved.SectionsPath, "sections_path must be set")
	assert.NotEmpty(ctx, resolved.Source, "source must be set")
	assert.NotEmpty(ctx, resolved.Destination, "destination must be set")

	var components []types.Component
	for _, root := range resolved.ComponentRoots() {
		found, err := s.Components.DiscoverComponents(ctx, root)
		if err != nil {
			return buildPass{}, err
		}
		components = append(components, found...)
	}
	lookup, err := core.BuildLookupTable(components)
	if err != nil {
		return buildPass{}, err
	}
	pages, err := s.Pages.LoadPages(ctx, resolved.Source)
	if err != nil {
		return buildPass{}, err
	}
	log.Ctx(ctx).Debug().
		Int("components", len(components)).
		Int("pages", len(pages)).
		Msg("build pass prepared")
	return buildPass{
		opts:       resolved,
		components: components,
		lookup:     lookup,
		pages:      pages,
	}, nil
}

func (p buildPass) scanner(s Service) core.UsageScanner {
	return core.NewUsageScanner(s.Layouts, p.opts.DirectoryMarkers(), p.opts.TemplateExtensions)
}

// resolveOptions makes every path option absolute against projectDir.
// Bundle destinations stay relative to Destination.
func resolveOptions(projectDir string, opts types.Options) (types.Options, error) {
	if strings.TrimSpace(projectDir) == "" {
		projectDir = "."
	}
	root, err := filepath.Abs(projectDir)
	if err != nil {
		return types.Options{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid project directory: " + projectDir).
			WithCause(err)
	}
	resolve := func(value *string) {
		if strings.TrimSpace(*value) == "" || filepath.IsAbs(*value) {
			return
		}
		*value = filepath.Join(root, *value)
	}
	resolve(&opts.BasePath)
	resolve(&opts.SectionsPath)
	resolve(&opts.LayoutsPath)
	resolve(&opts.Source)
	resolve(&opts.Destination)
	resolve(&opts.MainCSSEntry)
	resolve(&opts.MainJSEntry)
	return opts, nil
}
