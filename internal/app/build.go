package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"bundled-components/internal/core"
	"bundled-components/internal/types"
)

// Build runs one full pass: discovery, usage scan, requirement closure,
// requirement and section validation, then bundling of the needed
// components.
func (s Service) Build(ctx context.Context, req BuildRequest) (BuildResult, error) {
	pass, err := s.prepare(ctx, req.ProjectDir, req.Options)
	if err != nil {
		return BuildResult{}, err
	}

	used := pass.scanner(s).DetectUsedComponents(ctx, pass.pages, pass.opts.LayoutsPath)
	needed := core.ResolveAllDependencies(used, pass.lookup)
	bundled := core.FilterToNeeded(pass.components, needed)
	log.Ctx(ctx).Debug().
		Int("used", len(used)).
		Int("needed", len(needed)).
		Int("bundled", len(bundled)).
		Msg("components resolved")

	if err := checkRequirements(pass.lookup); err != nil {
		return BuildResult{}, err
	}
	reports, _, err := s.validateSections(ctx, pass)
	if err != nil {
		return BuildResult{}, err
	}

	if pass.opts.DependencyOrder {
		order, err := core.OrderByRequirements(pass.lookup, componentNames(bundled))
		if err != nil {
			return BuildResult{}, err
		}
		bundled = core.OrderComponents(bundled, order)
	}

	bundles, err := s.Bundler(pass.opts.Destination).Bundle(ctx, types.BundleRequest{
		Components:   bundled,
		MainCSSEntry: pass.opts.MainCSSEntry,
		MainJSEntry:  pass.opts.MainJSEntry,
		CSSDest:      pass.opts.CSSDest,
		JSDest:       pass.opts.JSDest,
		Minify:       pass.opts.MinifyOutput,
	})
	if err != nil {
		return BuildResult{}, err
	}

	return BuildResult{
		Discovered:        pass.lookup.Names(),
		Used:              used.Sorted(),
		Needed:            needed.Sorted(),
		Bundled:           componentNames(bundled),
		ValidationReports: reports,
		Bundles:           bundles,
	}, nil
}

func componentNames(components []types.Component) []string {
	names := make([]string, 0, len(components))
	for _, component := range components {
		names = append(names, component.Name)
	}
	return names
}
