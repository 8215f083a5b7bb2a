package app

import (
	"context"

	"bundled-components/internal/core"
)

// Inspect reports what a build would bundle without validating sections or
// writing anything. Requirement problems are reported, not raised.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	pass, err := s.prepare(ctx, req.ProjectDir, req.Options)
	if err != nil {
		return InspectResult{}, err
	}

	used := pass.scanner(s).DetectUsedComponents(ctx, pass.pages, pass.opts.LayoutsPath)
	needed := core.ResolveAllDependencies(used, pass.lookup)

	result := InspectResult{
		Used:   used.Sorted(),
		Needed: needed.Sorted(),
	}
	for _, name := range pass.lookup.Names() {
		component := pass.lookup[name]
		result.Components = append(result.Components, InspectComponent{
			Name:      component.Name,
			Type:      component.Type,
			Path:      component.Path,
			Requires:  component.Requires,
			Used:      used.Has(name),
			Needed:    needed.Has(name),
			Validated: !component.Validation.Empty(),
		})
	}

	reqErrs := core.ValidateRequirements(pass.lookup)
	result.RequirementErrors = core.RequirementMessages(reqErrs)
	result.Hints = requirementHints(reqErrs, pass.lookup)

	order, err := core.OrderByRequirements(pass.lookup, componentNames(core.FilterToNeeded(pass.components, needed)))
	if err != nil {
		result.OrderError = err.Error()
	} else {
		result.Order = order
	}
	return result, nil
}
