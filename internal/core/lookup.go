package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"bundled-components/internal/types"
)

// BuildLookupTable indexes components by name. Names must be unique across
// every component root; the first repeat aborts construction.
func BuildLookupTable(components []types.Component) (types.ComponentLookup, error) {
	lookup := make(types.ComponentLookup, len(components))
	for _, component := range components {
		if existing, ok := lookup[component.Name]; ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("duplicate component name: %s (found in %s and %s)", component.Name, existing.Path, component.Path))
		}
		lookup[component.Name] = component
	}
	return lookup, nil
}

// ManifestAccessor returns the component owning a section type. It fails
// for unknown types.
type ManifestAccessor func(sectionType string) (types.Component, error)

// LookupAccessor adapts a lookup table to a ManifestAccessor.
func LookupAccessor(lookup types.ComponentLookup) ManifestAccessor {
	return func(sectionType string) (types.Component, error) {
		component, ok := lookup[sectionType]
		if !ok {
			return types.Component{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("unknown component: %s", sectionType))
		}
		return component, nil
	}
}
