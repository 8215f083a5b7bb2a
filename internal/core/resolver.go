package core

import (
	"bundled-components/internal/types"
)

// ResolveAllDependencies returns the transitive closure of used under the
// requires relation. Names missing from lookup stay in the result but are
// not expanded; ValidateRequirements reports them.
func ResolveAllDependencies(used types.ComponentSet, lookup types.ComponentLookup) types.ComponentSet {
	needed := make(types.ComponentSet, len(used))
	queue := make([]string, 0, len(used))
	for _, name := range used.Sorted() {
		needed.Add(name)
		queue = append(queue, name)
	}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		component, ok := lookup[name]
		if !ok {
			continue
		}
		for _, required := range component.Requires {
			if needed.Has(required) {
				continue
			}
			needed.Add(required)
			queue = append(queue, required)
		}
	}
	return needed
}

// FilterToNeeded keeps the components named in needed, preserving the order
// of all.
func FilterToNeeded(all []types.Component, needed types.ComponentSet) []types.Component {
	var out []types.Component
	for _, component := range all {
		if needed.Has(component.Name) {
			out = append(out, component)
		}
	}
	return out
}
