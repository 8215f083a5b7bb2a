package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"bundled-components/internal/types"
)

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

// OrderByRequirements returns names sorted so that every component comes
// after the components it requires. Requirements reachable from names are
// included. A cycle fails with the offending path; a missing requirement
// fails as well since no position can be assigned to it.
func OrderByRequirements(lookup types.ComponentLookup, names []string) ([]string, error) {
	state := make(map[string]visitState, len(lookup))
	order := make([]string, 0, len(names))
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visited:
			return nil
		case visiting:
			cycle := append(cyclePath(path, name), name)
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("dependency cycle: %s", strings.Join(cycle, " -> ")))
		}

		component, ok := lookup[name]
		if !ok {
			requiredBy := "input"
			if len(path) > 0 {
				requiredBy = path[len(path)-1]
			}
			return errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("component %s requires %s which was not found", requiredBy, name))
		}

		state[name] = visiting
		path = append(path, name)
		for _, required := range component.Requires {
			if err := visit(required); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[name] = visited
		order = append(order, name)
		return nil
	}

	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// OrderComponents reorders components by requirement order. Components not
// listed in order keep their relative position at the end.
func OrderComponents(components []types.Component, order []string) []types.Component {
	rank := make(map[string]int, len(order))
	for i, name := range order {
		rank[name] = i
	}
	out := make([]types.Component, 0, len(components))
	var rest []types.Component
	byName := make(map[string]types.Component, len(components))
	for _, component := range components {
		if _, ok := rank[component.Name]; !ok {
			rest = append(rest, component)
			continue
		}
		byName[component.Name] = component
	}
	for _, name := range order {
		if component, ok := byName[name]; ok {
			out = append(out, component)
		}
	}
	return append(out, rest...)
}

func cyclePath(path []string, start string) []string {
	for i, name := range path {
		if name == start {
			return append([]string(nil), path[i:]...)
		}
	}
	return append([]string(nil), path...)
}
