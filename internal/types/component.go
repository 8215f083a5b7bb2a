package types

import "sort"

// Component is a self-contained UI unit discovered under one of the
// component roots. It is immutable once discovery has built it.
type Component struct {
	Name    string
	Type    string
	Styles  []string
	Scripts []string

	// Requires holds the names of the components this one needs present in
	// the bundle. The legacy manifest key "dependencies" is folded into this
	// field at load time.
	Requires []string

	// Validation is nil when the manifest declares no rules.
	Validation *ValidationConfig

	// Path is the component directory.
	Path string

	// Manifest is the file the component was loaded from; empty when the
	// manifest was synthesized.
	Manifest string
}

// Synthesized reports whether the manifest was inferred from filenames.
func (c Component) Synthesized() bool {
	return c.Type == ComponentTypeAuto && c.Manifest == ""
}

// ComponentLookup maps component names to components. Build it with
// core.BuildLookupTable so duplicate names are rejected.
type ComponentLookup map[string]Component

// Names returns the component names in lexical order.
func (l ComponentLookup) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ComponentSet is an unordered set of component names.
type ComponentSet map[string]struct{}

func NewComponentSet(names ...string) ComponentSet {
	set := make(ComponentSet, len(names))
	for _, name := range names {
		set.Add(name)
	}
	return set
}

func (s ComponentSet) Add(name string) {
	s[name] = struct{}{}
}

func (s ComponentSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the members in lexical order.
func (s ComponentSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
