package types

import "sort"

// ValidationConfig is the declarative rule set a component attaches to the
// page sections rendered by it.
type ValidationConfig struct {
	// Required lists dot-notation paths that must exist on the section.
	Required []string

	// Properties maps dot-notation paths to the rule applied to the value
	// found there. Absent values are always accepted.
	Properties map[string]PropertyRule
}

// Empty reports whether the config carries no rules at all.
func (c *ValidationConfig) Empty() bool {
	return c == nil || (len(c.Required) == 0 && len(c.Properties) == 0)
}

// PropertyRule constrains a single value. Every field is optional; presence
// is tracked explicitly because a const of false or null is still a const.
type PropertyRule struct {
	Type PropertyType

	Const    any
	HasConst bool

	// Enum is nil when no enum was declared. A declared but empty enum
	// accepts nothing.
	Enum []any

	// Items applies to each element when Type is array.
	Items *PropertyRule

	// Properties is only meaningful on an Items rule and describes
	// object-shaped array elements.
	Properties map[string]PropertyRule
}

// HasEnum reports whether an enum was declared.
func (r PropertyRule) HasEnum() bool {
	return r.Enum != nil
}

// SortedPropertyPaths returns the keys of rules in lexical order so that
// validation reports are deterministic.
func SortedPropertyPaths(rules map[string]PropertyRule) []string {
	paths := make([]string, 0, len(rules))
	for path := range rules {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
