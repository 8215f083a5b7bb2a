package core

import (
	"fmt"

	"bundled-components/internal/types"
)

// RequirementError is a requires entry naming a component that does not
// exist.
type RequirementError struct {
	Component string
	Missing   string
}

func (e RequirementError) Error() string {
	return fmt.Sprintf("component %s requires %s which was not found", e.Component, e.Missing)
}

// ValidateRequirements checks that every requirement of every component
// resolves to a known component. Load order is not checked.
func ValidateRequirements(lookup types.ComponentLookup) []RequirementError {
	var errs []RequirementError
	for _, name := range lookup.Names() {
		for _, required := range lookup[name].Requires {
			if _, ok := lookup[required]; ok {
				continue
			}
			errs = append(errs, RequirementError{Component: name, Missing: required})
		}
	}
	return errs
}

// RequirementMessages renders requirement errors as plain strings.
func RequirementMessages(errs []RequirementError) []string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	return messages
}
