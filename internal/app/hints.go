package app

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/agnivade/levenshtein"

	"bundled-components/internal/core"
	"bundled-components/internal/types"
)

const (
	missingRequirementsMsg = "missing component requirements"
	maxSuggestionDistance  = 2
)

// requirementHints suggests the closest existing component for each missing
// requirement, when one is within maxSuggestionDistance edits.
func requirementHints(errs []core.RequirementError, lookup types.ComponentLookup) []string {
	names := lookup.Names()
	var hints []string
	for _, reqErr := range errs {
		best := ""
		bestDistance := maxSuggestionDistance + 1
		for _, name := range names {
			if name == reqErr.Component {
				continue
			}
			distance := levenshtein.ComputeDistance(reqErr.Missing, name)
			if distance < bestDistance {
				best = name
				bestDistance = distance
			}
		}
		if best == "" {
			continue
		}
		hints = append(hints, fmt.Sprintf(
			"hint: component %s requires %s; did you mean %s?",
			reqErr.Component, reqErr.Missing, best,
		))
	}
	return hints
}

func missingRequirementsError(errs []core.RequirementError, hints []string) error {
	lines := append(core.RequirementMessages(errs), hints...)
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("%s: %d unresolved\n  %s", missingRequirementsMsg, len(errs), strings.Join(lines, "\n  ")))
}

// IsMissingRequirements reports whether err is the fatal requirement check
// failure.
func IsMissingRequirements(err error) bool {
	return err != nil &&
		errbuilder.CodeOf(err) == errbuilder.CodeFailedPrecondition &&
		strings.Contains(err.Error(), missingRequirementsMsg)
}

// checkRequirements fails when any component requires a name that is not in
// the lookup table. Strict mode does not matter here.
func checkRequirements(lookup types.ComponentLookup) error {
	errs := core.ValidateRequirements(lookup)
	if len(errs) == 0 {
		return nil
	}
	return missingRequirementsError(errs, requirementHints(errs, lookup))
}
