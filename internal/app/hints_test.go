package app

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"bundled-components/internal/core"
	"bundled-components/internal/types"
)

func TestRequirementHints(t *testing.T) {
	lookup := types.ComponentLookup{
		"button": {Name: "button"},
		"image":  {Name: "image"},
		"hero":   {Name: "hero"},
	}
	errs := []core.RequirementError{
		{Component: "hero", Missing: "buton"},
		{Component: "hero", Missing: "carousel"},
		{Component: "image", Missing: "imag"},
	}

	want := []string{"hint: component hero requires buton; did you mean button?"}
	if diff := cmp.Diff(want, requirementHints(errs, lookup)); diff != "" {
		t.Fatalf("unexpected hints (-want +got):\n%s", diff)
	}
}

func TestIsMissingRequirements(t *testing.T) {
	err := missingRequirementsError([]core.RequirementError{{Component: "a", Missing: "b"}}, nil)
	assert.True(t, IsMissingRequirements(err))
	assert.Contains(t, err.Error(), "missing component requirements: 1 unresolved")

	other := errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("dependency cycle: a -> a")
	assert.False(t, IsMissingRequirements(other))
	assert.False(t, IsMissingRequirements(nil))
}
