package app

import "bundled-components/internal/types"

type BuildRequest struct {
	ProjectDir string
	Options    types.Options
}

type BuildResult struct {
	Discovered []string
	Used       []string
	Needed     []string
	// Bundled lists the components handed to the bundler, in bundle order.
	Bundled           []string
	ValidationReports []types.FileValidationReport
	Bundles           types.BundleResult
}

type ValidateRequest struct {
	ProjectDir string
	Options    types.Options
}

type ValidateResult struct {
	ComponentCount int
	FileCount      int
	Reports        []types.FileValidationReport
	// Findings is the number of invalid sections tolerated in non-strict mode.
	Findings int
}

type InspectRequest struct {
	ProjectDir string
	Options    types.Options
}

type InspectComponent struct {
	Name      string
	Type      string
	Path      string
	Requires  []string
	Used      bool
	Needed    bool
	Validated bool
}

type InspectResult struct {
	Components        []InspectComponent
	Used              []string
	Needed            []string
	RequirementErrors []string
	Hints             []string
	Order             []string
	OrderError        string
}
