package app

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"bundled-components/internal/core"
	"bundled-components/internal/policies"
	"bundled-components/internal/types"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	pass, err := s.prepare(ctx, req.ProjectDir, req.Options)
	if err != nil {
		return ValidateResult{}, err
	}
	if err := checkRequirements(pass.lookup); err != nil {
		return ValidateResult{}, err
	}
	reports, findings, err := s.validateSections(ctx, pass)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		ComponentCount: len(pass.components),
		FileCount:      len(pass.pages),
		Reports:        reports,
		Findings:       findings,
	}, nil
}

// validateSections validates the sections of every page in path order and
// applies the validation policy. It returns the per-file reports with
// findings and the count tolerated in non-strict mode.
func (s Service) validateSections(ctx context.Context, pass buildPass) ([]types.FileValidationReport, int, error) {
	policy := policies.NewValidationPolicy(pass.opts.Validation)
	if !policy.Enabled {
		log.Ctx(ctx).Debug().Msg("section validation disabled")
		return nil, 0, nil
	}

	fileNames := make([]string, 0, len(pass.pages))
	for name := range pass.pages {
		fileNames = append(fileNames, name)
	}
	sort.Strings(fileNames)

	accessor := core.LookupAccessor(pass.lookup)
	var reports []types.FileValidationReport
	for _, name := range fileNames {
		page := pass.pages[name]
		if len(page.Sections) == 0 {
			continue
		}
		report := types.FileValidationReport{
			FileName: name,
			Errors:   core.ValidateSections(ctx, page.Sections, accessor, name),
		}
		if len(report.Errors) > 0 {
			reports = append(reports, report)
		}
		if !policy.ShouldContinue(report) {
			break
		}
	}

	if policies.CountErrors(reports) == 0 {
		return nil, 0, nil
	}
	rendered, err := s.Reports.RenderValidationReport(reports)
	if err != nil {
		return nil, 0, err
	}
	warn, err := policy.Verdict(reports, rendered)
	if err != nil {
		return reports, 0, err
	}
	findings := 0
	if warn {
		findings = policies.CountErrors(reports)
		log.Ctx(ctx).Warn().Int("invalid_sections", findings).Msg("section validation found problems:\n" + rendered)
	}
	return reports, findings, nil
}
