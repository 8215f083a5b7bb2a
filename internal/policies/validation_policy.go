package policies

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"bundled-components/internal/types"
)

// ValidationPolicy decides how section validation findings affect a build.
type ValidationPolicy struct {
	Enabled         bool
	Strict          bool
	ReportAllErrors bool
}

func NewValidationPolicy(opts types.ValidationOptions) ValidationPolicy {
	return ValidationPolicy{
		Enabled:         opts.Enabled,
		Strict:          opts.Strict,
		ReportAllErrors: opts.ReportAllErrors,
	}
}

// ShouldContinue reports whether scanning moves on to the next file after
// report. Without ReportAllErrors, the first file with findings ends the scan.
func (p ValidationPolicy) ShouldContinue(report types.FileValidationReport) bool {
	return p.ReportAllErrors || len(report.Errors) == 0
}

// Verdict turns the collected findings into a build outcome. It returns a
// FailedPrecondition error in strict mode and nil otherwise; warn is true
// when there are findings the caller should surface as a warning.
func (p ValidationPolicy) Verdict(reports []types.FileValidationReport, rendered string) (warn bool, err error) {
	count := CountErrors(reports)
	if count == 0 {
		return false, nil
	}
	if !p.Strict {
		return true, nil
	}
	msg := fmt.Sprintf("section validation failed: %d invalid section(s) in %d file(s)", count, countFiles(reports))
	if rendered != "" {
		msg += "\n" + rendered
	}
	return false, errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(msg)
}

// CountErrors sums the findings across reports.
func CountErrors(reports []types.FileValidationReport) int {
	total := 0
	for _, report := range reports {
		total += len(report.Errors)
	}
	return total
}

func countFiles(reports []types.FileValidationReport) int {
	files := 0
	for _, report := range reports {
		if len(report.Errors) > 0 {
			files++
		}
	}
	return files
}
