package adapters

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/aymerick/raymond"

	"bundled-components/internal/ports"
	"bundled-components/internal/types"
)

const validationReportTemplate = `{{#each files}}{{{name}}}: {{count}} invalid section(s)
{{#each errors}}  - {{{this}}}
{{/each}}{{/each}}`

// ReportRendererAdapter renders section validation failures as plain text.
type ReportRendererAdapter struct {
	template *raymond.Template
}

func NewReportRendererAdapter() ReportRendererAdapter {
	return ReportRendererAdapter{template: raymond.MustParse(validationReportTemplate)}
}

func (a ReportRendererAdapter) RenderValidationReport(reports []types.FileValidationReport) (string, error) {
	files := make([]map[string]any, 0, len(reports))
	for _, report := range reports {
		if len(report.Errors) == 0 {
			continue
		}
		messages := make([]string, 0, len(report.Errors))
		for _, verr := range report.Errors {
			messages = append(messages, strings.ReplaceAll(verr.Message, "\n", "\n    "))
		}
		files = append(files, map[string]any{
			"name":   report.FileName,
			"count":  len(report.Errors),
			"errors": messages,
		})
	}
	out, err := a.template.Exec(map[string]any{"files": files})
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render validation report").
			WithCause(err)
	}
	return strings.TrimRight(out, "\n"), nil
}

var _ ports.ReportRendererPort = ReportRendererAdapter{}
