package ports

import (
	"context"

	"bundled-components/internal/types"
)

// BundlerPort turns the resolved component list into CSS and JS bundles.
type BundlerPort interface {
	Bundle(ctx context.Context, req types.BundleRequest) (types.BundleResult, error)
}

// ReportRendererPort formats section validation failures for humans.
type ReportRendererPort interface {
	RenderValidationReport(reports []types.FileValidationReport) (string, error)
}
