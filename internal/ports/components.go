package ports

import (
	"context"

	"bundled-components/internal/types"
)

// ComponentSourcePort discovers components below a component root.
type ComponentSourcePort interface {
	// DiscoverComponents returns one component per loadable subdirectory of
	// root. A missing root yields no components and no error.
	DiscoverComponents(ctx context.Context, root string) ([]types.Component, error)
}
