package ports

import (
	"context"

	"msys2-buildqueue/internal/types"
)

// MetadataPort is the read-only contract against the external metadata
// store. Implementations materialize a full snapshot before the core
// planner runs; the core itself performs no I/O.
type MetadataPort interface {
	ListSources(ctx context.Context) ([]types.Source, error)
	ListRecipePackages(ctx context.Context) ([]types.RecipePackage, error)
}
