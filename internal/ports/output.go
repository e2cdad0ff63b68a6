package ports

import (
	"msys2-buildqueue/internal/types"
)

// PlanWriterPort persists computed plan outputs for the presentation
// layer. Writers must emit byte-identical files for identical input.
type PlanWriterPort interface {
	WriteBuildQueue(entries []types.PlanEntry) error
	WriteRemovals(entries []types.Removal) error
}
