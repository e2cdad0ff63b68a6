package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"msys2-buildqueue/internal/ports"
	"msys2-buildqueue/internal/types"
)

// PlanFileAdapter writes plan outputs as JSON files under a directory.
// encoding/json sorts map keys, so identical plans produce identical
// bytes on disk.
type PlanFileAdapter struct {
	Dir string
}

func NewPlanFileAdapter(dir string) PlanFileAdapter {
	return PlanFileAdapter{Dir: dir}
}

var _ ports.PlanWriterPort = PlanFileAdapter{}

const buildQueueFileName = "buildqueue.json"
const removalsFileName = "removals.json"

func (a PlanFileAdapter) WriteBuildQueue(entries []types.PlanEntry) error {
	if entries == nil {
		entries = []types.PlanEntry{}
	}
	return a.writeJSON(buildQueueFileName, entries)
}

func (a PlanFileAdapter) WriteRemovals(entries []types.Removal) error {
	if entries == nil {
		entries = []types.Removal{}
	}
	return a.writeJSON(removalsFileName, entries)
}

func (a PlanFileAdapter) writeJSON(name string, value any) error {
	path, err := a.ensurePath(name)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode plan output").
			WithCause(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write plan output").
			WithCause(err)
	}
	return nil
}

func (a PlanFileAdapter) ensurePath(name string) (string, error) {
	if strings.TrimSpace(a.Dir) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("plan output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create plan output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, name), nil
}
