package adapters

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"msys2-buildqueue/internal/ports"
	"msys2-buildqueue/internal/types"
)

// MetadataFileAdapter reads a metadata snapshot from a YAML file exported
// by the metadata store. The file is parsed once and cached.
type MetadataFileAdapter struct {
	Path   string
	cached types.Snapshot
	loaded bool
}

func NewMetadataFileAdapter(path string) *MetadataFileAdapter {
	return &MetadataFileAdapter{Path: path}
}

var _ ports.MetadataPort = (*MetadataFileAdapter)(nil)

func (a *MetadataFileAdapter) ListSources(ctx context.Context) ([]types.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snapshot, err := a.load()
	if err != nil {
		return nil, err
	}
	return snapshot.Sources, nil
}

func (a *MetadataFileAdapter) ListRecipePackages(ctx context.Context) ([]types.RecipePackage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snapshot, err := a.load()
	if err != nil {
		return nil, err
	}
	return snapshot.Recipes, nil
}

func (a *MetadataFileAdapter) load() (types.Snapshot, error) {
	if a.loaded {
		return a.cached, nil
	}
	if strings.TrimSpace(a.Path) == "" {
		return types.Snapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("snapshot file path is empty")
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return types.Snapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read snapshot file").
			WithCause(err)
	}
	var snapshot types.Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return types.Snapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse snapshot file").
			WithCause(err)
	}
	a.cached = snapshot
	a.loaded = true
	return a.cached, nil
}
