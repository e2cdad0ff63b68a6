package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msys2-buildqueue/internal/types"
)

func TestServiceRemovalsListsBuiltPackagesWithoutRecipe(t *testing.T) {
	service := Service{Metadata: stubMetadata{
		sources: []types.Source{
			{Name: "old", Version: "1.0-1", Packages: []types.BinaryPackage{
				{Name: "old-b", Version: "1.0-1", Repo: "ucrt64"},
				{Name: "old-a", Version: "1.0-1", Repo: "mingw64"},
			}},
			{Name: "kept", Version: "1.0-1", Packages: []types.BinaryPackage{
				{Name: "kept", Version: "1.0-1", Repo: "mingw64"},
			}},
		},
		recipes: []types.RecipePackage{
			{Name: "kept", Base: "kept", BuildVersion: "1.0-1", Repo: "mingw64"},
		},
	}}

	result, err := service.Removals(t.Context(), RemovalsRequest{})
	require.NoError(t, err)
	assert.Equal(t, []types.Removal{
		{Repo: "mingw64", Name: "old-a"},
		{Repo: "ucrt64", Name: "old-b"},
	}, result.Entries)
}

func TestServiceRemovalsEmptyWhenEveryPackageHasRecipe(t *testing.T) {
	service := Service{Metadata: stubMetadata{
		sources: []types.Source{
			{Name: "kept", Version: "1.0-1", Packages: []types.BinaryPackage{
				{Name: "kept", Version: "1.0-1", Repo: "mingw64"},
			}},
		},
		recipes: []types.RecipePackage{
			{Name: "kept", Base: "kept", BuildVersion: "1.0-1", Repo: "mingw64"},
		},
	}}

	result, err := service.Removals(t.Context(), RemovalsRequest{})
	require.NoError(t, err)
	assert.Empty(t, result.Entries)
}

func TestServiceRemovalsWritesOutputFile(t *testing.T) {
	service := Service{Metadata: stubMetadata{
		sources: []types.Source{
			{Name: "old", Version: "1.0-1", Packages: []types.BinaryPackage{
				{Name: "old", Version: "1.0-1", Repo: "mingw64"},
			}},
		},
	}}
	outputDir := t.TempDir()

	result, err := service.Removals(t.Context(), RemovalsRequest{OutputDir: outputDir})
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)

	data, err := os.ReadFile(filepath.Join(outputDir, "removals.json"))
	require.NoError(t, err)

	var decoded []types.Removal
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, result.Entries, decoded)
}
