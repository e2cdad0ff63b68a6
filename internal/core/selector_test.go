package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msys2-buildqueue/internal/types"
)

func builtSource(base string, version string, packages ...types.BinaryPackage) types.Source {
	return types.Source{Name: base, Version: version, Packages: packages}
}

func builtPackage(name string, version string, repo string) types.BinaryPackage {
	return types.BinaryPackage{Name: name, Version: version, Repo: repo}
}

func recipe(name string, base string, version string) types.RecipePackage {
	return types.RecipePackage{
		Name:         name,
		Base:         base,
		BuildVersion: version,
		Repo:         "mingw64",
		RepoURL:      "https://example.invalid/packages",
		RepoPath:     base,
	}
}

func pendingNames(t *testing.T, snapshot types.Snapshot) []string {
	t.Helper()
	idx := newSnapshotIndex(snapshot)
	pending, err := selectPending(t.Context(), idx, newVersionCache())
	require.NoError(t, err)
	names := make([]string, 0, len(pending))
	for _, entry := range pending {
		names = append(names, entry.Name)
	}
	return names
}

func TestSelectorIncludesNewerRecipe(t *testing.T) {
	snapshot := types.Snapshot{
		Sources: []types.Source{
			builtSource("foo", "1.0-1", builtPackage("foo", "1.0-1", "mingw64")),
		},
		Recipes: []types.RecipePackage{recipe("foo", "foo", "1.0-2")},
	}
	assert.Equal(t, []string{"foo"}, pendingNames(t, snapshot))
}

func TestSelectorSkipsUpToDateRecipe(t *testing.T) {
	snapshot := types.Snapshot{
		Sources: []types.Source{
			builtSource("foo", "1.0-1", builtPackage("foo", "1.0-1", "mingw64")),
		},
		Recipes: []types.RecipePackage{recipe("foo", "foo", "1.0-1")},
	}
	assert.Empty(t, pendingNames(t, snapshot))
}

func TestSelectorSkipsOlderRecipe(t *testing.T) {
	snapshot := types.Snapshot{
		Sources: []types.Source{
			builtSource("foo", "2.0-1", builtPackage("foo", "2.0-1", "mingw64")),
		},
		Recipes: []types.RecipePackage{recipe("foo", "foo", "1.0-1")},
	}
	assert.Empty(t, pendingNames(t, snapshot))
}

func TestSelectorIncludesRecipesWithoutBuiltCounterpart(t *testing.T) {
	snapshot := types.Snapshot{
		Recipes: []types.RecipePackage{recipe("bar", "bar", "1.0-1")},
	}
	assert.Equal(t, []string{"bar"}, pendingNames(t, snapshot))
}

func TestSelectorOrdersUpdatesBeforeNewPackages(t *testing.T) {
	snapshot := types.Snapshot{
		Sources: []types.Source{
			builtSource("foo", "1.0-1", builtPackage("foo", "1.0-1", "mingw64")),
		},
		Recipes: []types.RecipePackage{
			recipe("bar", "bar", "1.0-1"),
			recipe("foo", "foo", "1.0-2"),
		},
	}
	assert.Equal(t, []string{"foo", "bar"}, pendingNames(t, snapshot))
}

func TestSelectorIncludesEachRecipeOnce(t *testing.T) {
	snapshot := types.Snapshot{
		Sources: []types.Source{
			builtSource("foo", "1.0-1", builtPackage("foo", "1.0-1", "mingw64")),
			builtSource("other", "1.0-1", builtPackage("foo", "1.0-1", "mingw64")),
		},
		Recipes: []types.RecipePackage{recipe("foo", "foo", "1.0-2")},
	}
	assert.Equal(t, []string{"foo"}, pendingNames(t, snapshot))
}

func TestSelectorSurfacesUnparsableVersion(t *testing.T) {
	snapshot := types.Snapshot{
		Sources: []types.Source{
			builtSource("foo", "1.0-1", builtPackage("foo", "1.0-1", "mingw64")),
		},
		Recipes: []types.RecipePackage{recipe("foo", "foo", "")},
	}
	idx := newSnapshotIndex(snapshot)
	_, err := selectPending(t.Context(), idx, newVersionCache())
	require.Error(t, err)
}
