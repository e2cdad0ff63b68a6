package core

import (
	"msys2-buildqueue/internal/types"
)

// snapshotIndex holds the name-keyed lookups the planner needs over one
// snapshot. All lookups are total: a missing name yields the zero value,
// never an error.
type snapshotIndex struct {
	snapshot types.Snapshot

	// recipes maps pkgname to its recipe. recipeNames preserves the
	// first-seen order of names so that iteration stays deterministic;
	// on duplicate pkgnames the later recipe wins, keeping the position
	// of the first.
	recipes     map[string]types.RecipePackage
	recipeNames []string

	// sources maps pkgbase to its built source package.
	sources map[string]types.Source

	// builtDepends and builtMakeDepends merge the dependency names of
	// every built binary package sharing a name.
	builtDepends     map[string]map[string]struct{}
	builtMakeDepends map[string]map[string]struct{}
}

func newSnapshotIndex(snapshot types.Snapshot) *snapshotIndex {
	idx := &snapshotIndex{
		snapshot:         snapshot,
		recipes:          map[string]types.RecipePackage{},
		sources:          map[string]types.Source{},
		builtDepends:     map[string]map[string]struct{}{},
		builtMakeDepends: map[string]map[string]struct{}{},
	}
	for _, recipe := range snapshot.Recipes {
		if _, ok := idx.recipes[recipe.Name]; !ok {
			idx.recipeNames = append(idx.recipeNames, recipe.Name)
		}
		idx.recipes[recipe.Name] = recipe
	}
	for _, source := range snapshot.Sources {
		idx.sources[source.Name] = source
		for _, pkg := range source.Packages {
			mergeNames(idx.builtDepends, pkg.Name, pkg.Depends)
			mergeNames(idx.builtMakeDepends, pkg.Name, pkg.MakeDepends)
		}
	}
	return idx
}

// builtNames returns the set of every built binary package name.
func (idx *snapshotIndex) builtNames() map[string]struct{} {
	names := map[string]struct{}{}
	for _, source := range idx.snapshot.Sources {
		for _, pkg := range source.Packages {
			names[pkg.Name] = struct{}{}
		}
	}
	return names
}

func mergeNames(index map[string]map[string]struct{}, name string, deps map[string]string) {
	set, ok := index[name]
	if !ok {
		set = map[string]struct{}{}
		index[name] = set
	}
	for dep := range deps {
		set[dep] = struct{}{}
	}
}
