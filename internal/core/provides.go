package core

import (
	"msys2-buildqueue/internal/types"
)

// providesIndex maps a virtual provides name to the set of concrete
// package names that declare it. The index is built once per planning
// run and never mutated during resolution.
type providesIndex map[string]map[string]struct{}

// buildProvidesIndex indexes the provides declared across the combined
// universe of built packages and planned recipes, then removes every key
// that coincides with a real package name anywhere in that universe:
// real packages always win over provided ones.
func buildProvidesIndex(idx *snapshotIndex, planned []types.RecipePackage) providesIndex {
	index := providesIndex{}
	add := func(provide string, provider string) {
		set, ok := index[provide]
		if !ok {
			set = map[string]struct{}{}
			index[provide] = set
		}
		set[provider] = struct{}{}
	}
	for _, source := range idx.snapshot.Sources {
		for _, pkg := range source.Packages {
			for _, provide := range pkg.Provides {
				add(provide, pkg.Name)
			}
		}
	}
	for _, recipe := range planned {
		for _, provide := range recipe.Provides {
			add(provide, recipe.Name)
		}
	}

	for name := range idx.builtNames() {
		delete(index, name)
	}
	for _, recipe := range planned {
		delete(index, recipe.Name)
	}
	return index
}

// resolve substitutes a dependency name with its providing set, or keeps
// the name as a singleton when nothing provides it.
func (p providesIndex) resolve(name string) map[string]struct{} {
	if providers, ok := p[name]; ok {
		return providers
	}
	return map[string]struct{}{name: {}}
}

// resolveAll resolves every name in the set and unions the results.
func (p providesIndex) resolveAll(names map[string]struct{}) map[string]struct{} {
	resolved := map[string]struct{}{}
	for name := range names {
		for provider := range p.resolve(name) {
			resolved[provider] = struct{}{}
		}
	}
	return resolved
}
