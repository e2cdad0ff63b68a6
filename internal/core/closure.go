package core

// closureEngine computes transitive dependency closures over one
// snapshot index. For every name the live recipe data is preferred over
// the built-package data; names known to neither terminate the closure
// without error and stay in the result as leaves.
type closureEngine struct {
	idx *snapshotIndex
}

// runtimeClosure returns the transitive closure of the seed names under
// runtime depends edges. The result is a set; callers must not rely on
// any ordering.
func (e closureEngine) runtimeClosure(seeds map[string]struct{}) map[string]struct{} {
	todo := map[string]struct{}{}
	for name := range seeds {
		todo[name] = struct{}{}
	}
	done := map[string]struct{}{}
	for len(todo) > 0 {
		var name string
		for candidate := range todo {
			name = candidate
			break
		}
		delete(todo, name)
		if _, ok := done[name]; ok {
			continue
		}
		done[name] = struct{}{}
		if recipe, ok := e.idx.recipes[name]; ok {
			for dep := range recipe.Depends {
				todo[dep] = struct{}{}
			}
		} else if deps, ok := e.idx.builtDepends[name]; ok {
			for dep := range deps {
				todo[dep] = struct{}{}
			}
		}
	}
	return done
}

// buildClosure returns everything that must exist to build the seed
// packages: the union of each seed's depends and makedepends, expanded
// by the runtime closure. The seeds themselves are only part of the
// result when they are reachable through that expansion.
func (e closureEngine) buildClosure(seeds map[string]struct{}) map[string]struct{} {
	union := map[string]struct{}{}
	for name := range seeds {
		if recipe, ok := e.idx.recipes[name]; ok {
			for dep := range recipe.Depends {
				union[dep] = struct{}{}
			}
			for dep := range recipe.MakeDepends {
				union[dep] = struct{}{}
			}
			continue
		}
		for dep := range e.idx.builtDepends[name] {
			union[dep] = struct{}{}
		}
		for dep := range e.idx.builtMakeDepends[name] {
			union[dep] = struct{}{}
		}
	}
	return e.runtimeClosure(union)
}
