package core

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"msys2-buildqueue/internal/types"
)

// selectPending returns the recipes that represent pending work, in a
// deterministic order: first recipes whose build version is strictly
// newer than the built package of the same name, then recipes with no
// built counterpart at all. Each recipe is included at most once.
func selectPending(ctx context.Context, idx *snapshotIndex, versions *versionCache) ([]types.RecipePackage, error) {
	var pending []types.RecipePackage
	seen := map[string]struct{}{}

	include := func(recipe types.RecipePackage) {
		if _, ok := seen[recipe.Name]; ok {
			return
		}
		seen[recipe.Name] = struct{}{}
		pending = append(pending, recipe)
	}

	// Updates: built packages whose recipe declares a newer version.
	for _, source := range idx.snapshot.Sources {
		packages := append([]types.BinaryPackage(nil), source.Packages...)
		sort.Slice(packages, func(i, j int) bool {
			return packages[i].Name < packages[j].Name
		})
		for _, pkg := range packages {
			recipe, ok := idx.recipes[pkg.Name]
			if !ok {
				continue
			}
			newer, err := versions.newerThan(recipe.BuildVersion, pkg.Version)
			if err != nil {
				return nil, err
			}
			if !newer {
				continue
			}
			include(recipe)
		}
	}

	// New packages: recipes with no built counterpart.
	built := idx.builtNames()
	for _, name := range idx.recipeNames {
		if _, ok := built[name]; ok {
			continue
		}
		include(idx.recipes[name])
	}

	log.Ctx(ctx).Debug().Int("pending", len(pending)).Msg("build set selected")
	return pending, nil
}
