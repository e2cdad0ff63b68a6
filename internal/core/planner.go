package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"msys2-buildqueue/internal/types"
)

// PlannerCore computes an ordered build plan from an immutable snapshot
// of the metadata store. Planning is synchronous, CPU-only, and free of
// shared state; concurrent calls must each pass their own snapshot.
type PlannerCore struct{}

func NewPlannerCore() PlannerCore {
	return PlannerCore{}
}

// recipeKey identifies the recipe location a build unit is derived from.
type recipeKey struct {
	RepoURL  string
	RepoPath string
}

// Plan selects the pending recipes, derives build units, resolves their
// dependency edges through provides aliasing, and returns the ordered
// build queue. The only failure mode is an unparsable version string in
// the snapshot.
func (p PlannerCore) Plan(ctx context.Context, snapshot types.Snapshot) ([]types.PlanEntry, error) {
	idx := newSnapshotIndex(snapshot)
	versions := newVersionCache()

	pending, err := selectPending(ctx, idx, versions)
	if err != nil {
		return nil, err
	}

	units, repoOf := buildUnits(ctx, idx, pending)
	provides := buildProvidesIndex(idx, pending)
	ordered := sequenceUnits(ctx, units)

	entries := formatEntries(ordered, provides, repoOf)
	log.Ctx(ctx).Debug().Int("entries", len(entries)).Msg("build plan computed")
	return entries, nil
}

// buildUnits groups the pending recipes by recipe location and computes
// each unit's package, provides, and transitive make-dependency sets.
// It also returns the pkgname-to-repo mapping used for output grouping.
func buildUnits(ctx context.Context, idx *snapshotIndex, pending []types.RecipePackage) ([]*types.BuildUnit, map[string]string) {
	closures := closureEngine{idx: idx}
	repoOf := map[string]string{}

	grouped := map[recipeKey][]types.RecipePackage{}
	var order []recipeKey
	for _, recipe := range pending {
		key := recipeKey{RepoURL: recipe.RepoURL, RepoPath: recipe.RepoPath}
		if _, ok := grouped[key]; !ok {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], recipe)
	}

	var units []*types.BuildUnit
	for _, key := range order {
		members := grouped[key]
		first := members[0]
		assert.NotEmpty(ctx, first.Base, "build unit pkgbase must be set")

		unit := &types.BuildUnit{
			RepoURL:     key.RepoURL,
			RepoPath:    key.RepoPath,
			Name:        first.Base,
			Version:     first.BuildVersion,
			Packages:    map[string]struct{}{},
			Provides:    map[string]struct{}{},
			MakeDepends: map[string]struct{}{},
		}
		for _, member := range members {
			if !hasBuiltSource(idx, member) {
				unit.NeedsSource = true
			}
			unit.Packages[member.Name] = struct{}{}
			unit.Provides[member.Name] = struct{}{}
			repoOf[member.Name] = member.Repo
			for _, provide := range member.Provides {
				unit.Provides[provide] = struct{}{}
			}
		}
		unit.MakeDepends = closures.buildClosure(unit.Packages)
		units = append(units, unit)
	}
	return units, repoOf
}

// hasBuiltSource reports whether a built source package with the same
// pkgbase and an identical version already exists, meaning the recipe
// needs no new source upload.
func hasBuiltSource(idx *snapshotIndex, recipe types.RecipePackage) bool {
	source, ok := idx.sources[recipe.Base]
	if !ok {
		return false
	}
	return source.Version == recipe.BuildVersion
}

// formatEntries turns the ordered units into plan entries. A unit's
// dependencies are resolved through the provides index and intersected
// with the packages already placed earlier in the queue; dependencies on
// not-yet-placed units are dropped, a known limitation of cyclic input.
func formatEntries(ordered []*types.BuildUnit, provides providesIndex, repoOf map[string]string) []types.PlanEntry {
	placed := map[string]struct{}{}
	entries := make([]types.PlanEntry, 0, len(ordered))
	for _, unit := range ordered {
		resolved := provides.resolveAll(unit.MakeDepends)
		known := map[string]struct{}{}
		for name := range resolved {
			if _, ok := placed[name]; ok {
				known[name] = struct{}{}
			}
		}
		entry := types.PlanEntry{
			RepoURL:  unit.RepoURL,
			RepoPath: unit.RepoPath,
			Version:  unit.Version,
			Name:     unit.Name,
			Source:   unit.NeedsSource,
			Depends:  groupByRepo(known, repoOf),
		}
		for name := range unit.Packages {
			placed[name] = struct{}{}
		}
		entry.Packages = groupByRepo(unit.Packages, repoOf)
		entries = append(entries, entry)
	}
	return entries
}

// groupByRepo buckets names by their owning repo, each bucket sorted.
func groupByRepo(names map[string]struct{}, repoOf map[string]string) map[string][]string {
	grouped := map[string][]string{}
	for name := range names {
		repo := repoOf[name]
		grouped[repo] = append(grouped[repo], name)
	}
	for repo, values := range grouped {
		grouped[repo] = sortedUnique(values)
	}
	return grouped
}

func sortedUnique(values []string) []string {
	set := map[string]struct{}{}
	for _, value := range values {
		set[value] = struct{}{}
	}
	return sortedSet(set)
}
