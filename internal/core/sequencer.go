package core

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"msys2-buildqueue/internal/types"
)

// sequenceUnits orders build units so that a unit providing another
// unit's make-dependencies is placed first where possible.
//
// This is a documented heuristic, not a general topological sort under
// cycles. Each round classifies every remaining unit as blocked, ready,
// or a cycle-break candidate: a strict (non-mutual) need blocks a unit,
// while a mutual need leaves the unit with fewer-or-equal makedepends
// as a recorded cycle-break option. When no unit is ready, the first
// recorded option is placed, and failing that the first remaining unit,
// so progress is always guaranteed even if that silently ignores the
// fallback unit's own ordering needs.
func sequenceUnits(ctx context.Context, units []*types.BuildUnit) []*types.BuildUnit {
	todo := append([]*types.BuildUnit(nil), units...)

	providesKey := map[*types.BuildUnit][]string{}
	for _, unit := range todo {
		providesKey[unit] = sortedSet(unit.Provides)
	}
	sort.SliceStable(todo, func(i, j int) bool {
		if len(todo[i].MakeDepends) != len(todo[j].MakeDepends) {
			return len(todo[i].MakeDepends) < len(todo[j].MakeDepends)
		}
		return lessStrings(providesKey[todo[i]], providesKey[todo[j]])
	})

	var done []*types.BuildUnit
	rounds := 0
	for len(todo) > 0 {
		rounds++
		var toAdd []*types.BuildUnit
		var cycleOptions []*types.BuildUnit

		for _, current := range todo {
			blocked := false
			recorded := false
			for _, other := range todo {
				if other == current {
					continue
				}
				if !intersects(current.MakeDepends, other.Provides) {
					continue
				}
				if intersects(current.Provides, other.MakeDepends) &&
					len(current.MakeDepends) <= len(other.MakeDepends) {
					// Mutual need: current is the cheaper side of the
					// cycle, keep it as a break option.
					if !recorded {
						cycleOptions = append(cycleOptions, current)
						recorded = true
					}
					continue
				}
				blocked = true
				break
			}
			if !blocked {
				toAdd = append(toAdd, current)
			}
		}

		if len(toAdd) == 0 {
			if len(cycleOptions) > 0 {
				toAdd = append(toAdd, cycleOptions[0])
			} else {
				toAdd = append(toAdd, todo[0])
			}
		}

		done = append(done, toAdd...)
		todo = removeUnits(todo, toAdd)
	}

	log.Ctx(ctx).Debug().Int("units", len(done)).Int("rounds", rounds).Msg("build units sequenced")
	return done
}

func removeUnits(units []*types.BuildUnit, drop []*types.BuildUnit) []*types.BuildUnit {
	dropped := map[*types.BuildUnit]struct{}{}
	for _, unit := range drop {
		dropped[unit] = struct{}{}
	}
	remaining := units[:0]
	for _, unit := range units {
		if _, ok := dropped[unit]; ok {
			continue
		}
		remaining = append(remaining, unit)
	}
	return remaining
}

func intersects(a map[string]struct{}, b map[string]struct{}) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for name := range a {
		if _, ok := b[name]; ok {
			return true
		}
	}
	return false
}

func sortedSet(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lessStrings compares two sorted name lists element-wise, with a
// shorter prefix ordering first.
func lessStrings(a []string, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
