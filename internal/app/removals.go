package app

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"msys2-buildqueue/internal/adapters"
	"msys2-buildqueue/internal/types"
)

// Removals lists the built packages that no longer have a recipe
// counterpart and should be removed from the repository.
func (s Service) Removals(ctx context.Context, req RemovalsRequest) (RemovalsResult, error) {
	snapshot, err := s.loadSnapshot(ctx, req.SnapshotPath, req.SnapshotURL, req.HTTPTimeoutSec, req.HTTPRetries, req.HTTPRetryDelayMs)
	if err != nil {
		return RemovalsResult{}, err
	}

	known := map[string]struct{}{}
	for _, recipe := range snapshot.Recipes {
		known[recipe.Name] = struct{}{}
	}

	var entries []types.Removal
	for _, source := range snapshot.Sources {
		packages := append([]types.BinaryPackage(nil), source.Packages...)
		sort.Slice(packages, func(i, j int) bool {
			return packages[i].Name < packages[j].Name
		})
		for _, pkg := range packages {
			if _, ok := known[pkg.Name]; ok {
				continue
			}
			entries = append(entries, types.Removal{Repo: pkg.Repo, Name: pkg.Name})
		}
	}

	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir != "" {
		writer := adapters.NewPlanFileAdapter(outputDir)
		if err := writer.WriteRemovals(entries); err != nil {
			return RemovalsResult{}, err
		}
	}

	log.Ctx(ctx).Info().Int("removals", len(entries)).Msg("removal set computed")
	return RemovalsResult{Entries: entries, OutputDir: outputDir}, nil
}
