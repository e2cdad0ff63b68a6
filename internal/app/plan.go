package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"msys2-buildqueue/internal/adapters"
	"msys2-buildqueue/internal/core"
	"msys2-buildqueue/internal/types"
)

// Plan materializes a snapshot from the metadata store, runs the core
// planner over it, and optionally writes the build queue to disk.
func (s Service) Plan(ctx context.Context, req PlanRequest) (PlanResult, error) {
	snapshot, err := s.loadSnapshot(ctx, req.SnapshotPath, req.SnapshotURL, req.HTTPTimeoutSec, req.HTTPRetries, req.HTTPRetryDelayMs)
	if err != nil {
		return PlanResult{}, err
	}

	planner := core.NewPlannerCore()
	entries, err := planner.Plan(ctx, snapshot)
	if err != nil {
		return PlanResult{}, err
	}

	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir != "" {
		writer := adapters.NewPlanFileAdapter(outputDir)
		if err := writer.WriteBuildQueue(entries); err != nil {
			return PlanResult{}, err
		}
	}

	log.Ctx(ctx).Info().Int("entries", len(entries)).Msg("build queue planned")
	return PlanResult{Entries: entries, OutputDir: outputDir}, nil
}

// loadSnapshot lists sources and recipes through the metadata port and
// materializes them into one immutable snapshot before planning starts.
func (s Service) loadSnapshot(ctx context.Context, snapshotPath string, snapshotURL string, timeoutSec int, retries int, retryDelayMs int) (types.Snapshot, error) {
	port, err := s.metadataPort(snapshotPath, snapshotURL, timeoutSec, retries, retryDelayMs)
	if err != nil {
		return types.Snapshot{}, err
	}
	sources, err := port.ListSources(ctx)
	if err != nil {
		return types.Snapshot{}, err
	}
	recipes, err := port.ListRecipePackages(ctx)
	if err != nil {
		return types.Snapshot{}, err
	}
	return types.Snapshot{Sources: sources, Recipes: recipes}, nil
}
