package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msys2-buildqueue/internal/app"
	"msys2-buildqueue/tests/testutil"
)

// TestGoldenPlan runs a full planning pass over the sample snapshot and
// compares the outputs against committed golden files. If the golden
// files do not exist yet (first run), they are written so they can be
// committed.
//
// To update golden files after an intentional change, delete the
// testdata/golden/ directory and re-run the test.
func TestGoldenPlan(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenDir := filepath.Join(root, "tests", "integration", "testdata", "golden")
	snapshotPath := filepath.Join(root, "fixtures", "snapshot-sample.yaml")

	outDir := t.TempDir()
	service := app.NewService()

	_, err := service.Plan(t.Context(), app.PlanRequest{
		SnapshotPath: snapshotPath,
		OutputDir:    outDir,
	})
	require.NoError(t, err)
	_, err = service.Removals(t.Context(), app.RemovalsRequest{
		SnapshotPath: snapshotPath,
		OutputDir:    outDir,
	})
	require.NoError(t, err)

	for _, name := range []string{"buildqueue.json", "removals.json"} {
		t.Run(name, func(t *testing.T) {
			actual, err := os.ReadFile(filepath.Join(outDir, name))
			require.NoError(t, err)

			goldenPath := filepath.Join(goldenDir, name)
			if _, statErr := os.Stat(goldenPath); os.IsNotExist(statErr) {
				// Golden file doesn't exist yet -- write it.
				require.NoError(t, os.MkdirAll(goldenDir, 0o755))
				require.NoError(t, os.WriteFile(goldenPath, actual, 0o644))
				t.Logf("golden file written: %s (commit it)", goldenPath)
				return
			}

			expected, err := os.ReadFile(goldenPath)
			require.NoError(t, err)
			assert.Equal(t, string(expected), string(actual),
				"golden mismatch for %s -- delete testdata/golden/ and re-run to regenerate", name)
		})
	}
}

// TestGoldenPlanStructure verifies the structural properties of the
// sample plan independent of exact serialized bytes.
func TestGoldenPlanStructure(t *testing.T) {
	root := testutil.RepoRoot(t)
	snapshotPath := filepath.Join(root, "fixtures", "snapshot-sample.yaml")

	service := app.NewService()
	result, err := service.Plan(t.Context(), app.PlanRequest{SnapshotPath: snapshotPath})
	require.NoError(t, err)

	// zstd is an update and must build before curl, which links against
	// the libzstd it provides.
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "zstd", result.Entries[0].Name)
	assert.Equal(t, "curl", result.Entries[1].Name)
	assert.True(t, result.Entries[0].Source)
	assert.True(t, result.Entries[1].Source)
	assert.Equal(t, map[string][]string{
		"mingw64": {"mingw-w64-x86_64-zstd"},
	}, result.Entries[1].Depends)

	removals, err := service.Removals(t.Context(), app.RemovalsRequest{SnapshotPath: snapshotPath})
	require.NoError(t, err)
	require.Len(t, removals.Entries, 1)
	assert.Equal(t, "mingw-w64-x86_64-legacy-tool", removals.Entries[0].Name)
}

// TestGoldenPlanDeterminism re-runs the full pass and requires identical
// output bytes.
func TestGoldenPlanDeterminism(t *testing.T) {
	root := testutil.RepoRoot(t)
	snapshotPath := filepath.Join(root, "fixtures", "snapshot-sample.yaml")
	service := app.NewService()

	read := func(t *testing.T) []byte {
		outDir := t.TempDir()
		_, err := service.Plan(t.Context(), app.PlanRequest{
			SnapshotPath: snapshotPath,
			OutputDir:    outDir,
		})
		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(outDir, "buildqueue.json"))
		require.NoError(t, err)
		return data
	}

	first := read(t)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, read(t))
	}
}
