package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"msys2-buildqueue/internal/app"
)

type planOptions struct {
	Snapshot         string
	SnapshotURL      string
	OutputDir        string
	HTTPTimeoutSec   int
	HTTPRetries      int
	HTTPRetryDelayMs int
}

func newPlanCommand() *cobra.Command {
	opts := planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute the ordered build queue from a metadata snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Snapshot, "snapshot", "", "Snapshot file path")
	cmd.Flags().StringVar(&opts.SnapshotURL, "snapshot-url", "", "Snapshot HTTP endpoint")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Output directory (prints to stdout when empty)")
	cmd.Flags().IntVar(&opts.HTTPTimeoutSec, "http-timeout", 0, "Snapshot fetch timeout in seconds")
	cmd.Flags().IntVar(&opts.HTTPRetries, "http-retries", 0, "Snapshot fetch retries")
	cmd.Flags().IntVar(&opts.HTTPRetryDelayMs, "http-retry-delay-ms", 0, "Snapshot fetch retry delay in milliseconds")

	_ = viper.BindPFlag("snapshot", cmd.Flags().Lookup("snapshot"))
	_ = viper.BindPFlag("snapshot_url", cmd.Flags().Lookup("snapshot-url"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("http_timeout", cmd.Flags().Lookup("http-timeout"))
	_ = viper.BindPFlag("http_retries", cmd.Flags().Lookup("http-retries"))
	_ = viper.BindPFlag("http_retry_delay_ms", cmd.Flags().Lookup("http-retry-delay-ms"))

	return cmd
}

func runPlan(ctx context.Context, cmd *cobra.Command, opts planOptions) error {
	service := app.NewService()
	result, err := service.Plan(ctx, app.PlanRequest{
		SnapshotPath:     resolveString(cmd, opts.Snapshot, "snapshot", "snapshot"),
		SnapshotURL:      resolveString(cmd, opts.SnapshotURL, "snapshot_url", "snapshot-url"),
		OutputDir:        resolveString(cmd, opts.OutputDir, "output", "output"),
		HTTPTimeoutSec:   resolveInt(cmd, opts.HTTPTimeoutSec, "http_timeout", "http-timeout"),
		HTTPRetries:      resolveInt(cmd, opts.HTTPRetries, "http_retries", "http-retries"),
		HTTPRetryDelayMs: resolveInt(cmd, opts.HTTPRetryDelayMs, "http_retry_delay_ms", "http-retry-delay-ms"),
	})
	if err != nil {
		return err
	}
	if result.OutputDir != "" {
		fmt.Printf("planned %d build units: %s\n", len(result.Entries), result.OutputDir)
		return nil
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result.Entries)
}
