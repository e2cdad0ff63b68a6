package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"msys2-buildqueue/internal/app"
)

type searchOptions struct {
	Snapshot         string
	SnapshotURL      string
	Query            string
	Type             string
	HTTPTimeoutSec   int
	HTTPRetries      int
	HTTPRetryDelayMs int
}

func newSearchCommand() *cobra.Command {
	opts := searchOptions{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search source or binary packages by name",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Snapshot, "snapshot", "", "Snapshot file path")
	cmd.Flags().StringVar(&opts.SnapshotURL, "snapshot-url", "", "Snapshot HTTP endpoint")
	cmd.Flags().StringVar(&opts.Query, "query", "", "Search query")
	cmd.Flags().StringVar(&opts.Type, "type", "pkg", "Search type: pkg or binpkg")
	cmd.Flags().IntVar(&opts.HTTPTimeoutSec, "http-timeout", 0, "Snapshot fetch timeout in seconds")
	cmd.Flags().IntVar(&opts.HTTPRetries, "http-retries", 0, "Snapshot fetch retries")
	cmd.Flags().IntVar(&opts.HTTPRetryDelayMs, "http-retry-delay-ms", 0, "Snapshot fetch retry delay in milliseconds")

	_ = viper.BindPFlag("snapshot", cmd.Flags().Lookup("snapshot"))
	_ = viper.BindPFlag("snapshot_url", cmd.Flags().Lookup("snapshot-url"))
	_ = viper.BindPFlag("query", cmd.Flags().Lookup("query"))
	_ = viper.BindPFlag("search_type", cmd.Flags().Lookup("type"))
	_ = viper.BindPFlag("http_timeout", cmd.Flags().Lookup("http-timeout"))
	_ = viper.BindPFlag("http_retries", cmd.Flags().Lookup("http-retries"))
	_ = viper.BindPFlag("http_retry_delay_ms", cmd.Flags().Lookup("http-retry-delay-ms"))

	return cmd
}

func runSearch(ctx context.Context, cmd *cobra.Command, opts searchOptions) error {
	service := app.NewService()
	result, err := service.Search(ctx, app.SearchRequest{
		SnapshotPath:     resolveString(cmd, opts.Snapshot, "snapshot", "snapshot"),
		SnapshotURL:      resolveString(cmd, opts.SnapshotURL, "snapshot_url", "snapshot-url"),
		Query:            resolveString(cmd, opts.Query, "query", "query"),
		Type:             resolveString(cmd, opts.Type, "search_type", "type"),
		HTTPTimeoutSec:   resolveInt(cmd, opts.HTTPTimeoutSec, "http_timeout", "http-timeout"),
		HTTPRetries:      resolveInt(cmd, opts.HTTPRetries, "http_retries", "http-retries"),
		HTTPRetryDelayMs: resolveInt(cmd, opts.HTTPRetryDelayMs, "http_retry_delay_ms", "http-retry-delay-ms"),
	})
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
