package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/uzimihsr/cwexport/internal/apperr"
	"github.com/uzimihsr/cwexport/internal/cloudwatch"
	"github.com/uzimihsr/cwexport/internal/config"
	"github.com/uzimihsr/cwexport/internal/export"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch metric data over a date range and write CSV",
	Long: `Fetch metric data between --start-date and --end-date, querying one
--interval sized chunk at a time, and write the combined CSV to
--results-file (or stdout).`,
	RunE: fetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().String("query-file", "", "Metric query document, JSON or YAML (built-in default when omitted)")
	fetchCmd.Flags().String("results-file", "", "Write CSV to this file instead of stdout")
	fetchCmd.Flags().String("start-date", "", "Range start, ISO-8601 timestamp or YYYY-MM-DD (required)")
	fetchCmd.Flags().String("end-date", "", "Range end, ISO-8601 timestamp or YYYY-MM-DD (required)")
	fetchCmd.Flags().String("interval", "", `Chunk interval, e.g. "1 month", "10 days", "3 hours"`)
	fetchCmd.Flags().String("metric-label", "", "CSV header label for the value column")
	viper.BindPFlag("query_file", fetchCmd.Flags().Lookup("query-file"))
	viper.BindPFlag("results_file", fetchCmd.Flags().Lookup("results-file"))
	viper.BindPFlag("interval", fetchCmd.Flags().Lookup("interval"))
	viper.BindPFlag("metric_label", fetchCmd.Flags().Lookup("metric-label"))
}

func fetch(cmd *cobra.Command, args []string) error {
	cfg := config.New()

	// Required flags are checked here rather than via MarkFlagRequired so
	// their absence maps to the MissingArguments exit code.
	startDate, _ := cmd.Flags().GetString("start-date")
	endDate, _ := cmd.Flags().GetString("end-date")
	if startDate == "" {
		return apperr.New(apperr.MissingArguments, "--start-date is required")
	}
	if endDate == "" {
		return apperr.New(apperr.MissingArguments, "--end-date is required")
	}

	client, err := cloudwatch.NewClient(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create CloudWatch client: %w", err)
	}

	out := os.Stdout
	if cfg.ResultsFile != "" {
		f, err := os.Create(cfg.ResultsFile)
		if err != nil {
			return fmt.Errorf("failed to create results file %s: %w", cfg.ResultsFile, err)
		}
		defer f.Close()
		out = f
	}

	exporter := export.New(client, out)
	return exporter.Fetch(cmd.Context(), export.Options{
		QueryFile:   cfg.QueryFile,
		StartDate:   startDate,
		EndDate:     endDate,
		Interval:    cfg.Interval,
		MetricLabel: cfg.MetricLabel,
	})
}
