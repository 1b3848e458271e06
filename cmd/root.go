package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"

	"github.com/dormstern/svcreport/internal/config"
)

var (
	outputDir string
	zipkinURL string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "svcreport",
	Short: "Turn batch-job results into per-service text reports",
	Long: `svcreport reads line-oriented results dropped by upstream aggregation
jobs and writes human-readable per-service reports.

Each input line is a "service value" pair. Values are grouped per
service, formatted according to a report kind, and appended to one
file per service under the output directory.

  svcreport run results/timeouts.txt --kind timeouts
  svcreport run --manifest reports.yml
  svcreport graph checkout
  svcreport kinds`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		cmd.SetContext(clog.WithLogger(cmd.Context(), clog.New(handler)))
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "reports", "Directory report files are written to (env SVCREPORT_OUTPUT_DIR)")
	rootCmd.PersistentFlags().StringVar(&zipkinURL, "zipkin-url", "http://localhost:9411", "Base URL of the Zipkin UI (env SVCREPORT_ZIPKIN_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// resolveConfig layers explicit flags over environment values over the
// built-in defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = outputDir
	}
	if cmd.Flags().Changed("zipkin-url") {
		cfg.ZipkinURL = zipkinURL
	}
	return cfg, nil
}
