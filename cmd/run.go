package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/dormstern/svcreport/internal/job"
	"github.com/dormstern/svcreport/internal/report"
	"github.com/dormstern/svcreport/internal/writers"
)

var (
	runKind      string
	runJobName   string
	manifestPath string
	combineNames bool
)

var runCmd = &cobra.Command{
	Use:   "run [input-file]",
	Short: "Generate per-service report files from a results file",
	Long: `Run reads a line-oriented results file ("service value" per line),
groups the values per service, and appends a formatted section to one
report file per service under the output directory.

A single file is formatted according to --kind:

  svcreport run results/timeouts/part-00000 --kind timeouts

A YAML manifest describes a batch of jobs processed in order:

  svcreport run --manifest reports.yml

  # reports.yml
  jobs:
    - name: timeouts-daily
      kind: timeouts
      input: results/timeouts/part-00000
    - name: memcache-daily
      kind: memcache-request
      input: results/memcache/part-00000

Sections append: running twice adds a second copy rather than
overwriting, and jobs of different kinds stack sections in the same
per-service file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runKind, "kind", "k", "", "Report kind: "+strings.Join(report.KindIDs(), ", "))
	runCmd.Flags().StringVar(&runJobName, "job", "", "Job name used in logs and the summary (default: the kind id)")
	runCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest describing a batch of jobs")
	runCmd.Flags().BoolVar(&combineNames, "combine-similar-names", false, "Group hierarchical names (a/b) with their namespaced form (a.b) (env SVCREPORT_COMBINE_SIMILAR_NAMES)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	combine := cfg.CombineSimilarNames
	if cmd.Flags().Changed("combine-similar-names") {
		combine = combineNames
	}

	var jobs []job.Job
	switch {
	case manifestPath != "":
		if len(args) > 0 || runKind != "" {
			return fmt.Errorf("--manifest cannot be combined with an input file or --kind")
		}
		jobs, err = job.LoadManifest(manifestPath)
		if err != nil {
			return err
		}
	case len(args) == 1:
		if runKind == "" {
			return fmt.Errorf("--kind is required when running a single input file (valid: %s)", strings.Join(report.KindIDs(), ", "))
		}
		kind, err := report.ParseKind(runKind)
		if err != nil {
			return err
		}
		name := runJobName
		if name == "" {
			name = string(kind)
		}
		jobs = []job.Job{{Name: name, Kind: kind, Input: args[0]}}
	default:
		return fmt.Errorf("provide an input file or --manifest (see 'svcreport run --help')")
	}

	runID := uuid.New().String()[:8]
	log := clog.FromContext(ctx).With("run", runID)
	ctx = clog.WithLogger(ctx, log)
	log.Infof("processing %d job(s) into %s", len(jobs), cfg.OutputDir)

	registry := writers.NewRegistry()
	runner := &job.Runner{
		Registry:            registry,
		OutputDir:           cfg.OutputDir,
		ZipkinURL:           cfg.ZipkinURL,
		CombineSimilarNames: combine,
	}

	results, runErr := runner.Run(ctx, jobs)
	files := registry.Paths()
	if closeErr := registry.CloseAll(); closeErr != nil {
		runErr = errors.Join(runErr, closeErr)
	}
	if runErr != nil {
		return runErr
	}

	for _, p := range files {
		log.Debugf("wrote %s", p)
	}
	printSummary(cmd.OutOrStdout(), results, len(files))
	return nil
}

// printSummary renders the per-job run summary table.
func printSummary(w io.Writer, results []job.Result, files int) {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
	}
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader([]string{"Job", "Kind", "Services", "Values", "Written"}),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleMarkdown)}),
	)
	for _, res := range results {
		_ = table.Append([]string{
			res.Job,
			string(res.Kind),
			strconv.Itoa(res.Services),
			strconv.Itoa(res.Values),
			humanize.Bytes(uint64(res.Bytes)),
		})
	}
	_ = table.Render()

	total := lo.SumBy(results, func(r job.Result) int { return r.Bytes })
	fmt.Fprintf(w, "\n%d job(s) done, %s written to %d report file(s)\n",
		len(results), humanize.Bytes(uint64(total)), files)
}
