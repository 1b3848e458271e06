package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dormstern/svcreport/internal/report"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the report kinds and their output shapes",
	RunE:  runKinds,
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}

func runKinds(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, k := range report.AllKinds() {
		fmt.Fprintf(out, "%s\n", k)
		fmt.Fprintf(out, "    header: %s\n", report.HeaderPattern(k))
		fmt.Fprintf(out, "    values: %s\n\n", report.ValueBehavior(k))
	}
	return nil
}
