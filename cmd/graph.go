package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"

	"github.com/dormstern/svcreport/internal/config"
	"github.com/dormstern/svcreport/internal/reader"
	"github.com/dormstern/svcreport/internal/tui"
	"github.com/dormstern/svcreport/internal/zipkin"
)

var (
	graphInput      string
	graphFromZipkin bool
	printURL        bool
)

var graphCmd = &cobra.Command{
	Use:   "graph [service]",
	Short: "Open a service's dependency graph in the Zipkin UI",
	Long: `Graph opens the dependency-graph page for a service on the configured
Zipkin UI in the local browser.

Without a service argument it lists candidate services and lets you
pick one interactively. Candidates come from the report files already
under the output directory, from a results file (--input), or from the
Zipkin API itself (--from-zipkin).

  svcreport graph checkout
  svcreport graph --input results/timeouts/part-00000
  svcreport graph --from-zipkin
  svcreport graph checkout --print-url`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().StringVar(&graphInput, "input", "", "Results file to list candidate services from")
	graphCmd.Flags().BoolVar(&graphFromZipkin, "from-zipkin", false, "List candidate services from the Zipkin API")
	graphCmd.Flags().BoolVar(&printURL, "print-url", false, "Print the graph URL instead of opening a browser")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var service string
	if len(args) == 1 {
		service = args[0]
	} else {
		services, err := candidateServices(cfg)
		if err != nil {
			return err
		}
		if len(services) == 0 {
			return fmt.Errorf("no services found; run a report first or pass a service name")
		}
		if !stdoutIsTerminal() {
			return fmt.Errorf("picking a service needs a terminal; pass the service name instead")
		}
		picked, ok := tui.Run(services)
		if !ok {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return nil
		}
		service = picked
	}

	graphURL := zipkin.DependencyURL(cfg.ZipkinURL, service)
	if printURL || !stdoutIsTerminal() {
		fmt.Fprintln(cmd.OutOrStdout(), graphURL)
		return nil
	}

	clog.FromContext(cmd.Context()).Infof("opening %s", graphURL)
	return openBrowser(graphURL)
}

// candidateServices gathers service names for the picker, preferring an
// explicit source over the output directory listing.
func candidateServices(cfg config.Config) ([]string, error) {
	switch {
	case graphInput != "":
		set, err := reader.ServiceNames(graphInput)
		if err != nil {
			return nil, err
		}
		return set.Names(), nil
	case graphFromZipkin:
		c := &zipkin.Client{BaseURL: cfg.ZipkinURL}
		return c.Services()
	default:
		return reportedServices(cfg.OutputDir)
	}
}

// reportedServices lists the services that already have a report file under
// dir. Nested paths map back to hierarchical service names.
func reportedServices(dir string) ([]string, error) {
	var services []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		services = append(services, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	sort.Strings(services)
	return services, nil
}

func stdoutIsTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// openBrowser hands the URL to the platform browser. The browser outlives
// the process; we start it and do not wait.
func openBrowser(url string) error {
	var name string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		name = "open"
		args = []string{url}
	case "windows":
		name = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", url}
	default:
		name = "xdg-open"
		args = []string{url}
	}
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("no browser opener found (try --print-url): %w", err)
	}
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	return nil
}
