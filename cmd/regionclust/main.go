// Package main implements the regionclust command: cluster the regions of a
// functional-connectivity matrix and write a report and plots.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TrevorS/regionclust/internal/config"
	"github.com/TrevorS/regionclust/internal/logging"
	"github.com/TrevorS/regionclust/internal/pipeline"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// flags holds command-line overrides; only flags the user set are applied.
type flags struct {
	configPath string
	sessions   []string
	names      string
	centers    string
	target     int
	linkage    string
	workers    int
	outDir     string
	format     string
	plots      bool
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "regionclust",
		Short: "Cluster brain regions by functional connectivity",
		Long: `regionclust groups the regions of a functional-connectivity matrix into a
fixed number of clusters by repeatedly merging the two most correlated groups.

Session matrices are averaged before clustering. Results are written to the
output directory, which is cleared first.

Examples:
  # Two sessions, names and centers, eight clusters
  regionclust --session s1.txt --session s2.txt --names names.txt --centers centers.txt

  # Settings from a file, overriding the target
  regionclust --config regionclust.yaml --target 6`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &f)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	fs.StringArrayVarP(&f.sessions, "session", "s", nil, "connectivity matrix file (repeatable; averaged)")
	fs.StringVar(&f.names, "names", "", "region names file, one per line")
	fs.StringVar(&f.centers, "centers", "", "region centers file, one \"x y z\" per line")
	fs.IntVarP(&f.target, "target", "k", 0, "number of clusters (default 8)")
	fs.StringVar(&f.linkage, "linkage", "", "merge strategy: average or single (default average)")
	fs.IntVar(&f.workers, "workers", 0, "goroutines for pair scoring (0 = all CPUs)")
	fs.StringVarP(&f.outDir, "out", "o", "", "output directory, cleared before writing (default results)")
	fs.StringVar(&f.format, "format", "", "report format: text or toml (default text)")
	fs.BoolVar(&f.plots, "plots", true, "write cluster plots")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (default info)")
	fs.StringVar(&f.logFormat, "log-format", "", "console or json (default console)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return cmd
}

// applyFlags copies every flag the user set onto cfg.
func applyFlags(cmd *cobra.Command, f *flags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("session") {
		cfg.Input.Sessions = f.sessions
	}
	if changed("names") {
		cfg.Input.Names = f.names
	}
	if changed("centers") {
		cfg.Input.Centers = f.centers
	}
	if changed("target") {
		cfg.Clustering.Target = f.target
	}
	if changed("linkage") {
		cfg.Clustering.Linkage = f.linkage
	}
	if changed("workers") {
		cfg.Clustering.Workers = f.workers
	}
	if changed("out") {
		cfg.Output.Dir = f.outDir
	}
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("plots") {
		cfg.Output.Plots = f.plots
	}
	if changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if changed("log-format") {
		cfg.Logging.Format = f.logFormat
	}
}

func run(cmd *cobra.Command, f *flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, f, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	out, err := pipeline.Run(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d clusters written to %s\n", len(out.Summary.Clusters), out.Report)
	return nil
}
