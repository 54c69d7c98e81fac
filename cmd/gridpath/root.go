package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// app carries the state shared by every command of one invocation.
type app struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	cfg         Config
	log         *slog.Logger
	stopProfile func() error

	// flags
	configPath string
	logLevel   string
	profile    string
	profileDir string
	legend     bool
	cellWidth  int
	withinGrid bool
}

// newRootCmd builds the command tree writing to the given streams.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Render text grids and find paths through them",
		Long: `gridpath reads a character grid from a file (or - for stdin),
locates the start, end and wall markers, and searches for a route
with breadth-first, depth-first or weighted search.

Examples:
  gridpath render maze.txt --legend
  gridpath path maze.txt --mode dijkstra
  cat maze.txt | gridpath compare -`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.profile, "profile", "", "write a profile: cpu, mem or wall")
	pf.StringVar(&a.profileDir, "profile-dir", ".", "directory for profile output")
	pf.BoolVar(&a.legend, "legend", false, "print row and column labels (default when stdout is a terminal)")
	pf.IntVar(&a.cellWidth, "cell-width", 0, "display width of each cell")
	pf.BoolVar(&a.withinGrid, "within-grid", false, "bound the search by the grid instead of the markers")

	for _, cmd := range []*cobra.Command{a.renderCmd(), a.pathCmd(), a.compareCmd()} {
		root.AddCommand(a.withTeardown(cmd))
	}
	return root
}

// withTeardown makes cmd stop profiling whether RunE succeeds or fails.
// Cobra skips post-run hooks after a RunE error.
func (a *app) withTeardown(cmd *cobra.Command) *cobra.Command {
	run := cmd.RunE
	cmd.RunE = func(c *cobra.Command, args []string) (err error) {
		defer func() {
			if terr := a.teardown(c, args); err == nil {
				err = terr
			}
		}()
		return run(c, args)
	}
	return cmd
}

// setup loads the config, applies flag overrides, builds the logger and
// starts profiling.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := DefaultConfig()
	if a.configPath != "" {
		var err error
		if cfg, err = LoadConfig(a.configPath); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("cell-width") {
		cfg.Render.CellWidth = a.cellWidth
	}
	if flags.Changed("within-grid") {
		cfg.WithinGrid = a.withinGrid
	}
	if flags.Changed("legend") {
		cfg.Render.Legend = &a.legend
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	lvl, _ := parseLevel(cfg.LogLevel)
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: lvl}))

	stop, err := startProfile(a.profile, a.profileDir)
	if err != nil {
		return err
	}
	a.stopProfile = stop
	if a.profile != "" {
		a.log.Info("profiling", "kind", a.profile, "dir", a.profileDir)
	}
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.stopProfile == nil {
		return nil
	}
	stop := a.stopProfile
	a.stopProfile = nil
	if err := stop(); err != nil {
		return fmt.Errorf("stop profile: %w", err)
	}
	return nil
}

// showLegend resolves the legend setting: explicit config or flag first,
// otherwise on for terminals.
func (a *app) showLegend() bool {
	if a.cfg.Render.Legend != nil {
		return *a.cfg.Render.Legend
	}
	f, ok := a.stdout.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
