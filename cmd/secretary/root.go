package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"secretary-simulation/internal/config"
	"secretary-simulation/internal/logging"
	"secretary-simulation/internal/report"
	"secretary-simulation/internal/sweep"
)

// options holds raw flag values; only flags set on the command line
// override the config file.
type options struct {
	configPath string
	verbose    bool

	population int
	seed       int64
	lang       string
	format     string

	start      int
	stop       int
	step       int
	strategies []int
	trials     int
	workers    int
	targetSE   float64
	minTrials  int

	threshold int
}

type app struct {
	opts   options
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "secretary",
		Short: "Monte Carlo estimate of the secretary problem",
		Long: `Estimates, by simulation, how well the "observe s, then take the first
better one" rule does on N randomly ordered candidates.

For every sample size s the sweep reports the mean rank selected and the
fraction of trials that picked the best candidate, next to the asymptotic
curve s/N·ln(N/s).

Run without a subcommand to perform the default sweep.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		Args: cobra.NoArgs,
		RunE: a.runSweep,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.opts.configPath, "config", "", "path to a YAML config file")
	pf.BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable debug logging")
	pf.IntVarP(&a.opts.population, "population", "n", 0, "number of candidates (default 100)")
	pf.Int64Var(&a.opts.seed, "seed", 0, "base random seed, 0 picks one from the clock")
	pf.StringVar(&a.opts.lang, "lang", "", "label language: en or zh")
	pf.StringVar(&a.opts.format, "format", "", "output format: chart, table or json")

	a.addSweepFlags(root)
	root.AddCommand(
		a.newSweepCmd(),
		a.newDemoCmd(),
		a.newTraceCmd(),
		a.newTheoryCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return err
	}
	a.applyOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, a.opts.verbose)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("population") {
		cfg.Population = a.opts.population
	}
	if changed("seed") {
		cfg.Seed = a.opts.seed
	}
	if changed("lang") {
		cfg.Output.Lang = a.opts.lang
	}
	if changed("format") {
		cfg.Output.Format = a.opts.format
	}
	if changed("start") {
		cfg.Sweep.Start = a.opts.start
	}
	if changed("stop") {
		cfg.Sweep.Stop = a.opts.stop
	}
	if changed("step") {
		cfg.Sweep.Step = a.opts.step
	}
	if changed("strategies") {
		cfg.Strategies = a.opts.strategies
	}
	if changed("trials") {
		cfg.Trials = a.opts.trials
	}
	if changed("workers") {
		cfg.Workers = a.opts.workers
	}
	if changed("target-stderr") {
		cfg.EarlyStop.TargetRelStdErr = a.opts.targetSE
	}
	if changed("min-trials") {
		cfg.EarlyStop.MinTrials = a.opts.minTrials
	}
}

func (a *app) labels() report.Labels {
	return report.LabelsFor(a.cfg.Output.Lang)
}

func (a *app) render(w io.Writer, rep *sweep.Report) error {
	switch a.cfg.Output.Format {
	case "json":
		return report.JSON(w, rep)
	case "table":
		return report.Table(w, rep, a.labels())
	default:
		return report.Chart(w, rep, a.labels())
	}
}
