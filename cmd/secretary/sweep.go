package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"secretary-simulation/internal/sweep"
)

func (a *app) newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Estimate mean outcome and P(best) over a range of sample sizes",
		Long: `Runs the given number of trials for every sample size s and reports the
empirical mean outcome and the fraction of trials that selected the best
candidate (rank N-1).

Example:
  secretary sweep -n 100 --start 2 --stop 60 --step 2 --trials 1000`,
		Args: cobra.NoArgs,
		RunE: a.runSweep,
	}
	a.addSweepFlags(cmd)
	return cmd
}

func (a *app) addRangeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&a.opts.start, "start", 0, "first sample size (default 2)")
	f.IntVar(&a.opts.stop, "stop", 0, "sample sizes stop before this value (default 60)")
	f.IntVar(&a.opts.step, "step", 0, "sample size increment (default 2)")
	f.IntSliceVar(&a.opts.strategies, "strategies", nil, "explicit sample sizes, overrides the range")
}

func (a *app) addSweepFlags(cmd *cobra.Command) {
	a.addRangeFlags(cmd)
	f := cmd.Flags()
	f.IntVar(&a.opts.trials, "trials", 0, "trials per sample size (default 1000)")
	f.IntVar(&a.opts.workers, "workers", 0, "sample sizes simulated concurrently, 0 for one per CPU (default 1)")
	f.Float64Var(&a.opts.targetSE, "target-stderr", 0, "stop a sample size early once the relative standard error drops below this")
	f.IntVar(&a.opts.minTrials, "min-trials", 0, "trials always run before early stopping (default 1000)")
}

func (a *app) runSweep(cmd *cobra.Command, _ []string) error {
	params, err := a.cfg.Params()
	if err != nil {
		return err
	}
	runner, err := sweep.NewRunner(params, a.logger)
	if err != nil {
		return err
	}
	runner.OnResult = func(res sweep.Result) {
		a.logger.Info("estimated",
			zap.Int("strategy", res.Strategy),
			zap.Int("trials", res.Trials),
			zap.Float64("mean", res.Mean),
			zap.Float64("success_rate", res.SuccessRate))
	}

	rep, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}
	return a.render(cmd.OutOrStdout(), rep)
}
