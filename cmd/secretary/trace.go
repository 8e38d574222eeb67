package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"secretary-simulation/internal/report"
	"secretary-simulation/internal/rng"
	"secretary-simulation/internal/secretary"
)

func (a *app) newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Run a single trial and show how the candidate was chosen",
		Long: `Draws one random arrival order and walks the stopping rule over it.
Without -s the optimal sample size for the population is used.

Example:
  secretary trace -n 20 -s 7 --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := a.cfg.Population
			s := a.opts.threshold
			if !cmd.Flags().Changed("threshold") {
				s, _ = secretary.OptimalThreshold(n)
			}

			seed := rng.Seed(a.cfg.Seed)
			tr, err := secretary.Trace(s, n, rng.NewFastRNG(seed))
			if err != nil {
				return err
			}
			a.logger.Debug("traced trial",
				zap.Int64("seed", seed),
				zap.Int("threshold", s),
				zap.Int("outcome", tr.Outcome),
				zap.Bool("fallback", tr.Fallback))

			w := cmd.OutOrStdout()
			if a.cfg.Output.Format == "json" {
				return report.JSON(w, tr)
			}
			return report.Trace(w, tr, a.labels())
		},
	}
	cmd.Flags().IntVarP(&a.opts.threshold, "threshold", "s", 0, "sample size (default: optimal for the population)")
	return cmd
}
