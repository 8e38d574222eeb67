package main

import (
	"github.com/spf13/cobra"

	"secretary-simulation/internal/report"
	"secretary-simulation/internal/sweep"
)

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show every outcome of 100 trials for sample sizes 5 to 40",
		Long: `Runs 100 trials over 100 candidates for s = 5, 10, ..., 40 and draws the
outcome sequence of each as a sparkline, labelled "s / mean / successes".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := sweep.Demo(cmd.Context(), a.cfg.Seed, a.logger)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.cfg.Output.Format == "json" {
				return report.JSON(w, rep)
			}
			if err := report.Sparklines(w, rep, a.labels()); err != nil {
				return err
			}
			return report.Table(w, rep, a.labels())
		},
	}
}
