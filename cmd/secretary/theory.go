package main

import (
	"github.com/spf13/cobra"

	"secretary-simulation/internal/report"
)

func (a *app) newTheoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theory",
		Short: "Print the closed-form success probability for each sample size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strategies, err := a.cfg.Thresholds()
			if err != nil {
				return err
			}
			return report.Theory(cmd.OutOrStdout(), a.cfg.Population, strategies, a.labels())
		},
	}
	a.addRangeFlags(cmd)
	return cmd
}
