package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jnewman/dpllsat/dimacs"
	"github.com/jnewman/dpllsat/xcheck"
)

func newXcheckCmd(log *logrus.Logger) *cobra.Command {
	cfg := xcheck.Config{
		NumVars:    8,
		NumClauses: 20,
		Trials:     1000,
		Seed:       1,
		Workers:    4,
	}

	cmd := &cobra.Command{
		Use:   "xcheck",
		Short: "Differentially test the solver against github.com/go-air/gini",
		RunE: func(cmd *cobra.Command, args []string) error {
			disagreement, checked, err := xcheck.Run(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			if disagreement == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%d trials checked, no disagreement\n", checked)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "disagreement found after %d trials (ours=%t, gini=%t):\n",
				checked, disagreement.OursSat, disagreement.TheirSat)
			return dimacs.WriteDIMACS(cmd.OutOrStdout(), disagreement.Problem)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.NumVars, "vars", cfg.NumVars, "number of variables per generated formula")
	flags.IntVar(&cfg.NumClauses, "clauses", cfg.NumClauses, "number of clauses per generated formula")
	flags.IntVar(&cfg.Trials, "trials", cfg.Trials, "number of formulas to check")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "base random seed")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of concurrent workers")
	return cmd
}
