package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jnewman/dpllsat/dimacs"
	"github.com/jnewman/dpllsat/solver"
)

func newRootCmd(log *logrus.Logger) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "dpllsat [input.cnf]",
		Short: "A DPLL-based SAT solver for DIMACS CNF problems",
		Long: `dpllsat reads a single problem specification in the DIMACS CNF format.

It writes the output in the conventional way: either the first line is
UNSAT, or the first line is SAT and the second line gives the assignment in
the same format as an input clause.

If no input file is given, dpllsat reads from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			return runSolve(cmd, args, log)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log solver progress")
	return cmd
}

func runSolve(cmd *cobra.Command, args []string, log *logrus.Logger) error {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer f.Close()
		r = f
	}

	f, err := dimacs.ParseFormula(r)
	if err != nil {
		return fmt.Errorf("reading DIMACS input: %w", err)
	}

	log.WithFields(logrus.Fields{
		"clauses":   f.NumClauses(),
		"variables": len(f.Vars()),
	}).Debug("parsed formula")

	a, ok := solver.Solve(f)
	if !ok {
		log.Debug("solver reported unsatisfiable")
		fmt.Fprintln(cmd.OutOrStdout(), "UNSAT")
		return nil
	}

	log.WithField("assigned", a.Len()).Debug("solver reported satisfiable")
	fmt.Fprintln(cmd.OutOrStdout(), "SAT")
	for i, p := range a.Pairs() {
		if i > 0 {
			fmt.Fprint(cmd.OutOrStdout(), " ")
		}
		n := p.Var.ToDimacs()
		if !p.Value {
			n = -n
		}
		fmt.Fprint(cmd.OutOrStdout(), n)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
