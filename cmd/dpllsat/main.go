// Command dpllsat is a thin driver around the dpllsat solver: it reads a
// DIMACS CNF problem, invokes the solver, and prints the result in the
// conventional SAT/UNSAT form. An "xcheck" subcommand differentially tests
// the solver against github.com/go-air/gini.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	log := logrus.New()

	root := newRootCmd(log)
	root.AddCommand(newXcheckCmd(log))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
