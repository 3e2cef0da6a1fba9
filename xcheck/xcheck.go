// Package xcheck differentially tests this module's DPLL solver against
// github.com/go-air/gini, an independently implemented CDCL solver, as a
// cross-check that the two engines agree on satisfiability.
package xcheck

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"

	"github.com/jnewman/dpllsat/formula"
	"github.com/jnewman/dpllsat/genrand"
	"github.com/jnewman/dpllsat/solver"
)

// Verdict is the outcome of cross-checking a single generated formula.
type Verdict struct {
	Trial    int
	Problem  [][]int
	OursSat  bool
	TheirSat bool
}

// Agrees reports whether the two solvers reached the same satisfiability
// verdict.
func (v Verdict) Agrees() bool { return v.OursSat == v.TheirSat }

// Config controls a differential run.
type Config struct {
	NumVars    int
	NumClauses int
	Trials     int
	Seed       int64
	Workers    int
}

// Run fans Config.Trials random formulas out across Config.Workers
// goroutines, solving each with both this module's DPLL solver and gini,
// and returns the first disagreement found (if any). It stops early and
// cancels outstanding work the moment a disagreement is observed.
func Run(ctx context.Context, cfg Config, log *logrus.Logger) (*Verdict, int, error) {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	jobs := make(chan int)
	results := make(chan Verdict, cfg.Workers)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		workerID := w
		go func() {
			defer wg.Done()
			worker(runCtx, workerID, cfg.Seed, cfg.NumVars, cfg.NumClauses, jobs, results, log)
		}()
	}

	go func() {
		defer close(jobs)
		for trial := 0; trial < cfg.Trials; trial++ {
			select {
			case jobs <- trial:
			case <-runCtx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	checked := 0
	var disagreement *Verdict
	for v := range results {
		checked++
		if !v.Agrees() {
			vCopy := v
			disagreement = &vCopy
			cancel()
			break
		}
	}
	// Drain any in-flight results so worker goroutines can exit after cancel.
	for range results {
	}

	if disagreement != nil {
		return disagreement, checked, nil
	}
	return nil, checked, nil
}

func worker(ctx context.Context, id int, seed int64, numVars, numClauses int, jobs <-chan int, results chan<- Verdict, log *logrus.Logger) {
	rng := rand.New(rand.NewSource(seed + int64(id)))
	entry := log.WithField("worker", id)

	for trial := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		problem := genrand.Formula(rng, numVars, numClauses)
		oursSat := solveOurs(problem)
		theirsSat, err := solveGini(problem)
		if err != nil {
			entry.WithError(err).Warn("gini failed to solve trial")
			continue
		}

		v := Verdict{Trial: trial, Problem: problem, OursSat: oursSat, TheirSat: theirsSat}
		entry.WithFields(logrus.Fields{
			"trial": trial,
			"ours":  oursSat,
			"gini":  theirsSat,
		}).Debug("trial solved")

		select {
		case results <- v:
		case <-ctx.Done():
			return
		}
	}
}

func solveOurs(problem [][]int) bool {
	f := formula.New()
	for _, nums := range problem {
		c, err := formula.ClauseFromDimacs(nums)
		if err != nil {
			panic(fmt.Sprintf("xcheck: generator produced an invalid clause: %s", err))
		}
		f.AddClause(c)
	}
	_, ok := solver.Solve(f)
	return ok
}

// giniSat is gini's Solve() return value for "satisfiable", per its DIMACS
// output convention (see gini/dimacs.SolveVis.Solution: 1 == SATISFIABLE).
const giniSat = 1

func solveGini(problem [][]int) (sat bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("xcheck: gini panicked: %v", r)
		}
	}()

	g := gini.New()
	for _, clause := range problem {
		for _, n := range clause {
			g.Add(z.Dimacs2Lit(n))
		}
		g.Add(0)
	}
	return g.Solve() == giniSat, nil
}
