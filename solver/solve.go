package solver

import (
	"github.com/jnewman/dpllsat/assign"
	"github.com/jnewman/dpllsat/formula"
)

// Solve attempts to find a satisfying assignment for f. It returns the
// assignment and true if f is satisfiable, or nil and false if it is not.
//
// The empty formula is treated as unsatisfiable: this engine's contract is
// to produce assignments for nontrivial formulas, and the empty conjunction
// is a degenerate input handled by the caller, not by the solver.
func Solve(f *formula.Formula) (*assign.Assignment, bool) {
	if f.NumClauses() == 0 {
		return nil, false
	}
	return attemptSolve(NewContext(f))
}

// attemptSolve is the recursive DPLL procedure: run BCP to fixpoint,
// interleave pure-literal elimination, and if still unresolved, branch on
// an unassigned variable in both directions.
func attemptSolve(ctx *Context) (*assign.Assignment, bool) {
	for {
		if ctx.bcp() {
			return nil, false
		}
		if ctx.hasFalsifiedClause() {
			// Catches a conflict latent in the formula itself (e.g. an
			// empty clause) that bcp's unit queue never observes because
			// no variable assignment ever triggers it.
			return nil, false
		}

		pure, ok := ctx.pureLiteral()
		if !ok {
			break
		}
		if ctx.AssignLit(pure) {
			return nil, false
		}
	}

	if ctx.IsSatisfied() {
		return ctx.Assignment(), true
	}

	branchVar, ok := ctx.pickBranchVar()
	if !ok {
		// No clause is unsatisfied and no variable remains to branch on:
		// every clause evaluated true or is a don't-care.
		return ctx.Assignment(), true
	}

	for _, value := range [2]bool{true, false} {
		child := ctx.Clone()

		if child.Assign(branchVar, value) {
			continue
		}
		if child.IsSatisfied() {
			return child.Assignment(), true
		}
		if a, ok := attemptSolve(child); ok {
			return a, true
		}
	}

	return nil, false
}
