// Package solver implements the DPLL search: boolean constraint propagation
// over watched literals, pure-literal elimination, and chronological
// backtracking via context cloning.
package solver

import (
	"fmt"

	"github.com/jnewman/dpllsat/assign"
	"github.com/jnewman/dpllsat/formula"
	"github.com/jnewman/dpllsat/lit"
)

type stateKind uint8

const (
	stateWatching stateKind = iota
	stateUnit
	stateComplete
)

// clauseState is the per-clause state machine: a clause is either
// Watching(a, b) two literals for a future assignment, Unit(l) with a
// single unresolved literal, or Complete(sat), resolved one way or the
// other.
type clauseState struct {
	kind stateKind
	a, b lit.Lit // valid when kind == stateWatching
	unit lit.Lit // valid when kind == stateUnit
	sat  bool    // valid when kind == stateComplete
}

func (s clauseState) String() string {
	switch s.kind {
	case stateWatching:
		return fmt.Sprintf("Watching(%v, %v)", s.a, s.b)
	case stateUnit:
		return fmt.Sprintf("Unit(%v)", s.unit)
	default:
		return fmt.Sprintf("Complete(%v)", s.sat)
	}
}

// Context is the search context owned by a single invocation of
// attemptSolve: the clause database's mutable state, the current
// assignment, the unassigned-variable set, and the pending unit queue. It
// holds a read-only reference to the formula; clones duplicate only the
// mutable fields.
type Context struct {
	formula    *formula.Formula
	assignment *assign.Assignment
	unassigned map[lit.Var]struct{}
	states     []clauseState
	pending    []lit.Lit

	// posCount/negCount track, per variable, how many not-yet-complete
	// clauses contain it positively/negatively. A variable is pure when
	// exactly one of the two counts is nonzero.
	posCount map[lit.Var]int
	negCount map[lit.Var]int
}

// NewContext builds a fresh search context over f.
func NewContext(f *formula.Formula) *Context {
	ctx := &Context{
		formula:    f,
		assignment: assign.New(),
		unassigned: make(map[lit.Var]struct{}),
		posCount:   make(map[lit.Var]int),
		negCount:   make(map[lit.Var]int),
	}

	clauses := f.Clauses()
	ctx.states = make([]clauseState, len(clauses))

	for _, v := range f.Vars() {
		ctx.unassigned[v] = struct{}{}
	}

	for i, c := range clauses {
		lits := c.Literals()
		for _, l := range lits {
			if l.Positive() {
				ctx.posCount[l.Var()]++
			} else {
				ctx.negCount[l.Var()]++
			}
		}

		switch len(lits) {
		case 0:
			ctx.states[i] = clauseState{kind: stateComplete, sat: false}
		case 1:
			ctx.states[i] = clauseState{kind: stateUnit, unit: lits[0]}
			ctx.pending = append(ctx.pending, lits[0])
		default:
			ctx.states[i] = clauseState{kind: stateWatching, a: lits[0], b: lits[1]}
		}
	}

	return ctx
}

// Clone duplicates the mutable per-clause state, the assignment, the
// unassigned set, and the pending queue. The formula reference is copied,
// not deepened.
func (ctx *Context) Clone() *Context {
	states := make([]clauseState, len(ctx.states))
	copy(states, ctx.states)

	unassigned := make(map[lit.Var]struct{}, len(ctx.unassigned))
	for v := range ctx.unassigned {
		unassigned[v] = struct{}{}
	}

	pending := make([]lit.Lit, len(ctx.pending))
	copy(pending, ctx.pending)

	posCount := make(map[lit.Var]int, len(ctx.posCount))
	for v, n := range ctx.posCount {
		posCount[v] = n
	}
	negCount := make(map[lit.Var]int, len(ctx.negCount))
	for v, n := range ctx.negCount {
		negCount[v] = n
	}

	return &Context{
		formula:    ctx.formula,
		assignment: ctx.assignment.Clone(),
		unassigned: unassigned,
		states:     states,
		pending:    pending,
		posCount:   posCount,
		negCount:   negCount,
	}
}

// Assignment returns the context's current (possibly partial) assignment.
func (ctx *Context) Assignment() *assign.Assignment { return ctx.assignment }

// IsSatisfied reports whether every clause is Complete(true).
func (ctx *Context) IsSatisfied() bool {
	for _, s := range ctx.states {
		if s.kind != stateComplete || !s.sat {
			return false
		}
	}
	return true
}

// hasFalsifiedClause reports whether any clause is Complete(false).
func (ctx *Context) hasFalsifiedClause() bool {
	for _, s := range ctx.states {
		if s.kind == stateComplete && !s.sat {
			return true
		}
	}
	return false
}

// completeClause marks clause i as Complete(sat). When sat is true, the
// clause's literals are retired from the purity tally: they no longer
// count toward "appears in a not-yet-complete clause".
func (ctx *Context) completeClause(i int, sat bool) {
	ctx.states[i] = clauseState{kind: stateComplete, sat: sat}
	if !sat {
		return
	}
	for _, l := range ctx.formula.Clauses()[i].Literals() {
		if l.Positive() {
			ctx.posCount[l.Var()]--
		} else {
			ctx.negCount[l.Var()]--
		}
	}
}

// Assign records assignment[var] = value and propagates its consequences
// through every clause's state machine. It returns true if a conflict is
// found. Clauses are visited in formula insertion order; the first
// conflict short-circuits the scan.
func (ctx *Context) Assign(v lit.Var, value bool) (conflict bool) {
	ctx.assignment.Set(v, value)
	delete(ctx.unassigned, v)

	clauses := ctx.formula.Clauses()
	for i := range ctx.states {
		state := &ctx.states[i]

		switch state.kind {
		case stateWatching:
			a, b := state.a, state.b
			if a.Var() != v && b.Var() != v {
				continue
			}

			var assignedLit, otherLit lit.Lit
			if a.Var() == v {
				assignedLit, otherLit = a, b
			} else {
				assignedLit, otherLit = b, a
			}

			if assignedLit.Evaluate(value) {
				ctx.completeClause(i, true)
				continue
			}

			// assignedLit is now false. Scan the clause for a literal that
			// is already true (the clause is satisfied) or unassigned and
			// distinct from otherLit's variable (a new watch).
			replaced := false
			for _, l := range clauses[i].Literals() {
				if val, ok := ctx.assignment.Evaluate(l); ok {
					if val {
						ctx.completeClause(i, true)
						replaced = true
						break
					}
					continue
				}
				if l.Var() != otherLit.Var() {
					state.kind = stateWatching
					state.a, state.b = otherLit, l
					replaced = true
					break
				}
			}
			if replaced {
				continue
			}

			state.kind = stateUnit
			state.unit = otherLit
			ctx.pending = append(ctx.pending, otherLit)

		case stateUnit:
			if state.unit.Var() != v {
				continue
			}
			if state.unit.Evaluate(value) {
				ctx.completeClause(i, true)
			} else {
				ctx.completeClause(i, false)
				return true
			}

		case stateComplete:
			if !state.sat {
				return true
			}
		}
	}

	return false
}

// AssignLit is a shortcut for Assign(l.Var(), l.Positive()).
func (ctx *Context) AssignLit(l lit.Lit) bool { return ctx.Assign(l.Var(), l.Positive()) }

// bcp runs boolean constraint propagation to fixpoint. It returns true if a
// conflict is found. Pending entries are literals that some clause needs
// resolved; an entry is stale (and skipped) if its variable has already
// been assigned by the time it is dequeued.
func (ctx *Context) bcp() (conflict bool) {
	for len(ctx.pending) > 0 {
		l := ctx.pending[0]
		ctx.pending = ctx.pending[1:]

		if ctx.assignment.Contains(l.Var()) {
			continue
		}
		if ctx.Assign(l.Var(), l.Positive()) {
			return true
		}
	}
	return false
}

// pureLiteral returns the lowest-index unassigned variable's pure literal,
// if one exists: a literal whose variable is unassigned and whose
// complement appears in no not-yet-complete clause.
func (ctx *Context) pureLiteral() (lit.Lit, bool) {
	for _, v := range ctx.formula.Vars() {
		if ctx.assignment.Contains(v) {
			continue
		}
		pos, neg := ctx.posCount[v], ctx.negCount[v]
		switch {
		case pos > 0 && neg == 0:
			return v.Positive(), true
		case neg > 0 && pos == 0:
			return v.Negative(), true
		}
	}
	return lit.Lit{}, false
}

// pickBranchVar returns the lowest-index unassigned variable, for
// deterministic, reproducible branching.
func (ctx *Context) pickBranchVar() (lit.Var, bool) {
	var best lit.Var
	found := false
	for v := range ctx.unassigned {
		if !found || v.Index() < best.Index() {
			best = v
			found = true
		}
	}
	return best, found
}
