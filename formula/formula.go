// Package formula implements the CNF formula model: clauses as
// duplicate-free, non-tautological disjunctions of literals, and formulas
// as ordered sequences of clauses.
package formula

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jnewman/dpllsat/lit"
)

// ErrTautology is returned when a clause would contain both a literal and
// its complement.
var ErrTautology = errors.New("formula: clause contains a literal and its complement")

// Clause is a finite ordered sequence of literals interpreted as a
// disjunction. Once built, a Clause's length is fixed: the solver mutates
// per-clause state, never the clause itself.
type Clause struct {
	lits []lit.Lit
}

// NewClause builds a clause from lits, rejecting tautologies and silently
// dropping duplicate literals, mirroring the simplification a clause
// normally goes through before it ever reaches the solver.
func NewClause(lits ...lit.Lit) (Clause, error) {
	seen := make(map[lit.Lit]struct{}, len(lits))
	out := make([]lit.Lit, 0, len(lits))
	for _, l := range lits {
		if _, ok := seen[l.Complement()]; ok {
			return Clause{}, fmt.Errorf("%w: %v and %v", ErrTautology, l, l.Complement())
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return Clause{lits: out}, nil
}

// ClauseFromDimacs builds a Clause from a slice of signed DIMACS integers.
func ClauseFromDimacs(nums []int) (Clause, error) {
	lits := make([]lit.Lit, len(nums))
	for i, n := range nums {
		l, err := lit.LitFromDimacs(n)
		if err != nil {
			return Clause{}, fmt.Errorf("formula: literal %d: %w", n, err)
		}
		lits[i] = l
	}
	return NewClause(lits...)
}

// Literals returns a copy of the literals in c, in construction order.
func (c Clause) Literals() []lit.Lit {
	out := make([]lit.Lit, len(c.lits))
	copy(out, c.lits)
	return out
}

// Len returns the number of literals in c.
func (c Clause) Len() int { return len(c.lits) }

// IsEmpty reports whether c is the empty clause (denotes false).
func (c Clause) IsEmpty() bool { return len(c.lits) == 0 }

// Contains reports whether c contains l.
func (c Clause) Contains(l lit.Lit) bool {
	for _, cl := range c.lits {
		if cl == l {
			return true
		}
	}
	return false
}

// String renders c as a space-separated list of signed DIMACS integers.
func (c Clause) String() string {
	var b strings.Builder
	for i, l := range c.lits {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", l.ToDimacs())
	}
	return b.String()
}

// Formula is a finite ordered sequence of clauses interpreted as a
// conjunction. The empty formula denotes true.
type Formula struct {
	clauses []Clause
}

// New returns a new, empty Formula.
func New() *Formula { return &Formula{} }

// AddClause appends c to f. No deduplication of clauses is performed.
func (f *Formula) AddClause(c Clause) { f.clauses = append(f.clauses, c) }

// Clauses returns the clauses of f in insertion order. The returned slice
// must not be mutated by callers outside this package.
func (f *Formula) Clauses() []Clause { return f.clauses }

// NumClauses returns the number of clauses in f.
func (f *Formula) NumClauses() int { return len(f.clauses) }

// Vars returns the set of distinct variables appearing in any clause of f,
// sorted by index ascending.
func (f *Formula) Vars() []lit.Var {
	seen := make(map[lit.Var]struct{})
	for _, c := range f.clauses {
		for _, l := range c.lits {
			seen[l.Var()] = struct{}{}
		}
	}
	out := make([]lit.Var, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index() < out[j].Index() })
	return out
}
