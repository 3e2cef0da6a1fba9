// Package assign implements the assignment map: a partial function from
// variables to Booleans, with fast lookup, update, and literal evaluation.
package assign

import (
	"sort"

	"github.com/jnewman/dpllsat/lit"
)

// Assignment is a partial mapping from variables to true/false.
type Assignment struct {
	values map[lit.Var]bool
}

// New returns a new, empty Assignment.
func New() *Assignment {
	return &Assignment{values: make(map[lit.Var]bool)}
}

// Clone returns a deep copy of a, suitable for context cloning on branch.
func (a *Assignment) Clone() *Assignment {
	values := make(map[lit.Var]bool, len(a.values))
	for v, b := range a.values {
		values[v] = b
	}
	return &Assignment{values: values}
}

// Contains reports whether v has been assigned.
func (a *Assignment) Contains(v lit.Var) bool {
	_, ok := a.values[v]
	return ok
}

// Get returns the value assigned to v, if any.
func (a *Assignment) Get(v lit.Var) (value bool, ok bool) {
	value, ok = a.values[v]
	return value, ok
}

// Set assigns value to v, overwriting any prior assignment (last-writer
// wins). It reports whether v was already assigned.
func (a *Assignment) Set(v lit.Var, value bool) (wasAssigned bool) {
	_, wasAssigned = a.values[v]
	a.values[v] = value
	return wasAssigned
}

// Unset removes any assignment to v. It exists for trail-style undo; the
// clone-per-branch solver in this module does not call it, but it keeps the
// type usable by a trail-based solver built on top of the same package.
func (a *Assignment) Unset(v lit.Var) {
	delete(a.values, v)
}

// Evaluate returns the polarity of l compared against the current
// assignment of its variable: Some(true) if l is satisfied, Some(false) if
// l is falsified, and ok=false if the variable is unassigned.
func (a *Assignment) Evaluate(l lit.Lit) (value bool, ok bool) {
	assigned, ok := a.values[l.Var()]
	if !ok {
		return false, false
	}
	return l.Evaluate(assigned), true
}

// Len returns the number of assigned variables.
func (a *Assignment) Len() int { return len(a.values) }

// VarValue is a single (Var, bool) pair, used for stable external
// presentation.
type VarValue struct {
	Var   lit.Var
	Value bool
}

// Pairs returns the assignment as a list of (Var, bool) pairs sorted by
// variable index ascending, for stable external display.
func (a *Assignment) Pairs() []VarValue {
	out := make([]VarValue, 0, len(a.values))
	for v, b := range a.values {
		out = append(out, VarValue{Var: v, Value: b})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Var.Index() < out[j].Var.Index() })
	return out
}
