package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnewman/dpllsat/formula"
	"github.com/jnewman/dpllsat/lit"
)

func buildFormula(t *testing.T, clauses [][]int) *formula.Formula {
	t.Helper()
	f := formula.New()
	for _, nums := range clauses {
		c, err := formula.ClauseFromDimacs(nums)
		require.NoError(t, err)
		f.AddClause(c)
	}
	return f
}

// TestScenarios covers a handful of small, hand-verified problems (S6, the
// empty formula, has its own test below).
func TestScenarios(t *testing.T) {
	for _, tt := range []struct {
		name    string
		clauses [][]int
		wantSat bool
	}{
		{"S1 unit clause", [][]int{{1}}, true},
		{"S2 direct contradiction", [][]int{{1}, {-1}}, false},
		{"S3 all four assignments refuted", [][]int{
			{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
		}, false},
		{"S4 pigeonhole (2 pigeons, 2 holes)", [][]int{
			{1, 2}, {3, 4}, {-1, -2}, {-3, -4}, {-1, -3}, {-2, -4},
		}, true},
		{"S5 three clauses", [][]int{
			{1, -2, 3}, {-1, 2, -3}, {2, 3},
		}, true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f := buildFormula(t, tt.clauses)
			a, ok := Solve(f)
			require.Equal(t, tt.wantSat, ok)
			if ok {
				assertSatisfies(t, tt.clauses, a)
			}
		})
	}
}

// TestEmptyFormulaIsUnsat documents a deliberate choice: solve on the empty
// formula reports unsatisfiable rather than the trivially-true alternative.
func TestEmptyFormulaIsUnsat(t *testing.T) {
	f := formula.New()
	a, ok := Solve(f)
	assert.False(t, ok)
	assert.Nil(t, a)
}

func assertSatisfies(t *testing.T, clauses [][]int, a interface {
	Evaluate(lit.Lit) (bool, bool)
}) {
	t.Helper()
	for _, clause := range clauses {
		satisfied := false
		for _, n := range clause {
			l := lit.MustFromDIMACS(n)
			// An unassigned (don't-care) variable may take either value, so
			// only a literal that is true under the assignment counts.
			if val, ok := a.Evaluate(l); ok && val {
				satisfied = true
				break
			}
		}
		if !satisfied {
			t.Fatalf("clause %v not satisfied by assignment", clause)
		}
	}
}

// TestRandomized solves a batch of randomly generated formulas and checks
// internal soundness: whenever Solve reports SAT, the returned assignment
// truly satisfies every clause of the generated formula.
func TestRandomized(t *testing.T) {
	for _, tt := range []struct {
		numVars, numClauses, trials int
	}{
		{2, 2, 20},
		{3, 10, 100},
		{5, 10, 200},
	} {
		rng := rand.New(rand.NewSource(1))
		for trial := 0; trial < tt.trials; trial++ {
			clauses := randomClauses(rng, tt.numVars, tt.numClauses)
			f := buildFormula(t, clauses)
			a, ok := Solve(f)
			if !ok {
				continue
			}
			assertSatisfies(t, clauses, a)
		}
	}
}

func randomClauses(rng *rand.Rand, numVars, numClauses int) [][]int {
	clauses := make([][]int, numClauses)
	for i := range clauses {
		width := rng.Intn(numVars) + 1
		seen := make(map[int]bool)
		var clause []int
		for len(clause) < width {
			v := rng.Intn(numVars) + 1
			if rng.Intn(2) == 1 {
				v = -v
			}
			if seen[v] || seen[-v] {
				continue
			}
			seen[v] = true
			clause = append(clause, v)
		}
		clauses[i] = clause
	}
	return clauses
}

// TestWatchedLiteralInvariant checks that in any Watching state at rest,
// neither watched literal evaluates to false, and the two watched literals
// have distinct variables.
func TestWatchedLiteralInvariant(t *testing.T) {
	f := buildFormula(t, [][]int{
		{1, 2, 3, 4}, {-1, 2}, {-2, -3, 4}, {1, -4},
	})
	ctx := NewContext(f)
	require.False(t, ctx.bcp())

	checkInvariant := func() {
		for i, s := range ctx.states {
			if s.kind != stateWatching {
				continue
			}
			assert.NotEqual(t, s.a.Var(), s.b.Var(), "clause %d watches the same variable twice", i)
			for _, l := range [2]lit.Lit{s.a, s.b} {
				if val, ok := ctx.assignment.Evaluate(l); ok {
					assert.True(t, val, "clause %d watches a falsified literal %v", i, l)
				}
			}
		}
	}
	checkInvariant()

	for v := range ctx.unassigned {
		conflict := ctx.Assign(v, true)
		require.False(t, conflict)
		checkInvariant()
		break
	}
}

// TestBCPIdempotent checks that running BCP twice in succession with no
// intervening assignment makes no further change.
func TestBCPIdempotent(t *testing.T) {
	f := buildFormula(t, [][]int{{1}, {-1, 2}, {-2, 3, 4}})
	ctx := NewContext(f)
	require.False(t, ctx.bcp())

	before := ctx.String()
	require.False(t, ctx.bcp())
	assert.Equal(t, before, ctx.String())
}

func TestPureLiteralElimination(t *testing.T) {
	// x2 only ever appears positively: pure-literal elimination should be
	// able to satisfy every clause containing it without branching.
	f := buildFormula(t, [][]int{{1, 2}, {-1, 2}})
	ctx := NewContext(f)
	require.False(t, ctx.bcp())

	l, ok := ctx.pureLiteral()
	require.True(t, ok)
	assert.Equal(t, 2, l.ToDimacs())

	require.False(t, ctx.AssignLit(l))
	assert.True(t, ctx.IsSatisfied())
}

func TestConflictDuringConstruction(t *testing.T) {
	f := formula.New()
	c, err := formula.NewClause()
	require.NoError(t, err)
	f.AddClause(c) // the empty clause denotes false

	_, ok := Solve(f)
	assert.False(t, ok)
}
