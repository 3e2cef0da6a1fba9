package genrand

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormulaShapeAndRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	problem := Formula(rng, 5, 20)

	require.Len(t, problem, 20)

	seen := make(map[int]bool)
	for _, clause := range problem {
		assert.NotEmpty(t, clause)
		for _, v := range clause {
			assert.NotZero(t, v)
			abs := v
			if abs < 0 {
				abs = -abs
			}
			assert.LessOrEqual(t, abs, 5)
			seen[abs] = true
		}
	}
}

func TestFormulaIsDeterministicForSameSeed(t *testing.T) {
	a := Formula(rand.New(rand.NewSource(42)), 4, 10)
	b := Formula(rand.New(rand.NewSource(42)), 4, 10)
	assert.Equal(t, a, b)
}

func TestFormulaVariablesAreContiguous(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	problem := Formula(rng, 6, 30)

	maxVar := 0
	for _, clause := range problem {
		for _, v := range clause {
			if v < 0 {
				v = -v
			}
			if v > maxVar {
				maxVar = v
			}
		}
	}
	// Every variable in [1, maxVar] should appear somewhere; remapContiguous
	// guarantees no gaps.
	present := make([]bool, maxVar+1)
	for _, clause := range problem {
		for _, v := range clause {
			if v < 0 {
				v = -v
			}
			present[v] = true
		}
	}
	for v := 1; v <= maxVar; v++ {
		assert.True(t, present[v], "variable %d missing from contiguous range", v)
	}
}
