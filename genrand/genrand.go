// Package genrand generates random CNF formulas for differential testing:
// it picks a target assignment first, then biases each generated clause
// toward being satisfied by it.
package genrand

import "math/rand"

// Formula generates numClauses random clauses over numVars variables,
// returned as DIMACS-style signed integer slices. Each clause has a
// randomly chosen width in [1, numVars] and is biased so that a single,
// randomly chosen target assignment satisfies it; this produces formulas
// that are very likely satisfiable, which is what a differential check
// against a reference solver wants most of the time (an UNSAT generator
// would need every clause to conflict with every possible assignment,
// which this function does not attempt).
func Formula(rng *rand.Rand, numVars, numClauses int) [][]int {
	assignment := make([]bool, numVars)
	for v := range assignment {
		assignment[v] = rng.Intn(2) == 1
	}

	vars := make([]int, numVars)
	for v := range vars {
		vars[v] = v
	}

	problem := make([][]int, numClauses)
	for i := range problem {
		rng.Shuffle(len(vars), func(a, b int) { vars[a], vars[b] = vars[b], vars[a] })

		width := rng.Intn(numVars) + 1
		clause := make([]int, width)
		fixed := rng.Intn(width) // the literal guaranteed to match assignment

		for j := 0; j < width; j++ {
			v := vars[j] + 1
			if j == fixed {
				if !assignment[v-1] {
					v = -v
				}
			} else if rng.Intn(2) == 1 {
				v = -v
			}
			clause[j] = v
		}
		problem[i] = clause
	}

	return remapContiguous(problem)
}

// remapContiguous renumbers the variables appearing in problem to a
// contiguous range [1, n], where n is the number of variables actually
// used, preserving polarity and first-seen order.
func remapContiguous(problem [][]int) [][]int {
	remap := make(map[int]int)
	out := make([][]int, len(problem))
	for i, clause := range problem {
		newClause := make([]int, len(clause))
		for j, v := range clause {
			neg := v < 0
			if neg {
				v = -v
			}
			mapped, ok := remap[v]
			if !ok {
				mapped = len(remap) + 1
				remap[v] = mapped
			}
			if neg {
				mapped = -mapped
			}
			newClause[j] = mapped
		}
		out[i] = newClause
	}
	return out
}
