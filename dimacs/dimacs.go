// Package dimacs reads and writes the DIMACS CNF text format used at the
// solver's I/O boundary.
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jnewman/dpllsat/formula"
)

// ParseDIMACS parses text in the DIMACS CNF format and returns the clauses
// as slices of signed integers, ready to hand to formula.ClauseFromDimacs.
//
// For convenience, a few non-standard variations are accepted: comments
// (lines beginning with 'c') may appear anywhere, not just in the preamble,
// and the problem line may be missing.
func ParseDIMACS(r io.Reader) ([][]int, error) {
	var problem struct {
		vars    int
		clauses int
	}
	var clauses [][]int
	var clause []int

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			// Some CNF formats attach extra data after a lone '%' line.
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 {
				return nil, errors.New("dimacs: problem line appears after clauses")
			}
			if problem.vars > 0 {
				return nil, errors.New("dimacs: multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return nil, fmt.Errorf("dimacs: malformed problem line %q", line)
			}
			if fields[0] != "p" {
				return nil, fmt.Errorf("dimacs: problem line starts with unexpected signifier %q", fields[0])
			}
			if fields[1] != "cnf" {
				return nil, fmt.Errorf("dimacs: only cnf supported; got %q", fields[1])
			}
			var err error
			problem.vars, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("dimacs: malformed #vars in problem line: %w", err)
			}
			problem.clauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("dimacs: malformed #clauses in problem line: %w", err)
			}
			if problem.vars < 0 {
				return nil, fmt.Errorf("dimacs: invalid #vars %d", problem.vars)
			}
			if problem.clauses < 0 {
				return nil, fmt.Errorf("dimacs: invalid #clauses %d", problem.clauses)
			}
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("dimacs: invalid literal %q: %w", field, err)
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(clause) > 0 {
		clauses = append(clauses, clause)
	}

	if problem.vars > 0 {
		vars := make(map[int]struct{})
		for _, clause := range clauses {
			for _, v := range clause {
				if v < 0 {
					v = -v
				}
				if v > problem.vars {
					return nil, fmt.Errorf("dimacs: formula contains var %d, but problem line asserts %d vars", v, problem.vars)
				}
				vars[v] = struct{}{}
			}
		}
		if len(vars) > problem.vars {
			return nil, fmt.Errorf("dimacs: problem line specifies %d vars, but there are %d", problem.vars, len(vars))
		}
		if len(clauses) != problem.clauses {
			return nil, fmt.Errorf("dimacs: problem line specifies %d clauses, but there are %d", problem.clauses, len(clauses))
		}
	}
	return clauses, nil
}

// ParseFormula is a convenience wrapper around ParseDIMACS that builds a
// formula.Formula directly.
func ParseFormula(r io.Reader) (*formula.Formula, error) {
	clauses, err := ParseDIMACS(r)
	if err != nil {
		return nil, err
	}
	f := formula.New()
	for _, nums := range clauses {
		c, err := formula.ClauseFromDimacs(nums)
		if err != nil {
			return nil, fmt.Errorf("dimacs: %w", err)
		}
		f.AddClause(c)
	}
	return f, nil
}

// WriteDIMACS writes clauses to w in DIMACS CNF format, including a problem
// line computed from the clauses themselves.
func WriteDIMACS(w io.Writer, clauses [][]int) error {
	numVars := 0
	for _, clause := range clauses {
		for _, v := range clause {
			if v < 0 {
				v = -v
			}
			if v > numVars {
				numVars = v
			}
		}
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", numVars, len(clauses)); err != nil {
		return err
	}
	for _, clause := range clauses {
		for _, v := range clause {
			if _, err := fmt.Fprintf(bw, "%d ", v); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFormula writes f to w in DIMACS CNF format.
func WriteFormula(w io.Writer, f *formula.Formula) error {
	clauses := make([][]int, f.NumClauses())
	for i, c := range f.Clauses() {
		lits := c.Literals()
		nums := make([]int, len(lits))
		for j, l := range lits {
			nums[j] = l.ToDimacs()
		}
		clauses[i] = nums
	}
	return WriteDIMACS(w, clauses)
}
