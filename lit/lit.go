// Package lit implements the literal algebra of the solver: variables and
// signed literals, packed into a single machine word in the style of a
// watched-literal DPLL implementation.
package lit

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimacs is returned when a DIMACS integer is zero.
var ErrInvalidDimacs = errors.New("dimacs number cannot be 0")

// ErrIndexTooLarge is returned when a variable or literal index exceeds
// MaxVar's index.
var ErrIndexTooLarge = errors.New("index too large for a variable")

// Index is the packed representation shared by Var and Lit.
type Index = uint32

// MaxVar is the variable with the largest supported index. Its index is
// chosen so a Lit's packed code (index<<1 | polarity) fits comfortably in a
// uint32, leaving two bits of headroom above the variable index.
var MaxVar = Var{index: math.MaxUint32 >> 2}

// MaxVarCount is the number of distinct variables representable by Var.
func MaxVarCount() int { return int(MaxVar.index) + 1 }

// Var is a dense, nonnegative variable identity. The zero Var is the
// variable with 0-based index 0 (DIMACS number 1); it is not a sentinel.
type Var struct {
	index Index
}

// VarFromIndex creates a variable from a 0-based index.
func VarFromIndex(index int) (Var, error) {
	if index < 0 || uint64(index) > uint64(MaxVar.index) {
		return Var{}, ErrIndexTooLarge
	}
	return Var{index: Index(index)}, nil
}

// VarFromDimacs creates a variable from a 1-based DIMACS number.
func VarFromDimacs(number int) (Var, error) {
	if number == 0 {
		return Var{}, ErrInvalidDimacs
	}
	n := number
	if n < 0 {
		n = -n
	}
	return VarFromIndex(n - 1)
}

// Index returns the 0-based index of v.
func (v Var) Index() int { return int(v.index) }

// ToDimacs returns the 1-based DIMACS number of v.
func (v Var) ToDimacs() int { return int(v.index) + 1 }

// Positive returns the positive literal for v.
func (v Var) Positive() Lit { return LitFromVar(v, true) }

// Negative returns the negative literal for v.
func (v Var) Negative() Lit { return LitFromVar(v, false) }

// String renders the DIMACS encoding of v.
func (v Var) String() string { return fmt.Sprintf("%d", v.ToDimacs()) }

// Lit is a variable paired with a polarity, packed as (index<<1)|negated.
type Lit struct {
	code Index
}

// LitFromIndex creates a literal from a 0-based variable index and polarity
// (true for a positive literal).
func LitFromIndex(index int, positive bool) (Lit, error) {
	if index < 0 || uint64(index) > uint64(MaxVar.index) {
		return Lit{}, ErrIndexTooLarge
	}
	code := Index(index) << 1
	if !positive {
		code |= 1
	}
	return Lit{code: code}, nil
}

// LitFromVar creates a literal with the given polarity from var.
func LitFromVar(v Var, positive bool) Lit {
	l, err := LitFromIndex(v.Index(), positive)
	if err != nil {
		panic("lit: LitFromVar given a Var with an invalid index")
	}
	return l
}

// LitFromDimacs creates a literal from a signed DIMACS number: the sign
// gives the polarity and the magnitude (minus one) gives the variable index.
func LitFromDimacs(number int) (Lit, error) {
	if number == 0 {
		return Lit{}, ErrInvalidDimacs
	}
	positive := number > 0
	n := number
	if !positive {
		n = -n
	}
	return LitFromIndex(n-1, positive)
}

// MustFromDIMACS is LitFromDimacs that panics on invalid input. It exists
// for tests and generators that already know their input is well-formed;
// it must never be called on untrusted input.
func MustFromDIMACS(number int) Lit {
	l, err := LitFromDimacs(number)
	if err != nil {
		panic(fmt.Sprintf("lit: invalid DIMACS number %d: %s", number, err))
	}
	return l
}

// Var returns the underlying variable of l.
func (l Lit) Var() Var { return Var{index: l.code >> 1} }

// Index returns the 0-based index of l's underlying variable.
func (l Lit) Index() int { return int(l.code >> 1) }

// Positive reports whether l is a positive literal.
func (l Lit) Positive() bool { return l.code&1 == 0 }

// Negative reports whether l is a negative literal.
func (l Lit) Negative() bool { return l.code&1 == 1 }

// Complement returns the literal with the same variable and opposite
// polarity. Complement is an involution: l.Complement().Complement() == l.
func (l Lit) Complement() Lit { return Lit{code: l.code ^ 1} }

// ToDimacs returns the signed DIMACS encoding of l.
func (l Lit) ToDimacs() int {
	n := l.Var().ToDimacs()
	if l.Negative() {
		return -n
	}
	return n
}

// Evaluate reports whether l is true given that its variable has been
// assigned value.
func (l Lit) Evaluate(value bool) bool { return l.Positive() == value }

// String renders the signed DIMACS encoding, with a leading space on
// positive literals so a column of mixed-polarity literals lines up.
func (l Lit) String() string {
	if l.Positive() {
		return fmt.Sprintf(" %d", l.ToDimacs())
	}
	return fmt.Sprintf("%d", l.ToDimacs())
}
