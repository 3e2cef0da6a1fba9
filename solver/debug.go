package solver

import (
	"fmt"
	"strings"

	"github.com/kr/pretty"

	"github.com/jnewman/dpllsat/lit"
)

// String renders a human-readable snapshot of the context: the current
// assignment and every clause's state. It is meant for tests and verbose
// CLI tracing, never for the hot propagation path.
func (ctx *Context) String() string {
	var b strings.Builder
	b.WriteString("assignment: ")
	for i, p := range ctx.assignment.Pairs() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d=%t", p.Var.ToDimacs(), p.Value)
	}
	b.WriteString("\nclause states:\n")
	for i, s := range ctx.states {
		fmt.Fprintf(&b, "  [%d] %s\n", i, s)
	}
	return b.String()
}

// DebugDump returns a pretty-printed dump of ctx's internal counters,
// useful when a bug report needs more than String's summary.
func DebugDump(ctx *Context) string {
	return fmt.Sprintf("%# v", pretty.Formatter(struct {
		Unassigned int
		Pending    int
		PosCount   map[string]int
		NegCount   map[string]int
	}{
		Unassigned: len(ctx.unassigned),
		Pending:    len(ctx.pending),
		PosCount:   dimacsKeyed(ctx.posCount),
		NegCount:   dimacsKeyed(ctx.negCount),
	}))
}

func dimacsKeyed(counts map[lit.Var]int) map[string]int {
	out := make(map[string]int, len(counts))
	for v, n := range counts {
		out[v.String()] = n
	}
	return out
}
