package fixplex

import (
	"fmt"
	"strings"
)

// DisplayRow renders one row as an equation over its entries, marking the
// base variable.
func (s *Solver) DisplayRow(r int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "r%d := %d : ", r, s.rows[r].value)
	for _, e := range s.mx.rowEntries(r) {
		if e.coeff != 1 {
			fmt.Fprintf(&b, "%d * ", e.coeff)
		}
		fmt.Fprintf(&b, "v%d", e.v)
		if s.vars[e.v].isBase {
			b.WriteString("b")
		}
		b.WriteString(" ")
	}
	return strings.TrimRight(b.String(), " ")
}

// String renders the tableau: every variable with its value, interval and
// base row, followed by the inequalities.
func (s *Solver) String() string {
	var b strings.Builder
	for r := 0; r < s.mx.numRows(); r++ {
		if s.mx.rowAlive(r) {
			b.WriteString(s.DisplayRow(r))
			b.WriteString("\n")
		}
	}
	for v := range s.vars {
		vi := &s.vars[v]
		fmt.Fprintf(&b, "v%d := %d %s", v, vi.value, vi.ivl)
		if vi.isBase {
			fmt.Fprintf(&b, " b:%d", vi.baseRow)
		}
		b.WriteString("\n")
	}
	for _, iq := range s.ineqs {
		op := "<="
		if iq.strict {
			op = "<"
		}
		fmt.Fprintf(&b, "v%d %s v%d\n", iq.v, op, iq.w)
	}
	return b.String()
}
