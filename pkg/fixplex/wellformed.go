package fixplex

import "fmt"

// wellFormed checks the global tableau invariants: every live row is well
// formed with a consistent base cross-link, every non-base variable is
// within its bounds, and the row/column indexes agree. It is a debug check
// exercised by the test suite; release code paths do not rely on it.
func (s *Solver) wellFormed() error {
	for r := 0; r < s.mx.numRows(); r++ {
		if !s.mx.rowAlive(r) {
			continue
		}
		base := s.rows[r].base
		if base == nullVar {
			continue
		}
		if s.vars[base].baseRow != r {
			return fmt.Errorf("row %d: base v%d cross-link points at row %d", r, base, s.vars[base].baseRow)
		}
		if err := s.wellFormedRow(r); err != nil {
			return err
		}
	}
	for v := range s.vars {
		if !s.vars[v].isBase && !s.inBounds(v) && !s.vars[v].ivl.IsEmpty() {
			return fmt.Errorf("non-base v%d value %d outside %s", v, s.vars[v].value, s.vars[v].ivl)
		}
	}
	for v := range s.vars {
		for _, ce := range s.mx.colEntries(v) {
			e := s.mx.rowEntries(ce.row)[ce.rowPos]
			if e.v != v {
				return fmt.Errorf("column of v%d points at entry for v%d in row %d", v, e.v, ce.row)
			}
		}
	}
	for r := 0; r < s.mx.numRows(); r++ {
		if !s.mx.rowAlive(r) {
			continue
		}
		for pos, e := range s.mx.rowEntries(r) {
			ce := s.mx.colEntries(e.v)[e.colPos]
			if ce.row != r || ce.rowPos != pos {
				return fmt.Errorf("row %d entry for v%d has stale column backlink", r, e.v)
			}
		}
	}
	return nil
}

// wellFormedRow checks one row: the entries sum to zero under the current
// assignment, the base variable keeps its base flag and the cached base
// coefficient matches its entry, and the base value solves the cached row
// value.
func (s *Solver) wellFormedRow(r int) error {
	base := s.rows[r].base
	if !s.vars[base].isBase {
		return fmt.Errorf("row %d: base v%d lost its base flag", r, base)
	}
	var sum uint64
	for _, e := range s.mx.rowEntries(r) {
		sum = s.m.Add(sum, s.m.Mul(s.vars[e.v].value, e.coeff))
		if e.v == base && e.coeff != s.rows[r].baseCoeff {
			return fmt.Errorf("row %d: base coefficient cache %d != entry %d", r, s.rows[r].baseCoeff, e.coeff)
		}
	}
	if sum != 0 {
		return fmt.Errorf("row %d: entries sum to %d, want 0", r, sum)
	}
	want := s.m.Add(s.m.Mul(s.rows[r].baseCoeff, s.vars[base].value), s.rows[r].value)
	if want != 0 {
		return fmt.Errorf("row %d: base value %d does not solve cached row value %d", r, s.vars[base].value, s.rows[r].value)
	}
	return nil
}
