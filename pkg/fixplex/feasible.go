package fixplex

import (
	"context"
	"math"

	"go.uber.org/zap"
)

// MakeFeasible searches for an assignment satisfying every row, every
// interval bound and every inequality. Out-of-bounds base variables are
// patched one at a time by pivoting with a suitable non-base variable until
// none remain or a conflict is found. Bland's anti-cycling rule engages
// after the configured number of repeated selections of the same variable.
//
// Returns Sat with the assignment readable via Value, Unsat with the core
// readable via UnsatCore, or Unknown when the iteration budget is exhausted,
// ctx is cancelled, or no lossless pivot exists.
func (s *Solver) MakeFeasible(ctx context.Context) Result {
	s.stats.Checks++
	if s.infeasible {
		return Unsat
	}
	s.leftBasis = make(map[int]struct{})
	numIterations := 0
	numRepeated := 0
	s.bland = false
	for {
		v := s.selectVarToFix()
		if v == nullVar {
			break
		}
		if ctx.Err() != nil || numIterations > s.maxIterations {
			s.toPatch.insert(v)
			return Unknown
		}
		s.checkBlandsRule(v, &numRepeated)
		switch s.makeVarFeasible(v) {
		case Sat:
			numIterations++
		case Unsat:
			s.toPatch.insert(v)
			s.setInfeasibleBase(v)
			s.stats.Infeasible++
			return Unsat
		case Unknown:
			s.toPatch.insert(v)
			if s.ineqsViolated() {
				return Unsat
			}
			return Unknown
		}
	}
	if s.ineqsViolated() {
		return Unsat
	}
	if s.ineqsSatisfied() {
		return Sat
	}
	return Unknown
}

// selectVarToFix picks the next out-of-bounds base variable, or nullVar when
// none is pending. Bland's rule forces smallest-index selection.
func (s *Solver) selectVarToFix() int {
	if s.bland {
		return s.selectSmallestVar()
	}
	switch s.strategy {
	case StrategyGreatestError:
		return s.selectErrorVar(false)
	case StrategyLeastError:
		return s.selectErrorVar(true)
	default:
		return s.selectSmallestVar()
	}
}

func (s *Solver) selectSmallestVar() int {
	best := nullVar
	for _, v := range s.toPatch.items {
		if best == nullVar || v < best {
			best = v
		}
	}
	if best != nullVar {
		s.toPatch.erase(best)
	}
	return best
}

func (s *Solver) selectErrorVar(least bool) int {
	best := nullVar
	var bestError uint64
	for _, v := range s.toPatch.items {
		currError := s.value2error(v, s.vars[v].value)
		if currError == 0 {
			continue
		}
		if best == nullVar ||
			(least && currError < bestError) ||
			(!least && currError > bestError) {
			best = v
			bestError = currError
		}
	}
	if best == nullVar {
		s.toPatch.clear() // all pending variables are satisfied
	} else {
		s.toPatch.erase(best)
	}
	return best
}

func (s *Solver) checkBlandsRule(v int, numRepeated *int) {
	if s.bland {
		return
	}
	if _, ok := s.leftBasis[v]; !ok {
		s.leftBasis[v] = struct{}{}
		return
	}
	*numRepeated++
	if *numRepeated > s.blandThreshold {
		s.bland = true
		s.log.Debug("engaging bland's rule", zap.Int("repeated", *numRepeated))
	}
}

// makeVarFeasible attempts to move x inside its interval.
//
// Returns Unsat when x is base of an infeasible row or its interval is
// empty, Sat when the assignment was improved (or was already in bounds),
// and Unknown when the row could not be used for an improvement.
func (s *Solver) makeVarFeasible(x int) Result {
	if s.inBounds(x) {
		return Sat
	}
	if s.vars[x].ivl.IsEmpty() {
		return Unsat
	}
	newValue := s.vars[x].ivl.ClosestTo(s.m, s.vars[x].value)
	y, b := s.selectPivot(x, newValue)
	if y == nullVar {
		if s.isInfeasibleRow(x) || s.isParityInfeasibleRow(x) {
			return Unsat
		}
		return Unknown
	}
	s.pivot(x, y, b, newValue)
	return Sat
}

func (s *Solver) selectPivot(x int, newValue uint64) (int, uint64) {
	if s.bland {
		return s.selectPivotBlands(x, newValue)
	}
	return s.selectPivotCore(x, newValue)
}

// selectPivotCore scans the row of base variable x for a non-base variable y
// whose value change can move x to newValue. Only candidates whose
// coefficient has minimal trailing zeros in y's column are considered (the
// parity condition keeping elimination lossless). Candidates are ranked by
// a lexicographic key: in-bounds first, then smaller out-of-bounds gap, then
// fewer non-free dependent base variables, then smaller column; remaining
// ties are broken by reservoir sampling on the deterministic random source.
// Returns nullVar when no candidate survives or the best out-of-bounds
// candidate makes no progress over x's own gap.
func (s *Solver) selectPivotCore(x int, newValue uint64) (int, uint64) {
	r := s.vars[x].baseRow
	result := nullVar
	var outB uint64
	n := 0
	bestColSz := math.MaxInt
	bestSoFar := math.MaxInt
	a := s.rows[r].baseCoeff
	rowValue := s.m.Add(s.rows[r].value, s.m.Mul(a, newValue))
	var deltaY, deltaBest uint64
	bestInBounds := false

	for _, e := range s.mx.rowEntries(r) {
		y, b := e.v, e.coeff
		if y == x {
			continue
		}
		if !s.hasMinimalTrailingZeros(y, b) {
			continue
		}
		newYValue := s.solveFor(s.m.Sub(rowValue, s.m.Mul(b, s.vars[y].value)), b)
		yIvl := s.vars[y].ivl
		inB := yIvl.Contains(s.m, newYValue)
		if !inB {
			if s.m.Sub(yIvl.Lo, newYValue) < s.m.Sub(newYValue, yIvl.Hi) {
				deltaY = s.m.Sub(newYValue, yIvl.Lo)
			} else {
				deltaY = s.m.Sub(s.m.Sub(newYValue, yIvl.Hi), 1)
			}
		}
		num := s.numNonFreeDepVars(y, bestSoFar)
		colSz := s.mx.columnSize(y)
		improvement, plateau := false, false

		switch {
		case bestSoFar == math.MaxInt:
			improvement = true
		case !bestInBounds && inB:
			improvement = true
		case !bestInBounds && !inB && deltaY < deltaBest:
			improvement = true
		case bestInBounds && inB && num < bestSoFar:
			improvement = true
		case bestInBounds && inB && num == bestSoFar && colSz < bestColSz:
			improvement = true
		case !bestInBounds && !inB && deltaY == deltaBest && bestSoFar == num && colSz == bestColSz:
			plateau = true
		case bestInBounds && inB && bestSoFar == num && colSz == bestColSz:
			plateau = true
		}

		if improvement {
			result, outB = y, b
			bestSoFar = num
			bestColSz = colSz
			bestInBounds = inB
			deltaBest = deltaY
			n = 1
		} else if plateau {
			n++
			if s.rng.Intn(n) == 0 {
				result, outB = y, b
			}
		}
	}
	if result == nullVar {
		return nullVar, 0
	}
	if !bestInBounds && deltaBest >= s.value2delta(x, s.vars[x].value) {
		return nullVar, 0
	}
	return result, outB
}

// selectPivotBlands returns the in-row candidate of smallest variable index
// whose change can reduce or maintain the overall error, ignoring the
// minimal-trailing-zeros filter.
func (s *Solver) selectPivotBlands(x int, newValue uint64) (int, uint64) {
	r := s.vars[x].baseRow
	result := nullVar
	var outB uint64
	for _, e := range s.mx.rowEntries(r) {
		y := e.v
		if y == x || (result != nullVar && y >= result) {
			continue
		}
		if s.canImprove(x, newValue, y, e.coeff) {
			result, outB = y, e.coeff
		}
	}
	return result, outB
}

// canImprove determines whether setting x := newXValue allows y's value to
// change in a direction that reduces or maintains the overall error.
func (s *Solver) canImprove(x int, newXValue uint64, y int, b uint64) bool {
	r := s.vars[x].baseRow
	rowValue := s.m.Add(s.rows[r].value, s.m.Mul(s.rows[r].baseCoeff, newXValue))
	newYValue := s.solveFor(s.m.Sub(rowValue, s.m.Mul(b, s.vars[y].value)), b)
	if s.vars[y].ivl.Contains(s.m, newYValue) {
		return true
	}
	return s.value2error(y, newYValue) <= s.value2error(x, s.vars[x].value)
}

// value2delta computes the delta moving value onto the nearest endpoint of
// v's interval: value+delta is either lo(v) or hi(v)-1. value must be
// outside the interval.
func (s *Solver) value2delta(v int, value uint64) uint64 {
	ivl := s.vars[v].ivl
	if s.m.Sub(ivl.Lo, value) < s.m.Sub(value, ivl.Hi) {
		return s.m.Sub(ivl.Lo, value)
	}
	return s.m.Sub(s.m.Sub(ivl.Hi, value), 1)
}

func (s *Solver) value2error(v int, value uint64) uint64 {
	if s.vars[v].ivl.Contains(s.m, value) {
		return 0
	}
	ivl := s.vars[v].ivl
	if s.m.Sub(ivl.Lo, value) < s.m.Sub(value, ivl.Hi) {
		return s.m.Sub(ivl.Lo, value)
	}
	return s.m.Sub(s.m.Sub(value, ivl.Hi), 1)
}

// hasMinimalTrailingZeros reports whether coefficient b of y is odd or has
// no more trailing zeros than any of y's coefficients across all rows.
func (s *Solver) hasMinimalTrailingZeros(y int, b uint64) bool {
	tz1 := s.m.TrailingZeros(b)
	if tz1 == 0 {
		return true
	}
	for _, ce := range s.mx.colEntries(y) {
		if tz1 > s.m.TrailingZeros(s.mx.coeffOf(ce)) {
			return false
		}
	}
	return true
}

// numNonFreeDepVars counts the non-free base variables depending on y,
// plus one when y itself is non-free. Returns early with a partial count
// once it exceeds bestSoFar.
func (s *Solver) numNonFreeDepVars(y int, bestSoFar int) int {
	result := 0
	if !s.vars[y].ivl.IsFree() {
		result = 1
	}
	for _, ce := range s.mx.colEntries(y) {
		base := s.rows[ce.row].base
		if !s.vars[base].ivl.IsFree() {
			result++
		}
		if result > bestSoFar {
			return result
		}
	}
	return result
}

// solveFor approximately solves c*x + rowValue = 0 for x. Exact for c = 1
// and c = -1; for other coefficients a division-based approximation guides
// the search (exactness is not required).
func (s *Solver) solveFor(rowValue, c uint64) uint64 {
	c = s.m.Mask(c)
	rowValue = s.m.Mask(rowValue)
	if c == 1 {
		return s.m.Neg(rowValue)
	}
	if c == s.m.mask { // c == -1
		return rowValue
	}
	if s.m.Neg(c) < c {
		return s.m.Div(rowValue, s.m.Neg(c))
	}
	return s.m.Neg(s.m.Div(rowValue, c))
}

// setBaseValue recomputes the value of base variable x from its row cache
// and refreshes the row's integrality flag.
func (s *Solver) setBaseValue(x int) {
	r := s.vars[x].baseRow
	s.vars[x].value = s.solveFor(s.rows[r].value, s.rows[r].baseCoeff)
	s.touchVar(x)
	wasIntegral := s.rows[r].integral
	s.rows[r].integral = s.isSolved(r)
	if wasIntegral && !s.rows[r].integral {
		s.stats.NonIntegralRows++
	} else if !wasIntegral && s.rows[r].integral {
		s.stats.NonIntegralRows--
	}
}

// isSolved reports whether the row balances exactly under the current
// assignment (an integral rather than merely rational solution).
func (s *Solver) isSolved(r int) bool {
	ri := s.rows[r]
	return s.m.Add(s.m.Mul(s.vars[ri.base].value, ri.baseCoeff), ri.value) == 0
}

// updateValue increments non-base v by delta and propagates the change into
// the cached value of every row containing v, re-solving their base
// variables.
func (s *Solver) updateValue(v int, delta uint64) {
	if delta == 0 {
		return
	}
	s.vars[v].value = s.m.Add(s.vars[v].value, delta)
	s.touchVar(v)
	for _, ce := range s.mx.colEntries(v) {
		ri := ce.row
		base := s.rows[ri].base
		s.rows[ri].value = s.m.Add(s.rows[ri].value, s.m.Mul(delta, s.mx.coeffOf(ce)))
		s.setBaseValue(base)
		s.addPatch(base)
	}
}

// pivot makes y the base variable of x's row, assigning x := newValue, and
// eliminates y from every other row of its column.
func (s *Solver) pivot(x, y int, b uint64, newValue uint64) {
	s.stats.Pivots++
	rx := s.vars[x].baseRow
	a := s.rows[rx].baseCoeff
	oldValueY := s.vars[y].value
	s.rows[rx].base = y
	s.rows[rx].value = s.m.Add(s.m.Sub(s.rows[rx].value, s.m.Mul(b, oldValueY)), s.m.Mul(a, newValue))
	s.rows[rx].baseCoeff = b
	s.vars[y].baseRow = rx
	s.vars[y].isBase = true
	s.setBaseValue(y)
	s.vars[x].isBase = false
	s.vars[x].value = newValue
	s.touchVar(x)
	s.addPatch(y)
	s.log.Debug("pivot",
		zap.Int("out", x), zap.Int("in", y),
		zap.Uint64("coeff", b), zap.Uint64("value", newValue))

	tzB := s.m.TrailingZeros(b)

	// Snapshot the column: elimination unlinks y's entries as it goes.
	type colSnap struct {
		row   int
		coeff uint64
	}
	var snap []colSnap
	for _, ce := range s.mx.colEntries(y) {
		if ce.row == rx {
			continue
		}
		snap = append(snap, colSnap{row: ce.row, coeff: s.mx.coeffOf(ce)})
	}
	for _, cs := range snap {
		s.eliminateVar(rx, cs.row, cs.coeff, tzB, oldValueY)
		s.addPatch(s.rows[cs.row].base)
	}
}

// eliminateVar combines row rZ with the row rY of base variable y so that
// y's coefficient in rZ is reduced: rZ := b1*rZ + c1*rY with the shift
// amounts chosen by the parity of the two coefficients. Reports true in the
// lossless case (the parity of rY's base coefficient does not exceed the
// parity of c), false when rZ had to be scaled by an even numeral.
func (s *Solver) eliminateVar(rY, rZ int, c uint64, tzB uint, oldValueY uint64) bool {
	b := s.rows[rY].baseCoeff
	z := s.rows[rZ].base
	tzC := s.m.TrailingZeros(c)
	var b1, c1 uint64
	lossless := tzB <= tzC
	if lossless {
		b1 = s.m.Shr(b, tzB)
		c1 = s.m.Neg(s.m.Shr(c, tzC-tzB))
	} else {
		b1 = s.m.Shr(b, tzB-tzC)
		c1 = s.m.Neg(s.m.Shr(c, tzC))
	}
	s.mx.mulRow(rZ, b1)
	s.mx.addRowMul(rZ, c1, rY)
	s.rows[rZ].value = s.m.Add(
		s.m.Mul(b1, s.m.Sub(s.rows[rZ].value, s.m.Mul(c, oldValueY))),
		s.m.Mul(c1, s.rows[rY].value))
	s.rows[rZ].baseCoeff = s.m.Mul(s.rows[rZ].baseCoeff, b1)
	s.setBaseValue(z)
	return lossless
}

// elimBase eliminates base variable v from every row except its own.
// Reports false if any elimination was lossy.
func (s *Solver) elimBase(v int) bool {
	r := s.vars[v].baseRow
	tzB := s.m.TrailingZeros(s.rows[r].baseCoeff)
	valueV := s.vars[v].value
	type colSnap struct {
		row   int
		coeff uint64
	}
	var snap []colSnap
	for _, ce := range s.mx.colEntries(v) {
		if ce.row == r {
			continue
		}
		snap = append(snap, colSnap{row: ce.row, coeff: s.mx.coeffOf(ce)})
	}
	ok := true
	for _, cs := range snap {
		if !s.eliminateVar(r, cs.row, cs.coeff, tzB, valueV) {
			ok = false
		}
	}
	return ok
}

// isInfeasibleRow reports whether no assignment within the current bounds
// can make x's row sum to zero: the interval sum of coeff-scaled variable
// intervals does not contain zero. A sum that becomes free short-circuits
// as possibly feasible.
func (s *Solver) isInfeasibleRow(x int) bool {
	r := s.vars[x].baseRow
	rng := Interval{Lo: 0, Hi: 1}
	for _, e := range s.mx.rowEntries(r) {
		rng = rng.Add(s.m, s.vars[e.v].ivl.MulScalar(s.m, e.coeff))
		if rng.IsFree() {
			return false
		}
	}
	return !rng.Contains(s.m, 0)
}

// isParityInfeasibleRow checks x's row against parity constraints: with
// fixed the sum over fixed variables and parity the minimal trailing-zero
// count over the remaining coefficients, the row is infeasible when the
// power of two dividing fixed is below parity. Applies only to rows not
// already integrally solved.
func (s *Solver) isParityInfeasibleRow(x int) bool {
	r := s.vars[x].baseRow
	if s.rows[r].integral {
		return false
	}
	var fixed uint64
	parity := s.m.bits + 1
	for _, e := range s.mx.rowEntries(r) {
		if s.vars[e.v].ivl.IsFixed(s.m) {
			fixed = s.m.Add(fixed, s.m.Mul(s.vars[e.v].value, e.coeff))
		} else if tz := s.m.TrailingZeros(e.coeff); tz < parity {
			parity = tz
		}
	}
	return s.m.TrailingZeros(fixed) < parity
}

// isFeasible reports whether every variable is within its bounds.
func (s *Solver) isFeasible() bool {
	for v := range s.vars {
		if !s.inBounds(v) {
			return false
		}
	}
	return true
}
