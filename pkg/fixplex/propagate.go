package fixplex

import "go.uber.org/zap"

// PropagateBounds propagates interval bounds through every row and every
// inequality. Tightenings are trailed and tagged with the dependency join of
// the bounds they were derived from. Returns Unsat when a propagated
// interval becomes empty, Sat otherwise.
func (s *Solver) PropagateBounds() Result {
	if s.infeasible {
		return Unsat
	}
	for r := 0; r < s.mx.numRows(); r++ {
		if !s.mx.rowAlive(r) {
			continue
		}
		if !s.propagateRow(r) {
			return Unsat
		}
	}
	for idx := range s.ineqs {
		if !s.ineqs[idx].active {
			s.ineqs[idx].active = true
			s.ineqsToCheck = append(s.ineqsToCheck, idx)
		}
	}
	if s.ineqsViolated() {
		return Unsat
	}
	return Sat
}

// propagateRow sums the coefficient-scaled intervals of the row's variables.
// With exactly one free variable, the negated sum divided by its coefficient
// bounds that variable; with no free variable, each variable is bounded by
// the negated sum of the remaining terms; with two or more free variables,
// or a sum that becomes free, nothing is derived. Only odd coefficients can be divided out (the
// odd inverse is a bijection of the ring); candidates behind even
// coefficients are skipped.
func (s *Solver) propagateRow(r int) bool {
	rng := Interval{Lo: 0, Hi: 1}
	var freeC uint64
	freeV := nullVar
	for _, e := range s.mx.rowEntries(r) {
		if s.vars[e.v].ivl.IsFree() {
			if freeV != nullVar {
				return true
			}
			freeV, freeC = e.v, e.coeff
			continue
		}
		rng = rng.Add(s.m, s.vars[e.v].ivl.MulScalar(s.m, e.coeff))
		if rng.IsFree() {
			return true
		}
	}

	if freeV != nullVar {
		cand, ok := s.divideByCoeff(rng.Neg(s.m), freeC)
		if !ok {
			return true
		}
		return s.newRowBound(r, freeV, cand)
	}
	for _, e := range s.mx.rowEntries(r) {
		rest := rng.Sub(s.m, s.vars[e.v].ivl.MulScalar(s.m, e.coeff))
		cand, ok := s.divideByCoeff(rest.Neg(s.m), e.coeff)
		if !ok {
			continue
		}
		if !s.newRowBound(r, e.v, cand) {
			return false
		}
	}
	return true
}

// divideByCoeff maps an interval of c*x values to an interval of x values.
func (s *Solver) divideByCoeff(ivl Interval, c uint64) (Interval, bool) {
	c = s.m.Mask(c)
	if c == 1 {
		return ivl, true
	}
	if s.m.IsEven(c) {
		return Interval{}, false
	}
	inv, _ := s.m.OddInverse(c)
	return ivl.MulScalar(s.m, inv), true
}

// newRowBound tightens x's interval to rng, depending on every endpoint of
// the row's variables. A free candidate is no tightening and no conflict; an
// empty result is a conflict. A variable that becomes fixed is fed to the
// fixed-value collision table.
func (s *Solver) newRowBound(r int, x int, rng Interval) bool {
	if rng.IsFree() {
		return true
	}
	wasFixed := s.vars[x].ivl.IsFixed(s.m)
	s.updateBounds(x, rng, s.row2dep(r))
	s.log.Debug("row bound", zap.Int("row", r), zap.Int("var", x), zap.String("interval", s.vars[x].ivl.String()))
	if s.vars[x].ivl.IsEmpty() {
		s.conflict(s.vars[x].loDep, s.vars[x].hiDep)
		return false
	}
	if !wasFixed && s.vars[x].ivl.IsFixed(s.m) {
		s.fixedVarEh(r, x)
	}
	return true
}

// row2dep joins the endpoint dependencies of every variable of the row.
func (s *Solver) row2dep(r int) *Dep {
	var d *Dep
	for _, e := range s.mx.rowEntries(r) {
		d = s.deps.Join(s.vars[e.v].loDep, d)
		d = s.deps.Join(s.vars[e.v].hiDep, d)
	}
	return d
}

// setInfeasibleBase records the unsat core of a row-level conflict: the
// joined endpoint dependencies of every variable in v's row.
func (s *Solver) setInfeasibleBase(v int) {
	if !s.vars[v].isBase {
		s.conflict(s.vars[v].loDep, s.vars[v].hiDep)
		return
	}
	s.conflict(s.row2dep(s.vars[v].baseRow))
}

// conflict linearises the joined dependency sets into the unsat core and
// marks the solver conflicted until the next Pop.
func (s *Solver) conflict(deps ...*Dep) {
	var d *Dep
	for _, e := range deps {
		d = s.deps.Join(d, e)
	}
	s.unsatCore = s.deps.Linearize(d)
	s.infeasible = true
	s.log.Debug("conflict", zap.Ints("core", s.unsatCore))
}

// newIneqBound tightens x's interval to [l, h), depending on the
// inequality's own tag joined with the given endpoint dependencies.
func (s *Solver) newIneqBound(iq ineq, x int, l, h uint64, deps ...*Dep) bool {
	dep := s.deps.Leaf(iq.dep)
	for _, d := range deps {
		dep = s.deps.Join(dep, d)
	}
	s.updateBounds(x, NewInterval(s.m, l, h), dep)
	if s.vars[x].ivl.IsEmpty() {
		s.conflict(s.vars[x].loDep, s.vars[x].hiDep)
		return false
	}
	return true
}

// ineqConflict records a conflict of the inequality joined with the given
// endpoint dependencies.
func (s *Solver) ineqConflict(iq ineq, deps ...*Dep) {
	d := s.deps.Leaf(iq.dep)
	for _, e := range deps {
		d = s.deps.Join(d, e)
	}
	s.conflict(d)
}

func (s *Solver) propagateIneq(iq ineq) bool {
	if iq.strict {
		return s.propagateStrict(iq)
	}
	return s.propagateNonStrict(iq)
}

// propagateStrict derives bounds from v < w. The rule list is generated from
// the modular-interval semantics of the strict order, with a few manually
// derived rules ahead of the generated block. Each rule tightens one
// endpoint or signals a conflict under a guard over the current endpoints.
func (s *Solver) propagateStrict(iq ineq) bool {
	m := s.m
	v, w := iq.v, iq.w
	vlo, vhi := s.vars[v].loDep, s.vars[v].hiDep
	wlo, whi := s.vars[w].loDep, s.vars[w].hiDep
	lo := func(x int) uint64 { return s.vars[x].ivl.Lo }
	hi := func(x int) uint64 { return s.vars[x].ivl.Hi }
	isFree := func(x int) bool { return s.vars[x].ivl.IsFree() }
	isFixed := func(x int) bool { return s.vars[x].ivl.IsFixed(m) }

	if lo(w) == 0 && !s.newIneqBound(iq, w, m.Add(lo(w), 1), lo(w), wlo) {
		return false
	}
	if hi(w) == 1 && !s.newIneqBound(iq, w, lo(w), m.Sub(hi(w), 1), whi) {
		return false
	}
	if hi(w) <= hi(v) && lo(w) <= hi(w) && !isFree(w) && !s.newIneqBound(iq, v, lo(v), m.Sub(hi(v), 1), vhi, whi, wlo) {
		return false
	}
	if hi(v) == 0 && lo(w) <= lo(v) && !s.newIneqBound(iq, w, m.Add(lo(v), 1), hi(v), vhi, vlo, wlo) {
		return false
	}
	if hi(v) == 0 && !isFree(v) && !s.newIneqBound(iq, v, lo(v), m.Sub(hi(v), 1), vhi) {
		return false
	}
	if lo(w) <= lo(v) && lo(v) <= hi(v) && !s.newIneqBound(iq, w, m.Add(lo(v), 1), lo(v), vlo, vhi, wlo) {
		return false
	}
	if m.Add(lo(v), 1) == hi(w) && lo(v) <= hi(v) && !s.newIneqBound(iq, w, lo(w), m.Sub(hi(w), 1), vlo, vhi, whi) {
		return false
	}
	if !(lo(v) <= hi(v)) && isFixed(w) && lo(w) <= hi(v) && !s.newIneqBound(iq, v, m.Add(lo(v), 1), m.Sub(hi(w), 1), vlo, vhi, whi, wlo) {
		return false
	}
	if m.Add(lo(v), 1) == hi(w) && lo(w) <= hi(w) && !s.newIneqBound(iq, v, m.Add(lo(v), 1), hi(v), vlo, whi, wlo) {
		return false
	}
	if isFixed(v) && lo(v) <= hi(w) && hi(w) <= lo(v) && !(hi(v) == 1) && !s.newIneqBound(iq, w, m.Add(lo(v), 1), m.Sub(hi(w), 1), vlo, vhi, whi) {
		return false
	}
	if !(hi(w) == 0) && hi(w) <= lo(v) && lo(v) <= hi(v) && !s.newIneqBound(iq, w, m.Add(lo(v), 1), m.Sub(hi(w), 1), vlo, vhi, whi) {
		return false
	}
	if hi(w) <= lo(v) && lo(w) <= hi(w) && !isFree(w) && !s.newIneqBound(iq, v, m.Add(lo(v), 1), m.Sub(hi(w), 1), vlo, whi, wlo) {
		return false
	}
	if m.Add(lo(v), 1) == hi(w) && hi(w) == 0 && !s.newIneqBound(iq, v, m.Add(lo(v), 1), hi(v), vlo, whi) {
		return false
	}
	if m.Add(lo(v), 1) == 0 && !s.newIneqBound(iq, v, m.Add(lo(v), 1), hi(v), vlo) {
		return false
	}
	if lo(w) < hi(w) && hi(w) <= lo(v) && !s.newIneqBound(iq, v, 0, hi(v), vlo, vhi, whi, wlo) {
		return false
	}

	// manually derived rules
	if isFixed(w) && lo(w) == 0 {
		s.ineqConflict(iq, wlo, whi)
		return false
	}
	if isFixed(v) && hi(v) == 0 {
		s.ineqConflict(iq, vlo, vhi)
		return false
	}
	if !isFree(w) && (lo(w) <= hi(w) || hi(w) == 0) && (lo(v) < hi(v) || hi(v) == 0) && !s.newIneqBound(iq, v, lo(v), m.Sub(hi(w), 1), vlo, wlo, whi) {
		return false
	}
	if !isFree(v) && (lo(w) <= hi(w) || hi(w) == 0) && (lo(v) < hi(v) || hi(v) == 0) && !s.newIneqBound(iq, w, m.Add(lo(v), 1), hi(w), vlo, vhi, whi) {
		return false
	}
	if lo(w) == 0 && !s.newIneqBound(iq, w, 1, hi(w), wlo) {
		return false
	}
	if m.Add(lo(v), 1) == 0 && !s.newIneqBound(iq, v, 0, hi(v), vhi) {
		return false
	}
	if lo(w) < hi(w) && (hi(w) <= hi(v) || hi(v) == 0) && !s.newIneqBound(iq, v, lo(v), m.Sub(hi(w), 1), vlo, vhi, wlo, whi) {
		return false
	}
	if !isFixed(w) && m.Add(lo(v), 1) == hi(w) && (lo(v) <= hi(v) || hi(v) == 0) && !s.newIneqBound(iq, w, lo(w), m.Sub(hi(w), 1), vlo, wlo, whi) {
		return false
	}
	if lo(w) <= lo(v) && (lo(v) < hi(v) || lo(v) == 0) && !s.newIneqBound(iq, w, m.Add(lo(v), 1), hi(w), vlo, vhi, wlo, whi) {
		return false
	}
	if hi(w) <= lo(v) && (lo(v) < hi(v) || hi(v) == 0) && !s.newIneqBound(iq, w, lo(w), 0, vlo, vhi, wlo, whi) {
		return false
	}
	if lo(w) < hi(w) && hi(w) <= lo(v) && (lo(v) < hi(v) || hi(v) == 0) {
		s.ineqConflict(iq, vlo, vhi, wlo, whi)
		return false
	}

	// generated rules
	if lo(w) == 0 && !s.newIneqBound(iq, w, m.Add(lo(w), 1), lo(w), wlo) {
		return false
	}
	if isFixed(v) && hi(w) <= hi(v) && lo(w) <= hi(w) && !isFree(w) {
		s.ineqConflict(iq, wlo, whi, vhi, vlo)
		return false
	}
	if lo(w) <= lo(v) && lo(v) <= hi(v) && !s.newIneqBound(iq, w, m.Add(lo(v), 1), lo(v), wlo, vhi, vlo) {
		return false
	}
	if hi(w) <= hi(v) && lo(w) <= hi(w) && !isFree(w) && !s.newIneqBound(iq, v, lo(v), m.Sub(hi(v), 1), wlo, whi, vhi) {
		return false
	}
	if hi(w) == 1 && !s.newIneqBound(iq, w, lo(w), m.Sub(hi(w), 1), whi) {
		return false
	}
	if !(lo(v) == 0) && lo(v) <= hi(w) && hi(w) <= lo(v) && lo(v) <= hi(v) && !s.newIneqBound(iq, w, m.Add(lo(v), 1), m.Sub(hi(w), 1), whi, vhi, vlo) {
		return false
	}
	if !(hi(w) == 0) && isFixed(v) && hi(w) <= hi(v) && !s.newIneqBound(iq, w, m.Add(lo(v), 1), m.Sub(hi(v), 1), whi, vhi, vlo) {
		return false
	}
	if !(lo(v) <= hi(w)) && !(hi(w) == 0) && lo(v) <= hi(v) && !s.newIneqBound(iq, w, m.Add(lo(v), 1), m.Sub(hi(w), 1), whi, vhi, vlo) {
		return false
	}
	if !(lo(v) <= lo(w)) && isFixed(w) && !s.newIneqBound(iq, v, m.Add(lo(v), 1), m.Sub(hi(w), 1), wlo, whi, vlo) {
		return false
	}
	if hi(w) <= lo(v) && lo(w) <= hi(w) && !isFree(w) && !s.newIneqBound(iq, v, m.Add(lo(v), 1), m.Sub(hi(w), 1), wlo, whi, vlo) {
		return false
	}
	if isFixed(w) && hi(v) == 0 && lo(w) <= lo(v) {
		s.ineqConflict(iq, wlo, whi, vhi, vlo)
		return false
	}
	if hi(v) == 0 && lo(w) <= lo(v) && !s.newIneqBound(iq, w, m.Add(lo(v), 1), hi(v), wlo, vhi, vlo) {
		return false
	}
	if hi(v) == 0 && !isFree(v) && !s.newIneqBound(iq, v, lo(v), m.Sub(hi(v), 1), vhi) {
		return false
	}
	if isFixed(w) && lo(w) <= lo(v) && !s.newIneqBound(iq, v, m.Add(lo(v), 1), m.Sub(hi(w), 1), wlo, whi, vlo) {
		return false
	}
	return true
}

// propagateNonStrict derives bounds from v <= w, in the same layout as
// propagateStrict: the manually derived rules first, then the generated
// block.
func (s *Solver) propagateNonStrict(iq ineq) bool {
	m := s.m
	v, w := iq.v, iq.w
	vlo, vhi := s.vars[v].loDep, s.vars[v].hiDep
	wlo, whi := s.vars[w].loDep, s.vars[w].hiDep
	lo := func(x int) uint64 { return s.vars[x].ivl.Lo }
	hi := func(x int) uint64 { return s.vars[x].ivl.Hi }
	isFree := func(x int) bool { return s.vars[x].ivl.IsFree() }
	isFixed := func(x int) bool { return s.vars[x].ivl.IsFixed(m) }

	// manually derived rules
	if lo(w) < lo(v) && (lo(v) < hi(v) || hi(v) == 0) && !s.newIneqBound(iq, w, lo(v), hi(w), vlo, vhi, wlo, whi) {
		return false
	}
	if !isFree(w) && (lo(w) <= hi(w) || hi(w) == 0) && (lo(v) < hi(v) || hi(v) == 0) && !s.newIneqBound(iq, v, lo(v), hi(w), vlo, vhi, wlo, whi) {
		return false
	}
	if !isFree(v) && (lo(w) <= hi(w) || hi(w) == 0) && (lo(v) < hi(v) || hi(v) == 0) && !s.newIneqBound(iq, w, lo(v), hi(w), vlo, vhi, whi) {
		return false
	}
	if hi(w) < lo(w) && hi(w) <= lo(v) && lo(v) < hi(v) && !s.newIneqBound(iq, w, lo(w), 0, vlo, vhi, wlo, whi) {
		return false
	}
	if lo(w) < hi(w) && hi(w) <= lo(v) && (lo(v) < hi(v) || hi(v) == 0) {
		s.ineqConflict(iq, vlo, vhi, wlo, whi)
		return false
	}

	// generated rules
	if !(hi(w) <= lo(v)) && !isFixed(v) && isFixed(w) && hi(w) == 1 && !(hi(v) == 0) && !s.newIneqBound(iq, v, 0, hi(w), vlo, wlo, vhi, whi) {
		return false
	}
	if !(hi(v) <= lo(w)) && !isFixed(v) && isFixed(w) && lo(w) <= lo(v) && lo(v) <= lo(w) && !s.newIneqBound(iq, v, 0, hi(w), vlo, wlo, vhi, whi) {
		return false
	}
	if !(hi(v) <= hi(w)) && !(hi(w) <= lo(v)) && lo(w) <= lo(v) && !s.newIneqBound(iq, v, 0, hi(w), wlo, vhi, vlo, whi) {
		return false
	}
	if !(lo(w) <= lo(v)) && !(hi(v) <= hi(w)) && isFixed(w) && lo(w) <= hi(w) && !s.newIneqBound(iq, v, 0, hi(w), vlo, wlo, vhi, whi) {
		return false
	}
	if !(lo(v) <= lo(w)) && hi(w) == 1 && lo(v) <= hi(w) && !s.newIneqBound(iq, v, 0, hi(w), wlo, vlo, whi) {
		return false
	}
	if isFixed(w) && hi(w) <= lo(v) && lo(w) <= hi(w) && !s.newIneqBound(iq, v, 0, hi(w), wlo, vlo, whi) {
		return false
	}
	if !(lo(v) <= lo(w)) && lo(v) <= hi(w) && hi(w) <= lo(v) && !s.newIneqBound(iq, v, 0, hi(w), wlo, vlo, whi) {
		return false
	}
	if !(lo(v) <= hi(w)) && isFixed(v) && lo(w) <= hi(w) && !s.newIneqBound(iq, w, lo(v), 0, vhi, vlo, wlo, whi) {
		return false
	}
	if !isFixed(w) && !(hi(v) <= lo(w)) && isFixed(v) && hi(v) <= hi(w) && hi(w) <= hi(v) && !s.newIneqBound(iq, w, m.Sub(hi(w), 1), hi(w), vlo, wlo, vhi, whi) {
		return false
	}
	if !(lo(v) <= lo(w)) && !(hi(w) <= lo(v)) && hi(w) <= hi(v) && !s.newIneqBound(iq, w, lo(v), hi(w), vlo, wlo, vhi, whi) {
		return false
	}
	if !(lo(v) <= lo(w)) && isFixed(v) && !s.newIneqBound(iq, w, lo(v), 0, vhi, wlo, vlo) {
		return false
	}
	if isFixed(v) && hi(w) == 1 && hi(w) <= lo(v) && hi(v) <= lo(w) && !(hi(v) == 0) && !s.newIneqBound(iq, w, lo(w), 0, vhi, vlo, wlo, whi) {
		return false
	}
	if !(hi(v) == 1) && hi(w) == 1 && lo(v) <= hi(w) && hi(w) <= lo(v) && hi(v) <= lo(w) && lo(v) <= hi(v) && !s.newIneqBound(iq, w, lo(w), 0, vhi, vlo, wlo, whi) {
		return false
	}
	if !(hi(w) == 0) && isFixed(v) && hi(w) <= lo(v) && hi(v) <= lo(w) && lo(v) <= hi(v) && !s.newIneqBound(iq, w, lo(w), 0, vhi, vlo, wlo, whi) {
		return false
	}
	if !(hi(v) <= hi(w)) && !(hi(w) == 0) && lo(v) <= hi(w) && hi(w) <= lo(v) && hi(v) <= lo(w) && !s.newIneqBound(iq, w, lo(w), 0, vhi, vlo, wlo, whi) {
		return false
	}
	if !(lo(v) <= hi(w)) && !(lo(w) <= lo(v)) && hi(w) == 1 && lo(w) <= hi(v) && !s.newIneqBound(iq, w, lo(w), 0, vhi, wlo, vlo, whi) {
		return false
	}
	if !(lo(v) <= hi(w)) && !(lo(w) <= lo(v)) && !(hi(w) == 0) && lo(w) <= hi(v) && !s.newIneqBound(iq, w, lo(w), 0, vhi, wlo, vlo, whi) {
		return false
	}
	if !(lo(w) <= hi(w)) && isFixed(v) && hi(w) == 1 && lo(w) <= lo(v) && !s.newIneqBound(iq, w, lo(w), 0, vlo, wlo, vhi, whi) {
		return false
	}
	if !(lo(w) <= hi(w)) && !(hi(v) <= lo(w)) && hi(w) == 1 && lo(w) <= lo(v) && lo(v) <= lo(w) && !s.newIneqBound(iq, w, lo(w), 0, vlo, wlo, vhi, whi) {
		return false
	}
	if !(lo(w) <= hi(w)) && !(hi(w) == 0) && isFixed(v) && lo(w) <= lo(v) && !s.newIneqBound(iq, w, lo(w), 0, vlo, wlo, vhi, whi) {
		return false
	}
	if !(lo(w) <= hi(w)) && !(hi(v) <= lo(w)) && !(hi(w) == 0) && lo(w) <= lo(v) && lo(v) <= lo(w) && !s.newIneqBound(iq, w, lo(w), 0, vlo, wlo, vhi, whi) {
		return false
	}
	if !(lo(w) <= hi(w)) && !(hi(v) == 1) && hi(w) == 1 && lo(v) <= hi(w) && hi(w) <= lo(v) && !s.newIneqBound(iq, w, lo(w), 0, vlo, wlo, vhi, whi) {
		return false
	}
	if !(lo(w) <= hi(w)) && !(hi(v) <= hi(w)) && !(hi(w) == 0) && lo(v) <= hi(w) && hi(w) <= lo(v) && !s.newIneqBound(iq, w, lo(w), 0, vlo, wlo, vhi, whi) {
		return false
	}
	if !(lo(v) <= hi(w)) && hi(v) == 0 && lo(w) <= hi(v) && !s.newIneqBound(iq, w, lo(v), 0, vhi, vlo, wlo, whi) {
		return false
	}
	if !(hi(w) == 1) && hi(v) == 1 && hi(w) <= lo(v) && lo(w) <= hi(v) && hi(v) <= lo(w) && lo(w) <= hi(w) && !s.newIneqBound(iq, v, 0, lo(w), vhi, vlo, wlo, whi) {
		return false
	}
	if !(hi(w) <= hi(v)) && hi(w) <= lo(v) && lo(w) <= hi(v) && !s.newIneqBound(iq, v, 0, m.Sub(hi(w), 1), vhi, vlo, wlo, whi) {
		return false
	}
	if !(lo(v) <= lo(w)) && hi(v) == 0 && !s.newIneqBound(iq, w, lo(v), 0, vhi, wlo, vlo) {
		return false
	}
	if !(lo(v) <= lo(w)) && !(hi(w) == 0) && hi(v) == 0 && lo(w) <= hi(v) && !s.newIneqBound(iq, v, lo(v), hi(w), vlo, wlo, vhi, whi) {
		return false
	}
	if !(lo(v) <= hi(v)) && isFixed(w) && hi(v) == 0 && lo(w) <= hi(w) && !s.newIneqBound(iq, v, lo(v), hi(w), vhi, vlo, wlo, whi) {
		return false
	}
	if !(lo(v) <= hi(v)) && !(hi(w) <= lo(v)) && hi(v) == 0 && lo(w) <= lo(v) && !s.newIneqBound(iq, v, lo(w), hi(w), wlo, vhi, vlo, whi) {
		return false
	}
	if !(hi(v) <= lo(w)) && hi(v) <= hi(w) && hi(w) <= lo(v) && !s.newIneqBound(iq, v, 0, hi(w), vlo, wlo, vhi, whi) {
		return false
	}
	if !(lo(w) <= hi(w)) && hi(w) == 1 && hi(v) == 0 && lo(w) <= lo(v) && !s.newIneqBound(iq, w, lo(w), 0, vlo, wlo, vhi, whi) {
		return false
	}
	if !(lo(v) <= hi(w)) && !(hi(w) == 0) && hi(v) == 0 && lo(v) <= lo(w) && !s.newIneqBound(iq, w, lo(w), 0, wlo, vhi, vlo, whi) {
		return false
	}
	if !(lo(w) <= lo(v)) && !(hi(w) == 0) && hi(v) == 0 && hi(w) <= lo(v) && !s.newIneqBound(iq, w, lo(w), 0, vlo, wlo, vhi, whi) {
		return false
	}
	return true
}
