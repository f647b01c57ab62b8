package depinterval

// Poly is a polynomial in decision-diagram shape: either a constant leaf or
// a node var*Hi + Lo where Hi and Lo are sub-polynomials. The shape mirrors
// the Shannon-style cofactor decomposition used by polynomial decision
// diagrams; evaluation is a plain tree recursion over it.
type Poly struct {
	leaf bool
	val  uint64
	v    int
	hi   *Poly
	lo   *Poly
}

// Val returns the constant polynomial c.
func Val(c uint64) *Poly { return &Poly{leaf: true, val: c} }

// Node returns the polynomial v*hi + lo.
func Node(v int, hi, lo *Poly) *Poly { return &Poly{v: v, hi: hi, lo: lo} }

// IsVal reports whether the polynomial is a constant leaf.
func (p *Poly) IsVal() bool { return p.leaf }

// VarIntervals supplies the interval of a variable, with dependencies when
// requested.
type VarIntervals func(v int, withDeps bool) Interval

// PolyInterval computes an interval envelope of p over the given variable
// intervals: an interval containing every value p can take when each
// variable ranges over its interval.
func (mg *Manager) PolyInterval(p *Poly, vars VarIntervals, withDeps bool) Interval {
	if p.IsVal() {
		return mg.ScalarInterval(p.val)
	}
	a := vars(p.v, withDeps)
	hi := mg.PolyInterval(p.hi, vars, withDeps)
	lo := mg.PolyInterval(p.lo, vars, withDeps)
	return mg.Add(mg.Mul(hi, a, withDeps), lo, withDeps)
}

// Explain produces an explanation for bound over p using weaker bounds: the
// returned interval envelopes p, carries the dependencies that justify the
// bound, and is derived by distributing bound down the diagram.
//
// For a non-constant high cofactor the high part is enveloped exactly and
// the residual bound is pushed into the low part. For a constant high
// cofactor the residual bound is divided by the constant and intersected
// with the variable's own interval, narrowing the contribution of the
// variable to what the bound admits.
func (mg *Manager) Explain(p *Poly, bound Interval, vars VarIntervals) Interval {
	if p.IsVal() {
		return mg.ScalarInterval(p.val)
	}
	if !p.hi.IsVal() {
		a := vars(p.v, true)
		hi := mg.PolyInterval(p.hi, vars, true)
		hiIvl := mg.Mul(hi, a, true)
		loBound := mg.Sub(bound, hiIvl, true)
		loIvl := mg.Explain(p.lo, loBound, vars)
		return mg.Add(loIvl, hiIvl, true)
	}
	loIvl := mg.PolyInterval(p.lo, vars, true)
	hiBound := mg.Sub(bound, loIvl, true)
	narrowedBound, err := mg.DivScalar(hiBound, p.hi.val)
	if err != nil {
		// An even cofactor cannot be divided out; fall back to the plain
		// envelope, which still justifies the bound.
		return mg.PolyInterval(p, vars, true)
	}
	a := vars(p.v, true)
	narrowed := mg.Intersect(a, narrowedBound)
	return mg.Add(mg.MulScalar(narrowed, p.hi.val), loIvl, true)
}
