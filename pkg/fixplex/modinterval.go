package fixplex

import "fmt"

// Interval is a half-open interval [Lo, Hi) over the ring of integers modulo
// 2^N. When Lo < Hi it denotes {x : Lo <= x < Hi}; when Lo > Hi it wraps and
// denotes {x : x >= Lo} union {x : x < Hi}. Lo == Hi denotes the whole ring
// (the free interval); the empty set is a distinct marker.
//
// All lattice operations are sound over-approximations: the result contains
// every value the exact operation could produce. Operations that need ring
// arithmetic take the Ext explicitly; an Interval value is meaningful only
// together with the Ext its endpoints were reduced by.
type Interval struct {
	Lo, Hi uint64
	empty  bool
}

// FreeInterval returns the interval denoting the whole ring.
func FreeInterval() Interval { return Interval{} }

// EmptyInterval returns the interval denoting the empty set.
func EmptyInterval() Interval { return Interval{empty: true} }

// NewInterval returns [lo, hi) with both endpoints reduced modulo 2^N.
// Equal endpoints yield the free interval.
func NewInterval(m Ext, lo, hi uint64) Interval {
	lo, hi = m.Mask(lo), m.Mask(hi)
	if lo == hi {
		return FreeInterval()
	}
	return Interval{Lo: lo, Hi: hi}
}

// FixedInterval returns the singleton interval {v}.
func FixedInterval(m Ext, v uint64) Interval {
	return Interval{Lo: m.Mask(v), Hi: m.Add(v, 1)}
}

// IsEmpty reports whether the interval denotes the empty set.
func (i Interval) IsEmpty() bool { return i.empty }

// IsFree reports whether the interval denotes the whole ring.
func (i Interval) IsFree() bool { return !i.empty && i.Lo == i.Hi }

// IsFixed reports whether the interval contains exactly one value.
func (i Interval) IsFixed(m Ext) bool {
	return !i.empty && m.Sub(i.Hi, i.Lo) == 1
}

// Size returns the number of values in the interval. The free interval
// reports 0: the ring size 2^N is not representable for N = 64 and callers
// test IsFree first.
func (i Interval) Size(m Ext) uint64 {
	if i.empty {
		return 0
	}
	return m.Sub(i.Hi, i.Lo)
}

// Contains reports whether v lies in the interval.
func (i Interval) Contains(m Ext, v uint64) bool {
	if i.empty {
		return false
	}
	if i.Lo == i.Hi {
		return true
	}
	v = m.Mask(v)
	if i.Lo < i.Hi {
		return i.Lo <= v && v < i.Hi
	}
	return v >= i.Lo || v < i.Hi
}

// ClosestTo returns the value of the interval nearest to v in wrap-around
// distance: v itself when contained, otherwise the closer of the two
// endpoints. For the empty interval it returns v unchanged.
func (i Interval) ClosestTo(m Ext, v uint64) uint64 {
	if i.empty || i.Contains(m, v) {
		return m.Mask(v)
	}
	if m.Sub(i.Lo, v) < m.Sub(v, i.Hi) {
		return i.Lo
	}
	return m.Sub(i.Hi, 1)
}

// Add returns the interval sum {x + y : x in i, y in o}. The result is free
// when the combined sizes cover the ring.
func (i Interval) Add(m Ext, o Interval) Interval {
	if i.empty {
		return i
	}
	if o.empty {
		return o
	}
	if i.IsFree() {
		return i
	}
	if o.IsFree() {
		return o
	}
	s1 := m.Sub(i.Hi, i.Lo)
	sz := m.Add(s1, m.Sub(o.Hi, o.Lo))
	if sz < s1 || sz == 0 {
		return FreeInterval()
	}
	return Interval{Lo: m.Add(i.Lo, o.Lo), Hi: m.Sub(m.Add(i.Hi, o.Hi), 1)}
}

// MulScalar returns the interval product {k * x : x in i}. The contiguous
// hull of the image is returned; when the scaled span covers the ring the
// result is free.
func (i Interval) MulScalar(m Ext, k uint64) Interval {
	k = m.Mask(k)
	if i.empty {
		return i
	}
	if k == 0 {
		return Interval{Lo: 0, Hi: 1}
	}
	if k == 1 || i.IsFree() {
		return i
	}
	sz := m.Sub(i.Hi, i.Lo)
	// Treat k above the midpoint as the negative scalar -(2^N - k); the
	// image hull is then anchored at the upper endpoint.
	n := k
	neg := false
	if m.Neg(k) < k {
		n = m.Neg(k)
		neg = true
	}
	if sz-1 != 0 && n > m.mask/(sz-1) {
		return FreeInterval()
	}
	if neg {
		return Interval{Lo: m.Mul(k, m.Sub(i.Hi, 1)), Hi: m.Add(m.Mul(k, i.Lo), 1)}
	}
	return Interval{Lo: m.Mul(k, i.Lo), Hi: m.Add(m.Mul(k, m.Sub(i.Hi, 1)), 1)}
}

// Neg returns the interval {-x : x in i}.
func (i Interval) Neg(m Ext) Interval {
	return i.MulScalar(m, m.mask)
}

// Sub returns the interval difference {x - y : x in i, y in o}.
func (i Interval) Sub(m Ext, o Interval) Interval {
	return i.Add(m, o.Neg(m))
}

// Intersect returns a modular interval that contains the exact intersection
// of i and o and is itself contained in i. When the exact intersection
// splits into disjoint arcs (a wrapping bound cutting a plain one), the
// smallest covering interval inside i is chosen: tightening never loses a
// solution and never widens the receiver.
func (i Interval) Intersect(m Ext, o Interval) Interval {
	if i.empty {
		return i
	}
	if o.empty {
		return o
	}
	if i.IsFree() {
		return o
	}
	if o.IsFree() {
		return i
	}
	pieces := intersectPieces(i.pieces(), o.pieces())
	arcs := mergeWrap(pieces)
	switch len(arcs) {
	case 0:
		return EmptyInterval()
	case 1:
		return arcs[0]
	}
	// Disjoint arcs: pick the smallest interval covering all of them that
	// stays inside i. i itself always qualifies.
	best := i
	bestSz := i.Size(m)
	for _, s := range arcs {
		for _, e := range arcs {
			cand := Interval{Lo: s.Lo, Hi: e.Hi}
			if cand.Lo == cand.Hi {
				continue
			}
			if !subsetOf(m, cand, i) {
				continue
			}
			ok := true
			for _, a := range arcs {
				if !subsetOf(m, a, cand) {
					ok = false
					break
				}
			}
			if ok && cand.Size(m) < bestSz {
				best = cand
				bestSz = cand.Size(m)
			}
		}
	}
	return best
}

// piece is a linear half-open range over [0, 2^N); end == 0 stands for 2^N.
type piece struct{ lo, end uint64 }

func (i Interval) pieces() []piece {
	if i.Lo < i.Hi {
		return []piece{{i.Lo, i.Hi}}
	}
	if i.Hi == 0 {
		return []piece{{i.Lo, 0}}
	}
	return []piece{{i.Lo, 0}, {0, i.Hi}}
}

func intersectPieces(ps, qs []piece) []piece {
	var out []piece
	for _, p := range ps {
		for _, q := range qs {
			lo := p.lo
			if q.lo > lo {
				lo = q.lo
			}
			end := p.end
			if end == 0 || (q.end != 0 && q.end < end) {
				end = q.end
			}
			if end == 0 || lo < end {
				out = append(out, piece{lo, end})
			}
		}
	}
	return out
}

// mergeWrap turns linear pieces back into modular intervals, fusing a piece
// that reaches the top of the ring with one that starts at zero.
func mergeWrap(ps []piece) []Interval {
	var top *piece
	var bottom *piece
	var out []Interval
	for idx := range ps {
		p := ps[idx]
		switch {
		case p.end == 0 && p.lo != 0:
			top = &ps[idx]
		case p.lo == 0 && p.end != 0:
			bottom = &ps[idx]
		default:
			out = append(out, Interval{Lo: p.lo, Hi: p.end})
		}
	}
	switch {
	case top != nil && bottom != nil:
		out = append(out, Interval{Lo: top.lo, Hi: bottom.end})
	case top != nil:
		out = append(out, Interval{Lo: top.lo, Hi: 0})
	case bottom != nil:
		out = append(out, Interval{Lo: 0, Hi: bottom.end})
	}
	return out
}

// subsetOf reports whether non-free interval a is contained in non-free
// interval c, both taken as contiguous modular arcs.
func subsetOf(m Ext, a, c Interval) bool {
	szA, szC := a.Size(m), c.Size(m)
	if szA > szC {
		return false
	}
	return m.Sub(a.Lo, c.Lo) <= szC-szA
}

// String renders the interval in half-open notation.
func (i Interval) String() string {
	if i.empty {
		return "{}"
	}
	if i.Lo == i.Hi {
		return "free"
	}
	return fmt.Sprintf("[%d, %d[", i.Lo, i.Hi)
}
