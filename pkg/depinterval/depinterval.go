// Package depinterval provides dependency-tracked modular interval
// arithmetic and an interval evaluator for decision-diagram-shaped
// polynomials.
//
// An Interval pairs a modular range with the dependency sets of its two
// endpoints. The Manager mirrors every arithmetic operation with and without
// dependency tracking: evaluation without tracking is cheaper and is used
// for exploratory passes, tracking is used when an explanation of a bound
// is required.
package depinterval

import (
	"fmt"

	"github.com/gitrdm/fixplex/pkg/fixplex"
)

// Interval is a modular interval with dependency-tagged endpoints.
type Interval struct {
	Range        fixplex.Interval
	LoDep, HiDep *fixplex.Dep
}

// Lo returns the lower endpoint of the interval.
func (i Interval) Lo() uint64 { return i.Range.Lo }

// Hi returns the upper (exclusive) endpoint of the interval.
func (i Interval) Hi() uint64 { return i.Range.Hi }

// Manager performs dependency-tracked interval arithmetic over a fixed
// modular ring. Dependency nodes are allocated from the given store.
type Manager struct {
	m    fixplex.Ext
	deps *fixplex.DepStore
}

// NewManager returns a manager over the given ring arithmetic and
// dependency store.
func NewManager(m fixplex.Ext, deps *fixplex.DepStore) *Manager {
	return &Manager{m: m, deps: deps}
}

// ScalarInterval returns the singleton interval {c} with no dependencies.
func (mg *Manager) ScalarInterval(c uint64) Interval {
	return Interval{Range: fixplex.FixedInterval(mg.m, c)}
}

func (mg *Manager) joined(withDeps bool, a, b Interval) (*fixplex.Dep, *fixplex.Dep) {
	if !withDeps {
		return nil, nil
	}
	lo := mg.deps.Join(a.LoDep, b.LoDep)
	hi := mg.deps.Join(a.HiDep, b.HiDep)
	return lo, hi
}

// Add returns the interval sum. With dependency tracking the result's
// endpoints depend on both operands' endpoints.
func (mg *Manager) Add(a, b Interval, withDeps bool) Interval {
	lo, hi := mg.joined(withDeps, a, b)
	return Interval{Range: a.Range.Add(mg.m, b.Range), LoDep: lo, HiDep: hi}
}

// Sub returns the interval difference.
func (mg *Manager) Sub(a, b Interval, withDeps bool) Interval {
	lo, hi := mg.joined(withDeps, a, b)
	return Interval{Range: a.Range.Sub(mg.m, b.Range), LoDep: lo, HiDep: hi}
}

// Mul returns a sound over-approximation of the interval product. A fixed
// operand multiplies the other by its scalar value; the product of two
// proper intervals widens to free.
func (mg *Manager) Mul(a, b Interval, withDeps bool) Interval {
	lo, hi := mg.joined(withDeps, a, b)
	var r fixplex.Interval
	switch {
	case a.Range.IsEmpty():
		r = a.Range
	case b.Range.IsEmpty():
		r = b.Range
	case a.Range.IsFixed(mg.m):
		r = b.Range.MulScalar(mg.m, a.Range.Lo)
	case b.Range.IsFixed(mg.m):
		r = a.Range.MulScalar(mg.m, b.Range.Lo)
	default:
		r = fixplex.FreeInterval()
	}
	return Interval{Range: r, LoDep: lo, HiDep: hi}
}

// MulScalar scales the interval by c, keeping a's dependencies.
func (mg *Manager) MulScalar(a Interval, c uint64) Interval {
	return Interval{Range: a.Range.MulScalar(mg.m, c), LoDep: a.LoDep, HiDep: a.HiDep}
}

// DivScalar divides the interval by an odd scalar via its odd inverse.
func (mg *Manager) DivScalar(a Interval, c uint64) (Interval, error) {
	inv, err := mg.m.OddInverse(c)
	if err != nil {
		return Interval{}, fmt.Errorf("depinterval: cannot divide by %d: %w", c, err)
	}
	return Interval{Range: a.Range.MulScalar(mg.m, inv), LoDep: a.LoDep, HiDep: a.HiDep}, nil
}

// Intersect narrows a by b, joining b's dependencies onto the endpoints the
// narrowing moved.
func (mg *Manager) Intersect(a, b Interval) Interval {
	r := a.Range.Intersect(mg.m, b.Range)
	out := Interval{Range: r, LoDep: a.LoDep, HiDep: a.HiDep}
	if r.Lo != a.Range.Lo || r.IsEmpty() {
		out.LoDep = mg.deps.Join(a.LoDep, mg.deps.Join(b.LoDep, b.HiDep))
	}
	if r.Hi != a.Range.Hi || r.IsEmpty() {
		out.HiDep = mg.deps.Join(a.HiDep, mg.deps.Join(b.LoDep, b.HiDep))
	}
	return out
}
