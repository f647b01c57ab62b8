package fixplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalClassification(t *testing.T) {
	m := Uint8()

	assert.True(t, FreeInterval().IsFree())
	assert.False(t, FreeInterval().IsEmpty())
	assert.True(t, EmptyInterval().IsEmpty())
	assert.False(t, EmptyInterval().IsFree())
	assert.True(t, NewInterval(m, 5, 5).IsFree())
	assert.True(t, FixedInterval(m, 42).IsFixed(m))
	assert.False(t, NewInterval(m, 5, 7).IsFixed(m))
	assert.True(t, NewInterval(m, 255, 0).IsFixed(m))
}

func TestIntervalContains(t *testing.T) {
	m := Uint8()

	tests := []struct {
		name string
		ivl  Interval
		v    uint64
		want bool
	}{
		{"plain inside", NewInterval(m, 10, 20), 15, true},
		{"plain low edge", NewInterval(m, 10, 20), 10, true},
		{"plain high edge", NewInterval(m, 10, 20), 20, false},
		{"plain outside", NewInterval(m, 10, 20), 5, false},
		{"wrap high arc", NewInterval(m, 200, 50), 250, true},
		{"wrap low arc", NewInterval(m, 200, 50), 10, true},
		{"wrap hole", NewInterval(m, 200, 50), 100, false},
		{"upper arc", NewInterval(m, 200, 0), 255, true},
		{"upper arc miss", NewInterval(m, 200, 0), 0, false},
		{"free", FreeInterval(), 123, true},
		{"empty", EmptyInterval(), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ivl.Contains(m, tt.v))
		})
	}
}

func TestIntervalAdd(t *testing.T) {
	m := Uint8()

	sum := NewInterval(m, 10, 20).Add(m, NewInterval(m, 15, 25))
	assert.Equal(t, NewInterval(m, 25, 44), sum)

	// Sizes covering the ring widen to free.
	assert.True(t, NewInterval(m, 0, 200).Add(m, NewInterval(m, 0, 100)).IsFree())

	// Identity elements.
	assert.True(t, FreeInterval().Add(m, NewInterval(m, 1, 2)).IsFree())
	assert.True(t, NewInterval(m, 1, 2).Add(m, EmptyInterval()).IsEmpty())

	// Wrapping operands stay sound: every pairwise sum is contained.
	a, b := NewInterval(m, 250, 5), NewInterval(m, 3, 10)
	sum = a.Add(m, b)
	for x := uint64(0); x < 256; x++ {
		if !a.Contains(m, x) {
			continue
		}
		for y := uint64(0); y < 256; y++ {
			if b.Contains(m, y) {
				assert.True(t, sum.Contains(m, m.Add(x, y)), "x=%d y=%d", x, y)
			}
		}
	}
}

func TestIntervalMulScalar(t *testing.T) {
	m := Uint8()

	assert.Equal(t, NewInterval(m, 0, 1), NewInterval(m, 10, 20).MulScalar(m, 0))
	assert.Equal(t, NewInterval(m, 10, 20), NewInterval(m, 10, 20).MulScalar(m, 1))
	assert.Equal(t, NewInterval(m, 20, 39), NewInterval(m, 10, 20).MulScalar(m, 2))

	// Negative scalar anchors the hull at the upper endpoint.
	assert.Equal(t, NewInterval(m, 237, 247), NewInterval(m, 10, 20).MulScalar(m, 255))

	// A scaled span covering the ring widens to free.
	assert.True(t, NewInterval(m, 0, 129).MulScalar(m, 2).IsFree())

	// Soundness: the image of every element is contained.
	ivl := NewInterval(m, 30, 70)
	for _, k := range []uint64{2, 3, 5, 254, 255} {
		got := ivl.MulScalar(m, k)
		for x := uint64(30); x < 70; x++ {
			assert.True(t, got.Contains(m, m.Mul(k, x)), "k=%d x=%d", k, x)
		}
	}
}

func TestIntervalNegSub(t *testing.T) {
	m := Uint8()

	neg := NewInterval(m, 1, 2).Neg(m)
	assert.Equal(t, NewInterval(m, 255, 0), neg)

	diff := NewInterval(m, 2, 3).Sub(m, NewInterval(m, 1, 2))
	assert.True(t, diff.Contains(m, 1))
	assert.Equal(t, uint64(1), diff.Size(m))
}

func TestIntervalIntersect(t *testing.T) {
	m := Uint8()

	tests := []struct {
		name string
		a, b Interval
		want Interval
	}{
		{"plain overlap", NewInterval(m, 10, 20), NewInterval(m, 15, 25), NewInterval(m, 15, 20)},
		{"plain disjoint", NewInterval(m, 10, 20), NewInterval(m, 30, 40), EmptyInterval()},
		{"free right", NewInterval(m, 10, 20), FreeInterval(), NewInterval(m, 10, 20)},
		{"free left", FreeInterval(), NewInterval(m, 10, 20), NewInterval(m, 10, 20)},
		{"empty", EmptyInterval(), NewInterval(m, 10, 20), EmptyInterval()},
		{"wrap and plain", NewInterval(m, 200, 50), NewInterval(m, 100, 220), NewInterval(m, 200, 220)},
		{"both wrap", NewInterval(m, 200, 50), NewInterval(m, 220, 40), NewInterval(m, 220, 40)},
		{"wrap hits low arc", NewInterval(m, 200, 50), NewInterval(m, 10, 40), NewInterval(m, 10, 40)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersect(m, tt.b))
		})
	}
}

func TestIntervalIntersectTwoArcs(t *testing.T) {
	m := Uint8()

	// A plain bound cutting the hole of a wrapping receiver yields two arcs;
	// the result must contain both and stay inside the receiver.
	a := NewInterval(m, 200, 50)
	b := NewInterval(m, 10, 230)
	got := a.Intersect(m, b)
	for x := uint64(0); x < 256; x++ {
		if a.Contains(m, x) && b.Contains(m, x) {
			assert.True(t, got.Contains(m, x), "x=%d missing", x)
		}
		if got.Contains(m, x) {
			assert.True(t, a.Contains(m, x), "x=%d escaped the receiver", x)
		}
	}

	// A wrapping bound splitting a plain receiver keeps the receiver.
	a = NewInterval(m, 10, 100)
	b = NewInterval(m, 80, 20)
	got = a.Intersect(m, b)
	assert.Equal(t, a, got)
}

func TestIntervalClosestTo(t *testing.T) {
	m := Uint8()
	ivl := NewInterval(m, 10, 20)

	assert.Equal(t, uint64(15), ivl.ClosestTo(m, 15))
	assert.Equal(t, uint64(10), ivl.ClosestTo(m, 5))
	assert.Equal(t, uint64(19), ivl.ClosestTo(m, 25))
	assert.Equal(t, uint64(10), ivl.ClosestTo(m, 250)) // wraps toward lo

	wrap := NewInterval(m, 250, 5)
	assert.Equal(t, uint64(250), wrap.ClosestTo(m, 240))
	assert.Equal(t, uint64(4), wrap.ClosestTo(m, 10))
}

func TestIntervalString(t *testing.T) {
	m := Uint8()
	assert.Equal(t, "[10, 20[", NewInterval(m, 10, 20).String())
	assert.Equal(t, "free", FreeInterval().String())
	assert.Equal(t, "{}", EmptyInterval().String())
}
