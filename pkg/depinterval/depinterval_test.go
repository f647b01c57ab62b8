package depinterval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/fixplex/pkg/fixplex"
)

func newManager() (*Manager, fixplex.Ext, *fixplex.DepStore) {
	m := fixplex.Uint8()
	deps := fixplex.NewDepStore()
	return NewManager(m, deps), m, deps
}

func TestScalarInterval(t *testing.T) {
	mg, m, _ := newManager()

	ivl := mg.ScalarInterval(7)
	assert.True(t, ivl.Range.IsFixed(m))
	assert.Equal(t, uint64(7), ivl.Lo())
	assert.Nil(t, ivl.LoDep)
}

func TestAddTracksDeps(t *testing.T) {
	mg, m, deps := newManager()

	a := Interval{Range: fixplex.NewInterval(m, 1, 5), LoDep: deps.Leaf(1)}
	b := Interval{Range: fixplex.NewInterval(m, 2, 4), HiDep: deps.Leaf(2)}

	sum := mg.Add(a, b, true)
	assert.Equal(t, fixplex.NewInterval(m, 3, 8), sum.Range)
	assert.Equal(t, []int{1}, deps.Linearize(sum.LoDep))
	assert.Equal(t, []int{2}, deps.Linearize(sum.HiDep))

	bare := mg.Add(a, b, false)
	assert.Nil(t, bare.LoDep)
	assert.Nil(t, bare.HiDep)
}

func TestMulWidens(t *testing.T) {
	mg, m, _ := newManager()

	fixed := Interval{Range: fixplex.FixedInterval(m, 3)}
	ivl := Interval{Range: fixplex.NewInterval(m, 1, 5)}

	prod := mg.Mul(fixed, ivl, false)
	assert.Equal(t, fixplex.NewInterval(m, 3, 13), prod.Range)

	wide := mg.Mul(ivl, ivl, false)
	assert.True(t, wide.Range.IsFree())
}

func TestDivScalar(t *testing.T) {
	mg, m, _ := newManager()

	ivl := Interval{Range: fixplex.NewInterval(m, 3, 10)}
	got, err := mg.DivScalar(ivl, 3)
	require.NoError(t, err)
	// Dividing by 3 maps 3x back onto x: every x with 3x in the source
	// interval is covered.
	for x := uint64(0); x < 256; x++ {
		if ivl.Range.Contains(m, m.Mul(3, x)) {
			assert.True(t, got.Range.Contains(m, x), "x=%d", x)
		}
	}

	_, err = mg.DivScalar(ivl, 2)
	assert.Error(t, err)
}

func TestIntersectJoinsDeps(t *testing.T) {
	mg, m, deps := newManager()

	a := Interval{Range: fixplex.NewInterval(m, 0, 100), LoDep: deps.Leaf(1), HiDep: deps.Leaf(2)}
	b := Interval{Range: fixplex.NewInterval(m, 50, 200), LoDep: deps.Leaf(3)}

	got := mg.Intersect(a, b)
	assert.Equal(t, fixplex.NewInterval(m, 50, 100), got.Range)
	assert.Contains(t, deps.Linearize(got.LoDep), 3)
	assert.Equal(t, []int{2}, deps.Linearize(got.HiDep))
}
