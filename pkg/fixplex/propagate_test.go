package fixplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropagateRowSingleFreeVar(t *testing.T) {
	s := NewSolver(Uint8())
	const x, y = 0, 1

	require.NoError(t, s.AddRow(x, []Term{{x, 1}, {y, 1}}))
	s.SetBounds(y, 10, 20, 1)

	res := s.PropagateBounds()
	require.Equal(t, Sat, res)

	// x = -y for y in [10, 20), so x ranges over [-19, -9) = [237, 247).
	assert.Equal(t, NewInterval(s.Ext(), 237, 247), s.Bounds(x))
	require.NoError(t, s.wellFormed())
}

func TestPropagateRowFixesVariable(t *testing.T) {
	s := NewSolver(Uint8())
	const x, y = 0, 1

	require.NoError(t, s.AddRow(x, []Term{{x, 1}, {y, 1}}))
	s.SetValue(y, 10, 1)

	require.Equal(t, Sat, s.PropagateBounds())
	assert.True(t, s.Bounds(x).IsFixed(s.Ext()))
	assert.Equal(t, uint64(246), s.Bounds(x).Lo)
}

func TestPropagateRowConflict(t *testing.T) {
	s := NewSolver(Uint8())
	const x, y = 0, 1

	require.NoError(t, s.AddRow(x, []Term{{x, 1}, {y, 1}}))
	s.SetValue(x, 1, 1)
	s.SetValue(y, 1, 2)

	// x + y = 0 contradicts x = y = 1.
	res := s.PropagateBounds()
	require.Equal(t, Unsat, res)
	assert.Subset(t, s.UnsatCore(), []int{1})
	assert.Subset(t, s.UnsatCore(), []int{2})
}

func TestPropagateRowEvenCoefficientSkipped(t *testing.T) {
	s := NewSolver(Uint8())
	const x, y = 0, 1

	require.NoError(t, s.AddRow(x, []Term{{x, 2}, {y, 1}}))
	s.SetBounds(y, 10, 20, 1)

	// The free variable x sits behind an even coefficient: no tightening,
	// no conflict.
	require.Equal(t, Sat, s.PropagateBounds())
	assert.True(t, s.Bounds(x).IsFree())
}

func TestPropagateStrictIneqTightens(t *testing.T) {
	s := NewSolver(Uint8())
	const x, y = 0, 1

	s.AddIneq(x, y, 1, true)
	require.Equal(t, Sat, s.PropagateBounds())

	// x < y over free variables: y cannot be 0 and x cannot be 255.
	assert.False(t, s.Bounds(y).Contains(s.Ext(), 0))
	assert.False(t, s.Bounds(x).Contains(s.Ext(), 255))
}

func TestPropagateNonStrictFromBounds(t *testing.T) {
	s := NewSolver(Uint8())
	const x, y = 0, 1

	s.SetBounds(x, 100, 110, 1)
	s.SetBounds(y, 0, 200, 2)
	s.AddIneq(x, y, 3, false)

	require.Equal(t, Sat, s.PropagateBounds())

	// x <= y pushes y's lower bound up to x's.
	assert.GreaterOrEqual(t, s.Bounds(y).Lo, uint64(100))
	assert.True(t, s.Bounds(y).Contains(s.Ext(), 150))
}

func TestPropagateNonStrictConflict(t *testing.T) {
	s := NewSolver(Uint8())
	const x, y = 0, 1

	s.SetBounds(x, 100, 110, 1)
	s.SetBounds(y, 10, 20, 2)
	s.AddIneq(x, y, 3, false)

	// lo(x) >= hi(y): no model for x <= y.
	res := s.PropagateBounds()
	require.Equal(t, Unsat, res)
	assert.Subset(t, s.UnsatCore(), []int{3})
}

func TestPropagateBoundsIdempotentAfterFixpoint(t *testing.T) {
	s := NewSolver(Uint8())
	const x, y = 0, 1

	s.SetBounds(x, 50, 60, 1)
	s.AddIneq(x, y, 2, false)
	require.Equal(t, Sat, s.PropagateBounds())

	ivlX, ivlY := s.Bounds(x), s.Bounds(y)
	require.Equal(t, Sat, s.PropagateBounds())
	assert.Equal(t, ivlX, s.Bounds(x))
	assert.Equal(t, ivlY, s.Bounds(y))
}
