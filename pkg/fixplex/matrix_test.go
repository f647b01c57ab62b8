package fixplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkCrossLinks verifies row/column index consistency.
func checkCrossLinks(t *testing.T, mx *matrix) {
	t.Helper()
	for v := range mx.cols {
		for _, ce := range mx.cols[v] {
			require.True(t, mx.rowAlive(ce.row))
			e := mx.rows[ce.row][ce.rowPos]
			require.Equal(t, v, e.v)
		}
	}
	for r := range mx.rows {
		if !mx.rowAlive(r) {
			continue
		}
		for pos, e := range mx.rows[r] {
			ce := mx.cols[e.v][e.colPos]
			require.Equal(t, r, ce.row)
			require.Equal(t, pos, ce.rowPos)
		}
	}
}

func TestMatrixAddVarMerges(t *testing.T) {
	mx := newMatrix(Uint8())
	mx.ensureVar(5)
	r := mx.mkRow()

	mx.addVar(r, 3, 5)
	mx.addVar(r, 4, 5)
	require.Len(t, mx.rowEntries(r), 1)
	assert.Equal(t, uint64(7), mx.rowEntries(r)[0].coeff)

	// Merging to zero drops the entry and its column link.
	mx.addVar(r, 249, 5)
	assert.Empty(t, mx.rowEntries(r))
	assert.Equal(t, 0, mx.columnSize(5))
	checkCrossLinks(t, mx)
}

func TestMatrixMulRowDropsZeros(t *testing.T) {
	mx := newMatrix(Uint8())
	mx.ensureVar(2)
	r := mx.mkRow()
	mx.addVar(r, 2, 0)   // 2 * 128 = 0 mod 256
	mx.addVar(r, 3, 1)   // survives
	mx.addVar(r, 128, 2) // 128 * 128 = 0 mod 256

	mx.mulRow(r, 128)
	require.Len(t, mx.rowEntries(r), 1)
	assert.Equal(t, 1, mx.rowEntries(r)[0].v)
	assert.Equal(t, uint64(128), mx.rowEntries(r)[0].coeff) // 3*128 mod 256
	checkCrossLinks(t, mx)
}

func TestMatrixAddRowMul(t *testing.T) {
	mx := newMatrix(Uint8())
	mx.ensureVar(3)
	r1 := mx.mkRow()
	mx.addVar(r1, 1, 0)
	mx.addVar(r1, 1, 1)

	r2 := mx.mkRow()
	mx.addVar(r2, 2, 1)
	mx.addVar(r2, 5, 2)

	// r2 += -2 * r1: the entry of var 1 cancels, var 0 appears.
	mx.addRowMul(r2, 254, r1)
	assert.Equal(t, -1, mx.findInRow(r2, 1))
	p0 := mx.findInRow(r2, 0)
	require.GreaterOrEqual(t, p0, 0)
	assert.Equal(t, uint64(254), mx.rowEntries(r2)[p0].coeff)
	p2 := mx.findInRow(r2, 2)
	assert.Equal(t, uint64(5), mx.rowEntries(r2)[p2].coeff)
	assert.Equal(t, 1, mx.columnSize(1))
	checkCrossLinks(t, mx)
}

func TestMatrixDelRowRecycles(t *testing.T) {
	mx := newMatrix(Uint8())
	mx.ensureVar(1)
	r := mx.mkRow()
	mx.addVar(r, 1, 0)
	mx.addVar(r, 1, 1)

	mx.delRow(r)
	assert.False(t, mx.rowAlive(r))
	assert.Equal(t, 0, mx.columnSize(0))
	assert.Equal(t, 0, mx.columnSize(1))

	r2 := mx.mkRow()
	assert.Equal(t, r, r2)
	checkCrossLinks(t, mx)
}
