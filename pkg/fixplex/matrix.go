package fixplex

// The tableau matrix is doubly indexed: every row stores its non-zero
// (variable, coefficient) entries, and every variable column stores back
// references to the rows containing it. Each row entry knows its position in
// the column list and vice versa, so entries can be unlinked in O(1) by
// swap-removal with backreference fixup. Row scaling and row combination
// drop entries whose coefficient becomes zero and keep both indexes
// consistent.

type rowEntry struct {
	v      int
	coeff  uint64
	colPos int
}

type colEntry struct {
	row    int
	rowPos int
}

type matrix struct {
	m        Ext
	rows     [][]rowEntry
	alive    []bool
	freeRows []int
	cols     [][]colEntry
}

func newMatrix(m Ext) *matrix {
	return &matrix{m: m}
}

func (mx *matrix) ensureVar(v int) {
	for v >= len(mx.cols) {
		mx.cols = append(mx.cols, nil)
	}
}

// mkRow allocates a row id, reusing ids of deleted rows.
func (mx *matrix) mkRow() int {
	if n := len(mx.freeRows); n > 0 {
		r := mx.freeRows[n-1]
		mx.freeRows = mx.freeRows[:n-1]
		mx.alive[r] = true
		return r
	}
	mx.rows = append(mx.rows, nil)
	mx.alive = append(mx.alive, true)
	return len(mx.rows) - 1
}

func (mx *matrix) rowAlive(r int) bool {
	return r < len(mx.alive) && mx.alive[r]
}

func (mx *matrix) numRows() int { return len(mx.rows) }

// rowEntries exposes the live entry slice of a row. Callers must not add or
// remove entries while ranging over it.
func (mx *matrix) rowEntries(r int) []rowEntry { return mx.rows[r] }

// colEntries exposes the live column of a variable. Callers that mutate rows
// while walking a column must iterate a snapshot instead.
func (mx *matrix) colEntries(v int) []colEntry { return mx.cols[v] }

func (mx *matrix) columnSize(v int) int { return len(mx.cols[v]) }

func (mx *matrix) coeffOf(ce colEntry) uint64 {
	return mx.rows[ce.row][ce.rowPos].coeff
}

// findInRow returns the position of v's entry in row r, or -1.
func (mx *matrix) findInRow(r, v int) int {
	for pos, e := range mx.rows[r] {
		if e.v == v {
			return pos
		}
	}
	return -1
}

// addVar adds coeff*v to row r, merging with an existing entry for v and
// dropping the entry if the merged coefficient is zero.
func (mx *matrix) addVar(r int, coeff uint64, v int) {
	coeff = mx.m.Mask(coeff)
	if coeff == 0 {
		return
	}
	mx.ensureVar(v)
	if pos := mx.findInRow(r, v); pos >= 0 {
		merged := mx.m.Add(mx.rows[r][pos].coeff, coeff)
		if merged == 0 {
			mx.removeEntry(r, pos)
		} else {
			mx.rows[r][pos].coeff = merged
		}
		return
	}
	mx.appendEntry(r, coeff, v)
}

func (mx *matrix) appendEntry(r int, coeff uint64, v int) {
	mx.rows[r] = append(mx.rows[r], rowEntry{v: v, coeff: coeff, colPos: len(mx.cols[v])})
	mx.cols[v] = append(mx.cols[v], colEntry{row: r, rowPos: len(mx.rows[r]) - 1})
}

// removeEntry unlinks the entry at position pos of row r from both indexes.
func (mx *matrix) removeEntry(r, pos int) {
	e := mx.rows[r][pos]

	// Unlink from the column by swap-removal.
	col := mx.cols[e.v]
	last := len(col) - 1
	if e.colPos != last {
		moved := col[last]
		col[e.colPos] = moved
		mx.rows[moved.row][moved.rowPos].colPos = e.colPos
	}
	mx.cols[e.v] = col[:last]

	// Unlink from the row by swap-removal.
	row := mx.rows[r]
	last = len(row) - 1
	if pos != last {
		moved := row[last]
		row[pos] = moved
		mx.cols[moved.v][moved.colPos].rowPos = pos
	}
	mx.rows[r] = row[:last]
}

// mulRow multiplies every coefficient of row r by k, dropping entries that
// vanish (k even against a high-parity coefficient).
func (mx *matrix) mulRow(r int, k uint64) {
	k = mx.m.Mask(k)
	if k == 1 {
		return
	}
	pos := 0
	for pos < len(mx.rows[r]) {
		c := mx.m.Mul(mx.rows[r][pos].coeff, k)
		if c == 0 {
			mx.removeEntry(r, pos)
			continue
		}
		mx.rows[r][pos].coeff = c
		pos++
	}
}

// addRowMul performs target += k * source entry-wise. target and source must
// be distinct rows.
func (mx *matrix) addRowMul(target int, k uint64, source int) {
	k = mx.m.Mask(k)
	if k == 0 {
		return
	}
	src := mx.rows[source]
	for i := range src {
		v := src[i].v
		d := mx.m.Mul(k, src[i].coeff)
		if d == 0 {
			continue
		}
		if pos := mx.findInRow(target, v); pos >= 0 {
			merged := mx.m.Add(mx.rows[target][pos].coeff, d)
			if merged == 0 {
				mx.removeEntry(target, pos)
			} else {
				mx.rows[target][pos].coeff = merged
			}
			continue
		}
		mx.appendEntry(target, d, v)
	}
}

// delRow unlinks every entry of r and recycles the row id.
func (mx *matrix) delRow(r int) {
	for len(mx.rows[r]) > 0 {
		mx.removeEntry(r, len(mx.rows[r])-1)
	}
	mx.alive[r] = false
	mx.freeRows = append(mx.freeRows, r)
}
