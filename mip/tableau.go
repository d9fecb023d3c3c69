package mip

import "fmt"

// tableau is the simplex method's dense working storage: a row-major
// matrix of float64 values with a flat backing slice, grounded on the
// teacher's matrix.Dense (row-major storage, bounds-checked indexOf,
// At/Set accessors) rather than a reused library type — see DESIGN.md
// for why the retrieved matrix package itself could not be reused.
//
// The last column is the RHS; the last row is the objective (z-row).
type tableau struct {
	rows, cols int
	data       []float64
}

// newTableau allocates a zeroed rows×cols tableau.
//
// Complexity: O(rows*cols) time and memory.
func newTableau(rows, cols int) *tableau {
	return &tableau{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// indexOf computes the flat offset for (row, col), panicking on an
// out-of-range index: a bad index here is always an internal bug in the
// simplex driver, never caller input, so there is no sentinel-error path.
func (t *tableau) indexOf(row, col int) int {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		panic(fmt.Sprintf("mip: tableau index (%d,%d) out of bounds for %dx%d", row, col, t.rows, t.cols))
	}
	return row*t.cols + col
}

// at returns the element at (row, col).
func (t *tableau) at(row, col int) float64 { return t.data[t.indexOf(row, col)] }

// set stores v at (row, col).
func (t *tableau) set(row, col int, v float64) { t.data[t.indexOf(row, col)] = v }

// objRow is the index of the tableau's last row, the z-row.
func (t *tableau) objRow() int { return t.rows - 1 }

// rhsCol is the index of the tableau's last column.
func (t *tableau) rhsCol() int { return t.cols - 1 }

// pivot performs a Gauss-Jordan elimination step around (pivotRow,
// pivotCol): normalize the pivot row so the pivot entry becomes 1, then
// subtract a multiple of the pivot row from every other row (including
// the objective row) to zero out pivotCol everywhere else.
//
// Complexity: O(rows*cols).
func (t *tableau) pivot(pivotRow, pivotCol int) {
	pv := t.at(pivotRow, pivotCol)
	for c := 0; c < t.cols; c++ {
		t.set(pivotRow, c, t.at(pivotRow, c)/pv)
	}
	for r := 0; r < t.rows; r++ {
		if r == pivotRow {
			continue
		}
		factor := t.at(r, pivotCol)
		if factor == 0 {
			continue
		}
		for c := 0; c < t.cols; c++ {
			t.set(r, c, t.at(r, c)-factor*t.at(pivotRow, c))
		}
	}
}
