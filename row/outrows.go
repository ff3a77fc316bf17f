package row

import (
	"database/sql/driver"
	"fmt"

	"github.com/vecsql/vecidx/errs"
	"github.com/vecsql/vecidx/format"
)

// MaxCells bounds nRows*nCols for a single OutRows allocation, guarding
// against a pathological search/scan request materializing an
// unreasonably large result set.
const MaxCells = 4_000_000

// OutRows is a result set of nRows rows by nCols columns. Use NewOutRows
// to allocate one; the zero value is not valid.
type OutRows struct {
	nRows, nCols int
	ints         []int64        // set when nCols == 1 and firstColAff == Integer
	cells        []driver.Value // nRows*nCols, row-major, otherwise
}

// NewOutRows allocates an OutRows for nRows rows of nCols columns.
// firstColAff is the affinity of the first (key) column, used to select
// the packed []int64 fast path when possible.
func NewOutRows(nRows, nCols int, firstColAff format.Affinity) (*OutRows, error) {
	if nRows < 0 || nCols <= 0 {
		return nil, fmt.Errorf("row: invalid shape %dx%d", nRows, nCols)
	}
	if nRows*nCols > MaxCells {
		return nil, fmt.Errorf("%w: %d cells requested, max %d", errs.ErrTooManyRows, nRows*nCols, MaxCells)
	}

	out := &OutRows{nRows: nRows, nCols: nCols}
	if nCols == 1 && firstColAff == format.AffinityInteger {
		out.ints = make([]int64, nRows)
	} else {
		out.cells = make([]driver.Value, nRows*nCols)
	}

	return out, nil
}

// NumRows returns the row count.
func (r *OutRows) NumRows() int { return r.nRows }

// NumCols returns the column count.
func (r *OutRows) NumCols() int { return r.nCols }

// PutInt stores an integer value for row rowIdx. It panics if the
// OutRows was not allocated in the packed-int layout; callers should
// check via IsPacked first.
func (r *OutRows) PutInt(rowIdx int, value int64) {
	r.ints[rowIdx] = value
}

// Put stores a value at (row, col) in the dense cell layout.
func (r *OutRows) Put(rowIdx, colIdx int, value driver.Value) {
	r.cells[rowIdx*r.nCols+colIdx] = value
}

// IsPacked reports whether this OutRows uses the single-column integer
// fast path.
func (r *OutRows) IsPacked() bool { return r.ints != nil }

// Get returns the value at (row, col), regardless of internal layout.
func (r *OutRows) Get(rowIdx, colIdx int) driver.Value {
	if r.ints != nil {
		return r.ints[rowIdx]
	}

	return r.cells[rowIdx*r.nCols+colIdx]
}
