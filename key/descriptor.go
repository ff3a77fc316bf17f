package key

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vecsql/vecidx/errs"
	"github.com/vecsql/vecidx/format"
)

// MaxKeyColumns is the largest number of columns a composite primary
// key may contribute to a vector index's key.
const MaxKeyColumns = 16

// Column describes one key column: its SQL type affinity and its
// collating sequence name.
type Column struct {
	Affinity  format.Affinity
	Collation string
}

// Descriptor describes the ordered set of columns that key every row of
// a vector index's host table.
type Descriptor struct {
	Columns []Column
}

// FromRowID returns the Descriptor for a table with an implicit rowid:
// a single INTEGER column under BINARY collation.
func FromRowID() Descriptor {
	return Descriptor{Columns: []Column{{Affinity: format.AffinityInteger, Collation: "BINARY"}}}
}

// FromPrimaryKey returns the Descriptor for a WITHOUT ROWID table keyed
// by the given primary key columns, in declaration order.
func FromPrimaryKey(cols []Column) (Descriptor, error) {
	if len(cols) > MaxKeyColumns {
		return Descriptor{}, fmt.Errorf("%w: %d > %d", errs.ErrTooManyKeyColumns, len(cols), MaxKeyColumns)
	}

	out := make([]Column, len(cols))
	copy(out, cols)

	return Descriptor{Columns: out}, nil
}

// NumColumns returns the number of key columns.
func (d Descriptor) NumColumns() int { return len(d.Columns) }

// IsRowID reports whether d describes the single-column implicit
// rowid shape.
func (d Descriptor) IsRowID() bool {
	return len(d.Columns) == 1 &&
		d.Columns[0].Affinity == format.AffinityInteger &&
		strings.EqualFold(d.Columns[0].Collation, "BINARY")
}

// RenderDefs renders the key columns as typed column definitions
// suitable for a CREATE TABLE statement, e.g. "key INTEGER,key1 TEXT".
// The first column is named prefix; subsequent columns are named
// prefix+index (prefix1, prefix2, ...).
func (d Descriptor) RenderDefs(prefix string) string {
	var b strings.Builder
	for i, col := range d.Columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(columnName(prefix, i))
		b.WriteByte(' ')
		b.WriteString(col.Affinity.String())
		if collation := col.Collation; collation != "" && !strings.EqualFold(collation, "BINARY") {
			b.WriteString(" COLLATE ")
			b.WriteString(collation)
		}
	}

	return b.String()
}

// RenderNames renders the bare key column names, e.g. "key,key1".
func (d Descriptor) RenderNames(prefix string) string {
	var b strings.Builder
	for i := range d.Columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(columnName(prefix, i))
	}

	return b.String()
}

// RenderPlaceholders renders one '?' bind placeholder per key column,
// e.g. "?,?,?".
func (d Descriptor) RenderPlaceholders() string {
	return strings.TrimSuffix(strings.Repeat("?,", len(d.Columns)), ",")
}

func columnName(prefix string, i int) string {
	if i == 0 {
		return prefix
	}

	return prefix + strconv.Itoa(i)
}
