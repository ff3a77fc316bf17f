package row

import (
	"database/sql/driver"

	"github.com/vecsql/vecidx/value"
)

// InRow is one row presented to the index for insertion, update, or
// deletion. Vector is nil when the row's vector column is NULL, which
// makes an insert a no-op rather than "insert a zero vector"; deletion
// uses only Keys.
type InRow struct {
	Vector *value.Vector
	Keys   []driver.Value
}

// LegacyRowID reports the row's key as a plain int64 when it is a
// single-column integer key, for compatibility with callers written
// against the original rowid-only index format. ok is false for any
// composite or non-integer key.
func (r InRow) LegacyRowID() (int64, bool) {
	if len(r.Keys) != 1 {
		return 0, false
	}

	id, ok := r.Keys[0].(int64)

	return id, ok
}
