// Package row bridges the opaque graph engine (package engine) and the
// host table's rows: converting an inbound row (a vector plus its key
// columns) into engine-ready form, and collecting search results back
// into a SQL-consumable result set.
//
// InRow models one write-side row: an optional vector (NULL makes an
// insert a no-op) and its key column values.
//
// OutRows models a read-side result set returned by a search or scan.
// It is a sum type over two physical layouts chosen once, at
// allocation time, by the key's shape:
//
//   - a single []int64 when the key is the bare integer rowid (the
//     overwhelmingly common case), avoiding an allocation per cell;
//   - a flat, row-major []driver.Value for every other key shape.
package row
