package engine

import (
	"context"
	"fmt"

	"github.com/vecsql/vecidx/key"
	"github.com/vecsql/vecidx/row"
	"github.com/vecsql/vecidx/section"
	"github.com/vecsql/vecidx/value"
)

// Index is the graph engine's contract: an opaque handle that owns its
// own shadow tables under the given schema/name and supports create,
// drop, clear, open/close, insert, delete, and search.
//
// The lifecycle in package vecindex never reaches into an Index's
// internals; every interaction goes through these methods.
type Index interface {
	// Create provisions whatever on-disk structures this engine needs
	// for a new index. The lifecycle calls it before persisting the
	// parameter row. If the structures already exist, FlatIndex leaves
	// them in place and returns nil.
	Create(ctx context.Context, schema, name string, keyDesc key.Descriptor, params *section.Params) error

	// Drop removes an index's on-disk structures. Implementations should
	// tolerate being called on an index that was never fully created
	// (the lifecycle calls Drop defensively on cleanup paths).
	Drop(ctx context.Context, schema, name string) error

	// Clear empties an index's contents without removing its structures.
	Clear(ctx context.Context, schema, name string) error

	// Open returns a handle for subsequent Insert/Delete/Search/Close
	// calls against an existing index.
	Open(ctx context.Context, schema, name string, params *section.Params) (Handle, error)
}

// Handle is a per-session cursor into one open index.
type Handle interface {
	// Insert adds or updates row's entry. Insert is a no-op when
	// row.Vector is nil.
	Insert(ctx context.Context, r row.InRow) error

	// Delete removes row's entry, identified by its key columns alone
	// (row.Vector is ignored).
	Delete(ctx context.Context, r row.InRow) error

	// Search runs an approximate (or, for FlatIndex, exact) nearest
	// neighbor query and returns up to k results.
	Search(ctx context.Context, query *value.Vector, k int, keyDesc key.Descriptor) (*row.OutRows, error)

	// Rows returns every row currently stored, for package archive's
	// snapshot export. Order is unspecified.
	Rows(ctx context.Context) ([]row.InRow, error)

	// Close releases the handle. Subsequent calls on it are invalid.
	Close(ctx context.Context) error
}

// ErrNotOpen is returned by a Handle method after Close.
var ErrNotOpen = fmt.Errorf("engine: handle is not open")
