package vecindex

import (
	"context"
	"errors"
	"strings"

	"github.com/vecsql/vecidx/engine"
	"github.com/vecsql/vecidx/errs"
	"github.com/vecsql/vecidx/format"
	"github.com/vecsql/vecidx/internal/options"
	"github.com/vecsql/vecidx/key"
	"github.com/vecsql/vecidx/row"
	"github.com/vecsql/vecidx/section"
	"github.com/vecsql/vecidx/store"
	"github.com/vecsql/vecidx/value"
)

// Lifecycle mediates every stateful operation a host performs against a
// vector index after Recognize has accepted its CREATE INDEX statement:
// persisting and reading back its parameter record, and creating,
// dropping, clearing, and opening cursors against the graph engine that
// actually stores its rows.
type Lifecycle struct {
	meta   *store.MetaStore
	engine engine.Index
	schema string
	vacuum func() bool
}

// Opt configures a Lifecycle at construction time.
type Opt = options.Option[*Lifecycle]

// WithSchema sets the schema (attached database name) the index's
// shadow tables and parameter row live in. Defaults to "main".
func WithSchema(schema string) Opt {
	return options.NoError(func(l *Lifecycle) { l.schema = schema })
}

// WithVacuumHook supplies a callback Lifecycle polls before every
// mutating operation (Create, Drop, Clear, Insert, Delete). While it returns true,
// those operations are no-ops, matching the host engine's own
// VACUUM-in-progress neutrality rule: a vector index's shadow state is
// rebuilt wholesale by VACUUM's table copy, so nothing here needs to
// (or safely can) duplicate that work mid-pass.
func WithVacuumHook(hook func() bool) Opt {
	return options.NoError(func(l *Lifecycle) { l.vacuum = hook })
}

// New returns a Lifecycle backed by meta (the parameter-record store)
// and eng (the graph engine implementation backing every index this
// Lifecycle manages).
func New(meta *store.MetaStore, eng engine.Index, opts ...Opt) (*Lifecycle, error) {
	l := &Lifecycle{meta: meta, engine: eng, schema: "main", vacuum: func() bool { return false }}
	if err := options.Apply(l, opts...); err != nil {
		return nil, err
	}

	return l, nil
}

// isConstraintViolation reports whether err looks like a unique/primary
// key constraint violation, as surfaced by the handful of database/sql
// drivers this module has been exercised against. It is a best-effort
// string match rather than a type assertion because database/sql has no
// driver-neutral error type for this.
func isConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "constraint failed") ||
		strings.Contains(msg, "duplicate key")
}

// Create provisions a newly recognized vector index: it ensures the
// shared parameter-record table exists, asks the graph engine to create
// the index's own shadow structures, and persists its parameter record.
//
// If another writer has already inserted a parameter row for name (a
// unique-constraint violation, observed when loading a dump or
// VACUUM-ing a database: both load or copy tables before indices, so a
// concurrent create can race this one), Create reports skipRefill=true
// rather than an error: the index is still fully usable, it is simply
// already filled and must not be refilled from scratch.
func (l *Lifecycle) Create(ctx context.Context, name string, keyDesc key.Descriptor, params *section.Params) (skipRefill bool, err error) {
	if l.vacuum() {
		return false, nil
	}
	if keyDesc.NumColumns() != 1 {
		return false, errors.New("vecindex: vector index for tables without rowid and composite primary key are not supported")
	}

	if err := l.meta.EnsureTable(ctx); err != nil {
		return false, err
	}
	if err := l.engine.Create(ctx, l.schema, name, keyDesc, params); err != nil {
		return false, err
	}
	if err := l.meta.Put(ctx, name, params); err != nil {
		if isConstraintViolation(err) {
			return true, nil
		}

		return false, err
	}

	return false, nil
}

// Drop removes name's parameter row and its graph-engine structures. It
// always attempts both, even if the first fails, and returns the first
// non-nil error encountered (or nil if both succeeded), so a partially
// dropped index never leaves an orphaned parameter row with no
// corresponding shadow state or vice versa.
func (l *Lifecycle) Drop(ctx context.Context, name string) error {
	if l.vacuum() {
		return nil
	}

	engineErr := l.engine.Drop(ctx, l.schema, name)
	metaErr := l.meta.Delete(ctx, name)
	if engineErr != nil {
		return engineErr
	}

	return metaErr
}

// Clear empties name's contents without dropping its structures or its
// parameter row. It is a no-op during VACUUM.
func (l *Lifecycle) Clear(ctx context.Context, name string) error {
	if l.vacuum() {
		return nil
	}

	return l.engine.Clear(ctx, l.schema, name)
}

// Params reads name's parameter record, falling back to the legacy
// tabular format when no shadow-table row exists.
func (l *Lifecycle) Params(ctx context.Context, name string) (*section.Params, error) {
	return l.meta.GetWithLegacyFallback(ctx, name)
}

// Cursor is a session-scoped handle into one open index, used to insert
// and delete rows as the host's write path visits them.
type Cursor struct {
	handle engine.Handle
	vacuum func() bool
}

// Open reads name's parameter record and opens a Cursor against its
// graph engine structures.
func (l *Lifecycle) Open(ctx context.Context, name string) (*Cursor, error) {
	params, err := l.Params(ctx, name)
	if err != nil {
		return nil, err
	}

	h, err := l.engine.Open(ctx, l.schema, name, params)
	if err != nil {
		return nil, err
	}

	return &Cursor{handle: h, vacuum: l.vacuum}, nil
}

// Insert adds or updates r's entry. It is a no-op during VACUUM and when
// r.Vector is nil (a NULL embedding column leaves the index unchanged).
func (c *Cursor) Insert(ctx context.Context, r row.InRow) error {
	if c.vacuum() {
		return nil
	}

	return c.handle.Insert(ctx, r)
}

// Delete removes r's entry, identified by its key columns. It is a
// no-op during VACUUM.
func (c *Cursor) Delete(ctx context.Context, r row.InRow) error {
	if c.vacuum() {
		return nil
	}

	return c.handle.Delete(ctx, r)
}

// Rows returns every row currently stored in the cursor's index, for
// package archive's snapshot export. Order is unspecified.
func (c *Cursor) Rows(ctx context.Context) ([]row.InRow, error) {
	return c.handle.Rows(ctx)
}

// Close releases the cursor's graph-engine handle.
func (c *Cursor) Close(ctx context.Context) error {
	return c.handle.Close(ctx)
}

// Search loads name's parameters, opens its graph engine, and runs a
// k-nearest-neighbor query. query must be an F32 vector of the index's
// declared dimension; Search never accepts F64 queries, matching the
// graph engine's own construction-time restriction.
func (l *Lifecycle) Search(ctx context.Context, name string, keyDesc key.Descriptor, query *value.Vector, k int) (*row.OutRows, error) {
	if query.Type() != format.F32 {
		return nil, errors.New("vecindex: only f32 vectors are supported for search")
	}
	if k < 0 {
		return nil, errors.New("vecindex: k must be a non-negative integer")
	}

	params, err := l.Params(ctx, name)
	if err != nil {
		return nil, err
	}
	if dim, ok := params.Dim(); ok && uint64(query.Dims()) != dim {
		return nil, errs.ErrDimensionMismatch
	}

	h, err := l.engine.Open(ctx, l.schema, name, params)
	if err != nil {
		return nil, err
	}
	defer h.Close(ctx)

	return h.Search(ctx, query, k, keyDesc)
}
