package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/vecsql/vecidx/internal/options"
	"github.com/vecsql/vecidx/section"
)

// MetaTable is the name of the shadow table holding every index's
// parameter record.
const MetaTable = "libsql_vector_meta_shadow"

// MetaStore persists and retrieves vector index parameter records
// against a single *sql.DB connection.
type MetaStore struct {
	db     *sql.DB
	schema string
}

// Opt configures a MetaStore at construction time.
type Opt = options.Option[*MetaStore]

// WithSchema sets the schema (attached database name) the shadow table
// lives in. Defaults to "main".
func WithSchema(schema string) Opt {
	return options.NoError(func(m *MetaStore) { m.schema = schema })
}

// New returns a MetaStore bound to db.
func New(db *sql.DB, opts ...Opt) (*MetaStore, error) {
	m := &MetaStore{db: db, schema: "main"}
	if err := options.Apply(m, opts...); err != nil {
		return nil, err
	}

	return m, nil
}

// EnsureTable creates the shadow table if it does not already exist.
func (m *MetaStore) EnsureTable(ctx context.Context) error {
	stmt := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS "%s".%s ( name TEXT PRIMARY KEY, metadata BLOB ) WITHOUT ROWID`,
		m.schema, MetaTable,
	)
	_, err := m.db.ExecContext(ctx, stmt)

	return err
}

// Put inserts the parameter record for a newly created index. It
// returns an error (typically a unique constraint violation surfaced by
// the underlying driver) if the index already has a record.
func (m *MetaStore) Put(ctx context.Context, indexName string, params *section.Params) error {
	stmt := fmt.Sprintf(`INSERT INTO "%s".%s VALUES (?, ?)`, m.schema, MetaTable)
	_, err := m.db.ExecContext(ctx, stmt, indexName, params.Bytes())

	return err
}

// Delete removes the parameter record for indexName, if present. Unlike
// the original C implementation's VACUUM-aware caller, callers here are
// responsible for skipping the call entirely during a VACUUM pass — see
// vecindex.Lifecycle.Drop.
func (m *MetaStore) Delete(ctx context.Context, indexName string) error {
	stmt := fmt.Sprintf(`DELETE FROM "%s".%s WHERE name = ?`, m.schema, MetaTable)
	_, err := m.db.ExecContext(ctx, stmt, indexName)

	return err
}

// Get reads the parameter record for indexName from the shadow table.
// It does not fall back to the legacy format; callers needing that
// fallback should call GetLegacy when Get returns sql.ErrNoRows, or use
// GetWithLegacyFallback.
func (m *MetaStore) Get(ctx context.Context, indexName string) (*section.Params, error) {
	stmt := fmt.Sprintf(`SELECT metadata FROM "%s".%s WHERE name = ?`, m.schema, MetaTable)

	var blob []byte
	row := m.db.QueryRowContext(ctx, stmt, indexName)
	if err := row.Scan(&blob); err != nil {
		return nil, err
	}

	return section.ParseParams(blob)
}

// LegacyRow is one row of the pre-shadow-table tabular parameter
// format: libsql_vector_index(name, vector_type, block_size, dims, distance_ops).
type LegacyRow struct {
	VectorType  uint64
	BlockSize   uint64
	Dims        uint64
	DistanceOps uint64
}

// GetLegacy reads an index's parameters from the legacy tabular format,
// synthesizing the equivalent of a shadow-table record: format version
// 1, DiskANN index kind, F32 element type, and a cosine metric (the
// only ones the legacy format ever supported).
func (m *MetaStore) GetLegacy(ctx context.Context, indexName string) (*section.Params, error) {
	stmt := `SELECT vector_type, block_size, dims, distance_ops FROM libsql_vector_index WHERE name = ?`

	var row LegacyRow
	qr := m.db.QueryRowContext(ctx, stmt, indexName)
	if err := qr.Scan(&row.VectorType, &row.BlockSize, &row.Dims, &row.DistanceOps); err != nil {
		return nil, err
	}

	p := section.NewParams()
	if err := p.SetIndexKind(1); err != nil {
		return nil, err
	}
	if err := p.SetElemType(1); err != nil {
		return nil, err
	}
	if err := p.SetDim(row.Dims); err != nil {
		return nil, err
	}
	if err := p.SetMetric(1); err != nil {
		return nil, err
	}
	if err := p.SetBlockSize(row.BlockSize); err != nil {
		return nil, err
	}

	return p, nil
}

// isMissingTableError reports whether err looks like "no such table" (or
// the local driver's spelling thereof), as opposed to some other query
// failure. A database that has never been touched by the current shadow
// table format — only the legacy tabular one — has no
// libsql_vector_meta_shadow table at all, so Get fails this way rather
// than with sql.ErrNoRows. Best-effort string match, for the same reason
// isConstraintViolation is in package vecindex: database/sql has no
// driver-neutral error type for this.
func isMissingTableError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "no such table") ||
		strings.Contains(msg, "doesn't exist") ||
		strings.Contains(msg, "does not exist") ||
		strings.Contains(msg, "unknown table")
}

// GetWithLegacyFallback reads an index's parameters from the shadow
// table, falling back to the legacy tabular format when no shadow row
// exists for indexName or the shadow table itself has never been
// created (a database that predates the current format).
func (m *MetaStore) GetWithLegacyFallback(ctx context.Context, indexName string) (*section.Params, error) {
	p, err := m.Get(ctx, indexName)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) && !isMissingTableError(err) {
		return nil, err
	}

	return m.GetLegacy(ctx, indexName)
}
