// Package key describes the host table's key columns for a vector
// index: either the implicit rowid, or a composite primary key.
//
// Every vector index is keyed by whatever uniquely identifies a row in
// its host table. Most tables use the implicit integer rowid; tables
// declared WITHOUT ROWID are keyed by their primary key columns
// instead, which may span up to MaxKeyColumns columns of mixed
// affinity and collation. Descriptor captures exactly that shape so the
// rest of this module (row.InRow, the shadow table DDL, cursor seeks)
// never needs to special-case rowid vs. composite-PK tables directly.
package key
