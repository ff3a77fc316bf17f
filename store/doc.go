// Package store persists vector index parameter records in the host
// database. It is the Go analogue of libsql_vector_meta_shadow and the
// init/insert/remove/get helper functions that operate on it: a single
// shadow table, keyed by index name, holding one opaque BLOB per index.
//
// MetaStore also understands the legacy tabular parameter format kept
// for backward compatibility with indexes created before the shadow
// table existed: GetLegacy reads vector_type/block_size/dims/distance_ops
// columns directly from the fixed legacy table libsql_vector_index
// instead.
package store
