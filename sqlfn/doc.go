// Package sqlfn implements the SQL-visible function surface for the
// vector column type: vector/vector32/vector64, vector_extract,
// vector_distance_cos, vector_sum (scalar and aggregate), vector_mult,
// and the libsql_vector_idx marker.
//
// Every function here operates on database/sql/driver.Value arguments
// and returns a driver.Value result (or an error), matching the shape a
// host SQL engine's scalar/aggregate function registration hook expects
// — no direct dependency on any particular SQL engine's function API.
package sqlfn
