// Package engine defines the interface between the index lifecycle
// (package vecindex) and the opaque graph engine that actually stores
// and searches vectors. The real engine (a DiskANN-family ANN graph) is
// out of scope for this module; Index is the seam at which it would
// plug in, named and shaped exactly per the external interface this
// module's host expects.
//
// FlatIndex is this package's one concrete implementation: a
// brute-force linear scan. It exists to make vecindex and the SQL
// function surface testable end to end without a real graph library.
// It is constructed directly with NewFlatIndex and handed to
// vecindex.New; nothing selects it by format.IndexKind.
package engine
