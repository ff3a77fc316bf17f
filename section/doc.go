// Package section defines the binary structure of a vector index's
// persisted parameter record.
//
// # Overview
//
// A parameter record is a flat byte buffer holding zero or more 9-byte
// tuples:
//
//	┌────────┬───────────────────────────┐
//	│ tag(1) │ value (8, little-endian)  │
//	└────────┴───────────────────────────┘
//
// Tags may repeat; a read always returns the value carried by the tuple
// at the highest offset for that tag ("last write wins"), which is how
// an index's parameters get updated without rewriting the whole record:
// appending a new tuple for an existing tag shadows every earlier one.
// Floating point fields (alpha, insert_l) are stored bit-for-bit as
// their uint64 representation — the container itself never needs to
// know a field's logical type, only the typed Get/Set wrappers on Params
// do.
//
// The whole record is capped at MaxParamsSize bytes and is persisted
// verbatim as the metadata BLOB column of the index's shadow table.
//
// # Usage
//
//	p := section.NewParams()
//	p.SetIndexKind(uint64(format.DiskANN))
//	p.SetElemType(uint64(format.F32))
//	p.SetDim(128)
//	p.SetMetric(uint64(format.MetricCosine))
//	buf := p.Bytes()
//
//	p2, err := section.ParseParams(buf)
//	if err != nil {
//	    return err
//	}
//	dim, ok := p2.Dim()
package section
