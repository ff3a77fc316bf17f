package section

// TagSize is the fixed on-disk width of one parameter tuple: one tag byte
// followed by an 8-byte little-endian value.
const TagSize = 9

// MaxParamsSize is the total byte budget for a parameter record. The
// record is stored as a single BLOB column, so this also bounds the
// largest value libsql_vector_meta_shadow.metadata can hold.
const MaxParamsSize = 128

// Tag identifies one entry in a parameter record. Repeated tags are legal;
// Params.GetU64/GetF64 always return the last occurrence.
type Tag uint8

const (
	// TagFormat records the parameter record's own encoding version.
	TagFormat Tag = 0x01
	// TagIndexKind records the ANN algorithm family (format.IndexKind).
	TagIndexKind Tag = 0x02
	// TagElemType records the vector element type (format.ElementType).
	TagElemType Tag = 0x03
	// TagDim records the vector dimension.
	TagDim Tag = 0x04
	// TagMetric records the distance metric (format.Metric).
	TagMetric Tag = 0x05
	// TagAlpha records the DiskANN pruning alpha, stored as a bit-cast f64.
	TagAlpha Tag = 0x06
	// TagSearchL records the DiskANN search list size.
	TagSearchL Tag = 0x07
	// TagInsertL records the DiskANN insert list size, stored as a bit-cast f64.
	TagInsertL Tag = 0x08
	// TagBlockSize records the legacy tabular format's block size.
	TagBlockSize Tag = 0x09
)

// FormatVersion is the only parameter-record format this module writes.
// Unrecognized formats are not rejected at read time — only the tags the
// caller asks for are interpreted — but writers always stamp this value.
const FormatVersion uint64 = 1
