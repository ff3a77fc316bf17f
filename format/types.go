// Package format defines the small, shared enums used across the vector
// subsystem's on-disk formats: element type, index kind, distance metric,
// column affinity, and the archive snapshot's compression choice.
//
// Keeping these in one leaf package (with no dependency on value, section,
// key, or vecindex) lets every other package refer to the same constants
// without import cycles.
package format

// ElementType identifies the scalar type backing a vector's elements.
type ElementType uint8

const (
	// F32 is the 32-bit float element type. It is the default for
	// SQL-level vector construction and the only type accepted by search.
	F32 ElementType = 0x01
	// F64 is the 64-bit float element type.
	F64 ElementType = 0x02
)

func (e ElementType) String() string {
	switch e {
	case F32:
		return "FLOAT32"
	case F64:
		return "FLOAT64"
	default:
		return "UNKNOWN"
	}
}

// Size returns the byte width of a single element.
func (e ElementType) Size() int {
	switch e {
	case F32:
		return 4
	case F64:
		return 8
	default:
		return 0
	}
}

// Valid reports whether e is one of the recognized element types.
func (e ElementType) Valid() bool {
	return e == F32 || e == F64
}

// IndexKind identifies the ANN algorithm family backing an index. The
// subsystem currently recognizes exactly one, but the type is kept
// distinct from a bare bool so a second kind is a non-breaking addition.
type IndexKind uint64

const (
	// DiskANN is the only supported index kind.
	DiskANN IndexKind = 1
)

func (k IndexKind) String() string {
	switch k {
	case DiskANN:
		return "diskann"
	default:
		return "unknown"
	}
}

// Metric identifies the distance function an index was built with.
type Metric uint64

const (
	// MetricCosine is cosine distance (1 - cos(theta)).
	MetricCosine Metric = 1
	// MetricL2 is non-square-rooted squared Euclidean distance.
	MetricL2 Metric = 2
)

func (m Metric) String() string {
	switch m {
	case MetricCosine:
		return "cosine"
	case MetricL2:
		return "l2"
	default:
		return "unknown"
	}
}

// Affinity is the host engine's coarse type classification of a column,
// mirroring SQLite's five type affinities.
type Affinity uint8

const (
	AffinityBlob Affinity = iota + 1
	AffinityText
	AffinityNumeric
	AffinityInteger
	AffinityReal
)

func (a Affinity) String() string {
	switch a {
	case AffinityBlob:
		return "BLOB"
	case AffinityText:
		return "TEXT"
	case AffinityNumeric:
		return "NUMERIC"
	case AffinityInteger:
		return "INTEGER"
	case AffinityReal:
		return "REAL"
	default:
		return "UNKNOWN"
	}
}

// CompressionType selects the codec used by the archive package when it
// serializes an index snapshot to a writer. It has no bearing on the
// vector or parameter wire formats, which are never compressed.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
