// Package errs defines the sentinel errors shared across this module's
// packages. Callers should compare against these with errors.Is; wrapped
// instances carry the offending value or position via fmt.Errorf("%w: ...").
package errs

import "errors"

// Vector codec errors (value package).
var (
	// ErrInvalidDimension is returned when a vector's declared dimension
	// doesn't match its payload length, or falls outside [0, MaxDims].
	ErrInvalidDimension = errors.New("vecidx: invalid vector dimension")

	// ErrInvalidElementType is returned when a blob's type tag (or a
	// caller-supplied type hint) is not one of F32/F64.
	ErrInvalidElementType = errors.New("vecidx: invalid vector element type")

	// ErrInvalidBlob is returned when a vector BLOB's length is not a
	// valid encoding of any (type, dimension) pair.
	ErrInvalidBlob = errors.New("vecidx: invalid vector blob")

	// ErrInvalidText is returned when a vector's textual form cannot be
	// parsed as a JSON-like float array.
	ErrInvalidText = errors.New("vecidx: invalid vector text")

	// ErrDimensionMismatch is returned when two vectors participating in
	// the same operation (add, scale, distance) disagree on dimension.
	ErrDimensionMismatch = errors.New("vecidx: vector dimension mismatch")

	// ErrTypeMismatch is returned when two vectors participating in the
	// same operation disagree on element type.
	ErrTypeMismatch = errors.New("vecidx: vector type mismatch")
)

// Parameter record errors (section package).
var (
	// ErrParamsOverflow is returned when writing a tuple would exceed
	// MaxParamsSize.
	ErrParamsOverflow = errors.New("vecidx: parameter record overflow")

	// ErrParamsCorrupt is returned when a parameter record's length is
	// not a multiple of TagSize.
	ErrParamsCorrupt = errors.New("vecidx: corrupt parameter record")

	// ErrParamNotSet names a tag that is absent from the record. The
	// typed getters on section.Params do not return it; they report an
	// absent tag through their ok result.
	ErrParamNotSet = errors.New("vecidx: parameter not set")
)

// Key descriptor errors (key package).
var (
	// ErrTooManyKeyColumns is returned when a table's primary key has
	// more columns than MaxKeyColumns.
	ErrTooManyKeyColumns = errors.New("vecidx: too many primary key columns")
)

// Row errors (row package).
var (
	// ErrTooManyRows is returned when a result set would exceed MaxCells.
	ErrTooManyRows = errors.New("vecidx: too many rows in result set")
)

// Index lifecycle errors (vecindex package).
var (
	// ErrUnrecognizedIndex is returned by Recognize when the CREATE INDEX
	// statement under inspection uses the vector index marker (or the
	// USING syntax) in a form it rejects. A statement that is not a vector
	// index at all gets an Ignore recognition, not this error.
	ErrUnrecognizedIndex = errors.New("vecidx: not a vector index")

	// ErrUnsupportedColumnType is returned when a vector column's
	// declared type doesn't match FLOAT32(n)/FLOAT64(n)/F32_BLOB(n)/F64_BLOB(n).
	ErrUnsupportedColumnType = errors.New("vecidx: unsupported vector column type")

	// ErrUnknownOption is returned when a libsql_vector_idx parameter
	// string names a key this module doesn't recognize.
	ErrUnknownOption = errors.New("vecidx: unknown index option")

	// ErrLegacyFormat is returned by operations that don't support the
	// legacy tabular parameter format still accepted for backward
	// compatibility.
	ErrLegacyFormat = errors.New("vecidx: legacy index format")
)

// Archive errors (archive package).
var (
	// ErrArchiveChecksum is returned by Import when a snapshot's stored
	// checksum doesn't match its payload.
	ErrArchiveChecksum = errors.New("vecidx: archive checksum mismatch")

	// ErrArchiveVersion is returned by Import when a snapshot's header
	// version is not the one version this module writes.
	ErrArchiveVersion = errors.New("vecidx: unsupported archive version")
)
