// Package value implements the vector value type: its two element-type
// variants (32-bit and 64-bit float), its text and blob wire formats,
// and its in-place algebra and distance functions.
//
// # Variants
//
// A Vector is a tagged union over ElementType: every Vector is either
// entirely float32 or entirely float64, never mixed. Two constructors
// produce a Vector with different ownership semantics:
//
//   - New allocates and owns its backing storage; Add and Scale may
//     mutate it in place.
//   - FromBlob decodes a caller-supplied byte slice; the returned
//     Vector holds a copy of its elements (it does not alias the
//     slice) but is marked not owned, so Add and Scale reject it with
//     an error.
//
// # Text format
//
// The textual form is a JSON-like float array, e.g. "[1,2,3]" or
// "[1.5, -2.25]". Parsing is tolerant of interior whitespace but
// rejects anything after the closing bracket, floats longer than
// MaxFloatChars characters, and a dimension count above MaxDims.
//
// # Blob format
//
// The binary form is the vector's elements packed little-endian, with
// one backward-compatibility hinge: if the blob's total length is odd,
// the last byte is an explicit ElementType tag and the preceding bytes
// are the payload; if even, the type defaults to F32. This lets a blob
// produced without a type hint (4-byte float32 elements always sum to
// an even length) stay self-describing only when ambiguity is possible
// for 64-bit elements.
package value
