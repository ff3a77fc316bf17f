package sqlfn

import (
	"database/sql/driver"
	"fmt"

	"github.com/vecsql/vecidx/format"
	"github.com/vecsql/vecidx/value"
)

// Vector implements vector(x): coerce x to an F32 vector and return its
// canonical blob.
func Vector(arg driver.Value) (driver.Value, error) {
	return vectorFunc(arg, format.F32)
}

// Vector32 is an alias for Vector, matching the SQL name vector32.
func Vector32(arg driver.Value) (driver.Value, error) {
	return vectorFunc(arg, format.F32)
}

// Vector64 implements vector64(x): coerce x to an F64 vector and return
// its canonical blob.
func Vector64(arg driver.Value) (driver.Value, error) {
	return vectorFunc(arg, format.F64)
}

func vectorFunc(arg driver.Value, typeHint format.ElementType) (driver.Value, error) {
	v, err := parseVector(arg, typeHint)
	if err != nil {
		return nil, err
	}

	return value.ToBlob(v, false), nil
}

// VectorExtract implements vector_extract(x): render any vector
// (BLOB or TEXT) to its canonical text form.
func VectorExtract(arg driver.Value) (driver.Value, error) {
	v, err := parseVector(arg, 0)
	if err != nil {
		return nil, err
	}

	return value.FormatText(v), nil
}

// VectorDistanceCos implements vector_distance_cos(x, y).
func VectorDistanceCos(a, b driver.Value) (driver.Value, error) {
	va, err := parseVector(a, 0)
	if err != nil {
		return nil, err
	}
	vb, err := parseVector(b, 0)
	if err != nil {
		return nil, err
	}

	d, err := value.DistanceCos(va, vb)
	if err != nil {
		return nil, fmt.Errorf("vector_distance_cos: %w", err)
	}

	return d, nil
}

// VectorMult implements vector_mult(x, y): one argument is a
// vector-compatible value (BLOB or TEXT), the other a scalar (INTEGER
// or FLOAT), in either order.
func VectorMult(a, b driver.Value) (driver.Value, error) {
	vecArg, scalarArg, ok := splitMultArgs(a, b)
	if !ok {
		return nil, fmt.Errorf(
			"vector_mult: unexpected parameters: got %T and %T, but expected vector-compatible and float-compatible types",
			a, b,
		)
	}

	v, err := parseVector(vecArg, 0)
	if err != nil {
		return nil, err
	}
	k, _ := numericArg(scalarArg)

	if err := value.Scale(v, k); err != nil {
		return nil, err
	}

	return value.ToBlob(v, false), nil
}

func splitMultArgs(a, b driver.Value) (vecArg, scalarArg driver.Value, ok bool) {
	aIsScalar, bIsScalar := isScalar(a), isScalar(b)
	aIsVector, bIsVector := isVectorLike(a), isVectorLike(b)

	switch {
	case aIsVector && bIsScalar:
		return a, b, true
	case bIsVector && aIsScalar:
		return b, a, true
	default:
		return nil, nil, false
	}
}

func isScalar(v driver.Value) bool {
	switch v.(type) {
	case int64, float64:
		return true
	default:
		return false
	}
}

func isVectorLike(v driver.Value) bool {
	switch v.(type) {
	case []byte, string:
		return true
	default:
		return false
	}
}

// LibsqlVectorIdx implements the libsql_vector_idx(x, ...) marker
// function: an identity on its first argument. It exists purely so
// CREATE INDEX can recognize and tag the indexed expression; at
// evaluation time it is transparent.
func LibsqlVectorIdx(args ...driver.Value) (driver.Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("libsql_vector_idx: requires at least one argument")
	}

	return args[0], nil
}
