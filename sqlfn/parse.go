package sqlfn

import (
	"database/sql/driver"
	"fmt"

	"github.com/vecsql/vecidx/format"
	"github.com/vecsql/vecidx/value"
)

// parseVector parses a SQL argument (a BLOB []byte or a TEXT string) as
// a vector, using typeHint (zero for "no hint") when the argument is
// text and carries no type of its own.
func parseVector(arg driver.Value, typeHint format.ElementType) (*value.Vector, error) {
	switch v := arg.(type) {
	case []byte:
		return value.FromBlob(v)
	case string:
		typ, dims, err := value.Detect([]byte(v), true, typeHint)
		if err != nil {
			return nil, err
		}

		return value.ParseText([]byte(v), typ, dims)
	default:
		return nil, fmt.Errorf("sqlfn: unexpected argument type %T, expected TEXT or BLOB", arg)
	}
}

// numericArg coerces a SQL argument to float64, accepting both integer
// and float driver values (vector_mult's scalar operand may be either).
func numericArg(arg driver.Value) (float64, bool) {
	switch v := arg.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
