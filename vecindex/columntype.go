package vecindex

import (
	"fmt"
	"strings"

	"github.com/vecsql/vecidx/errs"
	"github.com/vecsql/vecidx/format"
	"github.com/vecsql/vecidx/value"
)

// columnTypeName pairs a recognized vector column type name with the
// element type it declares. FLOATNN and FNN_BLOB name the same storage:
// the latter is spelled to satisfy tools that key off SQLite's affinity
// rules rather than a human-friendly type name.
type columnTypeName struct {
	name string
	typ  format.ElementType
}

var columnTypeNames = []columnTypeName{
	{"FLOAT32", format.F32},
	{"FLOAT64", format.F64},
	{"F32_BLOB", format.F32},
	{"F64_BLOB", format.F64},
}

// ParseColumnType parses a vector column's declared type string, e.g.
// "FLOAT32(3)" or "f64_blob ( 128 )", into an element type and
// dimension count. Matching is case-insensitive; whitespace is tolerated
// around the type name, the parenthesized dimension, and at the end of
// the string, but nowhere else.
func ParseColumnType(zType string) (format.ElementType, int, error) {
	zType = strings.TrimSpace(zType)

	for _, ct := range columnTypeNames {
		if len(zType) < len(ct.name) || !strings.EqualFold(zType[:len(ct.name)], ct.name) {
			continue
		}
		rest := strings.TrimLeft(zType[len(ct.name):], " \t\n\r")
		if !strings.HasPrefix(rest, "(") {
			continue
		}
		rest = strings.TrimLeft(rest[1:], " \t\n\r")

		dims := 0
		i := 0
		for i < len(rest) && rest[i] != ')' && rest[i] != ' ' && rest[i] != '\t' {
			c := rest[i]
			if c < '0' || c > '9' {
				return 0, 0, fmt.Errorf("%w: non digit symbol in vector column parameter", errs.ErrUnsupportedColumnType)
			}
			dims = dims*10 + int(c-'0')
			if dims > value.MaxDims {
				return 0, 0, fmt.Errorf("%w: max vector dimension exceeded", errs.ErrUnsupportedColumnType)
			}
			i++
		}
		rest = strings.TrimLeft(rest[i:], " \t\n\r")
		if !strings.HasPrefix(rest, ")") {
			return 0, 0, fmt.Errorf("%w: missing closing brace for vector column type", errs.ErrUnsupportedColumnType)
		}
		rest = strings.TrimSpace(rest[1:])
		if rest != "" {
			return 0, 0, fmt.Errorf("%w: extra data after dimension parameter for vector column type", errs.ErrUnsupportedColumnType)
		}
		if dims <= 0 {
			return 0, 0, fmt.Errorf("%w: vector column must have non-zero dimension for index", errs.ErrUnsupportedColumnType)
		}

		return ct.typ, dims, nil
	}

	return 0, 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedColumnType, zType)
}
