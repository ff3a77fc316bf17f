package vecindex

import (
	"fmt"

	"github.com/vecsql/vecidx/errs"
	"github.com/vecsql/vecidx/section"
)

// MarkerArg is one argument of the libsql_vector_idx(...) marker
// expression an indexed column's CREATE INDEX expression is wrapped in.
// The first argument must reference the embedding column; every
// subsequent argument is a "name=value" string literal.
type MarkerArg struct {
	IsColumnRef bool
	Literal     string // valid when !IsColumnRef
}

// CreateRequest describes the shape of a single CREATE INDEX statement,
// as much of it as Recognize needs to decide whether it names a vector
// index and, if so, what parameters it requests. The caller (the host's
// DDL layer) is responsible for extracting these facts from its own
// parse tree.
type CreateRequest struct {
	// Using is the deprecated "CREATE INDEX ... USING diskann (...)"
	// clause's algorithm name, or nil for plain "CREATE INDEX ...
	// (libsql_vector_idx(col))" syntax.
	Using *string

	// ReplayingSchema is true when the host is reconstructing its schema
	// from storage (including both a transparent schema re-parse and a
	// during-initialization CREATE) rather than processing a fresh,
	// user-issued CREATE INDEX. A replay is accepted without persisting
	// or refilling — the index's rows already exist from when it was
	// first created.
	ReplayingSchema bool

	// HasMarkerFunction reports whether any indexed expression invokes
	// libsql_vector_idx. When false, Recognize returns an Ignore
	// recognition: the statement is an ordinary, non-vector index.
	HasMarkerFunction bool

	// HasCollation reports whether any indexed expression carries an
	// explicit COLLATE clause.
	HasCollation bool

	// NumIndexedExprs is the number of expressions in the index's column
	// list.
	NumIndexedExprs int

	// HasPartialWhere reports whether the CREATE INDEX statement has a
	// WHERE clause (a partial index).
	HasPartialWhere bool

	// MarkerArgs is the marker function's argument list.
	MarkerArgs []MarkerArg

	// ColumnTypeName is the declared type of the column the marker
	// function's first argument references, e.g. "FLOAT32(128)".
	ColumnTypeName string
}

// Recognition is the result of inspecting a CREATE INDEX statement.
type Recognition struct {
	// Ignore is true when the statement is not a vector index at all;
	// the host should process it as an ordinary index.
	Ignore bool

	// SkipPersist is true when the index is recognized and accepted but
	// must not go through Lifecycle.Create's persistence sequence — set
	// for a schema replay, where the shadow tables and parameter row
	// already exist from the original create.
	SkipPersist bool

	// Params is the parsed parameter record, populated when the index is
	// accepted and SkipPersist is false (nil for an Ignore recognition).
	Params *section.Params
}

// Recognize inspects a CREATE INDEX statement and decides whether it
// names a vector index, rejecting malformed vector-index syntax with an
// error and returning an Ignore recognition for anything else.
func Recognize(req CreateRequest) (*Recognition, error) {
	if req.Using != nil {
		if !req.ReplayingSchema {
			return nil, fmt.Errorf(
				"%w: USING syntax is deprecated, use a plain CREATE INDEX with the libsql_vector_idx marker function instead",
				errs.ErrUnrecognizedIndex,
			)
		}

		return &Recognition{SkipPersist: true}, nil
	}

	if !req.HasMarkerFunction {
		return &Recognition{Ignore: true}, nil
	}
	if req.HasCollation {
		return nil, fmt.Errorf("%w: vector index can't have collation", errs.ErrUnrecognizedIndex)
	}
	if req.NumIndexedExprs != 1 {
		return nil, fmt.Errorf(
			"%w: vector index must contain exactly one column wrapped into the marker function",
			errs.ErrUnrecognizedIndex,
		)
	}
	if req.HasPartialWhere {
		return nil, fmt.Errorf("%w: partial vector index is not supported", errs.ErrUnrecognizedIndex)
	}
	if len(req.MarkerArgs) < 1 {
		return nil, fmt.Errorf("%w: marker function must contain at least one argument", errs.ErrUnrecognizedIndex)
	}
	if !req.MarkerArgs[0].IsColumnRef {
		return nil, fmt.Errorf("%w: marker function first argument must be a column token", errs.ErrUnrecognizedIndex)
	}

	typ, dims, err := ParseColumnType(req.ColumnTypeName)
	if err != nil {
		return nil, err
	}

	if req.ReplayingSchema {
		return &Recognition{SkipPersist: true}, nil
	}

	p := section.NewParams()
	if err := p.SetElemType(uint64(typ)); err != nil {
		return nil, err
	}
	if err := p.SetDim(uint64(dims)); err != nil {
		return nil, err
	}

	literals := make([]string, 0, len(req.MarkerArgs)-1)
	for _, arg := range req.MarkerArgs[1:] {
		literals = append(literals, arg.Literal)
	}
	if err := parseOptions(literals, p); err != nil {
		return nil, err
	}

	return &Recognition{Params: p}, nil
}
