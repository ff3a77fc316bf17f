package vecindex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vecsql/vecidx/errs"
	"github.com/vecsql/vecidx/section"
)

// paramValueKind distinguishes how a recognized key=value option's value
// is interpreted.
type paramValueKind int

const (
	paramEnum paramValueKind = iota
	paramInt
	paramFloat
)

// paramSpec describes one recognized name=value pair accepted inside the
// marker function's argument list, e.g. 'metric=cosine' or 'alpha=0.9'.
// Enum options list one paramSpec per accepted value (type/metric), each
// sharing a name but carrying its own literal value.
type paramSpec struct {
	name    string
	tag     section.Tag
	kind    paramValueKind
	literal string // for paramEnum: the value this spec matches
	value   uint64 // for paramEnum: the tag value to store on match
}

var paramSpecs = []paramSpec{
	{name: "type", tag: section.TagIndexKind, kind: paramEnum, literal: "diskann", value: 1},
	{name: "metric", tag: section.TagMetric, kind: paramEnum, literal: "cosine", value: 1},
	{name: "metric", tag: section.TagMetric, kind: paramEnum, literal: "l2", value: 2},
	{name: "alpha", tag: section.TagAlpha, kind: paramFloat},
	{name: "search_l", tag: section.TagSearchL, kind: paramInt},
	{name: "insert_l", tag: section.TagInsertL, kind: paramFloat},
}

// parseOption parses one "name=value" literal from the marker function's
// argument list and applies it to p.
func parseOption(literal string, p *section.Params) error {
	eq := strings.IndexByte(literal, '=')
	if eq < 0 {
		return fmt.Errorf("%w: unexpected parameter format %q", errs.ErrUnknownOption, literal)
	}
	name, value := literal[:eq], literal[eq+1:]

	matched := false
	for _, spec := range paramSpecs {
		if !strings.EqualFold(spec.name, name) {
			continue
		}
		matched = true

		switch spec.kind {
		case paramInt:
			n, err := strconv.ParseUint(value, 10, 64)
			if err != nil || n == 0 {
				return fmt.Errorf("%w: invalid integer vector index parameter %q", errs.ErrUnknownOption, value)
			}

			return p.PutU64(spec.tag, n)
		case paramFloat:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("%w: invalid floating point vector index parameter %q", errs.ErrUnknownOption, value)
			}

			return p.PutF64(spec.tag, f)
		case paramEnum:
			if strings.EqualFold(spec.literal, value) {
				return p.PutU64(spec.tag, spec.value)
			}
		}
	}
	if matched {
		return fmt.Errorf("%w: unrecognized value %q for parameter %q", errs.ErrUnknownOption, value, name)
	}

	return fmt.Errorf("%w: unrecognized parameter key %q", errs.ErrUnknownOption, name)
}

// parseOptions applies every literal to a fresh params record already
// carrying format, element type, and dimension. The index kind is set
// only by a "type=..." literal.
func parseOptions(literals []string, p *section.Params) error {
	for _, literal := range literals {
		if err := parseOption(literal, p); err != nil {
			return err
		}
	}

	return nil
}
