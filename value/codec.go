package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/vecsql/vecidx/endian"
	"github.com/vecsql/vecidx/errs"
	"github.com/vecsql/vecidx/format"
)

// MaxFloatChars is the longest a single float literal may be within a
// text-format vector before parsing fails.
const MaxFloatChars = 1024

// Detect inspects a candidate vector value (text or blob) and reports
// the element type and dimension it would parse to, without allocating
// or decoding the elements themselves. typeHint, when non-zero,
// disambiguates a textual value that has no type tag of its own; blob
// values always carry or default their own type and ignore the hint.
func Detect(raw []byte, isText bool, typeHint format.ElementType) (format.ElementType, int, error) {
	if isText {
		return detectText(raw, typeHint)
	}

	return detectBlob(raw)
}

func detectBlob(raw []byte) (format.ElementType, int, error) {
	typ := format.F32
	if len(raw)%2 != 0 {
		typ = format.ElementType(raw[len(raw)-1])
		raw = raw[:len(raw)-1]
	}
	if !typ.Valid() {
		return 0, 0, fmt.Errorf("%w: %d", errs.ErrInvalidElementType, typ)
	}

	size := typ.Size()
	if len(raw)%size != 0 {
		return 0, 0, fmt.Errorf("%w: length %d is not a multiple of %d", errs.ErrInvalidBlob, len(raw), size)
	}

	dims := len(raw) / size
	if dims > MaxDims {
		return 0, 0, fmt.Errorf("%w: %d exceeds max dimension %d", errs.ErrInvalidDimension, dims, MaxDims)
	}

	return typ, dims, nil
}

func detectText(raw []byte, typeHint format.ElementType) (format.ElementType, int, error) {
	typ := format.F32
	if typeHint != 0 {
		if !typeHint.Valid() {
			return 0, 0, fmt.Errorf("%w: %d", errs.ErrInvalidElementType, typeHint)
		}
		typ = typeHint
	}

	dims := 0
	hasDigit := false
	for _, b := range raw {
		if b == ',' {
			dims++
		}
		if unicode.IsDigit(rune(b)) {
			hasDigit = true
		}
	}
	if hasDigit {
		dims++
	}

	return typ, dims, nil
}

// ParseText parses a vector literal of the form "[1,2,3]" into an owned
// Vector of typ and dims (as previously reported by Detect).
func ParseText(raw []byte, typ format.ElementType, dims int) (*Vector, error) {
	v, err := New(typ, dims)
	if err != nil {
		return nil, err
	}

	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "[") {
		return nil, fmt.Errorf("%w: must start with '['", errs.ErrInvalidText)
	}
	s = s[1:]

	elem := 0
	var buf strings.Builder
	flush := func() error {
		lit := buf.String()
		buf.Reset()
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return fmt.Errorf("%w: invalid float at position %d: %q", errs.ErrInvalidText, elem, lit)
		}
		if elem >= dims {
			return fmt.Errorf("%w: more elements than declared dimension %d", errs.ErrInvalidDimension, dims)
		}
		if typ == format.F32 {
			v.f32[elem] = float32(f)
		} else {
			v.f64[elem] = f
		}
		elem++

		return nil
	}

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case unicode.IsSpace(rune(c)):
			i++

			continue
		case c == ']':
			if elem == 0 && buf.Len() == 0 {
				// empty vector: "[]"
			} else if err := flush(); err != nil {
				return nil, err
			}
			i++
			rest := strings.TrimSpace(s[i:])
			if rest != "" {
				return nil, fmt.Errorf("%w: non-space symbols after closing ']'", errs.ErrInvalidText)
			}

			return v, nil
		case c == ',':
			if err := flush(); err != nil {
				return nil, err
			}
			i++
		default:
			if buf.Len() >= MaxFloatChars {
				return nil, fmt.Errorf("%w: float literal exceeds %d characters", errs.ErrInvalidText, MaxFloatChars)
			}
			buf.WriteByte(c)
			i++
		}
	}

	return nil, fmt.Errorf("%w: must end with ']'", errs.ErrInvalidText)
}

// FormatText renders v as a canonical "[1,2,3]" literal.
func FormatText(v *Vector) string {
	var b strings.Builder
	b.WriteByte('[')
	dims := v.Dims()
	for i := 0; i < dims; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		if v.typ == format.F32 {
			b.WriteString(strconv.FormatFloat(float64(v.f32[i]), 'g', -1, 32))
		} else {
			b.WriteString(strconv.FormatFloat(v.f64[i], 'g', -1, 64))
		}
	}
	b.WriteByte(']')

	return b.String()
}

// FromBlob decodes a wire-format blob into a new, borrowed Vector. The
// returned Vector does not alias raw; its elements are copied out, but
// it is still marked unowned since it represents data read directly
// from a stored row rather than one under active construction.
func FromBlob(raw []byte) (*Vector, error) {
	typ, dims, err := detectBlob(raw)
	if err != nil {
		return nil, err
	}
	if dims == 0 {
		return &Vector{typ: typ}, nil
	}

	engine := endian.GetLittleEndianEngine()
	v := &Vector{typ: typ}
	if typ == format.F32 {
		v.f32 = make([]float32, dims)
		for i := range v.f32 {
			bits := engine.Uint32(raw[i*4 : i*4+4])
			v.f32[i] = math.Float32frombits(bits)
		}
	} else {
		v.f64 = make([]float64, dims)
		for i := range v.f64 {
			bits := engine.Uint64(raw[i*8 : i*8+8])
			v.f64[i] = math.Float64frombits(bits)
		}
	}

	return v, nil
}

// ToBlob encodes v into the wire blob format. withTypeTag forces the
// one-byte trailing type tag even when the element count would
// otherwise make it unnecessary; vector_extract-style round trips
// always pass false to produce the most compact representation.
func ToBlob(v *Vector, withTypeTag bool) []byte {
	engine := endian.GetLittleEndianEngine()
	dims := v.Dims()
	size := v.typ.Size()
	out := make([]byte, 0, dims*size+1)

	for i := 0; i < dims; i++ {
		if v.typ == format.F32 {
			out = engine.AppendUint32(out, math.Float32bits(v.f32[i]))
		} else {
			out = engine.AppendUint64(out, math.Float64bits(v.f64[i]))
		}
	}

	// A packed blob is always an even number of bytes (float32 and float64
	// elements are both 4- and 8-byte multiples); detectBlob's default of
	// F32 on even length means F64 vectors must always carry the tag.
	if withTypeTag || v.typ != format.F32 {
		out = append(out, byte(v.typ))
	}

	return out
}
