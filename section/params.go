package section

import (
	"math"

	"github.com/vecsql/vecidx/errs"
)

// Params is an index's parameter record: a flat sequence of 9-byte
// tuples, each binding a Tag to a uint64 (or bit-cast float64) value.
//
// The zero value is an empty record with no tags set; unlike NewParams(),
// it carries no TagFormat tuple.
type Params struct {
	buf []byte
}

// NewParams returns an empty parameter record with FormatVersion already
// stamped.
func NewParams() *Params {
	p := &Params{buf: make([]byte, 0, TagSize*4)}
	_ = p.PutU64(TagFormat, FormatVersion)

	return p
}

// ParseParams reads a parameter record previously produced by Bytes.
//
// data is not retained; ParseParams copies it. An empty slice parses to
// an empty record with no tags set, mirroring vectorIdxParamsInit's
// tolerance of a nil buffer.
func ParseParams(data []byte) (*Params, error) {
	if len(data)%TagSize != 0 {
		return nil, errs.ErrParamsCorrupt
	}
	if len(data) > MaxParamsSize {
		return nil, errs.ErrParamsOverflow
	}

	buf := make([]byte, len(data))
	copy(buf, data)

	return &Params{buf: buf}, nil
}

// Bytes returns the record's on-disk representation. The returned slice
// is owned by the caller; mutating it does not affect p.
func (p *Params) Bytes() []byte {
	b := make([]byte, len(p.buf))
	copy(b, p.buf)

	return b
}

// Len returns the number of tuples currently stored, including shadowed
// (overwritten) ones.
func (p *Params) Len() int {
	return len(p.buf) / TagSize
}

// GetU64 scans every tuple for tag and returns the value of the last
// match. ok is false if tag never appears.
func (p *Params) GetU64(tag Tag) (value uint64, ok bool) {
	for i := 0; i+TagSize <= len(p.buf); i += TagSize {
		if Tag(p.buf[i]) != tag {
			continue
		}
		ok = true
		value = 0
		for offset := range 8 {
			value |= uint64(p.buf[i+1+offset]) << (8 * uint(offset))
		}
	}

	return value, ok
}

// PutU64 appends a new tuple for tag. It never overwrites or removes an
// earlier tuple for the same tag — GetU64 simply prefers the later one —
// so repeated writes of the same tag grow the record until it is
// rewritten from scratch via NewParams.
func (p *Params) PutU64(tag Tag, value uint64) error {
	if len(p.buf)+TagSize > MaxParamsSize {
		return errs.ErrParamsOverflow
	}

	p.buf = append(p.buf, byte(tag))
	for range 8 {
		p.buf = append(p.buf, byte(value))
		value >>= 8
	}

	return nil
}

// GetF64 is GetU64 with the result bit-cast to float64.
func (p *Params) GetF64(tag Tag) (value float64, ok bool) {
	bits, ok := p.GetU64(tag)
	if !ok {
		return 0, false
	}

	return math.Float64frombits(bits), true
}

// PutF64 is PutU64 with value bit-cast from float64.
func (p *Params) PutF64(tag Tag, value float64) error {
	return p.PutU64(tag, math.Float64bits(value))
}

// IndexKind returns the TagIndexKind parameter, if set.
func (p *Params) IndexKind() (uint64, bool) { return p.GetU64(TagIndexKind) }

// SetIndexKind sets the TagIndexKind parameter.
func (p *Params) SetIndexKind(kind uint64) error { return p.PutU64(TagIndexKind, kind) }

// ElemType returns the TagElemType parameter, if set.
func (p *Params) ElemType() (uint64, bool) { return p.GetU64(TagElemType) }

// SetElemType sets the TagElemType parameter.
func (p *Params) SetElemType(t uint64) error { return p.PutU64(TagElemType, t) }

// Dim returns the TagDim parameter, if set.
func (p *Params) Dim() (uint64, bool) { return p.GetU64(TagDim) }

// SetDim sets the TagDim parameter.
func (p *Params) SetDim(dim uint64) error { return p.PutU64(TagDim, dim) }

// Metric returns the TagMetric parameter, if set.
func (p *Params) Metric() (uint64, bool) { return p.GetU64(TagMetric) }

// SetMetric sets the TagMetric parameter.
func (p *Params) SetMetric(m uint64) error { return p.PutU64(TagMetric, m) }

// Alpha returns the TagAlpha parameter (DiskANN pruning factor), if set.
func (p *Params) Alpha() (float64, bool) { return p.GetF64(TagAlpha) }

// SetAlpha sets the TagAlpha parameter.
func (p *Params) SetAlpha(alpha float64) error { return p.PutF64(TagAlpha, alpha) }

// SearchL returns the TagSearchL parameter (DiskANN search list size), if set.
func (p *Params) SearchL() (uint64, bool) { return p.GetU64(TagSearchL) }

// SetSearchL sets the TagSearchL parameter.
func (p *Params) SetSearchL(l uint64) error { return p.PutU64(TagSearchL, l) }

// InsertL returns the TagInsertL parameter (DiskANN insert list size), if set.
func (p *Params) InsertL() (float64, bool) { return p.GetF64(TagInsertL) }

// SetInsertL sets the TagInsertL parameter.
func (p *Params) SetInsertL(l float64) error { return p.PutF64(TagInsertL, l) }

// BlockSize returns the TagBlockSize parameter (legacy tabular format), if set.
func (p *Params) BlockSize() (uint64, bool) { return p.GetU64(TagBlockSize) }

// SetBlockSize sets the TagBlockSize parameter.
func (p *Params) SetBlockSize(n uint64) error { return p.PutU64(TagBlockSize, n) }
