package value

import (
	"fmt"
	"math"

	"github.com/vecsql/vecidx/errs"
	"github.com/vecsql/vecidx/format"
)

// MaxDims is the largest dimension count a Vector may have.
const MaxDims = 16384

// Vector is a fixed-length, single-typed array of floating point
// elements. The zero value is not valid; use New or FromBlob.
type Vector struct {
	typ   format.ElementType
	f32   []float32
	f64   []float64
	owned bool
}

// Type returns the vector's element type.
func (v *Vector) Type() format.ElementType { return v.typ }

// Dims returns the vector's dimension count.
func (v *Vector) Dims() int {
	if v.typ == format.F32 {
		return len(v.f32)
	}

	return len(v.f64)
}

// F32 returns the vector's elements when Type() is F32. It panics
// otherwise; callers that don't already know the type should switch on
// Type() first.
func (v *Vector) F32() []float32 {
	if v.typ != format.F32 {
		panic("value: Vector.F32 called on a " + v.typ.String() + " vector")
	}

	return v.f32
}

// F64 returns the vector's elements when Type() is F64. It panics
// otherwise.
func (v *Vector) F64() []float64 {
	if v.typ != format.F64 {
		panic("value: Vector.F64 called on a " + v.typ.String() + " vector")
	}

	return v.f64
}

// New allocates a zero-filled, owned Vector of the given type and
// dimension. dims may be zero (the empty vector is valid per the text
// and blob wire formats); Owned vectors may be passed to Add and Scale.
func New(typ format.ElementType, dims int) (*Vector, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidElementType, typ)
	}
	if dims < 0 || dims > MaxDims {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidDimension, dims)
	}

	v := &Vector{typ: typ, owned: true}
	if typ == format.F32 {
		v.f32 = make([]float32, dims)
	} else {
		v.f64 = make([]float64, dims)
	}

	return v, nil
}

// checkSameShape returns an error if a and b differ in type or dimension.
func checkSameShape(op string, a, b *Vector) error {
	if a.typ != b.typ {
		return fmt.Errorf("%s: %w: %s != %s", op, errs.ErrTypeMismatch, a.typ, b.typ)
	}
	if a.Dims() != b.Dims() {
		return fmt.Errorf("%s: %w: %d != %d", op, errs.ErrDimensionMismatch, a.Dims(), b.Dims())
	}

	return nil
}

// Add adds src into dst element-wise, in place. dst must be owned
// (constructed via New); src may be owned or borrowed.
func Add(dst, src *Vector) error {
	if !dst.owned {
		return fmt.Errorf("vector_add: destination vector is not owned")
	}
	if err := checkSameShape("vector_add", dst, src); err != nil {
		return err
	}

	if dst.typ == format.F32 {
		for i, x := range src.f32 {
			dst.f32[i] += x
		}
	} else {
		for i, x := range src.f64 {
			dst.f64[i] += x
		}
	}

	return nil
}

// Scale multiplies every element of v by k, in place. v must be owned.
func Scale(v *Vector, k float64) error {
	if !v.owned {
		return fmt.Errorf("vector_mult: vector is not owned")
	}

	if v.typ == format.F32 {
		k32 := float32(k)
		for i := range v.f32 {
			v.f32[i] *= k32
		}
	} else {
		for i := range v.f64 {
			v.f64[i] *= k
		}
	}

	return nil
}

// DistanceCos returns the cosine distance (1 - cosine similarity)
// between a and b.
func DistanceCos(a, b *Vector) (float64, error) {
	if err := checkSameShape("vector_distance_cos", a, b); err != nil {
		return 0, err
	}

	var dot, normA, normB float64
	if a.typ == format.F32 {
		for i := range a.f32 {
			x, y := float64(a.f32[i]), float64(b.f32[i])
			dot += x * y
			normA += x * x
			normB += y * y
		}
	} else {
		for i := range a.f64 {
			x, y := a.f64[i], b.f64[i]
			dot += x * y
			normA += x * x
			normB += y * y
		}
	}

	if normA == 0 || normB == 0 {
		return 1, nil
	}

	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB)), nil
}

// DistanceL2 returns the sum of squared element-wise differences between
// a and b. This is the value persisted and compared by the index; it is
// not square-rooted. Callers who need true Euclidean distance take the
// square root of the result themselves.
func DistanceL2(a, b *Vector) (float64, error) {
	if err := checkSameShape("vector_distance_l2", a, b); err != nil {
		return 0, err
	}

	var sum float64
	if a.typ == format.F32 {
		for i := range a.f32 {
			d := float64(a.f32[i]) - float64(b.f32[i])
			sum += d * d
		}
	} else {
		for i := range a.f64 {
			d := a.f64[i] - b.f64[i]
			sum += d * d
		}
	}

	return sum, nil
}
