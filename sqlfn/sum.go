package sqlfn

import (
	"database/sql/driver"
	"fmt"

	"github.com/vecsql/vecidx/format"
	"github.com/vecsql/vecidx/value"
)

// VectorSum implements the scalar variadic form of vector_sum(v1, v2,
// ..., vn): element-wise sum of one or more same-type, same-dimension
// vectors.
func VectorSum(args ...driver.Value) (driver.Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("vector_sum: requires at least one argument")
	}

	sum, err := parseVector(args[0], 0)
	if err != nil {
		return nil, err
	}
	// parseVector may return a borrowed (unowned) vector when args[0] is
	// a BLOB; vector_sum always mutates, so force an owned copy.
	sum, err = ownedCopy(sum)
	if err != nil {
		return nil, err
	}

	for _, arg := range args[1:] {
		v, err := parseVector(arg, 0)
		if err != nil {
			return nil, err
		}
		if err := value.Add(sum, v); err != nil {
			return nil, fmt.Errorf("vector_sum: %w", err)
		}
	}

	return value.ToBlob(sum, false), nil
}

func ownedCopy(v *value.Vector) (*value.Vector, error) {
	out, err := value.New(v.Type(), v.Dims())
	if err != nil {
		return nil, err
	}
	if v.Type() == format.F32 {
		copy(out.F32(), v.F32())
	} else {
		copy(out.F64(), v.F64())
	}

	return out, nil
}

// SumState is the per-group state for the vector_sum window/aggregate
// function: Step adds, Inverse subtracts (both via the same scale-then-add
// path, matching the original's single vectorSumAdd helper parameterized
// by +1/-1), Value emits the running sum without resetting state, and
// Final emits and resets.
//
// The first Step (or Inverse) in a group seeds Sum directly, scaled by
// the same ±1 factor as every later call — there is no special
// unscaled case for the first element, matching the source
// implementation's vectorSumAdd precisely.
type SumState struct {
	count   int64
	sum     *value.Vector
	scratch *value.Vector
}

// Step adds arg's vector into the running sum.
func (s *SumState) Step(arg driver.Value) error {
	return s.add(arg, 1)
}

// Inverse subtracts arg's vector from the running sum, undoing a prior
// Step for window-function support.
func (s *SumState) Inverse(arg driver.Value) error {
	return s.add(arg, -1)
}

func (s *SumState) add(arg driver.Value, k float64) error {
	v, err := parseVector(arg, 0)
	if err != nil {
		return err
	}

	if s.count == 0 {
		s.sum, err = ownedCopy(v)
		if err != nil {
			return err
		}
		if err := value.Scale(s.sum, k); err != nil {
			return err
		}
		s.count++

		return nil
	}

	if s.sum.Type() != v.Type() || s.sum.Dims() != v.Dims() {
		return fmt.Errorf("vector_sum: vectors must have the same type and length across a group")
	}

	if s.scratch == nil || s.scratch.Dims() != v.Dims() || s.scratch.Type() != v.Type() {
		s.scratch, err = value.New(v.Type(), v.Dims())
		if err != nil {
			return err
		}
	}
	if v.Type() == format.F32 {
		copy(s.scratch.F32(), v.F32())
	} else {
		copy(s.scratch.F64(), v.F64())
	}

	if err := value.Scale(s.scratch, k); err != nil {
		return err
	}
	if err := value.Add(s.sum, s.scratch); err != nil {
		return err
	}
	s.count++

	return nil
}

// Value returns the running sum's canonical blob without resetting
// state, for window-function VALUE callbacks.
func (s *SumState) Value() (driver.Value, error) {
	if s.count == 0 {
		return nil, nil
	}

	return value.ToBlob(s.sum, false), nil
}

// Final returns the running sum's canonical blob and resets state, for
// aggregate FINAL callbacks.
func (s *SumState) Final() (driver.Value, error) {
	v, err := s.Value()
	*s = SumState{}

	return v, err
}
