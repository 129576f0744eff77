// Package shape defines tensor shapes, NumPy-style broadcasting, and the
// index translation used to evaluate broadcasted expressions position by
// position.
package shape

import "github.com/pkg/errors"

// Shape represents the dimensions of a tensor, highest-order dimension
// first. Shape{1} is the shape of a scalar expression.
type Shape []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension extent is positive.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return errors.New("shape: empty shape")
	}
	for i, dim := range s {
		if dim <= 0 {
			return errors.Errorf("shape: invalid extent %d at dimension %d", dim, i)
		}
	}
	return nil
}

// Equal reports whether two shapes have identical rank and extents.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides returns row-major strides: strides[i] is the number of elements
// skipped when the coordinate along dimension i advances by one.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}
