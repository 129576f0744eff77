package expr

import (
	"github.com/pkg/errors"

	"github.com/fuse-ml/fuse/internal/shape"
)

// Dense is a materialized buffer of float32 values with a shape. It is
// both the destination of a materialization sweep and an expression leaf:
// evaluating a Dense at an output position reads through the index
// translator, so a [3, 1] buffer broadcasts correctly inside a [3, 4]
// expression.
type Dense struct {
	data []float32
	dims shape.Shape
}

// NewDense allocates a zero-filled buffer with the given shape.
func NewDense(s shape.Shape) (*Dense, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Dense{
		data: make([]float32, s.NumElements()),
		dims: s.Clone(),
	}, nil
}

// FromSlice wraps data in a Dense of the given shape. The slice is
// borrowed, not copied: the caller keeps ownership and must not resize it.
func FromSlice(data []float32, s shape.Shape) (*Dense, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.NumElements() != len(data) {
		return nil, errors.Errorf("dense: shape %v requires %d elements, got %d",
			s, s.NumElements(), len(data))
	}
	return &Dense{data: data, dims: s.Clone()}, nil
}

// Eval reads the element addressed by translating the output position into
// this buffer's own coordinate space.
func (d *Dense) Eval(pos int, idx shape.Index) float32 {
	return d.data[idx.Translate(pos, d.dims)]
}

// Shape returns the buffer's shape.
func (d *Dense) Shape() (shape.Shape, error) {
	return d.dims, nil
}

// Data returns the underlying buffer in row-major order.
func (d *Dense) Data() []float32 {
	return d.data
}

// At returns the element at linear position pos.
func (d *Dense) At(pos int) float32 {
	return d.data[pos]
}
