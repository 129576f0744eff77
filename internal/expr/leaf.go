package expr

import "github.com/fuse-ml/fuse/internal/shape"

// Scalar is a leaf that borrows a single externally owned float and
// broadcasts it against any shape. The referenced value must outlive the
// node; the node never copies it, so mutations by the owner are visible to
// later evaluations.
type Scalar struct {
	val *float32
}

// NewScalar builds a scalar leaf over v.
func NewScalar(v *float32) Scalar {
	return Scalar{val: v}
}

// Eval returns the borrowed value regardless of position.
func (s Scalar) Eval(int, shape.Index) float32 {
	return *s.val
}

// Shape returns [1], the scalar shape.
func (s Scalar) Shape() (shape.Shape, error) {
	return shape.Shape{1}, nil
}

// Constant is a leaf that owns a single float conceptually replicated
// across an explicit shape.
type Constant struct {
	val  float32
	dims shape.Shape
}

// NewConstant builds a constant leaf with the given shape.
func NewConstant(v float32, s shape.Shape) Constant {
	return Constant{val: v, dims: s}
}

// NewConstantDims is the variadic form of NewConstant; the two produce
// identical shapes.
func NewConstantDims(v float32, dims ...int) Constant {
	return NewConstant(v, shape.Shape(dims))
}

// Eval returns the stored value regardless of position.
func (c Constant) Eval(int, shape.Index) float32 {
	return c.val
}

// Shape returns the shape the constant was built with.
func (c Constant) Shape() (shape.Shape, error) {
	return c.dims, nil
}
