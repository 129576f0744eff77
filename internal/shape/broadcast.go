package shape

import "github.com/pkg/errors"

// Broadcast combines two shapes under NumPy broadcasting rules.
//
// The shapes are compared right to left; missing leading dimensions count
// as 1. Each aligned dimension pair must be equal or contain a 1, in which
// case the result takes the larger extent.
//
// Examples:
//
//	Broadcast(Shape{3, 1}, Shape{1, 4}) → Shape{3, 4}
//	Broadcast(Shape{1}, Shape{2, 3})    → Shape{2, 3}
//	Broadcast(Shape{2, 3}, Shape{4, 5}) → error
func Broadcast(a, b Shape) (Shape, error) {
	ndim := max(len(a), len(b))
	result := make(Shape, ndim)

	for i := 0; i < ndim; i++ {
		aDim, bDim := 1, 1
		if idx := len(a) - 1 - i; idx >= 0 {
			aDim = a[idx]
		}
		if idx := len(b) - 1 - i; idx >= 0 {
			bDim = b[idx]
		}

		switch {
		case aDim == bDim:
			result[ndim-1-i] = aDim
		case aDim == 1:
			result[ndim-1-i] = bDim
		case bDim == 1:
			result[ndim-1-i] = aDim
		default:
			return nil, errors.Errorf("broadcast: incompatible shapes %v and %v (dimension %d: %d vs %d)",
				a, b, ndim-1-i, aDim, bDim)
		}
	}

	return result, nil
}

// Index translates linear positions in a broadcasted output into linear
// positions inside each operand. It is built once per output shape and
// threaded unchanged through expression evaluation; Translate performs no
// allocation.
type Index struct {
	dims    Shape
	strides []int
}

// NewIndex builds the translator for the given output shape.
func NewIndex(out Shape) Index {
	return Index{dims: out, strides: out.Strides()}
}

// Shape returns the output shape the translator was built for.
func (ix Index) Shape() Shape {
	return ix.dims
}

// Translate maps a linear position in the output to the corresponding
// linear position inside an operand of the given shape. Dimensions where
// the operand's extent is 1 but the output's is larger contribute stride 0,
// so the operand's single element is read for every output position along
// that dimension. The operand shape must be broadcast-compatible with the
// output shape.
func (ix Index) Translate(pos int, operand Shape) int {
	offset := len(ix.dims) - len(operand)
	idx := 0
	stride := 1

	// Walk right to left so the operand's row-major strides accumulate
	// without a scratch slice.
	for d := len(ix.dims) - 1; d >= offset; d-- {
		extent := operand[d-offset]
		if extent != 1 {
			coord := (pos / ix.strides[d]) % ix.dims[d]
			idx += coord * stride
		}
		stride *= extent
	}
	return idx
}
