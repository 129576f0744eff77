// Package expr implements lazy elementwise tensor expressions. A tree of
// expression nodes is built up front with no computation and no shape
// validation; all arithmetic happens in a single per-element pass driven by
// the consumer, so no intermediate result is ever materialized.
//
// Nodes are plain values. Composite nodes embed their children as generic
// type parameters, so a fully concrete tree evaluates with static dispatch
// and no heap allocation per node or per element. The one lifetime rule is
// that a node must not outlive the operands it was built from: Scalar
// borrows its float and Dense leaves borrow nothing but own their buffer.
package expr

import (
	"go.uber.org/multierr"

	"github.com/fuse-ml/fuse/internal/shape"
)

// Expr is the capability set shared by every expression node. Eval and
// Shape are pure: repeated calls with the same arguments yield identical
// results as long as borrowed operands are not mutated between calls.
type Expr interface {
	// Eval returns the expression's value at linear position pos of the
	// broadcasted output. The index translator is built once per output
	// shape by the consumer and threaded through the tree unchanged.
	Eval(pos int, idx shape.Index) float32

	// Shape returns the expression's broadcasted output shape. Shape
	// incompatibility anywhere in the tree surfaces here, never during
	// construction and never per element.
	Shape() (shape.Shape, error)
}

// Binary combines two child expressions elementwise through the operator O.
// Children are held by value; for leaves holding pointers or slices this
// copies only the header, never operand data.
type Binary[O BinaryOp, L, R Expr] struct {
	lhs L
	rhs R
}

// Eval applies the operator to both children evaluated at the same
// position.
func (e Binary[O, L, R]) Eval(pos int, idx shape.Index) float32 {
	var op O
	return op.Apply(e.lhs.Eval(pos, idx), e.rhs.Eval(pos, idx))
}

// Shape resolves both child shapes and broadcasts them. The result is
// recomputed on every call; consumers resolve it once per sweep. When both
// children fail their errors are combined.
func (e Binary[O, L, R]) Shape() (shape.Shape, error) {
	ls, lerr := e.lhs.Shape()
	rs, rerr := e.rhs.Shape()
	if err := multierr.Append(lerr, rerr); err != nil {
		return nil, err
	}
	return shape.Broadcast(ls, rs)
}

// Unary applies the operator O to a single child expression.
type Unary[O UnaryOp, P Expr] struct {
	param P
}

// Eval applies the operator to the child evaluated at the same position.
func (e Unary[O, P]) Eval(pos int, idx shape.Index) float32 {
	var op O
	return op.Apply(e.param.Eval(pos, idx))
}

// Shape passes the child's shape through unchanged.
func (e Unary[O, P]) Shape() (shape.Shape, error) {
	return e.param.Shape()
}

// Check resolves the shape of the whole tree and reports the first
// structural incompatibility, if any. Equivalent to calling Shape on the
// root and discarding the shape.
func Check(e Expr) error {
	_, err := e.Shape()
	return err
}
