// Copyright 2026 Fuse ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr provides the public API for lazy elementwise tensor
// expressions in the Fuse ML framework.
//
// An expression tree is assembled from leaves and builder functions and
// evaluated in a single pass, with NumPy-style broadcasting across
// mismatched shapes and no intermediate buffers:
//
//	a, _ := expr.FromSlice([]float32{1, 2, 3}, expr.Shape{3, 1})
//	b, _ := expr.FromSlice([]float32{10, 20, 30, 40}, expr.Shape{1, 4})
//	out, err := expr.Materialize(expr.Mul(expr.ExponentExp(a), b))
//	// out has shape [3, 4]
package expr

import (
	"github.com/fuse-ml/fuse/internal/expr"
	"github.com/fuse-ml/fuse/internal/parallel"
	"github.com/fuse-ml/fuse/internal/shape"
)

// Shape represents the dimensions of a tensor, highest-order dimension
// first. Shape{1} is the scalar shape.
type Shape = shape.Shape

// Index translates linear output positions into operand positions under
// broadcasting. Consumers driving Eval themselves build one per output
// shape with NewIndex.
type Index = shape.Index

// NewIndex builds the index translator for an output shape.
func NewIndex(out Shape) Index {
	return shape.NewIndex(out)
}

// Broadcast combines two shapes under broadcasting rules, or reports a
// structural incompatibility.
func Broadcast(a, b Shape) (Shape, error) {
	return shape.Broadcast(a, b)
}

// Expr is the interface satisfied by every expression node.
type Expr = expr.Expr

// Node types, re-exported so callers can name intermediate trees.

// Scalar is a leaf borrowing one external float.
type Scalar = expr.Scalar

// Constant is a leaf owning one float replicated across a shape.
type Constant = expr.Constant

// Dense is a materialized buffer that also acts as an expression leaf.
type Dense = expr.Dense

// Binary combines two child expressions through the operator O.
type Binary[O BinaryOp, L, R Expr] = expr.Binary[O, L, R]

// Unary applies the operator O to one child expression.
type Unary[O UnaryOp, P Expr] = expr.Unary[O, P]

// SweepConfig controls how materialization splits work across goroutines.
type SweepConfig = parallel.Config

// DefaultSweep sizes the sweep to the machine's CPU count.
func DefaultSweep() SweepConfig { return parallel.DefaultConfig() }

// SequentialSweep forces a single-goroutine sweep.
func SequentialSweep() SweepConfig { return parallel.Sequential() }

// Leaf constructors

// NewScalar builds a leaf borrowing v; the value must outlive the node.
func NewScalar(v *float32) Scalar {
	return expr.NewScalar(v)
}

// NewConstant builds a constant leaf with an explicit shape.
func NewConstant(v float32, s Shape) Constant {
	return expr.NewConstant(v, s)
}

// NewConstantDims builds a constant leaf from dimension extents.
func NewConstantDims(v float32, dims ...int) Constant {
	return expr.NewConstantDims(v, dims...)
}

// NewDense allocates a zero-filled buffer with the given shape.
func NewDense(s Shape) (*Dense, error) {
	return expr.NewDense(s)
}

// FromSlice wraps an existing row-major slice in a Dense leaf.
func FromSlice(data []float32, s Shape) (*Dense, error) {
	return expr.FromSlice(data, s)
}

// Materialization

// Materialize resolves the tree's shape once, allocates the output, and
// evaluates every position.
func Materialize[E Expr](e E) (*Dense, error) {
	return expr.Materialize(e)
}

// MaterializeWith is Materialize with an explicit sweep configuration.
func MaterializeWith[E Expr](e E, cfg SweepConfig) (*Dense, error) {
	return expr.MaterializeWith(e, cfg)
}

// AssignTo evaluates the tree into an existing buffer of matching shape.
func AssignTo[E Expr](dst *Dense, e E, cfg SweepConfig) error {
	return expr.AssignTo(dst, e, cfg)
}

// Check reports the first broadcast incompatibility in the tree, if any.
func Check(e Expr) error {
	return expr.Check(e)
}
