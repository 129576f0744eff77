// Copyright 2026 Fuse ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package expr

import "github.com/fuse-ml/fuse/internal/expr"

// Operator functors, re-exported so callers can name built tree types and
// instantiate ElementWiseBinaryExpr / ElementWiseUnaryExpr directly.

// BinaryOp is the constraint for two-operand elementwise operators.
type BinaryOp = expr.BinaryOp

// UnaryOp is the constraint for one-operand elementwise operators.
type UnaryOp = expr.UnaryOp

// Binary operator functors.
type (
	// AddOp computes a + b.
	AddOp = expr.AddOp
	// SubOp computes a - b.
	SubOp = expr.SubOp
	// MulOp computes a * b.
	MulOp = expr.MulOp
	// DivOp computes a / b.
	DivOp = expr.DivOp
)

// Unary operator functors.
type (
	// ExpOp computes e**v.
	ExpOp = expr.ExpOp
	// SqrtOp computes the square root of v.
	SqrtOp = expr.SqrtOp
	// SquareOp computes v*v.
	SquareOp = expr.SquareOp
	// LogOp computes the natural logarithm of v.
	LogOp = expr.LogOp
	// ReluOp computes max(0, v).
	ReluOp = expr.ReluOp
	// AbsOp computes the absolute value of v.
	AbsOp = expr.AbsOp
)

// ElementWiseBinaryExpr builds a binary node for an arbitrary operator.
func ElementWiseBinaryExpr[O BinaryOp, L, R Expr](lhs L, rhs R) Binary[O, L, R] {
	return expr.ElementWiseBinaryExpr[O](lhs, rhs)
}

// ElementWiseUnaryExpr builds a unary node for an arbitrary operator.
func ElementWiseUnaryExpr[O UnaryOp, P Expr](param P) Unary[O, P] {
	return expr.ElementWiseUnaryExpr[O](param)
}
