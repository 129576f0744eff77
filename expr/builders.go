// Copyright 2026 Fuse ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package expr

import "github.com/fuse-ml/fuse/internal/expr"

// Tree builders. Go has no operator overloading, so these free functions
// are the infix surface: Add(a, Mul(b, ExponentExp(c))) reads as
// a + b*exp(c). Each builder only constructs a node; shapes are validated
// on the first Shape or Materialize call on the resulting tree.

// Add builds lhs + rhs.
func Add[L, R Expr](lhs L, rhs R) Binary[AddOp, L, R] {
	return expr.Add(lhs, rhs)
}

// Sub builds lhs - rhs.
func Sub[L, R Expr](lhs L, rhs R) Binary[SubOp, L, R] {
	return expr.Sub(lhs, rhs)
}

// Mul builds lhs * rhs.
func Mul[L, R Expr](lhs L, rhs R) Binary[MulOp, L, R] {
	return expr.Mul(lhs, rhs)
}

// Div builds lhs / rhs; division by zero yields IEEE infinities or NaN at
// evaluation time.
func Div[L, R Expr](lhs L, rhs R) Binary[DivOp, L, R] {
	return expr.Div(lhs, rhs)
}

// ExponentExp builds e**param.
func ExponentExp[P Expr](param P) Unary[ExpOp, P] {
	return expr.ExponentExp(param)
}

// SqrtExp builds the square root of param.
func SqrtExp[P Expr](param P) Unary[SqrtOp, P] {
	return expr.SqrtExp(param)
}

// SquareExp builds param squared.
func SquareExp[P Expr](param P) Unary[SquareOp, P] {
	return expr.SquareExp(param)
}

// LogExp builds the natural logarithm of param.
func LogExp[P Expr](param P) Unary[LogOp, P] {
	return expr.LogExp(param)
}

// AbsExp builds the absolute value of param.
func AbsExp[P Expr](param P) Unary[AbsOp, P] {
	return expr.AbsExp(param)
}

// ReluActivateExp builds max(0, param).
func ReluActivateExp[P Expr](param P) Unary[ReluOp, P] {
	return expr.ReluActivateExp(param)
}
