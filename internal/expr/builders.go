package expr

// Tree builders. Each one is a bare constructor call: no evaluation, no
// shape validation. Builders accept any expression-typed operand, leaf or
// composite, so trees nest to arbitrary depth.

// ElementWiseBinaryExpr builds a binary node for an arbitrary operator.
// The named builders below are sugar over it.
func ElementWiseBinaryExpr[O BinaryOp, L, R Expr](lhs L, rhs R) Binary[O, L, R] {
	return Binary[O, L, R]{lhs: lhs, rhs: rhs}
}

// ElementWiseUnaryExpr builds a unary node for an arbitrary operator.
func ElementWiseUnaryExpr[O UnaryOp, P Expr](param P) Unary[O, P] {
	return Unary[O, P]{param: param}
}

// Add builds lhs + rhs.
func Add[L, R Expr](lhs L, rhs R) Binary[AddOp, L, R] {
	return ElementWiseBinaryExpr[AddOp](lhs, rhs)
}

// Sub builds lhs - rhs.
func Sub[L, R Expr](lhs L, rhs R) Binary[SubOp, L, R] {
	return ElementWiseBinaryExpr[SubOp](lhs, rhs)
}

// Mul builds lhs * rhs.
func Mul[L, R Expr](lhs L, rhs R) Binary[MulOp, L, R] {
	return ElementWiseBinaryExpr[MulOp](lhs, rhs)
}

// Div builds lhs / rhs. Division by zero follows IEEE-754 at evaluation
// time.
func Div[L, R Expr](lhs L, rhs R) Binary[DivOp, L, R] {
	return ElementWiseBinaryExpr[DivOp](lhs, rhs)
}

// ExponentExp builds e**param.
func ExponentExp[P Expr](param P) Unary[ExpOp, P] {
	return ElementWiseUnaryExpr[ExpOp](param)
}

// SqrtExp builds the square root of param.
func SqrtExp[P Expr](param P) Unary[SqrtOp, P] {
	return ElementWiseUnaryExpr[SqrtOp](param)
}

// SquareExp builds param squared.
func SquareExp[P Expr](param P) Unary[SquareOp, P] {
	return ElementWiseUnaryExpr[SquareOp](param)
}

// LogExp builds the natural logarithm of param.
func LogExp[P Expr](param P) Unary[LogOp, P] {
	return ElementWiseUnaryExpr[LogOp](param)
}

// AbsExp builds the absolute value of param.
func AbsExp[P Expr](param P) Unary[AbsOp, P] {
	return ElementWiseUnaryExpr[AbsOp](param)
}

// ReluActivateExp builds max(0, param).
func ReluActivateExp[P Expr](param P) Unary[ReluOp, P] {
	return ElementWiseUnaryExpr[ReluOp](param)
}
