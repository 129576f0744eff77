package expr

import "github.com/fuse-ml/fuse/internal/mathx"

// BinaryOp is the constraint for two-operand elementwise operators. The
// implementing types are zero-sized, so a Binary node stores the operator
// purely in its type.
type BinaryOp interface {
	Apply(a, b float32) float32
}

// UnaryOp is the constraint for one-operand elementwise operators.
type UnaryOp interface {
	Apply(v float32) float32
}

// The operator catalog. Adding an elementwise operation means adding a
// functor here and, optionally, a builder in builders.go; node types never
// change. All operators follow IEEE-754 semantics with no domain guards:
// division by zero and log/sqrt of non-positive values propagate as
// infinities or NaN.

// AddOp computes a + b.
type AddOp struct{}

func (AddOp) Apply(a, b float32) float32 { return a + b }

// SubOp computes a - b.
type SubOp struct{}

func (SubOp) Apply(a, b float32) float32 { return a - b }

// MulOp computes a * b.
type MulOp struct{}

func (MulOp) Apply(a, b float32) float32 { return a * b }

// DivOp computes a / b.
type DivOp struct{}

func (DivOp) Apply(a, b float32) float32 { return a / b }

// ExpOp computes e**v.
type ExpOp struct{}

func (ExpOp) Apply(v float32) float32 { return mathx.Exp(v) }

// SqrtOp computes the square root of v.
type SqrtOp struct{}

func (SqrtOp) Apply(v float32) float32 { return mathx.Sqrt(v) }

// SquareOp computes v*v.
type SquareOp struct{}

func (SquareOp) Apply(v float32) float32 { return mathx.Square(v) }

// LogOp computes the natural logarithm of v.
type LogOp struct{}

func (LogOp) Apply(v float32) float32 { return mathx.Log(v) }

// ReluOp computes max(0, v); exactly 0 maps to 0.
type ReluOp struct{}

func (ReluOp) Apply(v float32) float32 {
	if v > 0 {
		return v
	}
	return 0
}

// AbsOp computes the absolute value of v.
type AbsOp struct{}

func (AbsOp) Apply(v float32) float32 { return mathx.Abs(v) }
