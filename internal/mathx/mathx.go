// Package mathx supplies the scalar math primitives used by elementwise
// expression operators. All functions follow IEEE-754 semantics: domain
// violations produce NaN or an infinity, never an error.
package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Exp returns e**x.
func Exp[F constraints.Float](x F) F {
	return F(math.Exp(float64(x)))
}

// Log returns the natural logarithm of x. Log(0) is -Inf and Log of a
// negative value is NaN.
func Log[F constraints.Float](x F) F {
	return F(math.Log(float64(x)))
}

// Sqrt returns the square root of x, NaN for x < 0.
func Sqrt[F constraints.Float](x F) F {
	return F(math.Sqrt(float64(x)))
}

// Square returns x*x.
func Square[F constraints.Float](x F) F {
	return x * x
}

// Abs returns the absolute value of x.
func Abs[F constraints.Float](x F) F {
	return F(math.Abs(float64(x)))
}
