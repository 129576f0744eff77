package mathx

import (
	"math"
	"testing"
)

func TestFloat32Primitives(t *testing.T) {
	tests := []struct {
		name     string
		f        func(float32) float32
		in       float32
		expected float32
	}{
		{"Exp(0)", Exp[float32], 0, 1},
		{"Exp(1)", Exp[float32], 1, float32(math.E)},
		{"Log(1)", Log[float32], 1, 0},
		{"Sqrt(4)", Sqrt[float32], 4, 2},
		{"Square(-3)", Square[float32], -3, 9},
		{"Abs(-2.5)", Abs[float32], -2.5, 2.5},
		{"Abs(2.5)", Abs[float32], 2.5, 2.5},
	}

	for _, tt := range tests {
		if got := tt.f(tt.in); math.Abs(float64(got-tt.expected)) > 1e-6 {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.expected)
		}
	}
}

func TestDomainConditionsAreSilent(t *testing.T) {
	if v := Log[float32](0); !math.IsInf(float64(v), -1) {
		t.Errorf("Log(0) = %v, want -Inf", v)
	}
	if v := Log[float32](-1); !math.IsNaN(float64(v)) {
		t.Errorf("Log(-1) = %v, want NaN", v)
	}
	if v := Sqrt[float32](-1); !math.IsNaN(float64(v)) {
		t.Errorf("Sqrt(-1) = %v, want NaN", v)
	}
}

func TestFloat64Instantiation(t *testing.T) {
	if got := Exp[float64](1); math.Abs(got-math.E) > 1e-12 {
		t.Errorf("Exp[float64](1) = %v, want %v", got, math.E)
	}
	if got := Square[float64](1.5); got != 2.25 {
		t.Errorf("Square[float64](1.5) = %v, want 2.25", got)
	}
}
