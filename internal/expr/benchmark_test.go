package expr

import (
	"testing"

	"github.com/fuse-ml/fuse/internal/parallel"
	"github.com/fuse-ml/fuse/internal/shape"
)

var evalSink float32

func TestEvalIsAllocationFree(t *testing.T) {
	a := NewConstantDims(2, 8, 8)
	b := NewConstantDims(3, 8, 1)
	v := float32(0.5)

	e := Mul(Add(a, b), ExponentExp(Mul(NewScalar(&v), Sub(a, b))))
	s, err := e.Shape()
	if err != nil {
		t.Fatal(err)
	}
	idx := shape.NewIndex(s)

	pos := 0
	allocs := testing.AllocsPerRun(1000, func() {
		evalSink += e.Eval(pos, idx)
		pos = (pos + 1) % s.NumElements()
	})
	if allocs != 0 {
		t.Errorf("Eval allocated %v times per run, want 0", allocs)
	}
}

func BenchmarkEvalDeepTree(b *testing.B) {
	col, err := FromSlice(make([]float32, 64), shape.Shape{64, 1})
	if err != nil {
		b.Fatal(err)
	}
	row, err := FromSlice(make([]float32, 64), shape.Shape{1, 64})
	if err != nil {
		b.Fatal(err)
	}

	e := Div(ExponentExp(Mul(col, row)), Add(SquareExp(col), NewConstantDims(1, 64, 64)))
	s, _ := e.Shape()
	idx := shape.NewIndex(s)
	n := s.NumElements()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		evalSink += e.Eval(i%n, idx)
	}
}

func BenchmarkMaterialize(b *testing.B) {
	a := NewConstantDims(2, 128, 128)
	c := NewConstantDims(3, 128, 1)
	e := Mul(Add(a, c), ReluActivateExp(Sub(a, c)))

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := MaterializeWith(e, parallel.Sequential()); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("parallel", func(b *testing.B) {
		cfg := parallel.DefaultConfig()
		for i := 0; i < b.N; i++ {
			if _, err := MaterializeWith(e, cfg); err != nil {
				b.Fatal(err)
			}
		}
	})
}
