package expr

import (
	"github.com/pkg/errors"

	"github.com/fuse-ml/fuse/internal/parallel"
	"github.com/fuse-ml/fuse/internal/shape"
)

// Materialization: the one consumer of an expression tree. The tree's
// shape is resolved exactly once per sweep, which is where broadcast
// incompatibilities surface; after that every linear position of the
// output is evaluated independently.
//
// The type parameter keeps the root concrete, so the whole sweep runs with
// static dispatch when called with a concrete tree.

// Materialize evaluates the tree into a freshly allocated Dense of the
// tree's broadcasted shape, using the default sweep configuration.
func Materialize[E Expr](e E) (*Dense, error) {
	return MaterializeWith(e, parallel.DefaultConfig())
}

// MaterializeWith is Materialize with an explicit sweep configuration.
func MaterializeWith[E Expr](e E, cfg parallel.Config) (*Dense, error) {
	s, err := e.Shape()
	if err != nil {
		return nil, err
	}
	dst, err := NewDense(s)
	if err != nil {
		return nil, err
	}
	sweep(dst.data, e, s, cfg)
	return dst, nil
}

// AssignTo evaluates the tree into an existing buffer, which must already
// have the tree's broadcasted shape. Workers write disjoint positions, so
// the destination needs no locking.
func AssignTo[E Expr](dst *Dense, e E, cfg parallel.Config) error {
	s, err := e.Shape()
	if err != nil {
		return err
	}
	if !dst.dims.Equal(s) {
		return errors.Errorf("assign: destination shape %v does not match expression shape %v", dst.dims, s)
	}
	sweep(dst.data, e, s, cfg)
	return nil
}

func sweep[E Expr](dst []float32, e E, s shape.Shape, cfg parallel.Config) {
	idx := shape.NewIndex(s)
	parallel.For(len(dst), func(i int) {
		dst[i] = e.Eval(i, idx)
	}, cfg)
}
