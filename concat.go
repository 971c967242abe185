package ndarray

import "github.com/itohio/ndarray/pkg/layout"

// Concatenate implements concatenate<Axis>(a, bs...) (spec §4.5): every
// input must share rank and shape on every axis except axis, and the
// result's shape sums their lengths along axis. Implementation allocates
// the result and assigns each input into its sub-slice along axis, in
// order.
func Concatenate[T any](axis int, first *Array[T], rest ...*Array[T]) (*Array[T], error) {
	rank := first.Rank()
	if axis < 0 || axis >= rank {
		return nil, &OutOfBoundsError{Axis: axis, Index: axis, Len: rank}
	}

	resultShape := append([]int(nil), first.Shape()...)
	for _, r := range rest {
		if r.Rank() != rank {
			return nil, &ShapeMismatchError{Op: "Concatenate", Want: first.Shape(), Got: r.Shape()}
		}
		for ax := 0; ax < rank; ax++ {
			if ax == axis {
				continue
			}
			if r.Shape()[ax] != first.Shape()[ax] {
				return nil, &ShapeMismatchError{Op: "Concatenate", Want: first.Shape(), Got: r.Shape()}
			}
		}
		resultShape[axis] += r.Shape()[axis]
	}

	out, err := NewWithPolicy[T](first.policy, first.alg, resultShape...)
	if err != nil {
		return nil, err
	}

	cursor := 0
	all := append([]*Array[T]{first}, rest...)
	for _, src := range all {
		args := make([]layout.Arg, rank)
		for ax := 0; ax < rank; ax++ {
			if ax == axis {
				args[ax] = layout.Rng(layout.R(cursor, cursor+src.Shape()[axis], 1))
			} else {
				args[ax] = layout.All()
			}
		}
		dstView, err := out.Slice(args...)
		if err != nil {
			return nil, err
		}
		if err := dstView.Assign(src); err != nil {
			return nil, err
		}
		cursor += src.Shape()[axis]
	}
	return out, nil
}
