package ndarray

import (
	"github.com/itohio/ndarray/pkg/handle"
	"github.com/itohio/ndarray/pkg/layout"
)

// Slice implements operator()(args...) for an Array (spec §4.5): zero args
// returns a full view; indices and ranges are dispatched per pkg/layout's
// slicing algebra and the result is always a View (never an Array) since
// the returned storage is borrowed from this array, not owned.
func (a *Array[T]) Slice(args ...layout.Arg) (*View[T], error) {
	if len(args) == 0 {
		return a.AsArrayView(), nil
	}
	off, m, err := a.m.Slice(args...)
	if err != nil {
		return nil, err
	}
	return &View[T]{
		h:   handle.NewBorrowed(a.h.Data()[off:], a.h.AddressSpace()),
		m:   m,
		alg: a.alg,
	}, nil
}
