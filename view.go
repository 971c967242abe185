package ndarray

import (
	"github.com/itohio/ndarray/pkg/handle"
	"github.com/itohio/ndarray/pkg/layout"
)

// View is the non-owning counterpart of spec §4.5: a pair (idx_map,
// borrowed handle). A View never outlives the storage it borrows from —
// that is a contract on the caller, exactly as spec.md states; nothing in
// this package can enforce it at compile time.
type View[T any] struct {
	h   handle.Handle[T]
	m   layout.IdxMap
	alg Algebra
}

func (v *View[T]) Rank() int         { return v.m.Rank() }
func (v *View[T]) Shape() []int      { return v.m.Lengths() }
func (v *View[T]) Size() int         { return v.m.Size() }
func (v *View[T]) Alg() Algebra      { return v.alg }
func (v *View[T]) Info() layout.Info { return v.m.Info() }

func (v *View[T]) At(indices ...int) T {
	off, err := v.m.Offset(true, indices...)
	if err != nil {
		panic(err)
	}
	return v.h.Data()[off]
}

func (v *View[T]) Set(val T, indices ...int) {
	off, err := v.m.Offset(true, indices...)
	if err != nil {
		panic(err)
	}
	v.h.Data()[off] = val
}

func (v *View[T]) data() []T            { return v.h.Data() }
func (v *View[T]) idxMap() layout.IdxMap { return v.m }

// Slice implements operator()(args...) for a View (spec §4.5): zero args
// returns the full current view; otherwise it returns a narrower View
// sharing the same borrowed handle, offset into the buffer.
func (v *View[T]) Slice(args ...layout.Arg) (*View[T], error) {
	if len(args) == 0 {
		return &View[T]{h: v.h, m: v.m, alg: v.alg}, nil
	}
	off, m, err := v.m.Slice(args...)
	if err != nil {
		return nil, err
	}
	return &View[T]{h: handle.NewBorrowed(v.data()[off:], v.h.AddressSpace()), m: m, alg: v.alg}, nil
}
