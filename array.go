package ndarray

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/itohio/ndarray/pkg/handle"
	"github.com/itohio/ndarray/pkg/layout"
	"github.com/itohio/ndarray/pkg/logger"
)

// Array is the owning container of spec §4.5: a layout (idx_map) paired
// with an owning storage handle. Alg is checked once at construction and
// never changes; R (rank) is fixed for the lifetime of the array except
// across Resize, which may change it.
type Array[T any] struct {
	h      handle.Handle[T]
	m      layout.IdxMap
	alg    Algebra
	policy layout.Policy
}

// New builds a contiguous array of the given shape under row-major (C)
// policy, with algebra tag ArrayAlgebra and zero-valued elements.
func New[T any](shape ...int) (*Array[T], error) {
	return NewWithPolicy[T](layout.C, ArrayAlgebra, shape...)
}

// NewWithPolicy builds a contiguous array under the given layout policy
// and algebra tag.
func NewWithPolicy[T any](policy layout.Policy, alg Algebra, shape ...int) (*Array[T], error) {
	if err := validateAlgebra(alg, len(shape)); err != nil {
		return nil, err
	}
	m := policy.Build(shape)
	h, err := handle.NewHeap[T](m.Size(), nil)
	if err != nil {
		return nil, err
	}
	return &Array[T]{h: h, m: m, alg: alg, policy: policy}, nil
}

// Zeros builds an array of the given shape, every element the zero value.
func Zeros[T Numeric](shape ...int) (*Array[T], error) {
	return New[T](shape...)
}

// Ones builds an array of the given shape, every element 1.
func Ones[T Numeric](shape ...int) (*Array[T], error) {
	a, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	data := a.h.Data()
	for i := range data {
		data[i] = T(1)
	}
	return a, nil
}

// Rand builds an array of the given shape filled from U[0,1).
//
// Grounded on the teacher's math32 use (x/math/mat, kinematics): float32
// fills are drawn signed (2*v-1, symmetric around 0) and folded back to
// U[0,1) via math32.Abs, matching the teacher's float32-specific numeric
// hygiene rather than assuming a plain float32(float64) conversion suffices.
func Rand[T Float](shape ...int) (*Array[T], error) {
	a, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	data := a.h.Data()
	for i := range data {
		var t T
		switch any(t).(type) {
		case float32:
			signed := rand.Float64()*2 - 1
			f := math32.Abs(float32(signed))
			data[i] = T(f)
		default:
			data[i] = T(rand.Float64())
		}
	}
	return a, nil
}

// RandComplex builds an array of the given shape filled from U[0,1) with
// real and imaginary parts drawn independently (spec §4.5's rand() table:
// "complex: real+imag separately"), supplementing the distilled spec from
// original_source's test coverage of complex fill.
func RandComplex[T Complex](shape ...int) (*Array[T], error) {
	a, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	data := a.h.Data()
	for i := range data {
		re, im := rand.Float64(), rand.Float64()
		var t T
		switch any(t).(type) {
		case complex64:
			data[i] = T(complex(float32(re), float32(im)))
		default:
			data[i] = T(complex(re, im))
		}
	}
	return a, nil
}

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int { return a.m.Rank() }

// Shape returns the per-axis lengths. Callers must not mutate it.
func (a *Array[T]) Shape() []int { return a.m.Lengths() }

// Size returns the total element count.
func (a *Array[T]) Size() int { return a.m.Size() }

// Alg returns the array's algebra tag.
func (a *Array[T]) Alg() Algebra { return a.alg }

// Info returns the array's current (StrideOrder, Prop) layout info.
func (a *Array[T]) Info() layout.Info { return a.m.Info() }

// At returns the element at a full multi-index, panicking on out-of-bounds
// indices (spec §3's note on panic-vs-error mirroring the teacher's
// Tensor.At/SetAt).
func (a *Array[T]) At(indices ...int) T {
	off, err := a.m.Offset(true, indices...)
	if err != nil {
		panic(err)
	}
	return a.h.Data()[off]
}

// Set stores an element at a full multi-index, panicking on out-of-bounds
// indices.
func (a *Array[T]) Set(v T, indices ...int) {
	off, err := a.m.Offset(true, indices...)
	if err != nil {
		panic(err)
	}
	a.h.Data()[off] = v
}

// Resize changes the array's shape in place (spec §4.5): the existing
// handle is kept when the new size equals the old one; otherwise the
// array reallocates and its contents become undefined. Any outstanding
// View over this array is invalidated by either path.
func (a *Array[T]) Resize(shape ...int) error {
	if err := validateAlgebra(a.alg, len(shape)); err != nil {
		return err
	}
	newMap := a.policy.Build(shape)
	if newMap.Size() == a.m.Size() {
		a.m = newMap
		return nil
	}
	logger.Log.Debug().Ints("shape", shape).Msg("resize: reallocating")
	h, err := handle.NewHeap[T](newMap.Size(), nil)
	if err != nil {
		return err
	}
	a.h.Release()
	a.h = h
	a.m = newMap
	return nil
}

// AsArrayView returns a non-owning View with ArrayAlgebra over this
// array's current storage (spec §4.5's as_array_view()).
func (a *Array[T]) AsArrayView() *View[T] {
	return &View[T]{h: handle.NewBorrowed(a.h.Data(), a.h.AddressSpace()), m: a.m, alg: ArrayAlgebra}
}

// data exposes the raw backing slice, shared by assign.go/concat.go.
func (a *Array[T]) data() []T { return a.h.Data() }

func (a *Array[T]) idxMap() layout.IdxMap { return a.m }
