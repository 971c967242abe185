package ndarray

import "github.com/itohio/ndarray/pkg/layout"

// Arange builds a rank-1 array with values start, start+1, ..., stop-1.
func Arange[T Numeric](start, stop int) (*Array[T], error) {
	n := stop - start
	if n < 0 {
		n = 0
	}
	a, err := New[T](n)
	if err != nil {
		return nil, err
	}
	data := a.data()
	for i := 0; i < n; i++ {
		data[i] = T(start + i)
	}
	return a, nil
}

// Eye builds the n x n identity matrix with MatrixAlgebra.
func Eye[T Numeric](n int) (*Array[T], error) {
	a, err := NewWithPolicy[T](layout.C, MatrixAlgebra, n, n)
	if err != nil {
		return nil, err
	}
	var one T = 1
	for i := 0; i < n; i++ {
		a.Set(one, i, i)
	}
	return a, nil
}

// Reshape returns a new Array with the same element count laid out under
// the given shape (spec §7: raises LayoutMismatch when attempted on a
// non-contiguous source, since a reshape that isn't a pure reinterpretation
// of contiguous memory has no single well-defined result here).
func (a *Array[T]) Reshape(shape ...int) (*Array[T], error) {
	if !a.m.IsContiguous() {
		return nil, &LayoutMismatchError{Detail: "Reshape requires a contiguous source"}
	}
	size := 1
	for _, s := range shape {
		size *= s
	}
	if size != a.m.Size() {
		return nil, &ShapeMismatchError{Op: "Reshape", Want: shape, Got: a.m.Lengths()}
	}
	out, err := NewWithPolicy[T](a.policy, a.alg, shape...)
	if err != nil {
		return nil, err
	}
	copy(out.data(), a.data())
	return out, nil
}
