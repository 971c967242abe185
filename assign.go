package ndarray

import (
	"github.com/itohio/ndarray/pkg/iter"
	"github.com/itohio/ndarray/pkg/layout"
)

// container is the common surface Assign/SetScalar/compound op-assign need
// from either an Array or a View: raw element storage plus the idx_map
// describing how to address it.
type container[T any] interface {
	data() []T
	idxMap() layout.IdxMap
}

// SetScalar implements operator=(scalar) (spec §4.5): for ArrayAlgebra and
// VectorAlgebra it broadcasts to every element; for MatrixAlgebra it zeroes
// off-diagonal positions and fills the (shorter) diagonal with v.
func (a *Array[T]) SetScalar(v T) { setScalar[T](a, a.alg, v) }

// SetScalar is View's counterpart of Array.SetScalar.
func (v *View[T]) SetScalar(val T) { setScalar[T](v, v.alg, val) }

func setScalar[T any](dst container[T], alg Algebra, v T) {
	m := dst.idxMap()
	data := dst.data()
	if alg != MatrixAlgebra {
		it := iter.New(m)
		for it.Next() {
			data[it.Offset()] = v
		}
		return
	}
	var zero T
	rows, cols := m.Lengths()[0], m.Lengths()[1]
	diag := rows
	if cols < diag {
		diag = cols
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			off, _ := m.Offset(false, i, j)
			if i == j && i < diag {
				data[off] = v
			} else {
				data[off] = zero
			}
		}
	}
}

// Assign implements operator=(other array) for an Array (spec §4.5): the
// array is resized to match src's shape (invalidating outstanding views),
// then every element is deep-copied.
func (a *Array[T]) Assign(src container[T]) error {
	if err := a.Resize(src.idxMap().Lengths()...); err != nil {
		return err
	}
	copyElements[T](a, src)
	return nil
}

// Assign implements operator=(other array) for a View (spec §4.5): a shape
// mismatch is fatal, returned as ShapeMismatchError, since a view cannot
// resize the storage it borrows.
func (v *View[T]) Assign(src container[T]) error {
	if !intsEqual(v.Shape(), src.idxMap().Lengths()) {
		return &ShapeMismatchError{Op: "View.Assign", Want: v.Shape(), Got: src.idxMap().Lengths()}
	}
	copyElements[T](v, src)
	return nil
}

// copyElements implements the element-assignment optimisation of spec
// §4.5: when both sides are strided_1d, share the same stride order and
// have matching size, a flat loop in that shared order already visits both
// sides index-for-index, so it can run with the shared stride directly.
// There is no block-copy path: a map that is not strided_1d, including a
// block layout with one stride gap, goes through the general iterator
// below.
//
// Otherwise, fall back to the general strided iterator, walking dst in its
// own stride order but addressing src by the matching logical multi-index
// rather than src's own traversal order: that keeps the copy index-for-index
// even when dst and src disagree on stride order (e.g. assigning from a
// transposed view), instead of silently copying memory-order-for-memory-order.
func copyElements[T any](dst, src container[T]) {
	dm, sm := dst.idxMap(), src.idxMap()
	ddata, sdata := dst.data(), src.data()

	if dm.Prop().Has(layout.Strided1D) && sm.Prop().Has(layout.Strided1D) &&
		dm.Size() == sm.Size() && intsEqual(dm.StrideOrder(), sm.StrideOrder()) {
		n := dm.Size()
		if n == 0 {
			return
		}
		dOff, sOff := firstOffset(dm), firstOffset(sm)
		dStride, sStride := minStrideOf(dm), minStrideOf(sm)
		for i := 0; i < n; i++ {
			ddata[dOff+i*dStride] = sdata[sOff+i*sStride]
		}
		return
	}

	dOrder := dm.StrideOrder()
	di := iter.New(dm)
	for di.Next() {
		idx := di.Index(dOrder)
		sOff, _ := sm.Offset(false, idx...)
		ddata[di.Offset()] = sdata[sOff]
	}
}

func firstOffset(m layout.IdxMap) int {
	indices := make([]int, m.Rank())
	off, _ := m.Offset(false, indices...)
	return off
}

func minStrideOf(m layout.IdxMap) int {
	min := m.Strides()[0]
	for _, s := range m.Strides()[1:] {
		if s < min {
			min = s
		}
	}
	return min
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AddAssign, SubAssign, MulAssign and DivAssign implement the compound
// op-assign operators (spec §4.5): "*this = *this OP rhs", applied
// element-wise in lockstep over dst and rhs, which must already share dst's
// shape.
func AddAssign[T Numeric](dst container[T], rhs container[T]) error { return compoundAssign(dst, rhs, '+') }
func SubAssign[T Numeric](dst container[T], rhs container[T]) error { return compoundAssign(dst, rhs, '-') }
func MulAssign[T Numeric](dst container[T], rhs container[T]) error { return compoundAssign(dst, rhs, '*') }
func DivAssign[T Numeric](dst container[T], rhs container[T]) error { return compoundAssign(dst, rhs, '/') }

func compoundAssign[T Numeric](dst, rhs container[T], op byte) error {
	dm, rm := dst.idxMap(), rhs.idxMap()
	if !intsEqual(dm.Lengths(), rm.Lengths()) {
		return &ShapeMismatchError{Op: "compound op-assign", Want: dm.Lengths(), Got: rm.Lengths()}
	}
	ddata, rdata := dst.data(), rhs.data()
	dOrder := dm.StrideOrder()
	di := iter.New(dm)
	for di.Next() {
		idx := di.Index(dOrder)
		rOff, _ := rm.Offset(false, idx...)
		a, b := ddata[di.Offset()], rdata[rOff]
		switch op {
		case '+':
			ddata[di.Offset()] = a + b
		case '-':
			ddata[di.Offset()] = a - b
		case '*':
			ddata[di.Offset()] = a * b
		case '/':
			ddata[di.Offset()] = a / b
		}
	}
	return nil
}
