// Package iter implements the strided forward iterator (spec §4.5): a
// cursor that visits every linear offset of an idx_map's elements in
// stride-order C order, advancing the slowest-incrementing axis last
// (fastest axis first), without materializing the full index list.
//
// The advance step is grounded on the teacher's
// primitive/generics.AdvanceOffsets odometer: increment the fastest axis,
// roll over into the next slower axis on overflow, stop when the slowest
// axis itself overflows.
package iter

import "github.com/itohio/ndarray/pkg/layout"

// Strided walks every element offset of an idx_map, fastest-varying
// dimension first, in O(1) extra space per step.
type Strided struct {
	lengths []int // per dimension, in stride-order order (slowest..fastest)
	strides []int // matching per-dimension stride
	index   []int // current multi-index, in stride-order order
	offset  int
	done    bool
	size    int
	seen    int
}

// New builds a Strided iterator over m, positioned at its first element
// (offset 0). Calling Next immediately after New yields element 0; the
// zero-rank map yields exactly one element at offset 0.
func New(m layout.IdxMap) *Strided {
	n := m.Rank()
	order := m.StrideOrder()
	lengths := make([]int, n)
	strides := make([]int, n)
	for i, axis := range order {
		lengths[i] = m.Lengths()[axis]
		strides[i] = m.Strides()[axis]
	}
	return &Strided{
		lengths: lengths,
		strides: strides,
		index:   make([]int, n),
		size:    m.Size(),
	}
}

// Offset returns the current element's linear offset.
func (s *Strided) Offset() int { return s.offset }

// Index returns the current multi-index in the map's own axis numbering.
// order must be the same StrideOrder the iterator was built with; callers
// typically keep the originating idx_map around for this purpose.
func (s *Strided) Index(order []int) []int {
	idx := make([]int, len(order))
	for i, axis := range order {
		idx[axis] = s.index[i]
	}
	return idx
}

// Next advances to the next element and reports whether one remains
// (i.e. whether the cursor, after advancing, still points at a valid
// element). The first call after New does not advance; it confirms there
// is at least one element to visit.
func (s *Strided) Next() bool {
	if s.done {
		return false
	}
	if s.seen == 0 {
		s.seen = 1
		return s.size > 0
	}
	if s.seen >= s.size {
		s.done = true
		return false
	}
	s.advance()
	s.seen++
	return true
}

// advance implements the odometer step (grounded on AdvanceOffsets):
// increment the fastest dimension (last in stride-order order), carrying
// into slower dimensions on overflow.
func (s *Strided) advance() {
	for dim := len(s.lengths) - 1; dim >= 0; dim-- {
		s.index[dim]++
		s.offset += s.strides[dim]
		if s.index[dim] < s.lengths[dim] {
			return
		}
		s.offset -= s.strides[dim] * s.lengths[dim]
		s.index[dim] = 0
	}
}

// Reset returns the iterator to its initial state.
func (s *Strided) Reset() {
	for i := range s.index {
		s.index[i] = 0
	}
	s.offset = 0
	s.done = false
	s.seen = 0
}
