package handle

import "github.com/itohio/ndarray/pkg/logger"

// Heap is an owning handle backed by a heap-allocated slice (spec §4.4):
// the common case, used whenever size is not known to be small enough for
// Stack/Sso.
type Heap[T any] struct {
	data  []T
	space AddressSpace
}

// NewHeap allocates n elements of T via alloc (DefaultAllocator if nil).
func NewHeap[T any](n int, alloc Allocator[T]) (*Heap[T], error) {
	if alloc == nil {
		alloc = DefaultAllocator[T]{}
	}
	data, err := alloc.AllocateZero(n)
	if err != nil {
		logger.Log.Debug().Int("n", n).Msg("heap allocation failed")
		return nil, err
	}
	return &Heap[T]{data: data, space: alloc.AddressSpace()}, nil
}

func (h *Heap[T]) Data() []T                 { return h.data }
func (h *Heap[T]) Size() int                 { return len(h.data) }
func (h *Heap[T]) IsNull() bool              { return h.data == nil }
func (h *Heap[T]) AddressSpace() AddressSpace { return h.space }
func (h *Heap[T]) Release() {
	logger.Log.Debug().Int("n", len(h.data)).Msg("heap release")
	h.data = nil
}

var _ Handle[float32] = (*Heap[float32])(nil)
