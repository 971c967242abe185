package handle

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/itohio/ndarray/pkg/logger"
)

// refCount is a shared atomic reference counter, one per underlying buffer,
// pointed to by every Shared handle derived from it (grounded on the
// teacher's smart_view.go refCount/atomic.AddInt64 pattern).
type refCount struct {
	n int64
}

// Shared is a reference-counted owning handle: Clone increments the count
// and hands back an independent handle over the same buffer; Release
// decrements it and frees the buffer only when the count reaches zero.
//
// Unlike the teacher's pointer-derived view identity (a *uintptr* taken from
// unsafe.Pointer of the buffer), Shared tags itself with a uuid.UUID: a
// handle created before a resize must keep a stable identity across the
// buffer swap a resize performs, which a pointer derived from the old buffer
// cannot provide.
type Shared[T any] struct {
	data  []T
	space AddressSpace
	refs  *refCount
	id    uuid.UUID
}

// NewShared allocates n elements via alloc (DefaultAllocator if nil) and
// returns the first handle, with reference count 1.
func NewShared[T any](n int, alloc Allocator[T]) (*Shared[T], error) {
	if alloc == nil {
		alloc = DefaultAllocator[T]{}
	}
	data, err := alloc.AllocateZero(n)
	if err != nil {
		return nil, err
	}
	return &Shared[T]{
		data:  data,
		space: alloc.AddressSpace(),
		refs:  &refCount{n: 1},
		id:    uuid.New(),
	}, nil
}

// Clone returns a new Shared handle over the same buffer, incrementing the
// shared reference count.
func (s *Shared[T]) Clone() *Shared[T] {
	n := atomic.AddInt64(&s.refs.n, 1)
	logger.Log.Debug().Str("handle", s.id.String()).Int64("refs", n).Msg("shared clone")
	return &Shared[T]{data: s.data, space: s.space, refs: s.refs, id: s.id}
}

// ID identifies the underlying buffer independent of any one handle's
// lifetime or reallocation.
func (s *Shared[T]) ID() uuid.UUID { return s.id }

func (s *Shared[T]) Data() []T                 { return s.data }
func (s *Shared[T]) Size() int                 { return len(s.data) }
func (s *Shared[T]) IsNull() bool              { return s.data == nil }
func (s *Shared[T]) AddressSpace() AddressSpace { return s.space }

// Release decrements the shared count; idempotent once it reaches zero.
func (s *Shared[T]) Release() {
	if s.refs == nil {
		return
	}
	if atomic.AddInt64(&s.refs.n, -1) <= 0 {
		logger.Log.Debug().Str("handle", s.id.String()).Msg("shared release: last reference, freeing buffer")
		s.data = nil
	}
	s.refs = nil
}

// RefCount reports the current number of live handles over this buffer.
func (s *Shared[T]) RefCount() int64 {
	if s.refs == nil {
		return 0
	}
	return atomic.LoadInt64(&s.refs.n)
}

var _ Handle[float32] = (*Shared[float32])(nil)
