package handle

// Sso is a small-size-optimized handle: storage of up to StackCapacity
// elements lives inline (no allocation); above it, Sso falls back to a heap
// slice transparently. Named for the classic small-string-optimization pattern
// applied to arbitrary element buffers.
type Sso[T any] struct {
	inline  [StackCapacity]T
	spilled []T
	n       int
	space   AddressSpace
}

// NewSso builds an Sso handle holding n zero-valued elements, spilling to
// alloc (DefaultAllocator if nil) when n exceeds StackCapacity.
func NewSso[T any](n int, alloc Allocator[T]) (*Sso[T], error) {
	if n < 0 {
		return nil, &OutOfMemoryError{Bytes: n}
	}
	s := &Sso[T]{n: n, space: Host}
	if n <= StackCapacity {
		return s, nil
	}
	if alloc == nil {
		alloc = DefaultAllocator[T]{}
	}
	data, err := alloc.AllocateZero(n)
	if err != nil {
		return nil, err
	}
	s.spilled = data
	s.space = alloc.AddressSpace()
	return s, nil
}

func (s *Sso[T]) Data() []T {
	if s.spilled != nil {
		return s.spilled
	}
	return s.inline[:s.n]
}
func (s *Sso[T]) Size() int                 { return s.n }
func (s *Sso[T]) IsNull() bool              { return false }
func (s *Sso[T]) AddressSpace() AddressSpace { return s.space }
func (s *Sso[T]) Release() {
	s.spilled = nil
	s.n = 0
}

var _ Handle[float32] = (*Sso[float32])(nil)
