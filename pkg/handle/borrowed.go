package handle

// Borrowed is a non-owning handle over a caller-supplied slice (spec
// §4.4): Release is a no-op, since the buffer's lifetime is managed
// elsewhere. Used for as_array_view-style wrapping of foreign memory.
type Borrowed[T any] struct {
	data  []T
	space AddressSpace
}

// NewBorrowed wraps data without taking ownership.
func NewBorrowed[T any](data []T, space AddressSpace) *Borrowed[T] {
	return &Borrowed[T]{data: data, space: space}
}

func (b *Borrowed[T]) Data() []T                 { return b.data }
func (b *Borrowed[T]) Size() int                 { return len(b.data) }
func (b *Borrowed[T]) IsNull() bool              { return b.data == nil }
func (b *Borrowed[T]) AddressSpace() AddressSpace { return b.space }
func (b *Borrowed[T]) Release()                  {} // non-owning: nothing to release

var _ Handle[float32] = (*Borrowed[float32])(nil)
