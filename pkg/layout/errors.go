package layout

import "fmt"

// OutOfBoundsError is raised by offset computation and slicing when
// bounds-checking is enabled and an index falls outside its axis.
type OutOfBoundsError struct {
	Axis  int
	Index int
	Len   int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("layout: index %d out of bounds for axis %d (length %d)", e.Index, e.Axis, e.Len)
}

// LayoutMismatchError is raised when a map constructed as "contiguous" (or
// reshaped) does not actually satisfy the contiguity invariant.
type LayoutMismatchError struct {
	Detail string
}

func (e *LayoutMismatchError) Error() string {
	return "layout: layout mismatch: " + e.Detail
}

// EllipsisError is raised while normalizing a slice argument list: more than
// one ellipsis, or too many explicit (non-ellipsis) arguments for the rank.
type EllipsisError struct {
	Detail string
}

func (e *EllipsisError) Error() string {
	return "layout: ellipsis error: " + e.Detail
}

// RankMismatchError is raised when an argument list's length, after ellipsis
// expansion, does not equal the map's rank.
type RankMismatchError struct {
	Want, Got int
}

func (e *RankMismatchError) Error() string {
	return fmt.Sprintf("layout: expected %d index arguments, got %d", e.Want, e.Got)
}
