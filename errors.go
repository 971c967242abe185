package ndarray

import (
	"fmt"

	"github.com/itohio/ndarray/pkg/expr"
	"github.com/itohio/ndarray/pkg/handle"
	"github.com/itohio/ndarray/pkg/layout"
)

// Re-exported aliases (spec §7): callers can errors.As against these
// package-local names without reaching into pkg/layout or pkg/handle
// directly.
type (
	OutOfBoundsError          = layout.OutOfBoundsError
	LayoutMismatchError       = layout.LayoutMismatchError
	OutOfMemoryError          = handle.OutOfMemoryError
	AddressSpaceMismatchError = handle.AddressSpaceMismatchError
	AlgebraMismatchError      = expr.AlgebraMismatchError
)

// ShapeMismatchError is raised by operations requiring identical shapes:
// view assignment, compound op-assign, concatenate's non-axis dimensions.
type ShapeMismatchError struct {
	Op        string
	Want, Got []int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("ndarray: %s: shape mismatch: want %v, got %v", e.Op, e.Want, e.Got)
}

// AlgebraRankError is raised when an algebra tag's rank invariant is
// violated at construction (M requires rank 2, V requires rank 1).
type AlgebraRankError struct {
	Alg       Algebra
	Want, Got int
}

func (e *AlgebraRankError) Error() string {
	return fmt.Sprintf("ndarray: algebra %v requires rank %d, got %d", e.Alg, e.Want, e.Got)
}

// RectangularityError is raised by the nested-initializer-list constructor
// when sub-slices disagree on length.
type RectangularityError struct {
	Axis      int
	Want, Got int
}

func (e *RectangularityError) Error() string {
	return fmt.Sprintf("ndarray: ragged initializer at axis %d: want length %d, got %d", e.Axis, e.Want, e.Got)
}
