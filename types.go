// Package ndarray is the user-facing generic multi-dimensional array
// library: Array/View construction, assignment, resizing, slicing and
// concatenation, built on top of pkg/layout, pkg/handle, pkg/expr and
// pkg/iter.
package ndarray

// Numeric constrains the element types zeros/ones/resize-fill support.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float constrains the element types Rand supports for real-valued fill.
type Float interface {
	~float32 | ~float64
}

// Complex constrains the element types Rand supports for independent
// real/imaginary fill.
type Complex interface {
	~complex64 | ~complex128
}
