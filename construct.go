package ndarray

// NewFrom1D builds a rank-1 array from a flat Go slice (spec §4.5's
// new(initializer-list), rank 1).
func NewFrom1D[T any](vals []T) (*Array[T], error) {
	a, err := New[T](len(vals))
	if err != nil {
		return nil, err
	}
	copy(a.data(), vals)
	return a, nil
}

// NewFrom2D builds a rank-2 array from a nested Go slice, rejecting ragged
// rows with RectangularityError (spec §4.5's rectangularity check).
func NewFrom2D[T any](vals [][]T) (*Array[T], error) {
	rows := len(vals)
	cols := 0
	if rows > 0 {
		cols = len(vals[0])
	}
	for i, row := range vals {
		if len(row) != cols {
			return nil, &RectangularityError{Axis: 1, Want: cols, Got: len(row)}
		}
		_ = i
	}
	a, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i, row := range vals {
		for j, v := range row {
			a.Set(v, i, j)
		}
	}
	return a, nil
}

// NewFrom3D builds a rank-3 array from a doubly-nested Go slice, rejecting
// any ragged dimension with RectangularityError.
func NewFrom3D[T any](vals [][][]T) (*Array[T], error) {
	d0 := len(vals)
	d1, d2 := 0, 0
	if d0 > 0 {
		d1 = len(vals[0])
		if d1 > 0 {
			d2 = len(vals[0][0])
		}
	}
	for i, plane := range vals {
		if len(plane) != d1 {
			return nil, &RectangularityError{Axis: 1, Want: d1, Got: len(plane)}
		}
		for j, row := range plane {
			if len(row) != d2 {
				return nil, &RectangularityError{Axis: 2, Want: d2, Got: len(row)}
			}
			_ = j
		}
		_ = i
	}
	a, err := New[T](d0, d1, d2)
	if err != nil {
		return nil, err
	}
	for i, plane := range vals {
		for j, row := range plane {
			for k, v := range row {
				a.Set(v, i, j, k)
			}
		}
	}
	return a, nil
}
