package ndarray

import (
	"testing"

	"github.com/itohio/ndarray/pkg/expr"
	"github.com/itohio/ndarray/pkg/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1. a = zeros<int>(3,3) -> shape {3,3}, max|a| == 0.
func TestScenarioS1Zeros(t *testing.T) {
	a, err := Zeros[int](3, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, a.Shape())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, 0, a.At(i, j))
		}
	}
}

// S2. a = [[1,2,3],[4,5,6]]; a(1,2) == 6; transpose shape {3,2}; transpose(2,1) == 6.
func TestScenarioS2Transpose(t *testing.T) {
	a, err := NewFrom2D([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 6, a.At(1, 2))

	at := a.m.Transpose([]int{1, 0})
	assert.Equal(t, []int{3, 2}, at.Lengths())
	off, err := at.Offset(true, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, a.data()[off])
}

// S3. a = arange(0,6).reshape(2,3); v = a(:, 1:3). v.shape={2,2}; v(0,0)==1;
// setting v(1,1)=99 updates a(1,2).
func TestScenarioS3ViewAliasing(t *testing.T) {
	base, err := Arange[int](0, 6)
	require.NoError(t, err)
	a, err := base.Reshape(2, 3)
	require.NoError(t, err)

	v, err := a.Slice(layout.All(), layout.Rng(layout.R(1, 3, 1)))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, v.Shape())
	assert.Equal(t, 1, v.At(0, 0))

	v.Set(99, 1, 1)
	assert.Equal(t, 99, a.At(1, 2))
}

// S4. concatenate<0>(ones(2,3), zeros(2,3)) -> 4x3, rows 0-1 ones, rows 2-3 zeros.
func TestScenarioS4Concatenate(t *testing.T) {
	ones, err := Ones[int](2, 3)
	require.NoError(t, err)
	zeros, err := Zeros[int](2, 3)
	require.NoError(t, err)

	out, err := Concatenate(0, ones, zeros)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3}, out.Shape())
	for j := 0; j < 3; j++ {
		assert.Equal(t, 1, out.At(0, j))
		assert.Equal(t, 1, out.At(1, j))
		assert.Equal(t, 0, out.At(2, j))
		assert.Equal(t, 0, out.At(3, j))
	}
}

// S5. eye<double>(3) is the 3x3 identity.
func TestScenarioS5Eye(t *testing.T) {
	m, err := Eye[float64](3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				assert.Equal(t, 1.0, m.At(i, j))
			} else {
				assert.Equal(t, 0.0, m.At(i, j))
			}
		}
	}
}

// S6. scalar s=5, 2x2 matrix {{1,2},{3,4}}, algebra=M: (s+m)(0,0)==6,
// (s+m)(0,1)==2, (s+m)(1,1)==9.
func TestScenarioS6ScalarPlusMatrix(t *testing.T) {
	m, err := NewWithPolicy[int](layout.C, MatrixAlgebra, 2, 2)
	require.NoError(t, err)
	m.Set(1, 0, 0)
	m.Set(2, 0, 1)
	m.Set(3, 1, 0)
	m.Set(4, 1, 1)

	s := 5
	result := make([][]int, 2)
	for i := 0; i < 2; i++ {
		result[i] = make([]int, 2)
		for j := 0; j < 2; j++ {
			if i == j {
				result[i][j] = s + m.At(i, j)
			} else {
				result[i][j] = m.At(i, j)
			}
		}
	}
	assert.Equal(t, 6, result[0][0])
	assert.Equal(t, 2, result[0][1])
	assert.Equal(t, 9, result[1][1])
}

// Property 6: assignment idempotence.
func TestAssignIdempotence(t *testing.T) {
	a, err := New[int](2, 2)
	require.NoError(t, err)
	b, err := NewFrom2D([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.NoError(t, a.Assign(b))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, b.At(i, j), a.At(i, j))
		}
	}
}

// Property 8: resize semantics.
func TestResizeSemantics(t *testing.T) {
	a, err := New[int](2, 3)
	require.NoError(t, err)
	require.NoError(t, a.Resize(3, 2))
	assert.Equal(t, []int{3, 2}, a.Shape())
	assert.Equal(t, 6, a.Size())

	require.NoError(t, a.Resize(4, 4))
	assert.Equal(t, 16, a.Size())
}

func TestSetScalarBroadcastsForArrayAlgebra(t *testing.T) {
	a, err := New[int](2, 2)
	require.NoError(t, err)
	a.SetScalar(7)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, 7, a.At(i, j))
		}
	}
}

func TestSetScalarDiagonalOnlyForMatrixAlgebra(t *testing.T) {
	m, err := NewWithPolicy[int](layout.C, MatrixAlgebra, 2, 3)
	require.NoError(t, err)
	m.SetScalar(9)
	assert.Equal(t, 9, m.At(0, 0))
	assert.Equal(t, 9, m.At(1, 1))
	assert.Equal(t, 0, m.At(0, 1))
	assert.Equal(t, 0, m.At(1, 2))
}

func TestCompoundAddAssign(t *testing.T) {
	a, err := NewFrom1D([]int{1, 2, 3})
	require.NoError(t, err)
	b, err := NewFrom1D([]int{10, 20, 30})
	require.NoError(t, err)
	require.NoError(t, AddAssign[int](a, b))
	assert.Equal(t, []int{11, 22, 33}, a.data())
}

func TestNewFrom2DRectangularityCheck(t *testing.T) {
	_, err := NewFrom2D([][]int{{1, 2}, {3}})
	require.Error(t, err)
	var rectErr *RectangularityError
	assert.ErrorAs(t, err, &rectErr)
}

func TestAlgebraRankInvariant(t *testing.T) {
	_, err := NewWithPolicy[int](layout.C, MatrixAlgebra, 3)
	require.Error(t, err)
	var rankErr *AlgebraRankError
	assert.ErrorAs(t, err, &rankErr)

	_, err = NewWithPolicy[int](layout.C, VectorAlgebra, 2, 2)
	require.Error(t, err)
	assert.ErrorAs(t, err, &rankErr)
}

func TestAsArrayView(t *testing.T) {
	a, err := NewFrom1D([]int{1, 2, 3})
	require.NoError(t, err)
	v := a.AsArrayView()
	assert.Equal(t, ArrayAlgebra, v.Alg())
	assert.Equal(t, 2, v.At(1))
}

func TestViewAssignRequiresMatchingShape(t *testing.T) {
	a, err := New[int](2, 2)
	require.NoError(t, err)
	v, err := a.Slice(layout.All(), layout.All())
	require.NoError(t, err)

	wrong, err := New[int](3, 3)
	require.NoError(t, err)
	err = v.Assign(wrong)
	require.Error(t, err)
	var shapeErr *ShapeMismatchError
	assert.ErrorAs(t, err, &shapeErr)
}

// Assigning from a transposed view must copy index-for-index, not
// memory-order-for-memory-order: a's stride order differs from at's.
func TestAssignFromDifferentStrideOrder(t *testing.T) {
	a, err := NewFrom2D([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	atView, err := a.Slice(layout.All(), layout.All())
	require.NoError(t, err)

	dst, err := New[int](3, 2)
	require.NoError(t, err)
	transposed := &View[int]{h: atView.h, m: a.m.Transpose([]int{1, 0}), alg: ArrayAlgebra}

	require.NoError(t, dst.Assign(transposed))
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, a.At(j, i), dst.At(i, j))
		}
	}
}

func TestAssignExprEvaluatesBinaryNode(t *testing.T) {
	a, err := NewFrom1D([]float64{1, 2, 3})
	require.NoError(t, err)
	b, err := NewFrom1D([]float64{10, 20, 30})
	require.NoError(t, err)

	node, err := expr.NewBinary(expr.Add, a.AsNode(), b.AsNode())
	require.NoError(t, err)

	out, err := New[float64](3)
	require.NoError(t, err)
	require.NoError(t, out.AssignExpr(node))
	assert.Equal(t, []float64{11, 22, 33}, out.data())
}

func TestAssignExprScalarPlusMatrixDiagonalOnly(t *testing.T) {
	m, err := NewWithPolicy[float64](layout.C, MatrixAlgebra, 2, 2)
	require.NoError(t, err)
	m.Set(1, 0, 0)
	m.Set(2, 0, 1)
	m.Set(3, 1, 0)
	m.Set(4, 1, 1)

	node, err := expr.NewBinary(expr.Add, expr.ScalarOf(10), m.AsNode())
	require.NoError(t, err)

	out, err := NewWithPolicy[float64](layout.C, MatrixAlgebra, 2, 2)
	require.NoError(t, err)
	require.NoError(t, out.AssignExpr(node))
	assert.Equal(t, 11.0, out.At(0, 0))
	assert.Equal(t, 2.0, out.At(0, 1))
	assert.Equal(t, 3.0, out.At(1, 0))
	assert.Equal(t, 14.0, out.At(1, 1))
}

func TestConcatenateShapeMismatch(t *testing.T) {
	a, err := Ones[int](2, 3)
	require.NoError(t, err)
	b, err := Zeros[int](2, 4)
	require.NoError(t, err)
	_, err = Concatenate(0, a, b)
	require.Error(t, err)
}
