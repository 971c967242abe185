package expr

import (
	"testing"

	"github.com/itohio/ndarray/pkg/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arrayLeaf is a minimal Node backed by a flat row-major buffer, used only
// to exercise the expression algebra in isolation from the ndarray facade.
type arrayLeaf struct {
	alg    Algebra
	shape  []int
	data   []float64
	stride []int
}

func newArrayLeaf(alg Algebra, shape []int, data []float64) arrayLeaf {
	stride := make([]int, len(shape))
	running := 1
	for i := len(shape) - 1; i >= 0; i-- {
		stride[i] = running
		running *= shape[i]
	}
	return arrayLeaf{alg: alg, shape: shape, data: data, stride: stride}
}

func (a arrayLeaf) Alg() Algebra { return a.alg }
func (a arrayLeaf) Info() layout.Info {
	order := make([]int, len(a.shape))
	for i := range order {
		order[i] = i
	}
	return layout.Info{StrideOrder: order, Prop: layout.Contiguous}
}
func (a arrayLeaf) Shape() []int { return a.shape }
func (a arrayLeaf) At(indices ...int) float64 {
	off := 0
	for i, idx := range indices {
		off += idx * a.stride[i]
	}
	return a.data[off]
}

func TestNegateUnary(t *testing.T) {
	leaf := newArrayLeaf(A, []int{2}, []float64{1, -2})
	n := Negate(leaf)
	assert.Equal(t, -1.0, n.At(0))
	assert.Equal(t, 2.0, n.At(1))
	assert.Equal(t, leaf.Shape(), n.Shape())
}

func TestBinaryArrayPlusArray(t *testing.T) {
	l := newArrayLeaf(A, []int{2}, []float64{1, 2})
	r := newArrayLeaf(A, []int{2}, []float64{10, 20})
	b, err := NewBinary(Add, l, r)
	require.NoError(t, err)
	assert.Equal(t, 11.0, b.At(0))
	assert.Equal(t, 22.0, b.At(1))
	assert.Equal(t, A, b.Alg())
}

func TestBinaryScalarAdoptsArrayAlgebra(t *testing.T) {
	arr := newArrayLeaf(M, []int{2}, []float64{1, 2})
	s := ScalarOf(5)
	b, err := NewBinary(Add, s, arr)
	require.NoError(t, err)
	assert.Equal(t, M, b.Alg())
}

func TestBinaryAlgebraMismatch(t *testing.T) {
	l := newArrayLeaf(A, []int{2}, []float64{1, 2})
	r := newArrayLeaf(M, []int{2}, []float64{1, 2})
	_, err := NewBinary(Add, l, r)
	require.Error(t, err)
	var mismatch *AlgebraMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestMatrixMulUnsupported(t *testing.T) {
	l := newArrayLeaf(M, []int{2}, []float64{1, 2})
	r := newArrayLeaf(M, []int{2}, []float64{1, 2})
	_, err := NewBinary(Mul, l, r)
	require.Error(t, err)
	var unsupported *UnsupportedOpError
	assert.ErrorAs(t, err, &unsupported)
}

// Scenario S6: scalar + matrix applies only on the diagonal (spec §4.6).
func TestScalarPlusMatrixIsDiagonalOnly(t *testing.T) {
	m := newArrayLeaf(M, []int{2, 2}, []float64{1, 2, 3, 4})
	s := ScalarOf(10)
	b, err := NewBinary(Add, s, m)
	require.NoError(t, err)

	assert.Equal(t, 11.0, b.At(0, 0)) // diagonal: 10 + 1
	assert.Equal(t, 2.0, b.At(0, 1))  // off-diagonal: unchanged
	assert.Equal(t, 3.0, b.At(1, 0))  // off-diagonal: unchanged
	assert.Equal(t, 14.0, b.At(1, 1)) // diagonal: 10 + 4
}

func TestScalarPlusArrayBroadcastsEverywhere(t *testing.T) {
	a := newArrayLeaf(A, []int{2, 2}, []float64{1, 2, 3, 4})
	s := ScalarOf(10)
	b, err := NewBinary(Add, s, a)
	require.NoError(t, err)
	assert.Equal(t, 11.0, b.At(0, 0))
	assert.Equal(t, 12.0, b.At(0, 1))
	assert.Equal(t, 13.0, b.At(1, 0))
	assert.Equal(t, 14.0, b.At(1, 1))
}

func TestCallZipsArguments(t *testing.T) {
	l := newArrayLeaf(A, []int{2}, []float64{1, 2})
	r := newArrayLeaf(A, []int{2}, []float64{3, 4})
	c, err := NewCall(func(args ...float64) float64 { return args[0]*args[1] + 1 }, l, r)
	require.NoError(t, err)
	assert.Equal(t, 4.0, c.At(0))
	assert.Equal(t, 9.0, c.At(1))
}

func TestCallShapeMismatch(t *testing.T) {
	l := newArrayLeaf(A, []int{2}, []float64{1, 2})
	r := newArrayLeaf(A, []int{3}, []float64{1, 2, 3})
	_, err := NewCall(func(args ...float64) float64 { return 0 }, l, r)
	require.Error(t, err)
	var shapeErr *ShapeMismatchError
	assert.ErrorAs(t, err, &shapeErr)
}

func TestInfoMeetOfTwoArrays(t *testing.T) {
	l := newArrayLeaf(A, []int{2, 3}, make([]float64, 6))
	r := newArrayLeaf(A, []int{2, 3}, make([]float64, 6))
	b, err := NewBinary(Add, l, r)
	require.NoError(t, err)
	assert.Equal(t, layout.Contiguous, b.Info().Prop)
}
