// Package expr implements the lazy expression tree (spec §4.6): unary,
// binary and call nodes over scalars and arrays, with algebra inference and
// layout-info propagation. Nodes are evaluated element-wise on demand via
// At; nothing is materialized until the caller (typically an assignment)
// walks the tree.
package expr

import "github.com/itohio/ndarray/pkg/layout"

// Algebra tags what kind of mathematical object a node or leaf behaves
// like (spec §3: Alg ∈ {A, M, V, N}), plus the Scalar sentinel for a bare
// number leaf that carries no shape at all.
type Algebra uint8

const (
	Scalar Algebra = iota
	None           // N: no algebra constraint: generic element access only
	A              // plain array: ordinary elementwise algebra
	M              // matrix: scalar combines only with the diagonal; requires rank 2
	V              // vector: broadcasts like A; requires rank 1
)

// BinOp is one of the four elementwise binary operators.
type BinOp uint8

const (
	Add BinOp = iota
	Sub
	Mul
	Div
)

// Node is any evaluatable expression tree element: an array operand or a
// sub-expression, exposing its algebra tag, layout, shape, and element
// access by full multi-index.
type Node interface {
	Alg() Algebra
	Info() layout.Info
	Shape() []int
	At(indices ...int) float64
}

// scalarNode wraps a bare float64 as a shapeless, algebra-less leaf.
type scalarNode struct{ v float64 }

// ScalarOf builds a Node around a bare scalar value.
func ScalarOf(v float64) Node { return scalarNode{v: v} }

func (s scalarNode) Alg() Algebra         { return Scalar }
func (s scalarNode) Info() layout.Info    { return layout.Info{} }
func (s scalarNode) Shape() []int         { return nil }
func (s scalarNode) At(indices ...int) float64 { return s.v }

// Unary is unary<op='-', A>: elementwise negation, preserving shape, size
// and layout info of its operand.
type Unary struct {
	X Node
}

func Negate(x Node) Unary { return Unary{X: x} }

func (u Unary) Alg() Algebra      { return u.X.Alg() }
func (u Unary) Info() layout.Info { return u.X.Info() }
func (u Unary) Shape() []int      { return u.X.Shape() }
func (u Unary) At(indices ...int) float64 {
	return -u.X.At(indices...)
}

// Binary is binary<op, L, R>: L and R may each be array-or-scalar.
type Binary struct {
	Op   BinOp
	L, R Node
}

// NewBinary builds a binary node, inferring its algebra tag per spec §4.6:
// scalar OP array adopts the array's algebra; array OP array requires
// matching algebra.
func NewBinary(op BinOp, l, r Node) (Binary, error) {
	alg, err := inferAlgebra(l.Alg(), r.Alg())
	if err != nil {
		return Binary{}, err
	}
	if alg == M && (op == Mul || op == Div) {
		return Binary{}, &UnsupportedOpError{Op: op, Alg: alg}
	}
	return Binary{Op: op, L: l, R: r}, nil
}

func inferAlgebra(l, r Algebra) (Algebra, error) {
	switch {
	case l == Scalar && r == Scalar:
		return Scalar, nil
	case l == Scalar:
		return r, nil
	case r == Scalar:
		return l, nil
	case l == r:
		return l, nil
	default:
		return 0, &AlgebraMismatchError{L: l, R: r}
	}
}

func (b Binary) Alg() Algebra {
	alg, _ := inferAlgebra(b.L.Alg(), b.R.Alg())
	return alg
}

// Info implements the layout-info propagation rule of spec §4.6: a scalar
// side defers to the non-scalar side's info (reset to None for matrix
// algebra, since the diagonal-only broadcast breaks stride regularity); two
// array sides meet their infos.
func (b Binary) Info() layout.Info {
	lScalar, rScalar := b.L.Alg() == Scalar, b.R.Alg() == Scalar
	switch {
	case lScalar && rScalar:
		return layout.Info{}
	case lScalar:
		if b.R.Alg() == M {
			return layout.Info{StrideOrder: b.R.Info().StrideOrder, Prop: layout.None}
		}
		return b.R.Info()
	case rScalar:
		if b.L.Alg() == M {
			return layout.Info{StrideOrder: b.L.Info().StrideOrder, Prop: layout.None}
		}
		return b.L.Info()
	default:
		return b.L.Info().Meet(b.R.Info())
	}
}

func (b Binary) Shape() []int {
	if len(b.L.Shape()) > 0 {
		return b.L.Shape()
	}
	return b.R.Shape()
}

// At evaluates the node at a full multi-index. For a scalar-matrix
// combination, the scalar only applies on the diagonal (indices all
// equal); off-diagonal positions pass the array element through unchanged,
// per spec §4.6's s·I + M rule (stated here for + and -, the only
// elementwise ops matrices support).
func (b Binary) At(indices ...int) float64 {
	lScalar, rScalar := b.L.Alg() == Scalar, b.R.Alg() == Scalar
	if (lScalar && b.R.Alg() == M) || (rScalar && b.L.Alg() == M) {
		return b.diagonalAt(indices)
	}
	l, r := b.L.At(indices...), b.R.At(indices...)
	return apply(b.Op, l, r)
}

func (b Binary) diagonalAt(indices []int) float64 {
	onDiagonal := true
	for i := 1; i < len(indices); i++ {
		if indices[i] != indices[0] {
			onDiagonal = false
			break
		}
	}
	var scalar, matrixElem float64
	if b.L.Alg() == Scalar {
		scalar = b.L.At(indices...)
		matrixElem = b.R.At(indices...)
	} else {
		scalar = b.R.At(indices...)
		matrixElem = b.L.At(indices...)
	}
	if !onDiagonal {
		return matrixElem
	}
	if b.L.Alg() == Scalar {
		return apply(b.Op, scalar, matrixElem)
	}
	return apply(b.Op, matrixElem, scalar)
}

func apply(op BinOp, a, b float64) float64 {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		return a / b
	default:
		return 0
	}
}

// Call is call<F, A...>: F applied elementwise to the zipped operands.
// Every operand must share A0's shape (checked by NewCall, spec §4.6).
type Call struct {
	F     func(args ...float64) float64
	Args  []Node
}

func NewCall(f func(args ...float64) float64, args ...Node) (Call, error) {
	if len(args) == 0 {
		return Call{}, &EmptyCallError{}
	}
	want := args[0].Shape()
	for i, a := range args[1:] {
		if !intsEqual(want, a.Shape()) {
			return Call{}, &ShapeMismatchError{Index: i + 1, Want: want, Got: a.Shape()}
		}
	}
	return Call{F: f, Args: args}, nil
}

func (c Call) Alg() Algebra      { return c.Args[0].Alg() }
func (c Call) Info() layout.Info { return c.Args[0].Info() }
func (c Call) Shape() []int      { return c.Args[0].Shape() }
func (c Call) At(indices ...int) float64 {
	vals := make([]float64, len(c.Args))
	for i, a := range c.Args {
		vals[i] = a.At(indices...)
	}
	return c.F(vals...)
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
