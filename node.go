package ndarray

import (
	"github.com/itohio/ndarray/pkg/expr"
	"github.com/itohio/ndarray/pkg/iter"
	"github.com/itohio/ndarray/pkg/layout"
)

// arrayNode adapts a container[T] (an Array or a View) into an expr.Node,
// the lazy expression tree's leaf interface (spec §4.6). The expression
// tree is untyped over float64, so element values cross the boundary via
// toFloat64/fromFloat64 rather than carrying T all the way through.
type arrayNode[T any] struct {
	c   container[T]
	alg Algebra
}

// AsNode exposes a as an expr.Node leaf, usable as an operand of
// expr.NewBinary/expr.NewCall alongside expr.ScalarOf (spec §4.6's "a is
// also an E").
func (a *Array[T]) AsNode() expr.Node { return arrayNode[T]{c: a, alg: a.alg} }

// AsNode exposes v as an expr.Node leaf.
func (v *View[T]) AsNode() expr.Node { return arrayNode[T]{c: v, alg: v.alg} }

func (n arrayNode[T]) Alg() expr.Algebra { return n.alg }

func (n arrayNode[T]) Info() layout.Info { return n.c.idxMap().Info() }
func (n arrayNode[T]) Shape() []int      { return n.c.idxMap().Lengths() }
func (n arrayNode[T]) At(indices ...int) float64 {
	off, err := n.c.idxMap().Offset(true, indices...)
	if err != nil {
		panic(err)
	}
	return toFloat64(n.c.data()[off])
}

// AssignExpr evaluates node element-wise into a (spec §4.6's data flow: a
// lazy expression, when assigned to an array, drives an element-wise
// traversal). a is resized to node's shape first, invalidating outstanding
// views, exactly as Assign does for a plain array source.
func (a *Array[T]) AssignExpr(node expr.Node) error {
	if err := a.Resize(node.Shape()...); err != nil {
		return err
	}
	assignFromNode[T](a, node)
	return nil
}

// AssignExpr is View's counterpart of Array.AssignExpr: a shape mismatch is
// fatal, since a view cannot resize the storage it borrows.
func (v *View[T]) AssignExpr(node expr.Node) error {
	if !intsEqual(v.Shape(), node.Shape()) {
		return &ShapeMismatchError{Op: "View.AssignExpr", Want: v.Shape(), Got: node.Shape()}
	}
	assignFromNode[T](v, node)
	return nil
}

// assignFromNode walks dst in its own stride order, evaluating node at each
// element's logical multi-index and converting the float64 result back to T.
func assignFromNode[T any](dst container[T], node expr.Node) {
	m := dst.idxMap()
	data := dst.data()
	order := m.StrideOrder()
	it := iter.New(m)
	for it.Next() {
		idx := it.Index(order)
		data[it.Offset()] = fromFloat64[T](node.At(idx...))
	}
}

func toFloat64[T any](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	default:
		return 0
	}
}

func fromFloat64[T any](v float64) T {
	var zero T
	switch any(zero).(type) {
	case float64:
		return any(v).(T)
	case float32:
		return any(float32(v)).(T)
	case int:
		return any(int(v)).(T)
	case int8:
		return any(int8(v)).(T)
	case int16:
		return any(int16(v)).(T)
	case int32:
		return any(int32(v)).(T)
	case int64:
		return any(int64(v)).(T)
	case uint:
		return any(uint(v)).(T)
	case uint8:
		return any(uint8(v)).(T)
	case uint16:
		return any(uint16(v)).(T)
	case uint32:
		return any(uint32(v)).(T)
	case uint64:
		return any(uint64(v)).(T)
	default:
		return zero
	}
}
