package layout

// Policy is a named layout policy (spec §4.3): a recipe for building the
// idx_map of a given rank, plus two projections used when a generic
// algorithm needs to loosen or tighten a map's guarantees.
type Policy interface {
	// Build constructs the contiguous map for the given shape.
	Build(lengths []int) IdxMap
	// WithLowestGuarantee describes the property this policy would carry if
	// stripped down to the weakest statically-known guarantee.
	WithLowestGuarantee() Prop
	// ContiguousProp is the property this policy would carry when promoted
	// to fully contiguous.
	ContiguousProp() Prop
}

type cLayout struct{}
type fLayout struct{}
type cStrideLayout struct{}
type fStrideLayout struct{}

// C is row-major: stride order (0,1,...,R-1), Prop = Contiguous.
var C Policy = cLayout{}

// F is column-major: stride order (R-1,...,1,0), Prop = Contiguous.
var F Policy = fLayout{}

// CStride is row-major ordered but makes no contiguity guarantee.
var CStride Policy = cStrideLayout{}

// FStride is column-major ordered but makes no contiguity guarantee.
var FStride Policy = fStrideLayout{}

func (cLayout) Build(lengths []int) IdxMap {
	return NewContiguous(lengths, identityOrder(len(lengths)))
}
func (cLayout) WithLowestGuarantee() Prop { return None }
func (cLayout) ContiguousProp() Prop      { return Contiguous }

func (fLayout) Build(lengths []int) IdxMap {
	return NewContiguous(lengths, reverseOrder(len(lengths)))
}
func (fLayout) WithLowestGuarantee() Prop { return None }
func (fLayout) ContiguousProp() Prop      { return Contiguous }

func (cStrideLayout) Build(lengths []int) IdxMap {
	m := NewContiguous(lengths, identityOrder(len(lengths)))
	m.prop = None
	return m
}
func (cStrideLayout) WithLowestGuarantee() Prop { return None }
func (cStrideLayout) ContiguousProp() Prop      { return Contiguous }

func (fStrideLayout) Build(lengths []int) IdxMap {
	m := NewContiguous(lengths, reverseOrder(len(lengths)))
	m.prop = None
	return m
}
func (fStrideLayout) WithLowestGuarantee() Prop { return None }
func (fStrideLayout) ContiguousProp() Prop      { return Contiguous }

func reverseOrder(n int) []int {
	o := make([]int, n)
	for i := range o {
		o[i] = n - 1 - i
	}
	return o
}

// Basic is the fully parametric policy: an explicit stride order and
// declared property.
type Basic struct {
	StrideOrder []int
	Declared    Prop
}

func (b Basic) Build(lengths []int) IdxMap {
	m := NewContiguous(lengths, b.StrideOrder)
	m.prop = b.Declared.Meet(m.computeProp())
	return m
}
func (b Basic) WithLowestGuarantee() Prop { return None }
func (b Basic) ContiguousProp() Prop      { return Contiguous }
