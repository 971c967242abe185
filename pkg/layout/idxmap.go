// Package layout implements the compile-time/run-time mixed-extent
// multi-dimensional index-to-offset mapping (idx_map), the named layout
// policies that select an instantiation of it, and the slicing algebra.
//
// Go has no const generics, so the spec's compile-time parameters
// (StaticExtents, StrideOrder, Prop) are realized as validated runtime
// fields on IdxMap rather than type parameters — the same choice the
// teacher corpus makes for its own Shape type.
package layout

import "fmt"

// MaxDims is the rank ceiling of this package; it has the same value as the
// permutation algebra's own ceiling (permute.MaxN) since a stride order is a
// permutation of the dimensions.
const MaxDims = 16

// IdxMap is the central entity: it maps a multi-index to a linear element
// offset and tracks enough layout metadata to pick fast paths later.
type IdxMap struct {
	lengths []int
	strides []int
	order   []int // stride order: slowest-varying dimension first
	prop    Prop
	static  []int // per-axis compile-time extent; 0 = dynamic
}

// Rank returns the number of dimensions.
func (m IdxMap) Rank() int { return len(m.lengths) }

// Lengths returns the extent per dimension. Callers must not mutate it.
func (m IdxMap) Lengths() []int { return m.lengths }

// Strides returns the element stride per dimension. Callers must not mutate it.
func (m IdxMap) Strides() []int { return m.strides }

// StrideOrder returns the dimensions ordered slowest to fastest varying.
func (m IdxMap) StrideOrder() []int { return m.order }

// Prop returns the map's layout property.
func (m IdxMap) Prop() Prop { return m.prop }

// Info returns the map's (StrideOrder, Prop) pair.
func (m IdxMap) Info() Info { return Info{StrideOrder: m.order, Prop: m.prop} }

// Size returns the product of lengths (0 if any length is 0).
func (m IdxMap) Size() int {
	if len(m.lengths) == 0 {
		return 1
	}
	size := 1
	for _, l := range m.lengths {
		if l == 0 {
			return 0
		}
		size *= l
	}
	return size
}

func identityOrder(n int) []int {
	o := make([]int, n)
	for i := range o {
		o[i] = i
	}
	return o
}

// NewContiguous builds a map from a shape alone (spec §4.2 rule 1): strides
// are assigned in stride-order order, fastest dimension first with stride 1,
// subsequent strides the running product. order may be nil for the default
// C (row-major) order.
func NewContiguous(lengths []int, order []int) IdxMap {
	n := len(lengths)
	if order == nil {
		order = identityOrder(n)
	}
	strides := make([]int, n)
	running := 1
	for i := n - 1; i >= 0; i-- {
		dim := order[i]
		strides[dim] = running
		running *= lengths[dim]
	}
	return IdxMap{lengths: cloneInts(lengths), strides: strides, order: cloneInts(order), prop: Contiguous}
}

// NewStrided builds a map from explicit lengths and strides (spec §4.2 rule
// 2). wantProp is downgraded at runtime when the supplied data does not
// actually satisfy it; if wantProp asserts Contiguous but the data is not,
// that is a contract violation and a *LayoutMismatchError is returned.
func NewStrided(lengths, strides []int, order []int, wantProp Prop) (IdxMap, error) {
	n := len(lengths)
	if len(strides) != n {
		return IdxMap{}, &LayoutMismatchError{Detail: fmt.Sprintf("strides length %d does not match rank %d", len(strides), n)}
	}
	if order == nil {
		order = identityOrder(n)
	}
	m := IdxMap{lengths: cloneInts(lengths), strides: cloneInts(strides), order: cloneInts(order), prop: wantProp}
	actual := m.computeProp()
	if wantProp.Has(Contiguous) && !actual.Has(Contiguous) {
		return IdxMap{}, &LayoutMismatchError{Detail: "map asserted contiguous but supplied strides are not"}
	}
	// The property actually carried can never exceed what the data supports.
	m.prop = wantProp.Meet(actual)
	return m, nil
}

// WithStatic attaches compile-time extents: staticExtents[i] != 0 means
// lengths[i] must equal that value (spec §4.2 rule 3).
func (m IdxMap) WithStatic(staticExtents []int) (IdxMap, error) {
	if len(staticExtents) != m.Rank() {
		return m, &LayoutMismatchError{Detail: "static extent list length does not match rank"}
	}
	for i, se := range staticExtents {
		if se != 0 && se != m.lengths[i] {
			return m, &LayoutMismatchError{Detail: fmt.Sprintf("axis %d: static extent %d does not match length %d", i, se, m.lengths[i])}
		}
	}
	m.static = cloneInts(staticExtents)
	return m, nil
}

// computeProp recomputes the layout property strictly from lengths/strides,
// ignoring whatever Prop the map currently carries (spec §4.2 invariant 7).
func (m IdxMap) computeProp() Prop {
	n := m.Rank()
	if n == 0 {
		return Contiguous
	}
	if m.Size() == 0 {
		return None
	}
	// Sort axes by stride ascending to find the minimum stride and test
	// for a single constant-stride traversal (Strided1D).
	axes := make([]int, n)
	copy(axes, m.order)
	// order is slowest->fastest; sort a copy by ascending stride instead.
	sorted := cloneInts(axes)
	sortByStrideAsc(sorted, m.strides)

	minStride := m.strides[sorted[0]]
	prop := None
	strided1D := true
	for i := 1; i < n; i++ {
		prev, cur := sorted[i-1], sorted[i]
		if m.strides[cur] != m.strides[prev]*m.lengths[prev] {
			strided1D = false
			break
		}
	}
	if strided1D {
		prop |= Strided1D
	}
	if minStride == 1 {
		prop |= SmallestStrideIsOne
	}
	return prop
}

func sortByStrideAsc(axes []int, strides []int) {
	// Insertion sort: ranks here are always small (<= MaxDims).
	for i := 1; i < len(axes); i++ {
		for j := i; j > 0 && strides[axes[j-1]] > strides[axes[j]]; j-- {
			axes[j-1], axes[j] = axes[j], axes[j-1]
		}
	}
}

// IsContiguous recomputes contiguity at runtime (spec §4.2): sorts axes by
// ascending stride and checks the running-product relation, and that the
// smallest stride is 1.
func (m IdxMap) IsContiguous() bool {
	return m.computeProp().Has(Contiguous)
}

// Offset computes the linear offset for a full multi-index. When checked is
// true, each index is validated against its axis length.
func (m IdxMap) Offset(checked bool, indices ...int) (int, error) {
	if len(indices) != m.Rank() {
		return 0, &RankMismatchError{Want: m.Rank(), Got: len(indices)}
	}
	off := 0
	for i, idx := range indices {
		if checked && (idx < 0 || idx >= m.lengths[i]) {
			return 0, &OutOfBoundsError{Axis: i, Index: idx, Len: m.lengths[i]}
		}
		off += idx * m.strides[i]
	}
	return off, nil
}

// ToIdx decomposes a linear offset into a multi-index. It is only defined
// for Strided1D maps: the offset is divided by the minimum stride, then
// decomposed via the stride order (spec §4.2).
func (m IdxMap) ToIdx(linear int) ([]int, error) {
	if !m.prop.Has(Strided1D) {
		return nil, &LayoutMismatchError{Detail: "ToIdx requires a strided_1d map"}
	}
	n := m.Rank()
	if n == 0 {
		return nil, nil
	}
	minStride := m.minStride()
	k := linear / minStride
	idx := make([]int, n)
	// order is slowest->fastest; decompose fastest-first.
	for i := n - 1; i >= 0; i-- {
		dim := m.order[i]
		idx[dim] = k % m.lengths[dim]
		k /= m.lengths[dim]
	}
	return idx, nil
}

func (m IdxMap) minStride() int {
	min := m.strides[0]
	for _, s := range m.strides[1:] {
		if s < min {
			min = s
		}
	}
	return min
}

// Transpose returns the map with lengths/strides permuted by perm (new axis
// i takes old axis perm[i]); the new stride order is
// compose(inverse(perm), strideOrder), i.e. the old order renumbered into
// the new axes.
func (m IdxMap) Transpose(perm []int) IdxMap {
	n := m.Rank()
	newLengths := make([]int, n)
	newStrides := make([]int, n)
	for i := 0; i < n; i++ {
		newLengths[i] = m.lengths[perm[i]]
		newStrides[i] = m.strides[perm[i]]
	}
	out := IdxMap{
		lengths: newLengths,
		strides: newStrides,
		order:   inversePermuteOrder(perm, m.order),
		prop:    m.prop,
	}
	if m.static != nil {
		newStatic := make([]int, n)
		for i := 0; i < n; i++ {
			newStatic[i] = m.static[perm[i]]
		}
		out.static = newStatic
	}
	return out
}

// inversePermuteOrder rewrites a stride-order permutation (expressed in the
// original axis numbering) into the new axis numbering after a Transpose by
// perm: new axis i corresponds to old axis perm[i], so old axis a is new
// axis perm^-1[a].
func inversePermuteOrder(perm, order []int) []int {
	inv := make([]int, len(perm))
	for newAxis, oldAxis := range perm {
		inv[oldAxis] = newAxis
	}
	newOrder := make([]int, len(order))
	for i, oldAxis := range order {
		newOrder[i] = inv[oldAxis]
	}
	return newOrder
}

// Group describes the single run detected by GroupIndices/block-layout
// detection: nb repeats of bs elements each, bs elements apart being
// contiguous (stride 1) only when the run reaches all the way to the
// fastest-varying axis; otherwise bs is 1 and every element is its own
// "block", repeated at the given stride.
type Group struct {
	NBlocks     int
	BlockSize   int
	BlockStride int
}

// GroupIndices finds the block-layout run of spec §4.5.1, mirroring the
// source's get_block_layout exactly (_examples/original_source's
// BasicFunctions.hpp): walking from the slowest to the fastest-varying axis,
// an axis's stride must equal the combined size of the faster axes already
// folded in for the run to keep growing. Critically this means the fastest
// axis itself only joins the run when its own stride is 1 — a fastest axis
// with any other stride breaks immediately, so the run never wrongly reports
// the whole map as one contiguous block when it merely shares a common
// non-unit stride. ok is false once a second, independent break is found
// ("a second strided dimension aborts the detection", spec §4.5.1); groups
// holds at most one entry.
func (m IdxMap) GroupIndices() (groups []Group, ok bool) {
	n := m.Rank()
	if n == 0 {
		return []Group{{NBlocks: 1, BlockSize: 1, BlockStride: 1}}, true
	}
	dataSize := m.lengths[m.order[0]] * m.strides[m.order[0]]
	broken := false
	for i := 0; i < n; i++ {
		dim := m.order[i]
		innerSize := 1
		if i < n-1 {
			next := m.order[i+1]
			innerSize = m.strides[next] * m.lengths[next]
		}
		if m.strides[dim] != innerSize {
			if broken {
				return groups, false
			}
			broken = true
			groups = append(groups, Group{NBlocks: m.Size() / innerSize, BlockSize: innerSize, BlockStride: m.strides[dim]})
		}
	}
	if !broken {
		groups = append(groups, Group{NBlocks: 1, BlockSize: dataSize, BlockStride: 1})
	}
	return groups, true
}

// BlockLayout returns the (nBlocks, blockSize, blockStride) description from
// spec §4.5.1. ok is false when a second, independent stride gap appears
// among the dimensions. With no gap, the block size is taken from the
// slowest axis in stride order (its length times its stride), which assumes
// that axis carries the largest stride.
func (m IdxMap) BlockLayout() (nBlocks, blockSize, blockStride int, ok bool) {
	groups, ok := m.GroupIndices()
	if !ok || len(groups) != 1 {
		return 0, 0, 0, false
	}
	g := groups[0]
	return g.NBlocks, g.BlockSize, g.BlockStride, true
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)
	return out
}
