package layout

import "github.com/itohio/ndarray/pkg/permute"

// Prop is the 2-bit layout-property lattice from the spec: none <
// {strided1D, smallestStrideIsOne} < contiguous. It carries no runtime cost
// and is only ever used to pick fast paths.
type Prop uint8

const (
	None                Prop = 0
	Strided1D           Prop = 1 << 0
	SmallestStrideIsOne Prop = 1 << 1
	Contiguous               = Strided1D | SmallestStrideIsOne
)

// Has reports whether p carries every bit set in want.
func (p Prop) Has(want Prop) bool { return p&want == want }

// Meet is the lattice AND.
func (p Prop) Meet(o Prop) Prop { return p & o }

// Join is the lattice OR.
func (p Prop) Join(o Prop) Prop { return p | o }

func (p Prop) String() string {
	switch p {
	case Contiguous:
		return "contiguous"
	case Strided1D:
		return "strided_1d"
	case SmallestStrideIsOne:
		return "smallest_stride_is_one"
	default:
		return "none"
	}
}

// Info pairs a stride order with a layout property, per spec §3.
type Info struct {
	StrideOrder []int
	Prop        Prop
}

// Meet returns (strideOrder, propLhs & propRhs) when the stride orders
// match, else (nil, none).
func (a Info) Meet(b Info) Info {
	if !intsEqual(a.StrideOrder, b.StrideOrder) {
		return Info{Prop: None}
	}
	return Info{StrideOrder: a.StrideOrder, Prop: a.Prop.Meet(b.Prop)}
}

// Join mirrors Meet but joins the properties; stride-order mismatch still
// collapses to none, matching the conservative Meet behavior.
func (a Info) Join(b Info) Info {
	if !intsEqual(a.StrideOrder, b.StrideOrder) {
		return Info{Prop: None}
	}
	return Info{StrideOrder: a.StrideOrder, Prop: a.Prop.Join(b.Prop)}
}

// Transpose permutes the stride order by perm, matching IdxMap.Transpose's
// StrideOrder update (composed with the inverse of perm).
func (a Info) Transpose(perm []int) Info {
	return Info{StrideOrder: permute.Compose(permute.Inverse(perm), a.StrideOrder), Prop: a.Prop}
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
