package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicies(t *testing.T) {
	c := C.Build([]int{2, 3})
	assert.True(t, c.Prop().Has(Contiguous))
	assert.Equal(t, []int{0, 1}, c.StrideOrder())

	f := F.Build([]int{2, 3})
	assert.True(t, f.Prop().Has(Contiguous))
	assert.Equal(t, []int{1, 0}, f.StrideOrder())

	cs := CStride.Build([]int{2, 3})
	assert.Equal(t, None, cs.Prop())
	assert.Equal(t, c.Strides(), cs.Strides())
}

func TestBasicPolicy(t *testing.T) {
	b := Basic{StrideOrder: []int{1, 0}, Declared: SmallestStrideIsOne}
	m := b.Build([]int{2, 3})
	assert.Equal(t, SmallestStrideIsOne, m.Prop())
}
