package handle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	sp, err := Join(Host, Host)
	require.NoError(t, err)
	assert.Equal(t, Host, sp)

	sp, err = Join(None, Device)
	require.NoError(t, err)
	assert.Equal(t, Device, sp)

	sp, err = Join(Host, Unified)
	require.NoError(t, err)
	assert.Equal(t, Unified, sp)

	_, err = Join(Host, Device)
	require.Error(t, err)
	var mismatch *AddressSpaceMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestHeap(t *testing.T) {
	h, err := NewHeap[float32](4, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, h.Size())
	assert.False(t, h.IsNull())
	assert.Equal(t, Host, h.AddressSpace())
	h.Release()
	assert.True(t, h.IsNull())
}

func TestStackBounds(t *testing.T) {
	s, err := NewStack[int](StackCapacity)
	require.NoError(t, err)
	assert.Equal(t, StackCapacity, s.Size())

	_, err = NewStack[int](StackCapacity + 1)
	require.Error(t, err)
}

func TestSsoSpillsAboveThreshold(t *testing.T) {
	small, err := NewSso[byte](4, nil)
	require.NoError(t, err)
	assert.Len(t, small.Data(), 4)

	big, err := NewSso[byte](StackCapacity+1, nil)
	require.NoError(t, err)
	assert.Len(t, big.Data(), StackCapacity+1)
}

func TestSharedRefcounting(t *testing.T) {
	s, err := NewShared[float32](8, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, s.RefCount())

	clone := s.Clone()
	assert.EqualValues(t, 2, s.RefCount())
	assert.Equal(t, s.ID(), clone.ID())

	s.Release()
	assert.False(t, clone.IsNull())

	clone.Release()
}

func TestBorrowedReleaseIsNoop(t *testing.T) {
	data := []int{1, 2, 3}
	b := NewBorrowed(data, Host)
	b.Release()
	assert.Equal(t, data, b.Data())
}
