package soa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec1(t *testing.T) {
	var v Vec1[string]

	v.Push("a")
	v.Push("b")
	v.Push("c")

	require.NoError(t, v.Remove(0))
	assert.Equal(t, []string{"b", "c"}, v.Columns())
	assert.Equal(t, "c", v.At(1))

	*v.Ref(0) = "z"
	assert.Equal(t, "z", v.At(0))

	last, ok := v.Pop()
	require.True(t, ok)
	assert.Equal(t, "c", last)
	assert.Equal(t, RowSize1[string](), v.Stats().RowSize)
}

type position struct{ x, y, z float32 }

func TestVec3(t *testing.T) {
	v := NewVec3[uint64, position, []byte]()

	for i := range 10 {
		v.Push(uint64(i), position{x: float32(i)}, []byte{byte(i)})
	}

	require.NoError(t, v.Swap(0, 9))
	require.NoError(t, v.SwapRemove(1))
	require.NoError(t, v.Remove(2))

	ids, positions, blobs := v.Columns()
	require.Equal(t, []uint64{9, 0, 3, 4, 5, 6, 7, 8}, ids)
	require.Len(t, positions, 8)
	require.Len(t, blobs, 8)

	for i, id := range ids {
		assert.Equal(t, float32(id), positions[i].x)
		assert.Equal(t, []byte{byte(id)}, blobs[i])
	}

	// Slots freed by SwapRemove and Remove no longer hold references.
	assert.Nil(t, v.c2.data[8])
	assert.Nil(t, v.c2.data[9])
}

func TestVec3_Reserve_PreservesRows(t *testing.T) {
	v := NewVec3[int8, int64, string]()
	v.Push(1, 10, "one")
	v.Push(2, 20, "two")

	v.Reserve(1 << 10)
	require.Equal(t, 1<<10, v.Cap())

	a, b, c := v.At(1)
	assert.Equal(t, int8(2), a)
	assert.Equal(t, int64(20), b)
	assert.Equal(t, "two", c)
	assert.Equal(t, uintptr(1+8+16), v.Stats().RowSize)
}

func TestVec12(t *testing.T) {
	v := NewVec12[int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, string]()

	push := func(i int) {
		v.Push(i, int8(i), int16(i), int32(i), int64(i), uint(i), uint8(i), uint16(i),
			uint32(i), uint64(i), float32(i), string(rune('a'+i)))
	}

	for i := range 5 {
		push(i)
	}
	require.Equal(t, 5, v.Len())
	require.Equal(t, 8, v.Cap())

	require.NoError(t, v.Swap(0, 4))
	require.NoError(t, v.Remove(1))
	require.NoError(t, v.SwapRemove(0))

	// 4,1,2,3,0 -> 4,2,3,0 -> 0,2,3
	c0, _, _, _, _, _, _, _, _, c9, c10, c11 := v.Columns()
	assert.Equal(t, []int{0, 2, 3}, c0)
	assert.Equal(t, []uint64{0, 2, 3}, c9)
	assert.Equal(t, []float32{0, 2, 3}, c10)
	assert.Equal(t, []string{"a", "c", "d"}, c11)

	e0, e1, e2, e3, e4, e5, e6, e7, e8, e9, e10, e11 := v.At(2)
	assert.Equal(t, 3, e0)
	assert.Equal(t, int8(3), e1)
	assert.Equal(t, int16(3), e2)
	assert.Equal(t, int32(3), e3)
	assert.Equal(t, int64(3), e4)
	assert.Equal(t, uint(3), e5)
	assert.Equal(t, uint8(3), e6)
	assert.Equal(t, uint16(3), e7)
	assert.Equal(t, uint32(3), e8)
	assert.Equal(t, uint64(3), e9)
	assert.Equal(t, float32(3), e10)
	assert.Equal(t, "d", e11)

	v.ShrinkToFit()
	assert.Equal(t, 3, v.Cap())

	v.Free()
	assert.Equal(t, 0, v.Cap())
	assert.Nil(t, v.c11.data)
}

func TestVec_ZeroSizedColumns(t *testing.T) {
	v := NewVec2[struct{}, int]()

	for i := range 3 {
		v.Push(struct{}{}, i)
	}

	require.NoError(t, v.Remove(0))
	_, n := v.At(1)
	assert.Equal(t, 2, n)
	assert.Equal(t, uintptr(8), v.Stats().RowSize)
}
