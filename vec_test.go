package soa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFourRows returns (1,2), (3,4), (5,6), (7,8).
func newFourRows(t *testing.T) *Vec2[uint64, uint32] {
	t.Helper()

	v := NewVec2[uint64, uint32]()
	v.Push(1, 2)
	v.Push(3, 4)
	v.Push(5, 6)
	v.Push(7, 8)
	require.Equal(t, 4, v.Len())

	return v
}

func requireRows[T0, T1 any](t *testing.T, v *Vec2[T0, T1], c0 []T0, c1 []T1) {
	t.Helper()

	require.Equal(t, len(c0), v.Len())

	got0, got1 := v.Columns()
	require.Equal(t, c0, got0)
	require.Equal(t, c1, got1)
}

func TestVec2_New(t *testing.T) {
	v := NewVec2[uint32, uint64]()

	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.Nil(t, v.c0.data)
	assert.Nil(t, v.c1.data)
}

func TestVec2_ZeroValue(t *testing.T) {
	var v Vec2[string, int]

	v.Push("foo", 1)

	s, i := v.At(0)
	assert.Equal(t, "foo", s)
	assert.Equal(t, 1, i)
}

func TestVec2_WithCapacity(t *testing.T) {
	v := NewVec2WithCapacity[uint32, uint64](16)

	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 16, v.Cap())
	assert.Len(t, v.c0.data, 16)
	assert.Len(t, v.c1.data, 16)

	empty := NewVec2WithCapacity[uint32, uint64](0)
	assert.Equal(t, 0, empty.Cap())
	assert.Nil(t, empty.c0.data)

	assert.Panics(t, func() { NewVec2WithCapacity[uint32, uint64](-1) })
}

func TestVec2_Push(t *testing.T) {
	v := NewVec2[uint32, uint64]()

	v.Push(1, 2)
	require.Equal(t, 1, v.Len())
	require.NotZero(t, v.Cap())

	a, b := v.At(0)
	assert.Equal(t, uint32(1), a)
	assert.Equal(t, uint64(2), b)

	v.Push(3, 4)
	require.Equal(t, 2, v.Len())

	a, b = v.At(0)
	assert.Equal(t, uint32(1), a)
	assert.Equal(t, uint64(2), b)

	a, b = v.At(1)
	assert.Equal(t, uint32(3), a)
	assert.Equal(t, uint64(4), b)
}

func TestVec2_Push_Many(t *testing.T) {
	const n = 1000

	v := NewVec2[int, string]()
	for i := range n {
		v.Push(i, string(rune('a'+i%26)))
	}

	require.Equal(t, n, v.Len())
	for i := range n {
		a, b := v.At(i)
		require.Equal(t, i, a)
		require.Equal(t, string(rune('a'+i%26)), b)
	}
}

func TestVec2_Growth(t *testing.T) {
	v := NewVec2[uint64, uint32]()

	var caps []int
	for i := range 17 {
		v.Push(uint64(i), uint32(i))
		if len(caps) == 0 || caps[len(caps)-1] != v.Cap() {
			caps = append(caps, v.Cap())
		}

		require.Len(t, v.c0.data, v.Cap())
		require.Len(t, v.c1.data, v.Cap())
	}

	assert.Equal(t, []int{1, 2, 4, 8, 16, 32}, caps)
}

func TestVec2_Growth_FromCapacity(t *testing.T) {
	v := NewVec2WithCapacity[uint64, uint32](3)

	for i := range 4 {
		v.Push(uint64(i), uint32(i))
	}

	assert.Equal(t, 6, v.Cap())
	requireRows(t, v, []uint64{0, 1, 2, 3}, []uint32{0, 1, 2, 3})
}

func TestVec2_Reserve(t *testing.T) {
	v := newFourRows(t)
	require.Equal(t, 4, v.Cap())

	v.Reserve(2)
	assert.Equal(t, 4, v.Cap())

	v.Reserve(4)
	assert.Equal(t, 4, v.Cap())

	v.Reserve(100)
	assert.Equal(t, 100, v.Cap())
	assert.Len(t, v.c0.data, 100)
	assert.Len(t, v.c1.data, 100)
	requireRows(t, v, []uint64{1, 3, 5, 7}, []uint32{2, 4, 6, 8})

	v.Reserve(-1)
	assert.Equal(t, 100, v.Cap())
}

func TestVec2_Reserve_Empty(t *testing.T) {
	var v Vec2[uint64, uint32]

	v.Reserve(0)
	assert.Nil(t, v.c0.data)

	v.Reserve(5)
	assert.Equal(t, 5, v.Cap())
	assert.Equal(t, 0, v.Len())
}

func TestVec2_Remove(t *testing.T) {
	v := NewVec2[uint64, uint32]()
	v.Push(1, 2)
	v.Push(3, 4)
	v.Push(5, 6)

	require.NoError(t, v.Remove(1))
	require.Equal(t, 2, v.Len())

	a, b := v.At(1)
	assert.Equal(t, uint64(5), a)
	assert.Equal(t, uint32(6), b)

	require.NoError(t, v.Remove(1))
	require.Equal(t, 1, v.Len())

	a, b = v.At(0)
	assert.Equal(t, uint64(1), a)
	assert.Equal(t, uint32(2), b)

	require.NoError(t, v.Remove(0))
	assert.Equal(t, 0, v.Len())
}

func TestVec2_Remove_KeepsOrder(t *testing.T) {
	v := newFourRows(t)

	require.NoError(t, v.Remove(0))
	requireRows(t, v, []uint64{3, 5, 7}, []uint32{4, 6, 8})

	// Vacated slot is reset.
	assert.Zero(t, v.c0.data[3])
	assert.Zero(t, v.c1.data[3])
	assert.Equal(t, 4, v.Cap())
}

func TestVec2_Remove_OutOfBounds(t *testing.T) {
	v := NewVec2[uint32, uint64]()
	v.Push(1, 2)

	err := v.Remove(1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.EqualError(t, err, "soa: Remove index 1 out of bounds: valid range is 0..=0")

	require.ErrorIs(t, v.Remove(-1), ErrIndexOutOfRange)
	assert.Equal(t, 1, v.Len())
}

func TestVec2_Remove_Empty(t *testing.T) {
	v := NewVec2[uint32, uint64]()

	err := v.Remove(0)
	require.ErrorIs(t, err, ErrEmpty)
	assert.NotErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 0, v.Len())
}

func TestVec2_SwapRemove(t *testing.T) {
	v := newFourRows(t)

	require.NoError(t, v.SwapRemove(1))
	require.Equal(t, 3, v.Len())

	a, b := v.At(1)
	assert.Equal(t, uint64(7), a)
	assert.Equal(t, uint32(8), b)

	requireRows(t, v, []uint64{1, 7, 5}, []uint32{2, 8, 6})
	assert.Panics(t, func() { v.At(3) })
}

func TestVec2_SwapRemove_Last(t *testing.T) {
	v := newFourRows(t)

	require.NoError(t, v.SwapRemove(3))
	requireRows(t, v, []uint64{1, 3, 5}, []uint32{2, 4, 6})
}

func TestVec2_SwapRemove_Errors(t *testing.T) {
	v := NewVec2[uint64, uint32]()
	require.ErrorIs(t, v.SwapRemove(0), ErrEmpty)

	v.Push(1, 2)
	require.ErrorIs(t, v.SwapRemove(1), ErrIndexOutOfRange)
	assert.Equal(t, 1, v.Len())
}

func TestVec2_Swap(t *testing.T) {
	v := newFourRows(t)

	require.NoError(t, v.Swap(1, 3))

	a, b := v.At(1)
	assert.Equal(t, uint64(7), a)
	assert.Equal(t, uint32(8), b)

	a, b = v.At(3)
	assert.Equal(t, uint64(3), a)
	assert.Equal(t, uint32(4), b)

	requireRows(t, v, []uint64{1, 7, 5, 3}, []uint32{2, 8, 6, 4})
	assert.Equal(t, 4, v.Cap())

	require.NoError(t, v.Swap(2, 2))
	requireRows(t, v, []uint64{1, 7, 5, 3}, []uint32{2, 8, 6, 4})
}

func TestVec2_Swap_OutOfBounds(t *testing.T) {
	v := newFourRows(t)

	require.ErrorIs(t, v.Swap(0, 4), ErrIndexOutOfRange)
	require.ErrorIs(t, v.Swap(4, 0), ErrIndexOutOfRange)
	require.ErrorIs(t, v.Swap(-1, 0), ErrIndexOutOfRange)

	requireRows(t, v, []uint64{1, 3, 5, 7}, []uint32{2, 4, 6, 8})
}

func TestVec2_At_OutOfBounds(t *testing.T) {
	v := NewVec2WithCapacity[uint64, uint32](8)
	v.Push(1, 2)

	// Slot 1 is allocated but not live.
	assert.PanicsWithError(t, "soa: At index 1 out of bounds: valid range is 0..=0", func() { v.At(1) })
	assert.Panics(t, func() { v.Ref(1) })
	assert.Panics(t, func() { v.At(-1) })
}

func TestVec2_Ref(t *testing.T) {
	v := newFourRows(t)

	a, b := v.Ref(2)
	*a, *b = 50, 60

	got0, got1 := v.At(2)
	assert.Equal(t, uint64(50), got0)
	assert.Equal(t, uint32(60), got1)
}

func TestVec2_Columns(t *testing.T) {
	v := NewVec2WithCapacity[uint64, uint32](8)

	c0, c1 := v.Columns()
	assert.Empty(t, c0)
	assert.Empty(t, c1)

	v.Push(1, 2)
	v.Push(3, 4)

	c0, c1 = v.Columns()
	require.Equal(t, []uint64{1, 3}, c0)
	require.Equal(t, []uint32{2, 4}, c1)
	assert.Equal(t, 2, cap(c0))
	assert.Equal(t, 2, cap(c1))

	c0[1] = 30
	a, _ := v.At(1)
	assert.Equal(t, uint64(30), a)

	_ = append(c0, 99)
	assert.Equal(t, 2, v.Len())
	assert.Zero(t, v.c0.data[2])
}

func TestVec2_Pop(t *testing.T) {
	v := newFourRows(t)

	a, b, ok := v.Pop()
	require.True(t, ok)
	assert.Equal(t, uint64(7), a)
	assert.Equal(t, uint32(8), b)
	assert.Equal(t, 3, v.Len())
	assert.Zero(t, v.c0.data[3])

	for v.Len() > 0 {
		_, _, ok = v.Pop()
		require.True(t, ok)
	}

	_, _, ok = v.Pop()
	assert.False(t, ok)
}

func TestVec2_Truncate(t *testing.T) {
	v := newFourRows(t)

	v.Truncate(10)
	assert.Equal(t, 4, v.Len())

	v.Truncate(1)
	requireRows(t, v, []uint64{1}, []uint32{2})
	assert.Equal(t, []uint64{1, 0, 0, 0}, v.c0.data)
	assert.Equal(t, 4, v.Cap())

	assert.Panics(t, func() { v.Truncate(-1) })

	v.Clear()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 4, v.Cap())
}

func TestVec2_ShrinkToFit(t *testing.T) {
	v := NewVec2WithCapacity[uint64, uint32](64)
	v.Push(1, 2)
	v.Push(3, 4)

	v.ShrinkToFit()
	assert.Equal(t, 2, v.Cap())
	requireRows(t, v, []uint64{1, 3}, []uint32{2, 4})

	v.Clear()
	v.ShrinkToFit()
	assert.Equal(t, 0, v.Cap())
	assert.Nil(t, v.c0.data)
	assert.Nil(t, v.c1.data)
}

func TestVec2_Free(t *testing.T) {
	v := newFourRows(t)

	v.Free()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.Nil(t, v.c0.data)
	assert.Nil(t, v.c1.data)

	// Freed container is reusable.
	v.Push(9, 10)
	requireRows(t, v, []uint64{9}, []uint32{10})
}

func TestVec2_Stats(t *testing.T) {
	v := NewVec2WithCapacity[uint64, uint32](10)
	v.Push(1, 2)
	v.Push(3, 4)

	stats := v.Stats()
	assert.Equal(t, Stats{
		Len:            2,
		Capacity:       10,
		RowSize:        12,
		UsedBytes:      24,
		AllocatedBytes: 120,
	}, stats)
}

func TestVec2_RemoveAll(t *testing.T) {
	tests := []struct {
		name   string
		remove func(v *Vec2[int, string]) error
	}{
		{"front", func(v *Vec2[int, string]) error { return v.Remove(0) }},
		{"back", func(v *Vec2[int, string]) error { return v.Remove(v.Len() - 1) }},
		{"swap front", func(v *Vec2[int, string]) error { return v.SwapRemove(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVec2[int, string]()
			for i := range 33 {
				v.Push(i, "x")
			}

			for v.Len() > 0 {
				require.NoError(t, tt.remove(v))
			}

			require.ErrorIs(t, tt.remove(v), ErrEmpty)
			assert.Equal(t, 64, v.Cap())
			assert.Equal(t, make([]string, 64), v.c1.data)
		})
	}
}
