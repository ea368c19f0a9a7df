package soa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newColumn[T any](values ...T) *column[T] {
	c := &column[T]{data: make([]T, len(values)+2)}
	copy(c.data, values)

	return c
}

func TestColumn_resized(t *testing.T) {
	c := newColumn[int](1, 2, 3)

	data := c.resized(8, 3)
	require.Len(t, data, 8)
	assert.Equal(t, []int{1, 2, 3, 0, 0, 0, 0, 0}, data)

	// The column keeps its old buffer until the caller swaps it in.
	assert.Len(t, c.data, 5)

	assert.Nil(t, c.resized(0, 0))
	assert.Equal(t, []int{1, 2}, c.resized(2, 3))
}

func TestColumn_remove(t *testing.T) {
	c := newColumn[string]("a", "b", "c", "d")

	c.remove(1, 4)
	assert.Equal(t, []string{"a", "c", "d", "", "", ""}, c.data)

	c.remove(2, 3)
	assert.Equal(t, []string{"a", "c", "", "", "", ""}, c.data)
}

func TestColumn_swapRemove(t *testing.T) {
	c := newColumn[int](1, 2, 3, 4)

	c.swapRemove(0, 4)
	assert.Equal(t, []int{4, 2, 3, 0, 0, 0}, c.data)

	// Last row is just cleared.
	c.swapRemove(2, 3)
	assert.Equal(t, []int{4, 2, 0, 0, 0, 0}, c.data)
}

func TestColumn_swap(t *testing.T) {
	c := newColumn[int](1, 2, 3)

	c.swap(0, 2)
	assert.Equal(t, []int{3, 2, 1, 0, 0}, c.data)

	c.swap(1, 1)
	assert.Equal(t, []int{3, 2, 1, 0, 0}, c.data)
}

func TestColumn_take(t *testing.T) {
	a, b := 1, 2
	c := newColumn[*int](&a, &b)

	got := c.take(1)
	assert.Same(t, &b, got)
	assert.Nil(t, c.data[1])
}

func TestColumn_view(t *testing.T) {
	c := newColumn[int](1, 2, 3)

	view := c.view(2)
	require.Equal(t, []int{1, 2}, view)
	require.Equal(t, 2, cap(view))

	view[0] = 7
	assert.Equal(t, 7, c.data[0])

	view = append(view, 42)
	assert.Equal(t, 3, c.data[2], "append on a view must not write into the column")

	view[1] = 8
	assert.Equal(t, 2, c.data[1])
}

func TestColumn_truncate(t *testing.T) {
	c := newColumn[int](1, 2, 3, 4)

	c.truncate(1, 4)
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0}, c.data)
}

func TestSizeOf(t *testing.T) {
	assert.Equal(t, uintptr(8), sizeOf[uint64]())
	assert.Equal(t, uintptr(4), sizeOf[uint32]())
	assert.Equal(t, uintptr(0), sizeOf[struct{}]())
	assert.Equal(t, uintptr(24), sizeOf[[3]uint64]())
}
