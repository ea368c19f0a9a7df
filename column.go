package soa

import "unsafe"

// column is one independently typed buffer of a container.
//
// len(data) is always the container capacity. Slots past the container
// length hold the zero value of T and are never handed out.
type column[T any] struct {
	data []T
}

// resized returns a new buffer of the given capacity holding the first
// length values of the column. A zero capacity allocates nothing.
// The column itself is left untouched so the caller can swap all
// columns in at once.
func (c *column[T]) resized(capacity, length int) []T {
	if capacity == 0 {
		return nil
	}

	data := make([]T, capacity)
	copy(data, c.data[:min(length, capacity)])

	return data
}

func (c *column[T]) set(index int, value T) {
	c.data[index] = value
}

// remove shifts [index+1, length) one slot to the left.
func (c *column[T]) remove(index, length int) {
	copy(c.data[index:length-1], c.data[index+1:length])
	clear(c.data[length-1 : length])
}

// swapRemove moves the last live value into index.
func (c *column[T]) swapRemove(index, length int) {
	last := length - 1
	if index != last {
		c.data[index] = c.data[last]
	}

	clear(c.data[last:length])
}

func (c *column[T]) swap(i, j int) {
	c.data[i], c.data[j] = c.data[j], c.data[i]
}

// take returns the value at index and resets the slot.
func (c *column[T]) take(index int) T {
	v := c.data[index]
	clear(c.data[index : index+1])

	return v
}

func (c *column[T]) truncate(n, length int) {
	clear(c.data[n:length])
}

// view returns the live prefix. The capacity of the view is capped at
// length, so appending to it reallocates instead of writing into the
// container's spare slots.
func (c *column[T]) view(length int) []T {
	return c.data[:length:length]
}

func (c *column[T]) free() {
	c.data = nil
}

func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
