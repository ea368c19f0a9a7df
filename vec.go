package soa

import (
	"fmt"
	"math"
)

// header is the length and capacity shared by every column of a container.
type header struct {
	length   int
	capacity int
}

// Len returns the number of rows.
func (h *header) Len() int {
	return h.length
}

// Cap returns the number of rows every column can hold without reallocating.
func (h *header) Cap() int {
	return h.capacity
}

func (h *header) full() bool {
	return h.length == h.capacity
}

// grown returns the capacity used when a push finds the container full:
// 0 -> 1 -> 2 -> 4 -> 8 ...
func (h *header) grown() int {
	if h.capacity == 0 {
		return 1
	}

	if h.capacity > math.MaxInt/2 {
		panic(fmt.Sprintf("soa: capacity overflow growing from %d", h.capacity))
	}

	return h.capacity * 2
}

func (h *header) truncateLen(n int) bool {
	if n < 0 {
		panic(fmt.Sprintf("soa: negative length %d", n))
	}

	return n < h.length
}

func (h *header) stats(rowSize uintptr) Stats {
	return Stats{
		Len:            h.length,
		Capacity:       h.capacity,
		RowSize:        rowSize,
		UsedBytes:      uintptr(h.length) * rowSize,
		AllocatedBytes: uintptr(h.capacity) * rowSize,
	}
}

// check panics unless every column length matches the shared capacity.
func (h *header) check(columns ...int) {
	if h.length < 0 || h.length > h.capacity {
		panic(fmt.Sprintf("soa: length %d outside of capacity %d", h.length, h.capacity))
	}

	for i, n := range columns {
		if n != h.capacity {
			panic(fmt.Sprintf("soa: column %d holds %d slots, capacity is %d", i, n, h.capacity))
		}
	}
}
