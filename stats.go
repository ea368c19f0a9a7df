package soa

// Stats describes the memory held by a container.
type Stats struct {
	Len      int
	Capacity int

	// RowSize is the sum of the element sizes of all columns.
	RowSize uintptr

	UsedBytes      uintptr
	AllocatedBytes uintptr
}
