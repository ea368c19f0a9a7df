package soa

// Estimates capacity (number of rows) from the given memory size in bytes,
// for rows of rowSize bytes. See RowSizeN and Stats.RowSize.
func CapacityFromSize(size, rowSize uintptr) int {
	if rowSize == 0 {
		return 0
	}

	return int(size / rowSize)
}
