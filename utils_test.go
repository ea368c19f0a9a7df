package soa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapacityFromSize(t *testing.T) {
	t.Run("uint64,uint32", func(t *testing.T) {
		rowSize := RowSize2[uint64, uint32]()
		require.Equal(t, uintptr(12), rowSize)

		tests := []struct {
			name string
			size uintptr
			want int
		}{
			{"zero", 0, 0},
			{"less than one row", rowSize - 1, 0},
			{"exactly one row", rowSize, 1},
			{"one and a half rows", rowSize + rowSize/2, 1},
			{"ten rows", rowSize * 10, 10},
			{"1KB", 1024, int(1024 / rowSize)},
			{"1MB", 1024 * 1024, int(1024 * 1024 / rowSize)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				require.Equal(t, tt.want, CapacityFromSize(tt.size, rowSize))
			})
		}
	})

	t.Run("zero sized row", func(t *testing.T) {
		require.Equal(t, 0, CapacityFromSize(1024, RowSize1[struct{}]()))
	})

	t.Run("usage with NewWithCapacity", func(t *testing.T) {
		rowSize := RowSize3[uint64, uint64, uint64]()

		capacity := CapacityFromSize(rowSize*32, rowSize)
		require.Equal(t, 32, capacity)

		v := NewVec3WithCapacity[uint64, uint64, uint64](capacity)
		stats := v.Stats()
		require.Equal(t, 32, stats.Capacity)
		require.Equal(t, rowSize*32, stats.AllocatedBytes)
	})
}
