//go:build soadebug

package soa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebug_Enabled(t *testing.T) {
	require.True(t, debug)
}

func TestVec2_assertInvariants(t *testing.T) {
	v := NewVec2WithCapacity[uint64, uint32](4)
	v.Push(1, 2)

	assert.NotPanics(t, v.assertInvariants)

	v.c1.data = v.c1.data[:2]
	assert.PanicsWithValue(t, "soa: column 1 holds 2 slots, capacity is 4", v.assertInvariants)

	v.c1.data = make([]uint32, 4)
	v.length = 5
	assert.PanicsWithValue(t, "soa: length 5 outside of capacity 4", v.assertInvariants)
}

func TestVec2_Invariants_Sequence(t *testing.T) {
	var v Vec2[int, string]

	assert.NotPanics(t, func() {
		for i := range 100 {
			v.Push(i, "x")
			if i%3 == 0 {
				_ = v.SwapRemove(0)
			}
			if i%7 == 0 {
				_ = v.Remove(v.Len() / 2)
			}
		}

		v.Reserve(500)
		v.ShrinkToFit()
		v.Free()
	})
}
