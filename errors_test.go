package soa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRemove(t *testing.T) {
	err := checkRemove("Remove", 0, 0)
	require.ErrorIs(t, err, ErrEmpty)
	assert.NotErrorIs(t, err, ErrIndexOutOfRange)

	err = checkRemove("Remove", 3, 3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.NotErrorIs(t, err, ErrEmpty)

	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, IndexError{Op: "Remove", Index: 3, Len: 3}, *ie)
	assert.EqualError(t, err, "soa: Remove index 3 out of bounds: valid range is 0..=2")

	assert.NoError(t, checkRemove("Remove", 2, 3))
}

func TestCheckIndex(t *testing.T) {
	assert.NoError(t, checkIndex("Swap", 0, 1))
	assert.ErrorIs(t, checkIndex("Swap", -1, 1), ErrIndexOutOfRange)
	assert.ErrorIs(t, checkIndex("Swap", 1, 1), ErrIndexOutOfRange)
	assert.EqualError(t, checkIndex("Swap", 0, 0), "soa: Swap index 0 out of bounds: container is empty")
}

func TestMustIndex(t *testing.T) {
	assert.NotPanics(t, func() { mustIndex("At", 0, 1) })
	assert.PanicsWithError(t, "soa: At index 5 out of bounds: valid range is 0..=1", func() {
		mustIndex("At", 5, 2)
	})
}

func TestMustCapacity(t *testing.T) {
	assert.NotPanics(t, func() { mustCapacity(0) })
	assert.PanicsWithValue(t, "soa: negative capacity -1", func() { mustCapacity(-1) })
}
