package soa

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a row is removed from an empty container.
	ErrEmpty = errors.New("soa: container is empty, nothing to remove")

	// ErrIndexOutOfRange is the cause of every IndexError.
	ErrIndexOutOfRange = errors.New("soa: index out of range")
)

// IndexError reports a row index outside of [0, Len).
//
// errors.Is(err, ErrIndexOutOfRange) reports true for it.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("soa: %s index %d out of bounds: container is empty", e.Op, e.Index)
	}

	return fmt.Sprintf("soa: %s index %d out of bounds: valid range is 0..=%d", e.Op, e.Index, e.Len-1)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// checkRemove validates an index for the structural removals.
func checkRemove(op string, index, length int) error {
	if length == 0 {
		return ErrEmpty
	}

	return checkIndex(op, index, length)
}

func checkIndex(op string, index, length int) error {
	if uint(index) >= uint(length) {
		return &IndexError{Op: op, Index: index, Len: length}
	}

	return nil
}

// mustIndex panics for accessors that don't return an error.
func mustIndex(op string, index, length int) {
	if err := checkIndex(op, index, length); err != nil {
		panic(err)
	}
}

func mustCapacity(capacity int) {
	if capacity < 0 {
		panic(fmt.Sprintf("soa: negative capacity %d", capacity))
	}
}
