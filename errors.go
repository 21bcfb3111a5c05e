package gapbuffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrIndexOutOfRange indicates an index is outside the valid logical
	// range after negative-index normalization.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyBuffer indicates a pop was attempted on an empty buffer.
	ErrEmptyBuffer = errors.New("pop from empty buffer")

	// ErrNotFound indicates a searched-for element is not in the buffer.
	ErrNotFound = errors.New("element not found")

	// ErrInvalidStep indicates a slice step of zero.
	ErrInvalidStep = errors.New("slice step cannot be zero")
)
