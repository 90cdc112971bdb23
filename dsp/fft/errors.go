package fft

import "errors"

var (
	// ErrInvalidLength is returned when a transform size is not a power of two.
	ErrInvalidLength = errors.New("fft size must be a power of two")

	// ErrSizeMismatch is returned when a buffer length does not match the plan size.
	ErrSizeMismatch = errors.New("buffer length does not match plan size")
)
