package eq

import "errors"

var (
	// ErrEmptySignal is returned when a zero-length signal is loaded.
	ErrEmptySignal = errors.New("signal must not be empty")

	// ErrLengthMismatch is returned when a gain mask length differs from the
	// spectrum length.
	ErrLengthMismatch = errors.New("gain mask length does not match spectrum length")

	// ErrNotReady is returned when an operation is invoked before its
	// required predecessor state.
	ErrNotReady = errors.New("pipeline not ready for this operation")
)
