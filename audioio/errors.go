package audioio

import "errors"

var (
	// ErrInvalidFile indicates the input is not a decodable WAV file.
	ErrInvalidFile = errors.New("not a valid wav file")
	// ErrNoSamples indicates an empty sample buffer where data is required.
	ErrNoSamples = errors.New("no samples")
)
