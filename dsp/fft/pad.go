package fft

// NextPowerOfTwo returns the smallest power of two >= n.
// Returns 1 for n <= 0.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Pad returns a new buffer of length NextPowerOfTwo(len(signal)) containing
// signal followed by zeros. The input is never modified.
//
// Padding guarantees the power-of-two precondition of Plan for arbitrary
// input lengths. The implicit rectangular window causes spectral leakage for
// content that does not align with an integer bin; callers that need tighter
// spectra must window upstream.
func Pad(signal []float64) []float64 {
	out := make([]float64, NextPowerOfTwo(len(signal)))
	copy(out, signal)

	return out
}

// ToComplex widens real samples into a freshly allocated complex buffer.
func ToComplex(samples []float64) []complex128 {
	out := make([]complex128, len(samples))
	for i, v := range samples {
		out[i] = complex(v, 0)
	}

	return out
}

// Real extracts the real component of each element into a new buffer.
//
// After an inverse transform of a physically real spectrum the imaginary
// parts carry only accumulated floating-point residue; discarding them here
// is expected behavior, not error correction.
func Real(in []complex128) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = real(v)
	}

	return out
}
