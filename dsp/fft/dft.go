package fft

import (
	"math"
	"math/cmplx"
)

// DFT computes the discrete Fourier transform by direct summation.
//
// X[k] = sum over n of x[n] * e^(-2*pi*i*k*n/N).
//
// This is the O(N^2) textbook definition. It accepts any length and exists
// solely to validate the fast transform against; it must never sit on a
// production processing path.
func DFT(in []complex128) []complex128 {
	n := len(in)
	out := make([]complex128, n)

	for k := 0; k < n; k++ {
		var sum complex128

		for t := 0; t < n; t++ {
			angle := -2 * math.Pi * float64(k) * float64(t) / float64(n)
			sum += in[t] * cmplx.Exp(complex(0, angle))
		}

		out[k] = sum
	}

	return out
}
