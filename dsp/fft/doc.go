// Package fft implements the radix-2 discrete Fourier transform pair used by
// the equalizer pipeline.
//
// The transform is implemented from first principles: a Plan precomputes the
// bit-reversal permutation and twiddle-factor table for a fixed power-of-two
// size, and Forward runs log2(N) in-place butterfly passes over a flat buffer.
// Inverse reuses the forward butterfly network through the conjugation
// identity IFFT(X) = conj(FFT(conj(X))) / N.
//
// A direct O(N^2) summation (DFT) is provided for validation of the fast path
// and accepts any length. It is not intended for production use.
//
// Arbitrary-length real signals enter the transform through Pad, which
// zero-extends to the next power of two. The implicit rectangular window
// introduces spectral leakage for non-bin-aligned content; this is expected
// and not corrected here.
package fft
