package fft

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Plan holds the precomputed tables for one transform size.
//
// A Plan is cheap to reuse: the bit-reversal permutation and twiddle factors
// are computed once in NewPlan, and Forward/Inverse only touch the caller's
// buffers. A Plan is safe for concurrent use because it is never mutated
// after construction.
type Plan struct {
	n       int
	perm    []int        // bit-reversal permutation indices
	twiddle []complex128 // W_n^k = e^(-2*pi*i*k/n) for k in 0..n/2-1
}

// NewPlan creates a transform plan for size n.
//
// n must be a positive power of two; otherwise ErrInvalidLength is returned.
// Arbitrary-length signals should be extended with Pad first.
func NewPlan(n int) (*Plan, error) {
	if !IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	stages := 0
	for 1<<stages < n {
		stages++
	}

	perm := make([]int, n)
	for i := 1; i < n; i++ {
		perm[i] = perm[i>>1]>>1 | (i&1)<<(stages-1)
	}

	twiddle := make([]complex128, n/2)
	for k := range twiddle {
		angle := -2 * math.Pi * float64(k) / float64(n)
		twiddle[k] = cmplx.Exp(complex(0, angle))
	}

	return &Plan{n: n, perm: perm, twiddle: twiddle}, nil
}

// Size returns the transform size the plan was created for.
func (p *Plan) Size() int {
	return p.n
}

func (p *Plan) check(dst, src []complex128) error {
	if len(src) != p.n {
		return fmt.Errorf("%w: src=%d plan=%d", ErrSizeMismatch, len(src), p.n)
	}

	if len(dst) != p.n {
		return fmt.Errorf("%w: dst=%d plan=%d", ErrSizeMismatch, len(dst), p.n)
	}

	return nil
}

// Forward computes the discrete Fourier transform of src into dst.
//
// dst and src must both have the plan size; dst may alias src for an
// in-place transform. The implementation applies the bit-reversal
// permutation followed by log2(n) butterfly passes, which is bit-identical
// to the recursive radix-2 decimation-in-time definition without its call
// overhead or stack depth.
func (p *Plan) Forward(dst, src []complex128) error {
	if err := p.check(dst, src); err != nil {
		return err
	}

	if p.n == 1 {
		dst[0] = src[0]
		return nil
	}

	if &dst[0] == &src[0] {
		// In-place: swap index pairs, each pair exactly once.
		for i, j := range p.perm {
			if i < j {
				dst[i], dst[j] = dst[j], dst[i]
			}
		}
	} else {
		for i, j := range p.perm {
			dst[i] = src[j]
		}
	}

	for size := 2; size <= p.n; size <<= 1 {
		half := size >> 1
		stride := p.n / size

		for start := 0; start < p.n; start += size {
			for k := 0; k < half; k++ {
				w := p.twiddle[k*stride]
				a := dst[start+k]
				b := w * dst[start+k+half]
				dst[start+k] = a + b
				dst[start+k+half] = a - b
			}
		}
	}

	return nil
}

// Inverse reconstructs the time-domain buffer for the spectrum in src.
//
// It conjugates the input, applies Forward, conjugates again, and scales by
// 1/n. This is mathematically exact given an exact forward transform and
// avoids maintaining a second butterfly network. For spectra of real
// signals the imaginary parts of dst are floating-point residue only.
func (p *Plan) Inverse(dst, src []complex128) error {
	if err := p.check(dst, src); err != nil {
		return err
	}

	for i, v := range src {
		dst[i] = cmplx.Conj(v)
	}

	if err := p.Forward(dst, dst); err != nil {
		return err
	}

	scale := complex(1/float64(p.n), 0)
	for i, v := range dst {
		dst[i] = cmplx.Conj(v) * scale
	}

	return nil
}

// Forward is a one-shot forward transform for a power-of-two length input.
func Forward(in []complex128) ([]complex128, error) {
	plan, err := NewPlan(len(in))
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(in))
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	return out, nil
}

// Inverse is a one-shot inverse transform for a power-of-two length spectrum.
func Inverse(in []complex128) ([]complex128, error) {
	plan, err := NewPlan(len(in))
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(in))
	if err := plan.Inverse(out, in); err != nil {
		return nil, err
	}

	return out, nil
}

// ForwardReal transforms an arbitrary-length real signal, zero-padding to
// the next power of two first. The returned spectrum length is
// NextPowerOfTwo(len(samples)).
func ForwardReal(samples []float64) ([]complex128, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidLength)
	}

	return Forward(ToComplex(Pad(samples)))
}
