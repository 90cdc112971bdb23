package eq

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/fft"
	"github.com/cwbudde/algo-eq/dsp/spectrum"
	"github.com/cwbudde/algo-vecmath"
)

// State tags which derived artifacts of a Pipeline are valid.
type State int

const (
	// StateEmpty means no signal has been loaded.
	StateEmpty State = iota

	// StateSignalLoaded means a signal is present but no spectrum exists.
	StateSignalLoaded

	// StateSpectrumComputed means the original spectrum and frequency axis exist.
	StateSpectrumComputed

	// StateGainApplied means a modified spectrum exists and reconstruction
	// may run (repeatedly).
	StateGainApplied
)

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateSignalLoaded:
		return "signal-loaded"
	case StateSpectrumComputed:
		return "spectrum-computed"
	case StateGainApplied:
		return "gain-applied"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// DefaultTargetPeak is the peak level reconstruction normalizes to when the
// raw result would clip.
const DefaultTargetPeak = 0.95

// Pipeline orchestrates pad, transform, gain multiply, inverse transform,
// trim, and normalize for one signal, and tracks which stage outputs are
// valid.
//
// The loaded signal is kept immutable; the current signal is replaced by
// each reconstruction and restored by Reset. The original spectrum is never
// overwritten by gain application; a second, independently held modified
// spectrum carries the result. Every operation validates before mutating,
// so a failed call leaves the pipeline exactly as it was.
//
// A Pipeline owns its buffers exclusively and must not be shared between
// goroutines without external coordination.
type Pipeline struct {
	targetPeak float64

	sampleRate float64
	original   []float64
	current    []float64

	orig     []complex128
	axis     []float64
	modified []complex128

	plan  *fft.Plan
	state State
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTargetPeak sets the peak level that Reconstruct normalizes to when
// the raw result exceeds full scale. Values <= 0 are ignored.
func WithTargetPeak(level float64) Option {
	return func(p *Pipeline) {
		if level > 0 {
			p.targetPeak = level
		}
	}
}

// NewPipeline creates an empty pipeline.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{targetPeak: DefaultTargetPeak}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	return p
}

// LoadSignal loads a mono signal and its sample rate, discarding any
// previous signal and derived state. The samples are copied; the caller's
// slice is not retained.
func (p *Pipeline) LoadSignal(samples []float64, sampleRate float64) error {
	if len(samples) == 0 {
		return ErrEmptySignal
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("sample rate must be > 0: %v", sampleRate)
	}

	p.original = append([]float64(nil), samples...)
	p.current = append([]float64(nil), samples...)
	p.sampleRate = sampleRate
	p.orig = nil
	p.axis = nil
	p.modified = nil
	p.state = StateSignalLoaded

	return nil
}

// ComputeSpectrum pads the current signal to the next power of two, runs
// the forward transform, and stores the result as the original spectrum
// together with its frequency axis. Requires a loaded signal.
func (p *Pipeline) ComputeSpectrum() error {
	if p.state < StateSignalLoaded {
		return fmt.Errorf("%w: no signal loaded", ErrNotReady)
	}

	padded := fft.Pad(p.current)

	plan, err := p.planFor(len(padded))
	if err != nil {
		return err
	}

	spec := make([]complex128, len(padded))
	if err := plan.Forward(spec, fft.ToComplex(padded)); err != nil {
		return err
	}

	p.orig = spec
	p.axis = spectrum.FrequencyAxis(len(spec), p.sampleRate)
	p.modified = nil
	p.state = StateSpectrumComputed

	return nil
}

// ApplyGain multiplies the original spectrum elementwise by mask and stores
// the result as the modified spectrum, leaving the original untouched.
// Multiplication by a real gain scales each bin's magnitude and preserves
// its phase exactly.
//
// The mask length must equal the spectrum length, which is
// fft.NextPowerOfTwo of the signal length; otherwise ErrLengthMismatch is
// returned before any state changes. If the spectrum has not been computed
// yet, it is computed implicitly first.
func (p *Pipeline) ApplyGain(mask []float64) error {
	if p.state < StateSignalLoaded {
		return fmt.Errorf("%w: no signal loaded", ErrNotReady)
	}

	// The spectrum length is known before computing it, so a bad mask is
	// rejected without transitioning state.
	want := fft.NextPowerOfTwo(len(p.current))
	if p.orig != nil {
		want = len(p.orig)
	}

	if len(mask) != want {
		return fmt.Errorf("%w: mask=%d spectrum=%d", ErrLengthMismatch, len(mask), want)
	}

	if p.state < StateSpectrumComputed {
		if err := p.ComputeSpectrum(); err != nil {
			return err
		}
	}

	n := len(p.orig)
	re := make([]float64, n)
	im := make([]float64, n)

	for i, c := range p.orig {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.MulBlockInPlace(re, mask)
	vecmath.MulBlockInPlace(im, mask)

	modified := make([]complex128, n)
	for i := range modified {
		modified[i] = complex(re[i], im[i])
	}

	p.modified = modified
	p.state = StateGainApplied

	return nil
}

// ApplyBands maps the band list onto a gain mask aligned with the
// pipeline's frequency axis and applies it. The spectrum is computed
// implicitly when necessary.
func (p *Pipeline) ApplyBands(bands []Band) error {
	if p.state < StateSignalLoaded {
		return fmt.Errorf("%w: no signal loaded", ErrNotReady)
	}

	for i, b := range bands {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("band %d: %w", i, err)
		}
	}

	if p.state < StateSpectrumComputed {
		if err := p.ComputeSpectrum(); err != nil {
			return err
		}
	}

	mask, err := MapBandsToGain(bands, p.axis)
	if err != nil {
		return err
	}

	return p.ApplyGain(mask)
}

// Reconstruct runs the inverse transform on the modified spectrum, takes
// the real component, trims to the original signal length, and replaces the
// current signal with the result.
//
// When the raw result's peak absolute sample exceeds 1, the whole signal is
// rescaled so the peak equals the configured target level (0.95 by
// default); quieter results are returned unscaled. Requires ApplyGain
// first; calling it earlier fails with ErrNotReady. Reconstruction may be
// repeated.
func (p *Pipeline) Reconstruct() ([]float64, error) {
	if p.modified == nil {
		return nil, fmt.Errorf("%w: no modified spectrum, apply a gain mask first", ErrNotReady)
	}

	plan, err := p.planFor(len(p.modified))
	if err != nil {
		return nil, err
	}

	buf := make([]complex128, len(p.modified))
	if err := plan.Inverse(buf, p.modified); err != nil {
		return nil, err
	}

	// Imaginary residue is floating-point noise for mirror-symmetric
	// spectra; taking the real part discards it.
	out := fft.Real(buf)[:len(p.original)]

	peak := maxAbs(out)
	if peak > 1 {
		scale := p.targetPeak / peak
		for i, v := range out {
			out[i] = v * scale
		}
	}

	p.current = out

	return out, nil
}

// Reset restores the current signal to the originally loaded signal and
// discards both spectra and the frequency axis. The loaded signal itself is
// kept. Requires a loaded signal.
func (p *Pipeline) Reset() error {
	if p.state < StateSignalLoaded {
		return fmt.Errorf("%w: no signal loaded", ErrNotReady)
	}

	p.current = append([]float64(nil), p.original...)
	p.orig = nil
	p.axis = nil
	p.modified = nil
	p.state = StateSignalLoaded

	return nil
}

func (p *Pipeline) planFor(n int) (*fft.Plan, error) {
	if p.plan != nil && p.plan.Size() == n {
		return p.plan, nil
	}

	plan, err := fft.NewPlan(n)
	if err != nil {
		return nil, err
	}

	p.plan = plan

	return plan, nil
}

func maxAbs(data []float64) float64 {
	peak := 0.0
	for _, v := range data {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	return peak
}

// State returns the current pipeline state.
func (p *Pipeline) State() State { return p.state }

// SampleRate returns the sample rate of the loaded signal, 0 when empty.
func (p *Pipeline) SampleRate() float64 { return p.sampleRate }

// Original returns the originally loaded signal. Callers must not modify it.
func (p *Pipeline) Original() []float64 { return p.original }

// Current returns the current signal: the loaded signal until the first
// reconstruction, then the latest reconstruction result. Callers must not
// modify it.
func (p *Pipeline) Current() []float64 { return p.current }

// Spectrum returns the original (unmodified) spectrum, nil before
// ComputeSpectrum. Callers must not modify it.
func (p *Pipeline) Spectrum() []complex128 { return p.orig }

// ModifiedSpectrum returns the spectrum after gain application, nil before
// ApplyGain. Callers must not modify it.
func (p *Pipeline) ModifiedSpectrum() []complex128 { return p.modified }

// FrequencyAxis returns the frequency in Hz of each spectrum bin in native
// transform order, nil before ComputeSpectrum. Callers must not modify it.
func (p *Pipeline) FrequencyAxis() []float64 { return p.axis }

// FrequencyRange returns the representable frequency range of the loaded
// signal, from DC to the Nyquist frequency.
func (p *Pipeline) FrequencyRange() (minHz, maxHz float64) {
	return 0, p.sampleRate / 2
}

// Info is a point-in-time summary of a pipeline.
type Info struct {
	State           State
	SampleRate      float64
	SignalLength    int
	DurationSeconds float64
	SpectrumLength  int
	GainApplied     bool
}

// Info returns a snapshot of the pipeline's state and dimensions.
func (p *Pipeline) Info() Info {
	info := Info{
		State:          p.state,
		SampleRate:     p.sampleRate,
		SignalLength:   len(p.current),
		SpectrumLength: len(p.orig),
		GainApplied:    p.modified != nil,
	}

	if p.sampleRate > 0 {
		info.DurationSeconds = float64(len(p.current)) / p.sampleRate
	}

	return info
}
