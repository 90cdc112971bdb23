// Package spectrum provides spectrum-domain analysis utilities.
//
// The package intentionally does not implement a transform itself. It
// operates on complex spectrum bins produced by the dsp/fft package and
// provides per-bin magnitude, phase, and power extraction, the bin-to-Hz
// frequency axis in native transform order, the centered (DC-in-the-middle)
// reordering for display, and a Goertzel analyzer for single-bin detection.
package spectrum
