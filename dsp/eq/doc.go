// Package eq implements frequency-domain equalization: named frequency
// bands are mapped onto a per-bin gain mask, the mask is multiplied into a
// signal's spectrum, and a time-domain signal is reconstructed from the
// modified spectrum.
//
// The Pipeline type owns one signal and its derived artifacts and enforces
// the legal operation order (load, compute, apply, reconstruct) through an
// explicit state tag, so calling an operation before its prerequisite fails
// with ErrNotReady instead of surfacing as a nil dereference.
//
// A Pipeline is a single-owner value: it shares no state with other
// instances and has no internal locking. Drive one Pipeline per goroutine.
package eq
