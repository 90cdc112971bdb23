package spectrum

// FrequencyAxis returns the frequency in Hz for each of n spectrum bins in
// native transform order. Returns nil for n <= 0.
//
// Index 0 is DC; indices 1..n/2-1 ascend through positive frequencies in
// steps of sampleRate/n; indices n/2..n-1 hold the negative frequencies,
// where bin k maps to (k-n)*sampleRate/n. Gain masks and spectra are only
// combinable elementwise when both follow this exact ordering, which is the
// native output order of the transform, so the axis must never be reordered
// on the processing path.
func FrequencyAxis(n int, sampleRate float64) []float64 {
	if n <= 0 {
		return nil
	}

	resolution := sampleRate / float64(n)
	out := make([]float64, n)

	half := n / 2
	for k := 0; k < n; k++ {
		if k < half || n == 1 {
			out[k] = float64(k) * resolution
		} else {
			out[k] = float64(k-n) * resolution
		}
	}

	return out
}

// Centered reorders a native-order sequence so the DC element sits in the
// middle, splitting at mid = (n+1)/2 and swapping the halves.
//
// This is a display and diagnostic utility only. The processing path always
// operates in native order; feeding a centered sequence into a gain multiply
// or inverse transform misaligns every bin.
func Centered(in []float64) []float64 {
	n := len(in)
	if n == 0 {
		return nil
	}

	mid := (n + 1) / 2
	out := make([]float64, 0, n)
	out = append(out, in[mid:]...)
	out = append(out, in[:mid]...)

	return out
}

// CenteredComplex is [Centered] for complex spectra.
func CenteredComplex(in []complex128) []complex128 {
	n := len(in)
	if n == 0 {
		return nil
	}

	mid := (n + 1) / 2
	out := make([]complex128, 0, n)
	out = append(out, in[mid:]...)
	out = append(out, in[:mid]...)

	return out
}
