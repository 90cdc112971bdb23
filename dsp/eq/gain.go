package eq

import (
	"fmt"
	"math"
)

// UnityMask returns an all-ones gain mask of length n.
func UnityMask(n int) []float64 {
	mask := make([]float64, n)
	for i := range mask {
		mask[i] = 1
	}

	return mask
}

// MapBandsToGain converts a band list into a per-bin gain mask aligned with
// axis, which must be a frequency axis in native transform order (see
// spectrum.FrequencyAxis).
//
// The mask starts at unity. For each band in list order, every bin whose
// absolute axis frequency lies inside the band's inclusive range is set to
// the band's gain; later bands overwrite earlier ones on overlap, with no
// blending. Matching on |frequency| sets a positive-frequency bin and its
// negative-frequency mirror to the same gain, which keeps the mask
// mirror-symmetric (mask[k] == mask[n-k]) and therefore the reconstruction
// real-valued.
func MapBandsToGain(bands []Band, axis []float64) ([]float64, error) {
	for i, b := range bands {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("band %d: %w", i, err)
		}
	}

	mask := UnityMask(len(axis))
	for _, b := range bands {
		lo, hi := b.Range()

		for k, f := range axis {
			af := math.Abs(f)
			if af >= lo && af <= hi {
				mask[k] = b.Gain
			}
		}
	}

	return mask, nil
}
