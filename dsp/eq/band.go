package eq

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Band describes one equalizer control: a multiplicative gain applied to a
// contiguous frequency range centered on CenterHz.
//
// Gain is linear amplitude: 1 leaves the range untouched, 0 removes it,
// values above 1 boost it. Bands in a list are unordered by frequency but
// ordered by priority; on overlap, later bands win.
type Band struct {
	CenterHz float64
	WidthHz  float64
	Gain     float64
}

// NewBand creates a validated band.
func NewBand(centerHz, widthHz, gain float64) (Band, error) {
	b := Band{CenterHz: centerHz, WidthHz: widthHz, Gain: gain}
	if err := b.Validate(); err != nil {
		return Band{}, err
	}

	return b, nil
}

// NewBandDB creates a validated band with gain given in dB
// (20*log10 convention, 0 dB = unity).
func NewBandDB(centerHz, widthHz, gainDB float64) (Band, error) {
	return NewBand(centerHz, widthHz, core.DBToLinear(gainDB))
}

// Validate checks the band constraints: width >= 0 and gain >= 0, all
// fields finite.
func (b Band) Validate() error {
	if math.IsNaN(b.CenterHz) || math.IsInf(b.CenterHz, 0) {
		return fmt.Errorf("band center must be finite: %v", b.CenterHz)
	}

	if b.WidthHz < 0 || math.IsNaN(b.WidthHz) || math.IsInf(b.WidthHz, 0) {
		return fmt.Errorf("band width must be >= 0: %v", b.WidthHz)
	}

	if b.Gain < 0 || math.IsNaN(b.Gain) || math.IsInf(b.Gain, 0) {
		return fmt.Errorf("band gain must be >= 0: %v", b.Gain)
	}

	return nil
}

// Range returns the inclusive frequency interval the band covers,
// [CenterHz-WidthHz/2, CenterHz+WidthHz/2].
func (b Band) Range() (lo, hi float64) {
	half := b.WidthHz / 2
	return b.CenterHz - half, b.CenterHz + half
}
