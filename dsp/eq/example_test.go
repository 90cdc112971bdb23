package eq_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/spectrum"
)

func ExamplePipeline() {
	// One second of a 5 Hz tone sampled at 256 Hz.
	sig := make([]float64, 256)
	for i := range sig {
		sig[i] = math.Sin(2 * math.Pi * 5 * float64(i) / 256)
	}

	p := eq.NewPipeline()
	_ = p.LoadSignal(sig, 256)

	// Remove the tone with a zero-gain band over 4..6 Hz and rebuild.
	_ = p.ApplyBands([]eq.Band{{CenterHz: 5, WidthHz: 2, Gain: 0}})

	out, _ := p.Reconstruct()

	peak := 0.0
	for _, v := range out {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	fmt.Printf("state=%s residual<1%%: %t\n", p.State(), peak < 0.01)
	// Output:
	// state=gain-applied residual<1%: true
}

func ExampleMapBandsToGain() {
	axis := spectrum.FrequencyAxis(8, 8000)

	mask, _ := eq.MapBandsToGain([]eq.Band{
		{CenterHz: 1000, WidthHz: 0, Gain: 0.5},
	}, axis)

	// The 1000 Hz bin and its negative-frequency mirror share the gain.
	fmt.Println(mask[1], mask[7])
	// Output:
	// 0.5 0.5
}
