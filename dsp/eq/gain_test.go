package eq

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/spectrum"
)

func TestUnityMask(t *testing.T) {
	mask := UnityMask(16)
	for i, g := range mask {
		if g != 1 {
			t.Fatalf("mask[%d] = %f, want 1", i, g)
		}
	}
}

func TestMapBandsToGainCoversRangeInclusive(t *testing.T) {
	axis := spectrum.FrequencyAxis(256, 256)

	mask, err := MapBandsToGain([]Band{{CenterHz: 5, WidthHz: 2, Gain: 0.5}}, axis)
	if err != nil {
		t.Fatalf("MapBandsToGain error: %v", err)
	}

	// [4, 6] inclusive covers bins 4, 5, 6 and their mirrors.
	for _, k := range []int{4, 5, 6, 250, 251, 252} {
		if mask[k] != 0.5 {
			t.Fatalf("mask[%d] = %f, want 0.5", k, mask[k])
		}
	}

	for _, k := range []int{0, 3, 7, 249, 253} {
		if mask[k] != 1 {
			t.Fatalf("mask[%d] = %f, want 1", k, mask[k])
		}
	}
}

func TestMapBandsToGainMirrorSymmetry(t *testing.T) {
	n := 512
	axis := spectrum.FrequencyAxis(n, 44100)

	bands := []Band{
		{CenterHz: 100, WidthHz: 50, Gain: 1.5},
		{CenterHz: 1000, WidthHz: 200, Gain: 0.8},
		{CenterHz: 5000, WidthHz: 1000, Gain: 0},
		{CenterHz: 900, WidthHz: 400, Gain: 2},
	}

	mask, err := MapBandsToGain(bands, axis)
	if err != nil {
		t.Fatalf("MapBandsToGain error: %v", err)
	}

	for k := 1; k < n/2; k++ {
		if mask[k] != mask[n-k] {
			t.Fatalf("mask[%d]=%f mask[%d]=%f break mirror symmetry", k, mask[k], n-k, mask[n-k])
		}
	}
}

func TestMapBandsToGainLastWriteWins(t *testing.T) {
	axis := spectrum.FrequencyAxis(64, 64)

	bands := []Band{
		{CenterHz: 10, WidthHz: 4, Gain: 2},
		{CenterHz: 10, WidthHz: 2, Gain: 0.25},
	}

	mask, err := MapBandsToGain(bands, axis)
	if err != nil {
		t.Fatalf("MapBandsToGain error: %v", err)
	}

	// Inner band [9, 11] overwrites; outer remainder [8, 12] keeps 2.
	if mask[10] != 0.25 {
		t.Fatalf("mask[10] = %f, want 0.25 from later band", mask[10])
	}

	if mask[8] != 2 || mask[12] != 2 {
		t.Fatalf("mask[8]=%f mask[12]=%f, want 2 from earlier band", mask[8], mask[12])
	}
}

func TestMapBandsToGainEmptyBands(t *testing.T) {
	axis := spectrum.FrequencyAxis(32, 32)

	mask, err := MapBandsToGain(nil, axis)
	if err != nil {
		t.Fatalf("MapBandsToGain error: %v", err)
	}

	for i, g := range mask {
		if g != 1 {
			t.Fatalf("mask[%d] = %f, want unity for empty band list", i, g)
		}
	}
}

func TestMapBandsToGainRejectsInvalidBand(t *testing.T) {
	axis := spectrum.FrequencyAxis(32, 32)

	if _, err := MapBandsToGain([]Band{{CenterHz: 5, WidthHz: -1, Gain: 1}}, axis); err == nil {
		t.Fatal("MapBandsToGain accepted invalid band")
	}

	if _, err := MapBandsToGain([]Band{{CenterHz: 5, WidthHz: 1, Gain: math.Inf(1)}}, axis); err == nil {
		t.Fatal("MapBandsToGain accepted infinite gain")
	}
}

func TestMapBandsToGainNonNegative(t *testing.T) {
	axis := spectrum.FrequencyAxis(128, 1000)

	mask, err := MapBandsToGain([]Band{
		{CenterHz: 100, WidthHz: 500, Gain: 0},
		{CenterHz: 300, WidthHz: 100, Gain: 3},
	}, axis)
	if err != nil {
		t.Fatalf("MapBandsToGain error: %v", err)
	}

	for i, g := range mask {
		if g < 0 {
			t.Fatalf("mask[%d] = %f is negative", i, g)
		}
	}
}
