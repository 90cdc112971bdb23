package fft

import (
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-eq/internal/testutil"
)

// These tests validate the in-house transform pair against an independent
// FFT implementation, the way the O(N^2) reference validates small sizes.

func TestForwardMatchesReferenceBackend(t *testing.T) {
	for _, n := range []int{2, 16, 256, 4096} {
		in := testutil.DeterministicComplexNoise(int64(n), 1.0, n)

		got, err := Forward(in)
		if err != nil {
			t.Fatalf("Forward error: %v", err)
		}

		plan, err := algofft.NewPlan64(n)
		if err != nil {
			t.Fatalf("reference plan error: %v", err)
		}

		want := make([]complex128, n)
		if err := plan.Forward(want, in); err != nil {
			t.Fatalf("reference Forward error: %v", err)
		}

		testutil.RequireComplexNearlyEqual(t, got, want, 1e-8)
	}
}

func TestInverseMatchesReferenceBackend(t *testing.T) {
	for _, n := range []int{2, 16, 256, 4096} {
		in := testutil.DeterministicComplexNoise(int64(n)+1, 1.0, n)

		got, err := Inverse(in)
		if err != nil {
			t.Fatalf("Inverse error: %v", err)
		}

		plan, err := algofft.NewPlan64(n)
		if err != nil {
			t.Fatalf("reference plan error: %v", err)
		}

		want := make([]complex128, n)
		if err := plan.Inverse(want, in); err != nil {
			t.Fatalf("reference Inverse error: %v", err)
		}

		testutil.RequireComplexNearlyEqual(t, got, want, 1e-8)
	}
}
