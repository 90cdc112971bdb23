package fft

import (
	"testing"

	"github.com/cwbudde/algo-eq/internal/testutil"
)

func TestDFTKnownValues(t *testing.T) {
	in := []complex128{1, 2, 3, 4}
	want := []complex128{10, -2 + 2i, -2, -2 - 2i}

	out := DFT(in)
	testutil.RequireComplexNearlyEqual(t, out, want, 1e-12)
}

func TestDFTArbitraryLength(t *testing.T) {
	// The direct summation has no power-of-two restriction.
	in := testutil.DeterministicComplexNoise(1, 1.0, 7)

	out := DFT(in)
	if len(out) != 7 {
		t.Fatalf("DFT length = %d, want 7", len(out))
	}
}

func TestDFTLinearity(t *testing.T) {
	n := 16
	a := testutil.DeterministicComplexNoise(2, 1.0, n)
	b := testutil.DeterministicComplexNoise(3, 1.0, n)

	sum := make([]complex128, n)
	for i := range sum {
		sum[i] = a[i] + b[i]
	}

	da := DFT(a)
	db := DFT(b)
	dsum := DFT(sum)

	want := make([]complex128, n)
	for i := range want {
		want[i] = da[i] + db[i]
	}

	testutil.RequireComplexNearlyEqual(t, dsum, want, 1e-10)
}

func TestForwardMatchesDFT(t *testing.T) {
	for _, n := range []int{1, 2, 4, 64, 256} {
		in := testutil.DeterministicComplexNoise(int64(n), 1.0, n)

		fast, err := Forward(in)
		if err != nil {
			t.Fatalf("Forward error: %v", err)
		}

		testutil.RequireComplexNearlyEqual(t, fast, DFT(in), 1e-8)
	}
}
