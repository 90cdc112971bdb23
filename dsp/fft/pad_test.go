package fft

import "testing"

func TestNextPowerOfTwo(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{100, 128},
		{512, 512},
		{513, 1024},
	}

	for _, tc := range cases {
		if got := NextPowerOfTwo(tc.in); got != tc.want {
			t.Fatalf("NextPowerOfTwo(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 1024} {
		if !IsPowerOfTwo(n) {
			t.Fatalf("IsPowerOfTwo(%d) = false, want true", n)
		}
	}

	for _, n := range []int{-4, 0, 3, 100, 513} {
		if IsPowerOfTwo(n) {
			t.Fatalf("IsPowerOfTwo(%d) = true, want false", n)
		}
	}
}

func TestPadZeroExtends(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5}

	out := Pad(in)
	if len(out) != 8 {
		t.Fatalf("Pad length = %d, want 8", len(out))
	}

	for i, v := range in {
		if out[i] != v {
			t.Fatalf("Pad prefix mismatch at %d: got %v, want %v", i, out[i], v)
		}
	}

	for i := len(in); i < len(out); i++ {
		if out[i] != 0 {
			t.Fatalf("Pad tail not zero at %d: %v", i, out[i])
		}
	}
}

func TestPadLeavesInputUntouched(t *testing.T) {
	in := []float64{1, 2, 3}
	out := Pad(in)

	out[0] = 99
	if in[0] != 1 {
		t.Fatalf("Pad aliased its input")
	}
}

func TestPadPowerOfTwoLengthIsCopy(t *testing.T) {
	in := []float64{1, 2, 3, 4}

	out := Pad(in)
	if len(out) != 4 {
		t.Fatalf("Pad length = %d, want 4", len(out))
	}
}

func TestRealDiscardsImaginary(t *testing.T) {
	in := []complex128{1 + 2i, -3 - 4i}

	out := Real(in)
	if out[0] != 1 || out[1] != -3 {
		t.Fatalf("Real = %v, want [1 -3]", out)
	}
}
