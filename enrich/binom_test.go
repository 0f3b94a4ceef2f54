package enrich

import (
	"math"
	"testing"
)

type tailExpectations struct {
	C, N int
	P    float64

	Want float64
}

// Truth values are exact binomial sums: for instance
// P(X >= 1 | n=10, p=0.1) = 1 - 0.9^10 and
// P(X >= 2 | n=10, p=0.1) = 1 - 0.9^10 - 10*0.1*0.9^9.
func TestBinomialSF(t *testing.T) {
	for _, v := range []tailExpectations{
		{0, 10, 0.5, 1},
		{-3, 10, 0.5, 1},
		{2, 3, 0.5, 0.5},
		{1, 10, 0.1, 0.6513215599},
		{2, 10, 0.1, 0.2639010709},
		{2, 2, 1e-3, 1e-6},
		{5, 5, 0.2, 0.00032},
		{10, 10, 0.5, math.Pow(0.5, 10)},
	} {
		sf, logSF := binomialSF(v.C, v.N, v.P)
		if math.Abs(sf-v.Want) > 1e-9*v.Want {
			t.Fatalf("\nError with input: %+v\nSF: %.12g\nExpected: %.12g\n", v, sf, v.Want)
		}
		if math.Abs(logSF-math.Log(v.Want)) > 1e-6 {
			t.Fatalf("\nError with input: %+v\nLogSF: %.12g\nExpected: %.12g\n", v, logSF, math.Log(v.Want))
		}
	}
}

func TestBinomialSFMonotoneInCount(t *testing.T) {
	prev := 2.0
	for c := 0; c <= 20; c++ {
		sf, _ := binomialSF(c, 20, 0.3)
		if sf > prev {
			t.Fatalf("tail increased at c=%d: %g > %g", c, sf, prev)
		}
		prev = sf
	}
}

func TestBinomialSFUnderflowClamp(t *testing.T) {
	sf, logSF := binomialSF(1000, 1000, 1e-300)

	if sf != math.SmallestNonzeroFloat64 {
		t.Fatalf("expected clamp to smallest positive float, got %g", sf)
	}

	want := 1000 * math.Log(1e-300)
	if math.Abs(logSF-want) > 1e-3 {
		t.Fatalf("log tail %.6g, expected %.6g", logSF, want)
	}
}

func TestLogAdd(t *testing.T) {
	got := logAdd(math.Log(0.25), math.Log(0.5))
	if math.Abs(got-math.Log(0.75)) > 1e-12 {
		t.Fatalf("logAdd: %g, expected %g", got, math.Log(0.75))
	}

	if got := logAdd(math.Inf(-1), math.Log(0.5)); math.Abs(got-math.Log(0.5)) > 1e-12 {
		t.Fatalf("logAdd with -inf: %g", got)
	}
}
