package enrich

import (
	"math"
	"testing"
)

func bhRecords(ps ...float64) []*Record {
	recs := make([]*Record, len(ps))
	for i, p := range ps {
		recs[i] = &Record{Motif: string(rune('A' + i)), P: p}
	}

	return recs
}

// Truth values follow the standard BH computation: scale rank-r
// p-values by m/r, then force monotone non-increase from the largest
// rank down.
func TestBenjaminiHochberg(t *testing.T) {
	recs := bhRecords(0.005, 0.009, 0.05, 0.5)
	benjaminiHochberg(recs)

	want := []float64{0.018, 0.018, 0.05 * 4.0 / 3.0, 0.5}
	for i, rec := range recs {
		if math.Abs(rec.Adjusted-want[i]) > 1e-12 {
			t.Fatalf("record %d: adjusted %.12g, expected %.12g", i, rec.Adjusted, want[i])
		}
	}
}

func TestBenjaminiHochbergInvariants(t *testing.T) {
	recs := bhRecords(0.2, 0.001, 0.04, 0.9, 0.04, 0.6, 1.0)
	benjaminiHochberg(recs)

	for _, rec := range recs {
		if rec.Adjusted < rec.P {
			t.Fatalf("adjusted %g below raw %g", rec.Adjusted, rec.P)
		}
		if rec.Adjusted > 1 {
			t.Fatalf("adjusted %g above 1", rec.Adjusted)
		}
	}

	// Equal raw p-values must receive equal adjusted values.
	var tied []float64
	for _, rec := range recs {
		if rec.P == 0.04 {
			tied = append(tied, rec.Adjusted)
		}
	}
	if len(tied) != 2 || tied[0] != tied[1] {
		t.Fatalf("tied raw p-values got different adjustments: %v", tied)
	}

	// Monotone in rank order.
	prev := 0.0
	for _, p := range []float64{0.001, 0.04, 0.04, 0.2, 0.6, 0.9, 1.0} {
		for _, rec := range recs {
			if rec.P == p {
				if rec.Adjusted < prev {
					t.Fatalf("adjusted values not monotone at raw p %g", p)
				}
				prev = rec.Adjusted
			}
		}
	}
}

func TestBenjaminiHochbergSingle(t *testing.T) {
	recs := bhRecords(0.03)
	benjaminiHochberg(recs)
	if recs[0].Adjusted != 0.03 {
		t.Fatalf("single test should keep its raw p-value, got %g", recs[0].Adjusted)
	}

	benjaminiHochberg(nil)
}
