package enrich

import "sort"

// benjaminiHochberg assigns each record its Benjamini-Hochberg
// adjusted p-value across all m tested motifs. Records are ranked by
// raw p-value (ties broken by motif string for determinism), scaled by
// m/rank, forced monotone non-increasing from the worst rank down, and
// clipped at 1. The procedure guarantees Adjusted >= P for every
// record.
func benjaminiHochberg(recs []*Record) {
	m := len(recs)
	if m == 0 {
		return
	}

	ranked := make([]*Record, m)
	copy(ranked, recs)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].P != ranked[j].P {
			return ranked[i].P < ranked[j].P
		}

		return ranked[i].Motif < ranked[j].Motif
	})

	adjusted := make([]float64, m)
	for r, rec := range ranked {
		adjusted[r] = rec.P * float64(m) / float64(r+1)
	}

	for r := m - 2; r >= 0; r-- {
		if adjusted[r] > adjusted[r+1] {
			adjusted[r] = adjusted[r+1]
		}
	}

	for r, rec := range ranked {
		if adjusted[r] > 1 {
			adjusted[r] = 1
		}
		rec.Adjusted = adjusted[r]
	}
}
