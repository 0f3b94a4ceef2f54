package enrich

import (
	"sort"
	"strings"
)

// filterRedundant removes motifs that add no discriminating
// information: processing longest-first (ties lexicographic), a motif
// is dropped when it is a contiguous substring of an already-retained
// longer motif and its support set is a subset of that motif's support.
func filterRedundant(recs []*Record) []*Record {
	ordered := make([]*Record, len(recs))
	copy(ordered, recs)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Length != ordered[j].Length {
			return ordered[i].Length > ordered[j].Length
		}

		return ordered[i].Motif < ordered[j].Motif
	})

	retained := make([]*Record, 0, len(ordered))
	for _, rec := range ordered {
		redundant := false
		for _, keeper := range retained {
			if keeper.Length <= rec.Length {
				continue
			}
			if strings.Contains(keeper.Motif, rec.Motif) && rec.Seqs.SubsetOf(keeper.Seqs) {
				redundant = true
				break
			}
		}
		if !redundant {
			retained = append(retained, rec)
		}
	}

	return retained
}

// maxOverlap returns the longest proper overlap where a suffix of a
// equals a prefix of b.
func maxOverlap(a, b string) int {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	for ov := limit - 1; ov > 0; ov-- {
		if a[len(a)-ov:] == b[:ov] {
			return ov
		}
	}

	return 0
}

// mergeOverlapping consolidates pairs of motifs that share an
// identical support set and overlap by at least minOverlap characters
// into their concatenated consensus. The merged candidate inherits the
// common support, is re-scored at its merged length, and carries the
// smaller of its constituents' adjusted p-values (raised to its own
// raw p-value if needed, preserving Adjusted >= P). Merging repeats
// until no qualifying pair remains; candidate order is lexicographic
// throughout, so the outcome is deterministic.
func mergeOverlapping(recs []*Record, minOverlap int, eng engine) []*Record {
	if minOverlap < 1 || len(recs) < 2 {
		return recs
	}

	for {
		sort.Slice(recs, func(i, j int) bool { return recs[i].Motif < recs[j].Motif })

		merged := false
		for i := 0; i < len(recs) && !merged; i++ {
			for j := i + 1; j < len(recs); j++ {
				a, b := recs[i], recs[j]
				if !a.Seqs.Equal(b.Seqs) {
					continue
				}

				consensus := ""
				if ov := maxOverlap(a.Motif, b.Motif); ov >= minOverlap {
					consensus = a.Motif + b.Motif[ov:]
				} else if ov := maxOverlap(b.Motif, a.Motif); ov >= minOverlap {
					consensus = b.Motif + a.Motif[ov:]
				} else {
					continue
				}

				rec := &Record{Motif: consensus, Seqs: a.Seqs}
				eng.score(rec)
				rec.Adjusted = a.Adjusted
				if b.Adjusted < rec.Adjusted {
					rec.Adjusted = b.Adjusted
				}
				if rec.Adjusted < rec.P {
					rec.Adjusted = rec.P
				}

				recs = append(recs[:j], recs[j+1:]...)
				recs = append(recs[:i], recs[i+1:]...)
				// If the consensus already exists as its own record, the
				// constituents still collapse into it, but that record
				// keeps its directly-computed statistics and the merged
				// candidate is discarded.
				if !containsMotif(recs, consensus) {
					recs = append(recs, rec)
				}
				merged = true
				break
			}
		}

		if !merged {
			return recs
		}
	}
}

func containsMotif(recs []*Record, m string) bool {
	for _, rec := range recs {
		if rec.Motif == m {
			return true
		}
	}

	return false
}
