package enrich

import (
	"sort"

	"github.com/selexlab/aptamotif/motif"
)

// Record is the public per-motif output unit: the observation, its
// statistics under the null model, and its post-correction
// classification.
type Record struct {
	Motif  string
	Length int

	// Count is the number of distinct sequences containing the motif;
	// it always equals len(Seqs).
	Count int

	// Expected is the count predicted by the null model. Fold is
	// Count/Expected and is only meaningful when FoldDefined is true;
	// when Expected is zero Fold is NaN and callers should render an
	// explicit "undefined" sentinel, never infinity.
	Expected    float64
	Fold        float64
	FoldDefined bool

	// Frequency is Count divided by the number of corpus sequences.
	Frequency float64

	// GC is the G+C fraction of the motif string.
	GC float64

	// P is the one-sided binomial survival p-value, clamped to the
	// smallest positive float on underflow; LogP retains the exact
	// log-space value either way. Adjusted is the Benjamini-Hochberg
	// corrected p-value, always >= P.
	P        float64
	LogP     float64
	Adjusted float64

	// Significant is Adjusted < the configured FDR threshold.
	Significant bool

	// Seqs holds the supporting corpus indices; SeqIDs the matching
	// sequence identifiers, in the same order.
	Seqs   motif.SeqSet
	SeqIDs []string
}

func gcContent(m string) float64 {
	if len(m) == 0 {
		return 0
	}

	var gc int
	for i := 0; i < len(m); i++ {
		if m[i] == 'G' || m[i] == 'C' {
			gc++
		}
	}

	return float64(gc) / float64(len(m))
}

// sortRecords fixes the report order: ascending adjusted p-value, ties
// by descending fold enrichment with undefined folds last, remaining
// ties by motif string. The order is total, so identical inputs always
// produce identical reports.
func sortRecords(recs []*Record) {
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.Adjusted != b.Adjusted {
			return a.Adjusted < b.Adjusted
		}

		af, bf := -1.0, -1.0
		if a.FoldDefined {
			af = a.Fold
		}
		if b.FoldDefined {
			bf = b.Fold
		}
		if af != bf {
			return af > bf
		}

		return a.Motif < b.Motif
	})
}
