package enrich

import (
	"math"

	"github.com/selexlab/aptamotif/motif"
)

// engine scores motifs against a fixed corpus-level null model. It is
// stateless apart from the corpus summary, so Score may be called from
// concurrent goroutines.
type engine struct {
	numSeqs int
	meanLen float64
	prob    MotifProb
}

// score fills rec's statistics from its motif string and support set.
// A motif longer than every usable window has occurrence probability
// zero under the null: its p-value is exactly 1 (no evidence is
// possible) and its fold enrichment is undefined.
func (e engine) score(rec *Record) {
	rec.Length = len(rec.Motif)
	rec.Count = len(rec.Seqs)
	rec.Frequency = float64(rec.Count) / float64(e.numSeqs)
	rec.GC = gcContent(rec.Motif)

	pSeq := memoizedSeqProb(e.meanLen, e.prob(rec.Motif), rec.Length)
	rec.Expected = pSeq * float64(e.numSeqs)

	if pSeq == 0 {
		rec.P = 1
		rec.LogP = 0
		rec.Fold = math.NaN()
		rec.FoldDefined = false

		return
	}

	rec.P, rec.LogP = binomialSF(rec.Count, e.numSeqs, pSeq)
	rec.Fold = float64(rec.Count) / rec.Expected
	rec.FoldDefined = true
}

func newRecord(obs motif.Observation) *Record {
	return &Record{Motif: obs.Motif, Seqs: obs.Seqs}
}
