package enrich

import (
	"github.com/selexlab/aptamotif/motif"
)

// Report is the ordered result of one analysis run.
type Report struct {
	Records []*Record

	// NumSequences and MeanRegionLength summarize the corpus the null
	// model was built from.
	NumSequences     int
	MeanRegionLength float64

	// TestedMotifs is the Benjamini-Hochberg denominator: the number
	// of motifs that passed the support filter and received a p-value,
	// before redundancy filtering.
	TestedMotifs int

	// SkippedWindows counts sliding windows discarded for containing
	// non-ACGT characters. Advisory only.
	SkippedWindows int
}

// Run executes the full pipeline under the uniform-base null model:
// enumeration, support filtering, binomial significance, BH
// correction, redundancy resolution, and report assembly.
func Run(c *motif.Corpus, opts motif.Options) (*Report, error) {
	return RunWithProb(c, opts, nil)
}

// RunWithProb is Run with a caller-supplied per-position null
// probability function, e.g. GCAwareProb. A nil prob selects the
// uniform model.
func RunWithProb(c *motif.Corpus, opts motif.Options, prob MotifProb) (*Report, error) {
	observations, skipped, err := motif.FindObservations(c, opts)
	if err != nil {
		return nil, err
	}

	if prob == nil {
		prob = UniformProb(opts.AlphabetSize)
	}
	eng := engine{
		numSeqs: c.Len(),
		meanLen: c.MeanRegionLength(),
		prob:    prob,
	}

	// Each record is scored independently into its own slot; the
	// slice is fully populated before any later stage reads it.
	records := make([]*Record, len(observations))
	sem := make(chan bool, opts.WorkerCount())
	for i := range observations {
		sem <- true
		go func(i int) {
			rec := newRecord(observations[i])
			eng.score(rec)
			records[i] = rec
			<-sem
		}(i)
	}
	for i := 0; i < cap(sem); i++ {
		sem <- true
	}

	benjaminiHochberg(records)

	retained := filterRedundant(records)
	retained = mergeOverlapping(retained, opts.MergeOverlapMin, eng)
	retained = filterRedundant(retained)

	for _, rec := range retained {
		rec.Significant = rec.Adjusted < opts.FDRThreshold
		rec.SeqIDs = c.IDs(rec.Seqs)
	}

	sortRecords(retained)

	return &Report{
		Records:          retained,
		NumSequences:     c.Len(),
		MeanRegionLength: c.MeanRegionLength(),
		TestedMotifs:     len(records),
		SkippedWindows:   skipped,
	}, nil
}
