package motif

import (
	"sort"

	"github.com/carbocation/pfx"
)

// Observation pairs a motif string with the set of corpus indices of
// the sequences containing it. len(Seqs) is the motif's count.
type Observation struct {
	Motif string
	Seqs  SeqSet
}

// FindObservations enumerates every motif in the configured length
// range and returns those present in at least opts.MinSequences
// sequences, sorted by motif string. The second return value is the
// advisory count of sliding windows skipped for containing non-ACGT
// characters.
func FindObservations(c *Corpus, opts Options) ([]Observation, int, error) {
	if err := opts.Validate(); err != nil {
		return nil, 0, err
	}
	if c == nil || c.Len() == 0 {
		return nil, 0, pfx.Err(ErrEmptyCorpus)
	}

	occurrences, skipped := enumerate(c, opts)

	observations := make([]Observation, 0, len(occurrences))
	for kmer, seqs := range occurrences {
		if len(seqs) < opts.MinSequences {
			continue
		}
		observations = append(observations, Observation{Motif: kmer, Seqs: SeqSet(seqs)})
	}

	sort.Slice(observations, func(i, j int) bool {
		return observations[i].Motif < observations[j].Motif
	})

	return observations, skipped, nil
}
