package motif

import (
	"errors"
	"fmt"

	"github.com/carbocation/pfx"
)

var (
	// ErrEmptyCorpus indicates that no sequences were supplied. No null
	// model can be constructed from an empty pool, so this is fatal.
	ErrEmptyCorpus = errors.New("motif: empty corpus")

	// ErrConfig indicates an invalid Options field. Surfaced before any
	// enumeration begins.
	ErrConfig = errors.New("motif: invalid options")
)

// SequenceRecord is one clone from the pool. RandomRegion is the
// variable segment between the flanking primers; Raw optionally holds
// the full sequence and is not consulted by the engine.
type SequenceRecord struct {
	ID           string
	RandomRegion string
	Raw          string
}

// Corpus is an ordered, immutable collection of sequence records.
// Sequence-id sets elsewhere in this module are indices into Records.
type Corpus struct {
	Records []SequenceRecord
}

// NewCorpus validates the records and wraps them in a Corpus. Every
// identifier must be unique so that supporting-sequence sets can be
// mapped back to identifiers unambiguously.
func NewCorpus(records []SequenceRecord) (*Corpus, error) {
	if len(records) == 0 {
		return nil, pfx.Err(ErrEmptyCorpus)
	}

	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, exists := seen[rec.ID]; exists {
			return nil, pfx.Err(fmt.Errorf("motif: duplicate sequence identifier %q", rec.ID))
		}
		seen[rec.ID] = struct{}{}
	}

	return &Corpus{Records: records}, nil
}

func (c *Corpus) Len() int {
	return len(c.Records)
}

// MeanRegionLength is the mean random-region length across the corpus,
// used as the usable-window basis for the null model.
func (c *Corpus) MeanRegionLength() float64 {
	if len(c.Records) == 0 {
		return 0
	}

	var total int
	for _, rec := range c.Records {
		total += len(rec.RandomRegion)
	}

	return float64(total) / float64(len(c.Records))
}

// IDs maps a set of corpus indices back to sequence identifiers,
// preserving the set's sorted order.
func (c *Corpus) IDs(set SeqSet) []string {
	out := make([]string, 0, len(set))
	for _, i := range set {
		out = append(out, c.Records[i].ID)
	}

	return out
}
