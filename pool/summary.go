package pool

import (
	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/selexlab/aptamotif/motif"
)

// Summary describes the random regions of a parsed pool.
type Summary struct {
	Sequences    int
	MeanLength   float64
	MedianLength float64
	StdDevLength float64
	MinLength    float64
	MaxLength    float64
	MeanGC       float64
}

// Summarize computes descriptive statistics over the random regions.
func Summarize(records []motif.SequenceRecord) (Summary, error) {
	if len(records) == 0 {
		return Summary{}, pfx.Err(motif.ErrEmptyCorpus)
	}

	lengths := make([]float64, 0, len(records))
	gcs := make([]float64, 0, len(records))
	for _, rec := range records {
		lengths = append(lengths, float64(len(rec.RandomRegion)))
		gcs = append(gcs, gcFraction(rec.RandomRegion))
	}

	data := stats.LoadRawData(lengths)

	median, err := data.Median()
	if err != nil {
		return Summary{}, pfx.Err(err)
	}
	sd, err := data.StandardDeviation()
	if err != nil {
		return Summary{}, pfx.Err(err)
	}
	min, err := data.Min()
	if err != nil {
		return Summary{}, pfx.Err(err)
	}
	max, err := data.Max()
	if err != nil {
		return Summary{}, pfx.Err(err)
	}

	return Summary{
		Sequences:    len(records),
		MeanLength:   stat.Mean(lengths, nil),
		MedianLength: median,
		StdDevLength: sd,
		MinLength:    min,
		MaxLength:    max,
		MeanGC:       stat.Mean(gcs, nil),
	}, nil
}

func gcFraction(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}

	var gc int
	for i := 0; i < len(seq); i++ {
		if seq[i] == 'G' || seq[i] == 'C' {
			gc++
		}
	}

	return float64(gc) / float64(len(seq))
}
