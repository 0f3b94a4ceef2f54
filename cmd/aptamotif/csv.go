package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/selexlab/aptamotif/enrich"
	"github.com/selexlab/aptamotif/motif"
)

type motifRow struct {
	Motif       string  `csv:"motif"`
	Length      int     `csv:"length"`
	Count       int     `csv:"count"`
	Expected    float64 `csv:"expected_count"`
	Fold        string  `csv:"fold_enrichment"`
	Frequency   float64 `csv:"frequency"`
	GC          float64 `csv:"gc_content"`
	PValue      float64 `csv:"p_value"`
	FDR         float64 `csv:"fdr"`
	Significant bool    `csv:"significant"`
	Sequences   string  `csv:"sequences"`
}

func writeReportCSV(path string, records []*enrich.Record, tab bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return marshalReport(f, records, tab)
}

// marshalReport writes the report through a locally-constructed
// gocsv writer so the delimiter choice never touches gocsv's
// package-global configuration.
func marshalReport(out io.Writer, records []*enrich.Record, tab bool) error {
	rows := make([]motifRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, motifRow{
			Motif:       rec.Motif,
			Length:      rec.Length,
			Count:       rec.Count,
			Expected:    rec.Expected,
			Fold:        foldString(rec),
			Frequency:   rec.Frequency,
			GC:          rec.GC,
			PValue:      rec.P,
			FDR:         rec.Adjusted,
			Significant: rec.Significant,
			Sequences:   strings.Join(rec.SeqIDs, ","),
		})
	}

	w := csv.NewWriter(out)
	if tab {
		w.Comma = '\t'
	}

	return gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(w))
}

// writePresenceMatrix emits one row per sequence with a 0/1 column per
// retained motif. The column set is dynamic, so this uses encoding/csv
// directly rather than gocsv's struct mapping.
func writePresenceMatrix(path string, corpus *motif.Corpus, records []*enrich.Record) error {
	motifs := make([]string, 0, len(records))
	for _, rec := range records {
		motifs = append(motifs, rec.Motif)
	}

	matrix := motif.PresenceMatrix(corpus, motifs)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(append([]string{"sequence_id"}, motifs...)); err != nil {
		return err
	}

	for i, row := range matrix {
		out := make([]string, 0, len(row)+1)
		out = append(out, corpus.Records[i].ID)
		for _, present := range row {
			if present {
				out = append(out, "1")
			} else {
				out = append(out, "0")
			}
		}
		if err := w.Write(out); err != nil {
			return err
		}
	}
	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
