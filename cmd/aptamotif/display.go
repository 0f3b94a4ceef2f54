package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aybabtme/uniplot/histogram"

	"github.com/selexlab/aptamotif/enrich"
	"github.com/selexlab/aptamotif/motif"
	"github.com/selexlab/aptamotif/pool"
)

func printSummary(s pool.Summary) {
	fmt.Printf("Sequences: %d\n", s.Sequences)
	fmt.Printf("Random region length: mean %.1f, median %.1f, sd %.1f, range %.0f-%.0f\n",
		s.MeanLength, s.MedianLength, s.StdDevLength, s.MinLength, s.MaxLength)
	fmt.Printf("Mean GC content: %.3f\n", s.MeanGC)
	fmt.Println()
}

func printReport(report *enrich.Report, verbose bool) {
	fmt.Printf("Tested %d motifs across %d sequences (mean region %.1f bp); %d windows skipped\n",
		report.TestedMotifs, report.NumSequences, report.MeanRegionLength, report.SkippedWindows)

	header := []string{"motif", "length", "count", "expected", "fold", "freq", "gc", "p", "fdr", "significant"}
	fmt.Println(strings.Join(header, "\t"))

	for _, rec := range report.Records {
		fmt.Printf("%s\t%d\t%d\t%.4g\t%s\t%.4g\t%.4g\t%.4g\t%.4g\t%t\n",
			rec.Motif, rec.Length, rec.Count, rec.Expected, foldString(rec),
			rec.Frequency, rec.GC, rec.P, rec.Adjusted, rec.Significant)
	}

	if verbose && len(report.Records) > 1 {
		fmt.Println("\nMotif length distribution:")
		lengths := make([]float64, 0, len(report.Records))
		for _, rec := range report.Records {
			lengths = append(lengths, float64(rec.Length))
		}
		hist := histogram.Hist(10, lengths)
		if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
			fmt.Println("histogram:", err)
		}
	}
}

// writeMotifPositions lists, per retained motif, the start offsets of
// its occurrences within each supporting sequence. Offsets are
// comma-joined and zero-based.
func writeMotifPositions(w io.Writer, corpus *motif.Corpus, records []*enrich.Record) {
	for _, rec := range records {
		fmt.Fprintf(w, "%s:\n", rec.Motif)
		positions := motif.Positions(corpus, rec.Motif)
		for _, id := range rec.SeqIDs {
			offsets := make([]string, 0, len(positions[id]))
			for _, pos := range positions[id] {
				offsets = append(offsets, strconv.Itoa(pos))
			}
			fmt.Fprintf(w, "  %s\t%s\n", id, strings.Join(offsets, ","))
		}
	}
}

func foldString(rec *enrich.Record) string {
	if !rec.FoldDefined {
		return "undefined"
	}

	return fmt.Sprintf("%.4g", rec.Fold)
}
