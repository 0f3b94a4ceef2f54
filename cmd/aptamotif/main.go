// AptaMotif discovers short nucleotide motifs that are over-represented
// across the clones of a selection round and ranks them by
// Benjamini-Hochberg corrected binomial significance and fold
// enrichment over a uniform-base null model.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/carbocation/pfx"

	"github.com/selexlab/aptamotif/enrich"
	"github.com/selexlab/aptamotif/motif"
	"github.com/selexlab/aptamotif/pool"
)

type config struct {
	in           string
	forward      string
	revcomp      string
	reverse      string
	minLen       int
	maxLen       int
	minSeq       int
	fdr          float64
	mergeOverlap int
	workers      int
	gcAware      bool
	csvOut       string
	matrixOut    string
	tsv          bool
	verbose      bool
}

func main() {
	var cfg config

	flag.StringVar(&cfg.in, "in", "", "Filename containing sequences in FASTA or one-per-line text format. Use - for standard input.")
	flag.StringVar(&cfg.forward, "forward", "", "Optional. Forward primer (5'->3'); the random region starts after its first occurrence.")
	flag.StringVar(&cfg.revcomp, "revcomp", "", "Optional. Reverse-primer complement as it appears after the random region.")
	flag.StringVar(&cfg.reverse, "reverse", "", "Optional. Reverse primer (5'->3'); reverse-complemented automatically. Ignored if --revcomp is set.")
	flag.IntVar(&cfg.minLen, "min", 5, "Minimum motif length.")
	flag.IntVar(&cfg.maxLen, "max", 15, "Maximum motif length.")
	flag.IntVar(&cfg.minSeq, "minseq", 2, "Minimum number of sequences that must share a motif for it to be tested.")
	flag.Float64Var(&cfg.fdr, "fdr", 0.05, "FDR threshold applied to adjusted p-values.")
	flag.IntVar(&cfg.mergeOverlap, "merge-overlap", -1, "Minimum overlap for consolidating equal-support motifs. -1 follows --min; 0 disables merging.")
	flag.IntVar(&cfg.workers, "workers", 0, "Concurrent workers for enumeration and scoring. 0 uses one per CPU.")
	flag.BoolVar(&cfg.gcAware, "gc-null", false, "Weight the null model by the pool's observed GC content instead of assuming uniform bases.")
	flag.StringVar(&cfg.csvOut, "csv", "", "Optional. Write the full report to this CSV file.")
	flag.StringVar(&cfg.matrixOut, "matrix", "", "Optional. Write a sequence-by-motif presence matrix to this CSV file.")
	flag.BoolVar(&cfg.tsv, "tsv", false, "Write --csv output tab-delimited instead of comma-delimited.")
	flag.BoolVar(&cfg.verbose, "verbose", false, "Print the pool summary, skipped sequences, and a motif length histogram.")
	flag.Parse()

	if cfg.in == "" {
		flag.PrintDefaults()
		return
	}

	if err := run(cfg); err != nil {
		log.Fatalln(err)
	}
}

func run(cfg config) error {
	var input io.Reader = os.Stdin
	if cfg.in != "-" {
		f, err := os.Open(cfg.in)
		if err != nil {
			return pfx.Err(err)
		}
		defer f.Close()
		input = f
	}

	records, err := pool.Parse(input)
	if err != nil {
		return err
	}

	revcomp := cfg.revcomp
	if revcomp == "" && cfg.reverse != "" {
		revcomp = pool.ReverseComplement(cfg.reverse)
	}

	records, skipped := pool.ExtractRandomRegions(records, cfg.forward, revcomp)
	for _, skip := range skipped {
		log.Printf("Skipping %s: %s\n", skip.ID, skip.Reason)
	}

	corpus, err := motif.NewCorpus(records)
	if err != nil {
		return err
	}

	summary, err := pool.Summarize(records)
	if err != nil {
		return err
	}
	if cfg.verbose {
		printSummary(summary)
	}

	opts := motif.DefaultOptions()
	opts.MinLength = cfg.minLen
	opts.MaxLength = cfg.maxLen
	opts.MinSequences = cfg.minSeq
	opts.FDRThreshold = cfg.fdr
	opts.Workers = cfg.workers
	opts.MergeOverlapMin = cfg.mergeOverlap
	if cfg.mergeOverlap < 0 {
		opts.MergeOverlapMin = cfg.minLen
	}

	var prob enrich.MotifProb
	if cfg.gcAware {
		prob = enrich.GCAwareProb(summary.MeanGC)
	}

	report, err := enrich.RunWithProb(corpus, opts, prob)
	if err != nil {
		return err
	}

	printReport(report, cfg.verbose)

	if cfg.verbose && len(report.Records) > 0 {
		fmt.Println("\nMotif positions:")
		writeMotifPositions(os.Stdout, corpus, report.Records)
	}

	if cfg.csvOut != "" {
		if err := writeReportCSV(cfg.csvOut, report.Records, cfg.tsv); err != nil {
			return pfx.Err(err)
		}
		fmt.Printf("Wrote %d motifs to %s\n", len(report.Records), cfg.csvOut)
	}

	if cfg.matrixOut != "" {
		if err := writePresenceMatrix(cfg.matrixOut, corpus, report.Records); err != nil {
			return pfx.Err(err)
		}
		fmt.Println("Wrote presence matrix to", cfg.matrixOut)
	}

	return nil
}
