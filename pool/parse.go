// Package pool parses selection-round sequence pools and trims them to
// their random regions, feeding the motif enrichment engine.
package pool

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/selexlab/aptamotif/motif"
)

// Skipped describes a sequence dropped during region extraction.
type Skipped struct {
	ID     string
	Reason string
}

// Parse reads sequences from FASTA or plain line-delimited text,
// auto-detected from the first non-blank line. Plain-text sequences
// and FASTA records with blank headers receive synthetic Sequence_N
// identifiers. Sequences are uppercased, U is mapped to T, and
// non-letter characters are removed; other ambiguity codes (e.g. N)
// are kept and handled downstream by the enumerator's window skip.
func Parse(r io.Reader) ([]motif.SequenceRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)

	var records []motif.SequenceRecord
	var current *motif.SequenceRecord
	fasta := false
	sawContent := false

	flush := func() {
		if current != nil {
			records = append(records, *current)
			current = nil
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !sawContent {
			sawContent = true
			fasta = strings.HasPrefix(line, ">")
		}

		if fasta && strings.HasPrefix(line, ">") {
			flush()
			id := strings.TrimSpace(line[1:])
			if id == "" {
				id = fmt.Sprintf("Sequence_%d", len(records)+1)
			}
			current = &motif.SequenceRecord{ID: id}
			continue
		}

		cleaned := cleanSequence(line)
		if fasta {
			if current == nil {
				current = &motif.SequenceRecord{ID: fmt.Sprintf("Sequence_%d", len(records)+1)}
			}
			current.Raw += cleaned
		} else {
			records = append(records, motif.SequenceRecord{
				ID:  fmt.Sprintf("Sequence_%d", len(records)+1),
				Raw: cleaned,
			})
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	// Until a primer trim narrows it, the random region is the whole
	// cleaned sequence.
	for i := range records {
		records[i].RandomRegion = records[i].Raw
	}

	return records, nil
}

func cleanSequence(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range strings.ToUpper(line) {
		if r == 'U' {
			b.WriteByte('T')
			continue
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ExtractRandomRegions trims each record to the segment between the
// first occurrence of the forward primer and the following occurrence
// of the reverse-primer complement. Records missing either flank are
// dropped and reported in the skip list rather than failing the run.
// Empty primers leave the records untouched.
func ExtractRandomRegions(records []motif.SequenceRecord, forward, reverseComp string) ([]motif.SequenceRecord, []Skipped) {
	if forward == "" && reverseComp == "" {
		return records, nil
	}

	kept := make([]motif.SequenceRecord, 0, len(records))
	var skipped []Skipped

	for _, rec := range records {
		seq := rec.Raw

		start := 0
		if forward != "" {
			fwd := strings.Index(seq, forward)
			if fwd < 0 {
				skipped = append(skipped, Skipped{ID: rec.ID, Reason: "forward primer not found"})
				continue
			}
			start = fwd + len(forward)
		}

		end := len(seq)
		if reverseComp != "" {
			rev := strings.Index(seq[start:], reverseComp)
			if rev < 0 {
				skipped = append(skipped, Skipped{ID: rec.ID, Reason: "reverse complement not found"})
				continue
			}
			end = start + rev
		}

		rec.RandomRegion = seq[start:end]
		kept = append(kept, rec)
	}

	return kept, skipped
}
