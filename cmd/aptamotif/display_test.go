package main

import (
	"strings"
	"testing"

	"github.com/selexlab/aptamotif/enrich"
	"github.com/selexlab/aptamotif/motif"
)

func TestWriteMotifPositions(t *testing.T) {
	corpus, err := motif.NewCorpus([]motif.SequenceRecord{
		{ID: "clone1", RandomRegion: "AAGGATCCTT"},
		{ID: "clone2", RandomRegion: "GGATCCGGATCC"},
	})
	if err != nil {
		t.Fatal(err)
	}

	records := []*enrich.Record{
		{Motif: "GGATCC", Seqs: motif.SeqSet{0, 1}, SeqIDs: []string{"clone1", "clone2"}},
	}

	var out strings.Builder
	writeMotifPositions(&out, corpus, records)

	want := "GGATCC:\n  clone1\t2\n  clone2\t0,6\n"
	if out.String() != want {
		t.Fatalf("position detail %q, expected %q", out.String(), want)
	}
}
