package main

import (
	"strings"
	"testing"

	"github.com/selexlab/aptamotif/enrich"
	"github.com/selexlab/aptamotif/motif"
)

func testRecords() []*enrich.Record {
	return []*enrich.Record{
		{
			Motif:       "GGATCC",
			Length:      6,
			Count:       2,
			Expected:    0.5,
			Fold:        4,
			FoldDefined: true,
			Frequency:   1,
			GC:          2.0 / 3.0,
			P:           0.01,
			Adjusted:    0.02,
			Significant: true,
			Seqs:        motif.SeqSet{0, 1},
			SeqIDs:      []string{"clone1", "clone2"},
		},
	}
}

func TestMarshalReportDelimiters(t *testing.T) {
	var tabbed, comma strings.Builder

	if err := marshalReport(&tabbed, testRecords(), true); err != nil {
		t.Fatal(err)
	}
	if err := marshalReport(&comma, testRecords(), false); err != nil {
		t.Fatal(err)
	}

	tabHeader := strings.SplitN(tabbed.String(), "\n", 2)[0]
	if !strings.Contains(tabHeader, "motif\tlength") {
		t.Fatalf("tab header %q is not tab-delimited", tabHeader)
	}

	// The tab run must not leak its delimiter into later comma runs.
	commaHeader := strings.SplitN(comma.String(), "\n", 2)[0]
	if !strings.Contains(commaHeader, "motif,length") {
		t.Fatalf("comma header %q is not comma-delimited", commaHeader)
	}
	if strings.Contains(commaHeader, "\t") {
		t.Fatalf("comma header %q contains tabs", commaHeader)
	}

	if !strings.Contains(comma.String(), `"clone1,clone2"`) {
		t.Fatalf("sequence list not quoted in %q", comma.String())
	}
}
