package motif

import (
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

type kmerExpectations struct {
	Seq     string
	K       int
	Kmers   []string
	Skipped int
}

func TestSequenceKmers(t *testing.T) {
	for _, v := range []kmerExpectations{
		{"GGATCCAAA", 6, []string{"ATCCAA", "GATCCA", "GGATCC", "TCCAAA"}, 0},
		{"AAAAAA", 6, []string{"AAAAAA"}, 0},
		{"AAAAAA", 3, []string{"AAA"}, 0},
		{"ACGNACG", 3, []string{"ACG"}, 3},
		{"NNNN", 2, nil, 3},
		{"AAAA", 5, nil, 0},
		{"", 1, nil, 0},
	} {
		into := make(map[string]struct{})
		skipped := sequenceKmers(v.Seq, v.K, into)

		var got []string
		for kmer := range into {
			got = append(got, kmer)
		}
		sort.Strings(got)

		if !reflect.DeepEqual(got, v.Kmers) {
			t.Fatalf("\nError with input: %+v\nKmers: %v\nExpected: %v\n", v, got, v.Kmers)
		}
		if skipped != v.Skipped {
			t.Fatalf("\nError with input: %+v\nSkipped: %d\nExpected: %d\n", v, skipped, v.Skipped)
		}
	}
}

func TestEnumerateDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bases := []byte("ACGT")

	records := make([]SequenceRecord, 25)
	for i := range records {
		seq := make([]byte, 40)
		for j := range seq {
			seq[j] = bases[rng.Intn(len(bases))]
		}
		records[i] = SequenceRecord{ID: fmt.Sprintf("seq%d", i), RandomRegion: string(seq)}
	}

	corpus, err := NewCorpus(records)
	if err != nil {
		t.Fatal(err)
	}

	opts := DefaultOptions()
	opts.MinLength = 4
	opts.MaxLength = 7

	var baseline []Observation
	for _, workers := range []int{1, 8, 8, 3} {
		opts.Workers = workers
		observations, _, err := FindObservations(corpus, opts)
		if err != nil {
			t.Fatal(err)
		}
		if baseline == nil {
			baseline = observations
			continue
		}
		if !reflect.DeepEqual(baseline, observations) {
			t.Fatalf("observations differ with %d workers", workers)
		}
	}
}
