package motif

import (
	"reflect"
	"testing"
)

func TestPositionsOverlapping(t *testing.T) {
	corpus := testCorpus(t, "AAAAAA", "GAAAAC", "CCCCCC")

	got := Positions(corpus, "AAAA")
	want := map[string][]int{
		"seq1": {0, 1, 2},
		"seq2": {1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("positions: %v, expected %v", got, want)
	}
}

func TestPresenceMatrix(t *testing.T) {
	corpus := testCorpus(t, "GGATCCAAA", "GGATCCTTT", "AAAAAAAA")

	got := PresenceMatrix(corpus, []string{"GGATCC", "AAAA"})
	want := [][]bool{
		{true, false},
		{true, false},
		{false, true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("matrix: %v, expected %v", got, want)
	}
}
