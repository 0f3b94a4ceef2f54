package motif

import "strings"

// Positions returns every start offset of m within each sequence that
// contains it, keyed by sequence identifier. Overlapping occurrences
// are all reported.
func Positions(c *Corpus, m string) map[string][]int {
	if m == "" {
		return nil
	}

	out := make(map[string][]int)
	for _, rec := range c.Records {
		start := 0
		for {
			pos := strings.Index(rec.RandomRegion[start:], m)
			if pos < 0 {
				break
			}
			out[rec.ID] = append(out[rec.ID], start+pos)
			start += pos + 1
		}
	}

	return out
}

// PresenceMatrix returns a binary presence matrix with one row per
// corpus sequence (corpus order) and one column per motif (given
// order).
func PresenceMatrix(c *Corpus, motifs []string) [][]bool {
	matrix := make([][]bool, c.Len())
	for i, rec := range c.Records {
		row := make([]bool, len(motifs))
		for j, m := range motifs {
			row[j] = strings.Contains(rec.RandomRegion, m)
		}
		matrix[i] = row
	}

	return matrix
}
