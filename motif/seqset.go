package motif

import "sort"

// SeqSet is a set of corpus indices, stored sorted ascending and
// without duplicates. The sorted representation keeps iteration order
// deterministic and makes subset and equality tests cheap.
type SeqSet []int

// Contains reports whether i is a member of s.
func (s SeqSet) Contains(i int) bool {
	pos := sort.SearchInts(s, i)

	return pos < len(s) && s[pos] == i
}

// SubsetOf reports whether every member of s is also in t. A set is a
// subset of itself.
func (s SeqSet) SubsetOf(t SeqSet) bool {
	if len(s) > len(t) {
		return false
	}

	j := 0
	for _, v := range s {
		for j < len(t) && t[j] < v {
			j++
		}
		if j >= len(t) || t[j] != v {
			return false
		}
		j++
	}

	return true
}

// Equal reports whether s and t hold exactly the same members.
func (s SeqSet) Equal(t SeqSet) bool {
	if len(s) != len(t) {
		return false
	}
	for i, v := range s {
		if t[i] != v {
			return false
		}
	}

	return true
}

// Union returns a new sorted set holding every member of s or t.
func (s SeqSet) Union(t SeqSet) SeqSet {
	out := make(SeqSet, 0, len(s)+len(t))

	i, j := 0, 0
	for i < len(s) && j < len(t) {
		switch {
		case s[i] < t[j]:
			out = append(out, s[i])
			i++
		case s[i] > t[j]:
			out = append(out, t[j])
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	out = append(out, s[i:]...)
	out = append(out, t[j:]...)

	return out
}
