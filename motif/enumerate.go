package motif

// partial holds one sequence's enumeration result. Partials are
// immutable once a worker returns them; the reducer merges them into
// the global index sequentially, in corpus order.
type partial struct {
	kmers   map[string]struct{}
	skipped int
}

// sequenceKmers adds every distinct valid window of length k in seq to
// into, returning the number of windows skipped because they contained
// a character outside the A/C/G/T alphabet. A motif occurring at
// multiple positions within one sequence still counts once.
func sequenceKmers(seq string, k int, into map[string]struct{}) (skipped int) {
	if k < 1 || k > len(seq) {
		return 0
	}

	lastBad := -1
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'C', 'G', 'T':
		default:
			lastBad = i
		}

		if i < k-1 {
			continue
		}

		start := i - k + 1
		if lastBad >= start {
			skipped++
			continue
		}

		into[seq[start:i+1]] = struct{}{}
	}

	return skipped
}

// enumerate computes each sequence's distinct motif set across the
// configured length range on independent workers, then folds the
// immutable partial results into a single occurrence map. Because the
// fold visits sequences in corpus order, every occurrence list comes
// out sorted ascending regardless of goroutine scheduling.
func enumerate(c *Corpus, opts Options) (occurrences map[string][]int, skipped int) {
	partials := make([]partial, c.Len())

	sem := make(chan bool, opts.WorkerCount())
	for i := range c.Records {
		sem <- true
		go func(i int) {
			p := partial{kmers: make(map[string]struct{})}
			region := c.Records[i].RandomRegion
			for k := opts.MinLength; k <= opts.MaxLength; k++ {
				p.skipped += sequenceKmers(region, k, p.kmers)
			}
			partials[i] = p
			<-sem
		}(i)
	}
	for i := 0; i < cap(sem); i++ {
		sem <- true
	}

	occurrences = make(map[string][]int)
	for i, p := range partials {
		for kmer := range p.kmers {
			occurrences[kmer] = append(occurrences[kmer], i)
		}
		skipped += p.skipped
	}

	return occurrences, skipped
}
