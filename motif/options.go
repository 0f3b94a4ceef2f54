package motif

import (
	"fmt"
	"runtime"

	"github.com/carbocation/pfx"
)

// Options configures one analysis run.
type Options struct {
	// MinLength and MaxLength bound the motif lengths enumerated,
	// inclusive on both ends.
	MinLength int
	MaxLength int

	// MinSequences is the minimum number of distinct sequences that
	// must contain a motif for it to be tested.
	MinSequences int

	// FDRThreshold is the Benjamini-Hochberg cutoff applied to
	// adjusted p-values when marking records significant.
	FDRThreshold float64

	// AlphabetSize is the size of the null-model alphabet.
	AlphabetSize int

	// MergeOverlapMin is the minimum suffix/prefix overlap required
	// before two equal-support motifs are consolidated into their
	// concatenated consensus. Zero disables merging.
	MergeOverlapMin int

	// Workers caps the number of concurrent enumeration and scoring
	// goroutines. Zero or negative means one per CPU.
	Workers int
}

// DefaultOptions mirrors the standard pool-analysis settings.
func DefaultOptions() Options {
	return Options{
		MinLength:       5,
		MaxLength:       15,
		MinSequences:    2,
		FDRThreshold:    0.05,
		AlphabetSize:    4,
		MergeOverlapMin: 5,
	}
}

// Validate reports the first configuration problem found. All returned
// errors unwrap to ErrConfig.
func (o Options) Validate() error {
	if o.MinLength < 1 {
		return pfx.Err(fmt.Errorf("%w: minimum motif length %d must be at least 1", ErrConfig, o.MinLength))
	}
	if o.MaxLength < o.MinLength {
		return pfx.Err(fmt.Errorf("%w: minimum motif length %d exceeds maximum %d", ErrConfig, o.MinLength, o.MaxLength))
	}
	if o.MinSequences < 1 {
		return pfx.Err(fmt.Errorf("%w: minimum sequence support %d must be at least 1", ErrConfig, o.MinSequences))
	}
	if o.FDRThreshold <= 0 || o.FDRThreshold >= 1 {
		return pfx.Err(fmt.Errorf("%w: FDR threshold %g must be within (0, 1)", ErrConfig, o.FDRThreshold))
	}
	if o.AlphabetSize < 2 {
		return pfx.Err(fmt.Errorf("%w: alphabet size %d must be at least 2", ErrConfig, o.AlphabetSize))
	}
	if o.MergeOverlapMin < 0 {
		return pfx.Err(fmt.Errorf("%w: merge overlap %d may not be negative", ErrConfig, o.MergeOverlapMin))
	}

	return nil
}

// WorkerCount resolves Workers to a usable goroutine cap.
func (o Options) WorkerCount() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.NumCPU()
}
