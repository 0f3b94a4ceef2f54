package enrich

import (
	"math"

	"github.com/BenLubar/memoize"
)

// MotifProb yields the probability, under a null model, of a given
// motif appearing at one specific position. Swapping this function
// swaps the null model without touching the correction or redundancy
// stages.
type MotifProb func(m string) float64

// UniformProb is the default null model: every base equally likely, so
// a motif of length k has per-position probability (1/alphabetSize)^k.
func UniformProb(alphabetSize int) MotifProb {
	base := 1.0 / float64(alphabetSize)

	return func(m string) float64 {
		return math.Pow(base, float64(len(m)))
	}
}

// GCAwareProb weights each position by the pool's observed GC
// fraction: G and C each carry probability meanGC/2, A and T each
// (1-meanGC)/2.
func GCAwareProb(meanGC float64) MotifProb {
	pGC := meanGC / 2
	pAT := (1 - meanGC) / 2

	return func(m string) float64 {
		p := 1.0
		for i := 0; i < len(m); i++ {
			switch m[i] {
			case 'G', 'C':
				p *= pGC
			default:
				p *= pAT
			}
		}

		return p
	}
}

var memoizedSeqProb = memoize.Memoize(seqProb).(func(float64, float64, int) float64)

// seqProb is the probability that a motif of length k with
// per-position probability pPos occurs at least once within the usable
// windows of a mean-length sequence: 1 - (1-pPos)^w with
// w = meanLen - k + 1 (0 when the motif outruns the sequence).
// Evaluated as -expm1(w*log1p(-pPos)) so small pPos does not underflow.
func seqProb(meanLen, pPos float64, k int) float64 {
	w := meanLen - float64(k) + 1
	if w <= 0 || pPos <= 0 {
		return 0
	}
	if pPos >= 1 {
		return 1
	}

	p := -math.Expm1(w * math.Log1p(-pPos))
	if p > 1 {
		p = 1
	}

	return p
}
