package enrich

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// binomialSF returns P(X >= c) for X ~ Binomial(n, p), together with
// its natural log. The upper tail is computed directly through the
// regularized incomplete beta function, which stays accurate where the
// complement of the CDF would cancel to zero. If even that underflows,
// the tail is summed in log space and the returned probability is
// clamped to the smallest representable positive value so that strict
// ordering survives into the correction step.
func binomialSF(c, n int, p float64) (sf, logSF float64) {
	if c <= 0 {
		return 1, 0
	}
	if p >= 1 {
		return 1, 0
	}
	if p <= 0 || c > n {
		return 0, math.Inf(-1)
	}

	sf = mathext.RegIncBeta(float64(c), float64(n-c+1), p)
	if sf > 0 {
		if sf > 1 {
			sf = 1
		}

		return sf, math.Log(sf)
	}

	logSF = logBinomialTail(c, n, p)

	return math.SmallestNonzeroFloat64, logSF
}

// logBinomialTail sums the binomial upper tail c..n in log space. Only
// reached when the tail underflows double precision, which implies c
// sits far above the mean, so successive terms shrink geometrically
// and the sum is truncated once additional terms stop contributing.
func logBinomialTail(c, n int, p float64) float64 {
	dist := distuv.Binomial{N: float64(n), P: p}

	total := math.Inf(-1)
	for x := c; x <= n; x++ {
		term := dist.LogProb(float64(x))
		total = logAdd(total, term)
		if term < total-45 {
			break
		}
	}

	return total
}

func logAdd(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	if b > a {
		a, b = b, a
	}

	return a + math.Log1p(math.Exp(b-a))
}
