// Package stats: paired significance tests.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pathlab/mirank/plant"
)

// PairedTTest runs the two-sided paired t-test on the per-trial samples x
// and y. The statistic and p-value are NaN when fewer than two pairs exist
// or the differences have zero variance; the error is reserved for
// mismatched lengths.
func PairedTTest(x, y []float64) (TestResult, error) {
	if len(x) != len(y) {
		return TestResult{}, ErrLengthMismatch
	}
	n := len(x)
	if n < 2 {
		return TestResult{Statistic: math.NaN(), PValue: math.NaN(), N: n}, nil
	}

	// 1. Per-pair differences.
	diffs := make([]float64, n)
	for i := range x {
		diffs[i] = x[i] - y[i]
	}
	mean := stat.Mean(diffs, nil)
	sd := stat.StdDev(diffs, nil)
	if sd == 0 {
		return TestResult{Statistic: math.NaN(), PValue: math.NaN(), N: n}, nil
	}

	// 2. t statistic against Student's t with n-1 degrees of freedom.
	tStat := mean / (sd / math.Sqrt(float64(n)))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	p := 2 * dist.CDF(-math.Abs(tStat))

	return TestResult{Statistic: tStat, PValue: p, N: n}, nil
}

// Wilcoxon runs the two-sided Wilcoxon signed-rank test with the normal
// approximation: tie-averaged ranks of |diff|, tie-corrected variance, and
// a 0.5 continuity correction. Zero differences are dropped first; when no
// nonzero difference remains the statistic and p-value are NaN.
func Wilcoxon(x, y []float64) (TestResult, error) {
	if len(x) != len(y) {
		return TestResult{}, ErrLengthMismatch
	}

	// 1. Nonzero differences only.
	var diffs []float64
	for i := range x {
		if d := x[i] - y[i]; d != 0 {
			diffs = append(diffs, d)
		}
	}
	n := len(diffs)
	if n == 0 {
		return TestResult{Statistic: math.NaN(), PValue: math.NaN(), N: 0}, nil
	}

	// 2. Tie-averaged ranks of the absolute differences.
	abs := make([]float64, n)
	for i, d := range diffs {
		abs[i] = math.Abs(d)
	}
	ranks, ties := midRanks(abs)

	// 3. Sum of positive ranks, normal approximation with tie correction.
	var wPlus float64
	for i, d := range diffs {
		if d > 0 {
			wPlus += ranks[i]
		}
	}
	fn := float64(n)
	mean := fn * (fn + 1) / 4
	variance := fn*(fn+1)*(2*fn+1)/24 - ties/48
	if variance <= 0 {
		return TestResult{Statistic: math.NaN(), PValue: math.NaN(), N: n}, nil
	}

	dev := wPlus - mean
	// Continuity correction pulls the statistic toward zero.
	cc := 0.5
	if math.Abs(dev) < cc {
		cc = math.Abs(dev)
	}
	z := (dev - math.Copysign(cc, dev)) / math.Sqrt(variance)
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	p := 2 * norm.CDF(-math.Abs(z))

	return TestResult{Statistic: z, PValue: p, N: n}, nil
}

// BootstrapCI returns a percentile bootstrap confidence interval for the
// mean of x: iters resampled means, seeded so results reproduce exactly.
func BootstrapCI(x []float64, confidence float64, iters int, seed int64) (lo, hi float64, err error) {
	if len(x) == 0 {
		return 0, 0, ErrEmptySample
	}
	if confidence <= 0 || confidence >= 1 {
		return 0, 0, ErrBadConfidence
	}
	if iters <= 0 {
		return 0, 0, ErrBadIters
	}

	rng := plant.RNGFromSeed(seed)
	means := make([]float64, iters)
	for i := 0; i < iters; i++ {
		var sum float64
		for j := 0; j < len(x); j++ {
			sum += x[rng.Intn(len(x))]
		}
		means[i] = sum / float64(len(x))
	}
	sort.Float64s(means)

	alpha := (1 - confidence) / 2
	lo = percentile(means, alpha)
	hi = percentile(means, 1-alpha)

	return lo, hi, nil
}

// BootstrapDiffTest estimates a two-sided p-value for the mean paired
// difference of x and y by sign-flip resampling under the null of no
// difference. The +1 smoothing keeps the p-value strictly positive.
func BootstrapDiffTest(x, y []float64, iters int, seed int64) (TestResult, error) {
	if len(x) != len(y) {
		return TestResult{}, ErrLengthMismatch
	}
	if len(x) == 0 {
		return TestResult{}, ErrEmptySample
	}
	if iters <= 0 {
		return TestResult{}, ErrBadIters
	}

	diffs := make([]float64, len(x))
	for i := range x {
		diffs[i] = x[i] - y[i]
	}
	observed := stat.Mean(diffs, nil)

	rng := plant.RNGFromSeed(seed)
	var extreme int
	for i := 0; i < iters; i++ {
		var sum float64
		for _, d := range diffs {
			if rng.Intn(2) == 0 {
				sum += d
			} else {
				sum -= d
			}
		}
		if math.Abs(sum/float64(len(diffs))) >= math.Abs(observed) {
			extreme++
		}
	}
	p := float64(extreme+1) / float64(iters+1)

	return TestResult{Statistic: observed, PValue: p, N: len(diffs)}, nil
}

// midRanks assigns 1-based tie-averaged ranks and accumulates the Wilcoxon
// tie-correction term sum(t^3 - t) over tie groups.
func midRanks(v []float64) (ranks []float64, ties float64) {
	n := len(v)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return v[order[a]] < v[order[b]] })

	ranks = make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && v[order[j+1]] == v[order[i]] {
			j++
		}
		mid := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[order[k]] = mid
		}
		if size := float64(j - i + 1); size > 1 {
			ties += size*size*size - size
		}
		i = j + 1
	}

	return ranks, ties
}

// percentile reads the q-th percentile from an already sorted sample using
// nearest-rank interpolation.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)

	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
