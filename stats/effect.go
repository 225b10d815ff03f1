// Package stats: effect-size measures.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// CohensD returns the standardized mean difference of two independent
// samples using the pooled standard deviation. NaN when either sample has
// fewer than two observations or the pooled variance is zero.
func CohensD(x, y []float64) float64 {
	nx, ny := len(x), len(y)
	if nx < 2 || ny < 2 {
		return math.NaN()
	}

	vx := stat.Variance(x, nil)
	vy := stat.Variance(y, nil)
	pooled := (float64(nx-1)*vx + float64(ny-1)*vy) / float64(nx+ny-2)
	if pooled == 0 {
		return math.NaN()
	}

	return (stat.Mean(x, nil) - stat.Mean(y, nil)) / math.Sqrt(pooled)
}

// GlassDelta returns the mean difference standardized by the control
// group's standard deviation alone, for when the treatment changes the
// variance. y is the control. NaN when the control is degenerate.
func GlassDelta(x, y []float64) float64 {
	if len(y) < 2 {
		return math.NaN()
	}
	sd := stat.StdDev(y, nil)
	if sd == 0 {
		return math.NaN()
	}

	return (stat.Mean(x, nil) - stat.Mean(y, nil)) / sd
}

// CliffsDelta returns the dominance statistic in [-1,1]: the probability a
// draw from x exceeds a draw from y, minus the reverse. Robust to outliers
// and meaningful for ordinal data. NaN when either sample is empty.
func CliffsDelta(x, y []float64) float64 {
	if len(x) == 0 || len(y) == 0 {
		return math.NaN()
	}

	var more, less int
	for _, a := range x {
		for _, b := range y {
			switch {
			case a > b:
				more++
			case a < b:
				less++
			}
		}
	}

	return float64(more-less) / float64(len(x)*len(y))
}

// RankBiserial returns the matched-pairs rank-biserial correlation: the
// signed-rank analogue of an effect size, computed from the same ranked
// differences Wilcoxon uses. Zero differences are dropped; NaN when none
// remain.
func RankBiserial(x, y []float64) float64 {
	if len(x) != len(y) {
		return math.NaN()
	}

	var diffs []float64
	for i := range x {
		if d := x[i] - y[i]; d != 0 {
			diffs = append(diffs, d)
		}
	}
	n := len(diffs)
	if n == 0 {
		return math.NaN()
	}

	abs := make([]float64, n)
	for i, d := range diffs {
		abs[i] = math.Abs(d)
	}
	ranks, _ := midRanks(abs)

	var wPlus float64
	for i, d := range diffs {
		if d > 0 {
			wPlus += ranks[i]
		}
	}
	total := float64(n) * float64(n+1) / 2

	return 2*wPlus/total - 1
}
