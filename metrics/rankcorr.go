// Package metrics: rank-correlation measures.
package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Spearman returns the Spearman rank correlation of the paired samples x
// and y: the Pearson correlation of their fractional ranks, so ties share
// the mean of the positions they span. Returns NaN when the lengths
// differ, fewer than two pairs exist, or either side is constant.
func Spearman(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return math.NaN()
	}

	rx := fractionalRanks(x)
	ry := fractionalRanks(y)
	if constant(rx) || constant(ry) {
		return math.NaN()
	}

	return stat.Correlation(rx, ry, nil)
}

// Kendall returns the Kendall tau rank correlation of the paired samples.
// Returns NaN when the lengths differ, fewer than two pairs exist, or
// either side is constant.
func Kendall(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return math.NaN()
	}
	if constant(x) || constant(y) {
		return math.NaN()
	}

	return stat.Kendall(x, y, nil)
}

// fractionalRanks assigns 1-based ranks with ties averaged, the standard
// mid-rank convention.
func fractionalRanks(v []float64) []float64 {
	n := len(v)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return v[order[a]] < v[order[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && v[order[j+1]] == v[order[i]] {
			j++
		}
		// Positions i..j (0-based) share the mean rank.
		mid := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[order[k]] = mid
		}
		i = j + 1
	}

	return ranks
}

func constant(v []float64) bool {
	for i := 1; i < len(v); i++ {
		if v[i] != v[0] {
			return false
		}
	}

	return true
}
