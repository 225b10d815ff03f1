// Package stats: multiple-comparison corrections.
package stats

import (
	"math"
	"sort"
)

// Bonferroni returns p-values multiplied by the family size, capped at 1.
// The crudest and most conservative family-wise correction.
func Bonferroni(pvals []float64) []float64 {
	m := float64(len(pvals))
	adj := make([]float64, len(pvals))
	for i, p := range pvals {
		adj[i] = math.Min(1, p*m)
	}

	return adj
}

// HolmBonferroni returns the step-down Holm adjustment: the i-th smallest
// p-value is multiplied by (m-i), with a running maximum enforcing
// monotonicity. Uniformly more powerful than plain Bonferroni at the same
// family-wise error rate.
func HolmBonferroni(pvals []float64) []float64 {
	m := len(pvals)
	order := ascendingOrder(pvals)

	adj := make([]float64, m)
	running := 0.0
	for i, idx := range order {
		v := math.Min(1, float64(m-i)*pvals[idx])
		if v < running {
			v = running
		}
		running = v
		adj[idx] = v
	}

	return adj
}

// BenjaminiHochberg returns the step-up false-discovery-rate adjustment:
// the i-th smallest p-value becomes p*m/i, with a backward running minimum
// enforcing monotonicity.
func BenjaminiHochberg(pvals []float64) []float64 {
	m := len(pvals)
	order := ascendingOrder(pvals)

	adj := make([]float64, m)
	running := 1.0
	for i := m - 1; i >= 0; i-- {
		idx := order[i]
		v := math.Min(1, pvals[idx]*float64(m)/float64(i+1))
		if v > running {
			v = running
		}
		running = v
		adj[idx] = v
	}

	return adj
}

// storeyLambda is the fixed tuning point for the pi0 estimate.
const storeyLambda = 0.5

// StoreyQ returns Storey q-values: Benjamini-Hochberg scaled by an
// estimate of the null proportion pi0 = #{p > lambda} / (m * (1-lambda))
// at the fixed lambda 0.5. With few true effects pi0 approaches 1 and the
// result matches Benjamini-Hochberg; with many it is strictly tighter.
func StoreyQ(pvals []float64) []float64 {
	m := len(pvals)
	if m == 0 {
		return nil
	}

	var above int
	for _, p := range pvals {
		if p > storeyLambda {
			above++
		}
	}
	pi0 := float64(above) / (float64(m) * (1 - storeyLambda))
	if pi0 > 1 {
		pi0 = 1
	}
	if pi0 <= 0 {
		pi0 = 1.0 / float64(m) // guard: every p small, keep q-values finite
	}

	adj := BenjaminiHochberg(pvals)
	out := make([]float64, m)
	for i, v := range adj {
		out[i] = math.Min(1, v*pi0)
	}

	return out
}

// Significant thresholds adjusted p-values at alpha.
func Significant(adjusted []float64, alpha float64) []bool {
	out := make([]bool, len(adjusted))
	for i, p := range adjusted {
		out[i] = p <= alpha
	}

	return out
}

// ascendingOrder returns the permutation that sorts pvals ascending,
// breaking ties by original position for stability.
func ascendingOrder(pvals []float64) []int {
	order := make([]int, len(pvals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return pvals[order[a]] < pvals[order[b]] })

	return order
}
