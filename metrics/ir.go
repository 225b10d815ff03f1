// Package metrics: retrieval measures over ranked path keys.
package metrics

import (
	"math"
	"sort"
)

// NDCG returns the normalized discounted cumulative gain of the ranked
// list at cutoff k (k<=0 means the full list). Gain is 2^rel-1 with the
// standard log2(position+2) discount; the result is 0 when the ideal DCG
// is 0, i.e. when nothing in rel is positive.
func NDCG(ranked []string, rel map[string]float64, k int) float64 {
	cut := cutoff(len(ranked), k)

	var dcg float64
	for i := 0; i < cut; i++ {
		g := gain(rel[ranked[i]])
		dcg += g / math.Log2(float64(i)+2)
	}

	// Ideal DCG: every positive relevance sorted descending, same cutoff.
	var grades []float64
	for _, r := range rel {
		if r > 0 {
			grades = append(grades, r)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(grades)))
	if len(grades) > cut {
		grades = grades[:cut]
	}
	var idcg float64
	for i, r := range grades {
		idcg += gain(r) / math.Log2(float64(i)+2)
	}
	if idcg == 0 {
		return 0
	}

	return dcg / idcg
}

// AveragePrecision returns the average of precision values taken at each
// relevant position, divided by the total number of relevant items in rel.
// Relevance is binary: rel>0. Returns 0 when rel holds nothing relevant.
func AveragePrecision(ranked []string, rel map[string]float64) float64 {
	total := relevantCount(rel)
	if total == 0 {
		return 0
	}

	var hits int
	var sum float64
	for i, key := range ranked {
		if rel[key] > 0 {
			hits++
			sum += float64(hits) / float64(i+1)
		}
	}

	return sum / float64(total)
}

// MAP returns the mean of AveragePrecision over several rankings, one
// relevance map per ranking. Returns NaN when the slice lengths differ or
// no rankings are given.
func MAP(rankings [][]string, rels []map[string]float64) float64 {
	if len(rankings) == 0 || len(rankings) != len(rels) {
		return math.NaN()
	}

	var sum float64
	for i, ranked := range rankings {
		sum += AveragePrecision(ranked, rels[i])
	}

	return sum / float64(len(rankings))
}

// ReciprocalRank returns 1/position of the first relevant item, or 0 when
// none appears in the ranking.
func ReciprocalRank(ranked []string, rel map[string]float64) float64 {
	for i, key := range ranked {
		if rel[key] > 0 {
			return 1.0 / float64(i+1)
		}
	}

	return 0
}

// MRR returns the mean ReciprocalRank over several rankings. Returns NaN
// when the slice lengths differ or no rankings are given.
func MRR(rankings [][]string, rels []map[string]float64) float64 {
	if len(rankings) == 0 || len(rankings) != len(rels) {
		return math.NaN()
	}

	var sum float64
	for i, ranked := range rankings {
		sum += ReciprocalRank(ranked, rels[i])
	}

	return sum / float64(len(rankings))
}

// PrecisionAt returns the fraction of the top k that is relevant. k<=0
// means the full list; an empty list yields 0.
func PrecisionAt(ranked []string, rel map[string]float64, k int) float64 {
	cut := cutoff(len(ranked), k)
	if cut == 0 {
		return 0
	}

	var hits int
	for i := 0; i < cut; i++ {
		if rel[ranked[i]] > 0 {
			hits++
		}
	}

	return float64(hits) / float64(cut)
}

// RecallAt returns the fraction of all relevant items found in the top k.
// k<=0 means the full list; 0 when rel holds nothing relevant.
func RecallAt(ranked []string, rel map[string]float64, k int) float64 {
	total := relevantCount(rel)
	if total == 0 {
		return 0
	}
	cut := cutoff(len(ranked), k)

	var hits int
	for i := 0; i < cut; i++ {
		if rel[ranked[i]] > 0 {
			hits++
		}
	}

	return float64(hits) / float64(total)
}

func cutoff(n, k int) int {
	if k <= 0 || k > n {
		return n
	}

	return k
}

func gain(rel float64) float64 {
	if rel <= 0 {
		return 0
	}

	return math.Exp2(rel) - 1
}

func relevantCount(rel map[string]float64) int {
	var n int
	for _, r := range rel {
		if r > 0 {
			n++
		}
	}

	return n
}
