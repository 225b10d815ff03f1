// Package metrics implements the ranking-quality measures used to compare
// path rankers against ground truth.
//
// What
//
//   - Spearman / Kendall: rank correlation between two paired score
//     vectors, for "does the method order paths like the oracle does".
//   - NDCG / AveragePrecision / MAP / MRR / ReciprocalRank /
//     PrecisionAt / RecallAt: retrieval measures over a ranked list of
//     path keys against a relevance map. An item is "relevant" when its
//     relevance is strictly positive; NDCG additionally uses the graded
//     values.
//
// Degenerate inputs never panic and never error: correlations return NaN
// when undefined (fewer than two pairs, or a constant side) and retrieval
// measures return 0 when no relevant item exists. Callers are expected to
// skip NaNs when averaging across trials.
package metrics
