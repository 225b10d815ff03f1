// Package rank implements mutual-information based path ranking over a
// core.Graph.
//
// What
//
//   - RankPaths(g, start, end, opts...): enumerate simple paths (no repeated
//     nodes) between two nodes up to WithMaxLength hops, score each one, and
//     return the top WithMaxPaths by score descending.
//   - EdgeMI(g, u, v, mode): the per-edge mutual information of adjacent
//     nodes, operationalized as neighborhood overlap
//     |N(u)∩N(v)| / |N(u)∪N(v)| over open neighborhoods.
//   - GeometricMeanMI(g, path, mode): per-edge MI values combined by
//     geometric mean, so quality is comparable across path lengths.
//   - MIRanker(lambda): adapts the scorer to the shared Ranker signature
//     used by baselines and the experiment runner.
//
// Scoring
//
//	score = geometricMeanMI - lambda * pathLength
//
//	At lambda=0 ranking is purely by aggregated quality: a long but
//	well-connected path can outrank a short, weakly-connected one. As lambda
//	grows there is a single crossover past which shorter paths dominate.
//	A path containing a zero-MI edge has aggregate quality 0 by convention;
//	it is still reported, never silently dropped.
//
// Determinism
//
//	Neighbor expansion follows core's sorted NeighborIDs contract and ties
//	are broken by path length then path key, so identical inputs always
//	produce identical rankings.
//
// No-path handling
//
//	Two nodes disconnected within MaxLength yield an empty Result with
//	Found() == false and a nil error. Errors are reserved for precondition
//	violations (nil graph, unknown node, invalid options).
//
// Complexity
//
//	Enumeration is a depth-first walk bounded by MaxLength and an internal
//	work cap proportional to MaxPaths; scoring is O(paths * length * d) for
//	average degree d.
package rank
