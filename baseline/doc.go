// Package baseline supplies the comparison rankers the experiment runner
// pits against mutual-information ranking.
//
// What
//
//   - Random(seed): uniform-random ordering from a fixed seed, the floor
//     every real method must beat.
//   - DegreeBased(): score a path by the summed degree of its nodes.
//   - ShortestPath(): inverse hop count, 1/(1+hops).
//   - WeightBased(): the path's accumulated edge weight.
//   - PageRankBased(damping, tol): summed PageRank mass of the path's
//     nodes, computed once per graph.
//
// Every constructor returns a rank.Ranker, so baselines and the MI ranker
// are interchangeable inside an experiment. All rankers order their output
// with the shared deterministic tie-breaking and never mutate the graph.
package baseline
