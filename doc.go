// Package mirank is a toolkit for mutual-information path ranking and its
// evaluation: build a graph, rank the paths between two nodes by how
// informative their edges are, and measure whether that ranking beats the
// classic baselines on planted ground truth.
//
// The pipeline, package by package:
//
//	core/       graph, node, edge and path primitives (single-writer)
//	rank/       path enumeration and MI scoring with a length penalty
//	plant/      ground-truth planting: spines, witnesses, noise, motifs
//	truth/      alternative oracles (attributes, between-sets, ego nets)
//	baseline/   random, degree, shortest-path, weight and PageRank rankers
//	metrics/    Spearman, Kendall, NDCG, AP, MRR, precision/recall
//	stats/      paired tests, bootstrap, corrections, effect sizes
//	experiment/ seeded multi-trial runner with cross-validation
//	report/     Markdown, LaTeX, HTML and JSON renderings
//	datasets/   karate club, edge-list loading, synthetic citations
//
// Everything is deterministic from explicit seeds: rerunning an experiment
// with the same configuration reproduces every path, score and p-value
// bit for bit.
package mirank
