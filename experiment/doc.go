// Package experiment drives the full evaluation loop: plant ground truth
// into a graph, add noise, let every configured method rank the combined
// candidate pool, score the rankings against the planted relevance, and
// decide a winner with significance tests attached.
//
// What
//
//   - Run(cfg, g): Repetitions independent trials, each on a fresh clone
//     of g with its own derived seed, aggregated into a Report.
//   - RunCrossValidation(cfg, g, folds): the same trials partitioned into
//     folds, reporting per-fold means and their across-fold spread.
//
// Determinism
//
//	Trial r uses plant.DeriveSeed(cfg.Seed, r), so any single trial can be
//	reproduced in isolation and the whole experiment replays bit-identically
//	from one top-level seed. The input graph is never mutated.
//
// Metric names are lower-case, optionally suffixed "@k" for a cutoff
// ("ndcg@10", "precision@5"): spearman, kendall, ndcg, ap (alias map),
// mrr, precision, recall. Test names: ttest, wilcoxon, bootstrap.
package experiment
