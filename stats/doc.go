// Package stats provides the significance machinery behind experiment
// conclusions: paired tests, bootstrap resampling, multiple-comparison
// corrections, and effect sizes.
//
// What
//
//   - PairedTTest / Wilcoxon: is one method's per-trial metric reliably
//     better than another's on the same trials.
//   - BootstrapCI / BootstrapDiffTest: distribution-free intervals and
//     p-values via seeded resampling, fully reproducible.
//   - Bonferroni / HolmBonferroni / BenjaminiHochberg / StoreyQ: adjust a
//     family of p-values for multiple testing; Significant thresholds the
//     adjusted values.
//   - CohensD / GlassDelta / CliffsDelta / RankBiserial: magnitude of a
//     difference, decoupled from its significance.
//
// Degenerate samples (too few observations, zero variance, no nonzero
// paired differences) yield NaN statistics rather than errors; mismatched
// paired lengths are a caller bug and do error.
package stats
