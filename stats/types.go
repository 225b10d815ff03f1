// Package stats: sentinel errors and the shared result type.
package stats

import "errors"

var (
	// ErrLengthMismatch is returned when paired samples differ in length.
	ErrLengthMismatch = errors.New("stats: paired samples differ in length")

	// ErrEmptySample is returned when a sample holds no observations.
	ErrEmptySample = errors.New("stats: empty sample")

	// ErrBadConfidence is returned when a confidence level lies outside (0,1).
	ErrBadConfidence = errors.New("stats: confidence must be in (0,1)")

	// ErrBadIters is returned when a bootstrap iteration count is not positive.
	ErrBadIters = errors.New("stats: iterations must be positive")
)

// TestResult carries the outcome of a significance test. Statistic is the
// test statistic (t for the paired t-test, z for Wilcoxon, the observed
// mean difference for the bootstrap test), PValue its two-sided p-value,
// and N the number of pairs actually used after degenerate pairs are
// dropped.
type TestResult struct {
	Statistic float64
	PValue    float64
	N         int
}
