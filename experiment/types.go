// Package experiment: configuration, results, and sentinel errors.
package experiment

import (
	"errors"
	"time"

	"github.com/pathlab/mirank/plant"
	"github.com/pathlab/mirank/rank"
)

var (
	// ErrNilGraph is returned when Run receives a nil graph.
	ErrNilGraph = errors.New("experiment: nil graph")

	// ErrNoMethods is returned when the configuration names no methods.
	ErrNoMethods = errors.New("experiment: no methods configured")

	// ErrNoMetrics is returned when the configuration names no metrics.
	ErrNoMetrics = errors.New("experiment: no metrics configured")

	// ErrBadRepetitions is returned when Repetitions is not positive.
	ErrBadRepetitions = errors.New("experiment: repetitions must be positive")

	// ErrBadFolds is returned when the fold count is below 2 or exceeds
	// the repetition count.
	ErrBadFolds = errors.New("experiment: folds must be in [2, repetitions]")

	// ErrUnknownMetric is returned for a metric name outside the registry.
	ErrUnknownMetric = errors.New("experiment: unknown metric")

	// ErrUnknownTest is returned for a test name outside the registry.
	ErrUnknownTest = errors.New("experiment: unknown test")
)

// Method pairs a display name with the ranker it runs. Declaration order
// in Config.Methods is the tie-breaking order for the winner.
type Method struct {
	Name string
	Rank rank.Ranker
}

// Config describes one experiment.
type Config struct {
	// Name labels the experiment in reports.
	Name string

	// Repetitions is the number of independent trials.
	Repetitions int

	// Seed is the top-level seed; trial r derives its own stream from it.
	Seed int64

	// Planting configures the ground-truth paths grown in each trial's clone.
	// Its Seed field is overwritten per trial.
	Planting plant.Config

	// NoisePaths is the number of irrelevant distractor paths per trial.
	NoisePaths int

	// Methods are the rankers under comparison, in tie-breaking order.
	Methods []Method

	// Metrics are the measures computed per trial, e.g. "spearman",
	// "ndcg@10". The first one is the primary unless PrimaryMetric says
	// otherwise.
	Metrics []string

	// Tests are the pairwise significance tests run on the per-trial
	// primary-metric samples when at least two methods compete.
	Tests []string

	// PrimaryMetric decides the winner; empty selects Metrics[0].
	PrimaryMetric string
}

// MethodResult aggregates one method across all trials.
type MethodResult struct {
	Name string

	// Metrics holds the per-metric mean over trials, NaN trials skipped.
	Metrics map[string]float64

	// PerTrial keeps the raw per-trial values behind each mean, in trial
	// order, for significance testing and cross-validation.
	PerTrial map[string][]float64
}

// PairwiseTest is the outcome of one significance test between two
// methods on the primary metric.
type PairwiseTest struct {
	Test      string
	MethodA   string
	MethodB   string
	Statistic float64
	PValue    float64
}

// Report is the aggregated outcome of Run.
type Report struct {
	Name    string
	Methods []MethodResult
	Winner  string
	Tests   []PairwiseTest
	Elapsed time.Duration
}

// CVStat is a mean with its across-fold standard deviation.
type CVStat struct {
	Mean   float64
	StdDev float64
}

// CVMethodResult aggregates one method across folds.
type CVMethodResult struct {
	Name    string
	Metrics map[string]CVStat
}

// CVReport is the outcome of RunCrossValidation.
type CVReport struct {
	Name    string
	Folds   int
	Methods []CVMethodResult
}
