// Package experiment: fold-based aggregation.
package experiment

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/pathlab/mirank/core"
)

// RunCrossValidation executes the experiment once and re-aggregates its
// per-trial values into folds: contiguous, near-equal partitions of the
// trial sequence. The returned CVReport carries, per method and metric,
// the mean of the fold means and their across-fold standard deviation, so
// a method whose score swings between folds is visibly less stable than
// one with the same mean and a tight spread.
func RunCrossValidation(cfg Config, g *core.Graph, folds int) (*CVReport, error) {
	if folds < 2 || folds > cfg.Repetitions {
		return nil, ErrBadFolds
	}

	rep, err := Run(cfg, g)
	if err != nil {
		return nil, err
	}

	out := &CVReport{Name: cfg.Name, Folds: folds}
	for _, m := range rep.Methods {
		cv := CVMethodResult{Name: m.Name, Metrics: make(map[string]CVStat, len(cfg.Metrics))}
		for _, name := range cfg.Metrics {
			fm := foldMeans(m.PerTrial[name], folds)
			cv.Metrics[name] = CVStat{
				Mean:   nanMean(fm),
				StdDev: nanStdDev(fm),
			}
		}
		out.Methods = append(out.Methods, cv)
	}

	return out, nil
}

// foldMeans splits trials into contiguous folds (the first len%folds folds
// take one extra trial) and returns each fold's NaN-skipping mean.
func foldMeans(trials []float64, folds int) []float64 {
	n := len(trials)
	base, extra := n/folds, n%folds

	means := make([]float64, 0, folds)
	start := 0
	for f := 0; f < folds; f++ {
		size := base
		if f < extra {
			size++
		}
		means = append(means, nanMean(trials[start:start+size]))
		start += size
	}

	return means
}

// nanStdDev is the sample standard deviation over non-NaN entries; NaN
// when fewer than two remain.
func nanStdDev(v []float64) float64 {
	clean := make([]float64, 0, len(v))
	for _, x := range v {
		if !math.IsNaN(x) {
			clean = append(clean, x)
		}
	}
	if len(clean) < 2 {
		return math.NaN()
	}

	return stat.StdDev(clean, nil)
}
