// Package experiment: the trial loop.
package experiment

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pathlab/mirank/core"
	"github.com/pathlab/mirank/metrics"
	"github.com/pathlab/mirank/plant"
	"github.com/pathlab/mirank/rank"
	"github.com/pathlab/mirank/stats"
)

// noiseStream separates the noise generator's seed from the planting seed
// inside one trial.
const noiseStream = 1

// metricFn evaluates one measure for a single trial. ranked holds path
// keys best first, pred/truth the aligned score and relevance vectors in
// the same order, rel the relevance by key, k the optional "@k" cutoff.
type metricFn func(ranked []string, rel map[string]float64, pred, truth []float64, k int) float64

var metricRegistry = map[string]metricFn{
	"spearman": func(_ []string, _ map[string]float64, pred, truth []float64, _ int) float64 {
		return metrics.Spearman(pred, truth)
	},
	"kendall": func(_ []string, _ map[string]float64, pred, truth []float64, _ int) float64 {
		return metrics.Kendall(pred, truth)
	},
	"ndcg": func(ranked []string, rel map[string]float64, _, _ []float64, k int) float64 {
		return metrics.NDCG(ranked, rel, k)
	},
	"ap": func(ranked []string, rel map[string]float64, _, _ []float64, _ int) float64 {
		return metrics.AveragePrecision(ranked, rel)
	},
	"mrr": func(ranked []string, rel map[string]float64, _, _ []float64, _ int) float64 {
		return metrics.ReciprocalRank(ranked, rel)
	},
	"precision": func(ranked []string, rel map[string]float64, _, _ []float64, k int) float64 {
		return metrics.PrecisionAt(ranked, rel, k)
	},
	"recall": func(ranked []string, rel map[string]float64, _, _ []float64, k int) float64 {
		return metrics.RecallAt(ranked, rel, k)
	},
}

func init() {
	metricRegistry["map"] = metricRegistry["ap"] // mean-over-trials alias
}

// testFn runs one pairwise significance test on per-trial samples.
type testFn func(a, b []float64) (stats.TestResult, error)

// bootstrap test parameters; iters trades runtime for p-value resolution.
const (
	bootstrapIters = 1000
	bootstrapSeed  = 1
)

var testRegistry = map[string]testFn{
	"ttest":    stats.PairedTTest,
	"wilcoxon": stats.Wilcoxon,
	"bootstrap": func(a, b []float64) (stats.TestResult, error) {
		return stats.BootstrapDiffTest(a, b, bootstrapIters, bootstrapSeed)
	},
}

// Run executes cfg.Repetitions independent trials against clones of g and
// aggregates them into a Report. Each trial plants fresh ground-truth
// paths plus noise, ranks the combined candidate pool with every method,
// and scores the rankings against the planted relevance. A method error
// aborts the run immediately, wrapped with the method name and trial.
func Run(cfg Config, g *core.Graph) (*Report, error) {
	start := time.Now()

	// 1. Validate configuration.
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Repetitions <= 0 {
		return nil, ErrBadRepetitions
	}
	if len(cfg.Methods) == 0 {
		return nil, ErrNoMethods
	}
	if len(cfg.Metrics) == 0 {
		return nil, ErrNoMetrics
	}
	for _, name := range cfg.Metrics {
		if _, _, err := parseMetric(name); err != nil {
			return nil, err
		}
	}
	for _, name := range cfg.Tests {
		if _, ok := testRegistry[name]; !ok {
			return nil, fmt.Errorf("experiment: test %q: %w", name, ErrUnknownTest)
		}
	}
	primary := cfg.PrimaryMetric
	if primary == "" {
		primary = cfg.Metrics[0]
	}
	if !containsMetric(cfg.Metrics, primary) {
		return nil, fmt.Errorf("experiment: primary metric %q: %w", primary, ErrUnknownMetric)
	}

	// 2. Trial loop.
	results := make([]MethodResult, len(cfg.Methods))
	for i, m := range cfg.Methods {
		results[i] = MethodResult{
			Name:     m.Name,
			Metrics:  make(map[string]float64, len(cfg.Metrics)),
			PerTrial: make(map[string][]float64, len(cfg.Metrics)),
		}
	}
	for r := 0; r < cfg.Repetitions; r++ {
		trialSeed := plant.DeriveSeed(cfg.Seed, uint64(r))
		work, candidates, rel, err := buildTrial(g, cfg, trialSeed)
		if err != nil {
			return nil, fmt.Errorf("experiment: trial %d: %w", r, err)
		}

		for i, m := range cfg.Methods {
			scored, err := m.Rank(work, candidates)
			if err != nil {
				return nil, fmt.Errorf("experiment: trial %d: method %q: %w", r, m.Name, err)
			}
			evaluate(&results[i], cfg.Metrics, scored, rel)
		}
	}

	// 3. Aggregate: NaN-skipping means, then the winner.
	for i := range results {
		for _, name := range cfg.Metrics {
			results[i].Metrics[name] = nanMean(results[i].PerTrial[name])
		}
	}
	winner := results[0].Name
	best := results[0].Metrics[primary]
	for _, res := range results[1:] {
		if v := res.Metrics[primary]; !math.IsNaN(v) && (math.IsNaN(best) || v > best) {
			winner, best = res.Name, v
		}
	}

	// 4. Pairwise significance on the primary metric.
	var pairwise []PairwiseTest
	if len(results) >= 2 {
		for _, testName := range cfg.Tests {
			run := testRegistry[testName]
			for a := 0; a < len(results); a++ {
				for b := a + 1; b < len(results); b++ {
					tr, err := run(results[a].PerTrial[primary], results[b].PerTrial[primary])
					if err != nil {
						return nil, fmt.Errorf("experiment: test %q (%s vs %s): %w",
							testName, results[a].Name, results[b].Name, err)
					}
					pairwise = append(pairwise, PairwiseTest{
						Test:      testName,
						MethodA:   results[a].Name,
						MethodB:   results[b].Name,
						Statistic: tr.Statistic,
						PValue:    tr.PValue,
					})
				}
			}
		}
	}

	return &Report{
		Name:    cfg.Name,
		Methods: results,
		Winner:  winner,
		Tests:   pairwise,
		Elapsed: time.Since(start),
	}, nil
}

// buildTrial clones g, plants ground truth and noise with the trial seed,
// and returns the planted clone plus the combined candidate pool and its
// relevance map. Methods rank against the clone so planted structure is
// visible to them; the caller's graph stays pristine.
func buildTrial(g *core.Graph, cfg Config, trialSeed int64) (*core.Graph, []*core.Path, map[string]float64, error) {
	work := g.Clone()

	pcfg := cfg.Planting
	pcfg.Seed = trialSeed
	planted, err := plant.PlantGroundTruthPaths(work, pcfg)
	if err != nil {
		return nil, nil, nil, err
	}

	noise, err := plant.AddNoisePaths(work, planted.Paths, cfg.NoisePaths,
		plant.DeriveSeed(trialSeed, noiseStream))
	if err != nil {
		return nil, nil, nil, err
	}

	candidates := append(append([]*core.Path(nil), planted.Paths...), noise.Paths...)
	rel := make(map[string]float64, len(candidates))
	for k, v := range planted.Relevance {
		rel[k] = v
	}
	for k, v := range noise.Relevance {
		rel[k] = v
	}

	return work, candidates, rel, nil
}

// evaluate appends this trial's metric values for one method's ranking.
func evaluate(res *MethodResult, names []string, scored []rank.Scored, rel map[string]float64) {
	ranked := make([]string, len(scored))
	pred := make([]float64, len(scored))
	truth := make([]float64, len(scored))
	for i, s := range scored {
		key := s.Path.Key()
		ranked[i] = key
		pred[i] = s.Score
		truth[i] = rel[key]
	}

	for _, name := range names {
		fn, k, _ := parseMetric(name) // validated in Run
		res.PerTrial[name] = append(res.PerTrial[name], fn(ranked, rel, pred, truth, k))
	}
}

// parseMetric splits an optional "@k" cutoff off a metric name and looks
// the base up in the registry.
func parseMetric(name string) (metricFn, int, error) {
	base, k := name, 0
	if at := strings.LastIndex(name, "@"); at >= 0 {
		parsed, err := strconv.Atoi(name[at+1:])
		if err != nil || parsed <= 0 {
			return nil, 0, fmt.Errorf("experiment: metric %q: %w", name, ErrUnknownMetric)
		}
		base, k = name[:at], parsed
	}
	fn, ok := metricRegistry[base]
	if !ok {
		return nil, 0, fmt.Errorf("experiment: metric %q: %w", name, ErrUnknownMetric)
	}

	return fn, k, nil
}

func containsMetric(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}

	return false
}

// nanMean averages the sample, skipping NaN entries. All-NaN (or empty)
// input yields NaN so a metric that never applied stays visibly undefined.
func nanMean(v []float64) float64 {
	var sum float64
	var n int
	for _, x := range v {
		if math.IsNaN(x) {
			continue
		}
		sum += x
		n++
	}
	if n == 0 {
		return math.NaN()
	}

	return sum / float64(n)
}
