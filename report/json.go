// Package report: machine-readable summary.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/pathlab/mirank/experiment"
)

// ErrNilReport is returned when a renderer receives a nil report.
var ErrNilReport = errors.New("report: nil report")

// Summary is the JSON shape of an experiment outcome. Per-trial samples
// are deliberately left out: the summary is the archival record, not the
// raw data.
type Summary struct {
	Name      string            `json:"name"`
	Winner    string            `json:"winner"`
	ElapsedMS int64             `json:"elapsed_ms"`
	Methods   []MethodSummary   `json:"methods"`
	Tests     []PairwiseSummary `json:"tests,omitempty"`
}

// MethodSummary carries one method's aggregated metrics.
type MethodSummary struct {
	Name    string             `json:"name"`
	Metrics map[string]float64 `json:"metrics"`
}

// PairwiseSummary carries one significance-test outcome. Statistic and
// PValue are pointers because a degenerate test yields NaN, which JSON
// cannot carry; nil stands in for "undefined".
type PairwiseSummary struct {
	Test      string   `json:"test"`
	MethodA   string   `json:"method_a"`
	MethodB   string   `json:"method_b"`
	Statistic *float64 `json:"statistic,omitempty"`
	PValue    *float64 `json:"p_value,omitempty"`
}

// JSONSummary serializes the report. NaN means are omitted from the
// metric maps because JSON has no NaN literal; ParseJSONSummary restores
// everything that was written.
func JSONSummary(r *experiment.Report) (string, error) {
	if r == nil {
		return "", ErrNilReport
	}

	s := Summary{
		Name:      r.Name,
		Winner:    r.Winner,
		ElapsedMS: r.Elapsed.Milliseconds(),
	}
	for _, m := range r.Methods {
		ms := MethodSummary{Name: m.Name, Metrics: make(map[string]float64, len(m.Metrics))}
		for k, v := range m.Metrics {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				ms.Metrics[k] = v
			}
		}
		s.Methods = append(s.Methods, ms)
	}
	for _, t := range r.Tests {
		s.Tests = append(s.Tests, PairwiseSummary{
			Test:      t.Test,
			MethodA:   t.MethodA,
			MethodB:   t.MethodB,
			Statistic: jsonFloat(t.Statistic),
			PValue:    jsonFloat(t.PValue),
		})
	}

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: marshal summary: %w", err)
	}

	return string(out), nil
}

// ParseJSONSummary reads a summary produced by JSONSummary.
func ParseJSONSummary(data string) (*Summary, error) {
	var s Summary
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("report: parse summary: %w", err)
	}

	return &s, nil
}

// jsonFloat maps NaN and the infinities to nil so the summary always
// marshals.
func jsonFloat(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}
