// Package report: text renderers.
package report

import (
	"fmt"
	"html"
	"math"
	"sort"
	"strings"

	"github.com/pathlab/mirank/experiment"
)

// Markdown renders the report as a GitHub-flavored Markdown document: a
// metric table (methods as rows), the winner, and the significance tests
// when present.
func Markdown(r *experiment.Report) string {
	names := metricNames(r)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Name)

	// 1. Metric table.
	b.WriteString("| Method |")
	for _, n := range names {
		fmt.Fprintf(&b, " %s |", n)
	}
	b.WriteString("\n|---|")
	for range names {
		b.WriteString("---|")
	}
	b.WriteString("\n")
	for _, m := range r.Methods {
		marker := ""
		if m.Name == r.Winner {
			marker = " \u2605" // star the winner row
		}
		fmt.Fprintf(&b, "| %s%s |", m.Name, marker)
		for _, n := range names {
			fmt.Fprintf(&b, " %s |", formatValue(m.Metrics[n]))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n**Winner:** %s\n", r.Winner)

	// 2. Significance tests.
	if len(r.Tests) > 0 {
		b.WriteString("\n## Significance\n\n")
		b.WriteString("| Test | A | B | Statistic | p-value |\n|---|---|---|---|---|\n")
		for _, t := range r.Tests {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				t.Test, t.MethodA, t.MethodB, formatValue(t.Statistic), formatValue(t.PValue))
		}
	}

	fmt.Fprintf(&b, "\nElapsed: %s\n", r.Elapsed)

	return b.String()
}

// LaTeXTable renders the metric table as a booktabs-style LaTeX tabular,
// metrics as rows and methods as columns, with the best value in each row
// wrapped in \textbf.
func LaTeXTable(r *experiment.Report) string {
	names := metricNames(r)

	var b strings.Builder
	fmt.Fprintf(&b, "%% %s\n", r.Name)
	fmt.Fprintf(&b, "\\begin{tabular}{l%s}\n", strings.Repeat("r", len(r.Methods)))
	b.WriteString("\\toprule\nMetric")
	for _, m := range r.Methods {
		fmt.Fprintf(&b, " & %s", latexEscape(m.Name))
	}
	b.WriteString(" \\\\\n\\midrule\n")

	for _, n := range names {
		best := bestValue(r, n)
		fmt.Fprintf(&b, "%s", latexEscape(n))
		for _, m := range r.Methods {
			v := m.Metrics[n]
			cell := formatValue(v)
			if !math.IsNaN(v) && v == best {
				cell = "\\textbf{" + cell + "}"
			}
			fmt.Fprintf(&b, " & %s", cell)
		}
		b.WriteString(" \\\\\n")
	}
	b.WriteString("\\bottomrule\n\\end{tabular}\n")

	return b.String()
}

// HTML renders a standalone page with the winner's row highlighted.
func HTML(r *experiment.Report) string {
	names := metricNames(r)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(r.Name))
	b.WriteString("<style>table{border-collapse:collapse}td,th{border:1px solid #999;padding:4px 8px}.winner{background:#dfd}</style>\n")
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(r.Name))

	b.WriteString("<table>\n<tr><th>Method</th>")
	for _, n := range names {
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(n))
	}
	b.WriteString("</tr>\n")
	for _, m := range r.Methods {
		class := ""
		if m.Name == r.Winner {
			class = ` class="winner"`
		}
		fmt.Fprintf(&b, "<tr%s><td>%s</td>", class, html.EscapeString(m.Name))
		for _, n := range names {
			fmt.Fprintf(&b, "<td>%s</td>", formatValue(m.Metrics[n]))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
	fmt.Fprintf(&b, "<p>Winner: <strong>%s</strong></p>\n", html.EscapeString(r.Winner))

	if len(r.Tests) > 0 {
		b.WriteString("<h2>Significance</h2>\n<table>\n")
		b.WriteString("<tr><th>Test</th><th>A</th><th>B</th><th>Statistic</th><th>p-value</th></tr>\n")
		for _, t := range r.Tests {
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				html.EscapeString(t.Test), html.EscapeString(t.MethodA), html.EscapeString(t.MethodB),
				formatValue(t.Statistic), formatValue(t.PValue))
		}
		b.WriteString("</table>\n")
	}
	b.WriteString("</body>\n</html>\n")

	return b.String()
}

// metricNames returns the union of metric names across methods, sorted.
func metricNames(r *experiment.Report) []string {
	seen := make(map[string]struct{})
	for _, m := range r.Methods {
		for n := range m.Metrics {
			seen[n] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// bestValue returns the highest non-NaN mean for the metric, or NaN when
// every method is undefined on it.
func bestValue(r *experiment.Report, metric string) float64 {
	best := math.NaN()
	for _, m := range r.Methods {
		v := m.Metrics[metric]
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(best) || v > best {
			best = v
		}
	}

	return best
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}

	return fmt.Sprintf("%.4f", v)
}

var latexReplacer = strings.NewReplacer(
	"&", "\\&", "%", "\\%", "$", "\\$", "#", "\\#", "_", "\\_",
	"{", "\\{", "}", "\\}",
)

func latexEscape(s string) string {
	return latexReplacer.Replace(s)
}
