// Package report renders an experiment.Report for human and machine
// consumption: Markdown and HTML for people, a LaTeX table for papers,
// and a JSON summary that round-trips through ParseJSONSummary.
//
// Every renderer walks metrics in sorted name order and methods in their
// declaration order, so the same report always produces byte-identical
// output.
package report
