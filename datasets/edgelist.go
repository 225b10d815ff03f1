// Package datasets: plain-text edge-list parsing.
package datasets

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pathlab/mirank/core"
)

// ErrBadEdgeLine is returned when a non-comment line has fewer than two
// fields or a malformed weight.
var ErrBadEdgeLine = errors.New("datasets: malformed edge line")

// LoadOption adjusts edge-list parsing.
type LoadOption func(*loadOptions)

type loadOptions struct {
	directed bool
}

// Directed makes the loaded graph directed; lines are taken as from->to.
func Directed() LoadOption {
	return func(o *loadOptions) { o.directed = true }
}

// LoadEdgeList reads a whitespace-separated edge list: two node IDs per
// line with an optional numeric weight in the third column. Blank lines
// and lines starting with '#' are skipped; nodes are created on first
// sight. Edge IDs are "e0", "e1", ... in input order.
func LoadEdgeList(r io.Reader, opts ...LoadOption) (*core.Graph, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	var gopts []core.GraphOption
	if o.directed {
		gopts = append(gopts, core.WithDirected())
	}
	g := core.New(gopts...)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	edgeNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("datasets: line %d: %w", lineNo, ErrBadEdgeLine)
		}
		from, to := fields[0], fields[1]
		weight := 1.0
		if len(fields) >= 3 {
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("datasets: line %d: weight %q: %w", lineNo, fields[2], ErrBadEdgeLine)
			}
			weight = w
		}

		for _, id := range []string{from, to} {
			if !g.HasNode(id) {
				if err := g.AddNode(core.NewNode(id)); err != nil {
					return nil, fmt.Errorf("datasets: line %d: %w", lineNo, err)
				}
			}
		}
		edge := &core.Edge{
			ID:     fmt.Sprintf("e%d", edgeNo),
			From:   from,
			To:     to,
			Weight: weight,
		}
		if err := g.AddEdge(edge); err != nil {
			return nil, fmt.Errorf("datasets: line %d: %w", lineNo, err)
		}
		edgeNo++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("datasets: read edge list: %w", err)
	}

	return g, nil
}
