// Package baseline: PageRank-backed ranker.
package baseline

import (
	"sort"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/pathlab/mirank/core"
	"github.com/pathlab/mirank/rank"
)

// PageRankBased returns a ranker scoring each path by the summed PageRank
// mass of its nodes. damping<=0 selects DefaultDamping and tol<=0 selects
// DefaultTolerance; a damping outside (0,1) is rejected. The PageRank
// vector is computed once per invocation over the whole graph, then shared
// across every candidate path.
//
// Undirected graphs are mirrored into both edge directions before the
// power iteration, the standard reduction.
func PageRankBased(damping, tol float64) rank.Ranker {
	return func(g *core.Graph, paths []*core.Path) ([]rank.Scored, error) {
		if g == nil {
			return nil, ErrNilGraph
		}
		d := damping
		if d <= 0 {
			d = DefaultDamping
		}
		if d >= 1 {
			return nil, ErrBadDamping
		}
		t := tol
		if t <= 0 {
			t = DefaultTolerance
		}

		pr := pageRankByID(g, d, t)

		scored := make([]rank.Scored, 0, len(paths))
		for _, p := range paths {
			if p == nil {
				continue
			}
			var sum float64
			for _, n := range p.Nodes {
				sum += pr[n.ID]
			}
			scored = append(scored, rank.Scored{Path: p, Score: sum})
		}
		rank.SortScored(scored)

		return scored, nil
	}
}

// pageRankByID runs PageRank over g and returns the mass per node ID.
func pageRankByID(g *core.Graph, damping, tol float64) map[string]float64 {
	// 1. Stable string->int64 ID mapping. Sorted so index assignment never
	//    depends on insertion history.
	ids := make([]string, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	sort.Strings(ids)
	index := make(map[string]int64, len(ids))
	for i, id := range ids {
		index[id] = int64(i)
	}

	// 2. Mirror into a simple.DirectedGraph; undirected edges go both ways.
	dg := simple.NewDirectedGraph()
	for i := range ids {
		dg.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges() {
		from, to := index[e.From], index[e.To]
		if from == to {
			continue // self loops carry no rank in this reduction
		}
		dg.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
		if !g.Directed() {
			dg.SetEdge(simple.Edge{F: simple.Node(to), T: simple.Node(from)})
		}
	}

	// 3. Power iteration, then translate back to string IDs.
	masses := network.PageRank(dg, damping, tol)
	pr := make(map[string]float64, len(ids))
	for id, idx := range index {
		pr[id] = masses[idx]
	}

	return pr
}
