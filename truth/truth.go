// Package truth: strategy implementations.
package truth

import (
	"fmt"

	"github.com/pathlab/mirank/core"
	"github.com/pathlab/mirank/rank"
)

// AttributeImportancePaths scores each candidate path by the mean of its
// nodes' importance, attenuated by the product of edge weights along the
// path. Node importance is the numeric attribute attrKey when present,
// otherwise the node's degree. Edges with zero weight (the "unweighted"
// default) do not attenuate.
//
// The result is ordered best first with the shared deterministic
// tie-breaking. The graph is never mutated.
func AttributeImportancePaths(g *core.Graph, paths []*core.Path, attrKey string) ([]rank.Scored, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	scored := make([]rank.Scored, 0, len(paths))
	for _, p := range paths {
		if p == nil || len(p.Nodes) == 0 {
			continue
		}

		// 1. Mean node importance.
		var sum float64
		for _, n := range p.Nodes {
			if v, ok := n.Float(attrKey); ok {
				sum += v

				continue
			}
			if d, ok := g.Degree(n.ID); ok {
				sum += float64(d)
			}
		}
		mean := sum / float64(len(p.Nodes))

		// 2. Attenuate by edge weights; zero weight means "no weight".
		atten := 1.0
		for _, e := range p.Edges {
			if e.Weight > 0 {
				atten *= e.Weight
			}
		}

		scored = append(scored, rank.Scored{Path: p, Score: mean * atten})
	}
	rank.SortScored(scored)

	return scored, nil
}

// BetweenGraphPaths enumerates every simple path from any source to any
// target (multi-seed) up to maxLength hops and scores each by inverse
// length 1/(1+hops), so shorter connections rank higher. Duplicate paths
// discovered from several seeds are reported once.
//
// Errors: ErrNilGraph, ErrNoEndpoints, and ErrNodeNotFound (wrapped with
// the ID) for endpoints absent from the graph.
func BetweenGraphPaths(g *core.Graph, sources, targets []string, maxLength int) ([]rank.Scored, error) {
	// 1. Preconditions.
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(sources) == 0 || len(targets) == 0 {
		return nil, ErrNoEndpoints
	}
	for _, id := range append(append([]string(nil), sources...), targets...) {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("truth: endpoint %q: %w", id, ErrNodeNotFound)
		}
	}

	// 2. Enumerate per endpoint pair, deduplicating on path key.
	seen := make(map[string]struct{})
	var scored []rank.Scored
	for _, src := range sources {
		for _, dst := range targets {
			if src == dst {
				continue
			}
			paths, err := rank.EnumeratePaths(g, src, dst, maxLength, rank.OutgoingOnly)
			if err != nil {
				return nil, err
			}
			for _, p := range paths {
				key := p.Key()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				scored = append(scored, rank.Scored{Path: p, Score: 1.0 / float64(1+p.Len())})
			}
		}
	}
	rank.SortScored(scored)

	return scored, nil
}

// EgoNetwork returns the induced subgraph of every node within radius hops
// of center (direction-blind), preserving the graph's directedness flag.
// Radius 0 yields just the center node.
func EgoNetwork(g *core.Graph, center string, radius int) (*core.Graph, error) {
	// 1. Preconditions.
	if g == nil {
		return nil, ErrNilGraph
	}
	if radius < 0 {
		return nil, ErrBadRadius
	}
	if !g.HasNode(center) {
		return nil, fmt.Errorf("truth: center %q: %w", center, ErrNodeNotFound)
	}

	// 2. Breadth-first ball of the requested radius.
	dist := map[string]int{center: 0}
	frontier := []string{center}
	for depth := 0; depth < radius && len(frontier) > 0; depth++ {
		var next []string
		for _, id := range frontier {
			nbs, _ := g.NeighborIDsBoth(id)
			for _, nid := range nbs {
				if _, known := dist[nid]; known {
					continue
				}
				dist[nid] = depth + 1
				next = append(next, nid)
			}
		}
		frontier = next
	}

	// 3. Induce the subgraph: member nodes plus edges with both ends inside.
	var opts []core.GraphOption
	if g.Directed() {
		opts = append(opts, core.WithDirected())
	}
	ego := core.New(opts...)
	for _, n := range g.Nodes() {
		if _, in := dist[n.ID]; in {
			if err := ego.AddNode(n); err != nil {
				return nil, err
			}
		}
	}
	for _, e := range g.Edges() {
		if _, inFrom := dist[e.From]; !inFrom {
			continue
		}
		if _, inTo := dist[e.To]; !inTo {
			continue
		}
		if err := ego.AddEdge(e); err != nil {
			return nil, err
		}
	}

	return ego, nil
}

// EgoPaths ranks the simple paths from center to every other member of its
// ego network, scored by 1/(1+hops): the oracle prefers tight neighborhood
// structure. maxLength caps enumeration inside the ego net.
func EgoPaths(g *core.Graph, center string, radius, maxLength int) ([]rank.Scored, error) {
	ego, err := EgoNetwork(g, center, radius)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var scored []rank.Scored
	for _, n := range ego.Nodes() {
		if n.ID == center {
			continue
		}
		paths, err := rank.EnumeratePaths(ego, center, n.ID, maxLength, rank.OutgoingOnly)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			key := p.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			scored = append(scored, rank.Scored{Path: p, Score: 1.0 / float64(1+p.Len())})
		}
	}
	rank.SortScored(scored)

	return scored, nil
}

// Compute dispatches to the strategy selected by t. The experiment runner
// uses it when an explicit relevance map is not supplied.
func Compute(g *core.Graph, t Type, cfg ComputeConfig) ([]rank.Scored, error) {
	switch t {
	case AttributeImportance:
		return AttributeImportancePaths(g, cfg.Paths, cfg.AttrKey)
	case BetweenGraph:
		return BetweenGraphPaths(g, cfg.Sources, cfg.Targets, cfg.MaxLength)
	case Ego:
		return EgoPaths(g, cfg.Center, cfg.Radius, cfg.MaxLength)
	default:
		return nil, fmt.Errorf("truth: type %d: %w", t, ErrUnknownType)
	}
}
