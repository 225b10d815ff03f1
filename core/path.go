// Package core: the Path value type shared by ranking, planting, and
// evaluation code.
package core

import (
	"fmt"
	"strings"
)

// pathKeySep joins node IDs into a stable path identity.
const pathKeySep = "→"

// Path is an ordered sequence of nodes (length >= 1) together with the edges
// connecting consecutive nodes (length = nodes-1). Paths are value objects:
// once built they are never mutated.
type Path struct {
	// Nodes is the visited node sequence, source first.
	Nodes []*Node

	// Edges connects Nodes[i] to Nodes[i+1].
	Edges []*Edge

	// TotalWeight is the sum of edge weights, derived at construction.
	TotalWeight float64
}

// NewPath builds a Path over the given sequences and derives TotalWeight.
// It does not validate consistency; call Validate for that.
func NewPath(nodes []*Node, edges []*Edge) *Path {
	p := &Path{Nodes: nodes, Edges: edges}
	for _, e := range edges {
		p.TotalWeight += e.Weight
	}

	return p
}

// Len returns the number of edges (hops) in the path.
func (p *Path) Len() int { return len(p.Edges) }

// Key returns the stable identity of the path: node IDs joined with "→".
// Rankings, relevance maps, and tie-breaking all key on this value.
func (p *Path) Key() string {
	ids := make([]string, len(p.Nodes))
	for i, n := range p.Nodes {
		ids[i] = n.ID
	}

	return strings.Join(ids, pathKeySep)
}

// Validate checks internal consistency against graph g:
// node and edge counts line up, every node and edge exists in g, and edge i
// joins node i to node i+1 (orientation enforced when g is directed).
// Returns ErrMalformedPath (wrapped with position detail) on the first
// violation. Complexity: O(len).
func (p *Path) Validate(g *Graph) error {
	// 1. Shape: n nodes need exactly n-1 edges.
	if len(p.Nodes) == 0 {
		return fmt.Errorf("core: empty node sequence: %w", ErrMalformedPath)
	}
	if len(p.Edges) != len(p.Nodes)-1 {
		return fmt.Errorf("core: %d nodes with %d edges: %w", len(p.Nodes), len(p.Edges), ErrMalformedPath)
	}

	// 2. Membership and linkage.
	for i, n := range p.Nodes {
		if !g.HasNode(n.ID) {
			return fmt.Errorf("core: node %q at position %d: %w", n.ID, i, ErrNodeNotFound)
		}
	}
	for i, e := range p.Edges {
		if _, ok := g.Edge(e.ID); !ok {
			return fmt.Errorf("core: edge %q at position %d: %w", e.ID, i, ErrMalformedPath)
		}
		u, v := p.Nodes[i].ID, p.Nodes[i+1].ID
		forward := e.From == u && e.To == v
		backward := e.From == v && e.To == u
		if g.Directed() && !forward {
			return fmt.Errorf("core: edge %q does not go %s→%s: %w", e.ID, u, v, ErrMalformedPath)
		}
		if !g.Directed() && !forward && !backward {
			return fmt.Errorf("core: edge %q does not join %s and %s: %w", e.ID, u, v, ErrMalformedPath)
		}
	}

	return nil
}
