// Package core: graph cloning.
//
// The experiment runner plants fresh ground-truth structure into an
// independent copy of the input graph on every trial, so Clone must be deep
// enough that planting into the copy never mutates the original.
package core

// Clone returns an independent deep copy of the graph: fresh Node and Edge
// records, shallow-copied attribute bags, and a rebuilt incidence index.
// Insertion order is preserved so snapshots of the clone match the original.
// Complexity: O(V + E + A) where A is the total number of attributes.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		directed:  g.directed,
		nodes:     make(map[string]*Node, len(g.nodes)),
		edges:     make(map[string]*Edge, len(g.edges)),
		nodeOrder: append([]string(nil), g.nodeOrder...),
		edgeOrder: append([]string(nil), g.edgeOrder...),
		incidence: make(map[string]map[string]struct{}, len(g.incidence)),
	}

	// Copy nodes with their attribute bags.
	for id, n := range g.nodes {
		attrs := make(map[string]any, len(n.Attrs))
		for k, v := range n.Attrs {
			attrs[k] = v
		}
		c.nodes[id] = &Node{ID: n.ID, Attrs: attrs}
	}

	// Copy edges and rebuild the incidence index.
	for id, n := range g.incidence {
		c.incidence[id] = make(map[string]struct{}, len(n))
	}
	for id, e := range g.edges {
		ce := *e
		c.edges[id] = &ce
		c.incidence[e.From][id] = struct{}{}
		c.incidence[e.To][id] = struct{}{}
	}

	return c
}
