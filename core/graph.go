// Package core: Graph mutation and query methods.
//
// All operations are deterministic: snapshots follow insertion order and
// neighbor IDs are returned sorted lexicographically ascending.
package core

import (
	"fmt"
	"sort"
)

// AddNode inserts node n into the graph.
// Returns ErrEmptyNodeID for an empty ID; inserting an already-present ID is
// a no-op (idempotent). The node's attribute bag is initialized when nil.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n *Node) error {
	// 1. Validate input.
	if n == nil || n.ID == "" {
		return ErrEmptyNodeID
	}

	// 2. Idempotent insert.
	if _, exists := g.nodes[n.ID]; exists {
		return nil
	}
	if n.Attrs == nil {
		n.Attrs = make(map[string]any)
	}
	g.nodes[n.ID] = n
	g.nodeOrder = append(g.nodeOrder, n.ID)
	g.incidence[n.ID] = make(map[string]struct{})

	return nil
}

// AddEdge inserts edge e into the graph and indexes it on both endpoints.
// Returns ErrEmptyEdgeID, ErrDuplicateEdgeID, or ErrUnknownEndpoint (wrapped
// with the offending node ID) when the edge references a node never added.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e *Edge) error {
	// 1. Validate identity.
	if e == nil || e.ID == "" {
		return ErrEmptyEdgeID
	}
	if _, exists := g.edges[e.ID]; exists {
		return fmt.Errorf("core: add edge %q: %w", e.ID, ErrDuplicateEdgeID)
	}

	// 2. Both endpoints must already exist.
	if _, ok := g.nodes[e.From]; !ok {
		return fmt.Errorf("core: add edge %q: node %q: %w", e.ID, e.From, ErrUnknownEndpoint)
	}
	if _, ok := g.nodes[e.To]; !ok {
		return fmt.Errorf("core: add edge %q: node %q: %w", e.ID, e.To, ErrUnknownEndpoint)
	}

	// 3. Store and index on both endpoints (direction is applied at query time).
	g.edges[e.ID] = e
	g.edgeOrder = append(g.edgeOrder, e.ID)
	g.incidence[e.From][e.ID] = struct{}{}
	g.incidence[e.To][e.ID] = struct{}{}

	return nil
}

// HasNode reports whether a node with the given ID exists. Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// Node returns the node with the given ID. The ok result reports presence;
// a missing node is a normal outcome, never an error.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// Edge returns the edge with the given ID. The ok result reports presence.
func (g *Graph) Edge(id string) (*Edge, bool) {
	e, ok := g.edges[id]

	return e, ok
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns an insertion-order snapshot of all nodes.
// The slice is fresh on every call; the pointed-to nodes are live.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}

	return out
}

// Edges returns an insertion-order snapshot of all edges.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, g.edges[id])
	}

	return out
}

// NodesOfType returns all nodes whose "type" attribute equals t,
// in insertion order. Complexity: O(V).
func (g *Graph) NodesOfType(t string) []*Node {
	var out []*Node
	for _, id := range g.nodeOrder {
		if n := g.nodes[id]; n.Type() == t {
			out = append(out, n)
		}
	}

	return out
}

// NeighborIDs returns the unique node IDs adjacent to id, sorted
// lexicographically ascending. On a directed graph only targets of outgoing
// edges are included; use NeighborIDsBoth to ignore direction.
// The ok result is false when the node does not exist - a missing node is a
// normal outcome on hot traversal paths, never an error.
// Complexity: O(d log d) for d incident edges.
func (g *Graph) NeighborIDs(id string) ([]string, bool) {
	return g.neighborIDs(id, g.directed)
}

// NeighborIDsBoth returns the unique node IDs adjacent to id regardless of
// edge direction, sorted ascending. The ok result is false for a missing node.
func (g *Graph) NeighborIDsBoth(id string) ([]string, bool) {
	return g.neighborIDs(id, false)
}

// neighborIDs collects adjacent node IDs; respectDirection limits a directed
// graph to outgoing edges.
func (g *Graph) neighborIDs(id string, respectDirection bool) ([]string, bool) {
	// 1. Missing node is "absent", not an error.
	inc, ok := g.incidence[id]
	if !ok {
		return nil, false
	}

	// 2. Collect unique adjacent IDs under the direction policy.
	set := make(map[string]struct{}, len(inc))
	for eid := range inc {
		e := g.edges[eid]
		switch {
		case e.From == id:
			set[e.To] = struct{}{}
		case e.To == id && !respectDirection:
			set[e.From] = struct{}{}
		}
	}

	// 3. Sort for reproducible iteration.
	out := make([]string, 0, len(set))
	for nid := range set {
		out = append(out, nid)
	}
	sort.Strings(out)

	return out, true
}

// Degree returns the number of incident edges of id (out-degree plus
// in-degree on directed graphs). The ok result is false for a missing node.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, bool) {
	inc, ok := g.incidence[id]
	if !ok {
		return 0, false
	}

	return len(inc), true
}

// EdgeBetween returns an edge leading from u to v under the graph's
// direction policy (any orientation on undirected graphs). When parallel
// edges exist the one with the smallest ID is returned, keeping traversals
// reproducible. The ok result is false when no such edge exists.
// Complexity: O(deg(u)).
func (g *Graph) EdgeBetween(u, v string) (*Edge, bool) {
	return g.edgeBetween(u, v, g.directed)
}

// EdgeBetweenBoth returns an edge joining u and v regardless of direction,
// smallest ID first. The ok result is false when no such edge exists.
func (g *Graph) EdgeBetweenBoth(u, v string) (*Edge, bool) {
	return g.edgeBetween(u, v, false)
}

func (g *Graph) edgeBetween(u, v string, respectDirection bool) (*Edge, bool) {
	inc, ok := g.incidence[u]
	if !ok {
		return nil, false
	}
	var best *Edge
	for eid := range inc {
		e := g.edges[eid]
		forward := e.From == u && e.To == v
		backward := e.From == v && e.To == u
		if forward || (backward && !respectDirection) {
			if best == nil || e.ID < best.ID {
				best = e
			}
		}
	}

	return best, best != nil
}

// Adjacent reports whether at least one edge joins u and v, in either
// orientation. Complexity: O(min(deg(u), deg(v))).
func (g *Graph) Adjacent(u, v string) bool {
	iu, ok := g.incidence[u]
	if !ok {
		return false
	}
	iv, ok := g.incidence[v]
	if !ok {
		return false
	}
	if len(iv) < len(iu) {
		iu = iv
		u, v = v, u
	}
	for eid := range iu {
		e := g.edges[eid]
		if (e.From == u && e.To == v) || (e.From == v && e.To == u) {
			return true
		}
	}

	return false
}
