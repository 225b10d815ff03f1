// Package core: type declarations, sentinel errors, and the Graph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrEmptyEdgeID indicates that the provided Edge has an empty ID.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrDuplicateEdgeID indicates that an edge with the same ID already exists.
	ErrDuplicateEdgeID = errors.New("core: duplicate edge ID")

	// ErrUnknownEndpoint indicates an edge referencing a node absent from the graph.
	ErrUnknownEndpoint = errors.New("core: edge endpoint not in graph")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrMalformedPath indicates node/edge sequences that do not line up.
	ErrMalformedPath = errors.New("core: malformed path")
)

// AttrType is the reserved attribute key holding a node's kind label
// (e.g. "Work", "Author", "Source") in heterogeneous graphs.
const AttrType = "type"

// Node represents a vertex with open, caller-extensible attributes.
//
// ID uniquely identifies the Node within its Graph and is immutable.
// Attrs stores arbitrary key-value data; node kinds are data (the "type"
// attribute), never Go subtypes.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Attrs stores arbitrary user data. Never nil after AddNode.
	Attrs map[string]any
}

// NewNode returns a Node with the given ID and an empty attribute bag.
func NewNode(id string) *Node {
	return &Node{ID: id, Attrs: make(map[string]any)}
}

// NewTypedNode returns a Node with the given ID and "type" attribute set.
func NewTypedNode(id, nodeType string) *Node {
	n := NewNode(id)
	n.Attrs[AttrType] = nodeType

	return n
}

// Type returns the node's "type" attribute, or "" when unset.
func (n *Node) Type() string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	if t, ok := n.Attrs[AttrType].(string); ok {
		return t
	}

	return ""
}

// SetType stores the node's "type" attribute.
func (n *Node) SetType(t string) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]any)
	}
	n.Attrs[AttrType] = t
}

// Float returns the named attribute as a float64. The ok result reports
// whether the attribute exists and is numeric (float64 or int).
func (n *Node) Float(key string) (float64, bool) {
	if n == nil || n.Attrs == nil {
		return 0, false
	}
	switch v := n.Attrs[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// Edge represents a connection between two nodes.
//
// Weight defaults to 0 and is interpreted as strength/similarity in [0,1]
// where present. In an undirected Graph the (From,To) orientation is kept on
// the record but traversal treats the edge as bidirectional.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Weight is the optional strength of the edge.
	Weight float64

	// Type is an optional relation label (e.g. "cites", "authored").
	Type string
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected makes the graph directed: neighbor queries follow outgoing
// edges only unless the caller explicitly asks for both directions.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// Graph is the in-memory graph owning node and edge catalogs plus an
// incidence index (node ID -> incident edge IDs) maintained on AddEdge.
type Graph struct {
	directed bool

	nodes map[string]*Node
	edges map[string]*Edge

	// insertion order for deterministic snapshots
	nodeOrder []string
	edgeOrder []string

	// incidence[nodeID][edgeID] = struct{}{}
	incidence map[string]map[string]struct{}
}

// New creates an empty Graph. Undirected by default; pass WithDirected()
// for a directed graph. Complexity: O(1).
func New(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*Edge),
		incidence: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether the graph was constructed as directed.
func (g *Graph) Directed() bool { return g.directed }
