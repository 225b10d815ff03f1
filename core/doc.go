// Package core defines the central Graph, Node, Edge, and Path types used by
// every ranking, planting, and evaluation package in this module.
//
// What
//
//   - Node: string identity plus an open attribute bag (heterogeneous graphs
//     store the node kind under the "type" attribute - Work, Author, Source...).
//   - Edge: unique ID, From/To endpoints, optional float64 Weight (strength in
//     [0,1] by convention) and an optional Type label.
//   - Graph: node/edge catalogs plus an incidence index, directed or undirected
//     at construction time via WithDirected().
//   - Path: an ordered node sequence with the connecting edges, validated so
//     that edge i joins node i to node i+1.
//
// Determinism
//
//	Nodes() and Edges() return insertion-order snapshots, and NeighborIDs()
//	returns lexicographically sorted IDs, so every traversal built on top of
//	core is fully reproducible without extra sorting at the call site.
//
// Concurrency
//
//	core carries no locks. The supported discipline is single-writer during
//	graph construction and planting, many-reader during ranking and
//	evaluation. Callers that need concurrent planting must plant into
//	independent Clone() copies.
//
// Errors
//
//	ErrEmptyNodeID     - node ID is the empty string.
//	ErrEmptyEdgeID     - edge ID is the empty string.
//	ErrDuplicateEdgeID - edge ID already present in the graph.
//	ErrUnknownEndpoint - edge references a node that was never added.
//	ErrNodeNotFound    - operation referenced a non-existent node.
//	ErrMalformedPath   - path node/edge sequences are inconsistent.
package core
