// Package truth: strategy enum, configuration, and sentinel errors.
package truth

import (
	"errors"

	"github.com/pathlab/mirank/core"
)

// Sentinel errors for ground-truth computation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("truth: graph is nil")

	// ErrNodeNotFound indicates a referenced node absent from the graph.
	ErrNodeNotFound = errors.New("truth: node not found in graph")

	// ErrBadRadius indicates a negative ego-network radius.
	ErrBadRadius = errors.New("truth: radius must be >= 0")

	// ErrNoEndpoints indicates empty source or target sets.
	ErrNoEndpoints = errors.New("truth: endpoint sets must be non-empty")

	// ErrUnknownType indicates an unrecognized ground-truth strategy.
	ErrUnknownType = errors.New("truth: unknown ground-truth type")
)

// Type selects a ground-truth strategy.
type Type int

const (
	// AttributeImportance propagates a node attribute along each path.
	AttributeImportance Type = iota

	// BetweenGraph enumerates all paths between two endpoint sets.
	BetweenGraph

	// Ego ranks paths inside the radius-limited neighborhood of a center
	// node.
	Ego
)

// String returns the strategy name.
func (t Type) String() string {
	switch t {
	case AttributeImportance:
		return "attribute-importance"
	case BetweenGraph:
		return "between-graph"
	case Ego:
		return "ego-network"
	default:
		return "unknown"
	}
}

// ComputeConfig parameterizes Compute. Only the fields relevant to the
// chosen Type are consulted.
type ComputeConfig struct {
	// Paths is the candidate pool for AttributeImportance.
	Paths []*core.Path

	// AttrKey names the importance attribute (AttributeImportance).
	AttrKey string

	// Sources and Targets are the endpoint sets (BetweenGraph).
	Sources []string
	Targets []string

	// Center and Radius bound the ego network (Ego).
	Center string
	Radius int

	// MaxLength caps enumerated path length (BetweenGraph, EgoNetwork).
	MaxLength int
}
