// Package plant: configuration, result, and error types for path planting.
package plant

import (
	"errors"

	"github.com/pathlab/mirank/core"
)

// Sentinel errors for planting operations. All are caller errors: raised
// immediately and never retried.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("plant: graph is nil")

	// ErrEmptyGraph indicates planting into a graph with no nodes.
	ErrEmptyGraph = errors.New("plant: empty graph")

	// ErrBadConfig indicates an invalid planting configuration.
	ErrBadConfig = errors.New("plant: invalid config")

	// ErrShortTemplate indicates a heterogeneous template with < 2 types.
	ErrShortTemplate = errors.New("plant: path template needs at least 2 types")

	// ErrMissingType indicates the graph lacks a node type the template needs.
	ErrMissingType = errors.New("plant: required node type absent from graph")

	// ErrScarceNodes indicates too few typed nodes for a citation pattern.
	ErrScarceNodes = errors.New("plant: not enough typed nodes for pattern")

	// ErrUnknownPattern indicates an unrecognized citation pattern name.
	ErrUnknownPattern = errors.New("plant: unknown citation pattern")

	// ErrExhaustedEndpoints indicates that non-overlapping planting ran out
	// of unused endpoint pairs.
	ErrExhaustedEndpoints = errors.New("plant: not enough distinct endpoints")
)

// Signal is the requested MI signal strength of planted paths.
type Signal int

const (
	// Weak targets per-edge MI below 0.3.
	Weak Signal = iota

	// Medium targets per-edge MI in [0.3, 0.7].
	Medium

	// Strong targets per-edge MI above 0.7.
	Strong
)

// String returns the lowercase band name.
func (s Signal) String() string {
	switch s {
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	default:
		return "unknown"
	}
}

// Witness counts calibrating the per-edge MI bands. A spine edge with w
// witnesses wired across the whole spine lands near w/(w+4), so these
// constants place weak/medium/strong at roughly 0.2 / 0.5 / 0.8. Tunable:
// the contract is the ordering (validated by the monotonicity tests), not
// the exact values.
const (
	weakWitnesses   = 1
	mediumWitnesses = 4
	strongWitnesses = 16
)

// witnesses maps a Signal to its calibrated witness count.
func (s Signal) witnesses() int {
	switch s {
	case Strong:
		return strongWitnesses
	case Medium:
		return mediumWitnesses
	default:
		return weakWitnesses
	}
}

// edgeWeight is the planted edge weight per band, kept inside the band so
// weight-based baselines see the same ordering signal as the MI measure.
func (s Signal) edgeWeight() float64 {
	switch s {
	case Strong:
		return 0.85
	case Medium:
		return 0.5
	default:
		return 0.2
	}
}

// Config parameterizes ground-truth planting.
type Config struct {
	// NumPaths is the number of paths to plant (>= 1).
	NumPaths int

	// MinLength and MaxLength bound planted path length in hops
	// (1 <= MinLength <= MaxLength).
	MinLength int
	MaxLength int

	// Signal is the target MI band.
	Signal Signal

	// AllowOverlap permits planted paths to share endpoint nodes.
	AllowOverlap bool

	// Seed drives all random choices; identical (graph, config) inputs with
	// the same seed produce bit-identical output.
	Seed int64

	// SourceNodes and TargetNodes optionally constrain endpoints; empty
	// slices mean "any existing node".
	SourceNodes []string
	TargetNodes []string
}

// validate reports the first violated precondition.
func (c Config) validate() error {
	switch {
	case c.NumPaths < 1:
		return errors.New("plant: NumPaths must be >= 1: invalid config")
	case c.MinLength < 1:
		return errors.New("plant: MinLength must be >= 1: invalid config")
	case c.MaxLength < c.MinLength:
		return errors.New("plant: MaxLength must be >= MinLength: invalid config")
	default:
		return nil
	}
}

// Meta summarizes what a planting call changed.
type Meta struct {
	// NodesAdded and EdgesAdded count graph augmentation.
	NodesAdded int
	EdgesAdded int

	// MeanMI is the average geometric-mean MI of the planted paths,
	// computed against the final (post-planting) graph state.
	MeanMI float64
}

// Result is the outcome of a planting call.
type Result struct {
	// Paths are the planted paths in planting order.
	Paths []*core.Path

	// Relevance maps path key to its relevance score (the path's
	// geometric-mean MI in the final graph). Ground truth for evaluation.
	Relevance map[string]float64

	// Meta captures augmentation counts and the mean planted MI.
	Meta Meta
}

// CitationPattern names a citation-network planting template.
type CitationPattern string

// Supported citation patterns over typed scholarly graphs.
const (
	// DirectCitationChain is Work -> Work -> Work citation chaining.
	DirectCitationChain CitationPattern = "direct-citation-chain"

	// CoCitationBridge joins two works both cited by a bridging work.
	CoCitationBridge CitationPattern = "co-citation-bridge"

	// BibliographicCoupling joins two works citing the same work.
	BibliographicCoupling CitationPattern = "bibliographic-coupling"

	// AuthorMediated joins two works through a shared author.
	AuthorMediated CitationPattern = "author-mediated"

	// VenueMediated joins two works through a shared venue.
	VenueMediated CitationPattern = "venue-mediated"
)

// Node type labels used by heterogeneous and citation planting.
const (
	TypeWork   = "Work"
	TypeAuthor = "Author"
	TypeSource = "Source"
)

// Edge type labels planted by citation patterns.
const (
	edgeCites     = "cites"
	edgeAuthored  = "authored"
	edgePublished = "published-in"
)
