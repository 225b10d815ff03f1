// Package baseline: sentinel errors and shared defaults.
package baseline

import "errors"

var (
	// ErrNilGraph is returned when a ranker receives a nil graph.
	ErrNilGraph = errors.New("baseline: nil graph")

	// ErrBadDamping is returned when the PageRank damping factor lies
	// outside (0,1).
	ErrBadDamping = errors.New("baseline: damping must be in (0,1)")
)

// Default PageRank parameters, used when callers pass zero values.
const (
	// DefaultDamping is the conventional PageRank damping factor.
	DefaultDamping = 0.85

	// DefaultTolerance is the power-iteration convergence threshold.
	DefaultTolerance = 1e-6
)
