// Package rank: sentinel errors, options, and result types for path ranking.
package rank

import (
	"errors"
	"math"
	"sort"

	"github.com/pathlab/mirank/core"
)

// Sentinel errors returned by the ranking entry points.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("rank: graph is nil")

	// ErrNodeNotFound indicates that the start or end node is absent.
	ErrNodeNotFound = errors.New("rank: node not found in graph")

	// ErrBadLambda indicates a negative length-penalty coefficient.
	ErrBadLambda = errors.New("rank: lambda must be >= 0")

	// ErrBadLimit indicates MaxLength or MaxPaths below 1.
	ErrBadLimit = errors.New("rank: length and path limits must be >= 1")
)

// Mode selects the neighborhood policy on directed graphs.
type Mode int

const (
	// OutgoingOnly follows and overlaps outgoing edges only (directed default).
	OutgoingOnly Mode = iota

	// BothDirections ignores edge orientation for traversal and MI overlap.
	BothDirections
)

// Default option values.
const (
	// DefaultMaxLength caps enumerated paths at five hops.
	DefaultMaxLength = 5

	// DefaultMaxPaths caps the returned ranking at one hundred paths.
	DefaultMaxPaths = 100
)

// Option configures RankPaths. Use with RankPaths(g, start, end, opts...).
type Option func(*Options)

// Options holds configurable parameters for path ranking.
type Options struct {
	// Lambda is the length-penalty coefficient (>= 0).
	// 0 ranks purely by geometric-mean MI.
	Lambda float64

	// MaxLength caps enumerated paths at this many hops.
	MaxLength int

	// MaxPaths caps the number of returned paths.
	MaxPaths int

	// ShortestOnly restricts scoring to paths of minimum discovered length.
	ShortestOnly bool

	// Mode is the traversal/neighborhood policy for directed graphs.
	Mode Mode
}

// DefaultOptions returns the baseline configuration:
// lambda 0, five hops, one hundred paths, all lengths, outgoing-only.
func DefaultOptions() Options {
	return Options{
		Lambda:    0,
		MaxLength: DefaultMaxLength,
		MaxPaths:  DefaultMaxPaths,
	}
}

// WithLambda sets the length-penalty coefficient.
func WithLambda(lambda float64) Option {
	return func(o *Options) { o.Lambda = lambda }
}

// WithMaxLength caps enumerated paths at n hops.
func WithMaxLength(n int) Option {
	return func(o *Options) { o.MaxLength = n }
}

// WithMaxPaths caps the returned ranking at n paths.
func WithMaxPaths(n int) Option {
	return func(o *Options) { o.MaxPaths = n }
}

// WithShortestOnly scores only paths of minimum discovered length,
// layering classic shortest-path semantics under the MI scoring.
func WithShortestOnly() Option {
	return func(o *Options) { o.ShortestOnly = true }
}

// WithBothDirections makes traversal and MI overlap ignore edge orientation
// on directed graphs. No effect on undirected graphs.
func WithBothDirections() Option {
	return func(o *Options) { o.Mode = BothDirections }
}

// Scored pairs a path with its ranking score and aggregated MI quality.
type Scored struct {
	// Path is the ranked path.
	Path *core.Path

	// Score is GeometricMeanMI - lambda * Path.Len().
	Score float64

	// GeometricMeanMI is the length-independent quality of the path.
	GeometricMeanMI float64
}

// Result wraps a ranking. An empty Result (Found() == false) is the normal
// "no path" outcome, distinct from an error.
type Result struct {
	// Paths is the ranking, best first. Nil or empty when no path exists.
	Paths []Scored
}

// Found reports whether at least one path was discovered.
func (r *Result) Found() bool { return r != nil && len(r.Paths) > 0 }

// Best returns the top-ranked path. The ok result is false on an empty Result.
func (r *Result) Best() (Scored, bool) {
	if !r.Found() {
		return Scored{}, false
	}

	return r.Paths[0], true
}

// Ranker is the shared method signature: re-rank a candidate path pool over
// a graph. MIRanker and every baseline ranker satisfy it, so methods are
// first-class values in experiment configurations.
type Ranker func(g *core.Graph, paths []*core.Path) ([]Scored, error)

// SortScored orders s in place: score descending, with NaN scores last;
// ties broken by path length ascending, then path key ascending.
// Every ranker in this module uses it so output order is reproducible.
func SortScored(s []Scored) {
	sort.SliceStable(s, func(i, j int) bool {
		si, sj := s[i].Score, s[j].Score
		ni, nj := math.IsNaN(si), math.IsNaN(sj)
		switch {
		case ni != nj:
			return nj // NaN sinks
		case !ni && si != sj:
			return si > sj
		}
		if li, lj := s[i].Path.Len(), s[j].Path.Len(); li != lj {
			return li < lj
		}

		return s[i].Path.Key() < s[j].Path.Key()
	})
}
