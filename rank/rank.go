// Package rank: simple-path enumeration and the RankPaths entry point.
package rank

import (
	"fmt"

	"github.com/pathlab/mirank/core"
)

// enumerationSlack bounds enumeration work: the walk stops after discovering
// MaxPaths * enumerationSlack candidate paths, keeping worst-case cost
// proportional to the requested output size.
const enumerationSlack = 16

// RankPaths enumerates simple paths (no repeated nodes) from startID to
// endID up to MaxLength hops, scores each by
// geometricMeanMI - lambda * length, and returns the top MaxPaths by score
// descending.
//
// A disconnected pair within MaxLength is a normal outcome: the returned
// Result is empty (Found() == false) and the error is nil. Errors are
// reserved for precondition violations.
//
// Errors:
//   - ErrNilGraph when g is nil.
//   - ErrBadLambda when lambda < 0.
//   - ErrBadLimit when MaxLength or MaxPaths < 1.
//   - ErrNodeNotFound (wrapped with the ID) when startID or endID is absent.
func RankPaths(g *core.Graph, startID, endID string, opts ...Option) (*Result, error) {
	// 1. Validate graph and options.
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Lambda < 0 {
		return nil, ErrBadLambda
	}
	if o.MaxLength < 1 || o.MaxPaths < 1 {
		return nil, ErrBadLimit
	}
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("rank: start %q: %w", startID, ErrNodeNotFound)
	}
	if !g.HasNode(endID) {
		return nil, fmt.Errorf("rank: end %q: %w", endID, ErrNodeNotFound)
	}

	// 2. Enumerate candidate paths.
	paths := enumerate(g, startID, endID, o.MaxLength, o.Mode, o.MaxPaths*enumerationSlack)
	if len(paths) == 0 {
		return &Result{}, nil
	}

	// 3. Shortest-only: keep minimum discovered length.
	if o.ShortestOnly {
		minLen := paths[0].Len()
		for _, p := range paths[1:] {
			if p.Len() < minLen {
				minLen = p.Len()
			}
		}
		kept := paths[:0]
		for _, p := range paths {
			if p.Len() == minLen {
				kept = append(kept, p)
			}
		}
		paths = kept
	}

	// 4. Score and order.
	scored := make([]Scored, 0, len(paths))
	for _, p := range paths {
		gm := GeometricMeanMI(g, p, o.Mode)
		scored = append(scored, Scored{
			Path:            p,
			Score:           gm - o.Lambda*float64(p.Len()),
			GeometricMeanMI: gm,
		})
	}
	SortScored(scored)

	// 5. Truncate to the requested size.
	if len(scored) > o.MaxPaths {
		scored = scored[:o.MaxPaths]
	}

	return &Result{Paths: scored}, nil
}

// EnumeratePaths returns every simple path from startID to endID up to
// maxLength hops, in deterministic depth-first discovery order. It shares
// RankPaths' validation but applies no scoring and no output cap beyond the
// internal work bound. Useful as an oracle for between-graph ground truth.
func EnumeratePaths(g *core.Graph, startID, endID string, maxLength int, mode Mode) ([]*core.Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if maxLength < 1 {
		return nil, ErrBadLimit
	}
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("rank: start %q: %w", startID, ErrNodeNotFound)
	}
	if !g.HasNode(endID) {
		return nil, fmt.Errorf("rank: end %q: %w", endID, ErrNodeNotFound)
	}

	return enumerate(g, startID, endID, maxLength, mode, 0), nil
}

// pathWalker carries DFS state during enumeration.
type pathWalker struct {
	g         *core.Graph
	endID     string
	maxLength int
	mode      Mode
	cap       int // 0 = unbounded

	visited map[string]bool
	nodes   []*core.Node
	edges   []*core.Edge
	found   []*core.Path
}

// enumerate runs the bounded depth-first walk. Neighbor expansion follows
// core's sorted NeighborIDs contract, so discovery order is reproducible.
func enumerate(g *core.Graph, startID, endID string, maxLength int, mode Mode, pathCap int) []*core.Path {
	start, _ := g.Node(startID)
	w := &pathWalker{
		g:         g,
		endID:     endID,
		maxLength: maxLength,
		mode:      mode,
		cap:       pathCap,
		visited:   map[string]bool{startID: true},
		nodes:     []*core.Node{start},
	}
	w.walk(startID, 0)

	return w.found
}

// walk extends the current path from node id at the given depth.
func (w *pathWalker) walk(id string, depth int) {
	// 1. Work bound reached: stop expanding everywhere.
	if w.cap > 0 && len(w.found) >= w.cap {
		return
	}

	// 2. Target reached (depth > 0 so start==end yields no trivial path).
	//    Simple paths cannot leave and re-enter the target, so stop here.
	if id == w.endID && depth > 0 {
		w.record()

		return
	}

	// 3. Depth limit.
	if depth == w.maxLength {
		return
	}

	// 4. Expand neighbors in sorted order.
	nbs, ok := w.neighborIDs(id)
	if !ok {
		return
	}
	for _, nid := range nbs {
		if w.visited[nid] {
			continue
		}
		e, ok := w.edgeTo(id, nid)
		if !ok {
			continue
		}
		n, _ := w.g.Node(nid)

		w.visited[nid] = true
		w.nodes = append(w.nodes, n)
		w.edges = append(w.edges, e)

		w.walk(nid, depth+1)

		w.edges = w.edges[:len(w.edges)-1]
		w.nodes = w.nodes[:len(w.nodes)-1]
		w.visited[nid] = false
	}
}

// record snapshots the current node/edge stacks into a Path.
func (w *pathWalker) record() {
	nodes := append([]*core.Node(nil), w.nodes...)
	edges := append([]*core.Edge(nil), w.edges...)
	w.found = append(w.found, core.NewPath(nodes, edges))
}

func (w *pathWalker) neighborIDs(id string) ([]string, bool) {
	if w.mode == BothDirections {
		return w.g.NeighborIDsBoth(id)
	}

	return w.g.NeighborIDs(id)
}

func (w *pathWalker) edgeTo(u, v string) (*core.Edge, bool) {
	if w.mode == BothDirections {
		return w.g.EdgeBetweenBoth(u, v)
	}

	return w.g.EdgeBetween(u, v)
}

// MIRanker adapts the MI scorer to the shared Ranker signature: it re-ranks
// a caller-supplied candidate pool by geometricMeanMI - lambda * length.
// Paths are scored against the graph's current structure; candidates are
// assumed to be valid paths over g.
func MIRanker(lambda float64) Ranker {
	return func(g *core.Graph, paths []*core.Path) ([]Scored, error) {
		if g == nil {
			return nil, ErrNilGraph
		}
		if lambda < 0 {
			return nil, ErrBadLambda
		}

		scored := make([]Scored, 0, len(paths))
		for _, p := range paths {
			if p == nil {
				continue
			}
			gm := GeometricMeanMI(g, p, OutgoingOnly)
			scored = append(scored, Scored{
				Path:            p,
				Score:           gm - lambda*float64(p.Len()),
				GeometricMeanMI: gm,
			})
		}
		SortScored(scored)

		return scored, nil
	}
}
