// Package rank: neighborhood-overlap mutual information.
//
// MI here is not classical information-theoretic MI over random variables:
// two adjacent nodes carry high mutual information when their neighborhoods
// overlap densely, i.e. they share many witnesses. This makes the measure a
// pure function of graph structure, independent of any precomputed edge
// weight.
package rank

import (
	"math"

	"github.com/pathlab/mirank/core"
)

// EdgeMI returns the mutual information of adjacent nodes u and v:
// |N(u)∩N(v)| / |N(u)∪N(v)| over open neighborhoods (a node is not a member
// of its own neighborhood). mode selects outgoing-only or both-direction
// neighborhoods on directed graphs.
//
// Returns 0 when either node is missing or the neighborhoods share nothing.
// An isolated edge therefore has MI 0: its endpoints see only each other.
// Complexity: O(deg(u) + deg(v)).
func EdgeMI(g *core.Graph, u, v string, mode Mode) float64 {
	nu, ok := neighborsByMode(g, u, mode)
	if !ok {
		return 0
	}
	nv, ok := neighborsByMode(g, v, mode)
	if !ok {
		return 0
	}

	// Count |∩| and |∪| over the two sorted ID slices via a set on the
	// smaller side.
	if len(nu) > len(nv) {
		nu, nv = nv, nu
	}
	small := make(map[string]struct{}, len(nu))
	for _, id := range nu {
		small[id] = struct{}{}
	}
	shared := 0
	for _, id := range nv {
		if _, hit := small[id]; hit {
			shared++
		}
	}
	union := len(nu) + len(nv) - shared
	if union == 0 {
		return 0
	}

	return float64(shared) / float64(union)
}

// GeometricMeanMI aggregates the per-edge MI values of p multiplicatively
// and takes the n-th root, so path quality is comparable independent of
// length: a long path is not penalized for having more edges, only if its
// edges individually carry lower mutual information.
//
// By convention the aggregate is 0 when the path has no edges or when any
// edge has MI 0 (the zero-MI edge is reported, never silently dropped).
// Computed in log space to avoid underflow on long paths.
func GeometricMeanMI(g *core.Graph, p *core.Path, mode Mode) float64 {
	if p == nil || p.Len() == 0 {
		return 0
	}

	var logSum float64
	for i := 0; i+1 < len(p.Nodes); i++ {
		mi := EdgeMI(g, p.Nodes[i].ID, p.Nodes[i+1].ID, mode)
		if mi <= 0 {
			return 0
		}
		logSum += math.Log(mi)
	}

	return math.Exp(logSum / float64(p.Len()))
}

// neighborsByMode resolves the neighborhood of id under mode.
func neighborsByMode(g *core.Graph, id string, mode Mode) ([]string, bool) {
	if mode == BothDirections {
		return g.NeighborIDsBoth(id)
	}

	return g.NeighborIDs(id)
}
