// Package plant: noise-path generation.
package plant

import (
	"fmt"
	"math/rand"

	"github.com/pathlab/mirank/core"
)

// noise path lengths: short distractor spines of 2 or 3 hops.
const (
	noiseMinLength = 2
	noiseLengthSpan = 2
)

// AddNoisePaths adds count distractor paths with deliberately low mutual
// information: fresh witness-free spines between random existing endpoints.
// Interior spine nodes share no neighbors, so noise paths carry zero
// geometric-mean MI and land at the bottom of any MI-driven ranking.
//
// No-ops (empty Result, nil error) when count is 0 or the graph has fewer
// than 2 nodes. Endpoint pairs already joined by an existing path, and pairs
// that are directly adjacent, are avoided on a best-effort basis so no
// existing edge is duplicated. Deterministic in (graph state, count, seed).
func AddNoisePaths(g *core.Graph, existing []*core.Path, count int, seed int64) (*Result, error) {
	// 1. Preconditions; "nothing to do" is a value, not an error.
	if g == nil {
		return nil, ErrNilGraph
	}
	if count < 0 {
		return nil, fmt.Errorf("plant: noise count must be >= 0: %w", ErrBadConfig)
	}
	res := &Result{Relevance: make(map[string]float64, count)}
	if count == 0 || g.NodeCount() < 2 {
		return res, nil
	}

	// 2. Endpoint pairs already claimed by existing paths.
	claimed := make(map[[2]string]struct{}, len(existing))
	for _, p := range existing {
		if len(p.Nodes) < 2 {
			continue
		}
		claimed[[2]string{p.Nodes[0].ID, p.Nodes[len(p.Nodes)-1].ID}] = struct{}{}
	}

	// 3. Build witness-free spines.
	rng := RNGFromSeed(seed)
	pool, err := endpointPool(g, nil)
	if err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		src, dst := pickNoisePair(rng, pool, claimed, g)
		length := noiseMinLength + rng.Intn(noiseLengthSpan)

		prefix := fmt.Sprintf("noise%d", i)
		spine := []string{src}
		for j := 1; j < length; j++ {
			id := freshNodeID(g, fmt.Sprintf("%s_m%d", prefix, j))
			if err = g.AddNode(core.NewNode(id)); err != nil {
				return nil, err
			}
			res.Meta.NodesAdded++
			spine = append(spine, id)
		}
		spine = append(spine, dst)

		// Spine edges only: no witnesses, weight in the low band.
		weight := 0.05 + 0.1*rng.Float64()
		edges := make([]*core.Edge, 0, len(spine)-1)
		for j := 0; j+1 < len(spine); j++ {
			e := &core.Edge{
				ID:     fmt.Sprintf("%s_e%d", prefix, j),
				From:   spine[j],
				To:     spine[j+1],
				Weight: weight,
			}
			if err = g.AddEdge(e); err != nil {
				return nil, err
			}
			res.Meta.EdgesAdded++
			edges = append(edges, e)
		}

		nodes := make([]*core.Node, len(spine))
		for j, id := range spine {
			n, _ := g.Node(id)
			nodes[j] = n
		}
		p := core.NewPath(nodes, edges)
		res.Paths = append(res.Paths, p)
		res.Relevance[p.Key()] = 0
		claimed[[2]string{src, dst}] = struct{}{}
	}

	return res, nil
}

// pickNoisePair draws a distinct endpoint pair, preferring pairs that are
// neither claimed by an existing path nor directly adjacent. Falls back to
// any distinct pair once attempts run out, so the call always succeeds on a
// graph with >= 2 nodes.
func pickNoisePair(rng *rand.Rand, pool []string, claimed map[[2]string]struct{}, g *core.Graph) (string, string) {
	var src, dst string
	for attempt := 0; attempt < endpointAttempts; attempt++ {
		src = pool[rng.Intn(len(pool))]
		dst = pool[rng.Intn(len(pool))]
		if src == dst {
			continue
		}
		if _, taken := claimed[[2]string{src, dst}]; taken {
			continue
		}
		if g.Adjacent(src, dst) {
			continue
		}

		return src, dst
	}
	// Fallback: any distinct pair, deterministic continuation of the stream.
	for src == dst {
		src = pool[rng.Intn(len(pool))]
		dst = pool[rng.Intn(len(pool))]
	}

	return src, dst
}
