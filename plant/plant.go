// Package plant: ground-truth planting and the shared spine/witness wiring.
package plant

import (
	"fmt"
	"math/rand"

	"github.com/pathlab/mirank/core"
	"github.com/pathlab/mirank/rank"
)

// endpointAttempts bounds random endpoint selection before giving up.
const endpointAttempts = 64

// PlantGroundTruthPaths plants cfg.NumPaths new paths into g, each a spine
// of fresh intermediate nodes between two existing endpoints plus witness
// nodes calibrating the requested MI band. Returns the planted paths, a
// relevance map (path key to geometric-mean MI in the final graph), and
// augmentation metadata.
//
// Endpoints are drawn from cfg.SourceNodes / cfg.TargetNodes when given,
// otherwise from all existing nodes in insertion order. Without AllowOverlap
// no endpoint node is reused across planted paths.
//
// Errors:
//   - ErrNilGraph, ErrEmptyGraph for an unusable graph.
//   - ErrBadConfig (wrapped with the violated field) for invalid config.
//   - ErrExhaustedEndpoints when non-overlapping planting runs out of pairs.
func PlantGroundTruthPaths(g *core.Graph, cfg Config) (*Result, error) {
	// 1. Preconditions.
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// 2. Deterministic RNG and endpoint pools.
	rng := RNGFromSeed(cfg.Seed)
	sources, err := endpointPool(g, cfg.SourceNodes)
	if err != nil {
		return nil, err
	}
	targets, err := endpointPool(g, cfg.TargetNodes)
	if err != nil {
		return nil, err
	}

	// 3. Plant one spine per requested path.
	res := &Result{Relevance: make(map[string]float64, cfg.NumPaths)}
	used := make(map[string]struct{})
	for i := 0; i < cfg.NumPaths; i++ {
		src, dst, err := pickEndpoints(rng, sources, targets, used, cfg.AllowOverlap)
		if err != nil {
			return nil, err
		}

		length := cfg.MinLength
		if cfg.MaxLength > cfg.MinLength {
			length += rng.Intn(cfg.MaxLength - cfg.MinLength + 1)
		}

		prefix := fmt.Sprintf("gt%d", i)
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

		p, err := wireSpine(g, spine, prefix, cfg.Signal, "", &res.Meta)
		if err != nil {
			return nil, err
		}
		res.Paths = append(res.Paths, p)
	}

	// 4. Relevance is the quality in the final graph state, so overlapping
	//    later plants are reflected in earlier paths' scores.
	finishRelevance(g, res)

	return res, nil
}

// finishRelevance fills Result.Relevance and Meta.MeanMI from the final
// graph state.
func finishRelevance(g *core.Graph, res *Result) {
	var sum float64
	for _, p := range res.Paths {
		mi := rank.GeometricMeanMI(g, p, rank.OutgoingOnly)
		res.Relevance[p.Key()] = mi
		sum += mi
	}
	if len(res.Paths) > 0 {
		res.Meta.MeanMI = sum / float64(len(res.Paths))
	}
}

// finishRelevanceBoth is finishRelevance with direction-blind MI, for motifs
// whose citation arrows oppose the path orientation.
func finishRelevanceBoth(g *core.Graph, res *Result) {
	var sum float64
	for _, p := range res.Paths {
		mi := rank.GeometricMeanMI(g, p, rank.BothDirections)
		res.Relevance[p.Key()] = mi
		sum += mi
	}
	if len(res.Paths) > 0 {
		res.Meta.MeanMI = sum / float64(len(res.Paths))
	}
}

// endpointPool resolves a caller-provided endpoint constraint against the
// graph; an empty constraint means every existing node, in insertion order.
func endpointPool(g *core.Graph, ids []string) ([]string, error) {
	if len(ids) == 0 {
		nodes := g.Nodes()
		out := make([]string, len(nodes))
		for i, n := range nodes {
			out[i] = n.ID
		}

		return out, nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("plant: endpoint %q not in graph: %w", id, ErrBadConfig)
		}
		out = append(out, id)
	}

	return out, nil
}

// pickEndpoints draws a (source, target) pair: distinct nodes, both unused
// when overlap is disallowed. Bounded attempts keep the call terminating on
// adversarial pools.
func pickEndpoints(rng *rand.Rand, sources, targets []string, used map[string]struct{}, allowOverlap bool) (string, string, error) {
	for attempt := 0; attempt < endpointAttempts; attempt++ {
		src := sources[rng.Intn(len(sources))]
		dst := targets[rng.Intn(len(targets))]
		if src == dst {
			continue
		}
		if !allowOverlap {
			if _, taken := used[src]; taken {
				continue
			}
			if _, taken := used[dst]; taken {
				continue
			}
		}
		if !allowOverlap {
			used[src] = struct{}{}
			used[dst] = struct{}{}
		}

		return src, dst, nil
	}

	return "", "", ErrExhaustedEndpoints
}

// freshNodeID returns base, suffixed until it does not collide with an
// existing node. Deterministic: the suffix sequence depends only on the
// graph contents.
func freshNodeID(g *core.Graph, base string) string {
	id := base
	for n := 0; g.HasNode(id); n++ {
		id = fmt.Sprintf("%s_x%d", base, n)
	}

	return id
}

// wireSpine joins consecutive spine nodes with edges and wires witness
// nodes (the shared neighbors the MI measure counts) to every spine node.
// All spine nodes must already exist. nodeType, when non-empty, types the
// created witness nodes. Returns the planted Path over the new spine edges.
func wireSpine(g *core.Graph, spineIDs []string, prefix string, sig Signal, nodeType string, meta *Meta) (*core.Path, error) {
	weight := sig.edgeWeight()

	// 1. Spine edges along the path orientation.
	edges := make([]*core.Edge, 0, len(spineIDs)-1)
	for i := 0; i+1 < len(spineIDs); i++ {
		e := &core.Edge{
			ID:     fmt.Sprintf("%s_e%d", prefix, i),
			From:   spineIDs[i],
			To:     spineIDs[i+1],
			Weight: weight,
		}
		if err := g.AddEdge(e); err != nil {
			return nil, err
		}
		meta.EdgesAdded++
		edges = append(edges, e)
	}

	// 2. Witnesses wired across the whole spine, so every spine edge sees
	//    the same shared-neighbor mass.
	if err := addWitnesses(g, spineIDs, prefix, sig.witnesses(), weight, nodeType, meta); err != nil {
		return nil, err
	}

	// 3. Materialize the Path value.
	nodes := make([]*core.Node, len(spineIDs))
	for i, id := range spineIDs {
		n, _ := g.Node(id)
		nodes[i] = n
	}

	return core.NewPath(nodes, edges), nil
}

// addWitnesses creates count witness nodes, each connected to every spine
// node with the given weight.
func addWitnesses(g *core.Graph, spineIDs []string, prefix string, count int, weight float64, nodeType string, meta *Meta) error {
	for k := 0; k < count; k++ {
		wid := freshNodeID(g, fmt.Sprintf("%s_w%d", prefix, k))
		wn := core.NewNode(wid)
		if nodeType != "" {
			wn.SetType(nodeType)
		}
		if err := g.AddNode(wn); err != nil {
			return err
		}
		meta.NodesAdded++
		// Oriented spine -> witness so witnesses land in the outgoing
		// neighborhood of every spine node on directed graphs too.
		for j, sid := range spineIDs {
			e := &core.Edge{
				ID:     fmt.Sprintf("%s_we%d_%d", prefix, k, j),
				From:   sid,
				To:     wid,
				Weight: weight,
			}
			if err := g.AddEdge(e); err != nil {
				return err
			}
			meta.EdgesAdded++
		}
	}

	return nil
}
