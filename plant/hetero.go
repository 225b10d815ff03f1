// Package plant: heterogeneous (typed-template) path planting.
package plant

import (
	"fmt"

	"github.com/pathlab/mirank/core"
)

// PlantHeterogeneousPaths plants cfg.NumPaths paths whose node sequence
// follows the typed template positionally (e.g. Work -> Author -> Work).
// Endpoints are drawn from existing nodes of the first and last template
// types; intermediate nodes are created fresh with their template types.
// Path length is fixed by the template, so cfg.MinLength/MaxLength are
// ignored here.
//
// Errors:
//   - ErrShortTemplate when the template has fewer than 2 types.
//   - ErrMissingType (wrapped with the type name) when the graph has no node
//     of a type the template requires.
//   - ErrNilGraph / ErrEmptyGraph / ErrBadConfig / ErrExhaustedEndpoints as
//     in PlantGroundTruthPaths.
func PlantHeterogeneousPaths(g *core.Graph, template []string, cfg Config) (*Result, error) {
	// 1. Preconditions.
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if len(template) < 2 {
		return nil, ErrShortTemplate
	}
	if cfg.NumPaths < 1 {
		return nil, fmt.Errorf("plant: NumPaths must be >= 1: %w", ErrBadConfig)
	}

	// 2. Every template type must exist somewhere in the graph.
	pools := make(map[string][]string, len(template))
	for _, t := range template {
		if _, seen := pools[t]; seen {
			continue
		}
		nodes := g.NodesOfType(t)
		if len(nodes) == 0 {
			return nil, fmt.Errorf("plant: no nodes of type %q: %w", t, ErrMissingType)
		}
		ids := make([]string, len(nodes))
		for i, n := range nodes {
			ids[i] = n.ID
		}
		pools[t] = ids
	}

	// 3. Plant template-shaped spines.
	rng := RNGFromSeed(cfg.Seed)
	res := &Result{Relevance: make(map[string]float64, cfg.NumPaths)}
	used := make(map[string]struct{})
	first, last := template[0], template[len(template)-1]
	for i := 0; i < cfg.NumPaths; i++ {
		src, dst, err := pickEndpoints(rng, pools[first], pools[last], used, cfg.AllowOverlap)
		if err != nil {
			return nil, err
		}

		prefix := fmt.Sprintf("hg%d", i)
		spine := []string{src}
		for j := 1; j < len(template)-1; j++ {
			id := freshNodeID(g, fmt.Sprintf("%s_m%d", prefix, j))
			if err = g.AddNode(core.NewTypedNode(id, template[j])); err != nil {
				return nil, err
			}
			res.Meta.NodesAdded++
			spine = append(spine, id)
		}
		spine = append(spine, dst)

		// Witnesses inherit the first template type to keep the graph's
		// type vocabulary closed.
		p, err := wireSpine(g, spine, prefix, cfg.Signal, first, &res.Meta)
		if err != nil {
			return nil, err
		}
		res.Paths = append(res.Paths, p)
	}

	// 4. Relevance against the final graph state.
	finishRelevance(g, res)

	return res, nil
}

// PathFollowsTemplate reports whether path p conforms to the typed template:
// equal length and each node's "type" attribute matching the corresponding
// template entry positionally. A pure predicate with no side effects.
func PathFollowsTemplate(p *core.Path, template []string) bool {
	if p == nil || len(p.Nodes) != len(template) {
		return false
	}
	for i, n := range p.Nodes {
		if n.Type() != template[i] {
			return false
		}
	}

	return true
}
