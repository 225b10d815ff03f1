// Package plant: citation-network planting patterns.
//
// These patterns operate over scholarly typed graphs (Work / Author /
// Source nodes) and wire the classic citation-analysis motifs. Unlike
// ground-truth planting, all path nodes are existing typed nodes; only the
// pattern edges and witnesses are added.
package plant

import (
	"fmt"
	"math/rand"

	"github.com/pathlab/mirank/core"
)

// patternSpec describes one citation pattern's node requirements and shape.
type patternSpec struct {
	// types is the node-type sequence of the planted path.
	types []string

	// mins names minimum typed-node counts with their error wording.
	mins []typedMin

	// edgeType labels the planted pattern edges.
	edgeType string

	// orient returns the (from, to) endpoints of the edge between spine
	// positions i and i+1; citation arrows do not always follow the path.
	orient func(spine []string, i int) (string, string)
}

type typedMin struct {
	nodeType string
	min      int
	noun     string // "work", "author", "venue" - used in the error message
}

// forward orients edges along the path.
func forward(spine []string, i int) (string, string) { return spine[i], spine[i+1] }

// citationPatterns is the pattern registry.
var citationPatterns = map[CitationPattern]patternSpec{
	DirectCitationChain: {
		types:    []string{TypeWork, TypeWork, TypeWork},
		mins:     []typedMin{{TypeWork, 3, "work"}},
		edgeType: edgeCites,
		orient:   forward,
	},
	CoCitationBridge: {
		types:    []string{TypeWork, TypeWork, TypeWork},
		mins:     []typedMin{{TypeWork, 3, "work"}},
		edgeType: edgeCites,
		// The bridging middle work cites both outer works.
		orient: func(spine []string, i int) (string, string) { return spine[1], spine[2*i] },
	},
	BibliographicCoupling: {
		types:    []string{TypeWork, TypeWork, TypeWork},
		mins:     []typedMin{{TypeWork, 3, "work"}},
		edgeType: edgeCites,
		// Both outer works cite the shared middle work.
		orient: func(spine []string, i int) (string, string) { return spine[2*i], spine[1] },
	},
	AuthorMediated: {
		types:    []string{TypeWork, TypeAuthor, TypeWork},
		mins:     []typedMin{{TypeWork, 2, "work"}, {TypeAuthor, 1, "author"}},
		edgeType: edgeAuthored,
		orient:   forward,
	},
	VenueMediated: {
		types:    []string{TypeWork, TypeSource, TypeWork},
		mins:     []typedMin{{TypeWork, 2, "work"}, {TypeSource, 1, "venue"}},
		edgeType: edgePublished,
		orient:   forward,
	},
}

// PlantCitationPaths plants cfg.NumPaths instances of the named citation
// pattern. Path nodes are drawn from the graph's existing typed nodes;
// pattern edges and Work-typed witnesses (per cfg.Signal) are added.
//
// Errors:
//   - ErrUnknownPattern for an unrecognized pattern name.
//   - ErrScarceNodes with a message naming the shortfall, e.g.
//     "Need at least 3 work nodes" for direct-citation-chain on a graph
//     with only 2 Work nodes.
//   - ErrNilGraph / ErrEmptyGraph / ErrBadConfig as in ground-truth planting.
func PlantCitationPaths(g *core.Graph, pattern CitationPattern, cfg Config) (*Result, error) {
	// 1. Preconditions.
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if cfg.NumPaths < 1 {
		return nil, fmt.Errorf("plant: NumPaths must be >= 1: %w", ErrBadConfig)
	}
	spec, ok := citationPatterns[pattern]
	if !ok {
		return nil, fmt.Errorf("plant: %q: %w", pattern, ErrUnknownPattern)
	}

	// 2. Typed-node minimums, with the exact shortfall named.
	pools := make(map[string][]string, len(spec.mins))
	for _, m := range spec.mins {
		nodes := g.NodesOfType(m.nodeType)
		if len(nodes) < m.min {
			return nil, fmt.Errorf("plant: %s: Need at least %d %s nodes, have %d: %w",
				pattern, m.min, m.noun, len(nodes), ErrScarceNodes)
		}
		ids := make([]string, len(nodes))
		for i, n := range nodes {
			ids[i] = n.ID
		}
		pools[m.nodeType] = ids
	}

	// 3. Plant pattern instances.
	rng := RNGFromSeed(cfg.Seed)
	res := &Result{Relevance: make(map[string]float64, cfg.NumPaths)}
	for i := 0; i < cfg.NumPaths; i++ {
		spine, err := drawSpine(rng, spec.types, pools)
		if err != nil {
			return nil, err
		}

		prefix := fmt.Sprintf("cit%d", i)
		edges := make([]*core.Edge, 0, len(spine)-1)
		for j := 0; j+1 < len(spine); j++ {
			from, to := spec.orient(spine, j)
			e := &core.Edge{
				ID:     fmt.Sprintf("%s_e%d", prefix, j),
				From:   from,
				To:     to,
				Weight: cfg.Signal.edgeWeight(),
				Type:   spec.edgeType,
			}
			if err = g.AddEdge(e); err != nil {
				return nil, err
			}
			res.Meta.EdgesAdded++
			edges = append(edges, e)
		}

		// Witnesses are co-citing works wired across the spine.
		if err = addWitnesses(g, spine, prefix, cfg.Signal.witnesses(), cfg.Signal.edgeWeight(), TypeWork, &res.Meta); err != nil {
			return nil, err
		}

		nodes := make([]*core.Node, len(spine))
		for j, id := range spine {
			n, _ := g.Node(id)
			nodes[j] = n
		}
		res.Paths = append(res.Paths, core.NewPath(nodes, edges))
	}

	// 4. Relevance against the final graph state. Co-citation and coupling
	//    paths are undirected motifs; score them direction-blind.
	finishRelevanceBoth(g, res)

	return res, nil
}

// drawSpine picks distinct existing nodes matching the type sequence.
func drawSpine(rng *rand.Rand, types []string, pools map[string][]string) ([]string, error) {
	for attempt := 0; attempt < endpointAttempts; attempt++ {
		spine := make([]string, len(types))
		taken := make(map[string]struct{}, len(types))
		ok := true
		for i, t := range types {
			pool := pools[t]
			id := pool[rng.Intn(len(pool))]
			if _, dup := taken[id]; dup {
				ok = false

				break
			}
			taken[id] = struct{}{}
			spine[i] = id
		}
		if ok {
			return spine, nil
		}
	}

	return nil, ErrExhaustedEndpoints
}
