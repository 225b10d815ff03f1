// Package datasets: synthetic scholarly network.
package datasets

import (
	"fmt"

	"github.com/pathlab/mirank/core"
	"github.com/pathlab/mirank/plant"
)

// Wiring densities for the synthetic scholarly graph. Citations point
// from newer works to older ones to keep the citation relation acyclic.
const (
	citationsPerWork = 3
	worksPerAuthor   = 2
)

// CitationNetwork builds a directed typed scholarly graph: works citing
// earlier works, authors linked to the works they authored, and works
// linked to the venue they appeared in. The same arguments always produce
// the same graph; seed varies the wiring, seed 0 keeps a fixed default.
func CitationNetwork(works, authors, venues int, seed int64) *core.Graph {
	rng := plant.RNGFromSeed(seed)
	g := core.New(core.WithDirected())

	// 1. Typed nodes.
	for i := 0; i < works; i++ {
		mustAdd(g, core.NewTypedNode(fmt.Sprintf("w%d", i), plant.TypeWork))
	}
	for i := 0; i < authors; i++ {
		mustAdd(g, core.NewTypedNode(fmt.Sprintf("a%d", i), plant.TypeAuthor))
	}
	for i := 0; i < venues; i++ {
		mustAdd(g, core.NewTypedNode(fmt.Sprintf("v%d", i), plant.TypeSource))
	}

	edgeNo := 0
	addEdge := func(from, to, edgeType string) {
		e := &core.Edge{
			ID:     fmt.Sprintf("c%d", edgeNo),
			From:   from,
			To:     to,
			Weight: 1,
			Type:   edgeType,
		}
		// Endpoints exist by construction; duplicates cannot occur with
		// serial IDs.
		_ = g.AddEdge(e)
		edgeNo++
	}

	// 2. Work i cites up to citationsPerWork earlier works.
	for i := 1; i < works; i++ {
		cites := citationsPerWork
		if i < cites {
			cites = i
		}
		seen := make(map[int]struct{}, cites)
		for len(seen) < cites {
			target := rng.Intn(i)
			if _, dup := seen[target]; dup {
				continue
			}
			seen[target] = struct{}{}
			addEdge(fmt.Sprintf("w%d", i), fmt.Sprintf("w%d", target), "cites")
		}
	}

	// 3. Each author writes worksPerAuthor random works.
	for i := 0; i < authors && works > 0; i++ {
		for j := 0; j < worksPerAuthor; j++ {
			addEdge(fmt.Sprintf("a%d", i), fmt.Sprintf("w%d", rng.Intn(works)), "authored")
		}
	}

	// 4. Every work appears in exactly one venue.
	for i := 0; i < works && venues > 0; i++ {
		addEdge(fmt.Sprintf("w%d", i), fmt.Sprintf("v%d", rng.Intn(venues)), "published-in")
	}

	return g
}

func mustAdd(g *core.Graph, n *core.Node) {
	// IDs are generated and non-empty, so this cannot fail.
	_ = g.AddNode(n)
}
