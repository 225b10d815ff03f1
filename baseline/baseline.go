// Package baseline: the non-PageRank rankers.
package baseline

import (
	"github.com/pathlab/mirank/core"
	"github.com/pathlab/mirank/plant"
	"github.com/pathlab/mirank/rank"
)

// Random returns a ranker that orders candidate paths uniformly at random
// from the given seed (seed 0 selects the fixed default). Scores are drawn
// per path so downstream metrics see a full, strictly usable ranking. The
// same seed and candidate list always reproduce the same order.
func Random(seed int64) rank.Ranker {
	return func(g *core.Graph, paths []*core.Path) ([]rank.Scored, error) {
		if g == nil {
			return nil, ErrNilGraph
		}

		// 1. Shuffle a copy of the candidates.
		shuffled := append([]*core.Path(nil), paths...)
		rng := plant.RNGFromSeed(seed)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		// 2. Assign strictly decreasing scores in shuffle order, so the
		//    ordering survives the shared sort unchanged.
		scored := make([]rank.Scored, 0, len(shuffled))
		for i, p := range shuffled {
			if p == nil {
				continue
			}
			scored = append(scored, rank.Scored{
				Path:  p,
				Score: float64(len(shuffled) - i),
			})
		}
		rank.SortScored(scored)

		return scored, nil
	}
}

// DegreeBased returns a ranker scoring each path by the sum of its nodes'
// degrees: hub-heavy paths rank first. Direction-blind degree is used on
// directed graphs.
func DegreeBased() rank.Ranker {
	return func(g *core.Graph, paths []*core.Path) ([]rank.Scored, error) {
		if g == nil {
			return nil, ErrNilGraph
		}

		scored := make([]rank.Scored, 0, len(paths))
		for _, p := range paths {
			if p == nil {
				continue
			}
			var sum int
			for _, n := range p.Nodes {
				if d, ok := g.Degree(n.ID); ok {
					sum += d
				}
			}
			scored = append(scored, rank.Scored{Path: p, Score: float64(sum)})
		}
		rank.SortScored(scored)

		return scored, nil
	}
}

// ShortestPath returns a ranker scoring each path by inverse hop count,
// 1/(1+hops), so shorter paths always dominate.
func ShortestPath() rank.Ranker {
	return func(g *core.Graph, paths []*core.Path) ([]rank.Scored, error) {
		if g == nil {
			return nil, ErrNilGraph
		}

		scored := make([]rank.Scored, 0, len(paths))
		for _, p := range paths {
			if p == nil {
				continue
			}
			scored = append(scored, rank.Scored{Path: p, Score: 1.0 / float64(1+p.Len())})
		}
		rank.SortScored(scored)

		return scored, nil
	}
}

// WeightBased returns a ranker scoring each path by its accumulated edge
// weight. Heavier paths rank first, which suits weights that encode
// strength rather than cost.
func WeightBased() rank.Ranker {
	return func(g *core.Graph, paths []*core.Path) ([]rank.Scored, error) {
		if g == nil {
			return nil, ErrNilGraph
		}

		scored := make([]rank.Scored, 0, len(paths))
		for _, p := range paths {
			if p == nil {
				continue
			}
			scored = append(scored, rank.Scored{Path: p, Score: p.TotalWeight})
		}
		rank.SortScored(scored)

		return scored, nil
	}
}
