package rank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathlab/mirank/core"
	"github.com/pathlab/mirank/rank"
)

func TestRankPaths_Validation(t *testing.T) {
	g := core.New()
	addNodes(t, g, "A", "B")
	addEdge(t, g, "A", "B")

	_, err := rank.RankPaths(nil, "A", "B")
	require.ErrorIs(t, err, rank.ErrNilGraph)

	_, err = rank.RankPaths(g, "Z", "B")
	require.ErrorIs(t, err, rank.ErrNodeNotFound)

	_, err = rank.RankPaths(g, "A", "Z")
	require.ErrorIs(t, err, rank.ErrNodeNotFound)

	_, err = rank.RankPaths(g, "A", "B", rank.WithLambda(-1))
	require.ErrorIs(t, err, rank.ErrBadLambda)

	_, err = rank.RankPaths(g, "A", "B", rank.WithMaxLength(0))
	require.ErrorIs(t, err, rank.ErrBadLimit)

	_, err = rank.RankPaths(g, "A", "B", rank.WithMaxPaths(0))
	require.ErrorIs(t, err, rank.ErrBadLimit)
}

func TestRankPaths_NoPathIsEmptyResult(t *testing.T) {
	// Two components: no path exists, which is a value, not an error.
	g := core.New()
	addNodes(t, g, "A", "B", "C", "D")
	addEdge(t, g, "A", "B")
	addEdge(t, g, "C", "D")

	res, err := rank.RankPaths(g, "A", "D")
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Empty(t, res.Paths)

	_, ok := res.Best()
	assert.False(t, ok)
}

func TestRankPaths_MaxLengthDisconnects(t *testing.T) {
	// A-B-C-D is connected, but not within 2 hops from A to D.
	g := core.New()
	addNodes(t, g, "A", "B", "C", "D")
	addEdge(t, g, "A", "B")
	addEdge(t, g, "B", "C")
	addEdge(t, g, "C", "D")

	res, err := rank.RankPaths(g, "A", "D", rank.WithMaxLength(2))
	require.NoError(t, err)
	assert.False(t, res.Found())

	res, err = rank.RankPaths(g, "A", "D", rank.WithMaxLength(3))
	require.NoError(t, err)
	assert.True(t, res.Found())
}

// buildCrossoverGraph wires one short weakly-connected path S-X-T and one
// long well-connected path S-A-B-C-T whose spine shares eight witnesses.
func buildCrossoverGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New()
	addNodes(t, g, "S", "T", "X", "A", "B", "C", "w0", "w1")

	// Short path with one witness per edge: small but positive MI.
	addEdge(t, g, "S", "X")
	addEdge(t, g, "X", "T")
	addEdge(t, g, "S", "w0")
	addEdge(t, g, "X", "w0")
	addEdge(t, g, "X", "w1")
	addEdge(t, g, "T", "w1")

	// Long path whose witnesses span the whole spine.
	spine := []string{"S", "A", "B", "C", "T"}
	for i := 0; i+1 < len(spine); i++ {
		addEdge(t, g, spine[i], spine[i+1])
	}
	for i := 1; i <= 8; i++ {
		w := "l" + string(rune('0'+i))
		addNodes(t, g, w)
		for _, s := range spine {
			addEdge(t, g, s, w)
		}
	}

	return g
}

// positions returns the rank index of each requested path key, requiring all
// of them to be present.
func positions(t *testing.T, res *rank.Result, keys ...string) map[string]int {
	t.Helper()
	idx := make(map[string]int, len(keys))
	for i, s := range res.Paths {
		idx[s.Path.Key()] = i
	}
	out := make(map[string]int, len(keys))
	for _, k := range keys {
		i, ok := idx[k]
		require.True(t, ok, "path %s not in ranking", k)
		out[k] = i
	}

	return out
}

func TestRankPaths_LambdaCrossover(t *testing.T) {
	g := buildCrossoverGraph(t)
	const long, short = "S→A→B→C→T", "S→X→T"

	// Lambda 0: quality alone, the long well-connected path wins.
	res, err := rank.RankPaths(g, "S", "T", rank.WithMaxPaths(10_000))
	require.NoError(t, err)
	pos := positions(t, res, long, short)
	assert.Less(t, pos[long], pos[short], "lambda=0 ranks the long high-MI path first")

	// High lambda: length dominates, the short path wins.
	res, err = rank.RankPaths(g, "S", "T", rank.WithLambda(5), rank.WithMaxPaths(10_000))
	require.NoError(t, err)
	pos = positions(t, res, long, short)
	assert.Less(t, pos[short], pos[long], "lambda=5 ranks the short path first")

	// Sweeping lambda flips the pair exactly once (monotone crossover).
	flips := 0
	prevLongFirst := true
	for _, lambda := range []float64{0, 0.05, 0.1, 0.2, 0.3, 0.5, 1, 2, 5} {
		res, err = rank.RankPaths(g, "S", "T", rank.WithLambda(lambda), rank.WithMaxPaths(10_000))
		require.NoError(t, err)
		pos = positions(t, res, long, short)
		longFirst := pos[long] < pos[short]
		if longFirst != prevLongFirst {
			flips++
			assert.False(t, longFirst, "once the short path leads it must stay ahead")
		}
		prevLongFirst = longFirst
	}
	assert.Equal(t, 1, flips, "a single crossover point")
}

func TestRankPaths_Determinism(t *testing.T) {
	g := buildCrossoverGraph(t)

	first, err := rank.RankPaths(g, "S", "T", rank.WithLambda(0.2), rank.WithMaxPaths(50))
	require.NoError(t, err)
	second, err := rank.RankPaths(g, "S", "T", rank.WithLambda(0.2), rank.WithMaxPaths(50))
	require.NoError(t, err)

	require.Equal(t, len(first.Paths), len(second.Paths))
	for i := range first.Paths {
		assert.Equal(t, first.Paths[i].Path.Key(), second.Paths[i].Path.Key())
		assert.Equal(t, first.Paths[i].Score, second.Paths[i].Score, "bit-identical scores")
		assert.Equal(t, first.Paths[i].GeometricMeanMI, second.Paths[i].GeometricMeanMI)
	}
}

func TestRankPaths_ShortestOnly(t *testing.T) {
	g := buildCrossoverGraph(t)

	res, err := rank.RankPaths(g, "S", "T", rank.WithShortestOnly(), rank.WithMaxPaths(10_000))
	require.NoError(t, err)
	require.True(t, res.Found())

	minLen := res.Paths[0].Path.Len()
	for _, s := range res.Paths {
		assert.Equal(t, minLen, s.Path.Len(), "only minimum-length paths are scored")
	}
	assert.Equal(t, 2, minLen, "S-w-T style two-hop paths are the shortest")
}

func TestRankPaths_MaxPathsTruncates(t *testing.T) {
	g := buildCrossoverGraph(t)

	res, err := rank.RankPaths(g, "S", "T", rank.WithMaxPaths(3))
	require.NoError(t, err)
	assert.Len(t, res.Paths, 3)

	// Scores arrive in non-increasing order.
	for i := 1; i < len(res.Paths); i++ {
		assert.GreaterOrEqual(t, res.Paths[i-1].Score, res.Paths[i].Score)
	}
}

func TestRankPaths_DirectedTraversal(t *testing.T) {
	g := core.New(core.WithDirected())
	addNodes(t, g, "A", "B", "C")
	require.NoError(t, g.AddEdge(&core.Edge{ID: "ab", From: "A", To: "B"}))
	require.NoError(t, g.AddEdge(&core.Edge{ID: "cb", From: "C", To: "B"}))

	// A cannot reach C following edge direction...
	res, err := rank.RankPaths(g, "A", "C")
	require.NoError(t, err)
	assert.False(t, res.Found())

	// ...unless both directions are explicitly requested.
	res, err = rank.RankPaths(g, "A", "C", rank.WithBothDirections())
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, "A→B→C", res.Paths[0].Path.Key())
}

func TestMIRanker_MatchesScoreContract(t *testing.T) {
	g := buildCrossoverGraph(t)

	paths, err := rank.EnumeratePaths(g, "S", "T", 4, rank.OutgoingOnly)
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	ranker := rank.MIRanker(0.25)
	scored, err := ranker(g, paths)
	require.NoError(t, err)
	require.Len(t, scored, len(paths))

	for _, s := range scored {
		want := rank.GeometricMeanMI(g, s.Path, rank.OutgoingOnly) - 0.25*float64(s.Path.Len())
		assert.InDelta(t, want, s.Score, 1e-12)
	}

	_, err = rank.MIRanker(-1)(g, paths)
	require.ErrorIs(t, err, rank.ErrBadLambda)
	_, err = ranker(nil, paths)
	require.ErrorIs(t, err, rank.ErrNilGraph)
}
