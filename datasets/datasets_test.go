package datasets_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathlab/mirank/baseline"
	"github.com/pathlab/mirank/core"
	"github.com/pathlab/mirank/datasets"
	"github.com/pathlab/mirank/metrics"
	"github.com/pathlab/mirank/plant"
	"github.com/pathlab/mirank/rank"
)

func TestKarate_Shape(t *testing.T) {
	g := datasets.Karate()

	require.Equal(t, 34, g.NodeCount())
	require.Equal(t, 78, g.EdgeCount())
	require.False(t, g.Directed())

	// The two club leaders are the famous hubs.
	d1, ok := g.Degree("1")
	require.True(t, ok)
	assert.Equal(t, 16, d1)
	d34, ok := g.Degree("34")
	require.True(t, ok)
	assert.Equal(t, 17, d34)
}

func TestKarate_FreshCopies(t *testing.T) {
	a := datasets.Karate()
	require.NoError(t, a.AddNode(core.NewNode("extra")))

	b := datasets.Karate()
	assert.False(t, b.HasNode("extra"), "each call returns an independent graph")
}

// The leaders sit in opposite factions; ranking the paths between them
// end-to-end exercises enumeration, MI scoring, a baseline, and rank
// correlation on a real network.
func TestKarate_LeaderToLeaderRanking(t *testing.T) {
	g := datasets.Karate()

	res, err := rank.RankPaths(g, "1", "34",
		rank.WithLambda(0.1), rank.WithMaxLength(3), rank.WithMaxPaths(50))
	require.NoError(t, err)
	require.True(t, res.Found())
	require.NotEmpty(t, res.Paths)

	best, ok := res.Best()
	require.True(t, ok)
	assert.Equal(t, "1", best.Path.Nodes[0].ID)
	assert.Equal(t, "34", best.Path.Nodes[len(best.Path.Nodes)-1].ID)

	// Score the same candidates with the degree baseline and derive a
	// degree-based relevance; the two rankings must correlate measurably.
	var paths []*core.Path
	for _, s := range res.Paths {
		paths = append(paths, s.Path)
	}
	byDegree, err := baseline.DegreeBased()(g, paths)
	require.NoError(t, err)
	require.Len(t, byDegree, len(paths))

	mi := make(map[string]float64, len(res.Paths))
	for _, s := range res.Paths {
		mi[s.Path.Key()] = s.Score
	}
	var x, y []float64
	for _, s := range byDegree {
		x = append(x, s.Score)
		y = append(y, mi[s.Path.Key()])
	}
	rho := metrics.Spearman(x, y)
	require.False(t, math.IsNaN(rho), "both rankings vary over %d shared paths", len(x))
	assert.GreaterOrEqual(t, rho, -1.0)
	assert.LessOrEqual(t, rho, 1.0)
}

func TestLoadEdgeList(t *testing.T) {
	src := `# toy triangle
a b
b c 2.5

c a 0.5
`
	g, err := datasets.LoadEdgeList(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 3, g.EdgeCount())
	require.False(t, g.Directed())

	e, ok := g.EdgeBetweenBoth("b", "c")
	require.True(t, ok)
	assert.InDelta(t, 2.5, e.Weight, 1e-12)

	e, ok = g.EdgeBetweenBoth("a", "b")
	require.True(t, ok)
	assert.InDelta(t, 1.0, e.Weight, 1e-12, "missing weight defaults to 1")
}

func TestLoadEdgeList_Directed(t *testing.T) {
	g, err := datasets.LoadEdgeList(strings.NewReader("a b\n"), datasets.Directed())
	require.NoError(t, err)
	require.True(t, g.Directed())

	nbs, _ := g.NeighborIDs("a")
	assert.Equal(t, []string{"b"}, nbs)
	nbs, _ = g.NeighborIDs("b")
	assert.Empty(t, nbs)
}

func TestLoadEdgeList_Malformed(t *testing.T) {
	_, err := datasets.LoadEdgeList(strings.NewReader("lonely\n"))
	require.ErrorIs(t, err, datasets.ErrBadEdgeLine)
	require.Contains(t, err.Error(), "line 1")

	_, err = datasets.LoadEdgeList(strings.NewReader("a b notaweight\n"))
	require.ErrorIs(t, err, datasets.ErrBadEdgeLine)
}

func TestCitationNetwork_ShapeAndTypes(t *testing.T) {
	g := datasets.CitationNetwork(10, 4, 2, 11)

	require.True(t, g.Directed())
	require.Equal(t, 16, g.NodeCount())
	require.Len(t, g.NodesOfType(plant.TypeWork), 10)
	require.Len(t, g.NodesOfType(plant.TypeAuthor), 4)
	require.Len(t, g.NodesOfType(plant.TypeSource), 2)

	var cites, authored, published int
	for _, e := range g.Edges() {
		switch e.Type {
		case "cites":
			cites++
		case "authored":
			authored++
		case "published-in":
			published++
		default:
			t.Fatalf("unexpected edge type %q", e.Type)
		}
	}
	// w1 cites 1, w2 cites 2, w3.. cite 3 each.
	assert.Equal(t, 1+2+3*7, cites)
	assert.Equal(t, 8, authored)
	assert.Equal(t, 10, published)
}

func TestCitationNetwork_Deterministic(t *testing.T) {
	a := datasets.CitationNetwork(12, 3, 2, 5)
	b := datasets.CitationNetwork(12, 3, 2, 5)

	ea, eb := a.Edges(), b.Edges()
	require.Len(t, eb, len(ea))
	for i := range ea {
		assert.Equal(t, ea[i].From, eb[i].From)
		assert.Equal(t, ea[i].To, eb[i].To)
		assert.Equal(t, ea[i].Type, eb[i].Type)
	}

	c := datasets.CitationNetwork(12, 3, 2, 6)
	same := true
	ec := c.Edges()
	for i := range ea {
		if ea[i].To != ec[i].To {
			same = false
		}
	}
	assert.False(t, same, "a different seed rewires the network")
}

func TestCitationNetwork_CitationsPointBackward(t *testing.T) {
	g := datasets.CitationNetwork(20, 0, 0, 3)
	for _, e := range g.Edges() {
		if e.Type != "cites" {
			continue
		}
		from, err := strconv.Atoi(e.From[1:])
		require.NoError(t, err)
		to, err := strconv.Atoi(e.To[1:])
		require.NoError(t, err)
		assert.Less(t, to, from, "%s cites %s", e.From, e.To)
	}
}
