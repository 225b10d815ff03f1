package rank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathlab/mirank/core"
	"github.com/pathlab/mirank/rank"
)

// addNodes inserts plain nodes for every given ID.
func addNodes(t *testing.T, g *core.Graph, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, g.AddNode(core.NewNode(id)))
	}
}

// addEdge inserts an undirected unit-weight edge with a derived ID.
func addEdge(t *testing.T, g *core.Graph, from, to string) {
	t.Helper()
	require.NoError(t, g.AddEdge(&core.Edge{ID: from + "-" + to, From: from, To: to, Weight: 1}))
}

func TestEdgeMI_SharedWitness(t *testing.T) {
	// u and v are adjacent and share witness c:
	// N(u) = {v, c}, N(v) = {u, c} -> |∩| = 1, |∪| = 3.
	g := core.New()
	addNodes(t, g, "u", "v", "c")
	addEdge(t, g, "u", "v")
	addEdge(t, g, "u", "c")
	addEdge(t, g, "v", "c")

	assert.InDelta(t, 1.0/3.0, rank.EdgeMI(g, "u", "v", rank.OutgoingOnly), 1e-12)
	// MI is symmetric on undirected graphs.
	assert.InDelta(t, 1.0/3.0, rank.EdgeMI(g, "v", "u", rank.OutgoingOnly), 1e-12)
}

func TestEdgeMI_IsolatedEdgeIsZero(t *testing.T) {
	// An isolated edge has disjoint open neighborhoods: N(u)={v}, N(v)={u}.
	g := core.New()
	addNodes(t, g, "u", "v")
	addEdge(t, g, "u", "v")

	assert.Zero(t, rank.EdgeMI(g, "u", "v", rank.OutgoingOnly))
}

func TestEdgeMI_MissingNodeIsZero(t *testing.T) {
	g := core.New()
	addNodes(t, g, "u")
	assert.Zero(t, rank.EdgeMI(g, "u", "ghost", rank.OutgoingOnly))
}

func TestEdgeMI_DirectedModes(t *testing.T) {
	// Directed: u->v, c->u, c->v, u->w, v->w.
	g := core.New(core.WithDirected())
	addNodes(t, g, "u", "v", "c", "w")
	for _, e := range [][2]string{{"u", "v"}, {"c", "u"}, {"c", "v"}, {"u", "w"}, {"v", "w"}} {
		require.NoError(t, g.AddEdge(&core.Edge{ID: e[0] + ">" + e[1], From: e[0], To: e[1]}))
	}

	// Outgoing-only: N(u)={v,w}, N(v)={w} -> 1/2.
	assert.InDelta(t, 0.5, rank.EdgeMI(g, "u", "v", rank.OutgoingOnly), 1e-12)

	// Both directions: N(u)={v,w,c}, N(v)={u,w,c} -> shared {w,c}, union 4.
	assert.InDelta(t, 0.5, rank.EdgeMI(g, "u", "v", rank.BothDirections), 1e-12)
}

func TestGeometricMeanMI_ZeroEdgeConvention(t *testing.T) {
	// Chain u-v-t where (u,v) has a witness but (v,t) is witness-free:
	// the zero-MI edge forces the aggregate to 0 by convention.
	g := core.New()
	addNodes(t, g, "u", "v", "c", "t")
	addEdge(t, g, "u", "v")
	addEdge(t, g, "u", "c")
	addEdge(t, g, "v", "c")
	addEdge(t, g, "v", "t")

	paths, err := rank.EnumeratePaths(g, "u", "t", 3, rank.OutgoingOnly)
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	var chain *core.Path
	for _, p := range paths {
		if p.Key() == "u→v→t" {
			chain = p
		}
	}
	require.NotNil(t, chain)
	assert.Zero(t, rank.GeometricMeanMI(g, chain, rank.OutgoingOnly))
}

func TestGeometricMeanMI_UniformEdges(t *testing.T) {
	// Two consecutive edges with identical MI: the geometric mean equals it.
	g := core.New()
	addNodes(t, g, "a", "b", "c", "w1", "w2")
	addEdge(t, g, "a", "b")
	addEdge(t, g, "b", "c")
	addEdge(t, g, "a", "w1")
	addEdge(t, g, "b", "w1")
	addEdge(t, g, "b", "w2")
	addEdge(t, g, "c", "w2")

	miAB := rank.EdgeMI(g, "a", "b", rank.OutgoingOnly)
	miBC := rank.EdgeMI(g, "b", "c", rank.OutgoingOnly)
	require.InDelta(t, miAB, miBC, 1e-12, "construction is symmetric")

	paths, err := rank.EnumeratePaths(g, "a", "c", 2, rank.OutgoingOnly)
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	p := paths[0]
	require.Equal(t, "a→b→c", p.Key())

	assert.InDelta(t, miAB, rank.GeometricMeanMI(g, p, rank.OutgoingOnly), 1e-12)
}

func TestGeometricMeanMI_NilAndTrivial(t *testing.T) {
	g := core.New()
	addNodes(t, g, "a")
	n, _ := g.Node("a")

	assert.Zero(t, rank.GeometricMeanMI(g, nil, rank.OutgoingOnly))
	assert.Zero(t, rank.GeometricMeanMI(g, core.NewPath([]*core.Node{n}, nil), rank.OutgoingOnly))
}
