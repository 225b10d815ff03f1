package plant_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathlab/mirank/core"
	"github.com/pathlab/mirank/plant"
	"github.com/pathlab/mirank/rank"
)

// baseGraph returns n isolated plain nodes "n0".."n{n-1}".
func baseGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.New()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(core.NewNode(fmt.Sprintf("n%d", i))))
	}

	return g
}

func TestPlantGroundTruthPaths_EmptyGraph(t *testing.T) {
	_, err := plant.PlantGroundTruthPaths(core.New(), plant.Config{
		NumPaths: 1, MinLength: 2, MaxLength: 3, Seed: 7,
	})
	require.ErrorIs(t, err, plant.ErrEmptyGraph)
	assert.Contains(t, err.Error(), "empty graph")
}

func TestPlantGroundTruthPaths_ConfigValidation(t *testing.T) {
	g := baseGraph(t, 4)

	_, err := plant.PlantGroundTruthPaths(nil, plant.Config{NumPaths: 1, MinLength: 1, MaxLength: 1})
	require.ErrorIs(t, err, plant.ErrNilGraph)

	for _, cfg := range []plant.Config{
		{NumPaths: 0, MinLength: 2, MaxLength: 3},
		{NumPaths: 1, MinLength: 0, MaxLength: 3},
		{NumPaths: 1, MinLength: 3, MaxLength: 2},
	} {
		_, err = plant.PlantGroundTruthPaths(g, cfg)
		require.Error(t, err, "config %+v", cfg)
	}

	// Unknown constrained endpoint is a config error.
	_, err = plant.PlantGroundTruthPaths(g, plant.Config{
		NumPaths: 1, MinLength: 2, MaxLength: 2, SourceNodes: []string{"ghost"},
	})
	require.ErrorIs(t, err, plant.ErrBadConfig)
}

func TestPlantGroundTruthPaths_Shape(t *testing.T) {
	g := baseGraph(t, 8)
	cfg := plant.Config{NumPaths: 3, MinLength: 2, MaxLength: 4, Signal: plant.Medium, Seed: 42}

	res, err := plant.PlantGroundTruthPaths(g, cfg)
	require.NoError(t, err)
	require.Len(t, res.Paths, 3)
	require.Len(t, res.Relevance, 3)

	for _, p := range res.Paths {
		assert.GreaterOrEqual(t, p.Len(), cfg.MinLength)
		assert.LessOrEqual(t, p.Len(), cfg.MaxLength)
		require.NoError(t, p.Validate(g), "planted paths are consistent in the augmented graph")
		rel, ok := res.Relevance[p.Key()]
		require.True(t, ok)
		assert.Greater(t, rel, 0.0, "planted paths carry positive MI")
	}

	assert.Positive(t, res.Meta.NodesAdded)
	assert.Positive(t, res.Meta.EdgesAdded)
	assert.Positive(t, res.Meta.MeanMI)
}

func TestPlantGroundTruthPaths_NoOverlapEndpoints(t *testing.T) {
	g := baseGraph(t, 12)
	res, err := plant.PlantGroundTruthPaths(g, plant.Config{
		NumPaths: 3, MinLength: 2, MaxLength: 2, Signal: plant.Strong, Seed: 5,
	})
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, p := range res.Paths {
		seen[p.Nodes[0].ID]++
		seen[p.Nodes[len(p.Nodes)-1].ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "endpoint %s reused without AllowOverlap", id)
	}
}

func TestPlantGroundTruthPaths_Deterministic(t *testing.T) {
	g := baseGraph(t, 10)
	cfg := plant.Config{NumPaths: 4, MinLength: 2, MaxLength: 4, Signal: plant.Strong, Seed: 99, AllowOverlap: true}

	a, err := plant.PlantGroundTruthPaths(g.Clone(), cfg)
	require.NoError(t, err)
	b, err := plant.PlantGroundTruthPaths(g.Clone(), cfg)
	require.NoError(t, err)

	require.Len(t, b.Paths, len(a.Paths))
	for i := range a.Paths {
		assert.Equal(t, a.Paths[i].Key(), b.Paths[i].Key(), "bit-identical path sets")
	}
	assert.Equal(t, a.Relevance, b.Relevance, "bit-identical relevance")
	assert.Equal(t, a.Meta, b.Meta)

	// A different seed moves the plants.
	cfg.Seed = 100
	c, err := plant.PlantGroundTruthPaths(g.Clone(), cfg)
	require.NoError(t, err)
	same := true
	for i := range a.Paths {
		if a.Paths[i].Key() != c.Paths[i].Key() {
			same = false
		}
	}
	assert.False(t, same, "different seeds should plant different paths")
}

func TestPlantGroundTruthPaths_SignalBands(t *testing.T) {
	// On an edge-free base graph the witness calibration is exact:
	// weak < 0.3, strong > 0.7 per-path geometric-mean MI.
	for _, tc := range []struct {
		sig    plant.Signal
		lo, hi float64
	}{
		{plant.Weak, 0.0, 0.3},
		{plant.Medium, 0.3, 0.7},
		{plant.Strong, 0.7, 1.0},
	} {
		g := baseGraph(t, 6)
		res, err := plant.PlantGroundTruthPaths(g, plant.Config{
			NumPaths: 2, MinLength: 2, MaxLength: 3, Signal: tc.sig, Seed: 11,
		})
		require.NoError(t, err)
		for _, p := range res.Paths {
			mi := res.Relevance[p.Key()]
			assert.Greater(t, mi, tc.lo, "%s band floor for %s", tc.sig, p.Key())
			assert.LessOrEqual(t, mi, tc.hi, "%s band ceiling for %s", tc.sig, p.Key())
		}
	}
}

func TestPlantGroundTruthPaths_SignalMonotonicity(t *testing.T) {
	// Statistical property: across many seeds, strong plants must carry more
	// MI than weak plants on average (not guaranteed per instance).
	var weakSum, strongSum float64
	const trials = 20
	for seed := int64(1); seed <= trials; seed++ {
		gw := baseGraph(t, 10)
		wres, err := plant.PlantGroundTruthPaths(gw, plant.Config{
			NumPaths: 2, MinLength: 2, MaxLength: 4, Signal: plant.Weak, Seed: seed,
		})
		require.NoError(t, err)
		weakSum += wres.Meta.MeanMI

		gs := baseGraph(t, 10)
		sres, err := plant.PlantGroundTruthPaths(gs, plant.Config{
			NumPaths: 2, MinLength: 2, MaxLength: 4, Signal: plant.Strong, Seed: seed,
		})
		require.NoError(t, err)
		strongSum += sres.Meta.MeanMI
	}
	assert.Greater(t, strongSum/trials, weakSum/trials)
}

func TestAddNoisePaths_NoOps(t *testing.T) {
	// count == 0 is a no-op.
	g := baseGraph(t, 5)
	res, err := plant.AddNoisePaths(g, nil, 0, 3)
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())

	// Fewer than 2 nodes is a no-op.
	g1 := baseGraph(t, 1)
	res, err = plant.AddNoisePaths(g1, nil, 3, 3)
	require.NoError(t, err)
	assert.Empty(t, res.Paths)

	// Negative count is a config error.
	_, err = plant.AddNoisePaths(g, nil, -1, 3)
	require.ErrorIs(t, err, plant.ErrBadConfig)

	_, err = plant.AddNoisePaths(nil, nil, 1, 3)
	require.ErrorIs(t, err, plant.ErrNilGraph)
}

func TestAddNoisePaths_LowMI(t *testing.T) {
	g := baseGraph(t, 8)
	gt, err := plant.PlantGroundTruthPaths(g, plant.Config{
		NumPaths: 2, MinLength: 2, MaxLength: 3, Signal: plant.Strong, Seed: 17,
	})
	require.NoError(t, err)

	res, err := plant.AddNoisePaths(g, gt.Paths, 3, 18)
	require.NoError(t, err)
	require.Len(t, res.Paths, 3)

	for _, p := range res.Paths {
		require.NoError(t, p.Validate(g))
		assert.Zero(t, res.Relevance[p.Key()], "noise relevance is zero")
		assert.Zero(t, rank.GeometricMeanMI(g, p, rank.OutgoingOnly),
			"witness-free spines carry no mutual information")
	}

	// Ground-truth paths keep their strong signal after noise injection.
	for _, p := range gt.Paths {
		assert.Greater(t, rank.GeometricMeanMI(g, p, rank.OutgoingOnly), 0.5)
	}
}

func TestAddNoisePaths_Deterministic(t *testing.T) {
	g := baseGraph(t, 8)
	a, err := plant.AddNoisePaths(g.Clone(), nil, 4, 77)
	require.NoError(t, err)
	b, err := plant.AddNoisePaths(g.Clone(), nil, 4, 77)
	require.NoError(t, err)

	require.Len(t, b.Paths, len(a.Paths))
	for i := range a.Paths {
		assert.Equal(t, a.Paths[i].Key(), b.Paths[i].Key())
	}
}

func TestDeriveSeed(t *testing.T) {
	// Deterministic and well-spread across streams.
	assert.Equal(t, plant.DeriveSeed(42, 0), plant.DeriveSeed(42, 0))
	assert.NotEqual(t, plant.DeriveSeed(42, 0), plant.DeriveSeed(42, 1))
	assert.NotEqual(t, plant.DeriveSeed(42, 0), plant.DeriveSeed(43, 0))

	// RNGFromSeed(0) falls back to the stable default stream.
	assert.Equal(t, plant.RNGFromSeed(0).Int63(), plant.RNGFromSeed(1).Int63())
}
