package metrics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoval/emergenet/builder"
	"github.com/dkoval/emergenet/core"
	"github.com/dkoval/emergenet/metrics"
)

// TestCalculate_Baseline checks every statistic on the 8-site baseline.
// The graph is triangle-free, so clustering is exactly 0; hop distances
// give an average path length of 58/28 per unordered pair (2.0714…) and a
// diameter of 4 (between nodes 2 and 6).
func TestCalculate_Baseline(t *testing.T) {
	m := metrics.Calculate(builder.Default())

	assert.InDelta(t, 2.0*9/(8*7), m.Density, 1e-9)
	assert.Zero(t, m.AvgClustering)
	assert.InDelta(t, 116.0/56.0, m.AvgPathLength, 1e-9)
	assert.Equal(t, 4.0, m.Diameter)
	assert.Equal(t, 1, m.ConnectedComponents)
	assert.InDelta(t, 2.25, m.AvgDegree, 1e-9)
}

// TestCalculate_Clustering verifies the coefficient on a graph that does
// contain triangles: a triangle with a pendant node.
//
//	1-2, 2-3, 1-3 (triangle), 3-4 (pendant)
//
// Local coefficients: 1, 1, 1/3, 0 → average 7/12.
func TestCalculate_Clustering(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1, 1))
	require.NoError(t, g.AddEdge(1, 3, 1, 1))
	require.NoError(t, g.AddEdge(3, 4, 1, 1))

	m := metrics.Calculate(g)
	assert.InDelta(t, 7.0/12.0, m.AvgClustering, 1e-9)
}

// TestCalculate_Disconnected verifies the +Inf sentinels and the component
// count once the topology splits.
func TestCalculate_Disconnected(t *testing.T) {
	g := builder.Default()
	require.NoError(t, g.RemoveNode(4))
	require.NoError(t, g.RemoveNode(1))
	// Node 2 is now isolated from the 3-5-6-7-8 chain.

	m := metrics.Calculate(g)
	assert.Equal(t, 2, m.ConnectedComponents)
	assert.True(t, math.IsInf(m.AvgPathLength, 1), "disconnected → +Inf, not an error")
	assert.True(t, math.IsInf(m.Diameter, 1))
}

// TestCalculate_Degenerate covers the empty, single-node and two-node
// graphs, which must produce defined zeros rather than failing.
func TestCalculate_Degenerate(t *testing.T) {
	assert.Equal(t, metrics.Metrics{}, metrics.Calculate(nil))
	assert.Equal(t, metrics.Metrics{}, metrics.Calculate(core.NewGraph()))

	single := core.NewGraph()
	require.NoError(t, single.AddNode(1))
	m := metrics.Calculate(single)
	assert.Zero(t, m.Density)
	assert.Zero(t, m.AvgPathLength)
	assert.Zero(t, m.Diameter)
	assert.Equal(t, 1, m.ConnectedComponents)

	pair := core.NewGraph()
	require.NoError(t, pair.AddEdge(1, 2, 3, 5))
	m = metrics.Calculate(pair)
	assert.InDelta(t, 1.0, m.Density, 1e-9)
	assert.Zero(t, m.AvgClustering, "clustering defined as 0 for |V| ≤ 2")
	assert.InDelta(t, 1.0, m.AvgPathLength, 1e-9)
	assert.Equal(t, 1.0, m.Diameter)
	assert.InDelta(t, 1.0, m.AvgDegree, 1e-9)
}
