package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoval/emergenet/builder"
	"github.com/dkoval/emergenet/core"
	"github.com/dkoval/emergenet/dijkstra"
)

// TestShortestPath_Baseline pins the worked scenario: 1 → 8 runs through
// [1,3,5,6,7,8] at weight 14, beating the naive [1,2,4,8] at 16.
func TestShortestPath_Baseline(t *testing.T) {
	path, total, err := dijkstra.ShortestPath(builder.Default(), 1, 8)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3, 5, 6, 7, 8}, path)
	assert.Equal(t, int64(14), total)
}

// TestShortestPath_Trivial covers src == dst and adjacent endpoints.
func TestShortestPath_Trivial(t *testing.T) {
	g := builder.Default()

	path, total, err := dijkstra.ShortestPath(g, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, path)
	assert.Zero(t, total)

	path, total, err = dijkstra.ShortestPath(g, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5}, path)
	assert.Equal(t, int64(2), total)
}

// TestShortestPath_Validation covers missing endpoints and negative
// weights (detected by the upfront scan before any traversal).
func TestShortestPath_Validation(t *testing.T) {
	g := builder.Default()

	_, _, err := dijkstra.ShortestPath(g, 1, 42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, _, err = dijkstra.ShortestPath(g, 42, 1)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, _, err = dijkstra.ShortestPath(nil, 1, 2)
	assert.ErrorIs(t, err, core.ErrNilGraph)

	// Inject a negative weight into an otherwise valid graph.
	bad := core.NewGraph()
	require.NoError(t, bad.AddEdge(1, 2, 3, 1))
	require.NoError(t, bad.AddEdge(2, 3, 4, 1))
	e, err := bad.Edge(1, 2)
	require.NoError(t, err)
	e.Weight = -3

	_, _, err = dijkstra.ShortestPath(bad, 1, 3)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

// TestShortestPath_NoPath verifies the defined no-path outcome.
func TestShortestPath_NoPath(t *testing.T) {
	g := builder.Default()
	require.NoError(t, g.RemoveNode(4))
	require.NoError(t, g.RemoveNode(1))
	// Node 2 is now isolated.

	path, total, err := dijkstra.ShortestPath(g, 2, 8)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
	assert.Empty(t, path)
	assert.Zero(t, total)
}

// TestAllPairs_Baseline spot-checks the distance table: symmetry, the
// diagonal, and the worked 1→8 value.
func TestAllPairs_Baseline(t *testing.T) {
	table, err := dijkstra.AllPairs(builder.Default())
	require.NoError(t, err)
	require.Len(t, table, 8)

	assert.Equal(t, 14.0, table[1][8])
	assert.Equal(t, 14.0, table[8][1], "undirected weights are symmetric")
	assert.Zero(t, table[5][5])
	assert.Equal(t, 2.0, table[3][5])
	assert.Equal(t, 5.0, table[1][5], "1-3-5 at 3+2")

	for src, row := range table {
		require.Len(t, row, 8, "row %d misses pairs", src)
	}
}

// TestAllPairs_UnreachableIsInf verifies disconnected pairs carry +Inf and
// are never omitted.
func TestAllPairs_UnreachableIsInf(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1, 1))
	require.NoError(t, g.AddNode(9))

	table, err := dijkstra.AllPairs(g)
	require.NoError(t, err)

	assert.True(t, math.IsInf(table[1][9], 1))
	assert.True(t, math.IsInf(table[9][2], 1))
	assert.Zero(t, table[9][9])
	assert.Equal(t, 1.0, table[1][2])
}
