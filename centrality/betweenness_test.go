package centrality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoval/emergenet/builder"
	"github.com/dkoval/emergenet/centrality"
	"github.com/dkoval/emergenet/core"
)

// TestBetweenness_Path: the middle of a three-node path lies on the only
// shortest path between the endpoints, so its normalized score is 1.
func TestBetweenness_Path(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1, 1))

	bc := centrality.Betweenness(g)
	assert.InDelta(t, 1.0, bc[2], 1e-9)
	assert.Zero(t, bc[1])
	assert.Zero(t, bc[3])
}

// TestBetweenness_Cycle: on a 4-cycle each opposite pair has two shortest
// paths splitting their dependency, giving every node 1/6.
func TestBetweenness_Cycle(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1, 1))
	require.NoError(t, g.AddEdge(3, 4, 1, 1))
	require.NoError(t, g.AddEdge(1, 4, 1, 1))

	bc := centrality.Betweenness(g)
	for id, score := range bc {
		assert.InDelta(t, 1.0/6.0, score, 1e-9, "node %d", id)
	}
}

// TestBetweenness_Baseline pins the hand-computed normalized scores of
// the 8-site baseline. The topology is symmetric under the swap
// 1↔2, 3↔4, 5↔8, 6↔7, which the paired values reflect.
func TestBetweenness_Baseline(t *testing.T) {
	bc := centrality.Betweenness(builder.Default())

	want := map[int]float64{
		1: 4.0 / 3 / 21, 2: 4.0 / 3 / 21,
		3: 22.0 / 3 / 21, 4: 22.0 / 3 / 21,
		5: 4.0 / 21, 8: 4.0 / 21,
		6: 7.0 / 3 / 21, 7: 7.0 / 3 / 21,
	}
	require.Len(t, bc, 8)
	for id, w := range want {
		assert.InDelta(t, w, bc[id], 1e-9, "node %d", id)
	}
}

// TestBetweenness_Degenerate: fewer than three nodes scores 0 everywhere.
func TestBetweenness_Degenerate(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1, 1))

	bc := centrality.Betweenness(g)
	assert.Equal(t, map[int]float64{1: 0, 2: 0}, bc)

	assert.Empty(t, centrality.Betweenness(core.NewGraph()))
	assert.Empty(t, centrality.Betweenness(nil))
}

// TestRanked orders by descending score with ascending-ID tie-breaks.
func TestRanked(t *testing.T) {
	ranked := centrality.Ranked(map[int]float64{
		4: 0.5, 2: 0.1, 7: 0.5, 1: 0.1, 5: 0.9,
	})

	require.Len(t, ranked, 5)
	assert.Equal(t, 5, ranked[0].ID)
	assert.Equal(t, 4, ranked[1].ID, "tie 0.5 → smaller ID first")
	assert.Equal(t, 7, ranked[2].ID)
	assert.Equal(t, 1, ranked[3].ID, "tie 0.1 → smaller ID first")
	assert.Equal(t, 2, ranked[4].ID)
}

// TestRanked_Baseline: sites 3 and 4 are the structural bridges of the
// baseline and rank first.
func TestRanked_Baseline(t *testing.T) {
	ranked := centrality.Ranked(centrality.Betweenness(builder.Default()))
	require.Len(t, ranked, 8)
	assert.Equal(t, 3, ranked[0].ID)
	assert.Equal(t, 4, ranked[1].ID)
	assert.Equal(t, 5, ranked[2].ID)
	assert.Equal(t, 8, ranked[3].ID)
}
