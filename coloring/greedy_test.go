package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoval/emergenet/builder"
	"github.com/dkoval/emergenet/coloring"
	"github.com/dkoval/emergenet/core"
)

// assertProper verifies the defining invariant: adjacent nodes never share
// a color, and the chromatic number is 1 + the highest index used.
func assertProper(t *testing.T, g *core.Graph, colors map[int]int, chromatic int) {
	t.Helper()
	for _, e := range g.Edges() {
		assert.NotEqual(t, colors[e.U], colors[e.V], "edge %v endpoints share color", e.Key())
	}
	maxIdx := -1
	for _, c := range colors {
		if c > maxIdx {
			maxIdx = c
		}
	}
	assert.Equal(t, maxIdx+1, chromatic)
}

// TestGreedy_Baseline pins the worked scenario: largest-first coloring of
// the baseline is 2-chromatic with the exact assignment
// {1:1, 2:0, 3:0, 4:1, 5:1, 6:0, 7:1, 8:0}.
func TestGreedy_Baseline(t *testing.T) {
	g := builder.Default()
	colors, chromatic, err := coloring.Greedy(g)
	require.NoError(t, err)

	assert.Equal(t, 2, chromatic)
	assert.Equal(t, map[int]int{1: 1, 2: 0, 3: 0, 4: 1, 5: 1, 6: 0, 7: 1, 8: 0}, colors)
	assertProper(t, g, colors, chromatic)
}

// TestGreedy_Deterministic verifies repeated runs agree exactly.
func TestGreedy_Deterministic(t *testing.T) {
	g := builder.Default()
	first, _, err := coloring.Greedy(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, _, runErr := coloring.Greedy(g)
		require.NoError(t, runErr)
		assert.Equal(t, first, again)
	}
}

// TestGreedy_Structures checks the invariant on a few standard shapes.
func TestGreedy_Structures(t *testing.T) {
	// Triangle needs three colors.
	tri := core.NewGraph()
	require.NoError(t, tri.AddEdge(1, 2, 1, 1))
	require.NoError(t, tri.AddEdge(2, 3, 1, 1))
	require.NoError(t, tri.AddEdge(1, 3, 1, 1))
	colors, chromatic, err := coloring.Greedy(tri)
	require.NoError(t, err)
	assert.Equal(t, 3, chromatic)
	assertProper(t, tri, colors, chromatic)

	// Star: the hub is processed first (highest degree) and takes color 0,
	// every leaf takes color 1.
	star := core.NewGraph()
	for leaf := 2; leaf <= 6; leaf++ {
		require.NoError(t, star.AddEdge(1, leaf, 1, 1))
	}
	colors, chromatic, err = coloring.Greedy(star)
	require.NoError(t, err)
	assert.Equal(t, 2, chromatic)
	assert.Equal(t, 0, colors[1])
	assertProper(t, star, colors, chromatic)

	// Isolated nodes all take color 0.
	iso := core.NewGraph()
	require.NoError(t, iso.AddNode(1))
	require.NoError(t, iso.AddNode(2))
	colors, chromatic, err = coloring.Greedy(iso)
	require.NoError(t, err)
	assert.Equal(t, 1, chromatic)
	assert.Equal(t, map[int]int{1: 0, 2: 0}, colors)
}

// TestGreedy_Empty: an empty snapshot yields an empty assignment.
func TestGreedy_Empty(t *testing.T) {
	colors, chromatic, err := coloring.Greedy(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, colors)
	assert.Zero(t, chromatic)

	_, _, err = coloring.Greedy(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}
