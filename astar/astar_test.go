// Package astar_test: heuristic-search tests, including the degenerate
// h ≡ 0 case and the spec'd diagonal-grid scenario.
package astar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
	"github.com/katalvlaran/pathfind/graph"
	"github.com/katalvlaran/pathfind/grid"
)

func TestNew_NilGraph(t *testing.T) {
	_, err := astar.New(nil)
	require.ErrorIs(t, err, core.ErrNilGraph)
}

// TestFindPath_ZeroHeuristicMatchesDijkstra runs A* on a graph without
// coordinates (h ≡ 0) and expects Dijkstra's optimum: [0 1 2 3], cost 3.
func TestFindPath_ZeroHeuristicMatchesDijkstra(t *testing.T) {
	g, err := graph.New(4, graph.WithEdges([]graph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 0, To: 2, Weight: 3},
		{From: 2, To: 3, Weight: 1},
	}))
	require.NoError(t, err)

	a, err := astar.New(g)
	require.NoError(t, err)
	path, err := a.FindPath(0, 3)
	require.NoError(t, err)
	assert.Equal(t, core.Path{0, 1, 2, 3}, path)

	cost, err := core.CalculateCost(g, path)
	require.NoError(t, err)
	assert.InDelta(t, 3, cost, 1e-12)
}

// TestFindPath_DiagonalGrid crosses a 3×3 grid corner to corner with
// diagonals enabled: [0 4 8] at cost 2√2.
func TestFindPath_DiagonalGrid(t *testing.T) {
	g, err := grid.New(3, 3,
		grid.WithDiagonalMovement(grid.Always),
		grid.WithDiagonalMovementCostMultiplier(math.Sqrt2),
	)
	require.NoError(t, err)

	a, err := astar.New(g)
	require.NoError(t, err)
	path, err := a.FindPath(0, 8)
	require.NoError(t, err)
	assert.Equal(t, core.Path{0, 4, 8}, path)

	cost, err := core.CalculateCost(g, path)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Sqrt2, cost, 1e-12)
}

// TestFindPath_CostAgreesWithDijkstra quantifies optimality: on the same
// weighted grid, A* and Dijkstra must return equally cheap paths.
func TestFindPath_CostAgreesWithDijkstra(t *testing.T) {
	weights := []float64{
		1, 4, 1, 1,
		1, -1, 4, 1,
		1, 1, 1, 1,
		4, -1, 1, 1,
	}
	g, err := grid.New(4, 4, grid.WithWeights(weights))
	require.NoError(t, err)

	a, err := astar.New(g)
	require.NoError(t, err)
	d, err := dijkstra.New(g)
	require.NoError(t, err)

	for _, goal := range []int{3, 10, 15} {
		aPath, err := a.FindPath(0, goal)
		require.NoError(t, err)
		dPath, err := d.FindPath(0, goal)
		require.NoError(t, err)
		require.NotEmpty(t, aPath, "goal %d", goal)
		require.NotEmpty(t, dPath, "goal %d", goal)
		assert.True(t, core.IsValidPath(g, aPath))

		aCost, err := core.CalculateCost(g, aPath)
		require.NoError(t, err)
		dCost, err := core.CalculateCost(g, dPath)
		require.NoError(t, err)
		assert.InDelta(t, dCost, aCost, 1e-12, "goal %d", goal)
	}
}

func TestFindPath_Boundaries(t *testing.T) {
	g, err := grid.New(2, 2, grid.WithWeights([]float64{1, -1, -1, 1}))
	require.NoError(t, err)
	a, err := astar.New(g)
	require.NoError(t, err)

	path, err := a.FindPath(3, 3)
	require.NoError(t, err)
	assert.Equal(t, core.Path{3}, path)

	path, err = a.FindPath(0, 3)
	require.NoError(t, err)
	assert.Empty(t, path, "diagonal-only crossing is blocked under Never")

	_, err = a.FindPath(0, 99)
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

// TestFindPath_AllObstacleInterior walls off the middle row of a 3×3
// grid; no cross-grid query can succeed.
func TestFindPath_AllObstacleInterior(t *testing.T) {
	g, err := grid.New(3, 3, grid.WithWeights([]float64{1, 1, 1, -1, -1, -1, 1, 1, 1}))
	require.NoError(t, err)
	a, err := astar.New(g)
	require.NoError(t, err)

	path, err := a.FindPath(0, 8)
	require.NoError(t, err)
	assert.Empty(t, path)
}
