// Package dijkstra_test: minimum-cost search and resumable-frontier
// tests, including agreement between the two engines.
package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
	"github.com/katalvlaran/pathfind/graph"
	"github.com/katalvlaran/pathfind/grid"
)

func TestNew_NilGraph(t *testing.T) {
	if _, err := dijkstra.New(nil); !errors.Is(err, core.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestFindPath_TakesCheaperDetour(t *testing.T) {
	// Direct hop 0→2 costs 5; the detour through 1 costs 3.
	g, err := graph.New(3, graph.WithEdges([]graph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 0, To: 2, Weight: 5},
	}))
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	d, err := dijkstra.New(g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	path, err := d.FindPath(0, 2)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	cost, err := core.CalculateCost(g, path)
	if err != nil {
		t.Fatalf("CalculateCost: %v", err)
	}
	if cost != 3 || len(path) != 3 {
		t.Errorf("FindPath(0,2) = %v cost %v; want [0 1 2] cost 3", path, cost)
	}
}

func TestFindPath_ManhattanGrid(t *testing.T) {
	// 3×3 unit grid, no diagonals: 0→8 costs 4 over 5 cells.
	g, err := grid.New(3, 3)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	d, err := dijkstra.New(g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	path, err := d.FindPath(0, 8)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if len(path) != 5 || path[0] != 0 || path[4] != 8 {
		t.Errorf("FindPath(0,8) = %v; want a 5-vertex Manhattan path", path)
	}
	cost, err := core.CalculateCost(g, path)
	if err != nil || cost != 4 {
		t.Errorf("cost = %v, %v; want 4", cost, err)
	}
	if !core.IsValidPath(g, path) {
		t.Errorf("path %v is not valid", path)
	}
}

func TestFindPath_Boundaries(t *testing.T) {
	g, err := graph.New(4, graph.WithEdges([]graph.Edge{{From: 0, To: 1, Weight: 1}}))
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	d, err := dijkstra.New(g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if path, err := d.FindPath(2, 2); err != nil || len(path) != 1 || path[0] != 2 {
		t.Errorf("FindPath(2,2) = %v, %v; want [2]", path, err)
	}
	if path, err := d.FindPath(0, 3); err != nil || len(path) != 0 {
		t.Errorf("FindPath(0,3) = %v, %v; want empty", path, err)
	}
	if _, err = d.FindPath(0, 4); !errors.Is(err, core.ErrNodeOutOfRange) {
		t.Errorf("FindPath(0,4) error = %v; want ErrNodeOutOfRange", err)
	}
}

// TestFindPath_HopCountMatchesBFSOnUniformWeights pins the equivalence
// between weighted search and hop counting when all edges cost alike.
func TestFindPath_HopCountMatchesBFSOnUniformWeights(t *testing.T) {
	g, err := graph.New(6, graph.WithEdges([]graph.Edge{
		{From: 0, To: 1, Weight: 2}, {From: 1, To: 2, Weight: 2},
		{From: 0, To: 3, Weight: 2}, {From: 3, To: 4, Weight: 2},
		{From: 4, To: 2, Weight: 2}, {From: 2, To: 5, Weight: 2},
	}))
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	d, err := dijkstra.New(g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	path, err := d.FindPath(0, 5)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if len(path) != 4 {
		t.Errorf("FindPath(0,5) = %v; want 4 vertices (3 hops)", path)
	}
}

func TestResumable_AgreesWithFreshSearches(t *testing.T) {
	// Weighted 4×4 grid with a wall through the middle.
	weights := []float64{
		1, 2, 1, 1,
		1, -1, -1, 1,
		1, 3, 1, 1,
		2, 1, 1, 1,
	}
	g, err := grid.New(4, 4, grid.WithWeights(weights))
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}

	r, err := dijkstra.NewResumable(g, 0)
	if err != nil {
		t.Fatalf("NewResumable: %v", err)
	}
	fresh, err := dijkstra.New(g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for v := 0; v < g.Size(); v++ {
		got, err := r.Distance(v)
		if err != nil {
			t.Fatalf("Distance(%d): %v", v, err)
		}

		path, err := fresh.FindPath(0, v)
		if err != nil {
			t.Fatalf("FindPath(0,%d): %v", v, err)
		}
		if len(path) == 0 {
			if v != 0 && !math.IsInf(got, 1) {
				t.Errorf("Distance(%d) = %v; fresh search found no path", v, got)
			}

			continue
		}
		want, err := core.CalculateCost(g, path)
		if err != nil {
			t.Fatalf("CalculateCost: %v", err)
		}
		if got != want {
			t.Errorf("Distance(%d) = %v; fresh cost %v", v, got, want)
		}
	}
}

func TestResumable_PathEndpoints(t *testing.T) {
	g, err := grid.New(3, 3)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	r, err := dijkstra.NewResumable(g, 4)
	if err != nil {
		t.Fatalf("NewResumable: %v", err)
	}
	path, err := r.FindPath(8)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if path[0] != 4 || path[len(path)-1] != 8 {
		t.Errorf("FindPath(8) = %v; want endpoints 4 and 8", path)
	}
}

func TestResumable_GraphMutationDetected(t *testing.T) {
	g, err := grid.New(3, 3)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	r, err := dijkstra.NewResumable(g, 0)
	if err != nil {
		t.Fatalf("NewResumable: %v", err)
	}
	if _, err = r.Distance(1); err != nil {
		t.Fatalf("Distance: %v", err)
	}
	if err = g.UpdateWeight(4, 9); err != nil {
		t.Fatalf("UpdateWeight: %v", err)
	}
	if _, err = r.Distance(8); !errors.Is(err, dijkstra.ErrGraphMutated) {
		t.Errorf("Distance after mutation = %v; want ErrGraphMutated", err)
	}
}
