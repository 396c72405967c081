// Package bfs_test: hop-count search and resumable-frontier tests.
package bfs_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pathfind/bfs"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/graph"
	"github.com/katalvlaran/pathfind/grid"
)

// pathGraph builds the undirected path 0—1—…—(n-1) with unit weights.
func pathGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g, err := graph.New(n)
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	for i := 0; i+1 < n; i++ {
		if err = g.AddEdge(i, i+1, 1); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	return g
}

func TestNew_NilGraph(t *testing.T) {
	if _, err := bfs.New(nil); !errors.Is(err, core.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestFindPath_Basics(t *testing.T) {
	g := pathGraph(t, 5)
	b, err := bfs.New(g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	path, err := b.FindPath(0, 4)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if len(path) != 5 || path[0] != 0 || path[4] != 4 {
		t.Errorf("FindPath(0,4) = %v; want the 4-hop line", path)
	}
	if !core.IsValidPath(g, path) {
		t.Errorf("returned path %v is not valid", path)
	}
}

func TestFindPath_StartEqualsGoal(t *testing.T) {
	b, err := bfs.New(pathGraph(t, 3))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	path, err := b.FindPath(1, 1)
	if err != nil || len(path) != 1 || path[0] != 1 {
		t.Errorf("FindPath(1,1) = %v, %v; want [1]", path, err)
	}
}

func TestFindPath_Disconnected(t *testing.T) {
	g, err := graph.New(4, graph.WithEdges([]graph.Edge{{From: 0, To: 1, Weight: 1}}))
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	b, err := bfs.New(g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	path, err := b.FindPath(0, 3)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if len(path) != 0 {
		t.Errorf("FindPath across components = %v; want empty", path)
	}
}

func TestFindPath_BadIDs(t *testing.T) {
	b, err := bfs.New(pathGraph(t, 3))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err = b.FindPath(-1, 2); !errors.Is(err, core.ErrNodeOutOfRange) {
		t.Errorf("FindPath(-1,2) error = %v; want ErrNodeOutOfRange", err)
	}
	if _, err = b.FindPath(0, 3); !errors.Is(err, core.ErrNodeOutOfRange) {
		t.Errorf("FindPath(0,3) error = %v; want ErrNodeOutOfRange", err)
	}
}

// TestFindPath_IgnoresWeights pins the hop-count-only contract: BFS
// takes the 2-hop route even when a cheap long route exists.
func TestFindPath_IgnoresWeights(t *testing.T) {
	g, err := graph.New(4, graph.WithEdges([]graph.Edge{
		{From: 0, To: 1, Weight: 100},
		{From: 1, To: 3, Weight: 100},
		{From: 0, To: 2, Weight: 1},
		{From: 2, To: 1, Weight: 1},
	}))
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	b, err := bfs.New(g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	path, err := b.FindPath(0, 3)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if len(path) != 3 {
		t.Errorf("FindPath(0,3) = %v; want the 3-vertex hop-optimal path", path)
	}
}

func TestResumable_DistancesOnDemand(t *testing.T) {
	r, err := bfs.NewResumable(pathGraph(t, 10), 0)
	if err != nil {
		t.Fatalf("NewResumable: %v", err)
	}
	// Every vertex on a 10-node line sits k hops from the anchor.
	for k := 0; k < 10; k++ {
		d, err := r.Distance(k)
		if err != nil {
			t.Fatalf("Distance(%d): %v", k, err)
		}
		if d != k {
			t.Errorf("Distance(%d) = %d; want %d", k, d, k)
		}
	}
}

func TestResumable_FindPathAndReanchor(t *testing.T) {
	g := pathGraph(t, 6)
	r, err := bfs.NewResumable(g, 0)
	if err != nil {
		t.Fatalf("NewResumable: %v", err)
	}

	path, err := r.FindPath(3)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if len(path) != 4 || path[0] != 0 || path[3] != 3 {
		t.Errorf("FindPath(3) = %v; want [0 1 2 3]", path)
	}

	if err = r.SetStartNode(5); err != nil {
		t.Fatalf("SetStartNode: %v", err)
	}
	d, err := r.Distance(0)
	if err != nil {
		t.Fatalf("Distance: %v", err)
	}
	if d != 5 {
		t.Errorf("Distance(0) after re-anchor = %d; want 5", d)
	}
}

func TestResumable_Unreachable(t *testing.T) {
	g, err := graph.New(3, graph.WithEdges([]graph.Edge{{From: 0, To: 1, Weight: 1}}))
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	r, err := bfs.NewResumable(g, 0)
	if err != nil {
		t.Fatalf("NewResumable: %v", err)
	}
	d, err := r.Distance(2)
	if err != nil {
		t.Fatalf("Distance: %v", err)
	}
	if d != bfs.Unreachable {
		t.Errorf("Distance(2) = %d; want Unreachable", d)
	}
	path, err := r.FindPath(2)
	if err != nil || path != nil {
		t.Errorf("FindPath(2) = %v, %v; want nil path", path, err)
	}
}

func TestResumable_GraphMutationDetected(t *testing.T) {
	g, err := grid.New(3, 3)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	r, err := bfs.NewResumable(g, 0)
	if err != nil {
		t.Fatalf("NewResumable: %v", err)
	}
	if _, err = r.Distance(4); err != nil {
		t.Fatalf("Distance: %v", err)
	}

	if err = g.AddObstacle(4); err != nil {
		t.Fatalf("AddObstacle: %v", err)
	}
	if _, err = r.Distance(8); !errors.Is(err, bfs.ErrGraphMutated) {
		t.Errorf("Distance after mutation = %v; want ErrGraphMutated", err)
	}

	// Re-anchoring refreshes the snapshot.
	if err = r.SetStartNode(0); err != nil {
		t.Fatalf("SetStartNode: %v", err)
	}
	if _, err = r.Distance(8); err != nil {
		t.Errorf("Distance after re-anchor: %v", err)
	}
}
