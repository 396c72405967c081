// Package graph: the explicit weighted edge-list implementation of
// core.Graph.
package graph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/core"
)

// Graph is a weighted graph over dense integer vertex ids with adjacency
// stored as per-vertex neighbor slices. It satisfies core.Graph.
//
// The zero value is not usable; construct with New.
type Graph struct {
	directed        bool
	out             [][]core.Neighbor // forward adjacency
	in              [][]core.Neighbor // reverse adjacency (directed only)
	coords          [][]float64       // nil when coordinates are absent
	minWeight       float64           // minimum edge weight seen, 1 before any edge
	hasEdges        bool
	pauseActionCost float64
	edgeCollision   bool
	version         uint64
}

// New constructs a graph with n vertices and applies the functional
// options. Initial edges from WithEdges pass through AddEdge validation.
//
// Returns ErrNegativeSize, ErrBadCoordinates, ErrBadPauseCost, or any
// AddEdge error.
//
// Complexity: O(n + |edges|).
func New(n int, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.PauseActionCost < 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadPauseCost, o.PauseActionCost)
	}

	g := &Graph{
		directed:        o.Directed,
		out:             make([][]core.Neighbor, n),
		minWeight:       1,
		pauseActionCost: o.PauseActionCost,
		edgeCollision:   o.EdgeCollision,
	}
	if o.Directed {
		g.in = make([][]core.Neighbor, n)
	}

	if o.Coordinates != nil {
		if err := g.setCoordinates(o.Coordinates); err != nil {
			return nil, err
		}
	}
	for _, e := range o.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// setCoordinates validates and deep-copies one coordinate row per vertex.
func (g *Graph) setCoordinates(coords [][]float64) error {
	if len(coords) != len(g.out) {
		return fmt.Errorf("%w: got %d rows for %d vertices", ErrBadCoordinates, len(coords), len(g.out))
	}
	dim := -1
	g.coords = make([][]float64, len(coords))
	for i, row := range coords {
		if dim == -1 {
			dim = len(row)
		}
		if len(row) != dim {
			return fmt.Errorf("%w: row %d has dimension %d, want %d", ErrBadCoordinates, i, len(row), dim)
		}
		g.coords[i] = append([]float64(nil), row...)
	}

	return nil
}

// AddEdge inserts a weighted edge from→to. On an undirected graph the
// mirrored edge is inserted as well. Parallel edges are permitted.
//
// Returns core.ErrNodeOutOfRange for invalid ids, ErrNegativeWeight or
// ErrBadWeight for invalid costs.
//
// Complexity: amortized O(1).
func (g *Graph) AddEdge(from, to int, weight float64) error {
	if from < 0 || from >= len(g.out) {
		return fmt.Errorf("%w: from=%d", core.ErrNodeOutOfRange, from)
	}
	if to < 0 || to >= len(g.out) {
		return fmt.Errorf("%w: to=%d", core.ErrNodeOutOfRange, to)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeWeight, weight)
	}

	g.out[from] = append(g.out[from], core.Neighbor{Node: to, Weight: weight})
	if g.directed {
		g.in[to] = append(g.in[to], core.Neighbor{Node: from, Weight: weight})
	} else {
		g.out[to] = append(g.out[to], core.Neighbor{Node: from, Weight: weight})
	}

	if !g.hasEdges || weight < g.minWeight {
		g.minWeight = weight
		g.hasEdges = true
	}
	g.version++

	return nil
}

// Version increments on every edge insertion; resumable engines
// snapshot it to detect invalidation.
func (g *Graph) Version() uint64 { return g.version }

// Size returns the number of vertices.
func (g *Graph) Size() int { return len(g.out) }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// HasCoordinates reports whether vertex coordinates were attached.
func (g *Graph) HasCoordinates() bool { return g.coords != nil }

// MinWeight returns the minimum edge weight, or 1 before any edge is
// added. Used as the admissible heuristic scale.
func (g *Graph) MinWeight() float64 { return g.minWeight }

// EdgeCollision reports the opposing-traversal policy.
func (g *Graph) EdgeCollision() bool { return g.edgeCollision }

// SetEdgeCollision toggles the opposing-traversal policy.
func (g *Graph) SetEdgeCollision(b bool) { g.edgeCollision = b }

// PauseCost returns the configured pause action cost; the explicit
// graph charges the same cost at every vertex.
func (g *Graph) PauseCost(int) float64 { return g.pauseActionCost }

// SetPauseActionCost replaces the pause action cost.
// Returns ErrBadPauseCost for negative values.
func (g *Graph) SetPauseActionCost(cost float64) error {
	if cost < 0 {
		return fmt.Errorf("%w: %v", ErrBadPauseCost, cost)
	}
	g.pauseActionCost = cost

	return nil
}

// Neighbors enumerates edges out of node, or with reversed=true the
// edges into node. Undirected graphs enumerate the same set either way.
// Out-of-range ids yield nil, matching the interface's total signature;
// engines validate ids before searching.
func (g *Graph) Neighbors(node int, reversed bool) []core.Neighbor {
	if node < 0 || node >= len(g.out) {
		return nil
	}
	if reversed && g.directed {
		return g.in[node]
	}

	return g.out[node]
}

// EstimateDistance returns the Euclidean distance between the two
// vertices scaled by MinWeight, or 0 when no coordinates are attached.
// Out-of-range ids yield 0 (engines validate ids up front).
func (g *Graph) EstimateDistance(v1, v2 int) float64 {
	if g.coords == nil {
		return 0
	}
	if v1 < 0 || v1 >= len(g.coords) || v2 < 0 || v2 >= len(g.coords) {
		return 0
	}

	var sum float64
	a, b := g.coords[v1], g.coords[v2]
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum) * g.minWeight
}
