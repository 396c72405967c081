// Package graph: types, options, and sentinel errors for the explicit
// graph kind.
package graph

import "errors"

// Sentinel errors for graph construction and mutation.
var (
	// ErrNegativeSize indicates a negative vertex count.
	ErrNegativeSize = errors.New("graph: size must be non-negative")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")

	// ErrBadWeight indicates an edge weight that is NaN or infinite.
	ErrBadWeight = errors.New("graph: edge weight must be finite")

	// ErrBadCoordinates indicates a coordinate slice whose length does
	// not match the vertex count, or rows of differing dimension.
	ErrBadCoordinates = errors.New("graph: coordinates must cover every vertex with equal dimension")

	// ErrBadPauseCost indicates a negative pause action cost.
	ErrBadPauseCost = errors.New("graph: pause action cost must be non-negative")
)

// Edge is one weighted directed transition used by WithEdges. On an
// undirected graph the mirrored edge is added automatically.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Options configures graph construction.
//
//   - Directed: one-way edges; Neighbors(v, reversed=true) then
//     enumerates true predecessors.
//   - Edges: initial edge list, applied through AddEdge.
//   - Coordinates: per-vertex position of uniform dimension, enabling
//     EstimateDistance.
//   - PauseActionCost: cost of the pause action in space-time planning.
//   - EdgeCollision: forbid opposing traversals of one edge at one step.
type Options struct {
	Directed        bool
	Edges           []Edge
	Coordinates     [][]float64
	PauseActionCost float64
	EdgeCollision   bool
}

// Option is a functional option for New.
type Option func(*Options)

// WithDirected makes every edge one-way.
func WithDirected() Option {
	return func(o *Options) { o.Directed = true }
}

// WithEdges supplies the initial edge list; each entry is validated as
// if passed to AddEdge.
func WithEdges(edges []Edge) Option {
	return func(o *Options) { o.Edges = edges }
}

// WithCoordinates attaches one coordinate row per vertex. All rows must
// share a dimension; the slice length must equal the vertex count.
func WithCoordinates(coords [][]float64) Option {
	return func(o *Options) { o.Coordinates = coords }
}

// WithPauseActionCost sets the cost charged for remaining in place for
// one time step. Must be non-negative; validated in New.
func WithPauseActionCost(cost float64) Option {
	return func(o *Options) { o.PauseActionCost = cost }
}

// WithEdgeCollision forbids two agents from traversing the same edge in
// opposite directions at the same time step.
func WithEdgeCollision() Option {
	return func(o *Options) { o.EdgeCollision = true }
}

// DefaultOptions returns the Options New starts from: an undirected
// graph without coordinates, pause cost 1, edge collisions off.
func DefaultOptions() Options {
	return Options{PauseActionCost: 1}
}
