// Package reservation: the occupancy table implementation.
package reservation

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/core"
)

// Sentinel errors for reservation-table operations.
var (
	// ErrBadSize indicates a non-positive graph size.
	ErrBadSize = errors.New("reservation: graph size must be positive")

	// ErrNegativeTime indicates a negative time index.
	ErrNegativeTime = errors.New("reservation: time must be non-negative")

	// ErrNegativeWeight indicates a negative additional weight.
	ErrNegativeWeight = errors.New("reservation: additional weight must be non-negative")
)

// vertexKey identifies one (time, vertex) occupancy fact.
type vertexKey struct {
	time int
	node int
}

// edgeKey identifies one forbidden traversal from→to completing at time.
type edgeKey struct {
	time int
	from int
	to   int
}

// Table is the time-indexed occupancy structure. Per-(time, vertex) and
// per-edge queries are O(1), while Empty scans every vertex;
// memory is proportional to the number of registered facts plus one
// integer per vertex.
//
// The zero value is not usable; construct with New.
type Table struct {
	size          int
	vertices      map[vertexKey]struct{}
	edges         map[edgeKey]struct{}
	weights       map[vertexKey]float64
	lastReserved  []int // max discrete reservation time per vertex, -1 when none
	semiStaticMin []int // first permanently-reserved time per vertex, MaxInt when none
}

// New constructs a table for a graph of size vertices.
// Returns ErrBadSize for non-positive sizes.
//
// Complexity: O(size).
func New(size int) (*Table, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}

	t := &Table{
		size:          size,
		vertices:      make(map[vertexKey]struct{}),
		edges:         make(map[edgeKey]struct{}),
		weights:       make(map[vertexKey]float64),
		lastReserved:  make([]int, size),
		semiStaticMin: make([]int, size),
	}
	for i := 0; i < size; i++ {
		t.lastReserved[i] = -1
		t.semiStaticMin[i] = math.MaxInt
	}

	return t, nil
}

// Size returns the vertex count the table was built for.
func (t *Table) Size() int { return t.size }

// Empty reports whether no fact of any kind has been registered.
func (t *Table) Empty() bool {
	return len(t.vertices) == 0 && len(t.edges) == 0 && len(t.weights) == 0 && !t.hasSemiStatic()
}

func (t *Table) hasSemiStatic() bool {
	for _, from := range t.semiStaticMin {
		if from != math.MaxInt {
			return true
		}
	}

	return false
}

// checkTimeNode validates a (time, node) pair.
func (t *Table) checkTimeNode(time, node int) error {
	if time < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeTime, time)
	}
	if node < 0 || node >= t.size {
		return fmt.Errorf("%w: %d", core.ErrNodeOutOfRange, node)
	}

	return nil
}

// AddVertexConstraint reserves node at the given time.
func (t *Table) AddVertexConstraint(time, node int) error {
	if err := t.checkTimeNode(time, node); err != nil {
		return err
	}

	t.vertices[vertexKey{time: time, node: node}] = struct{}{}
	if time > t.lastReserved[node] {
		t.lastReserved[node] = time
	}

	return nil
}

// AddEdgeConstraint forbids the traversal from→to completing at the
// given time.
func (t *Table) AddEdgeConstraint(time, from, to int) error {
	if err := t.checkTimeNode(time, from); err != nil {
		return err
	}
	if to < 0 || to >= t.size {
		return fmt.Errorf("%w: %d", core.ErrNodeOutOfRange, to)
	}

	t.edges[edgeKey{time: time, from: from, to: to}] = struct{}{}

	return nil
}

// AddSemiStaticConstraint reserves node at every time ≥ the given time:
// the dynamic-obstacle form of an agent parked on its goal.
func (t *Table) AddSemiStaticConstraint(time, node int) error {
	if err := t.checkTimeNode(time, node); err != nil {
		return err
	}

	if time < t.semiStaticMin[node] {
		t.semiStaticMin[node] = time
	}

	return nil
}

// AddAdditionalWeight attaches an additive cost to entering node at the
// given time, on top of the graph edge cost. Weights accumulate.
func (t *Table) AddAdditionalWeight(time, node int, extra float64) error {
	if err := t.checkTimeNode(time, node); err != nil {
		return err
	}
	if extra < 0 || math.IsNaN(extra) {
		return fmt.Errorf("%w: %v", ErrNegativeWeight, extra)
	}

	t.weights[vertexKey{time: time, node: node}] += extra

	return nil
}

// AddPath registers an agent's committed path starting at startTime.
//
// Each step i reserves (startTime+i, path[i]). With edgeCollision, every
// transition additionally forbids the head-on traversal: the reverse
// edge completing at startTime+i+1. With reserveDestination the final
// cell receives a semi-static constraint at its arrival time. With
// reversed the path is registered back-to-front (a coordinator that
// planned goal→start does not need to copy the slice).
//
// An empty path is a no-op.
//
// Complexity: O(len(path)).
func (t *Table) AddPath(startTime int, path core.Path, reserveDestination, reversed, edgeCollision bool) error {
	if startTime < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeTime, startTime)
	}
	n := len(path)
	if n == 0 {
		return nil
	}

	at := func(i int) int {
		if reversed {
			return path[n-1-i]
		}

		return path[i]
	}
	for i := 0; i < n; i++ {
		if err := t.AddVertexConstraint(startTime+i, at(i)); err != nil {
			return err
		}
		if edgeCollision && i+1 < n && at(i) != at(i+1) {
			if err := t.AddEdgeConstraint(startTime+i+1, at(i+1), at(i)); err != nil {
				return err
			}
		}
	}
	if reserveDestination {
		return t.AddSemiStaticConstraint(startTime+n-1, at(n-1))
	}

	return nil
}

// AddWeightPath applies the additive cost extra to each (time, vertex)
// pair along the path, starting at startTime.
func (t *Table) AddWeightPath(startTime int, path core.Path, extra float64) error {
	if startTime < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeTime, startTime)
	}

	for i, v := range path {
		if err := t.AddAdditionalWeight(startTime+i, v, extra); err != nil {
			return err
		}
	}

	return nil
}

// IsReserved reports whether node is occupied at the given time, by a
// discrete constraint or a semi-static one. Invalid input reads as
// unreserved.
func (t *Table) IsReserved(time, node int) bool {
	if time < 0 || node < 0 || node >= t.size {
		return false
	}
	if time >= t.semiStaticMin[node] {
		return true
	}
	_, ok := t.vertices[vertexKey{time: time, node: node}]

	return ok
}

// IsEdgeReserved reports whether the traversal from→to completing at
// the given time is forbidden.
func (t *Table) IsEdgeReserved(time, from, to int) bool {
	_, ok := t.edges[edgeKey{time: time, from: from, to: to}]

	return ok
}

// AdditionalWeight returns the accumulated additive cost of entering
// node at the given time (0 when none).
func (t *Table) AdditionalWeight(time, node int) float64 {
	return t.weights[vertexKey{time: time, node: node}]
}

// LastTimeReserved returns the last time node is touched by a discrete
// reservation, or -1 when it never is. A semi-static constraint makes
// the answer math.MaxInt: the vertex never becomes free again.
//
// Space-time A* uses this to decide whether a goal reached at time t is
// a safe settling point (it is iff t > LastTimeReserved(goal)).
func (t *Table) LastTimeReserved(node int) int {
	if node < 0 || node >= t.size {
		return -1
	}
	if t.semiStaticMin[node] != math.MaxInt {
		return math.MaxInt
	}

	return t.lastReserved[node]
}
