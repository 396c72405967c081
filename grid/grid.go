// Package grid: the 2D grid implementation of core.Graph.
package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/core"
)

// orthogonalOffsets enumerates the 4-neighborhood in the fixed order
// up, left, right, down; diagonalOffsets follows with the four corners.
// The order is part of the determinism contract.
var (
	orthogonalOffsets = [4][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	diagonalOffsets   = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

// Grid is a 2D field of weighted cells satisfying core.Graph. Cell ids
// are row-major: id = y*Width + x.
//
// The zero value is not usable; construct with New.
type Grid struct {
	width, height       int
	weights             []float64
	diagonal            DiagonalMovement
	diagonalMultiplier  float64
	passableLeftRight   bool
	passableUpDown      bool
	pauseActionCost     float64
	pauseActionCostType int
	edgeCollision       bool
	minWeight           float64
	version             uint64
}

// New constructs a width×height grid and applies the functional options.
//
// Returns ErrBadDimensions, ErrBadWeightsLength, ErrBadWeightValue,
// ErrBadDiagonalMovement, ErrBadMultiplier, ErrBadPauseCost, or
// ErrBadPauseCostType.
//
// Complexity: O(width·height).
func New(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Diagonal < Never || o.Diagonal > Always {
		return nil, fmt.Errorf("%w: %d", ErrBadDiagonalMovement, int(o.Diagonal))
	}
	if o.DiagonalMultiplier < 1 {
		return nil, fmt.Errorf("%w: %v", ErrBadMultiplier, o.DiagonalMultiplier)
	}
	if o.PauseActionCost < 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadPauseCost, o.PauseActionCost)
	}
	if o.PauseActionCostType != core.PauseCostFixed && o.PauseActionCostType != core.PauseCostWeight {
		return nil, fmt.Errorf("%w: %d", ErrBadPauseCostType, o.PauseActionCostType)
	}

	g := &Grid{
		width:               width,
		height:              height,
		diagonal:            o.Diagonal,
		diagonalMultiplier:  o.DiagonalMultiplier,
		passableLeftRight:   o.PassableLeftRightBorder,
		passableUpDown:      o.PassableUpDownBorder,
		pauseActionCost:     o.PauseActionCost,
		pauseActionCostType: o.PauseActionCostType,
		edgeCollision:       o.EdgeCollision,
	}
	if o.Weights == nil {
		g.weights = make([]float64, width*height)
		for i := range g.weights {
			g.weights[i] = 1
		}
		g.minWeight = 1
	} else {
		if err := g.SetWeights(o.Weights); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns width·height.
func (g *Grid) Size() int { return g.width * g.height }

// Directed reports false: grid adjacency is symmetric, even though entry
// costs depend on direction.
func (g *Grid) Directed() bool { return false }

// HasCoordinates reports true: every cell has an (x, y) position.
func (g *Grid) HasCoordinates() bool { return true }

// EdgeCollision reports the opposing-traversal policy.
func (g *Grid) EdgeCollision() bool { return g.edgeCollision }

// SetEdgeCollision toggles the opposing-traversal policy.
func (g *Grid) SetEdgeCollision(b bool) { g.edgeCollision = b }

// DiagonalMovement returns the active diagonal policy.
func (g *Grid) DiagonalMovement() DiagonalMovement { return g.diagonal }

// Version increments on every weight mutation; resumable engines
// snapshot it to detect invalidation.
func (g *Grid) Version() uint64 { return g.version }

// Index maps a coordinate pair to its row-major cell id.
func (g *Grid) Index(x, y int) int { return y*g.width + x }

// Coordinate maps a cell id back to its (x, y) pair.
func (g *Grid) Coordinate(node int) (x, y int) {
	return node % g.width, node / g.width
}

// checkNode validates a cell id.
func (g *Grid) checkNode(node int) error {
	if node < 0 || node >= len(g.weights) {
		return fmt.Errorf("%w: %d", core.ErrNodeOutOfRange, node)
	}

	return nil
}

// Weight returns the stored weight of node (Obstacle for blocked cells).
// Returns core.ErrNodeOutOfRange for invalid ids.
func (g *Grid) Weight(node int) (float64, error) {
	if err := g.checkNode(node); err != nil {
		return 0, err
	}

	return g.weights[node], nil
}

// Weights returns a copy of the full weight vector.
func (g *Grid) Weights() []float64 {
	return append([]float64(nil), g.weights...)
}

// HasObstacle reports whether node is impassable. Out-of-range ids read
// as obstacles.
func (g *Grid) HasObstacle(node int) bool {
	if node < 0 || node >= len(g.weights) {
		return true
	}

	return g.weights[node] == Obstacle
}

// UpdateWeight replaces the weight of one cell. w must be ≥ 0 or the
// Obstacle sentinel. Invalidates outstanding resumable searches.
//
// Returns core.ErrNodeOutOfRange or ErrBadWeightValue.
func (g *Grid) UpdateWeight(node int, w float64) error {
	if err := g.checkNode(node); err != nil {
		return err
	}
	if err := checkWeightValue(w); err != nil {
		return err
	}

	g.weights[node] = w
	g.version++
	g.recomputeMinWeight()

	return nil
}

// SetWeights replaces the full weight vector. Its length must equal
// width·height; every entry must be ≥ 0 or Obstacle. Invalidates
// outstanding resumable searches.
//
// Returns ErrBadWeightsLength or ErrBadWeightValue.
func (g *Grid) SetWeights(weights []float64) error {
	if len(weights) != g.width*g.height {
		return fmt.Errorf("%w: got %d, want %d", ErrBadWeightsLength, len(weights), g.width*g.height)
	}
	for i, w := range weights {
		if err := checkWeightValue(w); err != nil {
			return fmt.Errorf("%w (index %d)", err, i)
		}
	}

	g.weights = append(g.weights[:0], weights...)
	g.version++
	g.recomputeMinWeight()

	return nil
}

// AddObstacle marks node impassable.
func (g *Grid) AddObstacle(node int) error { return g.UpdateWeight(node, Obstacle) }

// RemoveObstacle resets node to unit weight.
func (g *Grid) RemoveObstacle(node int) error { return g.UpdateWeight(node, 1) }

// ClearWeights resets every cell to unit weight.
func (g *Grid) ClearWeights() {
	for i := range g.weights {
		g.weights[i] = 1
	}
	g.version++
	g.minWeight = 1
}

func checkWeightValue(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || (w < 0 && w != Obstacle) {
		return fmt.Errorf("%w: %v", ErrBadWeightValue, w)
	}

	return nil
}

// recomputeMinWeight rescans the passable cells; 1 when all are blocked.
func (g *Grid) recomputeMinWeight() {
	min, found := 0.0, false
	for _, w := range g.weights {
		if w == Obstacle {
			continue
		}
		if !found || w < min {
			min, found = w, true
		}
	}
	if !found {
		min = 1
	}
	g.minWeight = min
}

// MinWeight returns the minimum passable cell weight (1 when every cell
// is an obstacle). Used as the admissible heuristic scale.
func (g *Grid) MinWeight() float64 { return g.minWeight }

// PauseCost returns the pause price at node: the fixed cost under
// core.PauseCostFixed, the cell weight clamped to 0 under
// core.PauseCostWeight. Out-of-range ids price as the fixed cost.
func (g *Grid) PauseCost(node int) float64 {
	if g.pauseActionCostType == core.PauseCostFixed {
		return g.pauseActionCost
	}
	if node < 0 || node >= len(g.weights) {
		return g.pauseActionCost
	}
	if w := g.weights[node]; w > 0 {
		return w
	}

	return 0
}

// PauseActionCostType returns the active pause pricing policy.
func (g *Grid) PauseActionCostType() int { return g.pauseActionCostType }

// SetPauseActionCost replaces the fixed pause cost.
// Returns ErrBadPauseCost for negative values.
func (g *Grid) SetPauseActionCost(cost float64) error {
	if cost < 0 {
		return fmt.Errorf("%w: %v", ErrBadPauseCost, cost)
	}
	g.pauseActionCost = cost

	return nil
}

// SetPauseActionCostType replaces the pause pricing policy.
// Returns ErrBadPauseCostType for values other than 0 or 1.
func (g *Grid) SetPauseActionCostType(t int) error {
	if t != core.PauseCostFixed && t != core.PauseCostWeight {
		return fmt.Errorf("%w: %d", ErrBadPauseCostType, t)
	}
	g.pauseActionCostType = t

	return nil
}

// resolve applies one offset to (x, y), wrapping across passable
// borders. ok=false when the move leaves the grid through a solid
// border.
func (g *Grid) resolve(x, y, dx, dy int) (nx, ny int, ok bool) {
	nx, ny = x+dx, y+dy
	if nx < 0 || nx >= g.width {
		if !g.passableLeftRight {
			return 0, 0, false
		}
		nx = (nx + g.width) % g.width
	}
	if ny < 0 || ny >= g.height {
		if !g.passableUpDown {
			return 0, 0, false
		}
		ny = (ny + g.height) % g.height
	}

	return nx, ny, true
}

// passableAt reports whether the cell one offset away from (x, y) exists
// and is not an obstacle.
func (g *Grid) passableAt(x, y, dx, dy int) bool {
	nx, ny, ok := g.resolve(x, y, dx, dy)

	return ok && g.weights[g.Index(nx, ny)] != Obstacle
}

// diagonalAllowed applies the DiagonalMovement policy for the corner
// offset (dx, dy) relative to (x, y). A missing orthogonal cell (solid
// border) counts as an obstacle.
func (g *Grid) diagonalAllowed(x, y, dx, dy int) bool {
	switch g.diagonal {
	case Never:
		return false
	case Always:
		return true
	default:
	}

	blocked := 0
	if !g.passableAt(x, y, dx, 0) {
		blocked++
	}
	if !g.passableAt(x, y, 0, dy) {
		blocked++
	}
	if g.diagonal == OnlyWhenNoObstacle {
		return blocked == 0
	}

	return blocked <= 1 // IfAtMostOneObstacle
}

// Neighbors enumerates the passable cells reachable in one step from
// node: orthogonal first (up, left, right, down), then the permitted
// diagonals. Each forward edge is priced as the entry cost of its
// target, diagonals scaled by the multiplier.
//
// With reversed=true the same cells are returned but every edge is
// priced as the forward edge INTO node: the entry cost of node itself.
//
// Out-of-range or obstacle ids yield nil.
//
// Complexity: O(1) — at most eight candidate cells.
func (g *Grid) Neighbors(node int, reversed bool) []core.Neighbor {
	if node < 0 || node >= len(g.weights) || g.weights[node] == Obstacle {
		return nil
	}

	x, y := g.Coordinate(node)
	neighbors := make([]core.Neighbor, 0, 8)

	for _, d := range orthogonalOffsets {
		nx, ny, ok := g.resolve(x, y, d[0], d[1])
		if !ok {
			continue
		}
		target := g.Index(nx, ny)
		if g.weights[target] == Obstacle {
			continue
		}
		w := g.weights[target]
		if reversed {
			w = g.weights[node]
		}
		neighbors = append(neighbors, core.Neighbor{Node: target, Weight: w})
	}

	if g.diagonal == Never {
		return neighbors
	}
	for _, d := range diagonalOffsets {
		nx, ny, ok := g.resolve(x, y, d[0], d[1])
		if !ok {
			continue
		}
		target := g.Index(nx, ny)
		if g.weights[target] == Obstacle || !g.diagonalAllowed(x, y, d[0], d[1]) {
			continue
		}
		w := g.weights[target]
		if reversed {
			w = g.weights[node]
		}
		neighbors = append(neighbors, core.Neighbor{Node: target, Weight: w * g.diagonalMultiplier})
	}

	return neighbors
}

// EstimateDistance returns an admissible lower bound between two cells:
// the wrap-aware Manhattan distance (Chebyshev when diagonals are
// permitted) scaled by MinWeight.
func (g *Grid) EstimateDistance(v1, v2 int) float64 {
	if v1 < 0 || v1 >= len(g.weights) || v2 < 0 || v2 >= len(g.weights) {
		return 0
	}

	x1, y1 := g.Coordinate(v1)
	x2, y2 := g.Coordinate(v2)
	dx := absInt(x1 - x2)
	dy := absInt(y1 - y2)
	if g.passableLeftRight && g.width-dx < dx {
		dx = g.width - dx
	}
	if g.passableUpDown && g.height-dy < dy {
		dy = g.height - dy
	}

	if g.diagonal == Never {
		return float64(dx+dy) * g.minWeight
	}
	if dy > dx {
		dx = dy
	}

	return float64(dx) * g.minWeight
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
