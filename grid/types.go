// Package grid: enums, options, and sentinel errors for the 2D grid.
package grid

import "errors"

// Sentinel errors for grid construction and mutation.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")

	// ErrBadWeightsLength indicates a weight vector whose length differs
	// from width·height.
	ErrBadWeightsLength = errors.New("grid: weights length must equal width*height")

	// ErrBadWeightValue indicates a cell weight that is neither ≥ 0 nor
	// the obstacle sentinel -1.
	ErrBadWeightValue = errors.New("grid: weight must be non-negative or -1")

	// ErrBadDiagonalMovement indicates a diagonal policy outside 0..3.
	ErrBadDiagonalMovement = errors.New("grid: unknown diagonal movement policy")

	// ErrBadMultiplier indicates a diagonal cost multiplier below 1.
	ErrBadMultiplier = errors.New("grid: diagonal movement cost multiplier must be at least 1")

	// ErrBadPauseCost indicates a negative pause action cost.
	ErrBadPauseCost = errors.New("grid: pause action cost must be non-negative")

	// ErrBadPauseCostType indicates a pause cost type other than
	// core.PauseCostFixed or core.PauseCostWeight.
	ErrBadPauseCostType = errors.New("grid: pause action cost type must be 0 or 1")
)

// DiagonalMovement selects when a diagonal step is permitted.
type DiagonalMovement int

const (
	// Never permits only orthogonal moves.
	Never DiagonalMovement = iota
	// OnlyWhenNoObstacle permits a diagonal iff both adjacent orthogonal
	// cells are passable.
	OnlyWhenNoObstacle
	// IfAtMostOneObstacle permits a diagonal iff at most one adjacent
	// orthogonal cell is an obstacle.
	IfAtMostOneObstacle
	// Always permits any diagonal onto a passable target.
	Always
)

// String implements fmt.Stringer for diagnostics.
func (dm DiagonalMovement) String() string {
	switch dm {
	case Never:
		return "never"
	case OnlyWhenNoObstacle:
		return "only_when_no_obstacle"
	case IfAtMostOneObstacle:
		return "if_at_most_one_obstacle"
	case Always:
		return "always"
	default:
		return "unknown"
	}
}

// Obstacle is the cell-weight sentinel for an impassable cell.
const Obstacle = -1.0

// Options configures grid construction.
type Options struct {
	// Weights is the initial weight vector of length width·height;
	// nil means every cell weighs 1.
	Weights []float64
	// Diagonal selects the diagonal movement policy.
	Diagonal DiagonalMovement
	// DiagonalMultiplier scales diagonal entry costs; must be ≥ 1.
	DiagonalMultiplier float64
	// PassableLeftRightBorder wraps x-coordinates modulo the width.
	PassableLeftRightBorder bool
	// PassableUpDownBorder wraps y-coordinates modulo the height.
	PassableUpDownBorder bool
	// PauseActionCost is the fixed pause cost (pause cost type 0).
	PauseActionCost float64
	// PauseActionCostType selects core.PauseCostFixed or core.PauseCostWeight.
	PauseActionCostType int
	// EdgeCollision forbids opposing traversals of one edge at one step.
	EdgeCollision bool
}

// Option is a functional option for New.
type Option func(*Options)

// WithWeights supplies the initial weight vector (length width·height;
// entries ≥ 0 or the Obstacle sentinel).
func WithWeights(weights []float64) Option {
	return func(o *Options) { o.Weights = weights }
}

// WithDiagonalMovement selects the diagonal policy.
func WithDiagonalMovement(dm DiagonalMovement) Option {
	return func(o *Options) { o.Diagonal = dm }
}

// WithDiagonalMovementCostMultiplier scales diagonal entry costs.
func WithDiagonalMovementCostMultiplier(m float64) Option {
	return func(o *Options) { o.DiagonalMultiplier = m }
}

// WithPassableLeftRightBorder wraps movement across the left/right edge.
func WithPassableLeftRightBorder() Option {
	return func(o *Options) { o.PassableLeftRightBorder = true }
}

// WithPassableUpDownBorder wraps movement across the top/bottom edge.
func WithPassableUpDownBorder() Option {
	return func(o *Options) { o.PassableUpDownBorder = true }
}

// WithPauseActionCost sets the fixed pause cost.
func WithPauseActionCost(cost float64) Option {
	return func(o *Options) { o.PauseActionCost = cost }
}

// WithPauseActionCostType selects how pauses are priced:
// core.PauseCostFixed (0) or core.PauseCostWeight (1).
func WithPauseActionCostType(t int) Option {
	return func(o *Options) { o.PauseActionCostType = t }
}

// WithEdgeCollision forbids two agents from traversing the same edge in
// opposite directions at the same time step.
func WithEdgeCollision() Option {
	return func(o *Options) { o.EdgeCollision = true }
}

// DefaultOptions returns the Options New starts from: unit weights,
// Never diagonals, multiplier 1, solid borders, pause cost 1 of type 0.
func DefaultOptions() Options {
	return Options{
		Diagonal:           Never,
		DiagonalMultiplier: 1,
		PauseActionCost:    1,
	}
}
