// Package grid provides the implicit grid kind of pathfind: a 2D field
// of cells with per-cell entry costs, obstacles, optional border
// wraparound, and a configurable diagonal movement policy.
//
// Cells are addressed row-major: id = y*Width + x. A cell weight w ≥ 0
// is the cost of ENTERING the cell; the sentinel -1 marks an impassable
// obstacle. The starting cell of a path is never charged — only
// subsequent entries are.
//
// Diagonal movement is governed by DiagonalMovement:
//
//	Never                – 4-neighborhood only
//	OnlyWhenNoObstacle   – both adjacent orthogonal cells must be passable
//	IfAtMostOneObstacle  – at most one adjacent orthogonal cell blocked
//	Always               – any passable diagonal target
//
// Diagonal entries cost weight(target) · multiplier (default 1; √2 is
// the common Euclidean choice).
//
// Borders wrap independently per axis:
//
//	grid.New(8, 8,
//	    grid.WithPassableLeftRightBorder(),
//	    grid.WithPassableUpDownBorder(),
//	) // a torus
//
// The grid satisfies core.Graph. Weight mutations bump an internal
// version; outstanding resumable searches detect the bump and refuse to
// continue, so stale frontiers cannot leak wrong distances.
package grid
