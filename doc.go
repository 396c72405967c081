// Package pathfind is an in-memory toolkit for single-agent shortest-path
// search and the building blocks of multi-agent path finding (MAPF) over
// weighted graphs and grids.
//
// 🚀 What is pathfind?
//
//	A focused library that brings together:
//		• Core abstraction: one neighbor/heuristic interface over graphs and grids
//		• Explicit graphs: weighted edge lists with optional coordinates
//		• Grids: per-cell weights, obstacles, border wraparound, diagonal policies
//		• Classic engines: BFS, Dijkstra, A*
//		• Resumable engines: persistent frontiers that amortize repeated queries
//		• Space-time A*: time-indexed planning against a reservation table
//		• Reservation tables: vertex/edge occupancy across time for MAPF
//
// ✨ Why choose pathfind?
//
//   - Small API surface – dense integer vertex ids, plain slices in and out
//   - Deterministic – explicit tie-breaking, reproducible expansion order
//   - Pure Go – no cgo, CPU-bound and synchronous throughout
//   - Composable – outer MAPF coordinators assemble their own loops from
//     space-time A* plus a shared reservation table
//
// Everything is organized under small subpackages:
//
//	core/        — Graph interface, Path, cost & validity helpers, components/SCC
//	graph/       — explicit weighted graph with optional coordinates
//	grid/        — 2D grid with diagonal policies and wraparound borders
//	reservation/ — time-indexed occupancy shared by MAPF planners
//	bfs/         — hop-count search + resumable variant
//	dijkstra/    — weighted search + resumable variant
//	astar/       — heuristic search
//	spacetime/   — A* over (vertex, time) respecting reservations
//
// Quick ASCII example:
//
//	    0───1───2
//	    │       │
//	    3───4───5
//
//	a 3×2 grid; cell ids are row-major, so FindPath(0, 5) may return
//	[0 1 2 5] or [0 3 4 5] depending on weights.
//
// Dive into the per-package docs for contracts, complexity notes and
// worked examples.
package pathfind
