// Package astar implements A* search over a core.Graph, ordering the
// frontier by f = g + h with h = EstimateDistance(v, goal).
//
// The heuristic comes from the graph itself: graphs with coordinates
// supply an admissible lower bound, and graphs without return 0, which
// makes A* expand exactly like Dijkstra. The open list uses a binary
// heap with lazy deletion — improved entries are re-pushed and stale
// ones skipped on pop.
//
// Tie-breaking is explicit and deterministic: lower f first, then lower
// h (deeper progress), then the lower vertex id.
package astar
