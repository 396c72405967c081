// Package bfs provides breadth-first search over a core.Graph, treating
// every edge as one hop regardless of weight.
//
// Two engines are available:
//
//	BFS       — one-shot FindPath(start, goal) returning a shortest-hop path
//	Resumable — anchored at a fixed start, keeping its frontier between
//	            queries so repeated Distance/FindPath calls expand each
//	            vertex at most once
//
// BFS is appropriate only when the caller treats the graph as
// unweighted: weights are ignored entirely, never degraded to Dijkstra.
//
// Both engines hold a non-owning reference to the graph and must not
// outlive it. A Resumable additionally owns its distance table and
// frontier; mutating the graph invalidates it, which is detected via
// the graph's version counter when the graph exposes one.
package bfs
