// Package core defines the capability set shared by every graph kind in
// pathfind, plus the helpers that operate on it.
//
// 🚀 What is core?
//
//	The contract every search engine is written against:
//		• Graph      — neighbor enumeration, heuristic, pause & collision policy
//		• Neighbor   — a directed transition (target vertex, non-negative cost)
//		• Path       — an ordered sequence of dense integer vertex ids
//
// Vertices are dense non-negative ids 0..Size()-1, stable for the
// lifetime of the graph. Engines hold a non-owning reference to exactly
// one Graph and must not outlive it; no implementation may mutate
// topology while a search is in flight.
//
// Beyond the interface, core ships free functions that only need the
// capability set:
//
//	CalculateCost  — price a path, charging pause cost for repeated vertices
//	IsValidPath    — adjacency-or-pause check over consecutive pairs
//	Adjacent       — single-hop reachability
//	FindComponents — connected components of an undirected graph
//	FindSCC        — strongly connected components (iterative Tarjan)
//
// Errors follow the sentinel convention: compare with errors.Is against
// ErrNilGraph, ErrNodeOutOfRange, ErrInvalidPath, ErrDirectedGraph.
package core
