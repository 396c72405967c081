// Package graph provides the explicit graph kind of pathfind: a weighted
// edge list over dense integer vertex ids, directed or undirected, with
// optional vertex coordinates powering the A* heuristic.
//
// Construction:
//
//	g, err := graph.New(4, graph.WithDirected())
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 1)
//
// Or all at once:
//
//	g, err := graph.New(4,
//	    graph.WithEdges([]graph.Edge{{0, 1, 1}, {1, 2, 1}, {0, 2, 3}}),
//	    graph.WithCoordinates([][]float64{{0, 0}, {1, 0}, {1, 1}, {2, 1}}),
//	)
//
// When coordinates are attached, EstimateDistance returns the Euclidean
// distance between the two vertices scaled by the minimum edge weight,
// which keeps it an admissible lower bound as long as coordinates are in
// the same scale as edge costs. Without coordinates it returns 0 and A*
// degenerates to Dijkstra.
//
// The graph satisfies core.Graph and is owned by the caller; engines
// hold a non-owning reference and assume no mutation during a search.
package graph
