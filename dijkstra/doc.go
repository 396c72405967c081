// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// core.Graph with non-negative edge costs.
//
// Two engines are available:
//
//	Dijkstra  — one-shot FindPath(start, goal) returning a minimum-cost path
//	Resumable — anchored at a fixed start, keeping its frontier and
//	            distance table between queries; each vertex is settled
//	            at most once per anchoring (SetStartNode starts over)
//
// Both use a binary min-heap with the lazy decrease-key strategy:
// improved distances push duplicate heap entries, and stale entries are
// skipped when popped. Ties on distance break toward the lower vertex
// id, making expansion order deterministic.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) worst case for heap entries under lazy decrease-key
//
// Edge costs must be non-negative; graph kinds in this module enforce
// that at construction, so the engines do not rescan.
package dijkstra
