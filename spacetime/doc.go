// Package spacetime implements A* over the product state space
// (vertex, time), planning a single agent around the commitments other
// agents have registered in a reservation.Table.
//
// From a state (v, t) the engine considers:
//
//	each graph neighbor (u, c) → (u, t+1), costing c plus the table's
//	additional weight at (t+1, u); blocked when (t+1, u) is reserved or,
//	with edge collisions enabled, when the traversal v→u completing at
//	t+1 is forbidden
//
//	a pause → (v, t+1), costing the graph's pause cost at v; blocked
//	when (t+1, v) is reserved
//
// Reaching the goal is terminal only once the goal stays free: if the
// table still reserves the goal at some time ≥ arrival, the agent keeps
// moving until a safe settling time exists. FindPathWithExactLength is
// the exception: it ends on the goal at its final step without checking
// later reservations of the goal.
//
// Three query variants bound the time dimension:
//
//	FindPathWithDepthLimit   — best path arriving at any time ≤ maxDepth
//	FindPathWithExactLength  — exactly `length` steps including the start,
//	                           padded with pauses where necessary
//	FindPathWithLengthLimit  — minimum cost over paths of length ≤ maxLength
//
// The search is cooperative: an expansion budget (WithMaxExpansions)
// surfaces ErrTimeout, and a context (WithContext) cancels between
// expansions. Expansion order is deterministic: ties break on lower f,
// then lower h, then (vertex, time).
package spacetime
