// Package reservation provides the time-indexed occupancy table shared
// by MAPF coordinators and consumed by space-time A*.
//
// A Table records three kinds of facts about a planning episode:
//
//	vertex constraints — (time, vertex) is occupied
//	edge constraints   — a traversal from→to completing at time is forbidden
//	additional weights — an additive cost on entering (time, vertex)
//
// plus per-vertex "semi-static" constraints: a vertex reserved at every
// time ≥ some arrival time, modeling an agent that parks on its goal.
//
// A coordinator typically registers each committed agent path with
// AddPath, then hands the table to spacetime.AStar for the next agent:
//
//	rt, _ := reservation.New(g.Size())
//	_ = rt.AddPath(0, committed, true, false, g.EdgeCollision())
//	planner, _ := spacetime.New(g)
//	path, err := planner.FindPathWithDepthLimit(start, goal, 64, rt)
//
// Tables are append-only within an episode and are not safe for
// concurrent mutation; a coordinator serializes updates and shares the
// table by reference for the duration of a single query.
package reservation
