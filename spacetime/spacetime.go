// Package spacetime: the (vertex, time) A* engine.
package spacetime

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/reservation"
)

// AStar plans one agent through space and time against a reservation
// table. It holds a non-owning reference to one graph and is not safe
// for concurrent use; run one query at a time per instance.
type AStar struct {
	g    core.Graph
	opts Options
}

// New binds a space-time engine to g and applies the functional
// options. Returns core.ErrNilGraph for nil input.
func New(g core.Graph, opts ...Option) (*AStar, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &AStar{g: g, opts: o}, nil
}

// state is one point of the product space: a vertex at a time step.
type state struct {
	node int
	time int
}

// query holds the mutable state of a single space-time search.
type query struct {
	engine   *AStar
	rt       *reservation.Table
	goal     int
	maxTime  int  // inclusive bound on the time coordinate
	exact    bool // terminal only at time == maxTime
	gScore   map[state]float64
	parent   map[state]state
	closed   map[state]bool
	pq       statePQ
	expanded int
}

// FindPath plans from start to goal with a default horizon of twice the
// graph size (enough for any simple path plus detours around transient
// reservations). A nil table plans in an empty environment.
//
// Returns the same errors as FindPathWithDepthLimit.
func (a *AStar) FindPath(start, goal int, rt *reservation.Table) (core.Path, error) {
	return a.FindPathWithDepthLimit(start, goal, 2*a.g.Size(), rt)
}

// FindPathWithDepthLimit returns the minimum-cost path reaching goal at
// any time ≤ maxDepth, or nil when no such path exists. The path starts
// at time 0 on start; entry i is the agent's vertex at time i, repeated
// vertices are pauses.
//
// Returns core.ErrNodeOutOfRange, ErrBadDepth, ErrTableMismatch,
// ErrTimeout, or the context's error.
func (a *AStar) FindPathWithDepthLimit(start, goal, maxDepth int, rt *reservation.Table) (core.Path, error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadDepth, maxDepth)
	}

	return a.search(start, goal, maxDepth, false, rt)
}

// FindPathWithExactLength returns a minimum-cost path of exactly length
// steps (including the start vertex) ending on goal, padding with
// pauses where profitable, or nil when no such path exists.
//
// Returns core.ErrNodeOutOfRange, ErrBadLength, ErrTableMismatch,
// ErrTimeout, or the context's error.
func (a *AStar) FindPathWithExactLength(start, goal, length int, rt *reservation.Table) (core.Path, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadLength, length)
	}

	return a.search(start, goal, length-1, true, rt)
}

// FindPathWithLengthLimit returns the minimum-cost path of length ≤
// maxLength (including the start vertex) ending on goal, or nil when no
// such path exists.
//
// Returns core.ErrNodeOutOfRange, ErrBadLength, ErrTableMismatch,
// ErrTimeout, or the context's error.
func (a *AStar) FindPathWithLengthLimit(start, goal, maxLength int, rt *reservation.Table) (core.Path, error) {
	if maxLength < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadLength, maxLength)
	}

	return a.search(start, goal, maxLength-1, false, rt)
}

// search runs A* over (vertex, time) up to maxTime inclusive.
func (a *AStar) search(start, goal, maxTime int, exact bool, rt *reservation.Table) (core.Path, error) {
	n := a.g.Size()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d", core.ErrNodeOutOfRange, start)
	}
	if goal < 0 || goal >= n {
		return nil, fmt.Errorf("%w: goal=%d", core.ErrNodeOutOfRange, goal)
	}
	if rt != nil && rt.Size() != n {
		return nil, fmt.Errorf("%w: table=%d graph=%d", ErrTableMismatch, rt.Size(), n)
	}

	q := &query{
		engine:  a,
		rt:      rt,
		goal:    goal,
		maxTime: maxTime,
		exact:   exact,
		gScore:  make(map[state]float64),
		parent:  make(map[state]state),
		closed:  make(map[state]bool),
	}
	origin := state{node: start, time: 0}
	q.gScore[origin] = 0
	q.parent[origin] = origin
	heap.Init(&q.pq)
	h := a.g.EstimateDistance(start, goal)
	heap.Push(&q.pq, &stateItem{st: origin, f: h, h: h})

	return q.run()
}

// run is the main expansion loop.
func (q *query) run() (core.Path, error) {
	ctx := q.engine.opts.Ctx
	budget := q.engine.opts.MaxExpansions

	for q.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		item := heap.Pop(&q.pq).(*stateItem)
		st := item.st
		if q.closed[st] {
			continue // stale lazy-deletion entry
		}
		q.closed[st] = true

		if q.terminal(st) {
			return q.reconstruct(st), nil
		}

		q.expanded++
		if budget > 0 && q.expanded > budget {
			return nil, fmt.Errorf("%w: after %d expansions", ErrTimeout, budget)
		}
		q.expand(st)
	}

	return nil, nil
}

// terminal reports whether popping st concludes the query: the goal
// vertex, inside the time bound, and — unless the length is exact — at
// a time strictly after the goal's last reservation, so the agent can
// settle there.
func (q *query) terminal(st state) bool {
	if st.node != q.goal {
		return false
	}
	if q.exact {
		return st.time == q.maxTime
	}
	if q.rt != nil && q.rt.LastTimeReserved(q.goal) >= st.time {
		return false
	}

	return true
}

// expand pushes the successor states of st: one per passable,
// unreserved graph neighbor, plus the pause.
func (q *query) expand(st state) {
	if st.time >= q.maxTime {
		return // the time bound cuts the frontier here
	}

	g := q.engine.g
	t := st.time + 1
	for _, nb := range g.Neighbors(st.node, false) {
		if q.blockedMove(st.node, nb.Node, t) {
			continue
		}
		q.relax(state{node: nb.Node, time: t}, st, nb.Weight+q.extraWeight(t, nb.Node))
	}

	// Pause action: stay at st.node for one step.
	if !q.reserved(t, st.node) {
		q.relax(state{node: st.node, time: t}, st, g.PauseCost(st.node))
	}
}

// relax records next when it improves on the best-known cost.
func (q *query) relax(next state, from state, cost float64) {
	if q.closed[next] {
		return
	}
	tentative := q.gScore[from] + cost
	if best, seen := q.gScore[next]; seen && tentative >= best {
		return
	}
	q.gScore[next] = tentative
	q.parent[next] = from
	h := q.engine.g.EstimateDistance(next.node, q.goal)
	heap.Push(&q.pq, &stateItem{st: next, f: tentative + h, h: h})
}

func (q *query) reserved(time, node int) bool {
	return q.rt != nil && q.rt.IsReserved(time, node)
}

func (q *query) extraWeight(time, node int) float64 {
	if q.rt == nil {
		return 0
	}

	return q.rt.AdditionalWeight(time, node)
}

// blockedMove reports whether moving from→to completing at time is
// forbidden by a vertex reservation or, with edge collisions enabled,
// by an edge constraint.
func (q *query) blockedMove(from, to, time int) bool {
	if q.rt == nil {
		return false
	}
	if q.rt.IsReserved(time, to) {
		return true
	}

	return q.engine.g.EdgeCollision() && q.rt.IsEdgeReserved(time, from, to)
}

// reconstruct walks parent links back to time 0 and reverses in place.
func (q *query) reconstruct(st state) core.Path {
	path := core.Path{st.node}
	for st.time > 0 {
		st = q.parent[st]
		path = append(path, st.node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// EnsurePathLength pads path with trailing pauses on its final vertex
// until it holds exactly length entries, truncating when it is longer.
// An empty path stays empty. The input is not modified.
func EnsurePathLength(path core.Path, length int) core.Path {
	if len(path) == 0 || length < 1 {
		return nil
	}

	out := make(core.Path, 0, length)
	out = append(out, path[:minInt(len(path), length)]...)
	last := out[len(out)-1]
	for len(out) < length {
		out = append(out, last)
	}

	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// stateItem is one open-list entry: a state, its f = g + h key, and the
// h component kept separately for tie-breaking.
type stateItem struct {
	st state
	f  float64
	h  float64
}

// statePQ is a min-heap of *stateItem with lazy deletion.
type statePQ []*stateItem

func (pq statePQ) Len() int { return len(pq) }

// Less orders by f, then h, then (vertex, time) for determinism.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}
	if pq[i].st.node != pq[j].st.node {
		return pq[i].st.node < pq[j].st.node
	}

	return pq[i].st.time < pq[j].st.time
}

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
