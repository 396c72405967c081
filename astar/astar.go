// Package astar: the heuristic single-agent engine.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// AStar is a single-agent pathfinder bound to one graph. It is not safe
// for concurrent use; run one search at a time per instance.
type AStar struct {
	g core.Graph
}

// New binds an A* engine to g.
// Returns core.ErrNilGraph for nil input.
func New(g core.Graph) (*AStar, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}

	return &AStar{g: g}, nil
}

// FindPath returns a minimum-cost path from start to goal, guided by
// the graph's heuristic. The returned path begins with start and ends
// with goal; start == goal yields the singleton path. A nil path means
// goal is unreachable.
//
// With a consistent heuristic (both graph kinds in this module supply
// one) the path cost equals Dijkstra's; with h ≡ 0 the expansion is
// Dijkstra's. Closed vertices are never reopened, so a heuristic that is
// admissible but not consistent can yield a costlier path.
//
// Returns core.ErrNodeOutOfRange for invalid ids.
func (a *AStar) FindPath(start, goal int) (core.Path, error) {
	n := a.g.Size()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d", core.ErrNodeOutOfRange, start)
	}
	if goal < 0 || goal >= n {
		return nil, fmt.Errorf("%w: goal=%d", core.ErrNodeOutOfRange, goal)
	}
	if start == goal {
		return core.Path{start}, nil
	}

	gScore := make([]float64, n)
	parent := make([]int, n)
	closed := make([]bool, n)
	for i := 0; i < n; i++ {
		gScore[i] = -1
		parent[i] = -1
	}
	gScore[start] = 0
	parent[start] = start

	pq := make(openPQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &openItem{node: start, f: a.g.EstimateDistance(start, goal), h: a.g.EstimateDistance(start, goal)})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*openItem)
		u := item.node
		if closed[u] {
			continue // stale lazy-deletion entry
		}
		closed[u] = true
		if u == goal {
			return reconstruct(parent, start, goal), nil
		}

		for _, nb := range a.g.Neighbors(u, false) {
			if closed[nb.Node] {
				continue
			}
			next := gScore[u] + nb.Weight
			if gScore[nb.Node] >= 0 && next >= gScore[nb.Node] {
				continue
			}
			gScore[nb.Node] = next
			parent[nb.Node] = u
			h := a.g.EstimateDistance(nb.Node, goal)
			heap.Push(&pq, &openItem{node: nb.Node, f: next + h, h: h})
		}
	}

	return nil, nil
}

// reconstruct walks parent links goal→start and reverses in place.
func reconstruct(parent []int, start, goal int) core.Path {
	path := core.Path{goal}
	for v := goal; v != start; {
		v = parent[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// openItem is one open-list entry: a vertex, its f = g + h key, and the
// h component kept separately for tie-breaking.
type openItem struct {
	node int
	f    float64
	h    float64
}

// openPQ is a min-heap of *openItem with lazy deletion.
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

// Less orders by f, then by h (preferring deeper progress), then by the
// lower vertex id for determinism.
func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}

	return pq[i].node < pq[j].node
}

func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
