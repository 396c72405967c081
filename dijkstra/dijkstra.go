// Package dijkstra: the one-shot engine and the shared min-heap.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// Dijkstra is a single-agent pathfinder bound to one graph. It is not
// safe for concurrent use; run one search at a time per instance.
type Dijkstra struct {
	g core.Graph
}

// New binds a Dijkstra engine to g.
// Returns core.ErrNilGraph for nil input.
func New(g core.Graph) (*Dijkstra, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}

	return &Dijkstra{g: g}, nil
}

// FindPath returns a minimum-cost path from start to goal. The returned
// path begins with start and ends with goal; start == goal yields the
// singleton path. A nil path means goal is unreachable.
//
// Returns core.ErrNodeOutOfRange for invalid ids.
func (d *Dijkstra) FindPath(start, goal int) (core.Path, error) {
	n := d.g.Size()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d", core.ErrNodeOutOfRange, start)
	}
	if goal < 0 || goal >= n {
		return nil, fmt.Errorf("%w: goal=%d", core.ErrNodeOutOfRange, goal)
	}
	if start == goal {
		return core.Path{start}, nil
	}

	// dist[v] < 0 marks an undiscovered vertex; settled[v] means dist[v]
	// is final.
	dist := make([]float64, n)
	parent := make([]int, n)
	settled := make([]bool, n)
	for i := 0; i < n; i++ {
		dist[i] = -1
		parent[i] = -1
	}
	dist[start] = 0
	parent[start] = start

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{node: start, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.node
		if settled[u] {
			continue // stale lazy-decrease-key entry
		}
		settled[u] = true
		if u == goal {
			return reconstruct(parent, start, goal), nil
		}

		for _, nb := range d.g.Neighbors(u, false) {
			if settled[nb.Node] {
				continue
			}
			next := dist[u] + nb.Weight
			if dist[nb.Node] >= 0 && next >= dist[nb.Node] {
				continue
			}
			dist[nb.Node] = next
			parent[nb.Node] = u
			heap.Push(&pq, &nodeItem{node: nb.Node, dist: next})
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

// nodeItem is one heap entry: a vertex and its tentative distance.
type nodeItem struct {
	node int
	dist float64
}

// nodePQ is a min-heap of *nodeItem under the lazy-decrease-key
// strategy: improved distances push duplicates, stale entries are
// skipped on pop via the settled set.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, breaking ties toward the lower vertex id so
// expansion order is deterministic.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].node < pq[j].node
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
