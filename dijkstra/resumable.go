// Package dijkstra: the resumable engine.
package dijkstra

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/core"
)

// ErrGraphMutated is returned when the underlying graph's version moved
// after the engine was anchored; the persistent frontier is stale.
var ErrGraphMutated = errors.New("dijkstra: graph mutated since the engine was anchored")

// Resumable is a Dijkstra engine anchored at a fixed start vertex. It
// keeps its distance table, parent links, and open frontier between
// queries, lazily settling vertices on demand.
//
// Invariant: the settled set is exactly the prefix of vertices whose
// distance is ≤ every frontier key; expansion is monotone-nondecreasing
// in distance. Querying every vertex costs one full Dijkstra run in
// total, however the queries are interleaved.
type Resumable struct {
	g       core.Graph
	start   int
	dist    []float64 // -1 while undiscovered
	parent  []int
	settled []bool
	pq      nodePQ
	version uint64
}

// NewResumable anchors a resumable Dijkstra engine at start.
// Returns core.ErrNilGraph or core.ErrNodeOutOfRange.
func NewResumable(g core.Graph, start int) (*Resumable, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}

	r := &Resumable{g: g}
	if err := r.SetStartNode(start); err != nil {
		return nil, err
	}

	return r, nil
}

// SetStartNode re-anchors the engine: distance, parent, settled state
// and the frontier are fully reset and reseeded with start.
func (r *Resumable) SetStartNode(start int) error {
	if start < 0 || start >= r.g.Size() {
		return fmt.Errorf("%w: start=%d", core.ErrNodeOutOfRange, start)
	}

	n := r.g.Size()
	r.start = start
	r.dist = make([]float64, n)
	r.parent = make([]int, n)
	r.settled = make([]bool, n)
	for i := 0; i < n; i++ {
		r.dist[i] = -1
		r.parent[i] = -1
	}
	r.dist[start] = 0
	r.parent[start] = start
	r.pq = r.pq[:0]
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{node: start, dist: 0})
	if v, ok := r.g.(core.Versioned); ok {
		r.version = v.Version()
	}

	return nil
}

// StartNode returns the anchored start vertex.
func (r *Resumable) StartNode() int { return r.start }

func (r *Resumable) checkFresh() error {
	if v, ok := r.g.(core.Versioned); ok && v.Version() != r.version {
		return ErrGraphMutated
	}

	return nil
}

// expandUntil settles vertices in distance order until node is settled
// or the frontier is exhausted. Work already done is never repeated.
func (r *Resumable) expandUntil(node int) {
	for !r.settled[node] && r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.node
		if r.settled[u] {
			continue
		}
		r.settled[u] = true

		for _, nb := range r.g.Neighbors(u, false) {
			if r.settled[nb.Node] {
				continue
			}
			next := r.dist[u] + nb.Weight
			if r.dist[nb.Node] >= 0 && next >= r.dist[nb.Node] {
				continue
			}
			r.dist[nb.Node] = next
			r.parent[nb.Node] = u
			heap.Push(&r.pq, &nodeItem{node: nb.Node, dist: next})
		}
	}
}

// Distance returns the shortest-path cost from the anchored start to
// node, expanding the frontier only until node is settled. Unreachable
// vertices report +Inf.
//
// Returns core.ErrNodeOutOfRange or ErrGraphMutated.
func (r *Resumable) Distance(node int) (float64, error) {
	if node < 0 || node >= r.g.Size() {
		return 0, fmt.Errorf("%w: %d", core.ErrNodeOutOfRange, node)
	}
	if err := r.checkFresh(); err != nil {
		return 0, err
	}

	r.expandUntil(node)
	if !r.settled[node] {
		return math.Inf(1), nil
	}

	return r.dist[node], nil
}

// FindPath returns a minimum-cost path from the anchored start to node,
// or nil when unreachable.
//
// Returns core.ErrNodeOutOfRange or ErrGraphMutated.
func (r *Resumable) FindPath(node int) (core.Path, error) {
	d, err := r.Distance(node)
	if err != nil {
		return nil, err
	}
	if math.IsInf(d, 1) {
		return nil, nil
	}

	return reconstruct(r.parent, r.start, node), nil
}
