// Package bfs: the resumable breadth-first engine.
package bfs

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/core"
)

// ErrGraphMutated is returned when the underlying graph's version moved
// after the engine was anchored; the persistent frontier is stale.
var ErrGraphMutated = errors.New("bfs: graph mutated since the engine was anchored")

// Unreachable is the distance reported for vertices the anchored start
// cannot reach.
const Unreachable = math.MaxInt

// Resumable is a breadth-first engine anchored at a fixed start vertex.
// It keeps its frontier and distance table between queries, so asking
// for many targets from one source costs a single traversal overall.
//
// The settled set is always the prefix of vertices whose hop count is
// ≤ every frontier entry; expansion is monotone in distance.
type Resumable struct {
	g       core.Graph
	start   int
	dist    []int // -1 while undiscovered
	parent  []int
	queue   []int
	version uint64 // snapshot of the graph's version counter, if exposed
}

// NewResumable anchors a resumable breadth-first engine at start.
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

// SetStartNode re-anchors the engine: the distance table, parent links,
// and frontier are fully reset and reseeded with start. Incremental
// relocation is deliberately not attempted.
func (r *Resumable) SetStartNode(start int) error {
	if start < 0 || start >= r.g.Size() {
		return fmt.Errorf("%w: start=%d", core.ErrNodeOutOfRange, start)
	}

	n := r.g.Size()
	r.start = start
	r.dist = make([]int, n)
	r.parent = make([]int, n)
	for i := 0; i < n; i++ {
		r.dist[i] = -1
		r.parent[i] = -1
	}
	r.dist[start] = 0
	r.parent[start] = start
	r.queue = append(r.queue[:0], start)
	if v, ok := r.g.(core.Versioned); ok {
		r.version = v.Version()
	}

	return nil
}

// StartNode returns the anchored start vertex.
func (r *Resumable) StartNode() int { return r.start }

// checkFresh guards against querying over a mutated graph.
func (r *Resumable) checkFresh() error {
	if v, ok := r.g.(core.Versioned); ok && v.Version() != r.version {
		return ErrGraphMutated
	}

	return nil
}

// expandUntil drains the frontier until node is discovered or the
// frontier is exhausted. Work already done is never repeated.
func (r *Resumable) expandUntil(node int) {
	for len(r.queue) > 0 && r.dist[node] == -1 {
		v := r.queue[0]
		r.queue = r.queue[1:]
		for _, nb := range r.g.Neighbors(v, false) {
			if r.dist[nb.Node] != -1 {
				continue
			}
			r.dist[nb.Node] = r.dist[v] + 1
			r.parent[nb.Node] = v
			r.queue = append(r.queue, nb.Node)
		}
	}
}

// Distance returns the hop count from the anchored start to node,
// expanding the frontier only as far as needed. Unreachable vertices
// report the Unreachable constant.
//
// Returns core.ErrNodeOutOfRange or ErrGraphMutated.
func (r *Resumable) Distance(node int) (int, error) {
	if node < 0 || node >= r.g.Size() {
		return 0, fmt.Errorf("%w: %d", core.ErrNodeOutOfRange, node)
	}
	if err := r.checkFresh(); err != nil {
		return 0, err
	}

	r.expandUntil(node)
	if r.dist[node] == -1 {
		return Unreachable, nil
	}

	return r.dist[node], nil
}

// FindPath returns a fewest-hop path from the anchored start to node,
// or nil when unreachable.
//
// Returns core.ErrNodeOutOfRange or ErrGraphMutated.
func (r *Resumable) FindPath(node int) (core.Path, error) {
	d, err := r.Distance(node)
	if err != nil {
		return nil, err
	}
	if d == Unreachable {
		return nil, nil
	}

	return reconstruct(r.parent, r.start, node), nil
}
