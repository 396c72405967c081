// Package bfs: the one-shot breadth-first engine.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// BFS is a single-agent pathfinder bound to one graph. It is not safe
// for concurrent use; run one search at a time per instance.
type BFS struct {
	g core.Graph
}

// New binds a breadth-first engine to g.
// Returns core.ErrNilGraph for nil input.
func New(g core.Graph) (*BFS, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}

	return &BFS{g: g}, nil
}

// FindPath returns a path with the fewest hops from start to goal. The
// returned path begins with start and ends with goal; start == goal
// yields the singleton path. A nil path means goal is unreachable.
//
// Returns core.ErrNodeOutOfRange for invalid ids.
//
// Complexity: O(V + E) time, O(V) memory.
func (b *BFS) FindPath(start, goal int) (core.Path, error) {
	n := b.g.Size()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d", core.ErrNodeOutOfRange, start)
	}
	if goal < 0 || goal >= n {
		return nil, fmt.Errorf("%w: goal=%d", core.ErrNodeOutOfRange, goal)
	}
	if start == goal {
		return core.Path{start}, nil
	}

	// parent[v] is the vertex v was discovered from; -1 marks unseen,
	// the start is its own parent.
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	parent[start] = start

	queue := make([]int, 0, n)
	queue = append(queue, start)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, nb := range b.g.Neighbors(v, false) {
			if parent[nb.Node] != -1 {
				continue
			}
			parent[nb.Node] = v
			if nb.Node == goal {
				return reconstruct(parent, start, goal), nil
			}
			queue = append(queue, nb.Node)
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
