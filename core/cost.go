// Package core: path pricing and validity helpers over the Graph
// capability set.
package core

import "fmt"

// edgeWeight returns the cost of the cheapest edge from to via
// g.Neighbors(from, false), or found=false when no such edge exists.
// Parallel edges resolve to the minimum cost.
func edgeWeight(g Graph, from, to int) (weight float64, found bool) {
	for _, nb := range g.Neighbors(from, false) {
		if nb.Node != to {
			continue
		}
		if !found || nb.Weight < weight {
			weight, found = nb.Weight, true
		}
	}

	return weight, found
}

// CalculateCost sums edge costs along path. A repeated vertex is a pause
// and charges g.PauseCost(v) instead of an edge cost. The starting
// vertex itself contributes nothing.
//
// Returns ErrNilGraph, ErrNodeOutOfRange for ids outside 0..Size()-1,
// or ErrInvalidPath when a consecutive pair is neither adjacent nor a
// pause. An empty path costs 0.
//
// Complexity: O(L·d) where L = len(path) and d = max out-degree.
func CalculateCost(g Graph, path Path) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	var total float64
	for i, v := range path {
		if err := checkNode(g, v); err != nil {
			return 0, fmt.Errorf("%w: path[%d]=%d", err, i, v)
		}
		if i == 0 {
			continue
		}

		prev := path[i-1]
		if v == prev {
			// Pause action: stay in place for one step.
			total += g.PauseCost(v)

			continue
		}
		w, ok := edgeWeight(g, prev, v)
		if !ok {
			return 0, fmt.Errorf("%w: no edge %d→%d at step %d", ErrInvalidPath, prev, v, i)
		}
		total += w
	}

	return total, nil
}

// IsValidPath reports whether every consecutive pair in path is either
// graph-adjacent or a legitimate pause (repeated vertex). Out-of-range
// ids make the path invalid; empty and single-vertex paths are valid.
//
// Complexity: O(L·d).
func IsValidPath(g Graph, path Path) bool {
	if g == nil {
		return false
	}

	for i, v := range path {
		if v < 0 || v >= g.Size() {
			return false
		}
		if i == 0 || v == path[i-1] {
			continue
		}
		if _, ok := edgeWeight(g, path[i-1], v); !ok {
			return false
		}
	}

	return true
}

// Adjacent reports whether a path of length 1 exists from v1 to v2,
// i.e. v2 appears in g.Neighbors(v1). Returns ErrNilGraph or
// ErrNodeOutOfRange for invalid input.
//
// Complexity: O(d).
func Adjacent(g Graph, v1, v2 int) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if err := checkNode(g, v1); err != nil {
		return false, fmt.Errorf("%w: v1=%d", err, v1)
	}
	if err := checkNode(g, v2); err != nil {
		return false, fmt.Errorf("%w: v2=%d", err, v2)
	}

	_, ok := edgeWeight(g, v1, v2)

	return ok, nil
}
