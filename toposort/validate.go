// Package toposort implements order validation against a graph's edges.
package toposort

import "github.com/sajltaha/citygraph/core"

// IsValidOrder reports whether order is a valid topological ordering of
// g: a permutation of [0, n) in which every edge's source precedes its
// destination. This is the authoritative check both sort variants must
// satisfy. A nil graph, a wrong-length order, a duplicate, or an
// out-of-range entry is invalid.
func IsValidOrder(g *core.Graph, order []int) bool {
	if g == nil {
		return false
	}
	n := g.VertexCount()
	if len(order) != n {
		return false
	}

	// 1. Build position lookup, rejecting duplicates and range errors.
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	for i, v := range order {
		if v < 0 || v >= n || pos[v] != -1 {
			return false
		}
		pos[v] = i
	}

	// 2. Every edge must go from an earlier to a later position.
	for u := 0; u < n; u++ {
		edges, err := g.Edges(u)
		if err != nil {
			return false
		}
		for _, e := range edges {
			if pos[u] >= pos[e.To] {
				return false
			}
		}
	}

	return true
}
