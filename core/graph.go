// Package core implements the Graph methods: mutation, accessors,
// transposition, and human-readable rendering.
package core

import (
	"fmt"
	"strings"
)

// AddEdge appends the edge u→v with weight w. On an undirected graph the
// mirror record v→u is appended as well. Endpoints outside [0, n) yield
// ErrVertexOutOfRange; nothing is appended in that case.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("%w: %d (n=%d)", ErrVertexOutOfRange, u, g.n)
	}
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: %d (n=%d)", ErrVertexOutOfRange, v, g.n)
	}

	g.adj[u] = append(g.adj[u], Edge{From: u, To: v, Weight: w})
	if !g.directed {
		g.adj[v] = append(g.adj[v], Edge{From: v, To: u, Weight: w})
	}

	return nil
}

// Edges returns vertex u's outgoing edges in insertion order.
// The returned slice is the graph's own storage: callers must not modify it.
func (g *Graph) Edges(u int) ([]Edge, error) {
	if u < 0 || u >= g.n {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrVertexOutOfRange, u, g.n)
	}

	return g.adj[u], nil
}

// VertexCount returns n, the number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// WeightModel returns the opaque weight-model tag.
func (g *Graph) WeightModel() string { return g.weightModel }

// EdgeCount returns the number of edges. For undirected graphs the two
// stored mirror records count as one edge.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, edges := range g.adj {
		total += len(edges)
	}
	if !g.directed {
		total /= 2
	}

	return total
}

// Reverse returns a new graph with every edge direction flipped and
// weights preserved. Reversing an undirected graph returns an equal copy,
// since flipping a mirrored pair reproduces it.
func (g *Graph) Reverse() *Graph {
	reversed := &Graph{
		n:           g.n,
		directed:    g.directed,
		weightModel: g.weightModel,
		adj:         make([][]Edge, g.n),
	}

	if !g.directed {
		for u, edges := range g.adj {
			reversed.adj[u] = append([]Edge(nil), edges...)
		}

		return reversed
	}

	for u := 0; u < g.n; u++ {
		for _, e := range g.adj[u] {
			reversed.adj[e.To] = append(reversed.adj[e.To], Edge{From: e.To, To: u, Weight: e.Weight})
		}
	}

	return reversed
}

// String renders a summary header followed by one adjacency line per vertex.
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Graph: n=%d, edges=%d, directed=%t, weightModel=%s\n",
		g.n, g.EdgeCount(), g.directed, g.weightModel)
	for u := 0; u < g.n; u++ {
		fmt.Fprintf(&sb, "  %d: %v\n", u, g.adj[u])
	}

	return sb.String()
}
