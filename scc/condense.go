// Package scc implements the condensation builder: the component-level
// graph obtained by contracting every strongly connected component.
package scc

import (
	"fmt"

	"github.com/sajltaha/citygraph/core"
)

// Vertex colors for the acyclicity check.
const (
	white = iota // not yet visited
	gray         // on the active path
	black        // fully explored
)

// Condensation owns the condensed graph and read-only partition lookups.
// Its vertex set is {0, ..., Count-1}; an edge compU→compV exists iff
// some original edge crosses those components, and at most one edge per
// ordered pair is kept.
type Condensation struct {
	graph      *core.Graph
	components [][]int
	compOf     []int
}

// Condense builds the condensation of g from a Tarjan result.
// Self-loops (both endpoints in one component) are dropped; duplicate
// cross-component edges collapse to the first-encountered weight.
// A partition whose shape does not cover g yields ErrPartitionMismatch.
func Condense(g *core.Graph, res *Result) (*Condensation, error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if res == nil {
		return nil, ErrNilResult
	}
	n := g.VertexCount()
	k := len(res.Components)
	if len(res.ComponentOf) != n {
		return nil, fmt.Errorf("%w: %d vertices mapped, graph has %d",
			ErrPartitionMismatch, len(res.ComponentOf), n)
	}
	covered := 0
	for _, comp := range res.Components {
		covered += len(comp)
	}
	if covered != n {
		return nil, fmt.Errorf("%w: components cover %d of %d vertices",
			ErrPartitionMismatch, covered, n)
	}
	for v, comp := range res.ComponentOf {
		if comp < 0 || comp >= k {
			return nil, fmt.Errorf("%w: vertex %d maps to component %d of %d",
				ErrPartitionMismatch, v, comp, k)
		}
	}

	// 2. Build the component-level graph, deduplicating by ordered pair.
	cg, err := core.NewGraph(k, core.WithDirected(true), core.WithWeightModel(g.WeightModel()))
	if err != nil {
		return nil, err
	}
	seen := make(map[[2]int]struct{})
	for u := 0; u < n; u++ {
		edges, err := g.Edges(u)
		if err != nil {
			return nil, fmt.Errorf("scc: adjacency fetch: %w", err)
		}
		for _, e := range edges {
			compU, compV := res.ComponentOf[u], res.ComponentOf[e.To]
			if compU == compV {
				continue
			}
			key := [2]int{compU, compV}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if err := cg.AddEdge(compU, compV, e.Weight); err != nil {
				return nil, err
			}
		}
	}

	return &Condensation{graph: cg, components: res.Components, compOf: res.ComponentOf}, nil
}

// Graph returns the condensed component-level graph.
func (c *Condensation) Graph() *core.Graph { return c.graph }

// Count returns the number of components.
func (c *Condensation) Count() int { return len(c.components) }

// ComponentFor returns the component index of original vertex v.
func (c *Condensation) ComponentFor(v int) (int, error) {
	if v < 0 || v >= len(c.compOf) {
		return 0, fmt.Errorf("%w: %d (n=%d)", core.ErrVertexOutOfRange, v, len(c.compOf))
	}

	return c.compOf[v], nil
}

// VerticesIn returns the original vertices of component i in ascending
// order. The returned slice is shared storage: callers must not modify it.
func (c *Condensation) VerticesIn(i int) ([]int, error) {
	if i < 0 || i >= len(c.components) {
		return nil, fmt.Errorf("%w: %d (count=%d)", ErrComponentOutOfRange, i, len(c.components))
	}

	return c.components[i], nil
}

// IsAcyclic verifies by an independent three-color depth-first check
// that the condensed graph has no cycle. A correctly computed partition
// always yields true; the check exists as a runtime guarantee, not as a
// step of the construction.
func (c *Condensation) IsAcyclic() bool {
	k := c.graph.VertexCount()
	state := make([]int, k)

	for start := 0; start < k; start++ {
		if state[start] != white {
			continue
		}
		state[start] = gray
		frames := []frame{{v: start}}

		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			edges, err := c.graph.Edges(top.v)
			if err != nil {
				// Unreachable: the walk only touches vertices of its own graph.
				return false
			}

			if top.next < len(edges) {
				e := edges[top.next]
				top.next++
				switch state[e.To] {
				case gray:
					return false
				case white:
					state[e.To] = gray
					frames = append(frames, frame{v: e.To})
				}

				continue
			}

			state[top.v] = black
			frames = frames[:len(frames)-1]
		}
	}

	return true
}
