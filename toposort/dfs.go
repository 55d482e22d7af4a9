// Package toposort implements the depth-first ordering variant.
//
// SortDFS drives a postorder traversal from every unvisited vertex in
// index order. The classic recursion is replaced by an explicit stack of
// (vertex, edge index) frames, so depth is bounded by memory rather than
// the call stack; visit order and tie-breaking match the recursive form.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package toposort

import (
	"fmt"

	"github.com/sajltaha/citygraph/core"
	"github.com/sajltaha/citygraph/metrics"
)

// frame is one suspended visit: the vertex and the index of the next
// outgoing edge to examine.
type frame struct {
	v    int
	next int
}

// dfsSorter holds the traversal state for one SortDFS run.
type dfsSorter struct {
	graph *core.Graph
	opts  options
	state []int // White, Gray, or Black per vertex
	stack []int // completed vertices, deepest first
	met   *metrics.Metrics
}

// SortDFS computes a topological ordering of g by depth-first postorder.
// A nil graph yields ErrNilGraph, an undirected graph ErrUndirectedGraph,
// and a cycle ErrCycleDetected with no result.
// You may pass WithCancelContext(ctx) to enable cancellation.
func SortDFS(g *core.Graph, options ...Option) (*Result, error) {
	// 1. Validate construction preconditions.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	// 2. Apply optional settings.
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state: all vertices White.
	n := g.VertexCount()
	s := &dfsSorter{
		graph: g,
		opts:  opts,
		state: make([]int, n),
		stack: make([]int, 0, n),
		met:   metrics.New(),
	}
	// 4. Drive the traversal from every White vertex in index order.
	s.met.Start()
	for v := 0; v < n; v++ {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Pop the result stack: reverse completion order is the ordering.
	order := make([]int, 0, n)
	for len(s.stack) > 0 {
		v := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.met.Inc(CounterStackPops)
		order = append(order, v)
	}
	s.met.Stop()

	return &Result{Order: order, Metrics: s.met}, nil
}

// visit explores the subgraph reachable from root, aborting on the
// first edge into a Gray vertex.
func (s *dfsSorter) visit(root int) error {
	s.state[root] = Gray
	s.met.Inc(CounterDFSVisits)
	frames := []frame{{v: root}}

	for len(frames) > 0 {
		// Cancellation check once per examined edge or finished frame.
		select {
		case <-s.opts.ctx.Done():
			return s.opts.ctx.Err()
		default:
		}

		top := &frames[len(frames)-1]
		edges, err := s.graph.Edges(top.v)
		if err != nil {
			return fmt.Errorf("toposort: adjacency fetch: %w", err)
		}

		if top.next < len(edges) {
			e := edges[top.next]
			top.next++
			s.met.Inc(CounterEdgeTraversals)

			switch s.state[e.To] {
			case Gray:
				// Back edge: the active path closes on itself.
				return fmt.Errorf("%w: back edge %d->%d", ErrCycleDetected, top.v, e.To)
			case White:
				s.state[e.To] = Gray
				s.met.Inc(CounterDFSVisits)
				frames = append(frames, frame{v: e.To})
			}

			continue
		}

		// Neighbor scan complete: the vertex is finished.
		s.state[top.v] = Black
		s.stack = append(s.stack, top.v)
		s.met.Inc(CounterStackPushes)
		frames = frames[:len(frames)-1]
	}

	return nil
}
