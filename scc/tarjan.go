// Package scc implements Tarjan's strongly-connected-component
// detection over an explicit work stack.
//
// Tarjan computes the component partition in one pass: every vertex is
// visited once, every edge examined once. The classic recursion is
// replaced by heap-allocated (vertex, edge index) frames so traversal
// depth is bounded by memory, not by the call stack; the visit order,
// low-link propagation, and component numbering are identical to the
// recursive form.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package scc

import (
	"fmt"
	"sort"

	"github.com/sajltaha/citygraph/core"
	"github.com/sajltaha/citygraph/metrics"
)

// unvisited marks a vertex with no discovery index yet.
const unvisited = -1

// frame is one suspended visit on the explicit work stack: the vertex
// and the index of the next outgoing edge to examine.
type frame struct {
	v    int
	next int
}

// tarjanWalker holds the traversal state for one Tarjan run.
type tarjanWalker struct {
	graph   *core.Graph
	opts    options
	disc    []int  // discovery index per vertex, unvisited = -1
	low     []int  // low-link value per vertex
	onStack []bool // membership flag for the component stack
	stack   []int  // component stack: discovered, not yet closed
	time    int    // next discovery index to assign
	comps   [][]int
	compOf  []int
	met     *metrics.Metrics
}

// Tarjan partitions g's vertices into strongly connected components.
// Every graph, cyclic or not, has a well-defined partition, so the only
// failures are a nil graph and context cancellation.
// You may pass WithCancelContext(ctx) to enable cancellation.
func Tarjan(g *core.Graph, options ...Option) (*Result, error) {
	// 1. Validate graph pointer.
	if g == nil {
		return nil, ErrNilGraph
	}
	// 2. Apply optional settings.
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize walker state: all vertices undiscovered.
	n := g.VertexCount()
	w := &tarjanWalker{
		graph:   g,
		opts:    opts,
		disc:    make([]int, n),
		low:     make([]int, n),
		onStack: make([]bool, n),
		stack:   make([]int, 0, n),
		compOf:  make([]int, n),
		met:     metrics.New(),
	}
	for v := 0; v < n; v++ {
		w.disc[v] = unvisited
		w.low[v] = unvisited
		w.compOf[v] = unvisited
	}
	// 4. Drive the traversal from every undiscovered vertex.
	w.met.Start()
	for v := 0; v < n; v++ {
		if w.disc[v] == unvisited {
			if err := w.visit(v); err != nil {
				return nil, err
			}
		}
	}
	w.met.Stop()

	return &Result{Components: w.comps, ComponentOf: w.compOf, Metrics: w.met}, nil
}

// visit runs one depth-first exploration rooted at root, closing every
// component whose root it reaches.
func (w *tarjanWalker) visit(root int) error {
	w.discover(root)
	frames := []frame{{v: root}}

	for len(frames) > 0 {
		// Cancellation check once per examined edge or finished frame.
		select {
		case <-w.opts.ctx.Done():
			return w.opts.ctx.Err()
		default:
		}

		top := &frames[len(frames)-1]
		edges, err := w.graph.Edges(top.v)
		if err != nil {
			return fmt.Errorf("scc: adjacency fetch: %w", err)
		}

		if top.next < len(edges) {
			e := edges[top.next]
			top.next++
			w.met.Inc(CounterEdgeTraversals)

			if w.disc[e.To] == unvisited {
				// Tree edge: suspend here, descend into the child.
				w.discover(e.To)
				frames = append(frames, frame{v: e.To})
			} else if w.onStack[e.To] {
				// Back or cross edge into the active region.
				if w.disc[e.To] < w.low[top.v] {
					w.low[top.v] = w.disc[e.To]
				}
			}

			continue
		}

		// All edges examined: maybe close a component, then return to
		// the parent frame, folding the child's low-link into it.
		v := top.v
		if w.low[v] == w.disc[v] {
			w.closeComponent(v)
		}
		frames = frames[:len(frames)-1]
		if len(frames) > 0 {
			parent := frames[len(frames)-1].v
			if w.low[v] < w.low[parent] {
				w.low[parent] = w.low[v]
			}
		}
	}

	return nil
}

// discover assigns the next discovery index to v and pushes it onto the
// component stack.
func (w *tarjanWalker) discover(v int) {
	w.disc[v] = w.time
	w.low[v] = w.time
	w.time++
	w.stack = append(w.stack, v)
	w.onStack[v] = true
	w.met.Inc(CounterDFSVisits)
}

// closeComponent pops the component stack down to and including root;
// every popped vertex joins the newly numbered component.
func (w *tarjanWalker) closeComponent(root int) {
	id := len(w.comps)
	comp := make([]int, 0, 1)
	for {
		v := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.onStack[v] = false
		w.compOf[v] = id
		comp = append(comp, v)
		w.met.Inc(CounterStackPops)
		if v == root {
			break
		}
	}
	sort.Ints(comp)
	w.comps = append(w.comps, comp)
}
