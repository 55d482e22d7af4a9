// Package dagpath implements the shared relaxation solver.
//
// One skeleton serves both directions: process vertices in topological
// order and relax each outgoing edge, accepting strictly better
// candidates. Shortest and Longest differ only in the comparison and in
// the sentinel that marks unreachable vertices, both chosen once at
// construction.
//
// Complexity:
//
//   - Time:   O(V + E) per compute call
//   - Memory: O(V)
package dagpath

import (
	"fmt"

	"github.com/sajltaha/citygraph/core"
	"github.com/sajltaha/citygraph/metrics"
	"github.com/sajltaha/citygraph/toposort"
)

// Solver computes best-cost paths over a directed acyclic graph.
// A Solver is reusable: every compute call returns a fresh Result and
// leaves no state behind, so one Solver may serve many runs.
type Solver struct {
	graph    *core.Graph
	dir      Direction
	sentinel int64
	better   func(candidate, current int64) bool
	opts     options
}

// New constructs a solver over g for the given direction.
// A nil graph yields ErrNilGraph; an undirected graph is rejected at
// construction with ErrUndirectedGraph.
// You may pass WithCancelContext(ctx) to enable cancellation.
func New(g *core.Graph, dir Direction, options ...Option) (*Solver, error) {
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
	// 3. Fix the comparison policy and sentinel for this instance.
	s := &Solver{graph: g, dir: dir, opts: opts}
	switch dir {
	case Shortest:
		s.sentinel = Inf
		s.better = func(candidate, current int64) bool { return candidate < current }
	case Longest:
		s.sentinel = NegInf
		s.better = func(candidate, current int64) bool { return candidate > current }
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadDirection, int(dir))
	}

	return s, nil
}

// Direction returns the solver's relaxation sense.
func (s *Solver) Direction() Direction { return s.dir }

// ComputeFrom computes best-cost paths from source to every vertex.
// Distances seed at the sentinel except the source (0); vertices still
// at the sentinel when their turn comes are skipped, so only paths
// rooted at the source propagate. A cyclic graph yields
// toposort.ErrCycleDetected and no result.
func (s *Solver) ComputeFrom(source int) (*Result, error) {
	n := s.graph.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d (n=%d)", core.ErrVertexOutOfRange, source, n)
	}

	dist := make([]int64, n)
	pred := make([]int, n)
	for v := 0; v < n; v++ {
		dist[v] = s.sentinel
		pred[v] = -1
	}
	dist[source] = 0

	return s.run(dist, pred, source, true)
}

// ComputeCritical computes the heaviest chain anywhere in the graph:
// every distance seeds at 0 and no vertex is skipped, so a chain may
// start wherever it pays best. Only longest-path solvers support it.
func (s *Solver) ComputeCritical() (*Result, error) {
	if s.dir != Longest {
		return nil, ErrCriticalRequiresLongest
	}

	n := s.graph.VertexCount()
	dist := make([]int64, n)
	pred := make([]int, n)
	for v := 0; v < n; v++ {
		pred[v] = -1
	}

	return s.run(dist, pred, NoSource, false)
}

// run is the shared skeleton: obtain a topological order (the ordering
// run's own metrics are discarded), then relax every vertex's outgoing
// edges in that order. The measured window spans ordering plus
// relaxation; seeding happens before it opens.
func (s *Solver) run(dist []int64, pred []int, source int, skipSentinel bool) (*Result, error) {
	met := metrics.New()
	met.Start()

	order, err := toposort.SortDFS(s.graph, toposort.WithCancelContext(s.opts.ctx))
	if err != nil {
		met.Stop()

		return nil, fmt.Errorf("dagpath: ordering: %w", err)
	}

	for _, u := range order.Order {
		if skipSentinel && dist[u] == s.sentinel {
			continue
		}
		edges, err := s.graph.Edges(u)
		if err != nil {
			return nil, fmt.Errorf("dagpath: adjacency fetch: %w", err)
		}
		for _, e := range edges {
			met.Inc(CounterEdgeRelaxations)
			candidate := dist[u] + e.Weight
			if s.better(candidate, dist[e.To]) {
				dist[e.To] = candidate
				pred[e.To] = u
				met.Inc(CounterDistanceUpdates)
			}
		}
	}
	met.Stop()

	return &Result{
		dir:      s.dir,
		source:   source,
		sentinel: s.sentinel,
		dist:     dist,
		pred:     pred,
		met:      met,
	}, nil
}
