// Package toposort defines the vertex states, options, result type,
// counter names, and sentinel errors for topological ordering.
package toposort

import (
	"context"
	"errors"

	"github.com/sajltaha/citygraph/metrics"
)

// Per-vertex traversal states for the depth-first variant.
const (
	White = iota // White: not yet visited.
	Gray         // Gray: on the active path (in progress).
	Black        // Black: fully explored.
)

// Counter names recorded in a Result's Metrics.
const (
	// CounterDFSVisits counts first visits in SortDFS, one per vertex.
	CounterDFSVisits = "dfs_visits"

	// CounterEdgeTraversals counts edges examined by SortDFS.
	CounterEdgeTraversals = "edge_traversals"

	// CounterStackPushes counts completed vertices pushed onto the
	// result stack by SortDFS.
	CounterStackPushes = "stack_pushes"

	// CounterStackPops counts result-stack pops while SortDFS builds
	// the final order.
	CounterStackPops = "stack_pops"

	// CounterQueueAdds counts enqueues in SortKahn, seeds included.
	CounterQueueAdds = "queue_adds"

	// CounterQueueRemoves counts dequeues in SortKahn.
	CounterQueueRemoves = "queue_removes"

	// CounterDegreeUpdates counts in-degree decrements in SortKahn.
	CounterDegreeUpdates = "degree_updates"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to a sort.
	ErrNilGraph = errors.New("toposort: graph is nil")

	// ErrUndirectedGraph indicates an attempt to order an undirected graph.
	ErrUndirectedGraph = errors.New("toposort: directed graph required")

	// ErrCycleDetected indicates the graph has no topological order.
	ErrCycleDetected = errors.New("toposort: cycle detected")
)

// Option configures optional behavior of an ordering run.
type Option func(*options)

// options holds settings for the sorts, currently only cancellation.
type options struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultOptions returns the default options (Background context).
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithCancelContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Result is the outcome of one successful ordering run.
type Result struct {
	// Order is a permutation of [0, n): for every edge u→v, u precedes v.
	Order []int

	// Metrics records the run's wall time and operation counters.
	Metrics *metrics.Metrics
}
