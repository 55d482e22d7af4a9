// Package scc defines the options, result types, counter names, and
// sentinel errors for component detection and condensation.
package scc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sajltaha/citygraph/metrics"
)

// Counter names recorded in a Tarjan run's Metrics.
const (
	// CounterDFSVisits counts first visits, one per vertex.
	CounterDFSVisits = "dfs_visits"

	// CounterEdgeTraversals counts examined edges, one per adjacency record.
	CounterEdgeTraversals = "edge_traversals"

	// CounterStackPops counts vertices popped while closing components.
	CounterStackPops = "stack_pops"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to Tarjan
	// or Condense.
	ErrNilGraph = errors.New("scc: graph is nil")

	// ErrNilResult is returned when Condense receives a nil component result.
	ErrNilResult = errors.New("scc: component result is nil")

	// ErrPartitionMismatch indicates a component partition whose shape does
	// not cover the graph it is paired with.
	ErrPartitionMismatch = errors.New("scc: component partition does not match graph")

	// ErrComponentOutOfRange indicates a component index outside [0, Count).
	ErrComponentOutOfRange = errors.New("scc: component index out of range")
)

// Option configures optional behavior of component detection.
type Option func(*options)

// options holds settings for Tarjan, currently only cancellation.
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

// Result is the outcome of one Tarjan run over a graph.
//
// Components partition [0, n): every vertex appears in exactly one
// component, each component lists its vertices in ascending order, and
// components are numbered in the order they closed (reverse topological
// order relative to the original graph).
type Result struct {
	// Components holds the vertex sets in closing order.
	Components [][]int

	// ComponentOf maps each vertex to its index in Components.
	ComponentOf []int

	// Metrics records the run's wall time and operation counters.
	Metrics *metrics.Metrics
}

// Count returns the number of components.
func (r *Result) Count() int { return len(r.Components) }

// SizeSummary renders the component count and per-component sizes in
// closing order, e.g. "3 components, sizes [2 2 1]".
func (r *Result) SizeSummary() string {
	sizes := make([]int, len(r.Components))
	for i, comp := range r.Components {
		sizes[i] = len(comp)
	}

	return fmt.Sprintf("%d components, sizes %v", len(r.Components), sizes)
}
