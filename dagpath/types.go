// Package dagpath defines the direction, sentinels, options, counter
// names, and sentinel errors for DAG path computation.
package dagpath

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Direction selects the relaxation sense of a Solver.
type Direction int

const (
	// Shortest minimizes path cost; unreachable vertices hold Inf.
	Shortest Direction = iota

	// Longest maximizes path cost; unreachable vertices hold NegInf.
	Longest
)

// String returns "shortest" or "longest".
func (d Direction) String() string {
	switch d {
	case Shortest:
		return "shortest"
	case Longest:
		return "longest"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Sentinel distances marking unreachable vertices. Both sit at half
// range so one relaxation step cannot overflow int64.
const (
	Inf    = int64(math.MaxInt64 / 2)
	NegInf = int64(math.MinInt64 / 2)
)

// NoSource is the Source() value of a critical-path result, which has
// no root vertex.
const NoSource = -1

// Counter names recorded in a Result's Metrics.
const (
	// CounterEdgeRelaxations counts relaxation attempts, one per edge
	// scanned from a processed vertex.
	CounterEdgeRelaxations = "edge_relaxations"

	// CounterDistanceUpdates counts accepted relaxations: strict
	// improvements that rewrote a distance and predecessor.
	CounterDistanceUpdates = "distance_updates"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to New.
	ErrNilGraph = errors.New("dagpath: graph is nil")

	// ErrUndirectedGraph indicates an attempt to build a solver over an
	// undirected graph. The failure is fatal to the instance.
	ErrUndirectedGraph = errors.New("dagpath: directed graph required")

	// ErrBadDirection indicates a Direction that is neither Shortest
	// nor Longest.
	ErrBadDirection = errors.New("dagpath: unknown direction")

	// ErrCriticalRequiresLongest indicates a critical-path request
	// against a shortest-path solver or result.
	ErrCriticalRequiresLongest = errors.New("dagpath: critical path requires a longest-path solver")

	// ErrUnreachable indicates a path request to a vertex the source
	// never reached.
	ErrUnreachable = errors.New("dagpath: vertex unreachable from source")
)

// Option configures optional behavior of a solver run.
type Option func(*options)

// options holds solver settings, currently only cancellation.
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
