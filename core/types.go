// Package core declares the Graph and Edge types, graph construction
// options, and the sentinel errors shared by all graph operations.
package core

import (
	"errors"
	"fmt"
)

// DefaultWeightModel is the weight-model tag applied when none is set.
// The core does not interpret the tag; loaders and reports carry it through.
const DefaultWeightModel = "edge"

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates NewGraph was called with a negative vertex count.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")
)

// Edge is one outgoing adjacency record: From→To with an integer Weight.
// Weight may encode an edge cost or, by external convention, a node cost;
// the core treats it uniformly as an edge attribute.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the signed cost of the edge.
	Weight int64
}

// String renders the record as it appears inside an adjacency listing.
func (e Edge) String() string {
	return fmt.Sprintf("->%d (w=%d)", e.To, e.Weight)
}

// Graph is a weighted directed or undirected graph over vertices [0, n),
// stored as per-vertex outgoing edge lists in insertion order.
//
// A Graph is not safe for concurrent mutation; after construction every
// algorithm in this module reads it without modification, so a built
// Graph may be shared freely across solver instances.
type Graph struct {
	n           int
	directed    bool
	weightModel string
	adj         [][]Edge
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeightModel sets the opaque weight-model tag ("edge", "node", ...).
// An empty tag is ignored and the default is kept.
func WithWeightModel(model string) GraphOption {
	return func(g *Graph) {
		if model != "" {
			g.weightModel = model
		}
	}
}

// NewGraph returns an empty graph over vertices [0, n).
// By default the graph is undirected with the "edge" weight model.
// A negative n yields ErrBadVertexCount.
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, n)
	}

	g := &Graph{
		n:           n,
		directed:    false,
		weightModel: DefaultWeightModel,
		adj:         make([][]Edge, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
