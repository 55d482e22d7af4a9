package dataset

import (
	"errors"
	"fmt"

	"github.com/sajltaha/citygraph/core"
)

// Sentinel errors for generator parameter validation.
var (
	// ErrBadVertexCount indicates a non-positive vertex or component count.
	ErrBadVertexCount = errors.New("dataset: vertex count must be positive")

	// ErrBadDensity indicates an edge density outside [0, 1].
	ErrBadDensity = errors.New("dataset: density must be within [0, 1]")

	// ErrBadWeightRange indicates a minimum weight above the maximum.
	ErrBadWeightRange = errors.New("dataset: weight range out of order")

	// ErrBadComponentSize indicates component size bounds that are
	// non-positive or inverted.
	ErrBadComponentSize = errors.New("dataset: component size bounds out of order")
)

// EdgeDesc is one edge record of the wire format: u→v with weight w.
type EdgeDesc struct {
	U int   `json:"u"`
	V int   `json:"v"`
	W int64 `json:"w"`
}

// Description is the stored form of one dataset. Field names are the
// JSON wire contract; the edge list order is the adjacency insertion
// order of the built graph.
type Description struct {
	Directed    bool       `json:"directed"`
	N           int        `json:"n"`
	Edges       []EdgeDesc `json:"edges"`
	Source      int        `json:"source"`
	WeightModel string     `json:"weight_model"`
}

// Build validates the description and constructs its graph.
// Endpoint and source violations wrap core.ErrVertexOutOfRange; the
// source check is skipped for the degenerate empty graph, which has no
// vertex to point at.
func (d *Description) Build() (*core.Graph, int, error) {
	g, err := core.NewGraph(d.N, core.WithDirected(d.Directed), core.WithWeightModel(d.WeightModel))
	if err != nil {
		return nil, 0, fmt.Errorf("dataset: %w", err)
	}

	for i, e := range d.Edges {
		if err := g.AddEdge(e.U, e.V, e.W); err != nil {
			return nil, 0, fmt.Errorf("dataset: edge %d: %w", i, err)
		}
	}

	if d.N > 0 && (d.Source < 0 || d.Source >= d.N) {
		return nil, 0, fmt.Errorf("%w: source %d (n=%d)", core.ErrVertexOutOfRange, d.Source, d.N)
	}

	return g, d.Source, nil
}
