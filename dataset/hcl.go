package dataset

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/sajltaha/citygraph/core"
)

// hclFile is the top-level structure of a dataset file for decoding.
type hclFile struct {
	Graph hclGraph `hcl:"graph,block"`
}

// hclGraph is the graph block. Attribute names diverge from the JSON
// wire contract on purpose: HCL files are written by hand, so they use
// the spelled-out vertices / from / to / weight vocabulary.
type hclGraph struct {
	Directed    bool      `hcl:"directed"`
	Vertices    int       `hcl:"vertices"`
	Source      int       `hcl:"source,optional"`
	WeightModel string    `hcl:"weight_model,optional"`
	Edges       []hclEdge `hcl:"edge,block"`
}

type hclEdge struct {
	From   int   `hcl:"from"`
	To     int   `hcl:"to"`
	Weight int64 `hcl:"weight"`
}

// ParseHCL decodes one dataset description from HCL source. The
// filename labels diagnostics only; block order is edge order.
// Defaults match ParseJSON: absent weight_model is "edge", absent
// source is 0.
func ParseHCL(filename string, src []byte) (*Description, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("dataset: parse %s: %w", filename, diags)
	}

	var root hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("dataset: decode %s: %w", filename, diags)
	}

	d := &Description{
		Directed:    root.Graph.Directed,
		N:           root.Graph.Vertices,
		Edges:       make([]EdgeDesc, 0, len(root.Graph.Edges)),
		Source:      root.Graph.Source,
		WeightModel: root.Graph.WeightModel,
	}
	for _, e := range root.Graph.Edges {
		d.Edges = append(d.Edges, EdgeDesc{U: e.From, V: e.To, W: e.Weight})
	}
	if d.WeightModel == "" {
		d.WeightModel = core.DefaultWeightModel
	}

	return d, nil
}

// LoadHCL reads and decodes the dataset file at path.
func LoadHCL(path string) (*Description, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	return ParseHCL(path, src)
}
