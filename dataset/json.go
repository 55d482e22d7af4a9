package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sajltaha/citygraph/core"
)

// ParseJSON decodes one dataset description from r.
// An absent weight_model defaults to "edge"; an absent source to 0.
func ParseJSON(r io.Reader) (*Description, error) {
	var d Description
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("dataset: decode json: %w", err)
	}
	if d.WeightModel == "" {
		d.WeightModel = core.DefaultWeightModel
	}

	return &d, nil
}

// LoadJSON reads and decodes the dataset file at path.
func LoadJSON(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	d, err := ParseJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// WriteJSON pretty-prints d into the file at path.
func WriteJSON(d *Description, path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("dataset: encode json: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	return nil
}
