// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// WriteJSON writes papers as an indented JSON array. No papers is "[]".
func WriteJSON(w io.Writer, papers []types.Paper) error {
	if papers == nil {
		papers = []types.Paper{}
	}
	data, err := json.MarshalIndent(papers, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteYAML writes papers as a YAML sequence.
func WriteYAML(w io.Writer, papers []types.Paper) error {
	if papers == nil {
		papers = []types.Paper{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(papers); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}
