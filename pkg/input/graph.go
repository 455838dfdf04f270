package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/algotrace/internal/dto"
	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/graph"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf guesses the format from a file extension. Unknown extensions are YAML,
// which also accepts JSON.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// LoadGraph reads and validates a graph document from disk.
func LoadGraph(path string) (*domain.GraphData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph file: %w", err)
	}
	return DecodeGraph(bytes.NewReader(data), FormatOf(path))
}

// DecodeGraph decodes a graph document into a generic map, maps it onto
// dto.GraphDocument and validates the result. Node IDs may be written as numbers.
func DecodeGraph(r io.Reader, format Format) (*domain.GraphData, error) {
	var raw map[string]any
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: failed to parse graph JSON: %v", domain.ErrInvalidInput, err)
		}
	default:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: failed to parse graph YAML: %v", domain.ErrInvalidInput, err)
		}
	}

	var doc dto.GraphDocument
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &doc,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode graph: %v", domain.ErrInvalidInput, err)
	}

	g := doc.ToDomain()
	if len(g.Nodes) == 0 {
		return nil, fmt.Errorf("%w: graph has no nodes", domain.ErrInvalidInput)
	}
	seen := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: node without id", domain.ErrInvalidInput)
		}
		if seen[n.ID] {
			return nil, fmt.Errorf("%w: duplicate node id %q", domain.ErrInvalidInput, n.ID)
		}
		seen[n.ID] = true
	}
	if err := graph.Validate(g); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return g, nil
}
