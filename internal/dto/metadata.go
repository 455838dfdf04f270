package dto

import (
	"github.com/aretw0/algotrace/pkg/domain"
)

// GraphDocument is the on-disk shape of a graph definition (YAML or JSON).
// It uses "mapstructure" tags so short and long edge keys (from/source, to/target) both decode.
type GraphDocument struct {
	Directed   bool           `json:"directed" mapstructure:"directed"`
	IsDirected bool           `json:"isDirected" mapstructure:"isDirected"`
	Nodes      []DocumentNode `json:"nodes" mapstructure:"nodes"`
	Edges      []DocumentEdge `json:"edges" mapstructure:"edges"`
}

type DocumentNode struct {
	ID    string  `json:"id" mapstructure:"id"`
	Value *int    `json:"value" mapstructure:"value"`
	X     float64 `json:"x" mapstructure:"x"`
	Y     float64 `json:"y" mapstructure:"y"`
}

type DocumentEdge struct {
	From   string   `json:"from" mapstructure:"from"`
	Source string   `json:"source" mapstructure:"source"`
	To     string   `json:"to" mapstructure:"to"`
	Target string   `json:"target" mapstructure:"target"`
	Weight *float64 `json:"weight" mapstructure:"weight"`
}

// ToDomain converts the document. A node without a value takes its position (1-based).
func (d GraphDocument) ToDomain() *domain.GraphData {
	g := &domain.GraphData{
		IsDirected: d.Directed || d.IsDirected,
		Nodes:      make([]domain.GraphNode, 0, len(d.Nodes)),
		Edges:      make([]domain.GraphEdge, 0, len(d.Edges)),
	}
	for i, n := range d.Nodes {
		value := i + 1
		if n.Value != nil {
			value = *n.Value
		}
		g.Nodes = append(g.Nodes, domain.GraphNode{ID: n.ID, Value: value, X: n.X, Y: n.Y})
	}
	for _, e := range d.Edges {
		g.Edges = append(g.Edges, domain.GraphEdge{
			Source: firstNonEmpty(e.Source, e.From),
			Target: firstNonEmpty(e.Target, e.To),
			Weight: e.Weight,
		})
	}
	return g
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
