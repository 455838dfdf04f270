package graph

import (
	"strconv"

	"github.com/aretw0/algotrace/pkg/domain"
)

// Sample returns the undirected demo graph: a six-node network laid out on an 800x400 canvas.
func Sample() *domain.GraphData {
	return &domain.GraphData{
		Nodes: []domain.GraphNode{
			{ID: "1", Value: 1, X: 400, Y: 50},
			{ID: "2", Value: 2, X: 250, Y: 150},
			{ID: "3", Value: 3, X: 550, Y: 150},
			{ID: "4", Value: 4, X: 150, Y: 300},
			{ID: "5", Value: 5, X: 350, Y: 300},
			{ID: "6", Value: 6, X: 650, Y: 300},
		},
		Edges: []domain.GraphEdge{
			{Source: "1", Target: "2"},
			{Source: "1", Target: "3"},
			{Source: "2", Target: "4"},
			{Source: "2", Target: "5"},
			{Source: "3", Target: "6"},
			{Source: "5", Target: "6"},
		},
	}
}

// Chain returns an undirected path graph 1-2-...-n.
func Chain(n int) *domain.GraphData {
	g := &domain.GraphData{}
	for i := 1; i <= n; i++ {
		id := strconv.Itoa(i)
		g.Nodes = append(g.Nodes, domain.GraphNode{ID: id, Value: i, X: float64(100 * i), Y: 200})
		if i > 1 {
			g.Edges = append(g.Edges, domain.GraphEdge{Source: strconv.Itoa(i - 1), Target: id})
		}
	}
	return g
}
