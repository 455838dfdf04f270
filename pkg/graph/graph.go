// Package graph implements step-emitting traversals over domain.GraphData.
//
// Traversals never mutate the graph: visited state is tracked locally and
// every step references the same GraphData. Unknown node IDs are rejected
// with domain.ErrNodeNotFound before any step is recorded.
package graph

import (
	"fmt"

	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/trace"
)

// BFS visits nodes level by level from start.
func BFS(g *domain.GraphData, start string, rec *trace.Recorder) error {
	if err := requireNodes(g, start); err != nil {
		return err
	}

	seen := map[string]bool{start: true}
	visited := []string{start}
	queue := []string{start}

	rec.Record(domain.Step{
		Graph:       g,
		Visited:     visited,
		Current:     start,
		Explanation: fmt.Sprintf("Starting BFS from node %s", label(g, start)),
	})

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		rec.Record(domain.Step{
			Graph:       g,
			Visited:     visited,
			Current:     id,
			Explanation: fmt.Sprintf("Visiting node %s", label(g, id)),
		})

		for _, next := range g.Neighbors(id) {
			if seen[next] {
				continue
			}
			seen[next] = true
			visited = append(visited, next)
			queue = append(queue, next)

			rec.Record(domain.Step{
				Graph:       g,
				Visited:     visited,
				Current:     next,
				Explanation: fmt.Sprintf("Found unvisited neighbor %s", label(g, next)),
			})
		}
	}

	rec.Record(domain.Step{
		Graph:       g,
		Visited:     visited,
		Explanation: "BFS Traversal Complete",
	})
	return nil
}

// DFS visits nodes depth first from start, recording each node before descending.
func DFS(g *domain.GraphData, start string, rec *trace.Recorder) error {
	if err := requireNodes(g, start); err != nil {
		return err
	}

	seen := make(map[string]bool)
	visited := []string{}

	var walk func(id string)
	walk = func(id string) {
		seen[id] = true
		visited = append(visited, id)
		rec.Record(domain.Step{
			Graph:       g,
			Visited:     visited,
			Current:     id,
			Explanation: fmt.Sprintf("Visiting node %s", label(g, id)),
		})

		for _, next := range g.Neighbors(id) {
			if !seen[next] {
				walk(next)
			}
		}
	}

	rec.Record(domain.Step{
		Graph:       g,
		Visited:     []string{},
		Current:     start,
		Explanation: fmt.Sprintf("Starting DFS from node %s", label(g, start)),
	})
	walk(start)
	rec.Record(domain.Step{
		Graph:       g,
		Visited:     visited,
		Explanation: "DFS Traversal Complete",
	})
	return nil
}

// ShortestPath runs a BFS that carries the path to every queued node.
// When end is reached the final step's Visited holds the path itself.
// It returns the path, or nil when end is unreachable.
func ShortestPath(g *domain.GraphData, start, end string, rec *trace.Recorder) ([]string, error) {
	if err := requireNodes(g, start, end); err != nil {
		return nil, err
	}

	type entry struct {
		id   string
		path []string
	}

	seen := map[string]bool{start: true}
	visited := []string{start}
	queue := []entry{{id: start, path: []string{start}}}

	rec.Record(domain.Step{
		Graph:       g,
		Visited:     visited,
		Current:     start,
		Explanation: fmt.Sprintf("Finding shortest path from %s to %s", label(g, start), label(g, end)),
	})

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		if e.id == end {
			rec.Record(domain.Step{
				Graph:       g,
				Visited:     e.path,
				Current:     end,
				Explanation: fmt.Sprintf("Found shortest path! Length: %d", len(e.path)-1),
			})
			return e.path, nil
		}

		rec.Record(domain.Step{
			Graph:       g,
			Visited:     visited,
			Current:     e.id,
			Explanation: fmt.Sprintf("Visiting node %s", label(g, e.id)),
		})

		for _, next := range g.Neighbors(e.id) {
			if seen[next] {
				continue
			}
			seen[next] = true
			visited = append(visited, next)
			path := append(append(make([]string, 0, len(e.path)+1), e.path...), next)
			queue = append(queue, entry{id: next, path: path})

			rec.Record(domain.Step{
				Graph:       g,
				Visited:     visited,
				Current:     next,
				Explanation: fmt.Sprintf("Found unvisited neighbor %s", label(g, next)),
			})
		}
	}

	rec.Record(domain.Step{
		Graph:       g,
		Visited:     visited,
		Explanation: fmt.Sprintf("No path found from %s to %s", label(g, start), label(g, end)),
	})
	return nil, nil
}

// Validate reports the first edge that references an unknown node.
func Validate(g *domain.GraphData) error {
	for i, e := range g.Edges {
		for _, id := range []string{e.Source, e.Target} {
			if !g.HasNode(id) {
				return fmt.Errorf("edge %d: %w: %q", i, domain.ErrNodeNotFound, id)
			}
		}
	}
	return nil
}

func requireNodes(g *domain.GraphData, ids ...string) error {
	if g == nil {
		return fmt.Errorf("%w: nil graph", domain.ErrNodeNotFound)
	}
	for _, id := range ids {
		if !g.HasNode(id) {
			return fmt.Errorf("%w: %q", domain.ErrNodeNotFound, id)
		}
	}
	return nil
}

// label names a node by its display value.
func label(g *domain.GraphData, id string) string {
	if n, ok := g.Node(id); ok {
		return fmt.Sprint(n.Value)
	}
	return id
}
