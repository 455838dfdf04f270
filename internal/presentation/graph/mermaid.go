package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/algotrace/pkg/domain"
)

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []string
	CurrentNode  string
}

// OverlayFromStep returns the overlay of a traversal step, or nil when the
// step carries no traversal state.
func OverlayFromStep(s domain.Step) *GraphOverlay {
	if len(s.Visited) == 0 && s.Current == "" {
		return nil
	}
	return &GraphOverlay{VisitedNodes: s.Visited, CurrentNode: s.Current}
}

// GenerateMermaid produces a Mermaid flowchart of a graph.
// Nodes are ((circles)) labelled with their value. Undirected edges use ---,
// directed edges -->, and weights become edge labels.
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(g *domain.GraphData, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	if g == nil {
		return sb.String()
	}

	for _, n := range g.Nodes {
		fmt.Fprintf(&sb, "    %s((\"%d\"))\n", sanitizeMermaidID(n.ID), n.Value)
	}

	arrow := "---"
	if g.IsDirected {
		arrow = "-->"
	}
	for _, e := range g.Edges {
		from, to := sanitizeMermaidID(e.Source), sanitizeMermaidID(e.Target)
		if e.Weight != nil {
			weight := strconv.FormatFloat(*e.Weight, 'f', -1, 64)
			fmt.Fprintf(&sb, "    %s -- \"%s\" %s %s\n", from, weight, arrow, to)
			continue
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", from, arrow, to)
	}

	writeOverlay(&sb, overlay)
	return sb.String()
}

// GenerateTreeMermaid produces a top-down Mermaid flowchart of a binary tree.
// Left edges are labelled L and right edges R so single children keep their side.
func GenerateTreeMermaid(root *domain.TreeNode, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	var walk func(n *domain.TreeNode)
	walk = func(n *domain.TreeNode) {
		if n == nil {
			return
		}
		id := sanitizeMermaidID(n.ID)
		fmt.Fprintf(&sb, "    %s((\"%d\"))\n", id, n.Value)
		if n.Left != nil {
			fmt.Fprintf(&sb, "    %s -- L --> %s\n", id, sanitizeMermaidID(n.Left.ID))
		}
		if n.Right != nil {
			fmt.Fprintf(&sb, "    %s -- R --> %s\n", id, sanitizeMermaidID(n.Right.ID))
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)

	writeOverlay(&sb, overlay)
	return sb.String()
}

func writeOverlay(sb *strings.Builder, overlay *GraphOverlay) {
	if overlay == nil {
		return
	}
	sb.WriteString("\n    %% Overlay Styles\n")
	// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
	sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

	visitedSet := make(map[string]bool)
	for _, id := range overlay.VisitedNodes {
		safeID := sanitizeMermaidID(id)
		if !visitedSet[safeID] && safeID != "" {
			visitedSet[safeID] = true
			fmt.Fprintf(sb, "    class %s visited;\n", safeID)
		}
	}

	if overlay.CurrentNode != "" {
		fmt.Fprintf(sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode))
	}
}

// sanitizeMermaidID maps an ID onto [A-Za-z0-9_] and prefixes IDs that
// start with a digit, which Mermaid would otherwise read as a number.
func sanitizeMermaidID(id string) string {
	if id == "" {
		return ""
	}
	s := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, id)
	if s[0] >= '0' && s[0] <= '9' {
		s = "n" + s
	}
	return s
}
