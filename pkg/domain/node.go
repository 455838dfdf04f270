package domain

// TreeNode represents a node of a binary search tree.
// Children are exclusively owned; no node is shared between two trees.
type TreeNode struct {
	ID    string    `json:"id" yaml:"id"`
	Value int       `json:"value" yaml:"value"`
	Left  *TreeNode `json:"left" yaml:"left"`
	Right *TreeNode `json:"right" yaml:"right"`

	// X and Y are layout coordinates, recomputed after every structural change.
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Clone deep-copies the subtree rooted at n. A nil receiver yields nil.
func (n *TreeNode) Clone() *TreeNode {
	if n == nil {
		return nil
	}
	c := *n
	c.Left = n.Left.Clone()
	c.Right = n.Right.Clone()
	return &c
}

// GraphNode is a vertex of a GraphData.
type GraphNode struct {
	ID    string  `json:"id" yaml:"id"`
	Value int     `json:"value" yaml:"value"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
}

// GraphEdge references two nodes by ID. It does not own them.
type GraphEdge struct {
	Source string   `json:"source" yaml:"source"`
	Target string   `json:"target" yaml:"target"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// GraphData is the node/edge collection traversed by the graph engine.
type GraphData struct {
	Nodes      []GraphNode `json:"nodes" yaml:"nodes"`
	Edges      []GraphEdge `json:"edges" yaml:"edges"`
	IsDirected bool        `json:"isDirected" yaml:"isDirected"`
}

// Node returns the node with the given ID.
func (g *GraphData) Node(id string) (GraphNode, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return GraphNode{}, false
}

// HasNode reports whether id names a node of g.
func (g *GraphData) HasNode(id string) bool {
	_, ok := g.Node(id)
	return ok
}

// Neighbors returns the IDs adjacent to id, in edge order.
// Edges are followed in both directions unless the graph is directed.
func (g *GraphData) Neighbors(id string) []string {
	var out []string
	for _, e := range g.Edges {
		switch {
		case e.Source == id:
			out = append(out, e.Target)
		case !g.IsDirected && e.Target == id:
			out = append(out, e.Source)
		}
	}
	return out
}
