package domain

// Step represents one frame of an algorithm run.
// A Step is immutable once recorded: every slice and the tree are private copies.
type Step struct {
	// Array is a full snapshot of the working array at this instant.
	Array []int `json:"array" yaml:"array"`

	// Comparing holds the indices currently being compared (0-2 entries).
	Comparing []int `json:"comparing" yaml:"comparing"`

	// Swapping holds the indices currently being written or exchanged.
	Swapping []int `json:"swapping" yaml:"swapping"`

	// Sorted holds the indices known to be in their final position.
	Sorted []int `json:"sorted" yaml:"sorted"`

	// Explanation narrates the action this step represents. Never empty.
	Explanation string `json:"explanation" yaml:"explanation"`

	// Comparisons and Swaps are cumulative counters as of this step.
	Comparisons int `json:"comparisons" yaml:"comparisons"`
	Swaps       int `json:"swaps" yaml:"swaps"`

	// Tree is a deep copy of the binary tree at this instant (tree operations only).
	Tree *TreeNode `json:"tree,omitempty" yaml:"tree,omitempty"`

	// Graph is shared by reference; traversals never mutate it.
	Graph *GraphData `json:"graph,omitempty" yaml:"graph,omitempty"`

	// Visited lists node IDs in visit order (or a path, for shortest path results).
	Visited []string `json:"visited,omitempty" yaml:"visited,omitempty"`

	// Current is the ID of the node being processed, if any.
	Current string `json:"current,omitempty" yaml:"current,omitempty"`
}

// Clone returns a copy of the step that shares no mutable state with s,
// except the graph which is read-only by contract.
func (s Step) Clone() Step {
	c := s
	c.Array = cloneInts(s.Array)
	c.Comparing = cloneInts(s.Comparing)
	c.Swapping = cloneInts(s.Swapping)
	c.Sorted = cloneInts(s.Sorted)
	if s.Visited != nil {
		c.Visited = append([]string{}, s.Visited...)
	}
	c.Tree = s.Tree.Clone()
	return c
}

// Counters accumulates primitive operations for a single trace generation.
type Counters struct {
	Comparisons int `json:"comparisons" yaml:"comparisons"`
	Swaps       int `json:"swaps" yaml:"swaps"`
}

// Total returns comparisons plus swaps.
func (c Counters) Total() int {
	return c.Comparisons + c.Swaps
}

// cloneInts always returns a non-nil slice so empty sets encode as [].
func cloneInts(src []int) []int {
	dst := make([]int, len(src))
	copy(dst, src)
	return dst
}
