// Package tree implements the binary search tree engine.
//
// Insert never mutates the tree it is given: it works on a deep clone and
// returns the new root, so steps recorded by earlier operations keep showing
// the tree as it was. Every recorded step carries its own copy of the tree.
package tree

import (
	"fmt"
	"math"

	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/trace"
	"github.com/google/uuid"
)

const (
	// DefaultWidth is the canvas width used for layout.
	DefaultWidth = 800
	// RootY is the vertical position of the root.
	RootY = 50
	// LevelHeight is the vertical distance between levels.
	LevelHeight = 60
)

// IDGenerator mints node identifiers. IDs are never reused.
type IDGenerator func() string

// NewUUID is the default IDGenerator.
func NewUUID() string {
	return uuid.NewString()
}

type config struct {
	width float64
	newID IDGenerator
}

// Option configures Insert and Build.
type Option func(*config)

// WithWidth sets the layout width (default 800).
func WithWidth(w float64) Option {
	return func(c *config) {
		c.width = w
	}
}

// WithIDGenerator replaces the UUID generator, e.g. with a deterministic one in tests.
func WithIDGenerator(gen IDGenerator) Option {
	return func(c *config) {
		c.newID = gen
	}
}

func newConfig(opts []Option) config {
	c := config{width: DefaultWidth, newID: NewUUID}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Insert adds value to the tree rooted at root and returns the new root.
// Values lower than a node go left; equal or greater go right.
func Insert(root *domain.TreeNode, value int, rec *trace.Recorder, opts ...Option) *domain.TreeNode {
	cfg := newConfig(opts)

	if root == nil {
		node := &domain.TreeNode{ID: cfg.newID(), Value: value, X: cfg.width / 2, Y: RootY}
		rec.Record(domain.Step{
			Tree:        node,
			Current:     node.ID,
			Explanation: fmt.Sprintf("Created root node with value %d", value),
		})
		return node
	}

	newRoot := root.Clone()
	Layout(newRoot, cfg.width)

	rec.Record(domain.Step{
		Tree:        newRoot,
		Current:     newRoot.ID,
		Explanation: fmt.Sprintf("Inserting %d... Starting at root", value),
	})

	current := newRoot
	for {
		if value < current.Value {
			rec.Record(domain.Step{
				Tree:        newRoot,
				Current:     childOrSelf(current.Left, current),
				Explanation: fmt.Sprintf("%d < %d, going left", value, current.Value),
			})
			if current.Left == nil {
				current.Left = &domain.TreeNode{ID: cfg.newID(), Value: value}
				break
			}
			current = current.Left
		} else {
			rec.Record(domain.Step{
				Tree:        newRoot,
				Current:     childOrSelf(current.Right, current),
				Explanation: fmt.Sprintf("%d >= %d, going right", value, current.Value),
			})
			if current.Right == nil {
				current.Right = &domain.TreeNode{ID: cfg.newID(), Value: value}
				break
			}
			current = current.Right
		}
	}

	Layout(newRoot, cfg.width)
	rec.Record(domain.Step{
		Tree:        newRoot,
		Explanation: fmt.Sprintf("Inserted %d", value),
	})
	return newRoot
}

// Build inserts values in order, starting from an empty tree.
func Build(values []int, rec *trace.Recorder, opts ...Option) *domain.TreeNode {
	var root *domain.TreeNode
	for _, v := range values {
		root = Insert(root, v, rec, opts...)
	}
	return root
}

// Search walks from root towards value. It reports whether value is present.
func Search(root *domain.TreeNode, value int, rec *trace.Recorder) bool {
	start := domain.Step{
		Tree:        root,
		Explanation: fmt.Sprintf("Searching for %d...", value),
	}
	if root != nil {
		start.Current = root.ID
	}
	rec.Record(start)

	current := root
	for current != nil {
		rec.Record(domain.Step{
			Tree:        root,
			Current:     current.ID,
			Explanation: fmt.Sprintf("Checking %d...", current.Value),
		})

		if value == current.Value {
			rec.Record(domain.Step{
				Tree:        root,
				Current:     current.ID,
				Visited:     []string{current.ID},
				Explanation: fmt.Sprintf("Found %d!", value),
			})
			return true
		}

		if value < current.Value {
			rec.Record(domain.Step{
				Tree:        root,
				Current:     childOrSelf(current.Left, current),
				Explanation: fmt.Sprintf("%d < %d, going left", value, current.Value),
			})
			current = current.Left
		} else {
			rec.Record(domain.Step{
				Tree:        root,
				Current:     childOrSelf(current.Right, current),
				Explanation: fmt.Sprintf("%d > %d, going right", value, current.Value),
			})
			current = current.Right
		}
	}

	rec.Record(domain.Step{
		Tree:        root,
		Explanation: fmt.Sprintf("%d not found in tree", value),
	})
	return false
}

// Traverse records one step per visited node in the given order.
// Each visit step carries the cumulative list of visited IDs.
func Traverse(root *domain.TreeNode, order domain.TraversalOrder, rec *trace.Recorder) {
	visited := []string{}

	var walk func(n *domain.TreeNode)
	visit := func(n *domain.TreeNode) {
		visited = append(visited, n.ID)
		rec.Record(domain.Step{
			Tree:        root,
			Current:     n.ID,
			Visited:     visited,
			Explanation: fmt.Sprintf("Visiting %d (%s)", n.Value, order.Title()),
		})
	}
	walk = func(n *domain.TreeNode) {
		if n == nil {
			return
		}
		if order == domain.Preorder {
			visit(n)
		}
		walk(n.Left)
		if order == domain.Inorder {
			visit(n)
		}
		walk(n.Right)
		if order == domain.Postorder {
			visit(n)
		}
	}

	rec.Record(domain.Step{
		Tree:        root,
		Visited:     []string{},
		Explanation: fmt.Sprintf("Starting %s traversal", order),
	})
	walk(root)
	rec.Record(domain.Step{
		Tree:        root,
		Visited:     visited,
		Explanation: fmt.Sprintf("%s traversal complete", order),
	})
}

// Layout assigns coordinates from scratch: the root sits at the horizontal
// centre and each child is offset by width/2^(level+1), one level per 60 units.
func Layout(root *domain.TreeNode, width float64) {
	position(root, width/2, RootY, 1, width)
}

func position(n *domain.TreeNode, x, y float64, level int, width float64) {
	if n == nil {
		return
	}
	n.X = x
	n.Y = y
	offset := width / math.Pow(2, float64(level+1))
	position(n.Left, x-offset, y+LevelHeight, level+1, width)
	position(n.Right, x+offset, y+LevelHeight, level+1, width)
}

// Values returns the tree's values in order.
func Values(root *domain.TreeNode) []int {
	var out []int
	var walk func(n *domain.TreeNode)
	walk = func(n *domain.TreeNode) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Value)
		walk(n.Right)
	}
	walk(root)
	return out
}

// Size returns the number of nodes.
func Size(root *domain.TreeNode) int {
	if root == nil {
		return 0
	}
	return 1 + Size(root.Left) + Size(root.Right)
}

// Height returns the number of levels; an empty tree has height 0.
func Height(root *domain.TreeNode) int {
	if root == nil {
		return 0
	}
	return 1 + max(Height(root.Left), Height(root.Right))
}

func childOrSelf(child, self *domain.TreeNode) string {
	if child != nil {
		return child.ID
	}
	return self.ID
}
