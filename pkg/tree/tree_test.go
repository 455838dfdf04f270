package tree_test

import (
	"strconv"
	"testing"

	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/trace"
	"github.com/aretw0/algotrace/pkg/tree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() tree.Option {
	n := 0
	return tree.WithIDGenerator(func() string {
		n++
		return "n" + strconv.Itoa(n)
	})
}

func build(t *testing.T, values ...int) *domain.TreeNode {
	t.Helper()
	return tree.Build(values, trace.NewRecorder(), sequentialIDs())
}

func TestInsert_EmptyTreeCreatesRoot(t *testing.T) {
	rec := trace.NewRecorder()
	root := tree.Insert(nil, 50, rec, sequentialIDs())

	require.NotNil(t, root)
	assert.Equal(t, 50, root.Value)
	assert.Equal(t, float64(tree.DefaultWidth/2), root.X)
	assert.Equal(t, float64(tree.RootY), root.Y)

	steps := rec.Steps()
	require.Len(t, steps, 1)
	assert.Equal(t, "Created root node with value 50", steps[0].Explanation)
	assert.Equal(t, root.ID, steps[0].Current)
}

func TestInsert_WalksAndPlaces(t *testing.T) {
	root := build(t, 50, 30, 70)
	rec := trace.NewRecorder()
	newRoot := tree.Insert(root, 40, rec, sequentialIDs())

	assert.Equal(t, []int{30, 40, 50, 70}, tree.Values(newRoot))
	require.NotNil(t, newRoot.Left.Right)
	assert.Equal(t, 40, newRoot.Left.Right.Value)

	var explanations []string
	for _, s := range rec.Steps() {
		explanations = append(explanations, s.Explanation)
	}
	assert.Equal(t, []string{
		"Inserting 40... Starting at root",
		"40 < 50, going left",
		"40 >= 30, going right",
		"Inserted 40",
	}, explanations)
}

func TestInsert_EqualGoesRight(t *testing.T) {
	root := tree.Insert(build(t, 10, 5), 10, trace.NewRecorder(), sequentialIDs())
	require.NotNil(t, root.Right)
	assert.Equal(t, 10, root.Right.Value)
}

func TestInsert_DoesNotMutateInput(t *testing.T) {
	root := build(t, 50, 30, 70)
	before := root.Clone()

	rec := trace.NewRecorder()
	newRoot := tree.Insert(root, 20, rec, sequentialIDs())

	if diff := cmp.Diff(before, root); diff != "" {
		t.Fatalf("input tree changed (-before +after):\n%s", diff)
	}
	assert.NotSame(t, root, newRoot)

	// The first step shows the tree before the new node was attached.
	first := rec.Steps()[0]
	assert.Equal(t, 3, tree.Size(first.Tree))
	assert.Equal(t, 4, tree.Size(newRoot))
}

func TestLayout(t *testing.T) {
	root := build(t, 50, 30, 70, 20)
	assert.Equal(t, 400.0, root.X)
	assert.Equal(t, 200.0, root.Left.X)
	assert.Equal(t, 600.0, root.Right.X)
	assert.Equal(t, 100.0, root.Left.Left.X)
	assert.Equal(t, float64(tree.RootY+2*tree.LevelHeight), root.Left.Left.Y)

	narrow := tree.Build([]int{2, 1}, trace.NewRecorder(), tree.WithWidth(100))
	assert.Equal(t, 50.0, narrow.X)
	assert.Equal(t, 25.0, narrow.Left.X)
}

func TestSearch(t *testing.T) {
	root := build(t, 50, 30, 70, 20, 40)

	rec := trace.NewRecorder()
	assert.True(t, tree.Search(root, 40, rec))
	steps := rec.Steps()
	last := steps[len(steps)-1]
	assert.Equal(t, "Found 40!", last.Explanation)
	assert.Equal(t, []string{root.Left.Right.ID}, last.Visited)

	rec = trace.NewRecorder()
	assert.False(t, tree.Search(root, 45, rec))
	steps = rec.Steps()
	assert.Equal(t, "45 not found in tree", steps[len(steps)-1].Explanation)

	rec = trace.NewRecorder()
	assert.False(t, tree.Search(nil, 1, rec))
	assert.Len(t, rec.Steps(), 2)
}

func TestTraverse(t *testing.T) {
	root := build(t, 50, 30, 70, 20, 40)

	tests := []struct {
		order domain.TraversalOrder
		want  []int
	}{
		{domain.Inorder, []int{20, 30, 40, 50, 70}},
		{domain.Preorder, []int{50, 30, 20, 40, 70}},
		{domain.Postorder, []int{20, 40, 30, 70, 50}},
	}
	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			rec := trace.NewRecorder()
			tree.Traverse(root, tt.order, rec)
			steps := rec.Steps()
			require.Len(t, steps, len(tt.want)+2)

			var got []int
			for _, s := range steps[1 : len(steps)-1] {
				got = append(got, valueOf(s.Tree, s.Current))
			}
			assert.Equal(t, tt.want, got)

			last := steps[len(steps)-1]
			assert.Len(t, last.Visited, len(tt.want))
			assert.Equal(t, string(tt.order)+" traversal complete", last.Explanation)
		})
	}
}

func TestSizeAndHeight(t *testing.T) {
	assert.Equal(t, 0, tree.Size(nil))
	assert.Equal(t, 0, tree.Height(nil))

	root := build(t, 1, 2, 3, 4)
	assert.Equal(t, 4, tree.Size(root))
	assert.Equal(t, 4, tree.Height(root))
}

func TestNewUUID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		id := tree.NewUUID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func valueOf(n *domain.TreeNode, id string) int {
	if n == nil {
		return -1
	}
	if n.ID == id {
		return n.Value
	}
	if v := valueOf(n.Left, id); v != -1 {
		return v
	}
	return valueOf(n.Right, id)
}
