package input_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArray(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"5, 3, 8", []int{5, 3, 8}},
		{"5 3\t8", []int{5, 3, 8}},
		{"-1;0;1", []int{-1, 0, 1}},
		{" 4,,2 ", []int{4, 2}},
	}
	for _, tt := range tests {
		got, err := input.ParseArray(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseArray_Rejects(t *testing.T) {
	for _, in := range []string{"", "7", "1, two, 3", strings.Repeat("1,", input.MaxLength+1)} {
		_, err := input.ParseArray(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%q", in)
	}
}

func TestRandomArray(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	values := input.RandomArray(50, rng)
	require.Len(t, values, 50)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, input.MinValue)
		assert.LessOrEqual(t, v, input.MaxValue)
	}

	assert.Len(t, input.RandomArray(0, rng), input.MinLength)
	assert.Len(t, input.RandomArray(1000, rng), input.MaxLength)

	a := input.RandomArray(10, rand.New(rand.NewSource(3)))
	b := input.RandomArray(10, rand.New(rand.NewSource(3)))
	assert.Equal(t, a, b)
}

func TestDecodeGraph_YAML(t *testing.T) {
	doc := `
directed: true
nodes:
  - id: 1
    value: 10
  - id: 2
  - {id: 3, x: 5, y: 6}
edges:
  - {from: 1, to: 2}
  - {source: 2, target: 3, weight: 2.5}
`
	g, err := input.DecodeGraph(strings.NewReader(doc), input.FormatYAML)
	require.NoError(t, err)

	assert.True(t, g.IsDirected)
	require.Len(t, g.Nodes, 3)
	assert.Equal(t, domain.GraphNode{ID: "1", Value: 10}, g.Nodes[0])
	assert.Equal(t, 2, g.Nodes[1].Value, "missing value takes the 1-based position")
	assert.Equal(t, 5.0, g.Nodes[2].X)

	require.Len(t, g.Edges, 2)
	assert.Equal(t, "1", g.Edges[0].Source)
	assert.Equal(t, "2", g.Edges[0].Target)
	require.NotNil(t, g.Edges[1].Weight)
	assert.Equal(t, 2.5, *g.Edges[1].Weight)
}

func TestDecodeGraph_JSON(t *testing.T) {
	doc := `{"isDirected": false, "nodes": [{"id": "a", "value": 1}, {"id": "b", "value": 2}], "edges": [{"source": "a", "target": "b"}]}`
	g, err := input.DecodeGraph(strings.NewReader(doc), input.FormatJSON)
	require.NoError(t, err)
	assert.False(t, g.IsDirected)
	assert.Equal(t, []string{"b"}, g.Neighbors("a"))
	assert.Equal(t, []string{"a"}, g.Neighbors("b"))
}

func TestDecodeGraph_Rejects(t *testing.T) {
	tests := map[string]string{
		"malformed":     "nodes: [",
		"no nodes":      "edges: []",
		"missing id":    "nodes: [{value: 1}]",
		"duplicate id":  "nodes: [{id: a}, {id: a}]",
		"dangling edge": "nodes: [{id: a}]\nedges: [{source: a, target: z}]",
		"wrong type":    "nodes: 5",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := input.DecodeGraph(strings.NewReader(doc), input.FormatYAML)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestLoadGraph(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"nodes":[{"id":"x"},{"id":"y"}],"edges":[{"from":"x","to":"y"}]}`), 0o644))

	g, err := input.LoadGraph(path)
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 2)

	_, err = input.LoadGraph(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)

	assert.Equal(t, input.FormatJSON, input.FormatOf("a/B.JSON"))
	assert.Equal(t, input.FormatYAML, input.FormatOf("graph.yml"))
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "1, 2, 3", "1, 2, 3"},
		{"safe controls", "1\n2\t3\r", "1\n2\t3\r"},
		{"escape sequence", "\x1b[31m4,5", "[31m4,5"},
		{"null and bell", "6\x00,7\x07", "6,7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := input.Sanitize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := input.Sanitize("\xff\xfe")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = input.Sanitize(strings.Repeat("1", input.DefaultMaxTextSize+1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSanitize_EnvLimit(t *testing.T) {
	t.Setenv(input.EnvMaxTextSize, "8")

	_, err := input.Sanitize("1,2,3,4,5")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := input.ParseArray("1,2,3,4")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestParseArray_StripsControlCharacters(t *testing.T) {
	got, err := input.ParseArray("\x1b3,\x001")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, got)
}
