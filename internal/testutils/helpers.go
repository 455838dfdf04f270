// Package testutils holds assertions shared by the engine tests.
package testutils

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RequireTraceInvariants checks the properties every trace must hold:
// a narration on each step, non-decreasing counters, and index sets that
// point inside the step's array.
func RequireTraceInvariants(t *testing.T, steps []domain.Step) {
	t.Helper()
	require.NotEmpty(t, steps, "trace must not be empty")

	var prev domain.Counters
	for i, s := range steps {
		require.NotEmpty(t, s.Explanation, "step %d has no explanation", i)
		require.GreaterOrEqual(t, s.Comparisons, prev.Comparisons, "comparisons decreased at step %d", i)
		require.GreaterOrEqual(t, s.Swaps, prev.Swaps, "swaps decreased at step %d", i)
		prev = domain.Counters{Comparisons: s.Comparisons, Swaps: s.Swaps}

		for _, set := range [][]int{s.Comparing, s.Swapping, s.Sorted} {
			for _, k := range set {
				require.True(t, k >= 0 && k < len(s.Array), "step %d: index %d out of range for %v", i, k, s.Array)
			}
		}
	}
}

// AssertSortedResult checks that the last step holds the sorted input with
// every index marked sorted.
func AssertSortedResult(t *testing.T, input []int, steps []domain.Step) {
	t.Helper()
	want := slices.Clone(input)
	slices.Sort(want)

	last := steps[len(steps)-1]
	assert.Equal(t, want, last.Array)
	sorted := slices.Clone(last.Sorted)
	slices.Sort(sorted)
	assert.Equal(t, len(input), len(slices.Compact(sorted)), "every index must be sorted")
}

// RandomInputs returns count arrays of random length in [2, maxLen] drawn
// from a seeded source, including duplicates.
func RandomInputs(seed int64, count, maxLen int) [][]int {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]int, count)
	for i := range out {
		n := 2 + rng.Intn(maxLen-1)
		arr := make([]int, n)
		for j := range arr {
			arr[j] = rng.Intn(n * 2)
		}
		out[i] = arr
	}
	return out
}

// EdgeInputs are the shapes most likely to break a sorting engine.
var EdgeInputs = map[string][]int{
	"two ordered":    {1, 2},
	"two reversed":   {2, 1},
	"all equal":      {7, 7, 7, 7},
	"already sorted": {1, 2, 3, 4, 5, 6},
	"reversed":       {9, 8, 7, 6, 5, 4, 3},
	"duplicates":     {5, 1, 5, 3, 1, 3},
	"negatives":      {0, -4, 12, -1, 3},
}
