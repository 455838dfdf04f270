package analysis_test

import (
	"testing"

	"github.com/aretw0/algotrace/pkg/analysis"
	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheoretical(t *testing.T) {
	assert.Equal(t, 45.0, analysis.Theoretical(domain.BubbleSort, 10))
	assert.Equal(t, 45.0, analysis.Theoretical(domain.SelectionSort, 10))
	assert.InDelta(t, 1.5*8*3, analysis.Theoretical(domain.MergeSort, 8), 1e-9)
	assert.InDelta(t, 1.8*8*3, analysis.Theoretical(domain.QuickSort, 8), 1e-9)
	assert.Equal(t, 8.0, analysis.Theoretical(domain.StackOps, 4))
	assert.Zero(t, analysis.Theoretical(domain.BubbleSort, 0))
	assert.Zero(t, analysis.Theoretical(domain.Algorithm(99), 10))
}

func TestSummarize(t *testing.T) {
	steps := []domain.Step{
		{Comparisons: 0, Swaps: 0},
		{Comparisons: 1, Swaps: 0},
		{Comparisons: 3, Swaps: 2},
	}
	s := analysis.Summarize(domain.BubbleSort, 4, steps)

	assert.Equal(t, 3, s.Steps)
	assert.Equal(t, 3, s.Comparisons)
	assert.Equal(t, 2, s.Swaps)
	assert.Equal(t, 5, s.Operations())
	assert.Equal(t, 6.0, s.Theoretical)
	assert.Equal(t, 83, s.Efficiency)
}

func TestSummarize_EfficiencyIsCapped(t *testing.T) {
	steps := []domain.Step{{Comparisons: 50, Swaps: 50}}
	s := analysis.Summarize(domain.BubbleSort, 3, steps)
	assert.Equal(t, 100, s.Efficiency)

	empty := analysis.Summarize(domain.BubbleSort, 0, nil)
	assert.Zero(t, empty.Efficiency)
	assert.Zero(t, empty.Steps)
}

func TestSeries(t *testing.T) {
	steps := make([]domain.Step, 11)
	for i := range steps {
		steps[i] = domain.Step{Comparisons: i, Swaps: i}
	}

	all := analysis.Series(steps, 50)
	require.Len(t, all, 11)
	assert.Equal(t, 20.0, all[10])

	sampled := analysis.Series(steps, 3)
	assert.Equal(t, []float64{0, 10, 20}, sampled)

	assert.Equal(t, []float64{20}, analysis.Series(steps, 1))
	assert.Nil(t, analysis.Series(nil, 10))
}

func TestTheoreticalSeries(t *testing.T) {
	series := analysis.TheoreticalSeries(domain.BubbleSort, 5, 3)
	assert.Equal(t, []float64{0, 5, 10}, series)
}

func TestCompare(t *testing.T) {
	input := []int{5, 4, 3, 2, 1}
	c, err := analysis.Compare(domain.BubbleSort, domain.MergeSort, input)
	require.NoError(t, err)

	assert.Equal(t, input, c.Input)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, input, "caller input must be untouched")
	assert.Equal(t, domain.BubbleSort, c.Left.Summary.Algorithm)
	assert.Equal(t, domain.MergeSort, c.Right.Summary.Algorithm)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, c.Left.Steps[len(c.Left.Steps)-1].Array)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, c.Right.Steps[len(c.Right.Steps)-1].Array)

	// Reversed input: bubble does 10 comparisons and 10 swaps.
	assert.Equal(t, 10, c.Left.Summary.Comparisons)
	assert.Equal(t, 10, c.Left.Summary.Swaps)

	winner, ok := c.Winner()
	require.True(t, ok)
	assert.Equal(t, domain.MergeSort, winner)

	_, err = analysis.Compare(domain.BubbleSort, domain.Algorithm(42), input)
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}
