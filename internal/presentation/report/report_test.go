package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/algotrace/internal/presentation/report"
	"github.com/aretw0/algotrace/pkg/analysis"
	"github.com/aretw0/algotrace/pkg/catalog"
	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	report.Summary(&buf, analysis.Summary{
		Algorithm:   domain.QuickSort,
		InputSize:   8,
		Steps:       30,
		Comparisons: 12,
		Swaps:       7,
		Theoretical: 43.2,
		Efficiency:  44,
	})

	out := buf.String()
	assert.Contains(t, out, "QUICK SORT")
	assert.Contains(t, out, "Comparisons")
	assert.Contains(t, out, "19")
	assert.Contains(t, out, "44%")
}

func TestComparison(t *testing.T) {
	c, err := analysis.Compare(domain.BubbleSort, domain.MergeSort, []int{5, 4, 3, 2, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	report.Comparison(&buf, c)

	out := buf.String()
	assert.Contains(t, out, "BUBBLE SORT")
	assert.Contains(t, out, "MERGE SORT")
	assert.Contains(t, out, "Merge Sort used fewer operations.")
}

func TestCatalog(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	report.Catalog(&buf, cat.All())
	out := buf.String()
	assert.Contains(t, out, "bubble-sort")
	assert.Contains(t, out, "Binary Search Tree")
}

func TestPlot(t *testing.T) {
	assert.Empty(t, report.Plot([]float64{1}, 5, ""))

	out := report.Plot([]float64{0, 2, 4, 8}, 4, "operations")
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "operations")
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 4)
}
