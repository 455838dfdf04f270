// Package report renders trace summaries as tables and ASCII plots.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/algotrace/pkg/analysis"
	"github.com/aretw0/algotrace/pkg/catalog"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
)

// Summary writes one summary as a two-column table.
func Summary(w io.Writer, s analysis.Summary) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Metric", s.Algorithm.String()})
	for _, row := range summaryRows(s) {
		tbl.Append(row)
	}
	tbl.Render()
}

// Comparison writes both summaries of c side by side, followed by the winner.
func Comparison(w io.Writer, c analysis.Comparison) {
	left, right := c.Left.Summary, c.Right.Summary

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Metric", left.Algorithm.String(), right.Algorithm.String()})
	l, r := summaryRows(left), summaryRows(right)
	for i := range l {
		tbl.Append([]string{l[i][0], l[i][1], r[i][1]})
	}
	tbl.Render()

	if winner, ok := c.Winner(); ok {
		fmt.Fprintf(w, "%s used fewer operations.\n", winner)
	} else {
		fmt.Fprintln(w, "Both algorithms used the same number of operations.")
	}
}

// Catalog writes one row per entry.
func Catalog(w io.Writer, entries []catalog.Info) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Key", "Name", "Time", "Space", "Stable", "In-place"})
	for _, e := range entries {
		tbl.Append([]string{
			e.Key,
			e.Name,
			e.TimeComplexity,
			e.SpaceComplexity,
			yesNo(e.Stable),
			yesNo(e.InPlace),
		})
	}
	tbl.Render()
}

// Plot draws the operation curve of a trace. The result is empty when
// values has fewer than two points.
func Plot(values []float64, height int, caption string) string {
	if len(values) < 2 {
		return ""
	}
	return asciigraph.Plot(values, asciigraph.Height(height), asciigraph.Caption(caption))
}

func summaryRows(s analysis.Summary) [][]string {
	return [][]string{
		{"Input size", strconv.Itoa(s.InputSize)},
		{"Steps", strconv.Itoa(s.Steps)},
		{"Comparisons", strconv.Itoa(s.Comparisons)},
		{"Swaps", strconv.Itoa(s.Swaps)},
		{"Operations", strconv.Itoa(s.Operations())},
		{"Theoretical", strconv.FormatFloat(s.Theoretical, 'f', 0, 64)},
		{"Efficiency", fmt.Sprintf("%d%%", s.Efficiency)},
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
