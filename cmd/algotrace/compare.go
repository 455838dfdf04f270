package main

import (
	"fmt"

	"github.com/aretw0/algotrace/internal/presentation/report"
	"github.com/aretw0/algotrace/pkg/analysis"
	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <algorithm> <algorithm>",
	Short: "Trace two algorithms on the same input and compare their cost",
	Example: `  algotrace compare bubble merge -n 50
  algotrace compare insertion quick -i 9,8,7,6,5,4,3,2,1 --plot`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := domain.ParseAlgorithm(args[0])
		if err != nil {
			return err
		}
		b, err := domain.ParseAlgorithm(args[1])
		if err != nil {
			return err
		}
		values, err := readInput(cmd, defaultLength*2)
		if err != nil {
			return err
		}

		c, err := analysis.Compare(a, b, values)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Input (%d values): %v\n\n", len(values), values)
		report.Comparison(out, c)

		if plot, _ := cmd.Flags().GetBool("plot"); plot {
			for _, r := range []analysis.Result{c.Left, c.Right} {
				fmt.Fprintln(out)
				fmt.Fprintln(out, report.Plot(analysis.Series(r.Steps, plotWidth), plotHeight, r.Summary.Algorithm.String()))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	addInputFlags(compareCmd)
	compareCmd.Flags().Bool("plot", false, "Plot cumulative operations per step for both algorithms")
}
