package main

import (
	"fmt"

	"github.com/aretw0/algotrace/internal/cli"
	"github.com/aretw0/algotrace/internal/presentation/graph"
	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/input"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Build a binary search tree and trace insert, search or traversal",
	Long: `Builds a binary search tree from --values (50,30,70,20,40,60,80 by default),
then traces at most one operation on it. Without an operation the build
itself is traced.`,
	Example: `  algotrace tree --insert 65
  algotrace tree --values 8,3,10,1,6 --search 6
  algotrace tree --traverse inorder --mermaid`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loggerFor(cmd)
		if err != nil {
			return err
		}
		raw, _ := cmd.Flags().GetString("values")
		orderFlag, _ := cmd.Flags().GetString("traverse")
		mermaid, _ := cmd.Flags().GetBool("mermaid")
		insert, search := cmd.Flags().Changed("insert"), cmd.Flags().Changed("search")

		ops := 0
		for _, set := range []bool{insert, search, orderFlag != ""} {
			if set {
				ops++
			}
		}
		if ops > 1 {
			return fmt.Errorf("%w: use only one of --insert, --search and --traverse", domain.ErrInvalidInput)
		}

		values, err := input.ParseArray(raw)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		engine := cli.CreateEngine(logger)
		root, steps := engine.BuildTree(ctx, values)

		switch {
		case insert:
			v, _ := cmd.Flags().GetInt("insert")
			root, steps = engine.InsertNode(ctx, root, v)
		case search:
			v, _ := cmd.Flags().GetInt("search")
			var found bool
			found, steps = engine.SearchTree(ctx, root, v)
			logger.Info("tree search", "value", v, "found", found)
		case orderFlag != "":
			order, err := domain.ParseTraversalOrder(orderFlag)
			if err != nil {
				return err
			}
			steps = engine.TraverseTree(ctx, root, order)
		}

		out := cmd.OutOrStdout()
		if mermaid {
			var overlay *graph.GraphOverlay
			if len(steps) > 0 {
				overlay = graph.OverlayFromStep(steps[len(steps)-1])
			}
			fmt.Fprint(out, graph.GenerateTreeMermaid(root, overlay))
			return nil
		}
		return cli.WriteSteps(ctx, out, cli.FormatText, profileFor(cmd), steps)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().String("values", "50,30,70,20,40,60,80", "Initial values, inserted in order")
	treeCmd.Flags().Int("insert", 0, "Trace inserting this value")
	treeCmd.Flags().Int("search", 0, "Trace searching for this value")
	treeCmd.Flags().String("traverse", "", "Trace a traversal: inorder, preorder or postorder")
	treeCmd.Flags().Bool("mermaid", false, "Print the resulting tree as a Mermaid diagram")
}
