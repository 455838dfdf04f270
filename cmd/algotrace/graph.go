package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/algotrace/internal/cli"
	mermaid "github.com/aretw0/algotrace/internal/presentation/graph"
	"github.com/aretw0/algotrace/pkg/domain"
	"github.com/aretw0/algotrace/pkg/graph"
	"github.com/aretw0/algotrace/pkg/input"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Trace a breadth-first, depth-first or shortest-path search",
	Long: `Traces a graph search over the six-node sample graph, or over a graph
document given with --file (YAML, or JSON for a .json file):

  isDirected: false
  nodes: [{id: a, value: 1}, {id: b, value: 2}]
  edges: [{source: a, target: b}]

With --mermaid the graph is printed as a Mermaid diagram, highlighting the
visited nodes of the last step.`,
	Example: `  algotrace graph --bfs 1
  algotrace graph --path 1:6 --mermaid
  algotrace graph --file city.yaml --dfs a`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loggerFor(cmd)
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")
		bfs, _ := cmd.Flags().GetString("bfs")
		dfs, _ := cmd.Flags().GetString("dfs")
		path, _ := cmd.Flags().GetString("path")
		asMermaid, _ := cmd.Flags().GetBool("mermaid")

		g := graph.Sample()
		if file != "" {
			if g, err = input.LoadGraph(file); err != nil {
				return err
			}
		}

		ctx := cmd.Context()
		engine := cli.CreateEngine(logger)
		out := cmd.OutOrStdout()

		var steps []domain.Step
		switch {
		case bfs != "":
			steps, err = engine.BFS(ctx, g, bfs)
		case dfs != "":
			steps, err = engine.DFS(ctx, g, dfs)
		case path != "":
			start, end, ok := splitPair(path)
			if !ok {
				return fmt.Errorf("%w: --path wants start:end, got %q", domain.ErrInvalidInput, path)
			}
			var found []string
			found, steps, err = engine.ShortestPath(ctx, g, start, end)
			if err == nil && !asMermaid {
				defer fmt.Fprintf(out, "path: %v\n", found)
			}
		case !asMermaid:
			return fmt.Errorf("%w: choose one of --bfs, --dfs, --path or --mermaid", domain.ErrInvalidInput)
		}
		if err != nil {
			return err
		}

		if asMermaid {
			var overlay *mermaid.GraphOverlay
			if len(steps) > 0 {
				overlay = mermaid.OverlayFromStep(steps[len(steps)-1])
			}
			fmt.Fprint(out, mermaid.GenerateMermaid(g, overlay))
			return nil
		}
		return cli.WriteSteps(ctx, out, cli.FormatText, profileFor(cmd), steps)
	},
}

func splitPair(s string) (string, string, bool) {
	start, end, ok := strings.Cut(s, ":")
	return start, end, ok && start != "" && end != ""
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("file", "", "Graph document (YAML or JSON)")
	graphCmd.Flags().String("bfs", "", "Breadth-first search from this node ID")
	graphCmd.Flags().String("dfs", "", "Depth-first search from this node ID")
	graphCmd.Flags().String("path", "", "Shortest path between two node IDs, as start:end")
	graphCmd.Flags().Bool("mermaid", false, "Print the graph as a Mermaid diagram")
	graphCmd.MarkFlagsMutuallyExclusive("bfs", "dfs", "path")
}
