package main

import (
	"fmt"

	"github.com/aretw0/algotrace/internal/presentation/report"
	"github.com/aretw0/algotrace/internal/presentation/tui"
	"github.com/aretw0/algotrace/pkg/catalog"
	"github.com/spf13/cobra"
)

var algorithmsCmd = &cobra.Command{
	Use:     "algorithms",
	Aliases: []string{"ls"},
	Short:   "List every algorithm and data structure with its complexity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return err
		}
		report.Catalog(cmd.OutOrStdout(), cat.All())
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <algorithm>",
	Short: "Show how an algorithm works, its complexity and trade-offs",
	Example: `  algotrace info merge
  algotrace info bst`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return err
		}
		info, err := cat.Lookup(args[0])
		if err != nil {
			return err
		}

		plain, _ := cmd.Flags().GetBool("plain")
		render := tui.NewRenderer(plain, 80)
		text, err := render(catalog.Markdown(info))
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", info.Name, err)
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
	rootCmd.AddCommand(infoCmd)
}
