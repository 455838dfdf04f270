package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/algotrace"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of algotrace",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "algotrace version %s\n", strings.TrimSpace(algotrace.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
