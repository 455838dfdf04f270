package main

import (
	"log"
	"os"

	"github.com/aretw0/algotrace/internal/cli"
	"github.com/aretw0/algotrace/pkg/adapters/mcp"
	"github.com/aretw0/algotrace/pkg/catalog"
	"github.com/aretw0/algotrace/pkg/observability"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts algotrace as an MCP server on standard input and output, so AI agents
can generate traces, read the algorithm catalog and run graph searches as tools.
Logs go to standard error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loggerFor(cmd)
		if err != nil {
			return err
		}
		cat, err := catalog.Load()
		if err != nil {
			return err
		}

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)

		engine := cli.CreateEngine(logger, observability.LogHooks(logger))
		srv := mcp.NewServer(engine, cat, mcp.WithLogger(logger))

		logger.Info("Starting algotrace MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			logger.Error("MCP Server execution failed", "err", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
