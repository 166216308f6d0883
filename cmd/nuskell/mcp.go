package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jphuse/nuskell"
	"github.com/jphuse/nuskell/internal/logging"
	mcpAdapter "github.com/jphuse/nuskell/pkg/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the nuskell compiler as an MCP Server over stdio.
This allows AI agents (like Claude Desktop) to compile reaction networks as tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")

		// Logs go to Stderr so they don't corrupt JSON-RPC on Stdout.
		logger := logging.New(logging.ParseLevel(level))
		slog.SetDefault(logger)
		log.SetOutput(os.Stderr)

		engine := nuskell.New(nuskell.WithLogger(logger))
		srv := mcpAdapter.NewServer(engine)

		slog.Info("Starting Nuskell MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP Server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
