package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/canopy"
	mcpAdapter "github.com/aretw0/canopy/pkg/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the Canopy engine as an MCP Server over stdio.
This allows AI agents (like Claude Desktop) to validate configurations,
inspect the dependency graph and query the deploy gate as tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure logger on Stderr so logs don't corrupt JSON-RPC on Stdout.
		opts := &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
		log.SetOutput(os.Stderr)

		srv := mcpAdapter.NewServer(canopy.New())

		slog.Info("Starting Canopy MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP Server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
