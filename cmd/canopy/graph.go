package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/canopy/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the dependency graph visualization",
	Long:  `Builds the configuration's dependency graph and outputs a Mermaid diagram (graph TD) with orphaned and broken nodes highlighted.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("config")
		if !cmd.Flags().Changed("config") && len(args) > 0 {
			path = args[0]
		}

		result, err := evaluateFile(cmd.Context(), path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(result.Graph))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
