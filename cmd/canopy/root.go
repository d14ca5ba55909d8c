package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "canopy",
	Short: "Canopy validates conversational-application configurations",
	Long: `Canopy checks a tenant's configuration (programs, forms, CTAs, branches,
chips, showcase items) for schema and cross-reference consistency, builds the
dependency graph, and computes the deploy-gate verdict.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "config.yaml", "Path to the configuration file (YAML or JSON)")
}
