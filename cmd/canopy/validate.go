package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/internal/presentation/tui"
	"github.com/aretw0/canopy/pkg/adapters/file"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration and print the report",
	Long: `Runs the full validation pipeline (schema, relationships, graph analysis)
against the configuration file and prints the aggregated report.
Exits non-zero when the deploy gate is closed.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("config")
		if !cmd.Flags().Changed("config") && len(args) > 0 {
			path = args[0]
		}
		jsonMode, _ := cmd.Flags().GetBool("json")
		plain, _ := cmd.Flags().GetBool("plain")

		result, err := evaluateFile(cmd.Context(), path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonMode {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result.Snapshot); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
				os.Exit(1)
			}
		} else {
			markdown := tui.BuildReport(result.Snapshot)
			if plain {
				fmt.Print(markdown)
			} else {
				render := tui.NewRenderer()
				out, err := render(markdown)
				if err != nil {
					out = markdown
				}
				fmt.Print(out)
			}
			fmt.Printf("Deploy gate: %s\n", tui.Verdict(result.Snapshot.MayDeploy))
		}

		if !result.Snapshot.MayDeploy {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("json", false, "Output the raw snapshot as JSON")
	validateCmd.Flags().Bool("plain", false, "Output the report as plain markdown (no terminal styling)")
}

// evaluateFile loads a configuration file and runs it through the engine.
func evaluateFile(ctx context.Context, path string) (*canopy.Result, error) {
	source := file.New(path)
	collections, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return canopy.New().Evaluate(collections), nil
}
