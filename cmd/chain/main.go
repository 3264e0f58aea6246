// Package main provides the chain binary entry point.
// Chain explains pipeline configurations in natural language: it resolves
// each step's component from a manifest, extracts structural metadata, and
// asks a text-completion provider for a structured explanation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register LLM providers via init()
	_ "github.com/semantiva/chain/llm/providers"
)

const (
	Version = "0.1.0"
	appName = "chain"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Explain data-processing pipelines with an LLM",
		Long: `Chain resolves pipeline components from a manifest, extracts their
structural metadata (class hierarchy, data interfaces, processing-logic
parameters), and generates a natural-language explanation of the pipeline
through a text-completion provider.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "path to config file (YAML)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newComponentsCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, Version)
		},
	}
}
