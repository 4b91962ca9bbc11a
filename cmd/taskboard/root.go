// Command taskboard is the ops CLI for the kanban backend: seeding sample
// data, serving MCP tools to AI agents, and exporting the GraphQL schema.
package main

import (
	"fmt"
	"os"

	"taskboard/internal/app/bootstrap"

	"github.com/spf13/cobra"
)

var cliApp *bootstrap.CLIApp

var rootCmd = &cobra.Command{
	Use:   "taskboard",
	Short: "Kanban task board utilities",
	Long: `Utilities for the taskboard kanban backend.

Examples:
  taskboard seed-tasks --clear
  taskboard seed-checklists --tasks 3
  taskboard mcp
  taskboard export-schema > schema.json`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cliApp, err = bootstrap.BuildCLI()
		if err != nil {
			return fmt.Errorf("failed to build application: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if cliApp != nil {
			return cliApp.Close()
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
