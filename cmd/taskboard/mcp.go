package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskboard/internal/mcp"

	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI agents",
	Long: `Start a Model Context Protocol server over stdio.

AI agents connected to this server can list, create, update, and delete
tasks, and reorder checklist items.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(cliApp.Module.Service, cliApp.Logger)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
