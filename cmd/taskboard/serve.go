package main

import (
	"taskboard/internal/platform/httpserver"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the GraphQL API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		server := httpserver.New(cliApp.Module, cliApp.Logger, httpserver.Options{
			Addr:     cliApp.HTTPAddr,
			GraphiQL: cliApp.GraphiQL,
		})
		return server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
