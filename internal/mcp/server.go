// Package mcp exposes the kanban board to AI agents as MCP tools over
// stdio: task CRUD plus checklist reordering.
package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"taskboard/contexts/kanban/board-service/application"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with the board service.
type Server struct {
	mcp     *mcp.Server
	service application.Service
	logger  *slog.Logger
}

// NewServer creates the MCP server with all board tools registered.
func NewServer(service application.Service, logger *slog.Logger) (*Server, error) {
	if service.Tasks == nil {
		return nil, fmt.Errorf("board service is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "taskboard",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp:     mcpServer,
		service: service,
		logger:  logger,
	}
	s.registerTools()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("mcp server starting",
		"event", "mcp_server_starting",
		"module", "internal/mcp",
		"layer", "integration",
	)
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
