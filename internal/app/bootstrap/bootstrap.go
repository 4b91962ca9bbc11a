// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.
package bootstrap

import (
	"log/slog"
	"strings"

	boardservice "taskboard/contexts/kanban/board-service"
	postgresadapter "taskboard/contexts/kanban/board-service/adapters/postgres"
	"taskboard/internal/platform/config"
	"taskboard/internal/platform/db"
	"taskboard/internal/platform/httpserver"
)

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	module, pg, err := buildModule(cfg, logger)
	if err != nil {
		return nil, err
	}

	server := httpserver.New(module, logger, httpserver.Options{
		Addr:     normalizeAddr(cfg.HTTPPort),
		GraphiQL: cfg.GraphiQLEnabled,
	})
	return &APIApp{server: server, postgres: pg, logger: logger}, nil
}

func (a *APIApp) Run() error {
	defer a.Close()
	return a.server.Start()
}

func (a *APIApp) Close() {
	if a.postgres != nil {
		if err := a.postgres.Close(); err != nil {
			a.logger.Error("postgres close failed",
				"event", "postgres_close_failed",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"error", err.Error(),
			)
		}
	}
}

// CLIApp carries the wiring the ops commands (seed, mcp, export-schema)
// need: the board module plus the handle to close when done.
type CLIApp struct {
	Module   boardservice.Module
	Logger   *slog.Logger
	HTTPAddr string
	GraphiQL bool
	postgres *db.Postgres
}

func BuildCLI() (*CLIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "cli")
	module, pg, err := buildModule(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &CLIApp{
		Module:   module,
		Logger:   logger,
		HTTPAddr: normalizeAddr(cfg.HTTPPort),
		GraphiQL: cfg.GraphiQLEnabled,
		postgres: pg,
	}, nil
}

func (a *CLIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

// buildModule wires the board module against Postgres when a DSN is set,
// otherwise against the in-memory store (development mode: state is lost on
// restart).
func buildModule(cfg config.Config, logger *slog.Logger) (boardservice.Module, *db.Postgres, error) {
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		logger.Warn("no POSTGRES_DSN configured, using in-memory store",
			"event", "memory_store_fallback",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		module, err := boardservice.NewInMemoryModule(logger)
		return module, nil, err
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return boardservice.Module{}, nil, err
	}
	if err := pg.Migrate(postgresadapter.Models()...); err != nil {
		_ = pg.Close()
		return boardservice.Module{}, nil, err
	}

	repo := postgresadapter.NewRepository(pg.DB, logger)
	module, err := boardservice.NewModule(boardservice.Dependencies{
		Tasks:      repo,
		Checklists: repo,
		Items:      repo,
		Logger:     logger,
	})
	if err != nil {
		_ = pg.Close()
		return boardservice.Module{}, nil, err
	}
	return module, pg, nil
}

func normalizeAddr(port string) string {
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
