package boardservice

import (
	"log/slog"

	graphqladapter "taskboard/contexts/kanban/board-service/adapters/graphql"
	"taskboard/contexts/kanban/board-service/adapters/memory"
	postgresadapter "taskboard/contexts/kanban/board-service/adapters/postgres"
	"taskboard/contexts/kanban/board-service/application"
	"taskboard/contexts/kanban/board-service/ports"

	"github.com/graphql-go/graphql"
)

type Module struct {
	Service application.Service
	Schema  graphql.Schema
	Store   *memory.Store
}

type Dependencies struct {
	Tasks      ports.TaskRepository
	Checklists ports.ChecklistRepository
	Items      ports.ChecklistItemRepository
	Clock      ports.Clock
	IDs        ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) (Module, error) {
	if deps.Clock == nil {
		deps.Clock = postgresadapter.SystemClock{}
	}
	if deps.IDs == nil {
		deps.IDs = postgresadapter.UUIDGenerator{}
	}

	service := application.Service{
		Tasks:      deps.Tasks,
		Checklists: deps.Checklists,
		Items:      deps.Items,
		Clock:      deps.Clock,
		IDs:        deps.IDs,
		Logger:     deps.Logger,
	}
	schema, err := graphqladapter.New(service, deps.Logger)
	if err != nil {
		return Module{}, err
	}
	return Module{Service: service, Schema: schema}, nil
}

// NewInMemoryModule wires the module against the in-memory store, used by
// tests and by the server when no Postgres DSN is configured.
func NewInMemoryModule(logger *slog.Logger) (Module, error) {
	store := memory.NewStore()
	module, err := NewModule(Dependencies{
		Tasks:      store,
		Checklists: store,
		Items:      store,
		Logger:     logger,
	})
	if err != nil {
		return Module{}, err
	}
	module.Store = store
	return module, nil
}
