package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	boardservice "taskboard/contexts/kanban/board-service"

	"github.com/graphql-go/handler"
)

// Server hosts the GraphQL endpoint for the kanban board module.
type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
}

type Options struct {
	Addr     string
	GraphiQL bool
}

func New(board boardservice.Module, logger *slog.Logger, opts Options) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   opts.Addr,
	}

	graphqlHandler := handler.New(&handler.Config{
		Schema:   &board.Schema,
		Pretty:   true,
		GraphiQL: opts.GraphiQL,
	})
	s.mux.Handle("/graphql", graphqlHandler)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
