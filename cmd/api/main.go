package main

import (
	"log"

	"taskboard/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server with the GraphQL endpoint.
func main() {
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("taskboard api bootstrap failed: %v", err)
	}
	if err := app.Run(); err != nil {
		log.Fatalf("taskboard api stopped: %v", err)
	}
}
