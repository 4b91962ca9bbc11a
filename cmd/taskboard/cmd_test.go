package main

import (
	"context"
	"log/slog"
	"testing"

	boardservice "taskboard/contexts/kanban/board-service"
	"taskboard/contexts/kanban/board-service/domain/entities"
	"taskboard/contexts/kanban/board-service/ports"
	"taskboard/internal/app/bootstrap"
)

// testApp wires the global CLI app against an in-memory module so commands
// run without Postgres or environment configuration.
func testApp(t *testing.T) {
	t.Helper()
	module, err := boardservice.NewInMemoryModule(slog.Default())
	if err != nil {
		t.Fatalf("failed to build module: %v", err)
	}
	cliApp = &bootstrap.CLIApp{Module: module, Logger: slog.Default()}
	t.Cleanup(func() { cliApp = nil })
}

func TestSeedTasks_CreatesAllSamples(t *testing.T) {
	testApp(t)

	if err := seedTasksCmd.RunE(seedTasksCmd, nil); err != nil {
		t.Fatalf("seed-tasks failed: %v", err)
	}

	tasks, err := cliApp.Module.Service.ListTasks(context.Background(), ports.TaskFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != len(sampleTasks) {
		t.Fatalf("expected %d tasks, got %d", len(sampleTasks), len(tasks))
	}

	done := entities.StatusDone
	doneTasks, err := cliApp.Module.Service.ListTasks(context.Background(), ports.TaskFilter{Status: &done})
	if err != nil {
		t.Fatalf("list done failed: %v", err)
	}
	if len(doneTasks) != 2 {
		t.Fatalf("expected 2 done tasks, got %d", len(doneTasks))
	}
}

func TestSeedTasks_ClearRemovesExisting(t *testing.T) {
	testApp(t)

	if err := seedTasksCmd.RunE(seedTasksCmd, nil); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := seedTasksCmd.Flags().Set("clear", "true"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	t.Cleanup(func() { _ = seedTasksCmd.Flags().Set("clear", "false") })

	if err := seedTasksCmd.RunE(seedTasksCmd, nil); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	tasks, err := cliApp.Module.Service.ListTasks(context.Background(), ports.TaskFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != len(sampleTasks) {
		t.Fatalf("expected %d tasks after clear and reseed, got %d", len(sampleTasks), len(tasks))
	}
}

func TestSeedChecklists_RequiresTasks(t *testing.T) {
	testApp(t)

	if err := seedChecklistsCmd.RunE(seedChecklistsCmd, nil); err == nil {
		t.Fatal("expected error when no tasks exist")
	}
}

func TestSeedChecklists_AddsTemplates(t *testing.T) {
	testApp(t)
	ctx := context.Background()

	if err := seedTasksCmd.RunE(seedTasksCmd, nil); err != nil {
		t.Fatalf("seed-tasks failed: %v", err)
	}
	if err := seedChecklistsCmd.Flags().Set("tasks", "1"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	t.Cleanup(func() { _ = seedChecklistsCmd.Flags().Set("tasks", "0") })

	if err := seedChecklistsCmd.RunE(seedChecklistsCmd, nil); err != nil {
		t.Fatalf("seed-checklists failed: %v", err)
	}

	// ListTasks is newest first, so the oldest task is the last element.
	tasks, err := cliApp.Module.Service.ListTasks(ctx, ports.TaskFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	oldest := tasks[len(tasks)-1]

	checklists, err := cliApp.Module.Service.ListChecklists(ctx, oldest.TaskID)
	if err != nil {
		t.Fatalf("list checklists failed: %v", err)
	}
	if len(checklists) != len(checklistTemplates) {
		t.Fatalf("expected %d checklists, got %d", len(checklistTemplates), len(checklists))
	}

	for _, task := range tasks[:len(tasks)-1] {
		others, err := cliApp.Module.Service.ListChecklists(ctx, task.TaskID)
		if err != nil {
			t.Fatalf("list checklists failed: %v", err)
		}
		if len(others) != 0 {
			t.Fatalf("expected no checklists on task %q, got %d", task.Title, len(others))
		}
	}
}

func TestRootCmd_Metadata(t *testing.T) {
	if rootCmd.Use != "taskboard" {
		t.Errorf("expected Use 'taskboard', got %q", rootCmd.Use)
	}
	for _, name := range []string{"serve", "seed-tasks", "seed-checklists", "mcp", "export-schema"} {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}
