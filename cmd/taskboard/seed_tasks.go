package main

import (
	"context"
	"fmt"

	"taskboard/contexts/kanban/board-service/application"
	"taskboard/contexts/kanban/board-service/domain/entities"
	"taskboard/contexts/kanban/board-service/ports"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type sampleTask struct {
	title    string
	status   entities.Status
	category string
	priority entities.Priority
}

// Sample tasks spanning every status and priority bucket.
var sampleTasks = []sampleTask{
	{"Fix critical production bug", entities.StatusDoing, "#work", entities.PriorityP1},
	{"Deploy security patch", entities.StatusTodo, "#devops", entities.PriorityP1},
	{"Design landing page", entities.StatusTodo, "#design", entities.PriorityP2},
	{"Write API documentation", entities.StatusTodo, "#docs", entities.PriorityP2},
	{"Add user authentication", entities.StatusDoing, "#feature", entities.PriorityP2},
	{"Update README", entities.StatusTodo, "#docs", entities.PriorityP3},
	{"Fix typo in footer", entities.StatusDoing, "#bugfix", entities.PriorityP3},
	{"Implement dark mode", entities.StatusTodo, "#feature", entities.PriorityP4},
	{"Refactor legacy code", entities.StatusTodo, "#tech-debt", entities.PriorityP4},
	{"Set up repository", entities.StatusDone, "#devops", entities.PriorityP2},
	{"Create database models", entities.StatusDone, "#work", entities.PriorityP1},
}

var seedTasksCmd = &cobra.Command{
	Use:   "seed-tasks",
	Short: "Create sample tasks for development",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		service := cliApp.Module.Service

		if clear, _ := cmd.Flags().GetBool("clear"); clear {
			deleted, err := deleteAllTasks(ctx, service)
			if err != nil {
				return fmt.Errorf("failed to clear tasks: %w", err)
			}
			fmt.Printf("Deleted %d tasks\n", deleted)
		}

		for _, sample := range sampleTasks {
			status := sample.status
			priority := sample.priority
			category := sample.category
			_, err := service.CreateTask(ctx, application.CreateTaskInput{
				Title:    sample.title,
				Status:   &status,
				Priority: &priority,
				Category: &category,
			})
			if err != nil {
				return fmt.Errorf("failed to create task %q: %w", sample.title, err)
			}
		}

		color.Green("✓ Created %d tasks", len(sampleTasks))
		return nil
	},
}

func deleteAllTasks(ctx context.Context, service application.Service) (int, error) {
	tasks, err := service.ListTasks(ctx, ports.TaskFilter{})
	if err != nil {
		return 0, err
	}
	for _, task := range tasks {
		if err := service.DeleteTask(ctx, task.TaskID); err != nil {
			return 0, err
		}
	}
	return len(tasks), nil
}

func init() {
	seedTasksCmd.Flags().Bool("clear", false, "Delete all existing tasks first")
	rootCmd.AddCommand(seedTasksCmd)
}
