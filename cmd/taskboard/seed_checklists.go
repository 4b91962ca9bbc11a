package main

import (
	"context"
	"fmt"

	"taskboard/contexts/kanban/board-service/domain/entities"
	"taskboard/contexts/kanban/board-service/ports"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type sampleChecklist struct {
	title string
	items []sampleItem
}

type sampleItem struct {
	text      string
	completed bool
}

// Checklist templates with varied completion states so seeded boards show
// realistic progress percentages.
var checklistTemplates = []sampleChecklist{
	{
		title: "Development Setup",
		items: []sampleItem{
			{"Set up local development environment", true},
			{"Install required dependencies", true},
			{"Configure environment variables", false},
			{"Initialize database schema", false},
			{"Run initial migrations", false},
		},
	},
	{
		title: "Pre-Launch Checklist",
		items: []sampleItem{
			{"Run all unit tests", true},
			{"Execute integration tests", true},
			{"Perform security audit", false},
			{"Update documentation", false},
			{"Get stakeholder approval", false},
			{"Deploy to staging environment", false},
		},
	},
}

var seedChecklistsCmd = &cobra.Command{
	Use:   "seed-checklists",
	Short: "Add sample checklists to existing tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		service := cliApp.Module.Service

		tasks, err := service.ListTasks(ctx, ports.TaskFilter{})
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}
		if len(tasks) == 0 {
			return fmt.Errorf("no tasks found, run 'taskboard seed-tasks' first")
		}

		// ListTasks returns newest first; seed oldest first so the
		// checklists land on the earliest-created tasks.
		for i, j := 0, len(tasks)-1; i < j; i, j = i+1, j-1 {
			tasks[i], tasks[j] = tasks[j], tasks[i]
		}
		if max, _ := cmd.Flags().GetInt("tasks"); max > 0 && max < len(tasks) {
			tasks = tasks[:max]
		}

		if clear, _ := cmd.Flags().GetBool("clear"); clear {
			checklists, items, err := clearChecklists(ctx, tasks)
			if err != nil {
				return fmt.Errorf("failed to clear checklists: %w", err)
			}
			color.Yellow("Cleared %d checklists and %d items", checklists, items)
		}

		totalChecklists := 0
		totalItems := 0
		for _, task := range tasks {
			for _, template := range checklistTemplates {
				checklist, err := service.CreateChecklist(ctx, task.TaskID, template.title)
				if err != nil {
					return fmt.Errorf("failed to create checklist %q: %w", template.title, err)
				}
				totalChecklists++

				for _, sample := range template.items {
					item, err := service.AddChecklistItem(ctx, checklist.ChecklistID, sample.text, nil)
					if err != nil {
						return fmt.Errorf("failed to add item %q: %w", sample.text, err)
					}
					if sample.completed {
						if _, err := service.ToggleChecklistItem(ctx, item.ItemID); err != nil {
							return fmt.Errorf("failed to mark item complete: %w", err)
						}
					}
					totalItems++
				}
				fmt.Printf("  - %q with %d items\n", template.title, len(template.items))
			}
			color.Green("✓ Created %d checklists for task %q", len(checklistTemplates), task.Title)
		}

		color.Green("Seeding complete: %d checklists, %d items", totalChecklists, totalItems)
		return nil
	},
}

func clearChecklists(ctx context.Context, tasks []entities.Task) (int, int, error) {
	service := cliApp.Module.Service
	deletedChecklists := 0
	deletedItems := 0
	for _, task := range tasks {
		checklists, err := service.ListChecklists(ctx, task.TaskID)
		if err != nil {
			return 0, 0, err
		}
		for _, checklist := range checklists {
			items, err := service.ListChecklistItems(ctx, checklist.ChecklistID)
			if err != nil {
				return 0, 0, err
			}
			deletedItems += len(items)
			if err := service.DeleteChecklist(ctx, checklist.ChecklistID); err != nil {
				return 0, 0, err
			}
			deletedChecklists++
		}
	}
	return deletedChecklists, deletedItems, nil
}

func init() {
	seedChecklistsCmd.Flags().Bool("clear", false, "Delete existing checklists on the selected tasks first")
	seedChecklistsCmd.Flags().Int("tasks", 0, "Number of tasks to add checklists to (default: all)")
	rootCmd.AddCommand(seedChecklistsCmd)
}
