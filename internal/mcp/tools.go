package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"taskboard/contexts/kanban/board-service/application"
	"taskboard/contexts/kanban/board-service/domain/entities"
	"taskboard/contexts/kanban/board-service/ports"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	s.registerListTasksTool()
	s.registerCreateTaskTool()
	s.registerUpdateTaskTool()
	s.registerDeleteTaskTool()
	s.registerReorderChecklistItemsTool()
}

// TaskOutput is the JSON view of a task returned by every task tool.
type TaskOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Category    string `json:"category,omitempty"`
	SortOrder   int    `json:"sort_order"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func taskOutput(task entities.Task) TaskOutput {
	return TaskOutput{
		ID:          task.TaskID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		Category:    task.Category,
		SortOrder:   task.SortOrder,
		CreatedAt:   task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func textResult(payload any) *mcp.CallToolResult {
	jsonBytes, _ := json.MarshalIndent(payload, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
	}
}

// ListTasksInput defines input for the list_tasks tool.
type ListTasksInput struct {
	Status *string `json:"status,omitempty"`
}

// ListTasksOutput defines output for the list_tasks tool.
type ListTasksOutput struct {
	Tasks []TaskOutput `json:"tasks"`
}

func (s *Server) registerListTasksTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_tasks",
		Description: "List all kanban tasks, newest first, optionally filtered by status (TODO, DOING, WAITING, DONE).",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"status": map[string]interface{}{
					"type":        "string",
					"description": "Filter by status: TODO, DOING, WAITING, or DONE. Omit for all tasks.",
				},
			},
		},
	}, s.handleListTasks)
}

func (s *Server) handleListTasks(ctx context.Context, _ *mcp.CallToolRequest, input ListTasksInput) (*mcp.CallToolResult, ListTasksOutput, error) {
	filter := ports.TaskFilter{}
	if input.Status != nil && *input.Status != "" {
		status, ok := entities.ParseStatus(*input.Status)
		if !ok {
			return nil, ListTasksOutput{}, fmt.Errorf("invalid status: %s (must be TODO, DOING, WAITING, or DONE)", *input.Status)
		}
		filter.Status = &status
	}

	tasks, err := s.service.ListTasks(ctx, filter)
	if err != nil {
		return nil, ListTasksOutput{}, err
	}

	output := ListTasksOutput{Tasks: make([]TaskOutput, 0, len(tasks))}
	for _, task := range tasks {
		output.Tasks = append(output.Tasks, taskOutput(task))
	}
	return textResult(output), output, nil
}

// CreateTaskInput defines input for the create_task tool.
type CreateTaskInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Category    *string `json:"category,omitempty"`
}

func (s *Server) registerCreateTaskTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "create_task",
		Description: "Create a new kanban task. Status defaults to TODO, priority to P4; a category gets a '#' prefix when missing.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Task title (required)",
				},
				"description": map[string]interface{}{
					"type":        "string",
					"description": "Task description",
				},
				"status": map[string]interface{}{
					"type":        "string",
					"description": "TODO, DOING, WAITING, or DONE (default TODO)",
				},
				"priority": map[string]interface{}{
					"type":        "string",
					"description": "P1 (do first), P2 (schedule), P3 (quick win), or P4 (backlog, default)",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Category tag, e.g. 'work' or '#work'",
				},
			},
			"required": []string{"title"},
		},
	}, s.handleCreateTask)
}

func (s *Server) handleCreateTask(ctx context.Context, _ *mcp.CallToolRequest, input CreateTaskInput) (*mcp.CallToolResult, TaskOutput, error) {
	createInput := application.CreateTaskInput{
		Title:    input.Title,
		Category: input.Category,
	}
	if input.Status != nil && *input.Status != "" {
		status, ok := entities.ParseStatus(*input.Status)
		if !ok {
			return nil, TaskOutput{}, fmt.Errorf("invalid status: %s", *input.Status)
		}
		createInput.Status = &status
	}
	if input.Priority != nil && *input.Priority != "" {
		priority, ok := entities.ParsePriority(*input.Priority)
		if !ok {
			return nil, TaskOutput{}, fmt.Errorf("invalid priority: %s", *input.Priority)
		}
		createInput.Priority = &priority
	}

	task, err := s.service.CreateTask(ctx, createInput)
	if err != nil {
		return nil, TaskOutput{}, err
	}
	if input.Description != nil && *input.Description != "" {
		task, err = s.service.UpdateTask(ctx, task.TaskID, application.UpdateTaskInput{
			Description: input.Description,
		})
		if err != nil {
			return nil, TaskOutput{}, err
		}
	}

	output := taskOutput(task)
	return textResult(output), output, nil
}

// UpdateTaskInput defines input for the update_task tool.
type UpdateTaskInput struct {
	TaskID      string  `json:"task_id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Category    *string `json:"category,omitempty"`
}

func (s *Server) registerUpdateTaskTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "update_task",
		Description: "Update fields of an existing kanban task. Only provided fields change.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"task_id": map[string]interface{}{
					"type":        "string",
					"description": "Id of the task to update",
				},
				"title":       map[string]interface{}{"type": "string"},
				"description": map[string]interface{}{"type": "string"},
				"status": map[string]interface{}{
					"type":        "string",
					"description": "TODO, DOING, WAITING, or DONE",
				},
				"priority": map[string]interface{}{
					"type":        "string",
					"description": "P1, P2, P3, or P4",
				},
				"category": map[string]interface{}{"type": "string"},
			},
			"required": []string{"task_id"},
		},
	}, s.handleUpdateTask)
}

func (s *Server) handleUpdateTask(ctx context.Context, _ *mcp.CallToolRequest, input UpdateTaskInput) (*mcp.CallToolResult, TaskOutput, error) {
	updateInput := application.UpdateTaskInput{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
	}
	if input.Status != nil && *input.Status != "" {
		status, ok := entities.ParseStatus(*input.Status)
		if !ok {
			return nil, TaskOutput{}, fmt.Errorf("invalid status: %s", *input.Status)
		}
		updateInput.Status = &status
	}
	if input.Priority != nil && *input.Priority != "" {
		priority, ok := entities.ParsePriority(*input.Priority)
		if !ok {
			return nil, TaskOutput{}, fmt.Errorf("invalid priority: %s", *input.Priority)
		}
		updateInput.Priority = &priority
	}

	task, err := s.service.UpdateTask(ctx, input.TaskID, updateInput)
	if err != nil {
		return nil, TaskOutput{}, err
	}

	output := taskOutput(task)
	return textResult(output), output, nil
}

// DeleteTaskInput defines input for the delete_task tool.
type DeleteTaskInput struct {
	TaskID string `json:"task_id"`
}

// DeleteTaskOutput defines output for the delete_task tool.
type DeleteTaskOutput struct {
	Success   bool   `json:"success"`
	DeletedID string `json:"deleted_id"`
}

func (s *Server) registerDeleteTaskTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "delete_task",
		Description: "Delete a kanban task by id, including its checklists.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"task_id": map[string]interface{}{
					"type":        "string",
					"description": "Id of the task to delete",
				},
			},
			"required": []string{"task_id"},
		},
	}, s.handleDeleteTask)
}

func (s *Server) handleDeleteTask(ctx context.Context, _ *mcp.CallToolRequest, input DeleteTaskInput) (*mcp.CallToolResult, DeleteTaskOutput, error) {
	if err := s.service.DeleteTask(ctx, input.TaskID); err != nil {
		return nil, DeleteTaskOutput{}, err
	}
	output := DeleteTaskOutput{Success: true, DeletedID: input.TaskID}
	return textResult(output), output, nil
}

// ReorderChecklistItemsInput defines input for the reorder tool.
type ReorderChecklistItemsInput struct {
	ChecklistID string   `json:"checklist_id"`
	ItemIDs     []string `json:"item_ids"`
}

// ChecklistItemOutput is the JSON view of a checklist item.
type ChecklistItemOutput struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Position  int    `json:"position"`
}

// ReorderChecklistItemsOutput defines output for the reorder tool.
type ReorderChecklistItemsOutput struct {
	ChecklistID string                `json:"checklist_id"`
	Items       []ChecklistItemOutput `json:"items"`
}

func (s *Server) registerReorderChecklistItemsTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "reorder_checklist_items",
		Description: "Atomically reorder a checklist's items: item_ids[0] gets position 0, and so on. Every id must belong to the checklist or nothing changes.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"checklist_id": map[string]interface{}{
					"type":        "string",
					"description": "Id of the checklist to reorder",
				},
				"item_ids": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Item ids in the desired final order",
				},
			},
			"required": []string{"checklist_id", "item_ids"},
		},
	}, s.handleReorderChecklistItems)
}

func (s *Server) handleReorderChecklistItems(ctx context.Context, _ *mcp.CallToolRequest, input ReorderChecklistItemsInput) (*mcp.CallToolResult, ReorderChecklistItemsOutput, error) {
	result, err := s.service.ReorderChecklistItems(ctx, input.ChecklistID, input.ItemIDs)
	if err != nil {
		return nil, ReorderChecklistItemsOutput{}, err
	}

	output := ReorderChecklistItemsOutput{
		ChecklistID: result.Checklist.ChecklistID,
		Items:       make([]ChecklistItemOutput, 0, len(result.Items)),
	}
	for _, item := range result.Items {
		output.Items = append(output.Items, ChecklistItemOutput{
			ID:        item.ItemID,
			Text:      item.Text,
			Completed: item.Completed,
			Position:  item.Position,
		})
	}
	return textResult(output), output, nil
}
