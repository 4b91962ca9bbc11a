package application

import (
	"context"
	"log/slog"
	"strings"

	"taskboard/contexts/kanban/board-service/domain/entities"
	domainerrors "taskboard/contexts/kanban/board-service/domain/errors"
	"taskboard/contexts/kanban/board-service/domain/ordering"
	"taskboard/contexts/kanban/board-service/ports"
)

// Service implements the board use cases on top of the repository ports.
// Validation and enum coercion happen here, once, at the application
// boundary; the ordering logic below never inspects status or priority.
type Service struct {
	Tasks      ports.TaskRepository
	Checklists ports.ChecklistRepository
	Items      ports.ChecklistItemRepository
	Clock      ports.Clock
	IDs        ports.IDGenerator
	Logger     *slog.Logger
}

type CreateTaskInput struct {
	Title     string
	Status    *entities.Status
	Priority  *entities.Priority
	Category  *string
	SortOrder *int
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *entities.Status
	Priority    *entities.Priority
	Category    *string
	SortOrder   *int
}

func (s Service) ListTasks(ctx context.Context, filter ports.TaskFilter) ([]entities.Task, error) {
	if filter.Status != nil && !entities.IsValidStatus(*filter.Status) {
		return nil, domainerrors.NewFieldError("status", "Invalid status value")
	}
	return s.Tasks.ListTasks(ctx, filter)
}

func (s Service) GetTask(ctx context.Context, taskID string) (entities.Task, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return entities.Task{}, domainerrors.NewFieldError("id", "Task id is required")
	}
	return s.Tasks.GetTask(ctx, taskID)
}

func (s Service) CreateTask(ctx context.Context, input CreateTaskInput) (entities.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return entities.Task{}, domainerrors.NewFieldError("title", "Title cannot be empty")
	}

	status := entities.StatusTodo
	if input.Status != nil {
		if !entities.IsValidStatus(*input.Status) {
			return entities.Task{}, domainerrors.NewFieldError("status", "Invalid status value")
		}
		status = *input.Status
	}

	priority := entities.PriorityP4
	if input.Priority != nil {
		if !entities.IsValidPriority(*input.Priority) {
			return entities.Task{}, domainerrors.NewFieldError("priority", "Invalid priority value")
		}
		priority = *input.Priority
	}

	category := ""
	if input.Category != nil {
		category = entities.NormalizeCategory(strings.TrimSpace(*input.Category))
	}

	sortOrder, err := s.assignTaskSortOrder(ctx, status, priority, input.SortOrder)
	if err != nil {
		return entities.Task{}, err
	}

	now := s.Clock.Now().UTC()
	task := entities.Task{
		TaskID:    s.IDs.NewID(),
		Title:     title,
		Status:    status,
		Priority:  priority,
		Category:  category,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Tasks.CreateTask(ctx, task); err != nil {
		return entities.Task{}, err
	}

	s.logger().Debug("task created",
		"event", "board_task_created",
		"module", "kanban/board-service",
		"layer", "application",
		"task_id", task.TaskID,
		"status", string(task.Status),
		"priority", string(task.Priority),
		"sort_order", task.SortOrder,
	)
	return task, nil
}

// assignTaskSortOrder places a new task at the end of its (status, priority)
// bucket unless the caller supplied a position. Explicit positions are taken
// as-is; collisions are the caller's responsibility.
func (s Service) assignTaskSortOrder(
	ctx context.Context,
	status entities.Status,
	priority entities.Priority,
	explicit *int,
) (int, error) {
	if explicit != nil {
		return *explicit, nil
	}
	max, hasTasks, err := s.Tasks.MaxSortOrder(ctx, status, priority)
	if err != nil {
		return 0, err
	}
	return ordering.NextPosition(max, hasTasks), nil
}

func (s Service) UpdateTask(ctx context.Context, taskID string, input UpdateTaskInput) (entities.Task, error) {
	task, err := s.Tasks.GetTask(ctx, strings.TrimSpace(taskID))
	if err != nil {
		return entities.Task{}, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return entities.Task{}, domainerrors.NewFieldError("title", "Title cannot be empty")
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !entities.IsValidStatus(*input.Status) {
			return entities.Task{}, domainerrors.NewFieldError("status", "Invalid status value")
		}
		task.Status = *input.Status
	}
	if input.Priority != nil {
		if !entities.IsValidPriority(*input.Priority) {
			return entities.Task{}, domainerrors.NewFieldError("priority", "Invalid priority value")
		}
		task.Priority = *input.Priority
	}
	if input.Category != nil {
		// Empty string clears the category.
		task.Category = entities.NormalizeCategory(strings.TrimSpace(*input.Category))
	}
	if input.SortOrder != nil {
		task.SortOrder = *input.SortOrder
	}
	task.UpdatedAt = s.Clock.Now().UTC()

	if err := s.Tasks.UpdateTask(ctx, task); err != nil {
		return entities.Task{}, err
	}
	return task, nil
}

func (s Service) DeleteTask(ctx context.Context, taskID string) error {
	taskID = strings.TrimSpace(taskID)
	if _, err := s.Tasks.GetTask(ctx, taskID); err != nil {
		return err
	}
	return s.Tasks.DeleteTask(ctx, taskID)
}

func (s Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
