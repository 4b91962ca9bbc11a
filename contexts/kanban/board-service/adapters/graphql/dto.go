package graphqladapter

import (
	"errors"
	"fmt"
	"time"

	"taskboard/contexts/kanban/board-service/domain/entities"
	domainerrors "taskboard/contexts/kanban/board-service/domain/errors"
)

// DTOs resolved by graphql-go's default resolver via json tags. Nested
// relations (task.checklists, checklist.items) are loaded lazily by field
// resolvers, so the DTOs carry only scalar columns plus the foreign keys
// those resolvers need.

type taskDTO struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      entities.Status   `json:"status"`
	Priority    entities.Priority `json:"priority"`
	Category    string            `json:"category"`
	SortOrder   int               `json:"sortOrder"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type checklistDTO struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"taskId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type checklistItemDTO struct {
	ID          string    `json:"id"`
	ChecklistID string    `json:"checklistId"`
	Text        string    `json:"text"`
	Completed   bool      `json:"completed"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type taskPayload struct {
	Task   *taskDTO        `json:"task"`
	Errors []fieldErrorDTO `json:"errors"`
}

type checklistPayload struct {
	Checklist *checklistDTO   `json:"checklist"`
	Errors    []fieldErrorDTO `json:"errors"`
}

type checklistItemPayload struct {
	Item   *checklistItemDTO `json:"item"`
	Errors []fieldErrorDTO   `json:"errors"`
}

type deletePayload struct {
	Success   bool            `json:"success"`
	DeletedID *string         `json:"deletedId"`
	Errors    []fieldErrorDTO `json:"errors"`
}

type reorderPayload struct {
	Items     []checklistItemDTO `json:"items"`
	Checklist *checklistDTO      `json:"checklist"`
	Errors    []fieldErrorDTO    `json:"errors"`
}

func taskToDTO(task entities.Task) taskDTO {
	return taskDTO{
		ID:          task.TaskID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		Category:    task.Category,
		SortOrder:   task.SortOrder,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func checklistToDTO(checklist entities.Checklist) checklistDTO {
	return checklistDTO{
		ID:        checklist.ChecklistID,
		TaskID:    checklist.TaskID,
		Title:     checklist.Title,
		CreatedAt: checklist.CreatedAt,
		UpdatedAt: checklist.UpdatedAt,
	}
}

func itemToDTO(item entities.ChecklistItem) checklistItemDTO {
	return checklistItemDTO{
		ID:          item.ItemID,
		ChecklistID: item.ChecklistID,
		Text:        item.Text,
		Completed:   item.Completed,
		Position:    item.Position,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// Field resolvers see DTOs by value from list results and by pointer from
// mutation payloads, so source extraction accepts both.

func taskSource(source interface{}) (taskDTO, bool) {
	switch v := source.(type) {
	case taskDTO:
		return v, true
	case *taskDTO:
		if v != nil {
			return *v, true
		}
	}
	return taskDTO{}, false
}

func checklistSource(source interface{}) (checklistDTO, bool) {
	switch v := source.(type) {
	case checklistDTO:
		return v, true
	case *checklistDTO:
		if v != nil {
			return *v, true
		}
	}
	return checklistDTO{}, false
}

// payloadErrors translates caller mistakes into the typed error payload and
// reports ok=false for anything else, which resolvers propagate as a plain
// GraphQL error (the generic persistence-failure surface).
func payloadErrors(err error, id string) ([]fieldErrorDTO, bool) {
	var fieldErr *domainerrors.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return []fieldErrorDTO{{Field: fieldErr.Field, Message: fieldErr.Message}}, true
	case errors.Is(err, domainerrors.ErrTaskNotFound):
		return []fieldErrorDTO{{Field: "id", Message: fmt.Sprintf("Task %s not found", id)}}, true
	case errors.Is(err, domainerrors.ErrChecklistNotFound):
		return []fieldErrorDTO{{Field: "checklistId", Message: fmt.Sprintf("Checklist %s not found", id)}}, true
	case errors.Is(err, domainerrors.ErrItemNotFound):
		return []fieldErrorDTO{{Field: "itemId", Message: fmt.Sprintf("Item %s not found", id)}}, true
	case errors.Is(err, domainerrors.ErrItemSetMismatch):
		return []fieldErrorDTO{{Field: "itemIds", Message: "All items must belong to the specified checklist"}}, true
	default:
		return nil, false
	}
}
