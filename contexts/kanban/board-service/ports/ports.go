package ports

import (
	"context"
	"time"

	"taskboard/contexts/kanban/board-service/domain/entities"
	"taskboard/contexts/kanban/board-service/domain/ordering"
)

type TaskFilter struct {
	Status *entities.Status
}

// TaskRepository persists kanban tasks. ListTasks returns newest first.
// MaxSortOrder reports the highest sort order within one (status, priority)
// bucket; the bool is false when the bucket is empty.
type TaskRepository interface {
	CreateTask(ctx context.Context, task entities.Task) error
	GetTask(ctx context.Context, taskID string) (entities.Task, error)
	ListTasks(ctx context.Context, filter TaskFilter) ([]entities.Task, error)
	UpdateTask(ctx context.Context, task entities.Task) error
	DeleteTask(ctx context.Context, taskID string) error
	MaxSortOrder(ctx context.Context, status entities.Status, priority entities.Priority) (int, bool, error)
}

// ChecklistRepository persists checklists. Deleting a checklist cascades to
// its items; ListChecklistsByTask returns creation order.
type ChecklistRepository interface {
	CreateChecklist(ctx context.Context, checklist entities.Checklist) error
	GetChecklist(ctx context.Context, checklistID string) (entities.Checklist, error)
	ListChecklistsByTask(ctx context.Context, taskID string) ([]entities.Checklist, error)
	DeleteChecklist(ctx context.Context, checklistID string) error
}

// ChecklistItemRepository persists checklist items and is the ordering
// engine's persistence collaborator: point lookup by checklist and id set
// (ResolveItems), aggregate max of position (MaxPosition), and an atomic
// multi-row position update (ApplyPositions).
type ChecklistItemRepository interface {
	CreateItem(ctx context.Context, item entities.ChecklistItem) error
	GetItem(ctx context.Context, itemID string) (entities.ChecklistItem, error)
	// ListItemsByChecklist returns the checklist's items ordered by position.
	ListItemsByChecklist(ctx context.Context, checklistID string) ([]entities.ChecklistItem, error)
	// ResolveItems returns the items of the checklist whose ids appear in
	// ids. Ids that are unknown or belong to another checklist are simply
	// absent from the result; callers detect mismatches by count.
	ResolveItems(ctx context.Context, checklistID string, ids []string) ([]entities.ChecklistItem, error)
	UpdateItem(ctx context.Context, item entities.ChecklistItem) error
	DeleteItem(ctx context.Context, itemID string) error
	MaxPosition(ctx context.Context, checklistID string) (int, bool, error)
	// ApplyPositions writes every update in one transaction: all rows move
	// or none do. An update referencing a row outside the checklist fails
	// the whole batch.
	ApplyPositions(ctx context.Context, checklistID string, updates []ordering.Update) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID() string
}
