package postgresadapter

import (
	"time"

	"taskboard/contexts/kanban/board-service/domain/entities"
)

type taskModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title;size:255;not null"`
	Description string    `gorm:"column:description"`
	Status      string    `gorm:"column:status;size:10;index:idx_tasks_bucket,priority:1"`
	Priority    string    `gorm:"column:priority;size:2;index:idx_tasks_bucket,priority:2"`
	Category    string    `gorm:"column:category;size:100"`
	SortOrder   int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (taskModel) TableName() string { return "tasks" }

type checklistModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	TaskID    string    `gorm:"column:task_id;index;not null"`
	Title     string    `gorm:"column:title;size:255;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (checklistModel) TableName() string { return "checklists" }

type checklistItemModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	ChecklistID string    `gorm:"column:checklist_id;index:idx_items_checklist_position,priority:1;not null"`
	Text        string    `gorm:"column:text;size:500;not null"`
	Completed   bool      `gorm:"column:completed;index;not null;default:false"`
	Position    int       `gorm:"column:position;index:idx_items_checklist_position,priority:2;not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (checklistItemModel) TableName() string { return "checklist_items" }

func taskModelFromEntity(task entities.Task) taskModel {
	return taskModel{
		ID:          task.TaskID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		Category:    task.Category,
		SortOrder:   task.SortOrder,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func (m taskModel) toEntity() entities.Task {
	return entities.Task{
		TaskID:      m.ID,
		Title:       m.Title,
		Description: m.Description,
		Status:      entities.Status(m.Status),
		Priority:    entities.Priority(m.Priority),
		Category:    m.Category,
		SortOrder:   m.SortOrder,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func checklistModelFromEntity(checklist entities.Checklist) checklistModel {
	return checklistModel{
		ID:        checklist.ChecklistID,
		TaskID:    checklist.TaskID,
		Title:     checklist.Title,
		CreatedAt: checklist.CreatedAt,
		UpdatedAt: checklist.UpdatedAt,
	}
}

func (m checklistModel) toEntity() entities.Checklist {
	return entities.Checklist{
		ChecklistID: m.ID,
		TaskID:      m.TaskID,
		Title:       m.Title,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func itemModelFromEntity(item entities.ChecklistItem) checklistItemModel {
	return checklistItemModel{
		ID:          item.ItemID,
		ChecklistID: item.ChecklistID,
		Text:        item.Text,
		Completed:   item.Completed,
		Position:    item.Position,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (m checklistItemModel) toEntity() entities.ChecklistItem {
	return entities.ChecklistItem{
		ItemID:      m.ID,
		ChecklistID: m.ChecklistID,
		Text:        m.Text,
		Completed:   m.Completed,
		Position:    m.Position,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Models lists every gorm model of this context for AutoMigrate.
func Models() []any {
	return []any{&taskModel{}, &checklistModel{}, &checklistItemModel{}}
}
