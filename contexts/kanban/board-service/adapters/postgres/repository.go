package postgresadapter

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"taskboard/contexts/kanban/board-service/domain/entities"
	domainerrors "taskboard/contexts/kanban/board-service/domain/errors"
	"taskboard/contexts/kanban/board-service/domain/ordering"
	"taskboard/contexts/kanban/board-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// Repository implements every board-service port on Postgres through gorm.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) CreateTask(ctx context.Context, task entities.Task) error {
	row := taskModelFromEntity(task)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.NewFieldError("id", "Task id already exists")
		}
		return r.logError("board_repo_create_task_failed", err, "task_id", task.TaskID)
	}
	return nil
}

func (r *Repository) GetTask(ctx context.Context, taskID string) (entities.Task, error) {
	var row taskModel
	err := r.db.WithContext(ctx).Where("id = ?", taskID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Task{}, domainerrors.ErrTaskNotFound
		}
		return entities.Task{}, r.logError("board_repo_get_task_failed", err, "task_id", taskID)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListTasks(ctx context.Context, filter ports.TaskFilter) ([]entities.Task, error) {
	tx := r.db.WithContext(ctx).Model(&taskModel{})
	if filter.Status != nil {
		tx = tx.Where("status = ?", string(*filter.Status))
	}

	var rows []taskModel
	if err := tx.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, r.logError("board_repo_list_tasks_failed", err)
	}

	tasks := make([]entities.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toEntity())
	}
	return tasks, nil
}

func (r *Repository) UpdateTask(ctx context.Context, task entities.Task) error {
	row := taskModelFromEntity(task)
	result := r.db.WithContext(ctx).
		Model(&taskModel{}).
		Where("id = ?", task.TaskID).
		Updates(map[string]any{
			"title":       row.Title,
			"description": row.Description,
			"status":      row.Status,
			"priority":    row.Priority,
			"category":    row.Category,
			"sort_order":  row.SortOrder,
			"updated_at":  row.UpdatedAt,
		})
	if result.Error != nil {
		return r.logError("board_repo_update_task_failed", result.Error, "task_id", task.TaskID)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTaskNotFound
	}
	return nil
}

func (r *Repository) DeleteTask(ctx context.Context, taskID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var checklistIDs []string
		if err := tx.Model(&checklistModel{}).
			Where("task_id = ?", taskID).
			Pluck("id", &checklistIDs).
			Error; err != nil {
			return err
		}
		if len(checklistIDs) > 0 {
			if err := tx.Where("checklist_id IN ?", checklistIDs).
				Delete(&checklistItemModel{}).
				Error; err != nil {
				return err
			}
			if err := tx.Where("task_id = ?", taskID).
				Delete(&checklistModel{}).
				Error; err != nil {
				return err
			}
		}

		result := tx.Where("id = ?", taskID).Delete(&taskModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrTaskNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, domainerrors.ErrTaskNotFound) {
		return r.logError("board_repo_delete_task_failed", err, "task_id", taskID)
	}
	return err
}

func (r *Repository) MaxSortOrder(
	ctx context.Context,
	status entities.Status,
	priority entities.Priority,
) (int, bool, error) {
	var max sql.NullInt64
	err := r.db.WithContext(ctx).
		Model(&taskModel{}).
		Where("status = ? AND priority = ?", string(status), string(priority)).
		Select("MAX(sort_order)").
		Scan(&max).
		Error
	if err != nil {
		return 0, false, r.logError("board_repo_max_sort_order_failed", err,
			"status", string(status),
			"priority", string(priority),
		)
	}
	return int(max.Int64), max.Valid, nil
}

func (r *Repository) CreateChecklist(ctx context.Context, checklist entities.Checklist) error {
	row := checklistModelFromEntity(checklist)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.NewFieldError("id", "Checklist id already exists")
		}
		return r.logError("board_repo_create_checklist_failed", err, "checklist_id", checklist.ChecklistID)
	}
	return nil
}

func (r *Repository) GetChecklist(ctx context.Context, checklistID string) (entities.Checklist, error) {
	var row checklistModel
	err := r.db.WithContext(ctx).Where("id = ?", checklistID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Checklist{}, domainerrors.ErrChecklistNotFound
		}
		return entities.Checklist{}, r.logError("board_repo_get_checklist_failed", err, "checklist_id", checklistID)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListChecklistsByTask(ctx context.Context, taskID string) ([]entities.Checklist, error) {
	var rows []checklistModel
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC, id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("board_repo_list_checklists_failed", err, "task_id", taskID)
	}

	checklists := make([]entities.Checklist, 0, len(rows))
	for _, row := range rows {
		checklists = append(checklists, row.toEntity())
	}
	return checklists, nil
}

func (r *Repository) DeleteChecklist(ctx context.Context, checklistID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("checklist_id = ?", checklistID).
			Delete(&checklistItemModel{}).
			Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", checklistID).Delete(&checklistModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrChecklistNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, domainerrors.ErrChecklistNotFound) {
		return r.logError("board_repo_delete_checklist_failed", err, "checklist_id", checklistID)
	}
	return err
}

func (r *Repository) CreateItem(ctx context.Context, item entities.ChecklistItem) error {
	row := itemModelFromEntity(item)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.NewFieldError("id", "Checklist item id already exists")
		}
		return r.logError("board_repo_create_item_failed", err, "item_id", item.ItemID)
	}
	return nil
}

func (r *Repository) GetItem(ctx context.Context, itemID string) (entities.ChecklistItem, error) {
	var row checklistItemModel
	err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ChecklistItem{}, domainerrors.ErrItemNotFound
		}
		return entities.ChecklistItem{}, r.logError("board_repo_get_item_failed", err, "item_id", itemID)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListItemsByChecklist(ctx context.Context, checklistID string) ([]entities.ChecklistItem, error) {
	var rows []checklistItemModel
	err := r.db.WithContext(ctx).
		Where("checklist_id = ?", checklistID).
		Order("position ASC, id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("board_repo_list_items_failed", err, "checklist_id", checklistID)
	}

	items := make([]entities.ChecklistItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ResolveItems(
	ctx context.Context,
	checklistID string,
	ids []string,
) ([]entities.ChecklistItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []checklistItemModel
	err := r.db.WithContext(ctx).
		Where("checklist_id = ? AND id IN ?", checklistID, ids).
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("board_repo_resolve_items_failed", err, "checklist_id", checklistID)
	}

	items := make([]entities.ChecklistItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateItem(ctx context.Context, item entities.ChecklistItem) error {
	row := itemModelFromEntity(item)
	result := r.db.WithContext(ctx).
		Model(&checklistItemModel{}).
		Where("id = ?", item.ItemID).
		Updates(map[string]any{
			"text":       row.Text,
			"completed":  row.Completed,
			"position":   row.Position,
			"updated_at": row.UpdatedAt,
		})
	if result.Error != nil {
		return r.logError("board_repo_update_item_failed", result.Error, "item_id", item.ItemID)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrItemNotFound
	}
	return nil
}

func (r *Repository) DeleteItem(ctx context.Context, itemID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&checklistItemModel{})
	if result.Error != nil {
		return r.logError("board_repo_delete_item_failed", result.Error, "item_id", itemID)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrItemNotFound
	}
	return nil
}

func (r *Repository) MaxPosition(ctx context.Context, checklistID string) (int, bool, error) {
	var max sql.NullInt64
	err := r.db.WithContext(ctx).
		Model(&checklistItemModel{}).
		Where("checklist_id = ?", checklistID).
		Select("MAX(position)").
		Scan(&max).
		Error
	if err != nil {
		return 0, false, r.logError("board_repo_max_position_failed", err, "checklist_id", checklistID)
	}
	return int(max.Int64), max.Valid, nil
}

// ApplyPositions performs the reorder batch inside one transaction. Any row
// that cannot be matched to the checklist aborts the transaction, so stored
// positions never reflect a partial reorder.
func (r *Repository) ApplyPositions(
	ctx context.Context,
	checklistID string,
	updates []ordering.Update,
) error {
	if len(updates) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			result := tx.Model(&checklistItemModel{}).
				Where("id = ? AND checklist_id = ?", update.ID, checklistID).
				Update("position", update.Position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domainerrors.ErrItemSetMismatch
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, domainerrors.ErrItemSetMismatch) {
		return r.logError("board_repo_apply_positions_failed", err,
			"checklist_id", checklistID,
			"update_count", len(updates),
		)
	}
	return err
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "kanban/board-service",
		"layer", "adapter_postgres",
		"error", err.Error(),
	}, args...)
	r.logger.Error("board repository operation failed", fields...)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
