package application

import (
	"context"
	"strings"

	"taskboard/contexts/kanban/board-service/domain/entities"
	domainerrors "taskboard/contexts/kanban/board-service/domain/errors"
	"taskboard/contexts/kanban/board-service/domain/ordering"
)

type UpdateChecklistItemInput struct {
	Text      *string
	Completed *bool
}

// ReorderResult is the post-reorder view of a checklist: every item of the
// checklist ordered by its new position, plus the owning checklist.
type ReorderResult struct {
	Checklist entities.Checklist
	Items     []entities.ChecklistItem
}

func (s Service) CreateChecklist(ctx context.Context, taskID, title string) (entities.Checklist, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Checklist{}, domainerrors.NewFieldError("title", "Title cannot be empty")
	}

	task, err := s.Tasks.GetTask(ctx, strings.TrimSpace(taskID))
	if err != nil {
		return entities.Checklist{}, err
	}

	now := s.Clock.Now().UTC()
	checklist := entities.Checklist{
		ChecklistID: s.IDs.NewID(),
		TaskID:      task.TaskID,
		Title:       title,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Checklists.CreateChecklist(ctx, checklist); err != nil {
		return entities.Checklist{}, err
	}
	return checklist, nil
}

func (s Service) GetChecklist(ctx context.Context, checklistID string) (entities.Checklist, error) {
	return s.Checklists.GetChecklist(ctx, strings.TrimSpace(checklistID))
}

func (s Service) ListChecklists(ctx context.Context, taskID string) ([]entities.Checklist, error) {
	return s.Checklists.ListChecklistsByTask(ctx, strings.TrimSpace(taskID))
}

func (s Service) DeleteChecklist(ctx context.Context, checklistID string) error {
	checklistID = strings.TrimSpace(checklistID)
	if _, err := s.Checklists.GetChecklist(ctx, checklistID); err != nil {
		return err
	}
	return s.Checklists.DeleteChecklist(ctx, checklistID)
}

// ChecklistProgress reports the checklist's completion percentage.
func (s Service) ChecklistProgress(ctx context.Context, checklistID string) (int, error) {
	items, err := s.Items.ListItemsByChecklist(ctx, strings.TrimSpace(checklistID))
	if err != nil {
		return 0, err
	}
	return entities.ChecklistProgress(items), nil
}

func (s Service) ListChecklistItems(ctx context.Context, checklistID string) ([]entities.ChecklistItem, error) {
	return s.Items.ListItemsByChecklist(ctx, strings.TrimSpace(checklistID))
}

// AddChecklistItem appends an item to the checklist. Without an explicit
// position the item lands one past the checklist's current maximum, or at 0
// when the checklist is empty.
func (s Service) AddChecklistItem(
	ctx context.Context,
	checklistID, text string,
	explicitPosition *int,
) (entities.ChecklistItem, error) {
	checklist, err := s.Checklists.GetChecklist(ctx, strings.TrimSpace(checklistID))
	if err != nil {
		return entities.ChecklistItem{}, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return entities.ChecklistItem{}, domainerrors.NewFieldError("text", "Item text cannot be empty")
	}

	position := 0
	if explicitPosition != nil {
		position = *explicitPosition
	} else {
		max, hasItems, err := s.Items.MaxPosition(ctx, checklist.ChecklistID)
		if err != nil {
			return entities.ChecklistItem{}, err
		}
		position = ordering.NextPosition(max, hasItems)
	}

	now := s.Clock.Now().UTC()
	item := entities.ChecklistItem{
		ItemID:      s.IDs.NewID(),
		ChecklistID: checklist.ChecklistID,
		Text:        text,
		Completed:   false,
		Position:    position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Items.CreateItem(ctx, item); err != nil {
		return entities.ChecklistItem{}, err
	}
	return item, nil
}

func (s Service) ToggleChecklistItem(ctx context.Context, itemID string) (entities.ChecklistItem, error) {
	item, err := s.Items.GetItem(ctx, strings.TrimSpace(itemID))
	if err != nil {
		return entities.ChecklistItem{}, err
	}
	item.Completed = !item.Completed
	item.UpdatedAt = s.Clock.Now().UTC()
	if err := s.Items.UpdateItem(ctx, item); err != nil {
		return entities.ChecklistItem{}, err
	}
	return item, nil
}

func (s Service) UpdateChecklistItem(
	ctx context.Context,
	itemID string,
	input UpdateChecklistItemInput,
) (entities.ChecklistItem, error) {
	item, err := s.Items.GetItem(ctx, strings.TrimSpace(itemID))
	if err != nil {
		return entities.ChecklistItem{}, err
	}

	if input.Text != nil {
		text := strings.TrimSpace(*input.Text)
		if text == "" {
			return entities.ChecklistItem{}, domainerrors.NewFieldError("text", "Item text cannot be empty")
		}
		item.Text = text
	}
	if input.Completed != nil {
		item.Completed = *input.Completed
	}
	item.UpdatedAt = s.Clock.Now().UTC()

	if err := s.Items.UpdateItem(ctx, item); err != nil {
		return entities.ChecklistItem{}, err
	}
	return item, nil
}

func (s Service) DeleteChecklistItem(ctx context.Context, itemID string) error {
	itemID = strings.TrimSpace(itemID)
	if _, err := s.Items.GetItem(ctx, itemID); err != nil {
		return err
	}
	// Siblings keep their positions; gaps are harmless.
	return s.Items.DeleteItem(ctx, itemID)
}

// ReorderChecklistItems rewrites the checklist's item positions to match
// itemIDs (index 0 becomes position 0, and so on). Every id must resolve to
// an item of this checklist; otherwise nothing changes and the call fails
// with ErrItemSetMismatch. The position writes happen in one transaction, so
// a persistence failure leaves every stored position as it was. Concurrent
// reorders of the same checklist are last-commit-wins; each call is atomic
// but calls are not serialized against each other.
func (s Service) ReorderChecklistItems(
	ctx context.Context,
	checklistID string,
	itemIDs []string,
) (ReorderResult, error) {
	checklist, err := s.Checklists.GetChecklist(ctx, strings.TrimSpace(checklistID))
	if err != nil {
		return ReorderResult{}, err
	}

	resolved, err := s.Items.ResolveItems(ctx, checklist.ChecklistID, itemIDs)
	if err != nil {
		return ReorderResult{}, err
	}

	current := make([]ordering.Current, 0, len(resolved))
	for _, item := range resolved {
		current = append(current, ordering.Current{ID: item.ItemID, Position: item.Position})
	}

	updates, err := ordering.Plan(current, itemIDs)
	if err != nil {
		return ReorderResult{}, err
	}

	if len(updates) > 0 {
		if err := s.Items.ApplyPositions(ctx, checklist.ChecklistID, updates); err != nil {
			return ReorderResult{}, err
		}
	}

	items, err := s.Items.ListItemsByChecklist(ctx, checklist.ChecklistID)
	if err != nil {
		return ReorderResult{}, err
	}

	s.logger().Debug("checklist items reordered",
		"event", "board_checklist_reordered",
		"module", "kanban/board-service",
		"layer", "application",
		"checklist_id", checklist.ChecklistID,
		"item_count", len(itemIDs),
		"moved", len(updates),
	)

	return ReorderResult{Checklist: checklist, Items: items}, nil
}
