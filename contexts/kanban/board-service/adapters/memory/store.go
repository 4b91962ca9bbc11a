package memory

import (
	"context"
	"sort"
	"sync"

	"taskboard/contexts/kanban/board-service/domain/entities"
	domainerrors "taskboard/contexts/kanban/board-service/domain/errors"
	"taskboard/contexts/kanban/board-service/domain/ordering"
	"taskboard/contexts/kanban/board-service/ports"
)

// Store is an in-memory repository used by unit tests and by the server when
// no Postgres DSN is configured. All operations take the store lock, so each
// call observes and produces a consistent snapshot, matching the atomicity
// the Postgres adapter gets from transactions.
type Store struct {
	mu sync.RWMutex

	tasks      map[string]entities.Task
	checklists map[string]entities.Checklist
	items      map[string]entities.ChecklistItem
}

func NewStore() *Store {
	return &Store{
		tasks:      make(map[string]entities.Task),
		checklists: make(map[string]entities.Checklist),
		items:      make(map[string]entities.ChecklistItem),
	}
}

func (s *Store) CreateTask(_ context.Context, task entities.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.TaskID] = task
	return nil
}

func (s *Store) GetTask(_ context.Context, taskID string) (entities.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[taskID]
	if !ok {
		return entities.Task{}, domainerrors.ErrTaskNotFound
	}
	return task, nil
}

func (s *Store) ListTasks(_ context.Context, filter ports.TaskFilter) ([]entities.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]entities.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		}
		return tasks[i].TaskID > tasks[j].TaskID
	})
	return tasks, nil
}

func (s *Store) UpdateTask(_ context.Context, task entities.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[task.TaskID]; !ok {
		return domainerrors.ErrTaskNotFound
	}
	s.tasks[task.TaskID] = task
	return nil
}

func (s *Store) DeleteTask(_ context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[taskID]; !ok {
		return domainerrors.ErrTaskNotFound
	}
	delete(s.tasks, taskID)
	for checklistID, checklist := range s.checklists {
		if checklist.TaskID != taskID {
			continue
		}
		delete(s.checklists, checklistID)
		s.deleteItemsOfLocked(checklistID)
	}
	return nil
}

func (s *Store) MaxSortOrder(
	_ context.Context,
	status entities.Status,
	priority entities.Priority,
) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	max, found := 0, false
	for _, task := range s.tasks {
		if task.Status != status || task.Priority != priority {
			continue
		}
		if !found || task.SortOrder > max {
			max, found = task.SortOrder, true
		}
	}
	return max, found, nil
}

func (s *Store) CreateChecklist(_ context.Context, checklist entities.Checklist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[checklist.TaskID]; !ok {
		return domainerrors.ErrTaskNotFound
	}
	s.checklists[checklist.ChecklistID] = checklist
	return nil
}

func (s *Store) GetChecklist(_ context.Context, checklistID string) (entities.Checklist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	checklist, ok := s.checklists[checklistID]
	if !ok {
		return entities.Checklist{}, domainerrors.ErrChecklistNotFound
	}
	return checklist, nil
}

func (s *Store) ListChecklistsByTask(_ context.Context, taskID string) ([]entities.Checklist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	checklists := make([]entities.Checklist, 0)
	for _, checklist := range s.checklists {
		if checklist.TaskID == taskID {
			checklists = append(checklists, checklist)
		}
	}
	sort.Slice(checklists, func(i, j int) bool {
		if !checklists[i].CreatedAt.Equal(checklists[j].CreatedAt) {
			return checklists[i].CreatedAt.Before(checklists[j].CreatedAt)
		}
		return checklists[i].ChecklistID < checklists[j].ChecklistID
	})
	return checklists, nil
}

func (s *Store) DeleteChecklist(_ context.Context, checklistID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.checklists[checklistID]; !ok {
		return domainerrors.ErrChecklistNotFound
	}
	delete(s.checklists, checklistID)
	s.deleteItemsOfLocked(checklistID)
	return nil
}

func (s *Store) CreateItem(_ context.Context, item entities.ChecklistItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.checklists[item.ChecklistID]; !ok {
		return domainerrors.ErrChecklistNotFound
	}
	s.items[item.ItemID] = item
	return nil
}

func (s *Store) GetItem(_ context.Context, itemID string) (entities.ChecklistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[itemID]
	if !ok {
		return entities.ChecklistItem{}, domainerrors.ErrItemNotFound
	}
	return item, nil
}

func (s *Store) ListItemsByChecklist(_ context.Context, checklistID string) ([]entities.ChecklistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.itemsOfLocked(checklistID), nil
}

func (s *Store) ResolveItems(
	_ context.Context,
	checklistID string,
	ids []string,
) ([]entities.ChecklistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	resolved := make([]entities.ChecklistItem, 0, len(wanted))
	for id := range wanted {
		item, ok := s.items[id]
		if !ok || item.ChecklistID != checklistID {
			continue
		}
		resolved = append(resolved, item)
	}
	return resolved, nil
}

func (s *Store) UpdateItem(_ context.Context, item entities.ChecklistItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.ItemID]; !ok {
		return domainerrors.ErrItemNotFound
	}
	s.items[item.ItemID] = item
	return nil
}

func (s *Store) DeleteItem(_ context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[itemID]; !ok {
		return domainerrors.ErrItemNotFound
	}
	delete(s.items, itemID)
	return nil
}

func (s *Store) MaxPosition(_ context.Context, checklistID string) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	max, found := 0, false
	for _, item := range s.items {
		if item.ChecklistID != checklistID {
			continue
		}
		if !found || item.Position > max {
			max, found = item.Position, true
		}
	}
	return max, found, nil
}

func (s *Store) ApplyPositions(
	_ context.Context,
	checklistID string,
	updates []ordering.Update,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate the whole batch before touching anything so a bad update
	// leaves every position as it was.
	for _, update := range updates {
		item, ok := s.items[update.ID]
		if !ok || item.ChecklistID != checklistID {
			return domainerrors.ErrItemSetMismatch
		}
	}
	for _, update := range updates {
		item := s.items[update.ID]
		item.Position = update.Position
		s.items[update.ID] = item
	}
	return nil
}

func (s *Store) itemsOfLocked(checklistID string) []entities.ChecklistItem {
	items := make([]entities.ChecklistItem, 0)
	for _, item := range s.items {
		if item.ChecklistID == checklistID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Position != items[j].Position {
			return items[i].Position < items[j].Position
		}
		return items[i].ItemID < items[j].ItemID
	})
	return items
}

func (s *Store) deleteItemsOfLocked(checklistID string) {
	for itemID, item := range s.items {
		if item.ChecklistID == checklistID {
			delete(s.items, itemID)
		}
	}
}
