// Package ordering maintains a strict total order over position-keyed
// collections: checklist items within a checklist, tasks within a
// (status, priority) bucket. It is pure planning logic; persistence of the
// resulting updates is the repository's job and must be all-or-nothing.
package ordering

import (
	domainerrors "taskboard/contexts/kanban/board-service/domain/errors"
)

// Current is an item's stored position at planning time.
type Current struct {
	ID       string
	Position int
}

// Update moves one item to a new position. A plan's updates are only valid
// when applied together in a single atomic batch.
type Update struct {
	ID       string
	Position int
}

// NextPosition assigns the position for a newly inserted item: one past the
// group's maximum, or 0 for an empty group. Callers supplying an explicit
// position bypass this entirely; no collision check is performed either way.
func NextPosition(maxExisting int, hasItems bool) int {
	if !hasItems {
		return 0
	}
	return maxExisting + 1
}

// Plan computes the position updates that realize orderedIDs as the group's
// new order: the item at index i moves to position i. Items already in place
// are omitted from the result.
//
// Every id in orderedIDs must resolve to exactly one entry of current, and
// every entry of current must be listed. Duplicate ids, unknown ids, or a
// count mismatch yield ErrItemSetMismatch and an empty plan; callers must
// apply no changes in that case.
func Plan(current []Current, orderedIDs []string) ([]Update, error) {
	if len(current) != len(orderedIDs) {
		return nil, domainerrors.ErrItemSetMismatch
	}

	positions := make(map[string]int, len(orderedIDs))
	for index, id := range orderedIDs {
		if _, dup := positions[id]; dup {
			return nil, domainerrors.ErrItemSetMismatch
		}
		positions[id] = index
	}

	updates := make([]Update, 0, len(current))
	for _, item := range current {
		target, ok := positions[item.ID]
		if !ok {
			return nil, domainerrors.ErrItemSetMismatch
		}
		if item.Position != target {
			updates = append(updates, Update{ID: item.ID, Position: target})
		}
	}
	return updates, nil
}
