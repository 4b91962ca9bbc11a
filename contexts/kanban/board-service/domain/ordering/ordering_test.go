package ordering

import (
	"errors"
	"testing"

	domainerrors "taskboard/contexts/kanban/board-service/domain/errors"
)

func TestNextPositionEmptyGroup(t *testing.T) {
	if got := NextPosition(0, false); got != 0 {
		t.Fatalf("expected position 0 for empty group, got %d", got)
	}
}

func TestNextPositionAfterExisting(t *testing.T) {
	if got := NextPosition(2, true); got != 3 {
		t.Fatalf("expected position 3 after max 2, got %d", got)
	}
}

func TestNextPositionIgnoresGaps(t *testing.T) {
	// Deleting siblings leaves gaps; only the max matters.
	if got := NextPosition(7, true); got != 8 {
		t.Fatalf("expected position 8 after max 7, got %d", got)
	}
}

func TestPlanMovesItemsToRequestedOrder(t *testing.T) {
	current := []Current{
		{ID: "a", Position: 0},
		{ID: "b", Position: 1},
		{ID: "c", Position: 2},
	}

	updates, err := Plan(current, []string{"c", "a", "b"})
	if err != nil {
		t.Fatalf("expected plan, got error: %v", err)
	}
	if len(updates) != 3 {
		t.Fatalf("expected 3 updates, got %d", len(updates))
	}

	want := map[string]int{"c": 0, "a": 1, "b": 2}
	for _, update := range updates {
		if want[update.ID] != update.Position {
			t.Fatalf("expected %s at %d, got %d", update.ID, want[update.ID], update.Position)
		}
	}
}

func TestPlanSkipsItemsAlreadyInPlace(t *testing.T) {
	current := []Current{
		{ID: "a", Position: 0},
		{ID: "b", Position: 1},
		{ID: "c", Position: 5},
	}

	updates, err := Plan(current, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("expected plan, got error: %v", err)
	}
	if len(updates) != 1 {
		t.Fatalf("expected only the out-of-place item, got %d updates", len(updates))
	}
	if updates[0].ID != "c" || updates[0].Position != 2 {
		t.Fatalf("expected c -> 2, got %s -> %d", updates[0].ID, updates[0].Position)
	}
}

func TestPlanIsIdempotent(t *testing.T) {
	current := []Current{
		{ID: "a", Position: 0},
		{ID: "b", Position: 1},
	}

	updates, err := Plan(current, []string{"a", "b"})
	if err != nil {
		t.Fatalf("expected plan, got error: %v", err)
	}
	if len(updates) != 0 {
		t.Fatalf("expected empty plan when order already holds, got %d updates", len(updates))
	}
}

func TestPlanRejectsDuplicateIDs(t *testing.T) {
	current := []Current{
		{ID: "a", Position: 0},
		{ID: "b", Position: 1},
	}

	_, err := Plan(current, []string{"a", "a"})
	if !errors.Is(err, domainerrors.ErrItemSetMismatch) {
		t.Fatalf("expected item set mismatch, got %v", err)
	}
}

func TestPlanRejectsForeignIDs(t *testing.T) {
	current := []Current{
		{ID: "a", Position: 0},
		{ID: "b", Position: 1},
	}

	_, err := Plan(current, []string{"a", "z"})
	if !errors.Is(err, domainerrors.ErrItemSetMismatch) {
		t.Fatalf("expected item set mismatch, got %v", err)
	}
}

func TestPlanRejectsCountMismatch(t *testing.T) {
	current := []Current{
		{ID: "a", Position: 0},
		{ID: "b", Position: 1},
		{ID: "c", Position: 2},
	}

	_, err := Plan(current, []string{"a", "b"})
	if !errors.Is(err, domainerrors.ErrItemSetMismatch) {
		t.Fatalf("expected item set mismatch, got %v", err)
	}
}

func TestPlanEmptySet(t *testing.T) {
	updates, err := Plan(nil, nil)
	if err != nil {
		t.Fatalf("expected empty plan, got error: %v", err)
	}
	if len(updates) != 0 {
		t.Fatalf("expected no updates, got %d", len(updates))
	}
}
