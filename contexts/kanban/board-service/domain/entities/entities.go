package entities

import (
	"strings"
	"time"
)

type Status string

const (
	StatusTodo    Status = "TODO"
	StatusDoing   Status = "DOING"
	StatusWaiting Status = "WAITING"
	StatusDone    Status = "DONE"
)

func ParseStatus(raw string) (Status, bool) {
	switch Status(strings.ToUpper(strings.TrimSpace(raw))) {
	case StatusTodo:
		return StatusTodo, true
	case StatusDoing:
		return StatusDoing, true
	case StatusWaiting:
		return StatusWaiting, true
	case StatusDone:
		return StatusDone, true
	default:
		return "", false
	}
}

func IsValidStatus(status Status) bool {
	switch status {
	case StatusTodo, StatusDoing, StatusWaiting, StatusDone:
		return true
	default:
		return false
	}
}

// Priority follows the Eisenhower-inspired P1..P4 scale:
// P1 do first, P2 schedule, P3 quick win, P4 backlog.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"
)

func ParsePriority(raw string) (Priority, bool) {
	switch Priority(strings.ToUpper(strings.TrimSpace(raw))) {
	case PriorityP1:
		return PriorityP1, true
	case PriorityP2:
		return PriorityP2, true
	case PriorityP3:
		return PriorityP3, true
	case PriorityP4:
		return PriorityP4, true
	default:
		return "", false
	}
}

func IsValidPriority(priority Priority) bool {
	switch priority {
	case PriorityP1, PriorityP2, PriorityP3, PriorityP4:
		return true
	default:
		return false
	}
}

// Task is a kanban card. SortOrder places it within its
// (status, priority) column bucket.
type Task struct {
	TaskID      string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	Category    string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Checklist struct {
	ChecklistID string
	TaskID      string
	Title       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ChecklistItem carries Position, the ordering key within its checklist.
type ChecklistItem struct {
	ItemID      string
	ChecklistID string
	Text        string
	Completed   bool
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ChecklistProgress is the completion percentage over the given items,
// 0 for an empty checklist.
func ChecklistProgress(items []ChecklistItem) int {
	if len(items) == 0 {
		return 0
	}
	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	return completed * 100 / len(items)
}

// NormalizeCategory adds the leading '#' tag marker when missing.
// Empty input stays empty so callers can clear the field.
func NormalizeCategory(category string) string {
	if category == "" {
		return ""
	}
	if strings.HasPrefix(category, "#") {
		return category
	}
	return "#" + category
}
