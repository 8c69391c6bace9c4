// Package list implements the task-list data model: named lists of items
// with a status, a priority, and an optional due date.
//
// The model is pure. Every mutating operation takes the current time as an
// explicit argument, and the due-date queries take an explicit "today", so
// callers own the clock. Persistence lives in the liststore package; the
// command-line surface lives in cmd/tl.
package list

import (
	"fmt"
	"strings"
)

// Status represents the state of an item.
type Status string

const (
	// StatusTodo indicates the item has not been started.
	StatusTodo Status = "todo"

	// StatusInProgress indicates the item is being worked on.
	StatusInProgress Status = "in_progress"

	// StatusWaiting indicates the item is blocked on something external.
	StatusWaiting Status = "waiting"

	// StatusDone indicates the item is complete. It is the only status
	// that carries a completed_at timestamp.
	StatusDone Status = "done"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusWaiting, StatusDone}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// ParseStatus converts user input into a Status.
func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrInvalidStatus, value, joinStatuses())
	}
	return status, nil
}

func joinStatuses() string {
	valid := ValidStatuses()
	values := make([]string, 0, len(valid))
	for _, status := range valid {
		values = append(values, string(status))
	}
	return strings.Join(values, ", ")
}

// Priority represents the importance of an item.
type Priority string

const (
	// PriorityLow is the default priority for new items.
	PriorityLow Priority = "low"

	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// ValidPriorities returns all valid priority values, lowest first.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank for a priority. Higher means more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 0
	default:
		return -1
	}
}

// ParsePriority converts user input into a Priority.
func ParsePriority(value string) (Priority, error) {
	priority := Priority(strings.ToLower(strings.TrimSpace(value)))
	if !priority.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrInvalidPriority, value, joinPriorities())
	}
	return priority, nil
}

func joinPriorities() string {
	valid := ValidPriorities()
	values := make([]string, 0, len(valid))
	for _, priority := range valid {
		values = append(values, string(priority))
	}
	return strings.Join(values, ", ")
}

// MaxTitleLength is the maximum allowed length for an item title.
const MaxTitleLength = 500
