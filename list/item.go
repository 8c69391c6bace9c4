package list

import "time"

// Item represents a single task entry in a list.
type Item struct {
	// ID is unique within the owning list. New ids are one past the
	// current maximum, so an id is only ever reused after the highest
	// item is removed.
	ID uint64 `json:"id"`

	// Title is the short summary of the item (max 500 chars).
	Title string `json:"title"`

	// Description provides additional context about the item.
	Description string `json:"description,omitempty"`

	// Status is the current state of the item.
	Status Status `json:"status"`

	// Priority is the importance level.
	Priority Priority `json:"priority"`

	// DueDate is the calendar date the item is due (nil when not set).
	DueDate *Date `json:"due_date,omitempty"`

	// CreatedAt is when the item was created. Never changes.
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is when the item was marked done (nil unless status is done).
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// IsOverdue reports whether the item is past due: it has a due date, the
// due date is before today, and the item is not done.
func (it Item) IsOverdue(today Date) bool {
	if it.DueDate == nil || it.Status == StatusDone {
		return false
	}
	return it.DueDate.Before(today)
}

// DaysUntilDue returns the number of whole days until the due date.
// The second return is false when the item has no due date.
func (it Item) DaysUntilDue(today Date) (int, bool) {
	if it.DueDate == nil {
		return 0, false
	}
	return it.DueDate.DaysUntil(today), true
}
