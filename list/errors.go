package list

import "errors"

var (
	// ErrEmptyName is returned when a list name is empty.
	ErrEmptyName = errors.New("list name cannot be empty")

	// ErrEmptyTitle is returned when an item title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when an item title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidDate is returned when a due date does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrItemNotFound is returned when no item with the given id exists.
	ErrItemNotFound = errors.New("item not found")

	// ErrDuplicateItemID is returned when a list holds two items with the same id.
	ErrDuplicateItemID = errors.New("duplicate item id")

	// ErrDoneMissingCompletedAt is returned when a done item has no completed_at timestamp.
	ErrDoneMissingCompletedAt = errors.New("done item must have completed_at timestamp")

	// ErrNotDoneHasCompletedAt is returned when a non-done item has a completed_at timestamp.
	ErrNotDoneHasCompletedAt = errors.New("non-done item cannot have completed_at timestamp")
)
