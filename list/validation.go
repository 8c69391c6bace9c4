package list

import "fmt"

// ValidateName checks if a list name is valid.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	return nil
}

// ValidateTitle checks if an item title is valid.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidateItem checks if an item struct is internally consistent.
func ValidateItem(it *Item) error {
	if err := ValidateTitle(it.Title); err != nil {
		return err
	}
	if !it.Status.IsValid() {
		return invalidStatus(it.Status)
	}
	if !it.Priority.IsValid() {
		return invalidPriority(it.Priority)
	}

	// completed_at is set if and only if the item is done
	if it.Status == StatusDone {
		if it.CompletedAt == nil {
			return ErrDoneMissingCompletedAt
		}
	} else if it.CompletedAt != nil {
		return ErrNotDoneHasCompletedAt
	}

	return nil
}

// Validate checks the whole list: a non-empty name, unique item ids, and
// consistent items. The store runs this on every load and save so corrupt
// or hand-edited documents are rejected.
func (l *List) Validate() error {
	if err := ValidateName(l.Name); err != nil {
		return err
	}

	seen := make(map[uint64]struct{}, len(l.Items))
	for i := range l.Items {
		item := &l.Items[i]
		if _, ok := seen[item.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateItemID, item.ID)
		}
		seen[item.ID] = struct{}{}

		if err := ValidateItem(item); err != nil {
			return fmt.Errorf("item %d: %w", item.ID, err)
		}
	}

	return nil
}

func invalidStatus(status Status) error {
	return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidStatus, status, joinStatuses())
}

func invalidPriority(priority Priority) error {
	return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidPriority, priority, joinPriorities())
}

func notFound(id uint64) error {
	return fmt.Errorf("%w: %d", ErrItemNotFound, id)
}
