package list

// DueClass buckets an item's due date for display. It is computed from an
// explicit "today" so a single rendering pass stays internally consistent.
type DueClass string

const (
	// DueNone means the item has no due date.
	DueNone DueClass = "none"

	// DueOverdue means the due date has passed and the item is not done.
	DueOverdue DueClass = "overdue"

	// DueToday means the item is due today.
	DueToday DueClass = "today"

	// DueTomorrow means the item is due tomorrow.
	DueTomorrow DueClass = "tomorrow"

	// DueSoon means the item is due within the next week.
	DueSoon DueClass = "soon"

	// DueScheduled means the item is due a week or more out.
	DueScheduled DueClass = "scheduled"
)

// ClassifyDue buckets the item's due-date urgency relative to today.
// A done item is never overdue; a done item whose date has passed
// classifies as DueNone since it carries no urgency.
func ClassifyDue(today Date, it Item) DueClass {
	if it.DueDate == nil {
		return DueNone
	}
	if it.IsOverdue(today) {
		return DueOverdue
	}

	days, _ := it.DaysUntilDue(today)
	switch {
	case days < 0:
		return DueNone
	case days == 0:
		return DueToday
	case days == 1:
		return DueTomorrow
	case days < 7:
		return DueSoon
	default:
		return DueScheduled
	}
}
