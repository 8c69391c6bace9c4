package list

import "sort"

// SortForDisplay returns the items in display order without mutating the
// input: priority descending (critical first), and within equal priority
// items with a due date come before items without one, earlier dates first.
// Items that tie on both keys keep their relative insertion order.
func SortForDisplay(items []Item) []Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority.Rank() != sorted[j].Priority.Rank() {
			return sorted[i].Priority.Rank() > sorted[j].Priority.Rank()
		}

		left, right := sorted[i].DueDate, sorted[j].DueDate
		switch {
		case left != nil && right == nil:
			return true
		case left == nil && right != nil:
			return false
		case left != nil && right != nil && !left.Equal(*right):
			return left.Before(*right)
		}
		return false
	})

	return sorted
}
