package list

import "time"

// List is a named, ordered collection of items. Items keep their insertion
// order; display ordering is computed separately by SortForDisplay.
type List struct {
	Name         string    `json:"name"`
	Items        []Item    `json:"items"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

// New creates an empty list with the given name.
func New(name string, now time.Time) (*List, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	created := now.UTC()
	return &List{
		Name:         name,
		CreatedAt:    created,
		LastModified: created,
	}, nil
}

// AddOptions configures a new item. The zero value gives a low-priority
// todo with no description and no due date.
type AddOptions struct {
	// Description provides additional context.
	Description string

	// Priority is the importance level. Defaults to PriorityLow when empty.
	Priority Priority

	// DueDate is the optional due date.
	DueDate *Date

	// Status is the initial status. Defaults to StatusTodo when empty.
	Status Status
}

// Add appends a new item with a freshly assigned id and returns it.
func (l *List) Add(title string, opts AddOptions, now time.Time) (*Item, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	if opts.Priority == "" {
		opts.Priority = PriorityLow
	}
	if !opts.Priority.IsValid() {
		return nil, invalidPriority(opts.Priority)
	}
	if opts.Status == "" {
		opts.Status = StatusTodo
	}
	if !opts.Status.IsValid() {
		return nil, invalidStatus(opts.Status)
	}

	created := now.UTC()
	item := Item{
		ID:          l.nextID(),
		Title:       title,
		Description: opts.Description,
		Status:      opts.Status,
		Priority:    opts.Priority,
		DueDate:     opts.DueDate,
		CreatedAt:   created,
	}
	if item.Status == StatusDone {
		item.CompletedAt = &created
	}

	l.Items = append(l.Items, item)
	l.touch(now)
	return &l.Items[len(l.Items)-1], nil
}

// Remove deletes the item with the given id. Returns ErrItemNotFound if no
// such item exists; the list is untouched in that case.
func (l *List) Remove(id uint64, now time.Time) error {
	for i := range l.Items {
		if l.Items[i].ID != id {
			continue
		}
		l.Items = append(l.Items[:i], l.Items[i+1:]...)
		l.touch(now)
		return nil
	}
	return notFound(id)
}

// Toggle flips an item between done and todo. Marking done sets
// completed_at; leaving done clears it.
func (l *List) Toggle(id uint64, now time.Time) (*Item, error) {
	item := l.find(id)
	if item == nil {
		return nil, notFound(id)
	}

	if item.Status == StatusDone {
		item.Status = StatusTodo
		item.CompletedAt = nil
	} else {
		completed := now.UTC()
		item.Status = StatusDone
		item.CompletedAt = &completed
	}
	l.touch(now)
	return item, nil
}

// SetStatus overwrites an item's status. completed_at is set when the new
// status is done and cleared for any other status.
func (l *List) SetStatus(id uint64, status Status, now time.Time) (*Item, error) {
	if !status.IsValid() {
		return nil, invalidStatus(status)
	}
	item := l.find(id)
	if item == nil {
		return nil, notFound(id)
	}

	item.Status = status
	if status == StatusDone {
		completed := now.UTC()
		item.CompletedAt = &completed
	} else {
		item.CompletedAt = nil
	}
	l.touch(now)
	return item, nil
}

// SetPriority overwrites an item's priority.
func (l *List) SetPriority(id uint64, priority Priority, now time.Time) (*Item, error) {
	if !priority.IsValid() {
		return nil, invalidPriority(priority)
	}
	item := l.find(id)
	if item == nil {
		return nil, notFound(id)
	}

	item.Priority = priority
	l.touch(now)
	return item, nil
}

// SetDueDate overwrites an item's due date. A nil date clears it.
func (l *List) SetDueDate(id uint64, due *Date, now time.Time) (*Item, error) {
	item := l.find(id)
	if item == nil {
		return nil, notFound(id)
	}

	item.DueDate = due
	l.touch(now)
	return item, nil
}

// SetTitle overwrites an item's title.
func (l *List) SetTitle(id uint64, title string, now time.Time) (*Item, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	item := l.find(id)
	if item == nil {
		return nil, notFound(id)
	}

	item.Title = title
	l.touch(now)
	return item, nil
}

// SetDescription overwrites an item's description. An empty string clears it.
func (l *List) SetDescription(id uint64, description string, now time.Time) (*Item, error) {
	item := l.find(id)
	if item == nil {
		return nil, notFound(id)
	}

	item.Description = description
	l.touch(now)
	return item, nil
}

// Find returns the item with the given id, if present. The returned pointer
// aliases the list's storage, so mutations through it bypass last_modified;
// callers that mutate should use the Set operations instead.
func (l *List) Find(id uint64) (*Item, bool) {
	item := l.find(id)
	return item, item != nil
}

// Len returns the number of items in the list.
func (l *List) Len() int {
	return len(l.Items)
}

func (l *List) find(id uint64) *Item {
	for i := range l.Items {
		if l.Items[i].ID == id {
			return &l.Items[i]
		}
	}
	return nil
}

// nextID assigns ids from max(existing)+1.
func (l *List) nextID() uint64 {
	var max uint64
	for i := range l.Items {
		if l.Items[i].ID > max {
			max = l.Items[i].ID
		}
	}
	return max + 1
}

func (l *List) touch(now time.Time) {
	l.LastModified = now.UTC()
}
