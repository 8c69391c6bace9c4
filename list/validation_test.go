package list

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidateTitle(t *testing.T) {
	if err := ValidateTitle("Buy milk"); err != nil {
		t.Errorf("expected valid title, got %v", err)
	}
	if err := ValidateTitle(""); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
	if err := ValidateTitle(strings.Repeat("x", MaxTitleLength+1)); !errors.Is(err, ErrTitleTooLong) {
		t.Errorf("expected ErrTitleTooLong, got %v", err)
	}
	if err := ValidateTitle(strings.Repeat("x", MaxTitleLength)); err != nil {
		t.Errorf("expected title at max length to be valid, got %v", err)
	}
}

func TestValidateItem(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	valid := Item{ID: 1, Title: "Milk", Status: StatusTodo, Priority: PriorityLow, CreatedAt: now}
	if err := ValidateItem(&valid); err != nil {
		t.Errorf("expected valid item, got %v", err)
	}

	done := valid
	done.Status = StatusDone
	if err := ValidateItem(&done); !errors.Is(err, ErrDoneMissingCompletedAt) {
		t.Errorf("expected ErrDoneMissingCompletedAt, got %v", err)
	}
	done.CompletedAt = &now
	if err := ValidateItem(&done); err != nil {
		t.Errorf("expected done item with completed_at to be valid, got %v", err)
	}

	stale := valid
	stale.CompletedAt = &now
	if err := ValidateItem(&stale); !errors.Is(err, ErrNotDoneHasCompletedAt) {
		t.Errorf("expected ErrNotDoneHasCompletedAt, got %v", err)
	}

	badStatus := valid
	badStatus.Status = "paused"
	if err := ValidateItem(&badStatus); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}

	badPriority := valid
	badPriority.Priority = "p0"
	if err := ValidateItem(&badPriority); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestList_Validate(t *testing.T) {
	l := newTestList(t)
	if _, err := l.Add("Milk", AddOptions{}, testNow); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := l.Add("Eggs", AddOptions{Status: StatusDone}, testNow); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := l.Validate(); err != nil {
		t.Errorf("expected valid list, got %v", err)
	}

	dup := *l
	dup.Items = append([]Item(nil), l.Items...)
	dup.Items[1].ID = dup.Items[0].ID
	if err := dup.Validate(); !errors.Is(err, ErrDuplicateItemID) {
		t.Errorf("expected ErrDuplicateItemID, got %v", err)
	}

	unnamed := List{}
	if err := unnamed.Validate(); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}
