package list

import (
	"errors"
	"testing"
)

func TestStatus_IsValid(t *testing.T) {
	for _, status := range ValidStatuses() {
		if !status.IsValid() {
			t.Errorf("expected %q to be valid", status)
		}
	}
	for _, status := range []Status{"", "paused", "DONE", "closed"} {
		if status.IsValid() {
			t.Errorf("expected %q to be invalid", status)
		}
	}
}

func TestParseStatus(t *testing.T) {
	cases := []struct {
		input string
		want  Status
	}{
		{"todo", StatusTodo},
		{"DONE", StatusDone},
		{"  in_progress ", StatusInProgress},
		{"Waiting", StatusWaiting},
	}
	for _, tc := range cases {
		got, err := ParseStatus(tc.input)
		if err != nil {
			t.Errorf("ParseStatus(%q): %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}

	if _, err := ParseStatus("later"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestPriority_Rank(t *testing.T) {
	order := ValidPriorities()
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Errorf("expected %q to rank below %q", order[i-1], order[i])
		}
	}
	if Priority("urgent").Rank() != -1 {
		t.Errorf("expected unknown priority to rank -1, got %d", Priority("urgent").Rank())
	}
}

func TestParsePriority(t *testing.T) {
	got, err := ParsePriority(" Critical ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != PriorityCritical {
		t.Errorf("expected 'critical', got %q", got)
	}

	if _, err := ParsePriority("p1"); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}
}
