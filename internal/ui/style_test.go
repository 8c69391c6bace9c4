package ui

import (
	"testing"

	"github.com/jfaure/tasklist/list"
)

func TestDueClassLabel(t *testing.T) {
	cases := []struct {
		class list.DueClass
		want  string
	}{
		{list.DueNone, "-"},
		{list.DueOverdue, "overdue"},
		{list.DueToday, "today"},
		{list.DueTomorrow, "tomorrow"},
		{list.DueSoon, "soon"},
		{list.DueScheduled, "scheduled"},
	}
	for _, tc := range cases {
		if got := DueClassLabel(tc.class); got != tc.want {
			t.Errorf("DueClassLabel(%q) = %q, want %q", tc.class, got, tc.want)
		}
	}
}

// Tests run without a terminal on stdout, so styling falls back to plain text.
func TestStyleFallsBackToPlainText(t *testing.T) {
	if got := StylePriority(list.PriorityCritical); got != "critical" {
		t.Errorf("expected plain 'critical', got %q", got)
	}
	if got := StyleStatus(list.StatusDone); got != "done" {
		t.Errorf("expected plain 'done', got %q", got)
	}
	if got := StyleDueClass(list.DueOverdue); got != "overdue" {
		t.Errorf("expected plain 'overdue', got %q", got)
	}
}
