package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/jfaure/tasklist/list"
)

var (
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	highStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	todayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// StylePriority returns the priority value styled for table output.
func StylePriority(priority list.Priority) string {
	value := string(priority)
	if !ansiEnabled() {
		return value
	}
	switch priority {
	case list.PriorityCritical:
		return criticalStyle.Render(value)
	case list.PriorityHigh:
		return highStyle.Render(value)
	default:
		return value
	}
}

// StyleStatus returns the status value styled for table output.
func StyleStatus(status list.Status) string {
	value := string(status)
	if !ansiEnabled() {
		return value
	}
	if status == list.StatusDone {
		return doneStyle.Render(value)
	}
	return value
}

// StyleDueClass returns a display label for the due classification, styled
// when ANSI output is enabled. DueNone renders as a dash.
func StyleDueClass(class list.DueClass) string {
	label := DueClassLabel(class)
	if !ansiEnabled() {
		return label
	}
	switch class {
	case list.DueOverdue:
		return overdueStyle.Render(label)
	case list.DueToday, list.DueTomorrow:
		return todayStyle.Render(label)
	case list.DueScheduled:
		return mutedStyle.Render(label)
	default:
		return label
	}
}

// DueClassLabel returns the unstyled display label for a due class.
func DueClassLabel(class list.DueClass) string {
	switch class {
	case list.DueOverdue:
		return "overdue"
	case list.DueToday:
		return "today"
	case list.DueTomorrow:
		return "tomorrow"
	case list.DueSoon:
		return "soon"
	case list.DueScheduled:
		return "scheduled"
	default:
		return "-"
	}
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
