package ui

import (
	"time"

	"github.com/jfaure/tasklist/list"
)

// FormatDate returns the table representation of an optional due date.
func FormatDate(date *list.Date) string {
	if date == nil {
		return "-"
	}
	return date.String()
}

// FormatTimestamp renders a timestamp for the detail view.
func FormatTimestamp(value time.Time) string {
	return value.Format("2006-01-02 15:04:05")
}
