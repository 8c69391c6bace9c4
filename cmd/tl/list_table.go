package main

import (
	"strconv"

	"github.com/jfaure/tasklist/internal/ui"
	"github.com/jfaure/tasklist/liststore"
)

var listTableHeaders = []string{"NAME", "ITEMS", "UPDATED"}

// formatListTable loads each list to report its size and modification time.
// Unreadable lists are skipped with a warning rather than failing the whole
// listing.
func formatListTable(store *liststore.Store, identifiers []string) string {
	builder := ui.NewTableBuilder(listTableHeaders, len(identifiers))
	for _, identifier := range identifiers {
		l, err := store.Load(identifier)
		if err != nil {
			logger.Warn("skipping unreadable list", "list", identifier, "err", err)
			continue
		}
		builder.AddRow([]string{
			ui.TruncateTableCell(l.Name),
			strconv.Itoa(l.Len()),
			ui.FormatTimestamp(l.LastModified),
		})
	}
	return builder.String()
}
