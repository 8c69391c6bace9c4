package main

import (
	"fmt"
	"strconv"

	"github.com/jfaure/tasklist/internal/ui"
	"github.com/jfaure/tasklist/list"
)

var itemTableHeaders = []string{"ID", "PRI", "STATUS", "DUE", "WHEN", "TITLE"}

func printItemTable(items []list.Item, today list.Date) {
	if len(items) == 0 {
		fmt.Println("No items.")
		return
	}
	fmt.Print(formatItemTable(items, today))
}

func formatItemTable(items []list.Item, today list.Date) string {
	builder := ui.NewTableBuilder(itemTableHeaders, len(items))
	for _, item := range items {
		builder.AddRow([]string{
			strconv.FormatUint(item.ID, 10),
			ui.StylePriority(item.Priority),
			ui.StyleStatus(item.Status),
			ui.FormatDate(item.DueDate),
			ui.StyleDueClass(list.ClassifyDue(today, item)),
			ui.TruncateTableCell(item.Title),
		})
	}
	return builder.String()
}
