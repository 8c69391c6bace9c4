package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/jfaure/tasklist/internal/markdown"
	"github.com/jfaure/tasklist/internal/ui"
	"github.com/jfaure/tasklist/list"
)

const detailFallbackWidth = 80

func printItemDetail(item list.Item, today list.Date) {
	fmt.Printf("#%d %s\n", item.ID, item.Title)
	fmt.Printf("priority: %s\n", ui.StylePriority(item.Priority))
	fmt.Printf("status:   %s\n", ui.StyleStatus(item.Status))

	if item.DueDate != nil {
		fmt.Printf("due:      %s (%s)\n", item.DueDate, ui.DueClassLabel(list.ClassifyDue(today, item)))
	}
	fmt.Printf("created:  %s\n", ui.FormatTimestamp(item.CreatedAt))
	if item.CompletedAt != nil {
		fmt.Printf("completed: %s\n", ui.FormatTimestamp(*item.CompletedAt))
	}

	if strings.TrimSpace(item.Description) == "" {
		return
	}

	fmt.Println()
	width := detailWidth()
	if rendered := markdown.Render(width, item.Description); rendered != nil {
		fmt.Printf("%s\n", rendered)
		return
	}
	fmt.Println(wordwrap.String(item.Description, width))
}

func detailWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return detailFallbackWidth
}
