package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"

	"github.com/jfaure/tasklist/list"
)

// ItemData represents the data used to render the TOML template.
type ItemData struct {
	// IsUpdate is true when editing an existing item.
	IsUpdate bool
	// ID is the item id (only for updates).
	ID uint64
	// Title is the item title.
	Title string
	// Priority is the item priority (low, medium, high, critical).
	Priority string
	// Status is the item status (only for updates).
	Status string
	// Due is the due date as YYYY-MM-DD, empty for none.
	Due string
	// Description is the item description.
	Description string
}

// DefaultAddData returns ItemData pre-filled for creating a new item.
func DefaultAddData(defaultPriority list.Priority) ItemData {
	return ItemData{
		Priority: string(defaultPriority),
	}
}

// DataFromItem creates ItemData from an existing item for editing.
func DataFromItem(it *list.Item) ItemData {
	data := ItemData{
		IsUpdate:    true,
		ID:          it.ID,
		Title:       it.Title,
		Priority:    string(it.Priority),
		Status:      string(it.Status),
		Description: it.Description,
	}
	if it.DueDate != nil {
		data.Due = it.DueDate.String()
	}
	return data
}

var itemTemplate = template.Must(template.New("item").Parse(
	`title = {{ printf "%q" .Title }}
priority = {{ printf "%q" .Priority }} # low, medium, high, critical
due = {{ printf "%q" .Due }} # YYYY-MM-DD, leave empty for no due date
{{- if .IsUpdate }}
status = {{ printf "%q" .Status }} # todo, in_progress, waiting, done
{{- end }}
---
{{ .Description }}
`))

// RenderItemTOML renders the item data as editable text: TOML frontmatter
// followed by a "---" separator and the free-form description body.
func RenderItemTOML(data ItemData) (string, error) {
	var buf bytes.Buffer
	if err := itemTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedItem represents the parsed result from the editor output.
type ParsedItem struct {
	Title       string  `toml:"title"`
	Priority    string  `toml:"priority"`
	Due         string  `toml:"due"`
	Status      *string `toml:"status"`
	Description string  `toml:"-"`
}

// ParseItemTOML parses the edited content back into item fields.
func ParseItemTOML(content string) (*ParsedItem, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedItem
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Description = strings.TrimRight(strings.TrimLeft(body, "\n"), "\n")

	if err := list.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}
	priority, err := list.ParsePriority(parsed.Priority)
	if err != nil {
		return nil, err
	}
	parsed.Priority = string(priority)

	parsed.Due = strings.TrimSpace(parsed.Due)
	if parsed.Due != "" {
		if _, err := list.ParseDate(parsed.Due); err != nil {
			return nil, err
		}
	}

	if parsed.Status != nil {
		status, err := list.ParseStatus(*parsed.Status)
		if err != nil {
			return nil, err
		}
		normalized := string(status)
		parsed.Status = &normalized
	}

	return &parsed, nil
}

// DueDate returns the parsed due date, or nil when the field was left empty.
func (p *ParsedItem) DueDate() *list.Date {
	if p.Due == "" {
		return nil
	}
	date, err := list.ParseDate(p.Due)
	if err != nil {
		return nil
	}
	return &date
}

// ToAddOptions converts the parsed item to list.AddOptions.
func (p *ParsedItem) ToAddOptions() list.AddOptions {
	opts := list.AddOptions{
		Description: p.Description,
		Priority:    list.Priority(p.Priority),
		DueDate:     p.DueDate(),
	}
	if p.Status != nil {
		opts.Status = list.Status(*p.Status)
	}
	return opts
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

// EditItem renders the item data into a temp file, opens the editor on it,
// and parses the result.
func EditItem(data ItemData, editorOverride string) (*ParsedItem, error) {
	content, err := RenderItemTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "tl-item-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath, editorOverride); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseItemTOML(string(edited))
}
