package ui

import (
	"strings"
	"testing"
)

func TestFormatTable_Alignment(t *testing.T) {
	got := FormatTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"1", "Milk"},
			{"12", "Eggs and bacon"},
		},
	)

	want := "ID  TITLE\n" +
		"1   Milk\n" +
		"12  Eggs and bacon\n"
	if got != want {
		t.Errorf("table output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatTable_NormalizesNewlinesInCells(t *testing.T) {
	got := FormatTable([]string{"TITLE"}, [][]string{{"two\nlines"}})
	if strings.Count(got, "\n") != 2 {
		t.Errorf("expected cell newlines collapsed, got %q", got)
	}
	if !strings.Contains(got, "two lines") {
		t.Errorf("expected 'two lines', got %q", got)
	}
}

func TestFormatTable_IgnoresANSIForWidth(t *testing.T) {
	styled := "\x1b[1m\x1b[36mab\x1b[0mcd"
	got := FormatTable([]string{"ID", "X"}, [][]string{{styled, "y"}})

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// Visible width of the styled cell is 4, so "y" starts at the same
	// column as "X" does after the 2-char header plus padding.
	if !strings.HasSuffix(lines[1], "y") {
		t.Errorf("unexpected row: %q", lines[1])
	}
	if displayWidth(styled) != 4 {
		t.Errorf("expected visible width 4, got %d", displayWidth(styled))
	}
}

func TestTruncateTableCell(t *testing.T) {
	short := "short title"
	if got := TruncateTableCell(short); got != short {
		t.Errorf("expected short cell unchanged, got %q", got)
	}

	long := strings.Repeat("x", 80)
	got := TruncateTableCell(long)
	if displayWidth(got) != tableCellMaxWidth {
		t.Errorf("expected width %d, got %d (%q)", tableCellMaxWidth, displayWidth(got), got)
	}
	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
}

func TestTableBuilder(t *testing.T) {
	builder := NewTableBuilder([]string{"A"}, 2)
	builder.AddRow([]string{"1"})
	builder.AddRow([]string{"2"})

	got := builder.String()
	if got != "A\n1\n2\n" {
		t.Errorf("unexpected output: %q", got)
	}
}
