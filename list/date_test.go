package list

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-06-10")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if date.Year != 2024 || date.Month != time.June || date.Day != 10 {
		t.Errorf("expected 2024-06-10, got %v", date)
	}

	for _, input := range []string{"", "tomorrow", "06/10/2024", "2024-13-01"} {
		if _, err := ParseDate(input); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("input %q: expected ErrInvalidDate, got %v", input, err)
		}
	}
}

func TestDate_DaysUntil(t *testing.T) {
	today := NewDate(2024, time.June, 10)

	cases := []struct {
		name string
		date Date
		want int
	}{
		{"same day", NewDate(2024, time.June, 10), 0},
		{"tomorrow", NewDate(2024, time.June, 11), 1},
		{"yesterday", NewDate(2024, time.June, 9), -1},
		{"across month boundary", NewDate(2024, time.July, 1), 21},
		{"across year boundary", NewDate(2025, time.January, 1), 205},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.date.DaysUntil(today); got != tc.want {
				t.Errorf("DaysUntil = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	date := NewDate(2024, time.June, 10)

	data, err := json.Marshal(date)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-06-10"` {
		t.Errorf(`expected "2024-06-10", got %s`, data)
	}

	var decoded Date
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Equal(date) {
		t.Errorf("round trip changed date: %v != %v", decoded, date)
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2024, time.June, 10, 23, 59, 0, 0, time.UTC)
	date := Today(now)
	if date != NewDate(2024, time.June, 10) {
		t.Errorf("expected 2024-06-10, got %v", date)
	}
}

func TestDate_BeforeAndString(t *testing.T) {
	earlier := NewDate(2024, time.June, 9)
	later := NewDate(2024, time.June, 10)

	if !earlier.Before(later) {
		t.Error("expected earlier.Before(later)")
	}
	if later.Before(earlier) {
		t.Error("expected !later.Before(earlier)")
	}
	if earlier.String() != "2024-06-09" {
		t.Errorf("expected '2024-06-09', got %q", earlier.String())
	}
}
