package utils

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday stays", time.Date(2024, 3, 4, 15, 30, 0, 0, time.UTC), time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
		{"thursday", time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC), time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
		{"sunday belongs to preceding monday", time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC), time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		if got := StartOfWeek(tc.in); !got.Equal(tc.want) {
			t.Errorf("%s: StartOfWeek(%s) = %s, want %s", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestAt(t *testing.T) {
	day := time.Date(2024, 3, 4, 23, 59, 0, 0, time.UTC)
	got := At(day, 7, 30)
	want := time.Date(2024, 3, 4, 7, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("At = %s, want %s", got, want)
	}
}

func TestParseFormatISODate(t *testing.T) {
	parsed, err := ParseISODate("2024-03-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatISODate(parsed) != "2024-03-04" {
		t.Fatalf("round trip failed: %s", FormatISODate(parsed))
	}

	if _, err := ParseISODate("04/03/2024"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestRelativeDayLabel(t *testing.T) {
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC) // Monday

	if got := RelativeDayLabel(now.Add(2*time.Hour), now); got != "Oggi" {
		t.Fatalf("expected Oggi, got %s", got)
	}
	if got := RelativeDayLabel(AddDays(now, 1), now); got != "Domani" {
		t.Fatalf("expected Domani, got %s", got)
	}
	if got := RelativeDayLabel(AddDays(now, 3), now); got != "Giovedì 07/03" {
		t.Fatalf("expected Giovedì 07/03, got %s", got)
	}
}

func TestAddWeeks(t *testing.T) {
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	if got := AddWeeks(start, 2); got.Day() != 18 {
		t.Fatalf("expected day 18, got %d", got.Day())
	}
	if got := AddWeeks(start, -1); got.Day() != 26 || got.Month() != time.February {
		t.Fatalf("expected Feb 26, got %s", got)
	}
}
