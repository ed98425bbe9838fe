package datemath

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayDifference(t *testing.T) {
	if got := DayDifference(day(2024, 3, 10), day(2024, 3, 1)); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
	if got := DayDifference(day(2024, 3, 1), day(2024, 3, 10)); got != -9 {
		t.Fatalf("expected -9, got %d", got)
	}
	// Leap day is counted.
	if got := DayDifference(day(2024, 3, 1), day(2024, 2, 28)); got != 2 {
		t.Fatalf("expected 2 across leap day, got %d", got)
	}
}

func TestDayDifference_IgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2024, 1, 2, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC)
	if got := DayDifference(a, b); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestAddDays(t *testing.T) {
	got := AddDays(day(2024, 1, 30), 3)
	if !got.Equal(day(2024, 2, 2)) {
		t.Fatalf("expected 2024-02-02, got %s", got)
	}
	got = AddDays(time.Date(2024, 1, 30, 15, 0, 0, 0, time.UTC), -30)
	if !got.Equal(day(2023, 12, 31)) {
		t.Fatalf("expected 2023-12-31, got %s", got)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 5, 6, 1, 0, 0, 0, time.UTC)
	b := time.Date(2024, 5, 6, 22, 0, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Fatalf("expected same day")
	}
	if SameDay(a, b.AddDate(0, 0, 1)) {
		t.Fatalf("expected different days")
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2026, 10, 15, 13, 45, 0, 0, time.UTC)
	got, err := ParseDate("today", now)
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !got.Equal(day(2026, 10, 15)) {
		t.Fatalf("expected today normalized, got %s", got)
	}
	got, err = ParseDate(" 2024-02-29 ", now)
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if Format(got) != "2024-02-29" {
		t.Fatalf("unexpected date %s", Format(got))
	}
	for _, bad := range []string{"", "2024/02/29", "2023-02-29", "tomorrow"} {
		if _, err := ParseDate(bad, now); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
