// Package datemath holds the calendar primitives the canvas is built on.
// Dates are civil days: every value returned here is midnight UTC.
package datemath

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const layout = "2006-01-02"

var reDateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Normalize drops the time-of-day and location, keeping the calendar day as
// seen in t's own location.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayDifference returns the number of whole calendar days from earlier to
// later. It is negative when later is before earlier.
func DayDifference(later, earlier time.Time) int {
	l := Normalize(later)
	e := Normalize(earlier)
	return int(l.Sub(e).Hours() / 24)
}

func AddDays(t time.Time, days int) time.Time {
	return Normalize(t).AddDate(0, 0, days)
}

// SameDay compares year, month and day only.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ParseDate parses YYYY-MM-DD. The literal "today" resolves against now.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if strings.EqualFold(s, "today") {
		return Normalize(now), nil
	}
	if !reDateOnly.MatchString(s) {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}
