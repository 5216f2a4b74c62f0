// Package validation holds the slot validators and the per-intent rule
// chains that decide whether a partially-filled turn needs a re-prompt.
package validation

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Cities the bot currently records sessions for. "dummy" is kept as a
// test location the operators rely on.
// TODO: load this list from the table named by TABLE_NAME instead.
var validLocations = []string{
	"london", "leeds", "manchester", "tel aviv", "new york",
	"san francisco", "seattle", "stockholm", "dublin", "helsinki",
	"singapore", "dummy",
}

// TestTargets are the features selectable through the Testing intent.
var TestTargets = []string{"A", "B", "C"}

// IsValidLocation reports whether s names one of the cities the bot
// records sessions for. Matching is case-insensitive.
func IsValidLocation(s string) bool {
	s = strings.ToLower(s)
	for _, loc := range validLocations {
		if s == loc {
			return true
		}
	}
	return false
}

// ParseDate parses a user-supplied date, accepting both day-first and
// month-first orderings.
func ParseDate(s string) (time.Time, error) {
	return dateparse.ParseAny(s)
}

func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// IsFutureDate reports whether s parses to a calendar date strictly after
// today. An unparseable date is not in the future.
func IsFutureDate(s string, today time.Time) bool {
	d, err := ParseDate(s)
	if err != nil {
		return false
	}
	return dateOnly(d).After(dateOnly(today))
}

// WithinLastNDays reports whether s parses to a date strictly after today
// minus n days. A date exactly n days ago falls outside the window.
func WithinLastNDays(s string, today time.Time, n int) bool {
	d, err := ParseDate(s)
	if err != nil {
		return false
	}
	cutoff := dateOnly(today).AddDate(0, 0, -n)
	return dateOnly(d).After(cutoff)
}

// ParseScore converts a raw score slot to an int, tolerating values the
// platform sends as floats ("4.0").
func ParseScore(s string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// IsValidScore reports whether n is a score between 1 and 5.
func IsValidScore(n int) bool {
	return n >= 1 && n <= 5
}

// IsValidComments reports whether s is long enough to count as feedback.
func IsValidComments(s string) bool {
	return len(s) > 4
}

func IsValidTestTarget(s string) bool {
	for _, t := range TestTargets {
		if s == t {
			return true
		}
	}
	return false
}

// dateOnly strips the time-of-day and zone so comparisons are purely
// calendar-date comparisons.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
