// Package streak computes consecutive-day completion streaks for habits.
package streak

import (
	"time"
)

// DateLayout is the calendar-day key format used in a habit's completion map.
const DateLayout = "2006-01-02"

// Compute counts the consecutive UTC calendar days ending at reference for
// which completions holds true. The reference day is always the first day
// checked, so a reference day that is absent or false yields 0. Missing keys
// are treated the same as false ones.
func Compute(completions map[string]bool, reference time.Time) int {
	day := reference.UTC()
	count := 0
	for completions[day.Format(DateLayout)] {
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}

// ComputeForKey is Compute for a "YYYY-MM-DD" key. An unparsable key yields 0.
func ComputeForKey(completions map[string]bool, dateKey string) int {
	day, err := time.ParseInLocation(DateLayout, dateKey, time.UTC)
	if err != nil {
		return 0
	}
	return Compute(completions, day)
}
