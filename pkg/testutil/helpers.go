// Package testutil provides common utility functions for testing.
package testutil

import (
	"time"

	"github.com/iwvelando/loan-schedule/pkg/loans"
)

// FindEntry finds the entry for a 1-based month in a schedule.
// Returns a pointer to the entry if found, nil otherwise.
func FindEntry(schedule loans.Schedule, month int) *loans.ScheduleEntry {
	for i := range schedule {
		if schedule[i].Month == month {
			return &schedule[i]
		}
	}
	return nil
}

// Date builds a UTC midnight date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FixedClock returns a clock that always reports now.
func FixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}
