// Package datetime provides the calendar helpers used to stamp schedule
// entries with due dates and to measure loan progress.
package datetime

import (
	"strings"
	"time"

	"github.com/iwvelando/loan-schedule/pkg/constants"
)

const (
	// DateLayout is the format expected in config files and is also the output
	// date format.
	DateLayout = constants.DateLayout
)

// startDateLayouts are tried in order by ParseDate.
var startDateLayouts = []string{
	constants.DateLayout,
	constants.MonthLayout,
	time.RFC3339,
}

// MustParseDate parses a date string in DateLayout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseDate(date string) time.Time {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses a loan start date. The boolean is false when the value is
// empty or matches none of the accepted layouts; callers treat that as "no
// start date" rather than as an error.
func ParseDate(date string) (time.Time, bool) {
	trimmed := strings.TrimSpace(date)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AddMonths returns date moved forward by n calendar months. Days that do not
// exist in the target month roll over into the following month, so January 31
// plus one month is March 3 (or March 2 in a leap year).
func AddMonths(date time.Time, n int) time.Time {
	return date.AddDate(0, n, 0)
}

// MonthsBetween returns the number of calendar-month boundaries between from
// and to. Day of month is ignored: 2024-01-31 to 2024-02-01 counts as one.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()*constants.MonthsPerYear + int(to.Month())) -
		(from.Year()*constants.MonthsPerYear + int(from.Month()))
}

// FormatDate renders an optional date, using constants.MissingDate when the
// date is absent.
func FormatDate(date *time.Time) string {
	if date == nil {
		return constants.MissingDate
	}
	return date.Format(DateLayout)
}
