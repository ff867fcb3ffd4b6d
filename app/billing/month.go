package billing

import (
	"fmt"
	"time"
)

// MonthKeyLayout is the billing month key format, four-digit year and
// two-digit month.
const MonthKeyLayout = "2006-01"

// CurrentMonth returns today's billing month key.
func CurrentMonth() string {
	return time.Now().Format(MonthKeyLayout)
}

// MonthRange resolves a billing month key into its first and last calendar
// day. Month length and leap years come from time.Date normalization.
func MonthRange(month string) (start, end time.Time, err error) {
	t, err := time.Parse(MonthKeyLayout, month)
	if err != nil {
		return start, end, fmt.Errorf("invalid billing month %q: %w", month, err)
	}
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end, nil
}

// NormalizeMonth validates a billing month key, falling back to the current
// month on empty or malformed input.
func NormalizeMonth(month string) string {
	if month == "" {
		return CurrentMonth()
	}
	if _, _, err := MonthRange(month); err != nil {
		return CurrentMonth()
	}
	return month
}
