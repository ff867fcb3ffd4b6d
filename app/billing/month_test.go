package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthRange(t *testing.T) {
	start, end, err := MonthRange("2025-09")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthRangeLeapFebruary(t *testing.T) {
	_, end, err := MonthRange("2024-02")
	require.NoError(t, err)
	assert.Equal(t, 29, end.Day())

	_, end, err = MonthRange("2025-02")
	require.NoError(t, err)
	assert.Equal(t, 28, end.Day())
}

func TestMonthRangeInvalid(t *testing.T) {
	for _, month := range []string{"", "2025", "2025-13", "09-2025", "abc"} {
		_, _, err := MonthRange(month)
		assert.Error(t, err, "month %q", month)
	}
}

func TestNormalizeMonth(t *testing.T) {
	assert.Equal(t, "2025-09", NormalizeMonth("2025-09"))

	// Empty and malformed input falls back to the current month.
	assert.Equal(t, CurrentMonth(), NormalizeMonth(""))
	assert.Equal(t, CurrentMonth(), NormalizeMonth("2025-13"))
	assert.Equal(t, CurrentMonth(), NormalizeMonth("not-a-month"))
}
