package closure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJapanHolidaysNewYear(t *testing.T) {
	name, ok := JapanHolidays{}.Holiday(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, ok, "New Year's Day is always a holiday")
	assert.NotEmpty(t, name)
}

func TestJapanHolidaysOrdinaryDay(t *testing.T) {
	// A plain mid-June weekday; June has no national holiday.
	_, ok := JapanHolidays{}.Holiday(time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestJapanHolidayDatesSortedWithinYears(t *testing.T) {
	dates := JapanHolidayDates(2026, 2027)
	require.NotEmpty(t, dates)
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i-1].Date.Before(dates[i].Date))
	}
	for _, d := range dates {
		assert.Contains(t, []int{2026, 2027}, d.Date.Year())
	}
}
