package grid

import (
	"testing"
	"time"

	"github.com/daygrid/daygrid/pkg/datekey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countOrigin(days []Day, origin Origin) int {
	count := 0
	for _, d := range days {
		if d.Origin == origin {
			count++
		}
	}
	return count
}

func TestMonthGridSize(t *testing.T) {
	// Every month of a leap year and a common year fills exactly 42 cells.
	for _, year := range []int{2023, 2024} {
		for month := time.January; month <= time.December; month++ {
			days := MonthGrid(time.Date(year, month, 15, 0, 0, 0, 0, time.Local))
			assert.Len(t, days, GridSize, "%v %d", month, year)
		}
	}
}

func TestMonthGridCurrentDayCount(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		days  int
	}{
		{"31-day month", 2024, time.March, 31},
		{"30-day month", 2024, time.April, 30},
		{"leap February", 2024, time.February, 29},
		{"common February", 2023, time.February, 28},
		{"century leap year", 2000, time.February, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := MonthGrid(time.Date(tt.year, tt.month, 1, 0, 0, 0, 0, time.Local))
			assert.Equal(t, tt.days, countOrigin(days, OriginCurrent))
		})
	}
}

func TestMonthGridLeadingCells(t *testing.T) {
	// March 2024 starts on a Friday, so five trailing February days lead the grid.
	days := MonthGrid(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local))

	require.Equal(t, 5, countOrigin(days, OriginPrev))
	assert.Equal(t, OriginPrev, days[0].Origin)
	assert.Equal(t, 25, days[0].DayOfMonth)
	assert.Equal(t, time.February, days[0].Date.Month())
	assert.Equal(t, 29, days[4].DayOfMonth)
	assert.Equal(t, 1, days[5].DayOfMonth)
	assert.Equal(t, OriginCurrent, days[5].Origin)
}

func TestMonthGridYearRollover(t *testing.T) {
	t.Run("December trailing cells land in next January", func(t *testing.T) {
		days := MonthGrid(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.Local))
		last := days[len(days)-1]
		assert.Equal(t, OriginNext, last.Origin)
		assert.Equal(t, time.January, last.Date.Month())
		assert.Equal(t, 2025, last.Date.Year())
	})

	t.Run("January leading cells land in previous December", func(t *testing.T) {
		days := MonthGrid(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local))
		first := days[0]
		require.Equal(t, OriginPrev, first.Origin)
		assert.Equal(t, time.December, first.Date.Month())
		assert.Equal(t, 2023, first.Date.Year())
		assert.Equal(t, 31, first.DayOfMonth)
	})
}

func TestMonthGridDatesAreConsecutive(t *testing.T) {
	days := MonthGrid(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local))

	assert.Equal(t, time.Sunday, days[0].Date.Weekday())
	for i := 1; i < len(days); i++ {
		assert.Equal(t, days[i-1].Date.AddDate(0, 0, 1), days[i].Date, "cell %d", i)
	}
}

func TestMonthGridDayOfMonthMatchesDate(t *testing.T) {
	days := MonthGrid(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local))
	for _, d := range days {
		assert.Equal(t, d.Date.Day(), d.DayOfMonth)
	}
}

func TestWeek(t *testing.T) {
	t.Run("starts on Sunday and contains the reference date", func(t *testing.T) {
		ref := time.Date(2024, time.March, 13, 14, 30, 0, 0, time.Local) // a Wednesday
		dates := Week(ref)

		require.Len(t, dates, DaysInWeek)
		assert.Equal(t, time.Sunday, dates[0].Weekday())
		assert.Equal(t, time.Saturday, dates[6].Weekday())

		found := false
		for _, d := range dates {
			if datekey.SameDay(d, ref) {
				found = true
			}
		}
		assert.True(t, found, "week window must contain the reference date")
	})

	t.Run("consecutive entries differ by one day", func(t *testing.T) {
		dates := Week(time.Date(2024, time.August, 1, 0, 0, 0, 0, time.Local))
		for i := 1; i < len(dates); i++ {
			assert.Equal(t, dates[i-1].AddDate(0, 0, 1), dates[i])
		}
	})

	t.Run("reference on a Sunday anchors the window at itself", func(t *testing.T) {
		sunday := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
		dates := Week(sunday)
		assert.True(t, datekey.SameDay(dates[0], sunday))
	})

	t.Run("rolls across the year boundary", func(t *testing.T) {
		dates := Week(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.Local))
		assert.Equal(t, time.Date(2024, time.December, 29, 0, 0, 0, 0, time.Local), dates[0])
		assert.Equal(t, time.Date(2025, time.January, 4, 0, 0, 0, 0, time.Local), dates[6])
	})
}
