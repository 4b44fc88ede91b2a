package grid

import (
	"time"
)

// GridSize is the fixed number of cells in a month view: 6 rows of 7 days.
// The grid is never truncated, even for months that would fit in 5 rows.
const GridSize = 42

// DaysInWeek is the length of a week view window.
const DaysInWeek = 7

// Origin classifies a grid cell's month relative to the displayed month.
type Origin string

const (
	OriginPrev    Origin = "prev"
	OriginCurrent Origin = "current"
	OriginNext    Origin = "next"
)

// Day is a single cell of the month grid.
type Day struct {
	DayOfMonth int
	Origin     Origin
	Date       time.Time
}

// MonthGrid returns the 42 cells of the month view containing ref. Only
// ref's year and month are significant. Leading cells come from the tail of
// the previous month (one per weekday before the 1st, week starting on
// Sunday), then one cell per day of the month, then next-month cells fill
// the remainder. AddDate carries the December/January rollover, so adjacent
// months resolve to the correct year on both ends.
func MonthGrid(ref time.Time) []Day {
	firstOfMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()
	leading := int(firstOfMonth.Weekday())

	days := make([]Day, 0, GridSize)

	for i := leading; i > 0; i-- {
		date := firstOfMonth.AddDate(0, 0, -i)
		days = append(days, Day{DayOfMonth: date.Day(), Origin: OriginPrev, Date: date})
	}

	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(ref.Year(), ref.Month(), d, 0, 0, 0, 0, ref.Location())
		days = append(days, Day{DayOfMonth: d, Origin: OriginCurrent, Date: date})
	}

	nextMonth := firstOfMonth.AddDate(0, 1, 0)
	for d := 1; len(days) < GridSize; d++ {
		date := time.Date(nextMonth.Year(), nextMonth.Month(), d, 0, 0, 0, 0, ref.Location())
		days = append(days, Day{DayOfMonth: d, Origin: OriginNext, Date: date})
	}

	return days
}

// Week returns the 7-day window containing ref, from the Sunday on or
// before ref through the following Saturday. Month and year boundaries
// roll over naturally.
func Week(ref time.Time) []time.Time {
	startOfWeek := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()).
		AddDate(0, 0, -int(ref.Weekday()))

	dates := make([]time.Time, 0, DaysInWeek)
	for i := 0; i < DaysInWeek; i++ {
		dates = append(dates, startOfWeek.AddDate(0, 0, i))
	}
	return dates
}
