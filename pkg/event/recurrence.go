package event

import (
	"time"
)

// maxOccurrences caps recurrence expansion. The cap is a policy constant,
// not configuration: a recurring event materializes exactly this many
// derived occurrences beyond the seed.
const maxOccurrences = 10

// occurrenceDates returns the dates of the derived occurrences for a seed
// on seedDate with the given cadence: seed+i days for daily, seed+7i days
// for weekly, i = 1..maxOccurrences. Any other cadence yields nothing.
func occurrenceDates(seedDate time.Time, cadence Cadence) []time.Time {
	step := 0
	switch NormalizeCadence(cadence) {
	case CadenceDaily:
		step = 1
	case CadenceWeekly:
		step = 7
	default:
		return nil
	}

	dates := make([]time.Time, 0, maxOccurrences)
	for i := 1; i <= maxOccurrences; i++ {
		dates = append(dates, seedDate.AddDate(0, 0, i*step))
	}
	return dates
}
