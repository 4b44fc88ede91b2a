package event

import (
	"github.com/daygrid/daygrid/pkg/category"
)

// Cadence is the recurrence frequency of an event.
type Cadence string

const (
	CadenceNone   Cadence = "none"
	CadenceDaily  Cadence = "daily"
	CadenceWeekly Cadence = "weekly"
)

// NormalizeCadence maps any unrecognized cadence value to CadenceNone, so
// unexpected form state never triggers an expansion.
func NormalizeCadence(c Cadence) Cadence {
	switch c {
	case CadenceDaily, CadenceWeekly:
		return c
	default:
		return CadenceNone
	}
}

// Event is a single dated calendar entry. ID is unique across the whole
// store, including occurrences derived by recurrence expansion (derived ids
// embed the occurrence's date key). StartTime and EndTime are wall-clock
// "HH:MM" strings and are only meaningful when IsAllDay is false.
type Event struct {
	ID          string
	Title       string
	Description string
	StartTime   string
	EndTime     string
	IsAllDay    bool
	Category    category.Category
	Recurring   Cadence
}
