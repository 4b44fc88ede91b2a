package datekey

import (
	"fmt"
	"time"
)

// Key identifies a single calendar day in canonical "YYYY-MM-DD" form.
// Keys for distinct days are distinct, and lexicographic order on keys
// matches chronological order on days, so a Key is safe to use both as a
// map key and as a sort key.
type Key string

// Encode returns the Key for the calendar day containing t, using t's
// wall-clock date. Time of day is discarded.
func Encode(t time.Time) Key {
	return Key(fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day()))
}

// Parse converts a "YYYY-MM-DD" string back into a Key, validating that it
// names a real calendar day. It is the exact inverse of Encode.
func Parse(s string) (Key, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date key %q: %w", s, err)
	}
	return Encode(t), nil
}

// Time returns midnight (local time) of the day the key names.
func (k Key) Time() time.Time {
	t, err := time.ParseInLocation("2006-01-02", string(k), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (k Key) String() string {
	return string(k)
}

// Before reports whether k names an earlier day than other.
func (k Key) Before(other Key) bool {
	return k < other
}

// SameDay reports whether a and b fall on the same calendar day,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
