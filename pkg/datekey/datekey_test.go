package datekey

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	t.Run("zero-pads month and day", func(t *testing.T) {
		key := Encode(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local))
		assert.Equal(t, Key("2024-03-05"), key)
	})

	t.Run("ignores time of day", func(t *testing.T) {
		morning := time.Date(2024, time.July, 14, 0, 0, 1, 0, time.Local)
		night := time.Date(2024, time.July, 14, 23, 59, 59, 0, time.Local)
		assert.Equal(t, Encode(morning), Encode(night))
	})

	t.Run("distinct days get distinct keys", func(t *testing.T) {
		a := Encode(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local))
		b := Encode(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local))
		assert.NotEqual(t, a, b)
	})
}

func TestKeyOrdering(t *testing.T) {
	dates := []time.Time{
		time.Date(2023, time.December, 31, 0, 0, 0, 0, time.Local),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local),
		time.Date(2024, time.January, 9, 0, 0, 0, 0, time.Local),
		time.Date(2024, time.January, 10, 0, 0, 0, 0, time.Local),
		time.Date(2024, time.October, 2, 0, 0, 0, 0, time.Local),
	}

	keys := make([]string, 0, len(dates))
	for _, d := range dates {
		keys = append(keys, Encode(d).String())
	}

	assert.True(t, sort.StringsAreSorted(keys), "lexicographic order must match chronological order: %v", keys)
}

func TestParse(t *testing.T) {
	t.Run("round-trips Encode output", func(t *testing.T) {
		original := Encode(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local))
		parsed, err := Parse(original.String())
		assert.NoError(t, err)
		assert.Equal(t, original, parsed)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := Parse("2024-13-01")
		assert.Error(t, err)

		_, err = Parse("not-a-date")
		assert.Error(t, err)
	})
}

func TestKeyTime(t *testing.T) {
	key := Key("2024-06-15")
	assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local), key.Time())
	assert.Equal(t, key, Encode(key.Time()))
}

func TestSameDay(t *testing.T) {
	base := time.Date(2024, time.May, 20, 9, 30, 0, 0, time.Local)

	assert.True(t, SameDay(base, time.Date(2024, time.May, 20, 23, 0, 0, 0, time.Local)))
	assert.False(t, SameDay(base, base.AddDate(0, 0, 1)))
	assert.False(t, SameDay(base, base.AddDate(1, 0, 0)))
}
