package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var wib = time.FixedZone("WIB", 7*3600)

func TestSecondsIntoDay(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{"midnight", time.Date(2026, 3, 2, 0, 0, 0, 0, wib), 0},
		{"work start", time.Date(2026, 3, 2, 8, 0, 0, 0, wib), 8 * 3600},
		{"one past work start", time.Date(2026, 3, 2, 8, 0, 1, 0, wib), 8*3600 + 1},
		{"noon", time.Date(2026, 3, 2, 12, 0, 0, 0, wib), 12 * 3600},
		{"end of day", time.Date(2026, 3, 2, 23, 59, 59, 0, wib), 24*3600 - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SecondsIntoDay(tt.t))
		})
	}
}

func TestDateOfTruncatesToMidnight(t *testing.T) {
	afternoon := time.Date(2026, 3, 2, 15, 42, 7, 123, wib)
	midnight := DateOf(afternoon)

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, wib), midnight)
	assert.Equal(t, wib, midnight.Location())
}

func TestSameDate(t *testing.T) {
	morning := time.Date(2026, 3, 2, 7, 0, 0, 0, wib)
	evening := time.Date(2026, 3, 2, 22, 0, 0, 0, wib)
	nextDay := time.Date(2026, 3, 3, 0, 0, 0, 0, wib)

	assert.True(t, SameDate(morning, evening))
	assert.False(t, SameDate(morning, nextDay))

	// 01:00 WIB is still the previous day in UTC; comparison follows the
	// first argument's location.
	early := time.Date(2026, 3, 2, 1, 0, 0, 0, wib)
	assert.True(t, SameDate(early, early.UTC()))
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2026, 3, 2, 8, 0, 0, 0, wib)
	c := NewFixed(instant)

	assert.Equal(t, instant, c.Now())
	assert.Equal(t, wib, c.Location())
}
