package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysIsInclusive(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", date(2026, 3, 9), date(2026, 3, 9), 1},
		{"two days", date(2026, 3, 9), date(2026, 3, 10), 2},
		{"full week", date(2026, 3, 9), date(2026, 3, 15), 7},
		{"across month boundary", date(2026, 3, 30), date(2026, 4, 2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := LeaveRequest{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.want, req.Days())
		})
	}
}

func TestCoversIsInclusiveOnBothEnds(t *testing.T) {
	req := LeaveRequest{StartDate: date(2026, 3, 9), EndDate: date(2026, 3, 11)}

	assert.False(t, req.Covers(date(2026, 3, 8)))
	assert.True(t, req.Covers(date(2026, 3, 9)))
	assert.True(t, req.Covers(date(2026, 3, 10)))
	assert.True(t, req.Covers(date(2026, 3, 11)))
	assert.False(t, req.Covers(date(2026, 3, 12)))
}

func TestCoversIgnoresTimeOfDay(t *testing.T) {
	req := LeaveRequest{StartDate: date(2026, 3, 9), EndDate: date(2026, 3, 9)}

	afternoon := time.Date(2026, 3, 9, 15, 30, 0, 0, time.UTC)
	assert.True(t, req.Covers(afternoon))
}
