package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordResponseRendersOrgWallTime(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)

	// The driver hands back instants in UTC; 01:00 UTC is 08:00 in WIB.
	checkIn := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)
	rec := Record{
		ID:          "rec-1",
		UserID:      "intern-1",
		Date:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		CheckInTime: &checkIn,
		Status:      StatusPresent,
		CreatedAt:   checkIn,
	}

	resp := ToRecordResponse(rec, wib)
	require.NotNil(t, resp.CheckInTime)
	assert.Equal(t, "08:00:00", *resp.CheckInTime)
	assert.Equal(t, "2026-03-02 08:00:00", resp.CreatedAt)

	// The calendar date is formatted as stored, never shifted.
	assert.Equal(t, "2026-03-02", resp.Date)
}

func TestRecordResponseWithoutCheckIn(t *testing.T) {
	rec := Record{
		ID:     "rec-2",
		UserID: "intern-1",
		Date:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Status: StatusAbsent,
	}

	resp := ToRecordResponse(rec, nil)
	assert.Nil(t, resp.CheckInTime)
	assert.Equal(t, "ABSENT", resp.Status)
}
