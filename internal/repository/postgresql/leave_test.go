package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/interntrack/interntrack-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateDecisionIsOneWay(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	truncateAll(t, ctx, db)

	intern := createTestIntern(t, ctx, db, "Sari", "sari")
	repo := NewLeaveRequestRepository(db)

	start := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	req, err := repo.Create(ctx, leave.LeaveRequest{
		UserID:    intern.ID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 1),
		Reason:    "family matter",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveStatusPending, req.Status)

	require.NoError(t, repo.UpdateDecision(ctx, req.ID, leave.LeaveStatusApproved, nil))

	// The write matches PENDING rows only, so a second decision cannot
	// overwrite the first, whichever way it decides.
	err = repo.UpdateDecision(ctx, req.ID, leave.LeaveStatusRejected, nil)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyDecided)
	err = repo.UpdateDecision(ctx, req.ID, leave.LeaveStatusApproved, nil)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyDecided)

	decided, err := repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveStatusApproved, decided.Status)
}

func TestUpdateDecisionMissingRequest(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	truncateAll(t, ctx, db)

	repo := NewLeaveRequestRepository(db)
	err := repo.UpdateDecision(ctx, "00000000-0000-0000-0000-000000000000", leave.LeaveStatusApproved, nil)
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}
