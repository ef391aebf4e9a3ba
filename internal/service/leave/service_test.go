package leave

import (
	"context"
	"testing"
	"time"

	"github.com/interntrack/interntrack-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLeaveRepo is an in-memory leave.LeaveRequestRepository.
type fakeLeaveRepo struct {
	requests       map[string]leave.LeaveRequest
	deleted        []string
	beforeDecision func() // runs at the top of UpdateDecision
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	request.ID = "leave-" + request.UserID
	request.Status = leave.LeaveStatusPending
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	if req, ok := f.requests[id]; ok {
		return req, nil
	}
	return leave.LeaveRequest{}, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) ListByUser(ctx context.Context, userID string, status *leave.LeaveStatus) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for _, req := range f.requests {
		if req.UserID == userID && (status == nil || req.Status == *status) {
			requests = append(requests, req)
		}
	}
	return requests, nil
}

func (f *fakeLeaveRepo) List(ctx context.Context, status *leave.LeaveStatus) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for _, req := range f.requests {
		if status == nil || req.Status == *status {
			requests = append(requests, req)
		}
	}
	return requests, nil
}

func (f *fakeLeaveRepo) UpdateDecision(ctx context.Context, id string, status leave.LeaveStatus, note *string) error {
	if f.beforeDecision != nil {
		f.beforeDecision()
	}
	req, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveNotFound
	}
	if req.Status != leave.LeaveStatusPending {
		return leave.ErrLeaveAlreadyDecided
	}
	req.Status = status
	req.DecisionNote = note
	f.requests[id] = req
	return nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.requests[id]; !ok {
		return leave.ErrLeaveNotFound
	}
	delete(f.requests, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeLeaveRepo) HasApprovedLeaveCovering(ctx context.Context, userID string, date time.Time) (bool, error) {
	return false, nil
}

func (f *fakeLeaveRepo) CountPending(ctx context.Context) (int, error) {
	count := 0
	for _, req := range f.requests {
		if req.Status == leave.LeaveStatusPending {
			count++
		}
	}
	return count, nil
}

func seedRequest(repo *fakeLeaveRepo, id, userID string, status leave.LeaveStatus, days int) {
	start := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	repo.requests[id] = leave.LeaveRequest{
		ID:        id,
		UserID:    userID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, days-1),
		Reason:    "family matter",
		Status:    status,
	}
}

func TestDeductedBalanceFloorsAtZero(t *testing.T) {
	tests := []struct {
		name    string
		balance int
		days    int
		want    int
	}{
		{"normal deduction", 12, 3, 9},
		{"exact depletion", 3, 3, 0},
		{"over-length request", 2, 5, 0},
		{"single day", 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deductedBalance(tt.balance, tt.days))
		})
	}
}

func TestRejectIsFinal(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(nil, repo, nil)
	seedRequest(repo, "leave-1", "intern-1", leave.LeaveStatusPending, 2)

	note := "short staffed that week"
	require.NoError(t, svc.Reject(context.Background(), "leave-1", &note))

	req := repo.requests["leave-1"]
	assert.Equal(t, leave.LeaveStatusRejected, req.Status)
	require.NotNil(t, req.DecisionNote)
	assert.Equal(t, note, *req.DecisionNote)

	// A second decision on the same request is refused.
	err := svc.Reject(context.Background(), "leave-1", nil)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyDecided)
}

func TestRejectLosesRaceToApproval(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(nil, repo, nil)
	seedRequest(repo, "leave-1", "intern-1", leave.LeaveStatusPending, 2)

	// An approval lands between the service's PENDING read and its write.
	// The conditional write refuses to overwrite the decided state.
	repo.beforeDecision = func() {
		req := repo.requests["leave-1"]
		req.Status = leave.LeaveStatusApproved
		repo.requests["leave-1"] = req
	}

	err := svc.Reject(context.Background(), "leave-1", nil)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyDecided)
	assert.Equal(t, leave.LeaveStatusApproved, repo.requests["leave-1"].Status)
}

func TestRejectAlreadyApproved(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(nil, repo, nil)
	seedRequest(repo, "leave-1", "intern-1", leave.LeaveStatusApproved, 2)

	err := svc.Reject(context.Background(), "leave-1", nil)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyDecided)
	assert.Equal(t, leave.LeaveStatusApproved, repo.requests["leave-1"].Status)
}

func TestDeleteMineOwnershipAndState(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(nil, repo, nil)

	seedRequest(repo, "leave-1", "intern-1", leave.LeaveStatusPending, 2)
	seedRequest(repo, "leave-2", "intern-1", leave.LeaveStatusApproved, 2)

	err := svc.DeleteMine(context.Background(), "intern-2", "leave-1")
	assert.ErrorIs(t, err, leave.ErrNotRequestOwner)

	err = svc.DeleteMine(context.Background(), "intern-1", "leave-2")
	assert.ErrorIs(t, err, leave.ErrNotPending)

	require.NoError(t, svc.DeleteMine(context.Background(), "intern-1", "leave-1"))
	assert.NotContains(t, repo.requests, "leave-1")
}

func TestCreateRequestValidatesRange(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(nil, repo, nil)

	_, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
		UserID:    "intern-1",
		StartDate: "2026-03-12",
		EndDate:   "2026-03-10",
		Reason:    "trip",
	})
	require.Error(t, err)
	assert.Empty(t, repo.requests)
}

func TestCreateRequestStartsPending(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(nil, repo, nil)

	result, err := svc.CreateRequest(context.Background(), leave.CreateLeaveRequest{
		UserID:    "intern-1",
		StartDate: "2026-03-10",
		EndDate:   "2026-03-12",
		Reason:    "trip",
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusPending), result.Status)
	assert.Equal(t, 3, result.Days)
}
