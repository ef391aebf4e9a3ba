package attendance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/interntrack/interntrack-backend-go/internal/domain/attendance"
	"github.com/interntrack/interntrack-backend-go/internal/domain/leave"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests run against the WIB timezone the defaults assume.
var testLoc = time.FixedZone("WIB", 7*3600)

var testRules = Rules{
	WorkStartSeconds: 8 * 3600,
	CutoffSeconds:    12 * 3600,
}

func at(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, testLoc)
}

// fakeAttendanceRepo is an in-memory attendance.AttendanceRepository.
type fakeAttendanceRepo struct {
	mu          sync.Mutex
	records     map[string]attendance.Record // userID|date
	candidates  []attendance.Candidate
	absentErr   map[string]error // userID -> forced CreateAbsent error
	listGate    chan struct{}    // when set, ListCandidates blocks until closed
	listEntered chan struct{}    // signalled once ListCandidates is reached
	nextID      int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		records:   make(map[string]attendance.Record),
		absentErr: make(map[string]error),
	}
}

func recordKey(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := recordKey(record.UserID, record.Date)
	if _, exists := f.records[key]; exists {
		return attendance.Record{}, errors.New("duplicate key value violates unique constraint")
	}

	f.nextID++
	record.ID = fmt.Sprintf("rec-%d", f.nextID)
	record.CreatedAt = record.Date
	f.records[key] = record
	return record, nil
}

func (f *fakeAttendanceRepo) CreateAbsent(ctx context.Context, userID string, date time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.absentErr[userID]; err != nil {
		return false, err
	}

	key := recordKey(userID, date)
	if _, exists := f.records[key]; exists {
		return false, nil
	}

	f.nextID++
	f.records[key] = attendance.Record{
		ID:     fmt.Sprintf("rec-%d", f.nextID),
		UserID: userID,
		Date:   date,
		Status: attendance.StatusAbsent,
	}
	return true, nil
}

func (f *fakeAttendanceRepo) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if rec, ok := f.records[recordKey(userID, date)]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var records []attendance.Record
	for _, rec := range f.records {
		if rec.UserID == userID {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (f *fakeAttendanceRepo) ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]attendance.Record, error) {
	return f.ListByUser(ctx, userID, 0, 0)
}

func (f *fakeAttendanceRepo) List(ctx context.Context, limit, offset int) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListCandidates(ctx context.Context, date time.Time) ([]attendance.Candidate, error) {
	if f.listEntered != nil {
		f.listEntered <- struct{}{}
	}
	if f.listGate != nil {
		<-f.listGate
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var remaining []attendance.Candidate
	for _, c := range f.candidates {
		if _, exists := f.records[recordKey(c.UserID, date)]; !exists {
			remaining = append(remaining, c)
		}
	}
	return remaining, nil
}

func (f *fakeAttendanceRepo) SummaryForDate(ctx context.Context, date time.Time) (attendance.DaySummary, error) {
	return attendance.DaySummary{}, nil
}

func (f *fakeAttendanceRepo) StatsForUser(ctx context.Context, userID string) (attendance.UserStats, error) {
	return attendance.UserStats{}, nil
}

func (f *fakeAttendanceRepo) RosterForDate(ctx context.Context, date time.Time) ([]attendance.RosterEntry, error) {
	return nil, nil
}

// fakeLeaveRepo only answers the approved-leave predicate.
type fakeLeaveRepo struct {
	approved map[string]bool // userID|date
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{approved: make(map[string]bool)}
}

func (f *fakeLeaveRepo) approve(userID string, date time.Time) {
	f.approved[recordKey(userID, date)] = true
}

func (f *fakeLeaveRepo) HasApprovedLeaveCovering(ctx context.Context, userID string, date time.Time) (bool, error) {
	return f.approved[recordKey(userID, date)], nil
}

func (f *fakeLeaveRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) ListByUser(ctx context.Context, userID string, status *leave.LeaveStatus) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) List(ctx context.Context, status *leave.LeaveStatus) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) UpdateDecision(ctx context.Context, id string, status leave.LeaveStatus, note *string) error {
	return nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeLeaveRepo) CountPending(ctx context.Context) (int, error) {
	return 0, nil
}

// fakeFileService records uploads and deletes.
type fakeFileService struct {
	uploads int
	deleted []string
}

func (f *fakeFileService) UploadCheckInPhoto(ctx context.Context, userID string, date time.Time, content io.Reader, filename string) (string, error) {
	f.uploads++
	return fmt.Sprintf("attendance/%s/%s.jpg", date.Format("2006-01-02"), userID), nil
}

func (f *fakeFileService) DeletePhoto(ctx context.Context, path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

func (f *fakeFileService) PhotoURL(path string) string {
	return "http://localhost:8080/uploads/" + path
}

func newTestService(now time.Time) (attendance.AttendanceService, *fakeAttendanceRepo, *fakeLeaveRepo, *fakeFileService) {
	repo := newFakeAttendanceRepo()
	leaves := newFakeLeaveRepo()
	files := &fakeFileService{}
	svc := NewAttendanceService(repo, leaves, files, clock.NewFixed(now), testRules)
	return svc, repo, leaves, files
}

func photoRequest(userID string) attendance.CheckInRequest {
	return attendance.CheckInRequest{
		UserID:     userID,
		FileHeader: &multipart.FileHeader{Filename: "selfie.jpg", Size: 64 * 1024},
	}
}

func TestCheckInStatusThreshold(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want attendance.Status
	}{
		{"well before work start", at(2026, 3, 2, 7, 15, 0), attendance.StatusPresent},
		{"exactly at work start", at(2026, 3, 2, 8, 0, 0), attendance.StatusPresent},
		{"one second late", at(2026, 3, 2, 8, 0, 1), attendance.StatusLate},
		{"last second before cutoff", at(2026, 3, 2, 11, 59, 59), attendance.StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newTestService(tt.now)

			result, err := svc.CheckIn(context.Background(), photoRequest("intern-1"))
			require.NoError(t, err)
			assert.Equal(t, string(tt.want), result.Status)
			assert.Equal(t, tt.now.Format("2006-01-02"), result.Date)
			require.NotNil(t, result.CheckInTime)
			assert.Equal(t, tt.now.Format("15:04:05"), *result.CheckInTime)
		})
	}
}

func TestCheckInRejectedAtCutoff(t *testing.T) {
	for _, now := range []time.Time{
		at(2026, 3, 2, 12, 0, 0),
		at(2026, 3, 2, 15, 30, 0),
	} {
		svc, repo, _, files := newTestService(now)

		_, err := svc.CheckIn(context.Background(), photoRequest("intern-1"))
		assert.ErrorIs(t, err, attendance.ErrCutoffPassed)
		assert.Empty(t, repo.records)
		assert.Zero(t, files.uploads)
	}
}

func TestCheckInRequiresPhoto(t *testing.T) {
	svc, _, _, _ := newTestService(at(2026, 3, 2, 9, 0, 0))

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{UserID: "intern-1"})
	assert.ErrorIs(t, err, attendance.ErrMissingPhoto)
}

func TestCheckInCutoffWinsOverDuplicate(t *testing.T) {
	// A second attempt after the cutoff reports the cutoff, not the
	// duplicate.
	svc, repo, _, _ := newTestService(at(2026, 3, 2, 12, 0, 0))
	repo.records[recordKey("intern-1", at(2026, 3, 2, 0, 0, 0))] = attendance.Record{
		UserID: "intern-1",
		Date:   at(2026, 3, 2, 0, 0, 0),
		Status: attendance.StatusPresent,
	}

	_, err := svc.CheckIn(context.Background(), photoRequest("intern-1"))
	assert.ErrorIs(t, err, attendance.ErrCutoffPassed)
}

func TestCheckInRejectsDuplicate(t *testing.T) {
	svc, _, _, files := newTestService(at(2026, 3, 2, 9, 0, 0))

	_, err := svc.CheckIn(context.Background(), photoRequest("intern-1"))
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), photoRequest("intern-1"))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	assert.Equal(t, 1, files.uploads)
}

func TestResolveStatusStoredRecordWins(t *testing.T) {
	now := at(2026, 3, 2, 14, 0, 0)
	svc, repo, leaves, _ := newTestService(now)

	yesterday := at(2026, 3, 1, 0, 0, 0)
	repo.records[recordKey("intern-1", yesterday)] = attendance.Record{
		UserID: "intern-1",
		Date:   yesterday,
		Status: attendance.StatusLate,
	}
	// An approved leave on the same day never overrides the record.
	leaves.approve("intern-1", yesterday)

	result, err := svc.ResolveStatus(context.Background(), "intern-1", yesterday)
	require.NoError(t, err)
	assert.Equal(t, string(attendance.EffectiveLate), result.Status)
}

func TestResolveStatusOnLeave(t *testing.T) {
	now := at(2026, 3, 2, 14, 0, 0)
	svc, _, leaves, _ := newTestService(now)

	yesterday := at(2026, 3, 1, 0, 0, 0)
	leaves.approve("intern-1", yesterday)

	result, err := svc.ResolveStatus(context.Background(), "intern-1", yesterday)
	require.NoError(t, err)
	assert.Equal(t, string(attendance.EffectiveOnLeave), result.Status)
	assert.Equal(t, "2026-03-01", result.Date)
}

func TestResolveStatusVirtualAbsence(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		date time.Time
		want attendance.EffectiveStatus
	}{
		{"past date", at(2026, 3, 2, 9, 0, 0), at(2026, 3, 1, 0, 0, 0), attendance.EffectiveAbsent},
		{"today before cutoff", at(2026, 3, 2, 11, 59, 59), at(2026, 3, 2, 0, 0, 0), attendance.EffectiveUndetermined},
		{"today at cutoff", at(2026, 3, 2, 12, 0, 0), at(2026, 3, 2, 0, 0, 0), attendance.EffectiveAbsent},
		{"today after cutoff", at(2026, 3, 2, 16, 0, 0), at(2026, 3, 2, 0, 0, 0), attendance.EffectiveAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newTestService(tt.now)

			result, err := svc.ResolveStatus(context.Background(), "intern-1", tt.date)
			require.NoError(t, err)
			assert.Equal(t, string(tt.want), result.Status)
		})
	}
}

func TestResolveStatusZeroDateMeansToday(t *testing.T) {
	svc, _, _, _ := newTestService(at(2026, 3, 2, 9, 0, 0))

	result, err := svc.ResolveStatus(context.Background(), "intern-1", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", result.Date)
	assert.Equal(t, string(attendance.EffectiveUndetermined), result.Status)
}

func TestResolveStatusFutureDateRejected(t *testing.T) {
	svc, _, _, _ := newTestService(at(2026, 3, 2, 9, 0, 0))

	_, err := svc.ResolveStatus(context.Background(), "intern-1", at(2026, 3, 3, 0, 0, 0))
	assert.ErrorIs(t, err, attendance.ErrFutureDate)
}

func TestGetTodayReturnsNilWithoutRecord(t *testing.T) {
	svc, _, _, _ := newTestService(at(2026, 3, 2, 9, 0, 0))

	result, err := svc.GetToday(context.Background(), "intern-1")
	require.NoError(t, err)
	assert.Nil(t, result)
}
