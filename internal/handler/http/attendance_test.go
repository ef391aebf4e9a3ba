package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/interntrack/interntrack-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

// fakeAttendanceService is a canned attendance.AttendanceService for handler
// tests. Only the methods a test exercises carry state.
type fakeAttendanceService struct {
	statusResp attendance.StatusResponse
	statusErr  error
	gotUserID  string
	gotDate    time.Time

	stats    attendance.UserStats
	statsErr error
	history  []attendance.RecordResponse
}

func (f *fakeAttendanceService) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	return attendance.RecordResponse{}, nil
}

func (f *fakeAttendanceService) ResolveStatus(ctx context.Context, userID string, date time.Time) (attendance.StatusResponse, error) {
	f.gotUserID = userID
	f.gotDate = date
	return f.statusResp, f.statusErr
}

func (f *fakeAttendanceService) GetToday(ctx context.Context, userID string) (*attendance.RecordResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceService) GetHistory(ctx context.Context, userID string, limit, offset int) ([]attendance.RecordResponse, error) {
	return f.history, nil
}

func (f *fakeAttendanceService) GetRange(ctx context.Context, userID string, req attendance.RangeRequest) ([]attendance.RecordResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceService) GetStats(ctx context.Context, userID string) (attendance.UserStats, error) {
	return f.stats, f.statsErr
}

func (f *fakeAttendanceService) List(ctx context.Context, limit, offset int) ([]attendance.RecordResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceService) SummaryToday(ctx context.Context) (attendance.DaySummary, error) {
	return attendance.DaySummary{}, nil
}

func (f *fakeAttendanceService) RosterToday(ctx context.Context) ([]attendance.RosterEntry, error) {
	return nil, nil
}

func TestStatusEndpointResolvesRequestedDate(t *testing.T) {
	svc := &fakeAttendanceService{
		statusResp: attendance.StatusResponse{
			Date:   "2026-03-01",
			Status: string(attendance.EffectiveAbsent),
		},
	}
	h := NewAttendanceHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/status?date=2026-03-01", nil)
	rr := httptest.NewRecorder()
	h.Status(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), svc.gotDate)
	assert.Contains(t, rr.Body.String(), `"status":"ABSENT"`)
}

func TestStatusEndpointDefaultsToToday(t *testing.T) {
	svc := &fakeAttendanceService{
		statusResp: attendance.StatusResponse{Status: string(attendance.EffectiveUndetermined)},
	}
	h := NewAttendanceHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/status", nil)
	rr := httptest.NewRecorder()
	h.Status(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, svc.gotDate.IsZero())
}

func TestStatusEndpointRejectsMalformedDate(t *testing.T) {
	h := NewAttendanceHandler(&fakeAttendanceService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/status?date=yesterday", nil)
	rr := httptest.NewRecorder()
	h.Status(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestStatusEndpointMapsFutureDate(t *testing.T) {
	svc := &fakeAttendanceService{statusErr: attendance.ErrFutureDate}
	h := NewAttendanceHandler(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/status?date=2099-01-01", nil)
	rr := httptest.NewRecorder()
	h.Status(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
