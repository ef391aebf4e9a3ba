package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/interntrack/interntrack-backend-go/internal/domain/attendance"
	"github.com/interntrack/interntrack-backend-go/internal/domain/leave"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/clock"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/metrics"
	"github.com/interntrack/interntrack-backend-go/internal/service/file"
	"github.com/jackc/pgx/v5/pgconn"
)

// Rules are the organizational attendance thresholds as seconds since
// midnight in the org timezone. A check-in at WorkStartSeconds exactly is
// still on time; one at CutoffSeconds exactly is already rejected.
type Rules struct {
	WorkStartSeconds int
	CutoffSeconds    int
}

// ParseRules parses "HH:MM:SS" threshold strings into Rules.
func ParseRules(workStart, cutoff string) (Rules, error) {
	ws, err := time.Parse("15:04:05", workStart)
	if err != nil {
		return Rules{}, fmt.Errorf("invalid work start time: %w", err)
	}
	co, err := time.Parse("15:04:05", cutoff)
	if err != nil {
		return Rules{}, fmt.Errorf("invalid cutoff time: %w", err)
	}

	rules := Rules{
		WorkStartSeconds: clock.SecondsIntoDay(ws),
		CutoffSeconds:    clock.SecondsIntoDay(co),
	}
	if rules.CutoffSeconds <= rules.WorkStartSeconds {
		return Rules{}, fmt.Errorf("cutoff %s must be after work start %s", cutoff, workStart)
	}
	return rules, nil
}

type attendanceServiceImpl struct {
	repo      attendance.AttendanceRepository
	leaveRepo leave.LeaveRequestRepository
	files     file.FileService
	clock     clock.Clock
	rules     Rules
}

func NewAttendanceService(
	repo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	files file.FileService,
	clk clock.Clock,
	rules Rules,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		repo:      repo,
		leaveRepo: leaveRepo,
		files:     files,
		clock:     clk,
		rules:     rules,
	}
}

// dateKey reduces a time to its calendar date for ordering comparisons,
// ignoring location.
func dateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// CheckIn implements attendance.AttendanceService.
//
// Preconditions are evaluated in a fixed order: missing photo, cutoff
// passed, already checked in. The first failure wins, so a post-cutoff
// duplicate attempt reports the cutoff, not the duplicate.
func (s *attendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		if errors.Is(err, attendance.ErrMissingPhoto) {
			metrics.CheckInRejections.WithLabelValues("missing_photo").Inc()
		}
		return attendance.RecordResponse{}, err
	}

	now := s.clock.Now()
	today := clock.DateOf(now)
	elapsed := clock.SecondsIntoDay(now)

	if elapsed >= s.rules.CutoffSeconds {
		metrics.CheckInRejections.WithLabelValues("cutoff_passed").Inc()
		return attendance.RecordResponse{}, attendance.ErrCutoffPassed
	}

	existing, err := s.repo.GetByUserAndDate(ctx, req.UserID, today)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if existing != nil {
		metrics.CheckInRejections.WithLabelValues("already_checked_in").Inc()
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
	}

	status := attendance.StatusPresent
	if elapsed > s.rules.WorkStartSeconds {
		status = attendance.StatusLate
	}

	photoPath, err := s.files.UploadCheckInPhoto(ctx, req.UserID, today, req.File, req.FileHeader.Filename)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	record, err := s.repo.Create(ctx, attendance.Record{
		UserID:      req.UserID,
		Date:        today,
		CheckInTime: &now,
		Status:      status,
		PhotoPath:   &photoPath,
	})
	if err != nil {
		// A concurrent check-in may win the unique constraint race after
		// the existence check above. The orphaned photo is removed.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			_ = s.files.DeletePhoto(ctx, photoPath)
			metrics.CheckInRejections.WithLabelValues("already_checked_in").Inc()
			return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.RecordResponse{}, err
	}

	metrics.CheckIns.WithLabelValues(string(status)).Inc()
	return attendance.ToRecordResponse(record, s.clock.Location()), nil
}

// ResolveStatus implements attendance.AttendanceService.
//
// Precedence: a stored record always wins, then a covering approved leave,
// then the inferred ABSENT, so an approved leave never overrides a day the
// user actually checked in.
func (s *attendanceServiceImpl) ResolveStatus(ctx context.Context, userID string, date time.Time) (attendance.StatusResponse, error) {
	now := s.clock.Now()
	today := clock.DateOf(now)

	if date.IsZero() {
		date = today
	}
	if dateKey(date) > dateKey(today) {
		return attendance.StatusResponse{}, attendance.ErrFutureDate
	}

	status, err := s.effectiveStatus(ctx, userID, clock.DateOf(date), now)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	return attendance.StatusResponse{
		UserID: userID,
		Date:   date.Format("2006-01-02"),
		Status: string(status),
	}, nil
}

// effectiveStatus applies the precedence order for a non-future date: stored
// record, then covering approved leave, then the inferred ABSENT.
func (s *attendanceServiceImpl) effectiveStatus(ctx context.Context, userID string, date time.Time, now time.Time) (attendance.EffectiveStatus, error) {
	record, err := s.repo.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return "", err
	}
	if record != nil {
		return attendance.EffectiveStatus(record.Status), nil
	}

	covered, err := s.leaveRepo.HasApprovedLeaveCovering(ctx, userID, date)
	if err != nil {
		return "", err
	}
	if covered {
		return attendance.EffectiveOnLeave, nil
	}

	if dateKey(date) < dateKey(clock.DateOf(now)) {
		return attendance.EffectiveAbsent, nil
	}

	// Today: absent once the cutoff has passed, undecided before it.
	if clock.SecondsIntoDay(now) >= s.rules.CutoffSeconds {
		return attendance.EffectiveAbsent, nil
	}
	return attendance.EffectiveUndetermined, nil
}

// GetToday implements attendance.AttendanceService.
func (s *attendanceServiceImpl) GetToday(ctx context.Context, userID string) (*attendance.RecordResponse, error) {
	today := clock.DateOf(s.clock.Now())

	record, err := s.repo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	resp := attendance.ToRecordResponse(*record, s.clock.Location())
	return &resp, nil
}

// GetHistory implements attendance.AttendanceService.
func (s *attendanceServiceImpl) GetHistory(ctx context.Context, userID string, limit, offset int) ([]attendance.RecordResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 31
	}
	if offset < 0 {
		offset = 0
	}

	records, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	return toResponses(records, s.clock.Location()), nil
}

// GetRange implements attendance.AttendanceService.
func (s *attendanceServiceImpl) GetRange(ctx context.Context, userID string, req attendance.RangeRequest) ([]attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	records, err := s.repo.ListByUserBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return toResponses(records, s.clock.Location()), nil
}

// GetStats implements attendance.AttendanceService.
func (s *attendanceServiceImpl) GetStats(ctx context.Context, userID string) (attendance.UserStats, error) {
	return s.repo.StatsForUser(ctx, userID)
}

// List implements attendance.AttendanceService.
func (s *attendanceServiceImpl) List(ctx context.Context, limit, offset int) ([]attendance.RecordResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	records, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return toResponses(records, s.clock.Location()), nil
}

// SummaryToday implements attendance.AttendanceService.
func (s *attendanceServiceImpl) SummaryToday(ctx context.Context) (attendance.DaySummary, error) {
	return s.repo.SummaryForDate(ctx, clock.DateOf(s.clock.Now()))
}

// RosterToday implements attendance.AttendanceService.
func (s *attendanceServiceImpl) RosterToday(ctx context.Context) ([]attendance.RosterEntry, error) {
	now := s.clock.Now()
	today := clock.DateOf(now)

	entries, err := s.repo.RosterForDate(ctx, today)
	if err != nil {
		return nil, err
	}

	pastCutoff := clock.SecondsIntoDay(now) >= s.rules.CutoffSeconds
	for i := range entries {
		if entries[i].CheckInAt != nil {
			formatted := entries[i].CheckInAt.In(s.clock.Location()).Format("15:04:05")
			entries[i].CheckInTime = &formatted
		}
		if entries[i].Status != "" {
			continue
		}
		covered, err := s.leaveRepo.HasApprovedLeaveCovering(ctx, entries[i].UserID, today)
		if err != nil {
			return nil, err
		}
		switch {
		case covered:
			entries[i].Status = attendance.EffectiveOnLeave
		case pastCutoff:
			entries[i].Status = attendance.EffectiveAbsent
		default:
			entries[i].Status = attendance.EffectiveUndetermined
		}
	}

	return entries, nil
}

func toResponses(records []attendance.Record, loc *time.Location) []attendance.RecordResponse {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToRecordResponse(rec, loc))
	}
	return responses
}
