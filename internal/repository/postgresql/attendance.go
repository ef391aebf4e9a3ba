package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/interntrack/interntrack-backend-go/internal/domain/attendance"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// approvedLeaveFilter matches users with an approved leave request
// covering the date bound as $1. Every query that treats leave as an
// excused absence uses this same fragment.
const approvedLeaveFilter = `
	EXISTS (
		SELECT 1 FROM leave_requests lr
		WHERE lr.user_id = u.id
		  AND lr.status = 'APPROVED'
		  AND $1 BETWEEN lr.start_date AND lr.end_date
	)`

// activeUserFilter matches interns whose internship period covers the
// date bound as $1. Users without a period are always considered
// active.
const activeUserFilter = `
	u.role = 'USER'
	AND (
		u.period_id IS NULL
		OR EXISTS (
			SELECT 1 FROM periods p
			WHERE p.id = u.period_id
			  AND $1 BETWEEN p.start_date AND p.end_date
		)
	)`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (user_id, date, check_in_time, status, photo_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		record.UserID,
		record.Date,
		record.CheckInTime,
		record.Status,
		record.PhotoPath,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// CreateAbsent implements attendance.AttendanceRepository.
func (a *attendanceRepository) CreateAbsent(ctx context.Context, userID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (user_id, date, status)
		VALUES ($1, $2, 'ABSENT')
		ON CONFLICT (user_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, userID, date)
	if err != nil {
		return false, fmt.Errorf("failed to create absence record: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, date, check_in_time, status, photo_path, created_at
		FROM attendances
		WHERE user_id = $1 AND date = $2
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.CheckInTime, &rec.Status, &rec.PhotoPath, &rec.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &rec, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, date, check_in_time, status, photo_path, created_at
		FROM attendances
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListByUserBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, date, check_in_time, status, photo_path, created_at
		FROM attendances
		WHERE user_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, limit, offset int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.check_in_time, a.status, a.photo_path, a.created_at,
		       u.name, u.email, u.username
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		ORDER BY a.date DESC, a.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Date, &rec.CheckInTime, &rec.Status, &rec.PhotoPath, &rec.CreatedAt,
			&rec.UserName, &rec.UserEmail, &rec.UserUsername,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListCandidates implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListCandidates(ctx context.Context, date time.Time) ([]attendance.Candidate, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT u.id, u.name
		FROM users u
		WHERE ` + activeUserFilter + `
		  AND NOT EXISTS (
			SELECT 1 FROM attendances a
			WHERE a.user_id = u.id AND a.date = $1
		  )
		  AND NOT ` + approvedLeaveFilter + `
		ORDER BY u.name ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list absence candidates: %w", err)
	}
	defer rows.Close()

	var candidates []attendance.Candidate
	for rows.Next() {
		var c attendance.Candidate
		if err := rows.Scan(&c.UserID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan absence candidate: %w", err)
		}
		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}

// SummaryForDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) SummaryForDate(ctx context.Context, date time.Time) (attendance.DaySummary, error) {
	q := GetQuerier(ctx, a.db)

	var summary attendance.DaySummary

	// Stored rows for the date.
	storedQuery := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'PRESENT'),
			COUNT(*) FILTER (WHERE status = 'LATE'),
			COUNT(*) FILTER (WHERE status = 'ABSENT'),
			COUNT(*)
		FROM attendances
		WHERE date = $1
	`
	if err := q.QueryRow(ctx, storedQuery, date).Scan(
		&summary.Present, &summary.Late, &summary.Absent, &summary.TotalRecords,
	); err != nil {
		return attendance.DaySummary{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	// On-leave users have no attendance row; they are counted separately.
	leaveQuery := `
		SELECT COUNT(*)
		FROM users u
		WHERE ` + activeUserFilter + `
		  AND NOT EXISTS (
			SELECT 1 FROM attendances a
			WHERE a.user_id = u.id AND a.date = $1
		  )
		  AND ` + approvedLeaveFilter
	if err := q.QueryRow(ctx, leaveQuery, date).Scan(&summary.OnLeave); err != nil {
		return attendance.DaySummary{}, fmt.Errorf("failed to count on-leave users: %w", err)
	}

	// Absences the sweep has not materialized yet still count as absent.
	candidates, err := a.ListCandidates(ctx, date)
	if err != nil {
		return attendance.DaySummary{}, err
	}
	summary.Absent += len(candidates)

	return summary, nil
}

// StatsForUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) StatsForUser(ctx context.Context, userID string) (attendance.UserStats, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'PRESENT'),
			COUNT(*) FILTER (WHERE status = 'LATE'),
			COUNT(*) FILTER (WHERE status = 'ABSENT'),
			COUNT(*)
		FROM attendances
		WHERE user_id = $1
	`

	var stats attendance.UserStats
	if err := q.QueryRow(ctx, query, userID).Scan(
		&stats.Present, &stats.Late, &stats.Absent, &stats.TotalRecords,
	); err != nil {
		return attendance.UserStats{}, fmt.Errorf("failed to get attendance stats: %w", err)
	}

	leaveQuery := `
		SELECT COUNT(*) FROM leave_requests
		WHERE user_id = $1 AND status = 'APPROVED'
	`
	if err := q.QueryRow(ctx, leaveQuery, userID).Scan(&stats.ApprovedLeaves); err != nil {
		return attendance.UserStats{}, fmt.Errorf("failed to count approved leaves: %w", err)
	}

	return stats, nil
}

// RosterForDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) RosterForDate(ctx context.Context, date time.Time) ([]attendance.RosterEntry, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT u.id, u.name, u.email, u.username, u.leave_balance,
		       a.status, a.check_in_time, a.photo_path
		FROM users u
		LEFT JOIN attendances a ON a.user_id = u.id AND a.date = $1
		WHERE u.role = 'USER'
		ORDER BY u.name ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list day roster: %w", err)
	}
	defer rows.Close()

	var entries []attendance.RosterEntry
	for rows.Next() {
		var (
			entry  attendance.RosterEntry
			status *attendance.Status
		)
		if err := rows.Scan(
			&entry.UserID, &entry.Name, &entry.Email, &entry.Username, &entry.LeaveBalance,
			&status, &entry.CheckInAt, &entry.PhotoPath,
		); err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		if status != nil {
			entry.Status = attendance.EffectiveStatus(*status)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func scanRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Date, &rec.CheckInTime, &rec.Status, &rec.PhotoPath, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
