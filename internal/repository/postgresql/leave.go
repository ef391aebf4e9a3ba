package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/interntrack/interntrack-backend-go/internal/domain/leave"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (user_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, 'PENDING')
		RETURNING id, status, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.UserID,
		request.StartDate,
		request.EndDate,
		request.Reason,
	).Scan(&request.ID, &request.Status, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT lr.id, lr.user_id, lr.start_date, lr.end_date, lr.reason, lr.status,
		       lr.decision_note, lr.created_at, lr.updated_at,
		       u.name, u.username
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE lr.id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.UserID, &req.StartDate, &req.EndDate, &req.Reason, &req.Status,
		&req.DecisionNote, &req.CreatedAt, &req.UpdatedAt,
		&req.UserName, &req.UserUsername,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// ListByUser implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) ListByUser(ctx context.Context, userID string, status *leave.LeaveStatus) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, user_id, start_date, end_date, reason, status,
		       decision_note, created_at, updated_at
		FROM leave_requests
		WHERE user_id = $1
		  AND ($2::text IS NULL OR status = $2)
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.StartDate, &req.EndDate, &req.Reason, &req.Status,
			&req.DecisionNote, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// List implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) List(ctx context.Context, status *leave.LeaveStatus) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT lr.id, lr.user_id, lr.start_date, lr.end_date, lr.reason, lr.status,
		       lr.decision_note, lr.created_at, lr.updated_at,
		       u.name, u.username
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE ($1::text IS NULL OR lr.status = $1)
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.StartDate, &req.EndDate, &req.Reason, &req.Status,
			&req.DecisionNote, &req.CreatedAt, &req.UpdatedAt,
			&req.UserName, &req.UserUsername,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// UpdateDecision implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) UpdateDecision(ctx context.Context, id string, status leave.LeaveStatus, note *string) error {
	q := GetQuerier(ctx, l.db)

	// The status predicate makes the PENDING transition atomic: of two
	// concurrent decisions, exactly one matches a row.
	query := `
		UPDATE leave_requests
		SET status = $2, decision_note = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
	`

	tag, err := q.Exec(ctx, query, id, status, note)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM leave_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		if !exists {
			return leave.ErrLeaveNotFound
		}
		return leave.ErrLeaveAlreadyDecided
	}

	return nil
}

// Delete implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, l.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

// HasApprovedLeaveCovering implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) HasApprovedLeaveCovering(ctx context.Context, userID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE user_id = $1
			  AND status = 'APPROVED'
			  AND $2 BETWEEN start_date AND end_date
		)
	`

	var covered bool
	if err := q.QueryRow(ctx, query, userID, date).Scan(&covered); err != nil {
		return false, fmt.Errorf("failed to check approved leave: %w", err)
	}

	return covered, nil
}

// CountPending implements leave.LeaveRequestRepository.
func (l *leaveRequestRepository) CountPending(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, l.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = 'PENDING'`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}

	return count, nil
}
