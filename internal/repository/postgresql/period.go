package postgresql

import (
	"context"
	"fmt"

	"github.com/interntrack/interntrack-backend-go/internal/domain/master/period"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type periodRepository struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) period.PeriodRepository {
	return &periodRepository{db: db}
}

// Create implements period.PeriodRepository.
func (r *periodRepository) Create(ctx context.Context, p period.Period) (period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO periods (name, start_date, end_date, leave_allotment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, p.Name, p.StartDate, p.EndDate, p.LeaveAllotment).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return period.Period{}, fmt.Errorf("failed to create period: %w", err)
	}

	return p, nil
}

// GetByID implements period.PeriodRepository.
func (r *periodRepository) GetByID(ctx context.Context, id string) (period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, leave_allotment, created_at
		FROM periods
		WHERE id = $1
	`

	var p period.Period
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.LeaveAllotment, &p.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return period.Period{}, period.ErrPeriodNotFound
		}
		return period.Period{}, fmt.Errorf("failed to get period: %w", err)
	}

	return p, nil
}

// List implements period.PeriodRepository.
func (r *periodRepository) List(ctx context.Context) ([]period.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_date, end_date, leave_allotment, created_at
		FROM periods
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	defer rows.Close()

	var periods []period.Period
	for rows.Next() {
		var p period.Period
		if err := rows.Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.LeaveAllotment, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan period: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, rows.Err()
}

// Update implements period.PeriodRepository.
func (r *periodRepository) Update(ctx context.Context, p period.Period) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE periods
		SET name = $2, start_date = $3, end_date = $4, leave_allotment = $5
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, p.ID, p.Name, p.StartDate, p.EndDate, p.LeaveAllotment)
	if err != nil {
		return fmt.Errorf("failed to update period: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return period.ErrPeriodNotFound
	}

	return nil
}

// Delete implements period.PeriodRepository.
func (r *periodRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Detach assigned users first so the foreign key does not block the
	// delete.
	if _, err := q.Exec(ctx, `UPDATE users SET period_id = NULL WHERE period_id = $1`, id); err != nil {
		return fmt.Errorf("failed to detach users from period: %w", err)
	}

	tag, err := q.Exec(ctx, `DELETE FROM periods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete period: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return period.ErrPeriodNotFound
	}

	return nil
}
