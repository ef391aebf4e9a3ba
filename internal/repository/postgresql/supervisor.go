package postgresql

import (
	"context"
	"fmt"

	"github.com/interntrack/interntrack-backend-go/internal/domain/master/supervisor"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type supervisorRepository struct {
	db *database.DB
}

func NewSupervisorRepository(db *database.DB) supervisor.SupervisorRepository {
	return &supervisorRepository{db: db}
}

// Create implements supervisor.SupervisorRepository.
func (r *supervisorRepository) Create(ctx context.Context, s supervisor.Supervisor) (supervisor.Supervisor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO supervisors (name, phone, division)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, s.Name, s.Phone, s.Division).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return supervisor.Supervisor{}, fmt.Errorf("failed to create supervisor: %w", err)
	}

	return s, nil
}

// GetByID implements supervisor.SupervisorRepository.
func (r *supervisorRepository) GetByID(ctx context.Context, id string) (supervisor.Supervisor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, division, created_at
		FROM supervisors
		WHERE id = $1
	`

	var s supervisor.Supervisor
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Phone, &s.Division, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return supervisor.Supervisor{}, supervisor.ErrSupervisorNotFound
		}
		return supervisor.Supervisor{}, fmt.Errorf("failed to get supervisor: %w", err)
	}

	return s, nil
}

// List implements supervisor.SupervisorRepository.
func (r *supervisorRepository) List(ctx context.Context) ([]supervisor.Supervisor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, division, created_at
		FROM supervisors
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list supervisors: %w", err)
	}
	defer rows.Close()

	var supervisors []supervisor.Supervisor
	for rows.Next() {
		var s supervisor.Supervisor
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Division, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan supervisor: %w", err)
		}
		supervisors = append(supervisors, s)
	}

	return supervisors, rows.Err()
}

// Delete implements supervisor.SupervisorRepository.
func (r *supervisorRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Detach assigned users first.
	if _, err := q.Exec(ctx, `UPDATE users SET supervisor_id = NULL WHERE supervisor_id = $1`, id); err != nil {
		return fmt.Errorf("failed to detach users from supervisor: %w", err)
	}

	tag, err := q.Exec(ctx, `DELETE FROM supervisors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete supervisor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return supervisor.ErrSupervisorNotFound
	}

	return nil
}
