package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/interntrack/interntrack-backend-go/internal/domain/user"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// translateUniqueViolation maps unique constraint violations onto
// domain errors by constraint name.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "users_username_key":
			return user.ErrUsernameExists
		case "users_email_key":
			return user.ErrEmailExists
		}
	}
	return nil
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (name, email, username, password_hash, role, supervisor_id, period_id, leave_balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.Name, u.Email, u.Username, u.PasswordHash, u.Role,
		u.SupervisorID, u.PeriodID, u.LeaveBalance,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if translated := translateUniqueViolation(err); translated != nil {
			return user.User{}, translated
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

const userSelect = `
	SELECT u.id, u.name, u.email, u.username, u.password_hash, u.role,
	       u.supervisor_id, u.period_id, u.leave_balance, u.created_at, u.updated_at,
	       p.name, s.name
	FROM users u
	LEFT JOIN periods p ON p.id = u.period_id
	LEFT JOIN supervisors s ON s.id = u.supervisor_id
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Username, &u.PasswordHash, &u.Role,
		&u.SupervisorID, &u.PeriodID, &u.LeaveBalance, &u.CreatedAt, &u.UpdatedAt,
		&u.PeriodName, &u.SupervisorName,
	)
	return u, err
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, userSelect+` WHERE u.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// GetByUsername implements user.UserRepository.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, userSelect+` WHERE u.username = $1`, username))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// List implements user.UserRepository.
func (r *userRepository) List(ctx context.Context, role *user.Role) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := userSelect + `
		WHERE ($1::text IS NULL OR u.role = $1)
		ORDER BY u.name ASC
	`

	rows, err := q.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// Update implements user.UserRepository.
func (r *userRepository) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = $2, email = $3, username = $4, password_hash = $5,
		    supervisor_id = $6, period_id = $7, leave_balance = $8, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		u.ID, u.Name, u.Email, u.Username, u.PasswordHash,
		u.SupervisorID, u.PeriodID, u.LeaveBalance,
	)
	if err != nil {
		if translated := translateUniqueViolation(err); translated != nil {
			return translated
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// Delete implements user.UserRepository.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// GetLeaveBalance implements user.UserRepository.
func (r *userRepository) GetLeaveBalance(ctx context.Context, id string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var balance int
	err := q.QueryRow(ctx, `SELECT leave_balance FROM users WHERE id = $1`, id).Scan(&balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, user.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return balance, nil
}

// SetLeaveBalance implements user.UserRepository.
func (r *userRepository) SetLeaveBalance(ctx context.Context, id string, balance int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET leave_balance = $2, updated_at = NOW() WHERE id = $1`, id, balance)
	if err != nil {
		return fmt.Errorf("failed to set leave balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
