package user

import "context"

// UserRepository defines data access for user accounts.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	List(ctx context.Context, role *Role) ([]User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error

	// GetLeaveBalance reads the remaining approved-leave days for a user.
	GetLeaveBalance(ctx context.Context, id string) (int, error)

	// SetLeaveBalance overwrites the remaining approved-leave days. Callers
	// are responsible for the floor-at-zero rule.
	SetLeaveBalance(ctx context.Context, id string, balance int) error
}
