package user

import "context"

// UserService defines business logic for account management. All operations
// are admin-only except GetProfile.
type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetProfile(ctx context.Context, id string) (UserResponse, error)
	List(ctx context.Context, role *Role) ([]UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
}
