package user

import "time"

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleIntern Role = "USER"
)

// User is an intern or admin account. LeaveBalance counts the remaining
// approved-leave days and is only ever mutated by the leave approval
// side-effect.
type User struct {
	ID           string
	Name         string
	Email        string
	Username     string
	PasswordHash *string
	Role         Role
	SupervisorID *string
	PeriodID     *string
	LeaveBalance int
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for responses
	PeriodName     *string
	SupervisorName *string
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
