package user

import (
	"github.com/interntrack/interntrack-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	Password     string  `json:"password"`
	Role         string  `json:"role"`
	SupervisorID *string `json:"supervisor_id,omitempty"`
	PeriodID     *string `json:"period_id,omitempty"`
	LeaveBalance int     `json:"leave_balance"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid address"})
	}
	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username must be 3-50 chars of letters, digits, '.', '_' or '-'"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if r.Role == "" {
		r.Role = string(RoleIntern)
	}
	if !validator.IsInSlice(r.Role, []string{string(RoleAdmin), string(RoleIntern)}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be ADMIN or USER"})
	}
	if r.LeaveBalance < 0 {
		errs = append(errs, validator.ValidationError{Field: "leave_balance", Message: "leave_balance must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	SupervisorID *string `json:"supervisor_id,omitempty"`
	PeriodID     *string `json:"period_id,omitempty"`
	LeaveBalance *int    `json:"leave_balance,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid address"})
	}
	if r.LeaveBalance != nil && *r.LeaveBalance < 0 {
		errs = append(errs, validator.ValidationError{Field: "leave_balance", Message: "leave_balance must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Username       string  `json:"username"`
	Role           string  `json:"role"`
	SupervisorID   *string `json:"supervisor_id,omitempty"`
	SupervisorName *string `json:"supervisor_name,omitempty"`
	PeriodID       *string `json:"period_id,omitempty"`
	PeriodName     *string `json:"period_name,omitempty"`
	LeaveBalance   int     `json:"leave_balance"`
	CreatedAt      string  `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Username:       u.Username,
		Role:           string(u.Role),
		SupervisorID:   u.SupervisorID,
		SupervisorName: u.SupervisorName,
		PeriodID:       u.PeriodID,
		PeriodName:     u.PeriodName,
		LeaveBalance:   u.LeaveBalance,
		CreatedAt:      u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
