package response

import (
	"errors"
	"net/http"

	"github.com/interntrack/interntrack-backend-go/internal/domain/attendance"
	"github.com/interntrack/interntrack-backend-go/internal/domain/auth"
	"github.com/interntrack/interntrack-backend-go/internal/domain/leave"
	"github.com/interntrack/interntrack-backend-go/internal/domain/master/period"
	"github.com/interntrack/interntrack-backend-go/internal/domain/master/supervisor"
	"github.com/interntrack/interntrack-backend-go/internal/domain/user"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrMissingPhoto):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrCutoffPassed):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrFutureDate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrSweepInProgress):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyDecided):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, err.Error())
	case errors.Is(err, leave.ErrNotPending):
		BadRequest(w, err.Error(), nil)

	// Master data errors
	case errors.Is(err, period.ErrPeriodNotFound):
		NotFound(w, "Internship period not found")
	case errors.Is(err, supervisor.ErrSupervisorNotFound):
		NotFound(w, "Supervisor not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
