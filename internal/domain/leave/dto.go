package leave

import (
	"context"

	"github.com/interntrack/interntrack-backend-go/internal/pkg/validator"
)

// LeaveService defines business logic for leave requests and the approval
// side-effect on the user's leave balance.
type LeaveService interface {
	CreateRequest(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	ListMine(ctx context.Context, userID string, status *LeaveStatus) ([]LeaveResponse, error)
	DeleteMine(ctx context.Context, userID string, leaveID string) error

	// Admin operations
	ListAll(ctx context.Context, status *LeaveStatus) ([]LeaveResponse, error)
	Get(ctx context.Context, leaveID string) (LeaveResponse, error)

	// Approve transitions PENDING -> APPROVED and deducts the inclusive
	// day-count from the user's balance, floored at zero, in one
	// transaction.
	Approve(ctx context.Context, leaveID string) error

	// Reject transitions PENDING -> REJECTED with an optional note. No
	// balance mutation.
	Reject(ctx context.Context, leaveID string, note *string) error

	PendingCount(ctx context.Context) (int, error)
}

type CreateLeaveRequest struct {
	UserID    string `json:"-"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	Reason    string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLeaveRequest struct {
	Note *string `json:"note,omitempty"`
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserName     *string `json:"user_name,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	DecisionNote *string `json:"decision_note,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func ToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID,
		UserID:       l.UserID,
		UserName:     l.UserName,
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		Days:         l.Days(),
		Reason:       l.Reason,
		Status:       string(l.Status),
		DecisionNote: l.DecisionNote,
		CreatedAt:    l.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
