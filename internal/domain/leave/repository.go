package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository defines data access for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByUser returns a user's requests, newest first, optionally filtered
	// by status.
	ListByUser(ctx context.Context, userID string, status *LeaveStatus) ([]LeaveRequest, error)

	// List returns all requests joined with user identity, newest first,
	// optionally filtered by status.
	List(ctx context.Context, status *LeaveStatus) ([]LeaveRequest, error)

	// UpdateDecision writes the one-way PENDING transition. The write only
	// matches a PENDING row, so of two racing decisions exactly one
	// succeeds; the loser gets ErrLeaveAlreadyDecided.
	UpdateDecision(ctx context.Context, id string, status LeaveStatus, note *string) error

	Delete(ctx context.Context, id string) error

	// HasApprovedLeaveCovering reports whether an APPROVED request of userID
	// inclusively covers date. Both the status resolver and the sweeper's
	// candidate query answer "is this user excused" through this predicate.
	HasApprovedLeaveCovering(ctx context.Context, userID string, date time.Time) (bool, error)

	CountPending(ctx context.Context) (int, error)
}
