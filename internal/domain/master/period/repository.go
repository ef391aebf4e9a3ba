package period

import (
	"context"
	"time"
)

// Period is an internship batch with a date range and a leave allotment that
// seeds each member's balance. Users outside their period's range are not
// swept for absence.
type Period struct {
	ID             string
	Name           string
	StartDate      time.Time
	EndDate        time.Time
	LeaveAllotment int
	CreatedAt      time.Time
}

type PeriodRepository interface {
	Create(ctx context.Context, p Period) (Period, error)
	GetByID(ctx context.Context, id string) (Period, error)
	List(ctx context.Context) ([]Period, error)
	Update(ctx context.Context, p Period) error

	// Delete removes a period after detaching any users still assigned to it.
	Delete(ctx context.Context, id string) error
}
