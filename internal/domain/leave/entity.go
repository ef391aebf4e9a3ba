package leave

import "time"

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "PENDING"
	LeaveStatusApproved LeaveStatus = "APPROVED"
	LeaveStatusRejected LeaveStatus = "REJECTED"
)

// LeaveRequest is a user's request to be excused for an inclusive date range.
// Status moves out of PENDING at most once, to either APPROVED or REJECTED,
// and never moves again.
type LeaveRequest struct {
	ID           string
	UserID       string
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	Status       LeaveStatus
	DecisionNote *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for admin listings
	UserName     *string
	UserUsername *string
}

// Days returns the inclusive day-count of the range. This is the amount the
// approval side-effect deducts from the user's leave balance.
func (l LeaveRequest) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

// Covers reports whether date falls within [StartDate, EndDate], comparing
// calendar dates only.
func (l LeaveRequest) Covers(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	s := time.Date(l.StartDate.Year(), l.StartDate.Month(), l.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(l.EndDate.Year(), l.EndDate.Month(), l.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(s) && !d.After(e)
}
