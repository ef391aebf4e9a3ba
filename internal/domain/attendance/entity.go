package attendance

import "time"

// Status is the stored status of a materialized attendance record.
type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusLate    Status = "LATE"
	StatusAbsent  Status = "ABSENT"
)

// EffectiveStatus is the resolved daily classification for a (user, date)
// pair. Unlike Status it is not necessarily backed by a stored row: ON_LEAVE
// is inferred from an approved leave, and ABSENT may be inferred before the
// sweeper has materialized it. UNDETERMINED only ever applies to today before
// the check-in cutoff.
type EffectiveStatus string

const (
	EffectivePresent      EffectiveStatus = "PRESENT"
	EffectiveLate         EffectiveStatus = "LATE"
	EffectiveAbsent       EffectiveStatus = "ABSENT"
	EffectiveOnLeave      EffectiveStatus = "ON_LEAVE"
	EffectiveUndetermined EffectiveStatus = "UNDETERMINED"
)

// Record is one user's attendance row for one calendar date. (UserID, Date)
// is unique; the database constraint on that pair is the only concurrency
// control any write path relies on.
//
// CheckInTime and PhotoPath are nil exactly when Status is ABSENT: absence
// rows are system-generated and carry no proof.
type Record struct {
	ID          string
	UserID      string
	Date        time.Time // calendar date, midnight in the org timezone
	CheckInTime *time.Time
	Status      Status
	PhotoPath   *string
	CreatedAt   time.Time

	// Joined for admin listings
	UserName     *string
	UserEmail    *string
	UserUsername *string
}

// Candidate is a user the sweeper would mark absent: active on the given
// date, no attendance row, no covering approved leave.
type Candidate struct {
	UserID string
	Name   string
}

// SweepSummary reports one auto-absence sweep run. Failed counts candidates
// whose insert failed; those users stay unmaterialized until the next run.
type SweepSummary struct {
	Created int         `json:"created"`
	Failed  int         `json:"failed"`
	Users   []Candidate `json:"users"`
}

// DaySummary aggregates one date for the admin dashboard. Absent includes
// virtual absences not yet materialized by the sweeper.
type DaySummary struct {
	Present      int `json:"present"`
	Late         int `json:"late"`
	Absent       int `json:"absent"`
	OnLeave      int `json:"on_leave"`
	TotalRecords int `json:"total_records"`
}

// UserStats aggregates a user's attendance history.
type UserStats struct {
	Present        int `json:"present"`
	Late           int `json:"late"`
	Absent         int `json:"absent"`
	ApprovedLeaves int `json:"approved_leaves"`
	TotalRecords   int `json:"total_records"`
}

// RosterEntry is one intern on the admin day roster, with the effective
// status for that date. CheckInAt is the raw stored instant; the service
// renders CheckInTime from it in the org timezone.
type RosterEntry struct {
	UserID       string          `json:"user_id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Username     string          `json:"username"`
	LeaveBalance int             `json:"leave_balance"`
	Status       EffectiveStatus `json:"status"`
	CheckInAt    *time.Time      `json:"-"`
	CheckInTime  *string         `json:"check_in_time,omitempty"`
	PhotoPath    *string         `json:"photo_path,omitempty"`
}
