package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. Dates are
// calendar dates (midnight in the org timezone); implementations compare them
// by date only.
type AttendanceRepository interface {
	// Create inserts a check-in record. A unique violation on (user_id, date)
	// surfaces as the storage error; the service translates it.
	Create(ctx context.Context, record Record) (Record, error)

	// CreateAbsent inserts a system-generated ABSENT record for (userID,
	// date) with insert-or-ignore semantics. It reports whether a row was
	// actually inserted, so re-running a sweep is harmless.
	CreateAbsent(ctx context.Context, userID string, date time.Time) (bool, error)

	// GetByUserAndDate returns the record for (userID, date), or nil when the
	// user has no row for that date.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Record, error)

	// ListByUser returns a user's records, newest first.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error)

	// ListByUserBetween returns a user's records within [start, end], oldest
	// first.
	ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]Record, error)

	// List returns all records joined with user identity, newest first.
	List(ctx context.Context, limit, offset int) ([]Record, error)

	// ListCandidates enumerates active users with neither an attendance row
	// nor a covering approved leave on date. This is the single source of
	// truth for "would be absent": the sweeper materializes exactly this set.
	ListCandidates(ctx context.Context, date time.Time) ([]Candidate, error)

	// SummaryForDate aggregates a date for the admin dashboard, counting
	// not-yet-materialized absences as absent.
	SummaryForDate(ctx context.Context, date time.Time) (DaySummary, error)

	// StatsForUser aggregates a user's whole history.
	StatsForUser(ctx context.Context, userID string) (UserStats, error)

	// RosterForDate lists every intern with their record for date, if any.
	// Effective statuses for users without a record are resolved by the
	// service.
	RosterForDate(ctx context.Context, date time.Time) ([]RosterEntry, error)
}
