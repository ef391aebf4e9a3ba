package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// CheckIn processes a single check-in attempt for today. Exactly one
	// record per (user, day) is ever committed, enforced by the storage
	// uniqueness constraint.
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)

	// ResolveStatus computes the effective status for (userID, date) without
	// touching storage state. A materialized ABSENT row and a virtual absence
	// are indistinguishable to callers. A zero date means today; future dates
	// are rejected.
	ResolveStatus(ctx context.Context, userID string, date time.Time) (StatusResponse, error)

	// GetToday returns the caller's record for today, or nil if none exists.
	GetToday(ctx context.Context, userID string) (*RecordResponse, error)

	// GetHistory returns the caller's records, newest first.
	GetHistory(ctx context.Context, userID string, limit, offset int) ([]RecordResponse, error)

	// GetRange returns the caller's records within a date range.
	GetRange(ctx context.Context, userID string, req RangeRequest) ([]RecordResponse, error)

	// GetStats aggregates a user's history.
	GetStats(ctx context.Context, userID string) (UserStats, error)

	// List returns all records with user identity (admin).
	List(ctx context.Context, limit, offset int) ([]RecordResponse, error)

	// SummaryToday aggregates today for the admin dashboard.
	SummaryToday(ctx context.Context) (DaySummary, error)

	// RosterToday lists every intern with today's effective status (admin).
	RosterToday(ctx context.Context) ([]RosterEntry, error)
}

// Sweeper materializes ABSENT records for everyone who missed check-in and
// has no covering approved leave. At most one run is in flight per process;
// a concurrent trigger gets ErrSweepInProgress.
type Sweeper interface {
	Run(ctx context.Context) (SweepSummary, error)
}
