package attendance

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/interntrack/interntrack-backend-go/internal/domain/attendance"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/clock"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/metrics"
)

// sweeperImpl materializes ABSENT records once the daily cutoff has passed.
// The scheduler fires it at the cutoff; admins can also trigger it by hand.
// Both paths funnel through the running latch, so at most one sweep is in
// flight per process. Cross-process overlap is harmless because every insert
// is insert-or-ignore on (user_id, date).
type sweeperImpl struct {
	repo    attendance.AttendanceRepository
	clock   clock.Clock
	running atomic.Bool
}

func NewSweeper(repo attendance.AttendanceRepository, clk clock.Clock) attendance.Sweeper {
	return &sweeperImpl{
		repo:  repo,
		clock: clk,
	}
}

// Run implements attendance.Sweeper.
func (s *sweeperImpl) Run(ctx context.Context) (attendance.SweepSummary, error) {
	if !s.running.CompareAndSwap(false, true) {
		metrics.SweepRuns.WithLabelValues("busy").Inc()
		return attendance.SweepSummary{}, attendance.ErrSweepInProgress
	}
	defer s.running.Store(false)

	today := clock.DateOf(s.clock.Now())

	candidates, err := s.repo.ListCandidates(ctx, today)
	if err != nil {
		metrics.SweepRuns.WithLabelValues("error").Inc()
		return attendance.SweepSummary{}, err
	}

	summary := attendance.SweepSummary{Users: []attendance.Candidate{}}
	for _, candidate := range candidates {
		inserted, err := s.repo.CreateAbsent(ctx, candidate.UserID, today)
		if err != nil {
			// One failed insert must not abort the rest of the sweep.
			summary.Failed++
			slog.Error("Failed to record absence",
				"user_id", candidate.UserID,
				"date", today.Format("2006-01-02"),
				"error", err,
			)
			continue
		}
		if inserted {
			summary.Created++
			summary.Users = append(summary.Users, candidate)
		}
	}

	metrics.SweepRuns.WithLabelValues("ok").Inc()
	metrics.SweepAbsencesCreated.Add(float64(summary.Created))

	slog.Info("Absence sweep completed",
		"date", today.Format("2006-01-02"),
		"candidates", len(candidates),
		"created", summary.Created,
		"failed", summary.Failed,
	)

	return summary, nil
}
