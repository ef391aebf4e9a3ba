package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a named function run on a schedule. Exactly one of Interval
// or At drives the schedule.
type Job struct {
	Name     string
	Interval time.Duration
	At       *WallClock
	Fn       func(ctx context.Context) error
}

// WallClock is a local time of day a daily job fires at.
type WallClock struct {
	Hour     int
	Minute   int
	Second   int
	Location *time.Location
}

// next returns the first instant at or after now matching the wall
// clock time in its location.
func (w WallClock) next(now time.Time) time.Time {
	local := now.In(w.Location)
	candidate := time.Date(local.Year(), local.Month(), local.Day(), w.Hour, w.Minute, w.Second, 0, w.Location)
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate
}

// Scheduler runs registered jobs until stopped.
type Scheduler struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a job that fires every interval, starting with an
// immediate run.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{Name: name, Interval: interval, Fn: fn})
	slog.Info("Cron job registered", "name", name, "interval", interval)
}

// AddDailyJob registers a job that fires once a day at the given wall
// clock time in loc.
func (s *Scheduler) AddDailyJob(name string, hour, minute, second int, loc *time.Location, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	at := &WallClock{Hour: hour, Minute: minute, Second: second, Location: loc}
	s.jobs = append(s.jobs, Job{Name: name, At: at, Fn: fn})
	slog.Info("Cron job registered", "name", name, "at", time.Date(0, 1, 1, hour, minute, second, 0, loc).Format("15:04:05"), "tz", loc.String())
}

// Start begins running all registered jobs.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all jobs and waits for running executions to finish.
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	if job.At != nil {
		s.runDaily(job)
		return
	}

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	// Interval jobs run immediately on start.
	s.executeJob(job)

	for {
		select {
		case <-s.ctx.Done():
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-ticker.C:
			s.executeJob(job)
		}
	}
}

func (s *Scheduler) runDaily(job Job) {
	for {
		wait := time.Until(job.At.next(time.Now()))
		timer := time.NewTimer(wait)

		select {
		case <-s.ctx.Done():
			timer.Stop()
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-timer.C:
			s.executeJob(job)
		}
	}
}

func (s *Scheduler) executeJob(job Job) {
	start := time.Now()
	slog.Debug("Cron job starting", "name", job.Name)

	if err := job.Fn(s.ctx); err != nil {
		slog.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
	} else {
		slog.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
	}
}

// RunOnce runs every registered job once. Used in tests.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("Cron job failed", "name", job.Name, "error", err)
		}
	}
}
