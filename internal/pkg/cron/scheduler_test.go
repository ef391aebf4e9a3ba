package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wib = time.FixedZone("WIB", 7*3600)

func TestWallClockNext(t *testing.T) {
	noon := WallClock{Hour: 12, Location: wib}

	t.Run("before the wall time fires today", func(t *testing.T) {
		now := time.Date(2026, 3, 2, 9, 30, 0, 0, wib)
		assert.Equal(t, time.Date(2026, 3, 2, 12, 0, 0, 0, wib), noon.next(now))
	})

	t.Run("exactly at the wall time fires tomorrow", func(t *testing.T) {
		now := time.Date(2026, 3, 2, 12, 0, 0, 0, wib)
		assert.Equal(t, time.Date(2026, 3, 3, 12, 0, 0, 0, wib), noon.next(now))
	})

	t.Run("after the wall time fires tomorrow", func(t *testing.T) {
		now := time.Date(2026, 3, 2, 14, 0, 0, 0, wib)
		assert.Equal(t, time.Date(2026, 3, 3, 12, 0, 0, 0, wib), noon.next(now))
	})

	t.Run("converts from another location", func(t *testing.T) {
		// 04:00 UTC is 11:00 WIB, still before noon.
		now := time.Date(2026, 3, 2, 4, 0, 0, 0, time.UTC)
		next := noon.next(now)
		assert.Equal(t, time.Date(2026, 3, 2, 12, 0, 0, 0, wib), next)
	})
}

func TestRunOnceExecutesEveryJob(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	ran := make(map[string]int)
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		ran["first"]++
		return nil
	})
	s.AddDailyJob("second", 12, 0, 0, wib, func(ctx context.Context) error {
		ran["second"]++
		return nil
	})

	s.RunOnce(context.Background())

	require.Equal(t, 1, ran["first"])
	require.Equal(t, 1, ran["second"])
}

func TestStopCancelsRunningJobs(t *testing.T) {
	s := NewScheduler()

	started := make(chan struct{})
	s.AddJob("blocker", time.Minute, func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})

	s.Start()
	<-started

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
