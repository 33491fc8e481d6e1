package jobs

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSchedulerRunsJobImmediately(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler(testLogger())
	s.Register(Job{
		Name:     "counter",
		Interval: time.Hour,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return runs.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSchedulerRunsOnInterval(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler(testLogger())
	s.Register(Job{
		Name:     "ticker",
		Interval: 20 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return runs.Load() >= 3
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSchedulerSurvivesPanickingJob(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler(testLogger())
	s.Register(Job{
		Name:     "explosive",
		Interval: 20 * time.Millisecond,
		Run: func(ctx context.Context) error {
			runs.Add(1)
			panic("boom")
		},
	})

	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return runs.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSchedulerStopWaitsForJobs(t *testing.T) {
	s := NewScheduler(testLogger())
	s.Register(Job{
		Name:     "noop",
		Interval: time.Hour,
		Run:      func(ctx context.Context) error { return nil },
	})

	s.Start(context.Background())
	s.Stop()

	// Stop after Stop is a no-op rather than a deadlock.
	s.Stop()
}
