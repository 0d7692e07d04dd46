//go:build unit

package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"booking-calendar-sync/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRunsImmediatelyAndOnInterval(t *testing.T) {
	var runs int32
	s := worker.NewScheduler(time.Second, worker.Job{
		Name:     "count",
		Interval: 20 * time.Millisecond,
		Run: func(ctx context.Context) error {
			atomic.AddInt32(&runs, 1)
			return nil
		},
	})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) >= 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))

	after := atomic.LoadInt32(&runs)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&runs), "no runs after Stop")
}

func TestSchedulerSurvivesFailingAndPanickingJobs(t *testing.T) {
	var failing, panicking int32
	s := worker.NewScheduler(time.Second,
		worker.Job{Name: "fails", Interval: 10 * time.Millisecond, Run: func(context.Context) error {
			atomic.AddInt32(&failing, 1)
			return errors.New("boom")
		}},
		worker.Job{Name: "panics", Interval: 10 * time.Millisecond, Run: func(context.Context) error {
			atomic.AddInt32(&panicking, 1)
			panic("kaboom")
		}},
	)

	s.Start(context.Background())
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&failing) >= 2 && atomic.LoadInt32(&panicking) >= 2
	}, time.Second, 5*time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))
}

func TestSchedulerAppliesJobTimeout(t *testing.T) {
	deadlineSeen := make(chan bool, 1)
	s := worker.NewScheduler(15*time.Millisecond, worker.Job{
		Name:     "slow",
		Interval: time.Hour,
		Run: func(ctx context.Context) error {
			<-ctx.Done()
			select {
			case deadlineSeen <- errors.Is(ctx.Err(), context.DeadlineExceeded):
			default:
			}
			return ctx.Err()
		},
	})

	s.Start(context.Background())
	select {
	case ok := <-deadlineSeen:
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("job was not cancelled by its timeout")
	}
	require.NoError(t, s.Stop(context.Background()))
}

func TestSchedulerSkipsDisabledJobs(t *testing.T) {
	var runs int32
	s := worker.NewScheduler(time.Second, worker.Job{Name: "off", Interval: 0, Run: func(context.Context) error {
		atomic.AddInt32(&runs, 1)
		return nil
	}})
	s.Start(context.Background())
	require.NoError(t, s.Stop(context.Background()))
	assert.Zero(t, atomic.LoadInt32(&runs))
}
