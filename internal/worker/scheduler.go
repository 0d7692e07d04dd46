// Package worker runs the periodic background jobs.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"booking-calendar-sync/internal/pkg/config"
	"booking-calendar-sync/internal/usecase/commands"
)

// Job is one periodic task. Jobs guard themselves against overlapping runs across
// instances, so the scheduler only keeps runs of the same job sequential locally.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

type Scheduler struct {
	jobs    []Job
	timeout time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler(timeout time.Duration, jobs ...Job) *Scheduler {
	return &Scheduler{jobs: jobs, timeout: timeout}
}

// DefaultJobs binds the sync tick, reminders and channel renewal to their cadences.
func DefaultJobs(cfg config.SchedulerConfig, sync commands.SyncCommands, reminders commands.ReminderCommands) []Job {
	return []Job{
		{Name: "sync", Interval: cfg.SyncInterval, Run: sync.Tick},
		{Name: "reminders", Interval: cfg.ReminderInterval, Run: func(ctx context.Context) error {
			result, err := reminders.SendDueReminders(ctx)
			if err != nil {
				return err
			}
			if !result.Skipped && result.Candidates > 0 {
				slog.InfoContext(ctx, "reminders sent", "candidates", result.Candidates, "sent", result.Sent, "failed", result.Failed)
			}
			return nil
		}},
		{Name: "channel-renewal", Interval: cfg.RenewalInterval, Run: sync.RenewWatchChannel},
	}
}

// Start runs every job once immediately and then on its interval until Stop.
func (s *Scheduler) Start(parent context.Context) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	s.cancel = cancel

	for _, job := range s.jobs {
		if job.Interval <= 0 {
			slog.Warn("job disabled", "job", job.Name)
			continue
		}
		s.wg.Add(1)
		go s.loop(ctx, job)
	}
	slog.Info("Scheduler started", "jobs", len(s.jobs))
}

func (s *Scheduler) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.runOnce(ctx, job)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx, job)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("job panicked", "job", job.Name, "panic", r)
		}
	}()

	runCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()
	if err := job.Run(runCtx); err != nil {
		slog.Error("job failed", "job", job.Name, "duration_ms", time.Since(started).Milliseconds(), "error", err.Error())
		return
	}
	slog.Debug("job finished", "job", job.Name, "duration_ms", time.Since(started).Milliseconds())
}
