package bootstrap

import (
	"context"
	"log/slog"

	"booking-calendar-sync/internal/pkg/config"
	"booking-calendar-sync/internal/usecase/commands"
	"booking-calendar-sync/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(NewScheduler),
	fx.Invoke(startScheduler),
)

func NewScheduler(cfg config.Config, sync commands.SyncCommands, reminders commands.ReminderCommands) *worker.Scheduler {
	return worker.NewScheduler(cfg.Scheduler.JobTimeout, worker.DefaultJobs(cfg.Scheduler, sync, reminders)...)
}

func startScheduler(lc fx.Lifecycle, cfg config.Config, s *worker.Scheduler) {
	if !cfg.Scheduler.Enabled {
		slog.Info("Scheduler disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Start(ctx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
