package commands

import (
	"context"
	"log/slog"
	"time"

	"booking-calendar-sync/internal/domain/booking"
	"booking-calendar-sync/internal/pkg/clock"
	"booking-calendar-sync/internal/pkg/errs"
	"booking-calendar-sync/internal/usecase/shared"
)

type ReminderResult struct {
	Skipped    bool
	Candidates int
	Sent       int
	Failed     int
}

type ReminderCommands interface {
	SendDueReminders(ctx context.Context) (*ReminderResult, error)
}

type reminderCommandsImpl struct {
	uow      shared.UnitOfWork
	settings *shared.SettingsSource
	notifier shared.Notifier
	locker   shared.Locker
	clock    clock.Clock
	guardTTL time.Duration
}

func NewReminderCommands(
	uow shared.UnitOfWork,
	settings *shared.SettingsSource,
	notifier shared.Notifier,
	locker shared.Locker,
	clock clock.Clock,
) ReminderCommands {
	return &reminderCommandsImpl{
		uow:      uow,
		settings: settings,
		notifier: notifier,
		locker:   locker,
		clock:    clock,
		guardTTL: 10 * time.Minute,
	}
}

// SendDueReminders notifies clients of confirmed bookings starting within the lead
// time. Each booking is re-read right before sending and marked with a conditional
// update afterwards, so a reminder goes out at most once.
func (r *reminderCommandsImpl) SendDueReminders(ctx context.Context) (*ReminderResult, error) {
	result := &ReminderResult{}

	release, ok, err := r.locker.TryLock(ctx, "job:reminders", r.guardTTL)
	if err != nil {
		return nil, errs.Wrap(err, "acquire reminder guard")
	}
	if !ok {
		result.Skipped = true
		return result, nil
	}
	defer releaseGuard(ctx, release)

	cfg, err := r.settings.Load(ctx)
	if err != nil {
		return nil, err
	}
	now := r.clock.Now()
	repo := r.uow.Reads().Bookings()

	candidates, err := repo.ListReminderCandidates(ctx, now, now.Add(cfg.ReminderLead))
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	result.Candidates = len(candidates)

	for _, c := range candidates {
		b, err := repo.FindByID(ctx, c.ID())
		if err != nil {
			result.Failed++
			slog.WarnContext(ctx, "reminder re-read failed", "booking_id", c.ID().String(), "error", err.Error())
			continue
		}
		if b.ReminderSent() || b.Status() != booking.StatusConfirmed || !b.ReminderOptIn() {
			continue
		}

		if err := r.notifier.Notify(ctx, shared.NewNotification(shared.NotifyReminderDue, shared.AudienceClient, b)); err != nil {
			result.Failed++
			slog.WarnContext(ctx, "reminder notification failed", "booking_id", b.ID().String(), "error", err.Error())
			continue
		}

		marked, err := repo.MarkReminderSent(ctx, b.ID())
		if err != nil {
			result.Failed++
			slog.ErrorContext(ctx, "reminder sent but not recorded", "booking_id", b.ID().String(), "error", err.Error())
			continue
		}
		if marked {
			result.Sent++
		}
	}

	slog.InfoContext(ctx, "reminders processed",
		"candidates", result.Candidates,
		"sent", result.Sent,
		"failed", result.Failed)
	return result, nil
}
