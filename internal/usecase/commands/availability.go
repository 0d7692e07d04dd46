package commands

import (
	"context"
	"log/slog"
	"time"

	"booking-calendar-sync/internal/domain/availability"
	"booking-calendar-sync/internal/domain/calendar"
	"booking-calendar-sync/internal/domain/service"
	"booking-calendar-sync/internal/domain/settings"
	"booking-calendar-sync/internal/domain/slot"
	"booking-calendar-sync/internal/pkg/clock"
	"booking-calendar-sync/internal/pkg/dates"
	"booking-calendar-sync/internal/pkg/errs"
	"booking-calendar-sync/internal/usecase/busy"
	"booking-calendar-sync/internal/usecase/shared"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "booking-calendar-sync/usecase/commands"

var ErrMonthlyFetchFailed = errs.Class("failed to fetch calendar events for month", errs.ErrExternalService)

type RecalculateResult struct {
	Month   time.Time
	Rows    int
	Skipped bool // another run held the guard
}

type AvailabilityCommands interface {
	RecalculateMonth(ctx context.Context, month time.Time) (*RecalculateResult, error)
}

type availabilityCommandsImpl struct {
	uow      shared.UnitOfWork
	settings *shared.SettingsSource
	api      shared.CalendarAPI
	cache    shared.Cache
	locker   shared.Locker
	clock    clock.Clock
	guardTTL time.Duration
}

func NewAvailabilityCommands(
	uow shared.UnitOfWork,
	settings *shared.SettingsSource,
	api shared.CalendarAPI,
	cache shared.Cache,
	locker shared.Locker,
	clock clock.Clock,
) AvailabilityCommands {
	return &availabilityCommandsImpl{
		uow:      uow,
		settings: settings,
		api:      api,
		cache:    cache,
		locker:   locker,
		clock:    clock,
		guardTTL: 5 * time.Minute,
	}
}

// RecalculateMonth rebuilds the availability index for every day of the month and
// every active service. Rows are upserted, so reruns with unchanged inputs leave the
// index unchanged.
func (a *availabilityCommandsImpl) RecalculateMonth(ctx context.Context, month time.Time) (*RecalculateResult, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "availability.RecalculateMonth")
	defer span.End()

	s, err := a.settings.Load(ctx)
	if err != nil {
		return nil, err
	}
	first := dates.FirstDayOfMonth(month.In(s.Location))
	span.SetAttributes(attribute.String("month", dates.FormatMonth(first)))
	result := &RecalculateResult{Month: first}

	release, ok, err := a.locker.TryLock(ctx, "job:availability:"+dates.FormatMonth(first), a.guardTTL)
	if err != nil {
		return nil, errs.Wrap(err, "acquire availability guard")
	}
	if !ok {
		slog.InfoContext(ctx, "availability recalculation already running", "month", dates.FormatMonth(first))
		result.Skipped = true
		return result, nil
	}
	defer releaseGuard(ctx, release)

	entries, err := a.buildMonth(ctx, first, s)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Availability().Upsert(ctx, entries)
	})
	if err != nil {
		span.RecordError(err)
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	result.Rows = len(entries)

	shared.InvalidateDays(ctx, a.cache)
	span.SetAttributes(attribute.Int("rows", result.Rows))
	slog.InfoContext(ctx, "availability recalculated", "month", dates.FormatMonth(first), "rows", result.Rows)
	return result, nil
}

func (a *availabilityCommandsImpl) buildMonth(ctx context.Context, first time.Time, s settings.Settings) ([]availability.Entry, error) {
	next := dates.FirstDayOfNextMonth(first)

	services, err := a.uow.Reads().Services().ListActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}

	connected := s.CalendarConnected()
	var monthEvents []calendar.Event
	if connected {
		// one fetch for the whole month
		monthEvents, err = a.api.ListEvents(ctx, s.ReadCalendarIDs, first, next)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "month %s", dates.FormatMonth(first)), ErrMonthlyFetchFailed)
		}
	}

	bookings, err := a.uow.Reads().Bookings().ListBlocking(ctx, first, next)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}

	rules := availability.HolidayRules{AllDayIsHoliday: s.AllDayIsHoliday, Keywords: s.HolidayKeywords}
	entries := make([]availability.Entry, 0, len(services)*31)

	for _, day := range dates.DaysInMonth(first) {
		dayEnd := dates.NextDay(day)

		if !s.IsWorkingDay(day) {
			entries = appendAll(entries, day, services, availability.StatusClosed)
			continue
		}

		dayEvents := calendar.FilterDay(monthEvents, day, dayEnd)
		if connected {
			// slot queries right after this run must see the same event set
			if err := a.cache.Set(ctx, shared.EventsDayKey(day), dayEvents, shared.EventsDayTTL); err != nil {
				slog.WarnContext(ctx, "event cache write failed", "date", dates.FormatDay(day), "error", err.Error())
			}
		}

		if availability.IsHoliday(dayEvents, day, dayEnd, rules) {
			entries = appendAll(entries, day, services, availability.StatusHoliday)
			continue
		}

		busySlots := busy.Merge(day, dayEnd, dayEvents, bookings, connected)
		count := busy.CountOnDay(day, dayEnd, bookings)
		for _, svc := range services {
			starts := slot.AvailableStarts(s.SlotRequest(day, svc.Span()), busySlots)
			entries = append(entries, availability.Entry{
				Date:      day,
				ServiceID: svc.ID(),
				Status:    availability.DayStatus(len(starts), count, s.DailyCap),
			})
		}
	}
	return entries, nil
}

func appendAll(entries []availability.Entry, day time.Time, services []*service.Service, status availability.Status) []availability.Entry {
	for _, svc := range services {
		entries = append(entries, availability.Entry{Date: day, ServiceID: svc.ID(), Status: status})
	}
	return entries
}

func releaseGuard(ctx context.Context, release func(context.Context) error) {
	// the job context may already be cancelled
	if err := release(context.WithoutCancel(ctx)); err != nil {
		slog.WarnContext(ctx, "failed to release job guard", "error", err.Error())
	}
}
