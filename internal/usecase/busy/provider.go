package busy

import (
	"context"
	"log/slog"
	"time"

	"booking-calendar-sync/internal/domain/calendar"
	"booking-calendar-sync/internal/domain/settings"
	"booking-calendar-sync/internal/domain/slot"
	"booking-calendar-sync/internal/pkg/dates"
	"booking-calendar-sync/internal/pkg/errs"
	"booking-calendar-sync/internal/usecase/shared"
)

// Day is everything known about one calendar day.
type Day struct {
	Start     time.Time
	End       time.Time
	Events    []calendar.Event
	Busy      []slot.Interval
	Bookings  int
	Connected bool
}

type Provider struct {
	api   shared.CalendarAPI
	cache shared.Cache
	uow   shared.UnitOfWork
}

func NewProvider(api shared.CalendarAPI, cache shared.Cache, uow shared.UnitOfWork) *Provider {
	return &Provider{api: api, cache: cache, uow: uow}
}

func (p *Provider) GetBusySlots(ctx context.Context, date time.Time, s settings.Settings) ([]slot.Interval, error) {
	day, err := p.GetDay(ctx, date, s)
	if err != nil {
		return nil, err
	}
	return day.Busy, nil
}

// GetDay loads the day's external events through the cache and merges them with
// local bookings. An unreachable calendar is logged and treated as not connected.
func (p *Provider) GetDay(ctx context.Context, date time.Time, s settings.Settings) (Day, error) {
	start := dates.DateOnly(date.In(s.Location))
	end := dates.NextDay(start)

	day := Day{Start: start, End: end}
	if s.CalendarConnected() {
		events, err := p.dayEvents(ctx, start, end, s.ReadCalendarIDs)
		if err != nil {
			slog.WarnContext(ctx, "calendar unavailable, using local bookings only",
				"date", dates.FormatDay(start), "error", err.Error())
		} else {
			day.Events = events
			day.Connected = true
		}
	}

	bookings, err := p.uow.Reads().Bookings().ListBlocking(ctx, start, end)
	if err != nil {
		return Day{}, errs.Wrap(err, "list bookings for day")
	}

	day.Busy = Merge(start, end, day.Events, bookings, day.Connected)
	day.Bookings = CountOnDay(start, end, bookings)
	return day, nil
}

func (p *Provider) dayEvents(ctx context.Context, start, end time.Time, calendars []string) ([]calendar.Event, error) {
	key := shared.EventsDayKey(start)

	var cached []calendar.Event
	hit, err := p.cache.Get(ctx, key, &cached)
	if err != nil {
		slog.WarnContext(ctx, "event cache read failed", "key", key, "error", err.Error())
	}
	if hit {
		return cached, nil
	}

	events, err := p.api.ListEvents(ctx, calendars, start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrExternalService)
	}
	events = calendar.FilterDay(events, start, end)
	if err := p.cache.Set(ctx, key, events, shared.EventsDayTTL); err != nil {
		slog.WarnContext(ctx, "event cache write failed", "key", key, "error", err.Error())
	}
	return events, nil
}
