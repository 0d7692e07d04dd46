package queries

import (
	"context"
	"log/slog"
	"time"

	"booking-calendar-sync/internal/domain/availability"
	"booking-calendar-sync/internal/domain/service"
	"booking-calendar-sync/internal/domain/slot"
	"booking-calendar-sync/internal/infra"
	"booking-calendar-sync/internal/pkg/clock"
	"booking-calendar-sync/internal/pkg/dates"
	"booking-calendar-sync/internal/pkg/errs"
	"booking-calendar-sync/internal/usecase/busy"
	"booking-calendar-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

// MaxRangeDays bounds a single availability query.
const MaxRangeDays = 62

var (
	ErrServiceUnavailable = errs.Class("service not available", errs.ErrNotFound)
	ErrInvalidRange       = errs.Class("invalid date range", errs.ErrValidation)
)

type AvailabilityQueries interface {
	GetAvailability(ctx context.Context, serviceID uuid.UUID, from, to string) (*AvailabilityView, error)
	GetMonthlyAvailability(ctx context.Context, serviceID uuid.UUID, month string) (*MonthlyAvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow      shared.UnitOfWork
	settings *shared.SettingsSource
	provider *busy.Provider
	cache    shared.Cache
	clock    clock.Clock
}

func NewAvailabilityQueries(
	uow shared.UnitOfWork,
	settings *shared.SettingsSource,
	provider *busy.Provider,
	cache shared.Cache,
	clock clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:      uow,
		settings: settings,
		provider: provider,
		cache:    cache,
		clock:    clock,
	}
}

// GetAvailability returns the free start times per day in [from, to]. Computed
// ranges are cached briefly; start times already in the past are dropped on read.
func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, serviceID uuid.UUID, from, to string) (*AvailabilityView, error) {
	loc := q.settings.Location()
	fromDay, err := dates.ParseDay(from, loc)
	if err != nil {
		return nil, err
	}
	toDay := fromDay
	if to != "" {
		if toDay, err = dates.ParseDay(to, loc); err != nil {
			return nil, err
		}
	}
	if toDay.Before(fromDay) || len(dates.DaysBetween(fromDay, toDay)) > MaxRangeDays {
		return nil, errs.Wrapf(ErrInvalidRange, "%s..%s", from, dates.FormatDay(toDay))
	}

	svc, err := q.findService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	key := shared.RangeSummaryKey(serviceID, fromDay, toDay)
	var view AvailabilityView
	hit, err := q.cache.Get(ctx, key, &view)
	if err != nil {
		slog.WarnContext(ctx, "availability cache read failed", "key", key, "error", err.Error())
	}
	if !hit {
		computed, err := q.compute(ctx, svc, fromDay, toDay)
		if err != nil {
			return nil, err
		}
		view = *computed
		if err := q.cache.Set(ctx, key, view, shared.AvailabilityTTL); err != nil {
			slog.WarnContext(ctx, "availability cache write failed", "key", key, "error", err.Error())
		}
	}

	dropPast(&view, q.clock.Now())
	return &view, nil
}

func (q *availabilityQueriesImpl) compute(ctx context.Context, svc *service.Service, fromDay, toDay time.Time) (*AvailabilityView, error) {
	s, err := q.settings.Load(ctx)
	if err != nil {
		return nil, err
	}
	rules := availability.HolidayRules{AllDayIsHoliday: s.AllDayIsHoliday, Keywords: s.HolidayKeywords}

	view := &AvailabilityView{
		ServiceID: svc.ID(),
		From:      dates.FormatDay(fromDay),
		To:        dates.FormatDay(toDay),
		Days:      []DaySlots{},
	}
	for _, d := range dates.DaysBetween(fromDay, toDay) {
		entry := DaySlots{Date: dates.FormatDay(d), Slots: []time.Time{}}
		if !s.IsWorkingDay(d) {
			view.Days = append(view.Days, entry)
			continue
		}

		day, err := q.provider.GetDay(ctx, d, s)
		if err != nil {
			return nil, err
		}
		capped := s.DailyCap > 0 && day.Bookings >= s.DailyCap
		if !capped && !availability.IsHoliday(day.Events, day.Start, day.End, rules) {
			entry.Slots = append(entry.Slots, slot.AvailableStarts(s.SlotRequest(d, svc.Span()), day.Busy)...)
		}
		view.Days = append(view.Days, entry)
	}
	return view, nil
}

func dropPast(view *AvailabilityView, now time.Time) {
	for i := range view.Days {
		kept := view.Days[i].Slots[:0]
		for _, t := range view.Days[i].Slots {
			if !t.Before(now) {
				kept = append(kept, t)
			}
		}
		view.Days[i].Slots = kept
	}
}

func (q *availabilityQueriesImpl) GetMonthlyAvailability(ctx context.Context, serviceID uuid.UUID, month string) (*MonthlyAvailabilityView, error) {
	first, err := dates.ParseMonth(month, q.settings.Location())
	if err != nil {
		return nil, err
	}
	if _, err := q.findService(ctx, serviceID); err != nil {
		return nil, err
	}

	entries, err := q.uow.Reads().Availability().FindMonth(ctx, serviceID, first)
	if err != nil {
		return nil, err
	}

	view := &MonthlyAvailabilityView{
		ServiceID: serviceID,
		Month:     dates.FormatMonth(first),
		Days:      make(map[string]availability.Status, len(entries)),
	}
	for _, e := range entries {
		view.Days[dates.FormatDay(e.Date)] = e.Status
	}
	return view, nil
}

func (q *availabilityQueriesImpl) findService(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	svc, err := q.uow.Reads().Services().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceUnavailable
		}
		return nil, err
	}
	if !svc.Active() {
		return nil, ErrServiceUnavailable
	}
	return svc, nil
}
