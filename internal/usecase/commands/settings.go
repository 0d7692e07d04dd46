package commands

import (
	"context"
	"log/slog"

	"booking-calendar-sync/internal/domain/settings"
	"booking-calendar-sync/internal/pkg/clock"
	"booking-calendar-sync/internal/pkg/dates"
	"booking-calendar-sync/internal/pkg/errs"
	"booking-calendar-sync/internal/pkg/patch"
	"booking-calendar-sync/internal/usecase/shared"
)

// SettingsPatch carries the fields to change; nil fields keep their current value.
type SettingsPatch struct {
	OpenAt              *string
	CloseAt             *string
	WorkingDays         []int
	AnchorTimes         []string
	HolidayKeywords     *string
	AllDayIsHoliday     *bool
	DailyCap            *int
	WriteCalendarID     *string
	ReadCalendarIDs     []string
	ReminderLeadMinutes *int
}

type SettingsCommands interface {
	UpdateSettings(ctx context.Context, p SettingsPatch) (settings.Document, error)
}

type settingsCommandsImpl struct {
	uow          shared.UnitOfWork
	source       *shared.SettingsSource
	availability AvailabilityCommands
	cache        shared.Cache
	clock        clock.Clock
}

func NewSettingsCommands(
	uow shared.UnitOfWork,
	source *shared.SettingsSource,
	availability AvailabilityCommands,
	cache shared.Cache,
	clock clock.Clock,
) SettingsCommands {
	return &settingsCommandsImpl{
		uow:          uow,
		source:       source,
		availability: availability,
		cache:        cache,
		clock:        clock,
	}
}

// UpdateSettings validates and stores the merged document, then rebuilds the
// current and next month. A failed rebuild is logged; the next tick repeats it.
func (c *settingsCommandsImpl) UpdateSettings(ctx context.Context, p SettingsPatch) (settings.Document, error) {
	current, err := c.source.Load(ctx)
	if err != nil {
		return settings.Document{}, err
	}
	doc := merge(current.Document(), p)

	if _, err := doc.Parse(c.source.Location()); err != nil {
		return settings.Document{}, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Settings().Save(ctx, doc)
	})
	if err != nil {
		return settings.Document{}, errs.Mark(err, ErrDatabaseFailure)
	}
	slog.InfoContext(ctx, "settings updated")

	shared.InvalidateDays(ctx, c.cache)
	now := c.clock.Now().In(c.source.Location())
	for _, month := range monthsFrom(now) {
		if _, err := c.availability.RecalculateMonth(ctx, month); err != nil {
			slog.WarnContext(ctx, "availability recalculation after settings change failed",
				"month", dates.FormatMonth(month), "error", err.Error())
		}
	}
	return doc, nil
}

func merge(d settings.Document, p SettingsPatch) settings.Document {
	d.OpenAt = patch.Coalesce(p.OpenAt, d.OpenAt)
	d.CloseAt = patch.Coalesce(p.CloseAt, d.CloseAt)
	d.WorkingDays = patch.CoalesceSlice(p.WorkingDays, d.WorkingDays)
	d.AnchorTimes = patch.CoalesceSlice(p.AnchorTimes, d.AnchorTimes)
	d.HolidayKeywords = patch.Coalesce(p.HolidayKeywords, d.HolidayKeywords)
	d.AllDayIsHoliday = patch.Coalesce(p.AllDayIsHoliday, d.AllDayIsHoliday)
	d.DailyCap = patch.Coalesce(p.DailyCap, d.DailyCap)
	d.WriteCalendarID = patch.Coalesce(p.WriteCalendarID, d.WriteCalendarID)
	d.ReadCalendarIDs = patch.CoalesceSlice(p.ReadCalendarIDs, d.ReadCalendarIDs)
	d.ReminderLeadMinutes = patch.Coalesce(p.ReminderLeadMinutes, d.ReminderLeadMinutes)
	return d
}
