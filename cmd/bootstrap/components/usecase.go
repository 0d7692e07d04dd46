package components

import (
	"time"

	"booking-calendar-sync/internal/domain/settings"
	"booking-calendar-sync/internal/pkg/clock"
	"booking-calendar-sync/internal/pkg/config"
	"booking-calendar-sync/internal/usecase/busy"
	"booking-calendar-sync/internal/usecase/commands"
	"booking-calendar-sync/internal/usecase/queries"
	"booking-calendar-sync/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewSettingsSource,
	busy.NewProvider,
	commands.NewMirror,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewAvailabilityCommands,
		commands.NewSyncCommands,
		commands.NewReminderCommands,
		commands.NewSettingsCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewServiceQueries,
		queries.NewAvailabilityQueries,
		queries.NewSettingsQueries,
	),
)

// NewSettingsSource seeds the settings with the environment until an admin saves a document.
func NewSettingsSource(uow shared.UnitOfWork, loc *time.Location, cfg config.Config) *shared.SettingsSource {
	return shared.NewSettingsSource(uow, loc, DefaultSettings(cfg.Business))
}

func DefaultSettings(b config.BusinessConfig) settings.Document {
	return settings.Document{
		OpenAt:              b.OpenAt,
		CloseAt:             b.CloseAt,
		WorkingDays:         b.WorkingDays,
		AnchorTimes:         b.AnchorTimes,
		HolidayKeywords:     b.HolidayKeywords,
		AllDayIsHoliday:     b.AllDayIsHoliday,
		DailyCap:            b.DailyCap,
		WriteCalendarID:     b.WriteCalendarID,
		ReadCalendarIDs:     b.ReadCalendarIDs,
		ReminderLeadMinutes: int(b.ReminderLeadTime / time.Minute),
	}
}
