//go:build unit

package commands_test

import (
	"testing"
	"time"

	"booking-calendar-sync/internal/domain/booking"
	"booking-calendar-sync/internal/domain/service"
	"booking-calendar-sync/internal/domain/settings"
	"booking-calendar-sync/internal/pkg/clock"
	"booking-calendar-sync/internal/pkg/config"
	"booking-calendar-sync/internal/usecase/commands"
	"booking-calendar-sync/internal/usecase/shared"
	"booking-calendar-sync/tests/common/builder"
	"booking-calendar-sync/tests/common/fakes"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const writeCalendar = "primary"

type harness struct {
	uow      *fakes.UoW
	cache    *fakes.Cache
	locker   *fakes.Locker
	notifier *fakes.Notifier
	calendar *fakes.Calendar
	clock    *clock.MockClock
	settings *shared.SettingsSource
	service  *service.Service

	mirror       *commands.Mirror
	bookings     commands.BookingCommands
	availability commands.AvailabilityCommands
	sync         commands.SyncCommands
	reminders    commands.ReminderCommands
	settingsCmds commands.SettingsCommands
}

func defaultDocument() settings.Document {
	return settings.Document{
		OpenAt:              "09:00",
		CloseAt:             "18:00",
		WorkingDays:         []int{1, 2, 3, 4, 5},
		AnchorTimes:         []string{"09:00", "14:00"},
		HolidayKeywords:     "holiday",
		AllDayIsHoliday:     true,
		WriteCalendarID:     writeCalendar,
		ReadCalendarIDs:     []string{writeCalendar},
		ReminderLeadMinutes: 24 * 60,
	}
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWith(t, defaultDocument(), testWebhook())
}

func testWebhook() config.WebhookConfig {
	return config.WebhookConfig{
		Address:      "https://booking.example.com/webhooks/calendar",
		ChannelToken: "hook-secret",
		ChannelTTL:   7 * 24 * time.Hour,
	}
}

func newHarnessWith(t *testing.T, doc settings.Document, webhook config.WebhookConfig) *harness {
	t.Helper()
	return newHarnessIn(t, time.UTC, doc, webhook)
}

// newZonedHarness runs the business in loc while stored bookings come back in UTC.
func newZonedHarness(t *testing.T, loc *time.Location) *harness {
	t.Helper()
	h := newHarnessIn(t, loc, defaultDocument(), testWebhook())
	h.uow.StoreZone = time.UTC
	return h
}

func newHarnessIn(t *testing.T, loc *time.Location, doc settings.Document, webhook config.WebhookConfig) *harness {
	t.Helper()

	h := &harness{
		uow:      fakes.NewUoW(),
		cache:    fakes.NewCache(),
		locker:   fakes.NewLocker(),
		notifier: &fakes.Notifier{},
		calendar: fakes.NewCalendar(),
		clock:    clock.NewMockClock(builder.DefaultNow),
	}
	h.calendar.Now = h.clock.Now
	h.uow.SetSettings(doc)
	h.settings = shared.NewSettingsSource(h.uow, loc, doc)

	svc, err := service.NewService("Consultation", 45*time.Minute, 15*time.Minute, decimal.NewFromInt(80))
	require.NoError(t, err)
	h.service = svc
	h.uow.AddService(svc)

	h.mirror = commands.NewMirror(h.calendar, h.uow)
	h.bookings = commands.NewBookingCommands(h.uow, h.settings, h.mirror, h.notifier, h.cache, h.clock)
	h.availability = commands.NewAvailabilityCommands(h.uow, h.settings, h.calendar, h.cache, h.locker, h.clock)
	h.sync = commands.NewSyncCommands(h.uow, h.settings, h.calendar, h.mirror, h.availability, h.notifier, h.cache, h.locker, h.clock, webhook)
	h.reminders = commands.NewReminderCommands(h.uow, h.settings, h.notifier, h.locker, h.clock)
	h.settingsCmds = commands.NewSettingsCommands(h.uow, h.settings, h.availability, h.cache, h.clock)
	return h
}

// createInput books the default service on Tuesday 2026-10-20.
func (h *harness) createInput(clockTime string) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ServiceID: h.service.ID(),
		Date:      "2026-10-20",
		Time:      clockTime,
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Language:  "en",
	}
}

func (h *harness) mustCreate(t *testing.T, clockTime string) *booking.Booking {
	t.Helper()
	res, err := h.bookings.Create(t.Context(), h.createInput(clockTime))
	require.NoError(t, err)
	b, ok := h.uow.Booking(res.BookingID)
	require.True(t, ok)
	return b
}

func (h *harness) stored(t *testing.T, b *booking.Booking) *booking.Booking {
	t.Helper()
	got, ok := h.uow.Booking(b.ID())
	require.True(t, ok)
	return got
}

func at(day int, hour, minute int) time.Time {
	return time.Date(2026, time.October, day, hour, minute, 0, 0, time.UTC)
}
