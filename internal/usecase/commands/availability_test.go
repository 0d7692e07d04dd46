//go:build unit

package commands_test

import (
	"errors"
	"testing"
	"time"

	"booking-calendar-sync/internal/domain/availability"
	"booking-calendar-sync/internal/domain/calendar"
	"booking-calendar-sync/internal/pkg/errs"
	"booking-calendar-sync/internal/usecase/commands"
	"booking-calendar-sync/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusOn(rows []availability.Entry, day int) availability.Status {
	want := at(day, 0, 0)
	for _, r := range rows {
		if r.Date.Equal(want) {
			return r.Status
		}
	}
	return ""
}

func TestRecalculateMonth(t *testing.T) {
	october := at(1, 0, 0)

	t.Run("success: classifies every day of the month", func(t *testing.T) {
		doc := defaultDocument()
		doc.DailyCap = 1
		h := newHarnessWith(t, doc, testWebhook())
		h.mustCreate(t, "10:00") // Tue 20th
		h.calendar.AddEvent(calendar.Event{CalendarID: writeCalendar, Summary: "Team offsite", Start: at(22, 0, 0), End: at(23, 0, 0), AllDay: true})
		h.calendar.AddEvent(calendar.Event{CalendarID: writeCalendar, Summary: "Public Holiday", Start: at(27, 12, 0), End: at(27, 13, 0)})

		res, err := h.availability.RecalculateMonth(t.Context(), october)
		require.NoError(t, err)
		assert.Equal(t, 31, res.Rows)
		assert.False(t, res.Skipped)

		rows := h.uow.AvailabilityRows()
		require.Len(t, rows, 31)
		assert.Equal(t, availability.StatusClosed, statusOn(rows, 24), "Saturday")
		assert.Equal(t, availability.StatusClosed, statusOn(rows, 25), "Sunday")
		assert.Equal(t, availability.StatusBooked, statusOn(rows, 20), "daily cap reached")
		assert.Equal(t, availability.StatusHoliday, statusOn(rows, 22), "all-day event")
		assert.Equal(t, availability.StatusHoliday, statusOn(rows, 27), "keyword in title")
		assert.Equal(t, availability.StatusAvailable, statusOn(rows, 21))

		assert.True(t, h.cache.Has(shared.EventsDayKey(at(21, 0, 0))), "day events are cached for slot queries")
	})

	t.Run("success: reruns with unchanged inputs produce the same index", func(t *testing.T) {
		h := newHarness(t)
		h.mustCreate(t, "10:00")
		h.calendar.AddEvent(calendar.Event{CalendarID: writeCalendar, Summary: "Dentist", Start: at(21, 9, 0), End: at(21, 17, 30)})

		_, err := h.availability.RecalculateMonth(t.Context(), october)
		require.NoError(t, err)
		first := h.uow.AvailabilityRows()

		_, err = h.availability.RecalculateMonth(t.Context(), october.Add(15*24*time.Hour))
		require.NoError(t, err)
		second := h.uow.AvailabilityRows()

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("index changed on rerun (-first +second):\n%s", diff)
		}
		assert.Equal(t, availability.StatusBooked, statusOn(second, 21), "no start fits around the event")
	})

	t.Run("success: skipped while another run holds the month", func(t *testing.T) {
		h := newHarness(t)
		release := h.locker.Hold("job:availability:2026-10")
		defer release()

		res, err := h.availability.RecalculateMonth(t.Context(), october)
		require.NoError(t, err)
		assert.True(t, res.Skipped)
		assert.Empty(t, h.uow.AvailabilityRows())
	})

	t.Run("success: without a connected calendar only bookings count", func(t *testing.T) {
		doc := defaultDocument()
		doc.ReadCalendarIDs = nil
		doc.WriteCalendarID = ""
		h := newHarnessWith(t, doc, testWebhook())
		h.calendar.ListErr = errors.New("must not be called")

		res, err := h.availability.RecalculateMonth(t.Context(), october)
		require.NoError(t, err)
		assert.Equal(t, 31, res.Rows)
		assert.Zero(t, h.calendar.ListCalls)
	})

	t.Run("error: the month fetch fails", func(t *testing.T) {
		h := newHarness(t)
		h.calendar.ListErr = errors.New("timeout")

		_, err := h.availability.RecalculateMonth(t.Context(), october)
		assert.True(t, errs.Is(err, commands.ErrMonthlyFetchFailed))
		assert.Empty(t, h.uow.AvailabilityRows())
	})
}
