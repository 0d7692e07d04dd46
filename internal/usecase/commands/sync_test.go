//go:build unit

package commands_test

import (
	"errors"
	"testing"
	"time"

	"booking-calendar-sync/internal/domain/booking"
	"booking-calendar-sync/internal/domain/calendar"
	"booking-calendar-sync/internal/pkg/errs"
	"booking-calendar-sync/internal/usecase/commands"
	"booking-calendar-sync/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mirroredEvent returns the calendar copy of b as the provider would report it.
func mirroredEvent(t *testing.T, h *harness, b *booking.Booking) calendar.Event {
	t.Helper()
	e, ok := h.calendar.Event(b.ExternalEventID())
	require.True(t, ok, "booking has no calendar event")
	return e
}

func TestRunSync(t *testing.T) {
	t.Run("success: foreign events are ignored", func(t *testing.T) {
		h := newHarness(t)
		h.calendar.QueueChanges(calendar.Event{ID: "foreign", CalendarID: writeCalendar, Summary: "Lunch", Start: at(20, 12, 0), End: at(20, 13, 0)})

		res, err := h.sync.RunSync(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 1, res.Fetched)
		assert.Equal(t, 1, res.Ignored)
		assert.Zero(t, res.Applied)
	})

	t.Run("success: a cancellation in the calendar cancels the booking", func(t *testing.T) {
		h := newHarness(t)
		b := h.mustCreate(t, "10:00")
		e := mirroredEvent(t, h, b)
		e.Status = calendar.EventCancelled
		h.calendar.QueueChanges(e)

		res, err := h.sync.RunSync(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 1, res.Applied)
		assert.Equal(t, []time.Time{at(20, 0, 0)}, res.TouchedDays)

		got := h.stored(t, b)
		assert.Equal(t, booking.StatusCancelled, got.Status())
		assert.False(t, got.NeedsMirror(), "changes from the calendar are not written back")
		assert.Contains(t, h.notifier.Kinds(shared.AudienceClient), shared.NotifyCancelledBySync)
		assert.Contains(t, h.notifier.Kinds(shared.AudienceAdmin), shared.NotifyCancelledBySync)
	})

	t.Run("success: a moved event moves the booking", func(t *testing.T) {
		h := newHarness(t)
		b := h.mustCreate(t, "10:00")
		e := mirroredEvent(t, h, b)
		e.Start, e.End = at(21, 15, 0), at(21, 16, 0)
		h.calendar.QueueChanges(e)

		res, err := h.sync.RunSync(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 1, res.Applied)
		assert.ElementsMatch(t, []time.Time{at(20, 0, 0), at(21, 0, 0)}, res.TouchedDays)

		got := h.stored(t, b)
		assert.Equal(t, at(21, 15, 0), got.Start())
		assert.Equal(t, at(21, 16, 0), got.End())
		assert.Equal(t, b.Revision(), got.Revision())
		assert.Contains(t, h.notifier.Kinds(shared.AudienceClient), shared.NotifyRescheduledBySync)
	})

	t.Run("success: an unchanged event is a no-op", func(t *testing.T) {
		h := newHarness(t)
		b := h.mustCreate(t, "10:00")
		h.calendar.QueueChanges(mirroredEvent(t, h, b))

		res, err := h.sync.RunSync(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 1, res.Ignored)
		assert.Zero(t, res.Applied)
	})

	t.Run("success: a stale event loses against the ledger and gets rewritten", func(t *testing.T) {
		h := newHarness(t)
		b := h.mustCreate(t, "10:00")
		staleCopy := mirroredEvent(t, h, b)

		// move the booking locally while the calendar is unreachable
		require.NoError(t, h.bookings.HandleAdminAction(t.Context(), b.ID(), b.AdminToken(), booking.DecisionAccept))
		h.calendar.WriteErr = errors.New("unavailable")
		require.NoError(t, h.bookings.ProposeNewTime(t.Context(), b.ID(), b.AdminToken(), commands.TimeInput{Date: "2026-10-22", Time: "14:00"}))
		require.NoError(t, h.bookings.RespondToProposal(t.Context(), b.ClientToken(), booking.DecisionAccept))
		require.True(t, h.stored(t, b).NeedsMirror())
		h.calendar.WriteErr = nil

		staleCopy.Start, staleCopy.End = at(20, 16, 0), at(20, 17, 0)
		h.calendar.QueueChanges(staleCopy)

		res, err := h.sync.RunSync(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 1, res.Stale)
		assert.Equal(t, 1, res.Remirrored)

		got := h.stored(t, b)
		assert.Equal(t, at(22, 14, 0), got.Start())
		assert.False(t, got.NeedsMirror())
		e := mirroredEvent(t, h, got)
		assert.Equal(t, at(22, 14, 0), e.Start)
		assert.Equal(t, got.Revision(), e.Revision)
	})

	t.Run("success: the watermark advances with an overlap", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.sync.RunSync(t.Context())
		require.NoError(t, err)
		h.clock.Add(15 * time.Minute)
		_, err = h.sync.RunSync(t.Context())
		require.NoError(t, err)

		require.Len(t, h.calendar.ChangedFrom, 2)
		assert.Equal(t, h.clock.Now().Add(-15*time.Minute).Add(-24*time.Hour), h.calendar.ChangedFrom[0])
		assert.Equal(t, h.clock.Now().Add(-15*time.Minute).Add(-2*time.Minute), h.calendar.ChangedFrom[1])
	})

	t.Run("success: skipped while another sync runs", func(t *testing.T) {
		h := newHarness(t)
		release := h.locker.Hold("job:sync")
		defer release()

		res, err := h.sync.RunSync(t.Context())
		require.NoError(t, err)
		assert.True(t, res.Skipped)
		assert.Empty(t, h.calendar.ChangedFrom)
	})

	t.Run("success: skipped without a write calendar", func(t *testing.T) {
		doc := defaultDocument()
		doc.WriteCalendarID = ""
		h := newHarnessWith(t, doc, testWebhook())

		res, err := h.sync.RunSync(t.Context())
		require.NoError(t, err)
		assert.True(t, res.Skipped)
	})

	t.Run("error: the fetch fails and the watermark stays", func(t *testing.T) {
		h := newHarness(t)
		h.calendar.ListErr = errors.New("timeout")

		_, err := h.sync.RunSync(t.Context())
		assert.True(t, errs.Is(err, commands.ErrSyncFetchFailed))
		_, found := h.uow.Watermark(commands.WatermarkCalendarEvents)
		assert.False(t, found)
	})
}

func TestHandleWebhook(t *testing.T) {
	channel := calendar.Channel{ID: "channel-1", ResourceID: "res-1", CalendarID: writeCalendar, Expiration: at(26, 0, 0)}
	notification := func(state string) commands.WebhookNotification {
		return commands.WebhookNotification{ChannelID: channel.ID, ResourceID: channel.ResourceID, ResourceState: state, ChannelToken: "hook-secret"}
	}

	t.Run("success: handshake does not sync", func(t *testing.T) {
		h := newHarness(t)
		h.uow.SetChannel(channel)

		require.NoError(t, h.sync.HandleWebhook(t.Context(), notification(commands.ResourceStateSync)))
		assert.Empty(t, h.calendar.ChangedFrom)
	})

	t.Run("success: a change notification syncs and rebuilds two months", func(t *testing.T) {
		h := newHarness(t)
		h.uow.SetChannel(channel)

		require.NoError(t, h.sync.HandleWebhook(t.Context(), notification(commands.ResourceStateExists)))
		assert.Len(t, h.calendar.ChangedFrom, 1)
		assert.Len(t, h.uow.AvailabilityRows(), 31+30)
	})

	t.Run("error: unknown channel", func(t *testing.T) {
		h := newHarness(t)
		h.uow.SetChannel(channel)
		n := notification(commands.ResourceStateExists)
		n.ChannelID = "someone-else"

		assert.ErrorIs(t, h.sync.HandleWebhook(t.Context(), n), commands.ErrUnknownChannel)
		assert.Empty(t, h.calendar.ChangedFrom)
	})

	t.Run("error: no channel registered", func(t *testing.T) {
		h := newHarness(t)
		assert.ErrorIs(t, h.sync.HandleWebhook(t.Context(), notification(commands.ResourceStateExists)), commands.ErrUnknownChannel)
	})

	t.Run("error: wrong channel token", func(t *testing.T) {
		h := newHarness(t)
		h.uow.SetChannel(channel)
		n := notification(commands.ResourceStateExists)
		n.ChannelToken = "forged"

		assert.ErrorIs(t, h.sync.HandleWebhook(t.Context(), n), commands.ErrInvalidChannelAuth)
	})
}

func TestRenewWatchChannel(t *testing.T) {
	t.Run("success: registers a channel when none exists", func(t *testing.T) {
		h := newHarness(t)

		require.NoError(t, h.sync.RenewWatchChannel(t.Context()))

		ch, ok := h.uow.Channel()
		require.True(t, ok)
		assert.Equal(t, writeCalendar, ch.CalendarID)
		assert.Len(t, h.calendar.Channels(), 1)
	})

	t.Run("success: keeps a channel far from expiry", func(t *testing.T) {
		h := newHarness(t)
		h.uow.SetChannel(calendar.Channel{ID: "current", CalendarID: writeCalendar, Expiration: h.clock.Now().Add(72 * time.Hour)})

		require.NoError(t, h.sync.RenewWatchChannel(t.Context()))
		assert.Empty(t, h.calendar.Channels())
	})

	t.Run("success: replaces an expiring channel and stops the old one", func(t *testing.T) {
		h := newHarness(t)
		h.uow.SetChannel(calendar.Channel{ID: "old", CalendarID: writeCalendar, Expiration: h.clock.Now().Add(time.Hour)})

		require.NoError(t, h.sync.RenewWatchChannel(t.Context()))

		ch, _ := h.uow.Channel()
		assert.NotEqual(t, "old", ch.ID)
		assert.Equal(t, []string{"old"}, h.calendar.Stopped())
	})

	t.Run("success: nothing to do without a webhook address", func(t *testing.T) {
		webhook := testWebhook()
		webhook.Address = ""
		h := newHarnessWith(t, defaultDocument(), webhook)

		require.NoError(t, h.sync.RenewWatchChannel(t.Context()))
		assert.Empty(t, h.calendar.Channels())
	})
}
