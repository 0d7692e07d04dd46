//go:build unit

package busy_test

import (
	"testing"
	"time"

	"booking-calendar-sync/internal/domain/booking"
	"booking-calendar-sync/internal/domain/calendar"
	"booking-calendar-sync/internal/domain/slot"
	"booking-calendar-sync/internal/usecase/busy"
	"booking-calendar-sync/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

var (
	dayStart = time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)
	dayEnd   = dayStart.AddDate(0, 0, 1)
)

func at(hour, minute int) time.Time {
	return dayStart.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func bookingAt(status booking.Status, hour int) *booking.Booking {
	return builder.NewBookingBuilder().WithStart(at(hour, 0)).BuildInStatus(status)
}

func TestMerge(t *testing.T) {
	mirrored := bookingAt(booking.StatusConfirmed, 10)
	mirrored.MarkMirrored("evt-1", mirrored.Revision())
	proposal := bookingAt(booking.StatusAdminProposal, 13)
	proposed, _ := proposal.Proposed()

	tests := []struct {
		name      string
		events    []calendar.Event
		bookings  []*booking.Booking
		connected bool
		expected  []slot.Interval
	}{
		{
			name: "events and local bookings sorted by start",
			events: []calendar.Event{
				{ID: "a", Start: at(15, 0), End: at(16, 0), Status: calendar.EventConfirmed},
			},
			bookings:  []*booking.Booking{bookingAt(booking.StatusPending, 9)},
			connected: true,
			expected: []slot.Interval{
				{Start: at(9, 0), End: at(10, 0)},
				{Start: at(15, 0), End: at(16, 0)},
			},
		},
		{
			name: "cancelled and free events never block",
			events: []calendar.Event{
				{ID: "c", Start: at(9, 0), End: at(10, 0), Status: calendar.EventCancelled},
				{ID: "f", Start: at(11, 0), End: at(12, 0), Status: calendar.EventConfirmed, Transparent: true},
			},
			connected: true,
			expected:  []slot.Interval{},
		},
		{
			name:      "cancelled and rejected bookings never block",
			bookings:  []*booking.Booking{bookingAt(booking.StatusCancelled, 9), bookingAt(booking.StatusRejected, 11)},
			connected: true,
			expected:  []slot.Interval{},
		},
		{
			name: "mirrored booking is represented by its event when connected",
			events: []calendar.Event{
				{ID: "evt-1", Start: at(10, 0), End: at(11, 0), Status: calendar.EventConfirmed, BookingID: mirrored.ID().String()},
			},
			bookings:  []*booking.Booking{mirrored},
			connected: true,
			expected:  []slot.Interval{{Start: at(10, 0), End: at(11, 0)}},
		},
		{
			name:      "mirrored booking still blocks when the calendar is unreachable",
			bookings:  []*booking.Booking{mirrored},
			connected: false,
			expected:  []slot.Interval{{Start: at(10, 0), End: at(11, 0)}},
		},
		{
			name:      "admin proposal blocks both intervals",
			bookings:  []*booking.Booking{proposal},
			connected: true,
			expected:  []slot.Interval{proposal.Interval(), proposed},
		},
		{
			name: "events on other days are ignored",
			events: []calendar.Event{
				{ID: "y", Start: at(-2, 0), End: at(0, 0), Status: calendar.EventConfirmed},
			},
			connected: true,
			expected:  []slot.Interval{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := busy.Merge(dayStart, dayEnd, tt.events, tt.bookings, tt.connected)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestCountOnDay(t *testing.T) {
	bookings := []*booking.Booking{
		bookingAt(booking.StatusPending, 9),
		bookingAt(booking.StatusConfirmed, 11),
		bookingAt(booking.StatusCancelled, 13),
	}

	assert.Equal(t, 2, busy.CountOnDay(dayStart, dayEnd, bookings))
	assert.Equal(t, 0, busy.CountOnDay(dayEnd, dayEnd.AddDate(0, 0, 1), bookings))
}
