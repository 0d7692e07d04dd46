// Package busy computes the occupied intervals of a day from the external calendar
// and the local booking ledger.
package busy

import (
	"sort"
	"time"

	"booking-calendar-sync/internal/domain/booking"
	"booking-calendar-sync/internal/domain/calendar"
	"booking-calendar-sync/internal/domain/slot"
)

// Merge combines blocking external events and local bookings overlapping [dayStart, dayEnd).
//
// When the calendar is connected a booking that already has an external event is
// represented by that event and its local copy is skipped. A booking awaiting the
// client's answer to a proposal also blocks the proposed interval.
func Merge(dayStart, dayEnd time.Time, events []calendar.Event, bookings []*booking.Booking, connected bool) []slot.Interval {
	out := make([]slot.Interval, 0, len(events)+len(bookings))

	for _, e := range events {
		if e.Blocks() && e.OverlapsDay(dayStart, dayEnd) {
			out = append(out, e.Interval())
		}
	}

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if !(connected && b.HasExternalEvent()) && b.Interval().Overlaps(dayStart, dayEnd) {
			out = append(out, b.Interval())
		}
		if b.Status() == booking.StatusAdminProposal {
			if p, ok := b.Proposed(); ok && p.Overlaps(dayStart, dayEnd) {
				out = append(out, p)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			return out[i].End.Before(out[j].End)
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// CountOnDay counts non-terminal bookings whose actual interval overlaps the day.
func CountOnDay(dayStart, dayEnd time.Time, bookings []*booking.Booking) int {
	n := 0
	for _, b := range bookings {
		if b.IsActive() && b.Interval().Overlaps(dayStart, dayEnd) {
			n++
		}
	}
	return n
}
