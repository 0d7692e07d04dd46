// Package calendar models events read from the external calendar.
package calendar

import (
	"time"

	"booking-calendar-sync/internal/domain/slot"
	"booking-calendar-sync/internal/pkg/errs"
)

// ErrEventGone is returned by calendar writes addressing an event that was deleted.
var ErrEventGone = errs.Class("external event no longer exists", errs.ErrNotFound)

type EventStatus string

const (
	EventConfirmed EventStatus = "confirmed"
	EventTentative EventStatus = "tentative"
	EventCancelled EventStatus = "cancelled"
)

// Event is a normalised external calendar event. All-day events have Start at
// midnight of their first day and End at midnight after their last day.
type Event struct {
	ID          string      `json:"id"`
	CalendarID  string      `json:"calendar_id"`
	Summary     string      `json:"summary"`
	Start       time.Time   `json:"start"`
	End         time.Time   `json:"end"`
	AllDay      bool        `json:"all_day"`
	Status      EventStatus `json:"status"`
	Transparent bool        `json:"transparent"`
	Updated     time.Time   `json:"updated"`
	// BookingID and Revision are read back from private extended properties
	// written when a booking is mirrored. Revision is 0 for foreign events.
	BookingID string `json:"booking_id,omitempty"`
	Revision  int64  `json:"revision,omitempty"`
}

func (e Event) IsCancelled() bool {
	return e.Status == EventCancelled
}

// Blocks reports whether the event occupies time for booking purposes.
func (e Event) Blocks() bool {
	return !e.IsCancelled() && !e.Transparent
}

func (e Event) Interval() slot.Interval {
	return slot.Interval{Start: e.Start, End: e.End}
}

func (e Event) OverlapsDay(dayStart, dayEnd time.Time) bool {
	return e.Interval().Overlaps(dayStart, dayEnd)
}

// SpansDay reports whether the event covers the whole day without being flagged all-day.
func (e Event) SpansDay(dayStart, dayEnd time.Time) bool {
	return !e.Start.After(dayStart) && !e.End.Before(dayEnd)
}

// FilterDay keeps events overlapping [dayStart, dayEnd).
func FilterDay(events []Event, dayStart, dayEnd time.Time) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.OverlapsDay(dayStart, dayEnd) {
			out = append(out, e)
		}
	}
	return out
}

// Draft is what gets written to the external calendar for a booking.
type Draft struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	BookingID   string
	Revision    int64
}

// Channel is a registered push-notification channel on a calendar.
type Channel struct {
	ID         string    `json:"id"`
	ResourceID string    `json:"resource_id"`
	CalendarID string    `json:"calendar_id"`
	Expiration time.Time `json:"expiration"`
}

// ExpiresWithin reports whether the channel is gone or about to be.
func (c Channel) ExpiresWithin(now time.Time, d time.Duration) bool {
	return c.ID == "" || !c.Expiration.After(now.Add(d))
}
