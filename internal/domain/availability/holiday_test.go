//go:build unit

package availability_test

import (
	"testing"
	"time"

	"booking-calendar-sync/internal/domain/availability"
	"booking-calendar-sync/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
)

func TestIsHoliday(t *testing.T) {
	dayStart := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)
	timed := func(summary string, fromH, toH int) calendar.Event {
		return calendar.Event{
			Summary: summary,
			Start:   dayStart.Add(time.Duration(fromH) * time.Hour),
			End:     dayStart.Add(time.Duration(toH) * time.Hour),
			Status:  calendar.EventConfirmed,
		}
	}
	allDay := calendar.Event{Summary: "Family", Start: dayStart, End: dayEnd, AllDay: true, Status: calendar.EventConfirmed}
	rules := availability.HolidayRules{AllDayIsHoliday: true, Keywords: []string{"holiday", "closed"}}

	tests := []struct {
		name   string
		events []calendar.Event
		rules  availability.HolidayRules
		want   bool
	}{
		{name: "no events", rules: rules, want: false},
		{name: "ordinary appointment", events: []calendar.Event{timed("Dentist", 10, 11)}, rules: rules, want: false},
		{name: "keyword match is case-insensitive", events: []calendar.Event{timed("Office HOLIDAY party", 10, 11)}, rules: rules, want: true},
		{name: "all-day flag", events: []calendar.Event{allDay}, rules: rules, want: true},
		{name: "all-day ignored when disabled", events: []calendar.Event{allDay}, rules: availability.HolidayRules{Keywords: []string{"holiday"}}, want: false},
		{name: "multi-day event spans the day", events: []calendar.Event{{Summary: "Trip", Start: dayStart.Add(-36 * time.Hour), End: dayEnd.Add(12 * time.Hour)}}, rules: rules, want: true},
		{name: "cancelled holiday ignored", events: []calendar.Event{{Summary: "Holiday", Start: dayStart, End: dayEnd, AllDay: true, Status: calendar.EventCancelled}}, rules: rules, want: false},
		{name: "event on another day ignored", events: []calendar.Event{{Summary: "Holiday", Start: dayEnd, End: dayEnd.AddDate(0, 0, 1), AllDay: true}}, rules: rules, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, availability.IsHoliday(tt.events, dayStart, dayEnd, tt.rules))
		})
	}
}

func TestDayStatus(t *testing.T) {
	assert.Equal(t, availability.StatusBooked, availability.DayStatus(0, 0, 0))
	assert.Equal(t, availability.StatusAvailable, availability.DayStatus(3, 10, 0))
	assert.Equal(t, availability.StatusBooked, availability.DayStatus(3, 4, 4))
	assert.Equal(t, availability.StatusAvailable, availability.DayStatus(3, 3, 4))
}
