package availability

import (
	"strings"
	"time"

	"booking-calendar-sync/internal/domain/calendar"
)

// HolidayRules mirror the holiday-related settings.
type HolidayRules struct {
	AllDayIsHoliday bool
	Keywords        []string // lowercased
}

// IsHoliday reports whether any non-cancelled event overlapping the day marks it as
// a holiday: an all-day or day-spanning event when AllDayIsHoliday is set, or a
// title containing one of the keywords (case-insensitive).
func IsHoliday(events []calendar.Event, dayStart, dayEnd time.Time, rules HolidayRules) bool {
	for _, e := range events {
		if e.IsCancelled() || !e.OverlapsDay(dayStart, dayEnd) {
			continue
		}
		if rules.AllDayIsHoliday && (e.AllDay || e.SpansDay(dayStart, dayEnd)) {
			return true
		}
		if matchesKeyword(e.Summary, rules.Keywords) {
			return true
		}
	}
	return false
}

func matchesKeyword(title string, keywords []string) bool {
	if title == "" {
		return false
	}
	lower := strings.ToLower(title)
	for _, k := range keywords {
		if k != "" && strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
