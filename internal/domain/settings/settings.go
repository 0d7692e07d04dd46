// Package settings is the typed business configuration loaded once per request or job.
package settings

import (
	"slices"
	"strings"
	"time"

	"booking-calendar-sync/internal/domain/slot"
	"booking-calendar-sync/internal/pkg/errs"
)

var (
	ErrInvalidWorkingDay        = errs.Class("working days must be between 0 (Sunday) and 6", errs.ErrValidation)
	ErrNegativeDailyCap         = errs.Class("daily cap cannot be negative", errs.ErrValidation)
	ErrNegativeReminderLead     = errs.Class("reminder lead time cannot be negative", errs.ErrValidation)
	ErrAnchorOutsideHours       = errs.Class("anchor time outside business hours", errs.ErrValidation)
	ErrWriteCalendarUnset       = errs.Class("write calendar is not configured", errs.ErrValidation)
	ErrWriteCalendarUnmonitored = errs.Class("write calendar is not among the read calendars", errs.ErrValidation)
)

// Document is the persisted JSON form of the settings.
type Document struct {
	OpenAt              string   `json:"open_at"`
	CloseAt             string   `json:"close_at"`
	WorkingDays         []int    `json:"working_days"`
	AnchorTimes         []string `json:"anchor_times"`
	HolidayKeywords     string   `json:"holiday_keywords"`
	AllDayIsHoliday     bool     `json:"all_day_is_holiday"`
	DailyCap            int      `json:"daily_cap"`
	WriteCalendarID     string   `json:"write_calendar_id"`
	ReadCalendarIDs     []string `json:"read_calendar_ids"`
	ReminderLeadMinutes int      `json:"reminder_lead_minutes"`
}

type Settings struct {
	Location        *time.Location
	Hours           slot.BusinessHours
	WorkingDays     [7]bool
	Anchors         []slot.ClockTime
	HolidayKeywords []string
	AllDayIsHoliday bool
	DailyCap        int
	WriteCalendarID string
	ReadCalendarIDs []string
	ReminderLead    time.Duration
}

// Parse validates the document and builds typed settings in the install's location.
func (d Document) Parse(loc *time.Location) (Settings, error) {
	if loc == nil {
		loc = time.UTC
	}
	open, err := slot.ParseClockTime(d.OpenAt)
	if err != nil {
		return Settings{}, errs.Wrap(err, "open_at")
	}
	closeAt, err := slot.ParseClockTime(d.CloseAt)
	if err != nil {
		return Settings{}, errs.Wrap(err, "close_at")
	}
	hours, err := slot.NewBusinessHours(open, closeAt)
	if err != nil {
		return Settings{}, err
	}

	s := Settings{
		Location:        loc,
		Hours:           hours,
		AllDayIsHoliday: d.AllDayIsHoliday,
		DailyCap:        d.DailyCap,
		WriteCalendarID: strings.TrimSpace(d.WriteCalendarID),
		ReminderLead:    time.Duration(d.ReminderLeadMinutes) * time.Minute,
	}
	if s.DailyCap < 0 {
		return Settings{}, ErrNegativeDailyCap
	}
	if s.ReminderLead < 0 {
		return Settings{}, ErrNegativeReminderLead
	}

	for _, wd := range d.WorkingDays {
		if wd < 0 || wd > 6 {
			return Settings{}, ErrInvalidWorkingDay
		}
		s.WorkingDays[wd] = true
	}

	for _, raw := range d.AnchorTimes {
		a, err := slot.ParseClockTime(raw)
		if err != nil {
			return Settings{}, errs.Wrap(err, "anchor_times")
		}
		if a < hours.Open || a >= hours.Close {
			return Settings{}, errs.Wrapf(ErrAnchorOutsideHours, "%s", raw)
		}
		s.Anchors = append(s.Anchors, a)
	}
	slices.Sort(s.Anchors)
	s.Anchors = slices.Compact(s.Anchors)

	s.HolidayKeywords = ParseKeywords(d.HolidayKeywords)

	for _, id := range d.ReadCalendarIDs {
		if id = strings.TrimSpace(id); id != "" && !slices.Contains(s.ReadCalendarIDs, id) {
			s.ReadCalendarIDs = append(s.ReadCalendarIDs, id)
		}
	}
	return s, nil
}

// Document converts the settings back into their persisted form.
func (s Settings) Document() Document {
	d := Document{
		OpenAt:              s.Hours.Open.String(),
		CloseAt:             s.Hours.Close.String(),
		HolidayKeywords:     strings.Join(s.HolidayKeywords, ","),
		AllDayIsHoliday:     s.AllDayIsHoliday,
		DailyCap:            s.DailyCap,
		WriteCalendarID:     s.WriteCalendarID,
		ReadCalendarIDs:     slices.Clone(s.ReadCalendarIDs),
		ReminderLeadMinutes: int(s.ReminderLead / time.Minute),
		WorkingDays:         []int{},
		AnchorTimes:         []string{},
	}
	for wd, on := range s.WorkingDays {
		if on {
			d.WorkingDays = append(d.WorkingDays, wd)
		}
	}
	for _, a := range s.Anchors {
		d.AnchorTimes = append(d.AnchorTimes, a.String())
	}
	return d
}

// ParseKeywords splits a comma-separated keyword list, lowercased and trimmed.
func ParseKeywords(raw string) []string {
	var out []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func (s Settings) IsWorkingDay(day time.Time) bool {
	return s.WorkingDays[day.In(s.Location).Weekday()]
}

// CalendarConnected reports whether any external calendar is read for busy time.
func (s Settings) CalendarConnected() bool {
	return len(s.ReadCalendarIDs) > 0
}

// WriteCalendar returns the calendar bookings may be written to. Writes are refused
// unless that calendar is also read for busy time, so a mirrored booking is always
// visible to the busy-time computation.
func (s Settings) WriteCalendar() (string, error) {
	if s.WriteCalendarID == "" {
		return "", ErrWriteCalendarUnset
	}
	if !slices.Contains(s.ReadCalendarIDs, s.WriteCalendarID) {
		return "", ErrWriteCalendarUnmonitored
	}
	return s.WriteCalendarID, nil
}

// SlotRequest builds the slot computation request for one day.
func (s Settings) SlotRequest(day time.Time, span time.Duration) slot.Request {
	return slot.Request{
		Date:    day.In(s.Location),
		Span:    span,
		Hours:   s.Hours,
		Anchors: s.Anchors,
	}
}
