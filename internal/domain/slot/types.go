package slot

import (
	"fmt"
	"time"

	"booking-calendar-sync/internal/pkg/errs"
)

var (
	ErrInvalidClockTime     = errs.Class("invalid clock time", errs.ErrValidation)
	ErrInvalidBusinessHours = errs.Class("business hours must close after they open", errs.ErrValidation)
)

// ClockTime is a wall-clock time of day in minutes after midnight.
type ClockTime int

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 || (hour == 24 && minute != 0) {
		return 0, ErrInvalidClockTime
	}
	return ClockTime(hour*60 + minute), nil
}

// ParseClockTime accepts "HH:MM"; "24:00" denotes the end of the day.
func ParseClockTime(s string) (ClockTime, error) {
	var h, m int
	if n, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil || n != 2 || len(s) != 5 {
		return 0, errs.Wrapf(ErrInvalidClockTime, "parse %q", s)
	}
	return NewClockTime(h, m)
}

func MustParseClockTime(s string) ClockTime {
	ct, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return ct
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// On places the clock time on the given calendar day in that day's location.
func (c ClockTime) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.Hour(), c.Minute(), 0, 0, day.Location())
}

type BusinessHours struct {
	Open  ClockTime
	Close ClockTime
}

func NewBusinessHours(open, closeAt ClockTime) (BusinessHours, error) {
	if closeAt <= open {
		return BusinessHours{}, ErrInvalidBusinessHours
	}
	return BusinessHours{Open: open, Close: closeAt}, nil
}

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (i Interval) Overlaps(start, end time.Time) bool {
	return start.Before(i.End) && end.After(i.Start)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
