// Package dates holds calendar-day helpers. All functions keep the location of their input.
package dates

import (
	"time"

	"booking-calendar-sync/internal/pkg/errs"
)

const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
)

var ErrInvalidDate = errs.Class("invalid date", errs.ErrValidation)

func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func NextDay(day time.Time) time.Time {
	return DateOnly(day).AddDate(0, 0, 1)
}

func FirstDayOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func FirstDayOfNextMonth(t time.Time) time.Time {
	return FirstDayOfMonth(t).AddDate(0, 1, 0)
}

// DaysInMonth lists every midnight of the month containing t.
func DaysInMonth(t time.Time) []time.Time {
	start := FirstDayOfMonth(t)
	end := FirstDayOfNextMonth(t)
	days := make([]time.Time, 0, 31)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DaysBetween lists every midnight from..to inclusive.
func DaysBetween(from, to time.Time) []time.Time {
	var days []time.Time
	for d := DateOnly(from); !d.After(DateOnly(to)); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func ParseDay(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, s, loc)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrInvalidDate)
	}
	return t, nil
}

func ParseMonth(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(MonthLayout, s, loc)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrInvalidDate)
	}
	return t, nil
}

func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

func FormatMonth(t time.Time) string {
	return t.Format(MonthLayout)
}
