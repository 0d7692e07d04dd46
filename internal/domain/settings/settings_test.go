//go:build unit

package settings_test

import (
	"testing"
	"time"

	"booking-calendar-sync/internal/domain/settings"
	"booking-calendar-sync/internal/domain/slot"
	"booking-calendar-sync/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() settings.Document {
	return settings.Document{
		OpenAt:              "09:00",
		CloseAt:             "18:00",
		WorkingDays:         []int{1, 2, 3, 4, 5},
		AnchorTimes:         []string{"14:00", "09:00", "14:00"},
		HolidayKeywords:     " Holiday, VACATION ,,",
		AllDayIsHoliday:     true,
		DailyCap:            4,
		WriteCalendarID:     "bookings@group",
		ReadCalendarIDs:     []string{"primary", "bookings@group", "primary"},
		ReminderLeadMinutes: 1440,
	}
}

func TestDocumentParse(t *testing.T) {
	s, err := validDocument().Parse(time.UTC)
	require.NoError(t, err)

	assert.Equal(t, []slot.ClockTime{slot.MustParseClockTime("09:00"), slot.MustParseClockTime("14:00")}, s.Anchors)
	assert.Equal(t, []string{"holiday", "vacation"}, s.HolidayKeywords)
	assert.Equal(t, []string{"primary", "bookings@group"}, s.ReadCalendarIDs)
	assert.Equal(t, 24*time.Hour, s.ReminderLead)
	assert.True(t, s.IsWorkingDay(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)))  // Monday
	assert.False(t, s.IsWorkingDay(time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC))) // Sunday
}

func TestDocumentParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*settings.Document)
		errIs  error
	}{
		{name: "closing before opening", mutate: func(d *settings.Document) { d.CloseAt = "08:00" }, errIs: slot.ErrInvalidBusinessHours},
		{name: "malformed open", mutate: func(d *settings.Document) { d.OpenAt = "9am" }, errIs: slot.ErrInvalidClockTime},
		{name: "weekday out of range", mutate: func(d *settings.Document) { d.WorkingDays = []int{7} }, errIs: settings.ErrInvalidWorkingDay},
		{name: "negative cap", mutate: func(d *settings.Document) { d.DailyCap = -1 }, errIs: settings.ErrNegativeDailyCap},
		{name: "anchor after closing", mutate: func(d *settings.Document) { d.AnchorTimes = []string{"19:00"} }, errIs: settings.ErrAnchorOutsideHours},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDocument()
			tt.mutate(&d)
			_, err := d.Parse(time.UTC)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.errIs), err.Error())
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	s, err := validDocument().Parse(time.UTC)
	require.NoError(t, err)

	again, err := s.Document().Parse(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestWriteCalendarGate(t *testing.T) {
	tests := []struct {
		name    string
		write   string
		read    []string
		want    string
		wantErr error
	}{
		{name: "write calendar monitored", write: "w", read: []string{"r", "w"}, want: "w"},
		{name: "write calendar unset", write: "", read: []string{"r"}, wantErr: settings.ErrWriteCalendarUnset},
		{name: "write calendar not read", write: "w", read: []string{"r"}, wantErr: settings.ErrWriteCalendarUnmonitored},
		{name: "nothing read", write: "w", wantErr: settings.ErrWriteCalendarUnmonitored},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := settings.Settings{WriteCalendarID: tt.write, ReadCalendarIDs: tt.read}
			got, err := s.WriteCalendar()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
