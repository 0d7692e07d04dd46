//go:build unit

package slot_test

import (
	"math/rand"
	"testing"
	"time"

	"booking-calendar-sync/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)

func at(hhmm string) time.Time {
	return slot.MustParseClockTime(hhmm).On(day)
}

func busy(from, to string) slot.Interval {
	return slot.Interval{Start: at(from), End: at(to)}
}

func standardRequest(span time.Duration) slot.Request {
	return slot.Request{
		Date:    day,
		Span:    span,
		Hours:   slot.BusinessHours{Open: slot.MustParseClockTime("09:00"), Close: slot.MustParseClockTime("18:00")},
		Anchors: []slot.ClockTime{slot.MustParseClockTime("09:00"), slot.MustParseClockTime("14:00")},
	}
}

func TestAvailableStarts(t *testing.T) {
	tests := []struct {
		name string
		span time.Duration
		busy []slot.Interval
		want []time.Time
	}{
		{
			name: "single busy hour keeps anchors and clusters after it",
			span: time.Hour,
			busy: []slot.Interval{busy("10:00", "11:00")},
			want: []time.Time{at("09:00"), at("11:00"), at("14:00")},
		},
		{
			name: "no busy time offers anchors only",
			span: time.Hour,
			want: []time.Time{at("09:00"), at("14:00")},
		},
		{
			name: "slot may end exactly when a later booking begins",
			span: 90 * time.Minute,
			busy: []slot.Interval{busy("12:00", "13:00")},
			want: []time.Time{at("09:00"), at("10:30"), at("13:00"), at("14:00")},
		},
		{
			name: "anchor blocked by busy interval is dropped",
			span: time.Hour,
			busy: []slot.Interval{busy("13:30", "15:00")},
			want: []time.Time{at("09:00"), at("12:30"), at("15:00")},
		},
		{
			name: "candidate running past closing is dropped",
			span: 2 * time.Hour,
			busy: []slot.Interval{busy("16:30", "17:00")},
			want: []time.Time{at("09:00"), at("14:00"), at("14:30")},
		},
		{
			name: "candidate before opening is dropped",
			span: time.Hour,
			busy: []slot.Interval{busy("09:30", "10:00")},
			want: []time.Time{at("10:00"), at("14:00")},
		},
		{
			name: "duplicate candidates collapse",
			span: time.Hour,
			busy: []slot.Interval{busy("10:00", "11:00"), busy("11:00", "12:00"), busy("13:00", "14:00")},
			want: []time.Time{at("09:00"), at("12:00"), at("14:00")},
		},
		{
			name: "fully booked day yields nothing",
			span: time.Hour,
			busy: []slot.Interval{busy("08:00", "19:00")},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slot.AvailableStarts(standardRequest(tt.span), tt.busy)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAvailableStarts_ExcludesBusyStarts(t *testing.T) {
	got := slot.AvailableStarts(standardRequest(time.Hour), []slot.Interval{busy("10:00", "11:00")})

	assert.NotContains(t, got, at("10:00"))
	assert.NotContains(t, got, at("10:30"))
}

func TestAvailableStarts_NonPositiveSpan(t *testing.T) {
	assert.Empty(t, slot.AvailableStarts(standardRequest(0), nil))
}

// Randomised busy sets must never produce a start overlapping busy time or
// leaving business hours, and output must be strictly ascending.
func TestAvailableStarts_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	open, closeAt := at("09:00"), at("18:00")

	for i := range 500 {
		span := time.Duration(15*(1+rng.Intn(8))) * time.Minute
		var intervals []slot.Interval
		for range rng.Intn(6) {
			start := day.Add(time.Duration(7*60+rng.Intn(13*60)) * time.Minute)
			intervals = append(intervals, slot.Interval{Start: start, End: start.Add(time.Duration(15+rng.Intn(120)) * time.Minute)})
		}

		got := slot.AvailableStarts(standardRequest(span), intervals)

		for j, s := range got {
			end := s.Add(span)
			require.False(t, s.Before(open), "case %d: %s before opening", i, s)
			require.False(t, end.After(closeAt), "case %d: %s runs past closing", i, s)
			for _, b := range intervals {
				require.False(t, b.Overlaps(s, end), "case %d: %s overlaps %v", i, s, b)
			}
			if j > 0 {
				require.True(t, got[j-1].Before(s), "case %d: not strictly ascending", i)
			}
		}
	}
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		want    slot.ClockTime
		wantErr bool
	}{
		{in: "09:00", want: 540},
		{in: "23:59", want: 23*60 + 59},
		{in: "24:00", want: 24 * 60},
		{in: "24:01", wantErr: true},
		{in: "9:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := slot.ParseClockTime(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, slot.ErrInvalidClockTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}
