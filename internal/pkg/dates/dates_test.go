//go:build unit

package dates_test

import (
	"testing"
	"time"

	"booking-calendar-sync/internal/pkg/dates"
	"booking-calendar-sync/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	feb := time.Date(2028, time.February, 17, 15, 0, 0, 0, time.UTC)

	days := dates.DaysInMonth(feb)

	require.Len(t, days, 29)
	assert.Equal(t, time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC), days[28])
}

func TestDaysInMonth_DSTKeepsMidnight(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	for _, d := range dates.DaysInMonth(time.Date(2026, time.March, 5, 0, 0, 0, 0, loc)) {
		assert.Equal(t, 0, d.Hour(), d.String())
	}
}

func TestParseDay(t *testing.T) {
	got, err := dates.ParseDay("2026-10-20", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-20", dates.FormatDay(got))

	_, err = dates.ParseDay("20/10/2026", time.UTC)
	assert.True(t, errs.Is(err, errs.ErrValidation))
}
