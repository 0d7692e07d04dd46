//go:build unit

package errs_test

import (
	"testing"

	"booking-calendar-sync/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestClass(t *testing.T) {
	errSlotTaken := errs.Class("slot taken", errs.ErrConflict)

	wrapped := errs.Wrap(errSlotTaken, "create booking")

	assert.True(t, errs.Is(wrapped, errSlotTaken))
	assert.True(t, errs.Is(wrapped, errs.ErrConflict))
	assert.False(t, errs.Is(wrapped, errs.ErrValidation))
}

func TestMarkNil(t *testing.T) {
	assert.Equal(t, errs.ErrNotFound, errs.Mark(nil, errs.ErrNotFound))
	assert.Nil(t, errs.Wrap(nil, "nothing"))
}

func TestMarkedLowLevelErrorCarriesClass(t *testing.T) {
	errBookingMissing := errs.Class("booking missing", errs.ErrNotFound)
	errOther := errs.Class("other missing", errs.ErrNotFound)

	err := errs.Mark(errs.New("no rows in result set"), errBookingMissing)

	assert.True(t, errs.Is(err, errBookingMissing))
	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.False(t, errs.Is(err, errOther))
	assert.False(t, errs.Is(err, errs.ErrConflict))
}

func TestMessage(t *testing.T) {
	errSlot := errs.Class("slot already taken", errs.ErrConflict)

	assert.Equal(t, "slot already taken", errs.Message(errs.Wrap(errSlot, "create booking")))
	assert.Equal(t, "slot already taken", errs.Message(errs.Mark(errs.New("pq: exclusion violation"), errSlot)))
	assert.Equal(t, "plain", errs.Message(errs.Wrap(errs.New("plain"), "context")))
	assert.Empty(t, errs.Message(nil))
}
