//go:build unit

package service_test

import (
	"testing"
	"time"

	"booking-calendar-sync/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	tests := []struct {
		name     string
		svcName  string
		duration time.Duration
		prep     time.Duration
		price    decimal.Decimal
		errIs    error
	}{
		{name: "valid", svcName: "Haircut", duration: 45 * time.Minute, prep: 15 * time.Minute, price: decimal.RequireFromString("35.00")},
		{name: "zero prep allowed", svcName: "Consult", duration: 30 * time.Minute, price: decimal.Zero},
		{name: "blank name", svcName: "  ", duration: time.Hour, errIs: service.ErrEmptyName},
		{name: "zero duration", svcName: "Broken", errIs: service.ErrInvalidDuration},
		{name: "negative prep", svcName: "Broken", duration: time.Hour, prep: -time.Minute, errIs: service.ErrInvalidPrep},
		{name: "negative price", svcName: "Broken", duration: time.Hour, price: decimal.NewFromInt(-1), errIs: service.ErrNegativePrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := service.NewService(tt.svcName, tt.duration, tt.prep, tt.price)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.duration+tt.prep, svc.Span())
			assert.True(t, svc.Active())
		})
	}
}
