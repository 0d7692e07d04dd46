//go:build unit

package queries_test

import (
	"context"
	"testing"

	"booking-calendar-sync/internal/infra"
	"booking-calendar-sync/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubViewRepo struct {
	views    map[string]*queries.BookingView
	services []*queries.ServiceView
	err      error
}

func (r *stubViewRepo) FindByClientToken(_ context.Context, token string) (*queries.BookingView, error) {
	if r.err != nil {
		return nil, r.err
	}
	v, ok := r.views[token]
	if !ok {
		return nil, infra.WrapRepoErr("find booking view", nil, infra.KindNotFound)
	}
	return v, nil
}

func (r *stubViewRepo) ListActive(context.Context) ([]*queries.ServiceView, error) {
	return r.services, r.err
}

func TestGetByClientToken(t *testing.T) {
	view := &queries.BookingView{ID: uuid.New(), Status: "pending", ClientName: "Ada Lovelace"}
	repo := &stubViewRepo{views: map[string]*queries.BookingView{"tok-1": view}}
	q := queries.NewBookingQueries(repo)

	t.Run("success", func(t *testing.T) {
		got, err := q.GetByClientToken(t.Context(), "tok-1")
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("error: unknown and empty tokens look the same", func(t *testing.T) {
		_, err := q.GetByClientToken(t.Context(), "tok-2")
		assert.ErrorIs(t, err, queries.ErrBookingViewNotFound)

		_, err = q.GetByClientToken(t.Context(), "")
		assert.ErrorIs(t, err, queries.ErrBookingViewNotFound)
	})

	t.Run("error: repository failure passes through", func(t *testing.T) {
		q := queries.NewBookingQueries(&stubViewRepo{err: assert.AnError})
		_, err := q.GetByClientToken(t.Context(), "tok-1")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestListServices(t *testing.T) {
	services := []*queries.ServiceView{{ID: uuid.New(), Name: "Consultation", DurationMin: 45, PrepMin: 15}}
	q := queries.NewServiceQueries(&stubViewRepo{services: services})

	got, err := q.ListServices(t.Context())

	require.NoError(t, err)
	assert.Equal(t, services, got)
}
