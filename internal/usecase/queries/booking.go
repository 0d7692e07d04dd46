package queries

import (
	"context"

	"booking-calendar-sync/internal/infra"
	"booking-calendar-sync/internal/pkg/errs"
)

var ErrBookingViewNotFound = errs.Class("booking not found for token", errs.ErrNotFound)

type BookingQueries interface {
	GetByClientToken(ctx context.Context, clientToken string) (*BookingView, error)
}

type BookingViewRepo interface {
	FindByClientToken(ctx context.Context, clientToken string) (*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByClientToken(ctx context.Context, clientToken string) (*BookingView, error) {
	if clientToken == "" {
		return nil, ErrBookingViewNotFound
	}
	view, err := q.repo.FindByClientToken(ctx, clientToken)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingViewNotFound
		}
		return nil, err
	}
	return view, nil
}
