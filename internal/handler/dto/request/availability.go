package request

import (
	"time"

	"booking-calendar-sync/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDateOrRange = errs.Class("either date or from and to are required", errs.ErrValidation)

type AvailabilityQuery struct {
	ServiceID string `form:"service_id" binding:"required,uuid"`
	Date      string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	From      string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// Range resolves the query to an inclusive from/to pair; a single date is a one-day range.
func (q *AvailabilityQuery) Range() (uuid.UUID, string, string, error) {
	id, err := uuid.Parse(q.ServiceID)
	if err != nil {
		return uuid.Nil, "", "", errs.Mark(err, errs.ErrValidation)
	}
	switch {
	case q.Date != "":
		return id, q.Date, q.Date, nil
	case q.From != "" && q.To != "":
		return id, q.From, q.To, nil
	default:
		return uuid.Nil, "", "", ErrDateOrRange
	}
}

type MonthlyAvailabilityQuery struct {
	ServiceID string `form:"service_id" binding:"required,uuid"`
	Month     string `form:"month" binding:"required,datetime=2006-01"`
}

type RecalculateQuery struct {
	Month string `form:"month" binding:"required,datetime=2006-01"`
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
