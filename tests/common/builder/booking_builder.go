//go:build unit || e2e

package builder

import (
	"time"

	"booking-calendar-sync/internal/domain/booking"

	"github.com/google/uuid"
)

// DefaultNow is a Monday morning used as "now" across unit tests.
var DefaultNow = time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ServiceID     uuid.UUID
	Start         time.Time
	Duration      time.Duration
	Prep          time.Duration
	Name          string
	Email         string
	Phone         string
	Note          string
	ClientToken   string
	AdminToken    string
	Language      string
	ReminderOptIn bool
	Now           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ServiceID:   uuid.New(),
		Start:       time.Date(2026, time.October, 20, 10, 0, 0, 0, time.UTC),
		Duration:    45 * time.Minute,
		Prep:        15 * time.Minute,
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		Phone:       "+44 20 7946 0000",
		ClientToken: "client-" + uuid.NewString(),
		AdminToken:  "admin-" + uuid.NewString(),
		Language:    "en",
		Now:         DefaultNow,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStart(start time.Time) *BookingBuilder {
	b.Start = start
	return b
}

func (b *BookingBuilder) WithService(id uuid.UUID, duration, prep time.Duration) *BookingBuilder {
	b.ServiceID, b.Duration, b.Prep = id, duration, prep
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	client, err := booking.NewClient(b.Name, b.Email, b.Phone, b.Note)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(booking.NewParams{
		ServiceID:     b.ServiceID,
		Start:         b.Start,
		Duration:      b.Duration,
		Prep:          b.Prep,
		Client:        client,
		Tokens:        booking.Tokens{Client: b.ClientToken, Admin: b.AdminToken},
		Language:      b.Language,
		ReminderOptIn: b.ReminderOptIn,
	}, b.Now)
}

// MustBuild panics on invalid builder state; for fixtures only.
func (b *BookingBuilder) MustBuild() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

// BuildInStatus drives a fresh booking into the requested status through legal transitions.
func (b *BookingBuilder) BuildInStatus(status booking.Status) *booking.Booking {
	bk := b.MustBuild()
	now := b.Now
	proposed := bk.Interval()
	proposed.Start = proposed.Start.Add(2 * time.Hour)
	proposed.End = proposed.End.Add(2 * time.Hour)

	var err error
	switch status {
	case booking.StatusPending:
	case booking.StatusConfirmed:
		err = bk.Accept(now)
	case booking.StatusRejected:
		err = bk.Reject(now)
	case booking.StatusCancelled:
		err = bk.Cancel(now)
	case booking.StatusRescheduleRequested:
		err = bk.RequestReschedule(proposed, now)
	case booking.StatusAdminProposal:
		if err = bk.Accept(now); err == nil {
			err = bk.ProposeTime(proposed, now)
		}
	}
	if err != nil {
		panic(err)
	}
	return bk
}
