package commands

import (
	"context"
	"fmt"

	"booking-calendar-sync/internal/domain/booking"
	"booking-calendar-sync/internal/domain/calendar"
	"booking-calendar-sync/internal/domain/settings"
	"booking-calendar-sync/internal/pkg/errs"
	"booking-calendar-sync/internal/usecase/shared"
)

// Mirror writes the local state of a booking into the write calendar and records
// the mirrored revision.
type Mirror struct {
	api shared.CalendarAPI
	uow shared.UnitOfWork
}

func NewMirror(api shared.CalendarAPI, uow shared.UnitOfWork) *Mirror {
	return &Mirror{api: api, uow: uow}
}

// Sync creates, updates or deletes the external event so that it reflects b. The
// write gate in settings is enforced before any call is made.
func (m *Mirror) Sync(ctx context.Context, b *booking.Booking, s settings.Settings) error {
	if !b.NeedsMirror() {
		return nil
	}
	calendarID, err := s.WriteCalendar()
	if err != nil {
		return err
	}

	eventID := b.ExternalEventID()
	switch {
	case !b.IsActive():
		if b.HasExternalEvent() {
			if err := m.api.DeleteEvent(ctx, calendarID, eventID); err != nil {
				return errs.Mark(err, errs.ErrExternalService)
			}
		}
		eventID = ""
	case !b.HasExternalEvent():
		draft, err := m.draft(ctx, b)
		if err != nil {
			return err
		}
		eventID, err = m.api.CreateEvent(ctx, calendarID, draft)
		if err != nil {
			return errs.Mark(err, errs.ErrExternalService)
		}
	default:
		draft, err := m.draft(ctx, b)
		if err != nil {
			return err
		}
		err = m.api.UpdateEvent(ctx, calendarID, eventID, draft)
		if errs.Is(err, calendar.ErrEventGone) {
			// deleted by hand in the calendar while the booking is still active
			eventID, err = m.api.CreateEvent(ctx, calendarID, draft)
		}
		if err != nil {
			return errs.Mark(err, errs.ErrExternalService)
		}
	}

	if err := m.uow.Reads().Bookings().MarkMirrored(ctx, b.ID(), eventID, b.Revision()); err != nil {
		return errs.Wrap(err, "record mirrored revision")
	}
	b.MarkMirrored(eventID, b.Revision())
	return nil
}

func (m *Mirror) draft(ctx context.Context, b *booking.Booking) (calendar.Draft, error) {
	svc, err := m.uow.Reads().Services().FindByID(ctx, b.ServiceID())
	if err != nil {
		return calendar.Draft{}, errs.Wrap(err, "load service for event")
	}

	description := fmt.Sprintf("Client: %s <%s>", b.Client().Name, b.Client().Email)
	if b.Client().Phone != "" {
		description += "\nPhone: " + b.Client().Phone
	}
	if b.Client().Note != "" {
		description += "\nNote: " + b.Client().Note
	}

	return calendar.Draft{
		Summary:     fmt.Sprintf("%s: %s", svc.Name(), b.Client().Name),
		Description: description,
		Start:       b.Start(),
		End:         b.End(),
		BookingID:   b.ID().String(),
		Revision:    b.Revision(),
	}, nil
}
