package commands

import (
	"context"
	"log/slog"
	"time"

	"booking-calendar-sync/internal/domain/booking"
	"booking-calendar-sync/internal/domain/service"
	"booking-calendar-sync/internal/domain/slot"
	"booking-calendar-sync/internal/infra"
	"booking-calendar-sync/internal/pkg/clock"
	"booking-calendar-sync/internal/pkg/dates"
	"booking-calendar-sync/internal/pkg/errs"
	"booking-calendar-sync/internal/pkg/token"
	"booking-calendar-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound = errs.Class("service not found", errs.ErrNotFound)
	ErrServiceInactive = errs.Class("service is not bookable", errs.ErrValidation)
	ErrBookingNotFound = errs.Class("booking not found", errs.ErrNotFound)
	ErrSlotTaken       = errs.Class("requested time overlaps an existing booking", errs.ErrConflict)
	ErrInvalidDecision = errs.Class("invalid decision", errs.ErrValidation)
	ErrTokenGeneration = errs.New("token generation failed")
	ErrDatabaseFailure = errs.New("database operation failed")
)

type CreateBookingInput struct {
	ServiceID     uuid.UUID
	Date          string // YYYY-MM-DD
	Time          string // HH:MM
	Name          string
	Email         string
	Phone         string
	Note          string
	Language      string
	ReminderOptIn bool
}

type CreateBookingResult struct {
	BookingID   uuid.UUID
	ClientToken string
	Status      booking.Status
	Start       time.Time
	End         time.Time
	// Mirrored is false when the external calendar could not be written.
	Mirrored bool
}

// TimeInput names a local date and clock time. Duration overrides the booking's
// service duration when positive.
type TimeInput struct {
	Date     string
	Time     string
	Duration time.Duration
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	Cancel(ctx context.Context, clientToken string) error
	RequestReschedule(ctx context.Context, clientToken string, in TimeInput) error
	RespondToProposal(ctx context.Context, clientToken string, decision booking.Decision) error
	AcceptReschedule(ctx context.Context, bookingID uuid.UUID, adminToken string) error
	ProposeNewTime(ctx context.Context, bookingID uuid.UUID, adminToken string, in TimeInput) error
	RevokeProposal(ctx context.Context, bookingID uuid.UUID, adminToken string) error
	HandleAdminAction(ctx context.Context, bookingID uuid.UUID, adminToken string, decision booking.Decision) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	settings *shared.SettingsSource
	mirror   *Mirror
	notifier shared.Notifier
	cache    shared.Cache
	clock    clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	settings *shared.SettingsSource,
	mirror *Mirror,
	notifier shared.Notifier,
	cache shared.Cache,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		settings: settings,
		mirror:   mirror,
		notifier: notifier,
		cache:    cache,
		clock:    clock,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	svc, err := c.findService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active() {
		return nil, ErrServiceInactive
	}

	start, err := c.parseStart(in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	client, err := booking.NewClient(in.Name, in.Email, in.Phone, in.Note)
	if err != nil {
		return nil, err
	}
	tokens, err := newTokens()
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	b, err := booking.NewBooking(booking.NewParams{
		ServiceID:     svc.ID(),
		Start:         start,
		Duration:      svc.Duration(),
		Prep:          svc.Prep(),
		Client:        client,
		Tokens:        tokens,
		Language:      in.Language,
		ReminderOptIn: in.ReminderOptIn,
	}, now)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Bookings()
		if err := c.ensureFree(ctx, repo, b.Interval(), uuid.Nil); err != nil {
			return err
		}
		if err := repo.Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrSlotTaken
			}
			return errs.Mark(err, ErrDatabaseFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking created",
		"booking_id", b.ID().String(),
		"service_id", svc.ID().String(),
		"start", b.Start())

	mirrored := c.mirrorBooking(ctx, b)
	c.notify(ctx, b, shared.NotifyBookingCreated, shared.AudienceClient, shared.AudienceAdmin)
	shared.InvalidateDays(ctx, c.cache, c.day(b.Start()))

	return &CreateBookingResult{
		BookingID:   b.ID(),
		ClientToken: b.ClientToken(),
		Status:      b.Status(),
		Start:       b.Start(),
		End:         b.End(),
		Mirrored:    mirrored,
	}, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, clientToken string) error {
	b, err := c.transition(ctx, byClientToken(clientToken), func(b *booking.Booking, now time.Time) error {
		return b.Cancel(now)
	})
	if err != nil {
		return err
	}
	c.mirrorBooking(ctx, b)
	c.notify(ctx, b, shared.NotifyCancelledByClient, shared.AudienceAdmin)
	shared.InvalidateDays(ctx, c.cache, c.day(b.Start()))
	return nil
}

func (c *bookingCommandsImpl) RequestReschedule(ctx context.Context, clientToken string, in TimeInput) error {
	b, err := c.transition(ctx, byClientToken(clientToken), func(b *booking.Booking, now time.Time) error {
		wanted, err := c.targetInterval(b, in)
		if err != nil {
			return err
		}
		return b.RequestReschedule(wanted, now)
	})
	if err != nil {
		return err
	}
	c.notify(ctx, b, shared.NotifyRescheduleRequested, shared.AudienceAdmin)
	return nil
}

func (c *bookingCommandsImpl) RespondToProposal(ctx context.Context, clientToken string, decision booking.Decision) error {
	var (
		kind   shared.NotificationKind
		change func(b *booking.Booking, now time.Time) error
	)
	switch decision {
	case booking.DecisionAccept:
		kind = shared.NotifyProposalAccepted
		change = func(b *booking.Booking, now time.Time) error { return b.AcceptProposal(now) }
	case booking.DecisionDecline:
		kind = shared.NotifyProposalDeclined
		change = func(b *booking.Booking, now time.Time) error { return b.DeclineProposal(now) }
	default:
		return errs.Wrapf(ErrInvalidDecision, "%q", decision)
	}

	var oldDay time.Time
	b, err := c.transition(ctx, byClientToken(clientToken), func(b *booking.Booking, now time.Time) error {
		oldDay = c.day(b.Start())
		return change(b, now)
	})
	if err != nil {
		return err
	}
	if decision == booking.DecisionAccept {
		c.mirrorBooking(ctx, b)
	}
	c.notify(ctx, b, kind, shared.AudienceAdmin)
	shared.InvalidateDays(ctx, c.cache, oldDay, c.day(b.Start()))
	return nil
}

func (c *bookingCommandsImpl) AcceptReschedule(ctx context.Context, bookingID uuid.UUID, adminToken string) error {
	var oldDay time.Time
	b, err := c.transition(ctx, byAdmin(bookingID, adminToken), func(b *booking.Booking, now time.Time) error {
		oldDay = c.day(b.Start())
		return b.AcceptReschedule(now)
	})
	if err != nil {
		return err
	}
	c.mirrorBooking(ctx, b)
	c.notify(ctx, b, shared.NotifyRescheduleAccepted, shared.AudienceClient)
	shared.InvalidateDays(ctx, c.cache, oldDay, c.day(b.Start()))
	return nil
}

func (c *bookingCommandsImpl) ProposeNewTime(ctx context.Context, bookingID uuid.UUID, adminToken string, in TimeInput) error {
	b, err := c.transition(ctx, byAdmin(bookingID, adminToken), func(b *booking.Booking, now time.Time) error {
		offer, err := c.targetInterval(b, in)
		if err != nil {
			return err
		}
		return b.ProposeTime(offer, now)
	})
	if err != nil {
		return err
	}
	c.notify(ctx, b, shared.NotifyProposalSent, shared.AudienceClient)
	if p, ok := b.Proposed(); ok {
		shared.InvalidateDays(ctx, c.cache, c.day(p.Start))
	}
	return nil
}

func (c *bookingCommandsImpl) RevokeProposal(ctx context.Context, bookingID uuid.UUID, adminToken string) error {
	var revokedDay time.Time
	b, err := c.transition(ctx, byAdmin(bookingID, adminToken), func(b *booking.Booking, now time.Time) error {
		if p, ok := b.Proposed(); ok {
			revokedDay = c.day(p.Start)
		}
		return b.RevokeProposal(now)
	})
	if err != nil {
		return err
	}
	c.notify(ctx, b, shared.NotifyProposalRevoked, shared.AudienceClient)
	shared.InvalidateDays(ctx, c.cache, revokedDay)
	return nil
}

func (c *bookingCommandsImpl) HandleAdminAction(ctx context.Context, bookingID uuid.UUID, adminToken string, decision booking.Decision) error {
	var (
		kind   shared.NotificationKind
		change func(b *booking.Booking, now time.Time) error
	)
	switch decision {
	case booking.DecisionAccept:
		kind = shared.NotifyBookingAccepted
		change = func(b *booking.Booking, now time.Time) error { return b.Accept(now) }
	case booking.DecisionReject:
		kind = shared.NotifyBookingRejected
		change = func(b *booking.Booking, now time.Time) error { return b.Reject(now) }
	default:
		return errs.Wrapf(ErrInvalidDecision, "%q", decision)
	}

	b, err := c.transition(ctx, byAdmin(bookingID, adminToken), change)
	if err != nil {
		return err
	}
	if decision == booking.DecisionReject {
		c.mirrorBooking(ctx, b)
		shared.InvalidateDays(ctx, c.cache, c.day(b.Start()))
	}
	c.notify(ctx, b, kind, shared.AudienceClient)
	return nil
}

func (c *bookingCommandsImpl) day(t time.Time) time.Time {
	return shared.DayIn(t, c.settings.Location())
}

type locator func(ctx context.Context, repo shared.BookingRepository) (*booking.Booking, error)

func byClientToken(clientToken string) locator {
	return func(ctx context.Context, repo shared.BookingRepository) (*booking.Booking, error) {
		if clientToken == "" {
			return nil, ErrBookingNotFound
		}
		return repo.FindByClientToken(ctx, clientToken)
	}
}

func byAdmin(id uuid.UUID, adminToken string) locator {
	return func(ctx context.Context, repo shared.BookingRepository) (*booking.Booking, error) {
		b, err := repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := b.VerifyAdminToken(adminToken); err != nil {
			return nil, err
		}
		return b, nil
	}
}

// transition loads a booking, applies change and saves it in one transaction. When
// the change puts a new interval into the booking, or offers one, the interval is
// checked against other bookings under the same lock as create.
func (c *bookingCommandsImpl) transition(ctx context.Context, locate locator, change func(b *booking.Booking, now time.Time) error) (*booking.Booking, error) {
	var out *booking.Booking
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Bookings()
		b, err := locate(ctx, repo)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		before := b.Interval()
		beforeProposed, _ := b.Proposed()
		if err := change(b, c.clock.Now()); err != nil {
			return err
		}

		proposed, hasProposal := b.Proposed()
		switch {
		case b.Interval() != before:
			if err := c.ensureFree(ctx, repo, b.Interval(), b.ID()); err != nil {
				return err
			}
		case hasProposal && proposed != beforeProposed:
			if err := c.ensureFree(ctx, repo, proposed, b.ID()); err != nil {
				return err
			}
		}

		if err := repo.Update(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrSlotTaken
			}
			return errs.Mark(err, ErrDatabaseFailure)
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ensureFree is the critical section shared by create and interval swaps: the
// table lock is held until the surrounding transaction ends.
func (c *bookingCommandsImpl) ensureFree(ctx context.Context, repo shared.BookingRepository, interval slot.Interval, exclude uuid.UUID) error {
	if err := repo.LockForCreate(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseFailure)
	}
	clashes, err := repo.FindOverlapping(ctx, interval, exclude)
	if err != nil {
		return errs.Mark(err, ErrDatabaseFailure)
	}
	if len(clashes) > 0 {
		return errs.Wrapf(ErrSlotTaken, "%s - %s", interval.Start.Format(time.RFC3339), interval.End.Format(time.RFC3339))
	}
	return nil
}

func (c *bookingCommandsImpl) findService(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	svc, err := c.uow.Reads().Services().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseFailure)
	}
	return svc, nil
}

func (c *bookingCommandsImpl) parseStart(date, clockTime string) (time.Time, error) {
	day, err := dates.ParseDay(date, c.settings.Location())
	if err != nil {
		return time.Time{}, err
	}
	at, err := slot.ParseClockTime(clockTime)
	if err != nil {
		return time.Time{}, err
	}
	return at.On(day), nil
}

func (c *bookingCommandsImpl) targetInterval(b *booking.Booking, in TimeInput) (slot.Interval, error) {
	start, err := c.parseStart(in.Date, in.Time)
	if err != nil {
		return slot.Interval{}, err
	}
	duration := b.Duration()
	if in.Duration > 0 {
		duration = in.Duration
	}
	return booking.NewInterval(start, duration+b.Prep())
}

// mirrorBooking writes the booking to the external calendar. Failures are logged;
// the booking stays unmirrored and the next sync retries.
func (c *bookingCommandsImpl) mirrorBooking(ctx context.Context, b *booking.Booking) bool {
	s, err := c.settings.Load(ctx)
	if err != nil {
		slog.WarnContext(ctx, "mirror skipped: settings unavailable", "booking_id", b.ID().String(), "error", err.Error())
		return false
	}
	if err := c.mirror.Sync(ctx, b, s); err != nil {
		slog.WarnContext(ctx, "failed to mirror booking",
			"booking_id", b.ID().String(),
			"revision", b.Revision(),
			"error", err.Error())
		return false
	}
	return true
}

func (c *bookingCommandsImpl) notify(ctx context.Context, b *booking.Booking, kind shared.NotificationKind, audiences ...shared.Audience) {
	for _, a := range audiences {
		if err := c.notifier.Notify(ctx, shared.NewNotification(kind, a, b)); err != nil {
			slog.WarnContext(ctx, "notification failed",
				"booking_id", b.ID().String(),
				"kind", string(kind),
				"audience", string(a),
				"error", err.Error())
		}
	}
}

func newTokens() (booking.Tokens, error) {
	client, err := token.Generate()
	if err != nil {
		return booking.Tokens{}, errs.Mark(err, ErrTokenGeneration)
	}
	admin, err := token.Generate()
	if err != nil {
		return booking.Tokens{}, errs.Mark(err, ErrTokenGeneration)
	}
	return booking.Tokens{Client: client, Admin: admin}, nil
}
