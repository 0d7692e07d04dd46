package booking

import (
	"time"

	"booking-calendar-sync/internal/domain/slot"
	"booking-calendar-sync/internal/pkg/errs"
	"booking-calendar-sync/internal/pkg/token"

	"github.com/google/uuid"
)

// Booking is the ledger aggregate.
//
// revision counts locally originated changes to the state mirrored into the
// external calendar (interval swaps, cancellation, rejection). syncedRevision is
// the revision last written to the calendar. Changes observed from the calendar
// are applied without touching either counter.
type Booking struct {
	id              uuid.UUID
	serviceID       uuid.UUID
	client          Client
	interval        slot.Interval
	duration        time.Duration
	prep            time.Duration
	status          Status
	externalEventID string
	tokens          Tokens
	proposed        *slot.Interval
	language        string
	waitWindow      time.Duration
	reminderOptIn   bool
	reminderSent    bool
	revision        int64
	syncedRevision  int64
	createdAt       time.Time
	updatedAt       time.Time
}

type NewParams struct {
	ServiceID     uuid.UUID
	Start         time.Time
	Duration      time.Duration
	Prep          time.Duration
	Client        Client
	Tokens        Tokens
	Language      string
	WaitWindow    time.Duration
	ReminderOptIn bool
}

func NewBooking(p NewParams, now time.Time) (*Booking, error) {
	if p.Duration <= 0 || p.Prep < 0 {
		return nil, ErrInvalidDuration
	}
	if p.Start.Before(now) {
		return nil, ErrStartInPast
	}
	if err := p.Tokens.validate(); err != nil {
		return nil, err
	}
	interval, err := NewInterval(p.Start, p.Duration+p.Prep)
	if err != nil {
		return nil, err
	}
	lang := p.Language
	if lang == "" {
		lang = "en"
	}

	return &Booking{
		id:            uuid.New(),
		serviceID:     p.ServiceID,
		client:        p.Client,
		interval:      interval,
		duration:      p.Duration,
		prep:          p.Prep,
		status:        StatusPending,
		tokens:        p.Tokens,
		language:      lang,
		waitWindow:    p.WaitWindow,
		reminderOptIn: p.ReminderOptIn,
		revision:      1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Snapshot is the flat persisted form of a booking.
type Snapshot struct {
	ID              uuid.UUID
	ServiceID       uuid.UUID
	Client          Client
	Start           time.Time
	End             time.Time
	Duration        time.Duration
	Prep            time.Duration
	Status          Status
	ExternalEventID string
	ClientToken     string
	AdminToken      string
	ProposedStart   *time.Time
	ProposedEnd     *time.Time
	Language        string
	WaitWindow      time.Duration
	ReminderOptIn   bool
	ReminderSent    bool
	Revision        int64
	SyncedRevision  int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func Reconstruct(s Snapshot) *Booking {
	b := &Booking{
		id:              s.ID,
		serviceID:       s.ServiceID,
		client:          s.Client,
		interval:        slot.Interval{Start: s.Start, End: s.End},
		duration:        s.Duration,
		prep:            s.Prep,
		status:          s.Status,
		externalEventID: s.ExternalEventID,
		tokens:          Tokens{Client: s.ClientToken, Admin: s.AdminToken},
		language:        s.Language,
		waitWindow:      s.WaitWindow,
		reminderOptIn:   s.ReminderOptIn,
		reminderSent:    s.ReminderSent,
		revision:        s.Revision,
		syncedRevision:  s.SyncedRevision,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}
	if s.ProposedStart != nil && s.ProposedEnd != nil {
		b.proposed = &slot.Interval{Start: *s.ProposedStart, End: *s.ProposedEnd}
	}
	return b
}

func (b *Booking) Snapshot() Snapshot {
	s := Snapshot{
		ID:              b.id,
		ServiceID:       b.serviceID,
		Client:          b.client,
		Start:           b.interval.Start,
		End:             b.interval.End,
		Duration:        b.duration,
		Prep:            b.prep,
		Status:          b.status,
		ExternalEventID: b.externalEventID,
		ClientToken:     b.tokens.Client,
		AdminToken:      b.tokens.Admin,
		Language:        b.language,
		WaitWindow:      b.waitWindow,
		ReminderOptIn:   b.reminderOptIn,
		ReminderSent:    b.reminderSent,
		Revision:        b.revision,
		SyncedRevision:  b.syncedRevision,
		CreatedAt:       b.createdAt,
		UpdatedAt:       b.updatedAt,
	}
	if b.proposed != nil {
		start, end := b.proposed.Start, b.proposed.End
		s.ProposedStart, s.ProposedEnd = &start, &end
	}
	return s
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) ServiceID() uuid.UUID      { return b.serviceID }
func (b *Booking) Client() Client            { return b.client }
func (b *Booking) Interval() slot.Interval   { return b.interval }
func (b *Booking) Start() time.Time          { return b.interval.Start }
func (b *Booking) End() time.Time            { return b.interval.End }
func (b *Booking) Duration() time.Duration   { return b.duration }
func (b *Booking) Prep() time.Duration       { return b.prep }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) ExternalEventID() string   { return b.externalEventID }
func (b *Booking) ClientToken() string       { return b.tokens.Client }
func (b *Booking) AdminToken() string        { return b.tokens.Admin }
func (b *Booking) Language() string          { return b.language }
func (b *Booking) WaitWindow() time.Duration { return b.waitWindow }
func (b *Booking) ReminderOptIn() bool       { return b.reminderOptIn }
func (b *Booking) ReminderSent() bool        { return b.reminderSent }
func (b *Booking) Revision() int64           { return b.revision }
func (b *Booking) SyncedRevision() int64     { return b.syncedRevision }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
func (b *Booking) HasExternalEvent() bool    { return b.externalEventID != "" }
func (b *Booking) IsActive() bool            { return b.status.Blocks() }
func (b *Booking) NeedsMirror() bool         { return b.revision != b.syncedRevision }
func (b *Booking) IsConfirmed() bool         { return b.status == StatusConfirmed }

// Proposed returns the pending alternative interval, if any.
func (b *Booking) Proposed() (slot.Interval, bool) {
	if b.proposed == nil {
		return slot.Interval{}, false
	}
	return *b.proposed, true
}

// VerifyAdminToken compares in constant time.
func (b *Booking) VerifyAdminToken(provided string) error {
	if !token.Equal(b.tokens.Admin, provided) {
		return ErrAdminTokenMismatch
	}
	return nil
}

// Accept confirms a pending booking.
func (b *Booking) Accept(now time.Time) error {
	if err := b.requireStatus(StatusPending); err != nil {
		return err
	}
	b.status = StatusConfirmed
	b.touch(now)
	return nil
}

func (b *Booking) Reject(now time.Time) error {
	if err := b.requireStatus(StatusPending); err != nil {
		return err
	}
	b.status = StatusRejected
	b.bump(now)
	return nil
}

// RequestReschedule records the client's wished interval; the actual interval is untouched.
func (b *Booking) RequestReschedule(wanted slot.Interval, now time.Time) error {
	if err := b.requireStatus(StatusPending, StatusConfirmed, StatusRescheduleRequested); err != nil {
		return err
	}
	if wanted.Start.Before(now) {
		return ErrStartInPast
	}
	b.status = StatusRescheduleRequested
	b.proposed = &wanted
	b.touch(now)
	return nil
}

func (b *Booking) AcceptReschedule(now time.Time) error {
	if err := b.requireStatus(StatusRescheduleRequested); err != nil {
		return err
	}
	return b.swapProposed(now)
}

// ProposeTime offers an alternative interval to the client. Re-proposing replaces the offer.
func (b *Booking) ProposeTime(offer slot.Interval, now time.Time) error {
	if err := b.requireStatus(StatusConfirmed, StatusAdminProposal); err != nil {
		return err
	}
	if offer.Start.Before(now) {
		return ErrStartInPast
	}
	b.status = StatusAdminProposal
	b.proposed = &offer
	b.touch(now)
	return nil
}

func (b *Booking) RevokeProposal(now time.Time) error {
	if err := b.requireStatus(StatusAdminProposal); err != nil {
		return err
	}
	b.status = StatusConfirmed
	b.proposed = nil
	b.touch(now)
	return nil
}

func (b *Booking) AcceptProposal(now time.Time) error {
	if err := b.requireStatus(StatusAdminProposal); err != nil {
		return err
	}
	return b.swapProposed(now)
}

// DeclineProposal clears any proposed interval and returns the booking to pending
// from every non-terminal status.
func (b *Booking) DeclineProposal(now time.Time) error {
	if b.status.IsTerminal() {
		return b.transitionError()
	}
	b.status = StatusPending
	b.proposed = nil
	b.touch(now)
	return nil
}

// Cancel is a locally originated cancellation.
func (b *Booking) Cancel(now time.Time) error {
	if b.status.IsTerminal() {
		return b.transitionError()
	}
	b.status = StatusCancelled
	b.proposed = nil
	b.bump(now)
	return nil
}

// ApplyExternalCancellation reflects a cancellation observed in the external calendar.
// It reports whether anything changed.
func (b *Booking) ApplyExternalCancellation(now time.Time) bool {
	if b.status.IsTerminal() {
		return false
	}
	b.status = StatusCancelled
	b.proposed = nil
	b.touch(now)
	return true
}

// ApplyExternalTimes reflects a time change observed in the external calendar.
// It reports whether anything changed.
func (b *Booking) ApplyExternalTimes(start, end time.Time, now time.Time) bool {
	if b.status.IsTerminal() || !end.After(start) {
		return false
	}
	if b.interval.Start.Equal(start) && b.interval.End.Equal(end) {
		return false
	}
	b.interval = slot.Interval{Start: start, End: end}
	b.touch(now)
	return true
}

// MarkMirrored records that the external calendar reflects the given revision.
// An empty event id means the external event was removed.
func (b *Booking) MarkMirrored(eventID string, revision int64) {
	b.externalEventID = eventID
	b.syncedRevision = revision
}

func (b *Booking) MarkReminderSent() {
	b.reminderSent = true
}

func (b *Booking) swapProposed(now time.Time) error {
	if b.proposed == nil {
		return ErrNoProposal
	}
	b.interval = *b.proposed
	b.proposed = nil
	b.status = StatusConfirmed
	b.bump(now)
	return nil
}

func (b *Booking) requireStatus(allowed ...Status) error {
	for _, s := range allowed {
		if b.status == s {
			return nil
		}
	}
	return b.transitionError()
}

func (b *Booking) transitionError() error {
	return errs.Wrapf(ErrInvalidTransition, "booking %s is %s", b.id, b.status)
}

func (b *Booking) touch(now time.Time) {
	b.updatedAt = now
}

func (b *Booking) bump(now time.Time) {
	b.revision++
	b.touch(now)
}
