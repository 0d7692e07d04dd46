//go:build unit || e2e

// Package fakes holds in-memory implementations of the use case ports.
package fakes

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"booking-calendar-sync/internal/domain/availability"
	"booking-calendar-sync/internal/domain/booking"
	"booking-calendar-sync/internal/domain/calendar"
	"booking-calendar-sync/internal/domain/service"
	"booking-calendar-sync/internal/domain/settings"
	"booking-calendar-sync/internal/domain/slot"
	"booking-calendar-sync/internal/infra"
	"booking-calendar-sync/internal/pkg/dates"
	"booking-calendar-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

type availabilityKey struct {
	date      string
	serviceID uuid.UUID
}

type state struct {
	bookings     map[uuid.UUID]booking.Snapshot
	services     map[uuid.UUID]*service.Service
	availability map[availabilityKey]availability.Entry
	watermarks   map[string]time.Time
	settings     *settings.Document
	channel      *calendar.Channel
}

func (s *state) clone() *state {
	c := &state{
		bookings:     maps.Clone(s.bookings),
		services:     maps.Clone(s.services),
		availability: maps.Clone(s.availability),
		watermarks:   maps.Clone(s.watermarks),
	}
	if s.settings != nil {
		doc := *s.settings
		c.settings = &doc
	}
	if s.channel != nil {
		ch := *s.channel
		c.channel = &ch
	}
	return c
}

// UoW is a unit of work over process memory. Transactions are fully serialised and
// roll back on error, which is what the table lock gives the create path.
type UoW struct {
	txMu sync.Mutex // held for the whole of a write transaction
	mu   sync.Mutex // guards st
	st   *state

	// FailCreate, when set, is returned by the next BookingRepository.Create.
	FailCreate error
	// StoreZone, when set, is the zone stored booking times come back in, the way
	// timestamptz columns are read in the process zone.
	StoreZone *time.Location
}

var _ shared.UnitOfWork = (*UoW)(nil)

func NewUoW() *UoW {
	return &UoW{st: &state{
		bookings:     map[uuid.UUID]booking.Snapshot{},
		services:     map[uuid.UUID]*service.Service{},
		availability: map[availabilityKey]availability.Entry{},
		watermarks:   map[string]time.Time{},
	}}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.txMu.Lock()
	defer u.txMu.Unlock()

	u.mu.Lock()
	backup := u.st.clone()
	u.mu.Unlock()

	if err := fn(ctx, &memTx{u: u}); err != nil {
		u.mu.Lock()
		u.st = backup
		u.mu.Unlock()
		return err
	}
	return nil
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &memTx{u: u})
}

func (u *UoW) Reads() shared.Tx {
	return &memTx{u: u}
}

// AddService seeds a service.
func (u *UoW) AddService(s *service.Service) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.services[s.ID()] = s
}

// AddBooking seeds a booking as stored.
func (u *UoW) AddBooking(b *booking.Booking) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.bookings[b.ID()] = u.stored(b.Snapshot())
}

func (u *UoW) stored(s booking.Snapshot) booking.Snapshot {
	if u.StoreZone == nil {
		return s
	}
	s.Start, s.End = s.Start.In(u.StoreZone), s.End.In(u.StoreZone)
	s.CreatedAt, s.UpdatedAt = s.CreatedAt.In(u.StoreZone), s.UpdatedAt.In(u.StoreZone)
	if s.ProposedStart != nil && s.ProposedEnd != nil {
		start, end := s.ProposedStart.In(u.StoreZone), s.ProposedEnd.In(u.StoreZone)
		s.ProposedStart, s.ProposedEnd = &start, &end
	}
	return s
}

// Booking returns the stored state of a booking.
func (u *UoW) Booking(id uuid.UUID) (*booking.Booking, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.st.bookings[id]
	if !ok {
		return nil, false
	}
	return booking.Reconstruct(s), true
}

func (u *UoW) BookingCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.st.bookings)
}

// AvailabilityRows returns the index sorted by date, then service.
func (u *UoW) AvailabilityRows() []availability.Entry {
	u.mu.Lock()
	defer u.mu.Unlock()
	rows := slices.Collect(maps.Values(u.st.availability))
	slices.SortFunc(rows, func(a, b availability.Entry) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return slices.Compare(a.ServiceID[:], b.ServiceID[:])
	})
	return rows
}

func (u *UoW) SetSettings(doc settings.Document) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.settings = &doc
}

func (u *UoW) SetChannel(ch calendar.Channel) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.channel = &ch
}

func (u *UoW) Channel() (calendar.Channel, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.st.channel == nil {
		return calendar.Channel{}, false
	}
	return *u.st.channel, true
}

func (u *UoW) Watermark(name string) (time.Time, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	w, ok := u.st.watermarks[name]
	return w, ok
}

func (u *UoW) SetWatermark(name string, t time.Time) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.st.watermarks[name] = t
}

type memTx struct {
	u *UoW
}

func (t *memTx) Bookings() shared.BookingRepository          { return &bookingRepo{u: t.u} }
func (t *memTx) Services() shared.ServiceRepository          { return &serviceRepo{u: t.u} }
func (t *memTx) Availability() shared.AvailabilityRepository { return &availabilityRepo{u: t.u} }
func (t *memTx) Watermarks() shared.WatermarkRepository      { return &watermarkRepo{u: t.u} }
func (t *memTx) Settings() shared.SettingsRepository         { return &settingsRepo{u: t.u} }

type bookingRepo struct {
	u *UoW
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func (r *bookingRepo) LockForCreate(context.Context) error { return nil }

func (r *bookingRepo) FindOverlapping(_ context.Context, interval slot.Interval, exclude uuid.UUID) ([]*booking.Booking, error) {
	return r.filter(func(s booking.Snapshot) bool {
		return s.ID != exclude && blocksRange(s, interval.Start, interval.End)
	}), nil
}

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	if err := r.u.FailCreate; err != nil {
		r.u.FailCreate = nil
		return err
	}
	r.u.st.bookings[b.ID()] = r.u.stored(b.Snapshot())
	return nil
}

func (r *bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	stored, ok := r.u.st.bookings[b.ID()]
	if !ok {
		return notFound("update booking")
	}
	next := r.u.stored(b.Snapshot())
	// the mirror bookkeeping has its own conditional writes
	next.ExternalEventID = stored.ExternalEventID
	next.SyncedRevision = stored.SyncedRevision
	next.ReminderSent = stored.ReminderSent
	r.u.st.bookings[b.ID()] = next
	return nil
}

func (r *bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	s, ok := r.u.st.bookings[id]
	if !ok {
		return nil, notFound("find booking")
	}
	return booking.Reconstruct(s), nil
}

func (r *bookingRepo) FindByClientToken(_ context.Context, token string) (*booking.Booking, error) {
	found := r.filter(func(s booking.Snapshot) bool { return s.ClientToken == token })
	if len(found) == 0 {
		return nil, notFound("find booking by token")
	}
	return found[0], nil
}

func (r *bookingRepo) FindByExternalEventID(_ context.Context, eventID string) (*booking.Booking, error) {
	found := r.filter(func(s booking.Snapshot) bool { return eventID != "" && s.ExternalEventID == eventID })
	if len(found) == 0 {
		return nil, notFound("find booking by event")
	}
	return found[0], nil
}

func (r *bookingRepo) ListBlocking(_ context.Context, from, to time.Time) ([]*booking.Booking, error) {
	return r.filter(func(s booking.Snapshot) bool { return blocksRange(s, from, to) }), nil
}

func (r *bookingRepo) ListUnmirrored(_ context.Context, limit int) ([]*booking.Booking, error) {
	out := r.filter(func(s booking.Snapshot) bool { return s.Revision != s.SyncedRevision })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *bookingRepo) MarkMirrored(_ context.Context, id uuid.UUID, eventID string, revision int64) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	s, ok := r.u.st.bookings[id]
	if !ok {
		return notFound("mark mirrored")
	}
	if s.SyncedRevision < revision {
		s.ExternalEventID = eventID
		s.SyncedRevision = revision
		r.u.st.bookings[id] = s
	}
	return nil
}

func (r *bookingRepo) ListReminderCandidates(_ context.Context, from, to time.Time) ([]*booking.Booking, error) {
	return r.filter(func(s booking.Snapshot) bool {
		return s.Status == booking.StatusConfirmed && s.ReminderOptIn && !s.ReminderSent &&
			!s.Start.Before(from) && s.Start.Before(to)
	}), nil
}

func (r *bookingRepo) MarkReminderSent(_ context.Context, id uuid.UUID) (bool, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	s, ok := r.u.st.bookings[id]
	if !ok || s.ReminderSent {
		return false, nil
	}
	s.ReminderSent = true
	r.u.st.bookings[id] = s
	return true, nil
}

func (r *bookingRepo) filter(keep func(booking.Snapshot) bool) []*booking.Booking {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	var out []*booking.Booking
	for _, s := range r.u.st.bookings {
		if keep(s) {
			out = append(out, booking.Reconstruct(s))
		}
	}
	slices.SortFunc(out, func(a, b *booking.Booking) int { return a.Start().Compare(b.Start()) })
	return out
}

func blocksRange(s booking.Snapshot, from, to time.Time) bool {
	if !s.Status.Blocks() {
		return false
	}
	if s.Start.Before(to) && s.End.After(from) {
		return true
	}
	return s.Status == booking.StatusAdminProposal && s.ProposedStart != nil &&
		s.ProposedStart.Before(to) && s.ProposedEnd.After(from)
}

type serviceRepo struct {
	u *UoW
}

func (r *serviceRepo) FindByID(_ context.Context, id uuid.UUID) (*service.Service, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	s, ok := r.u.st.services[id]
	if !ok {
		return nil, notFound("find service")
	}
	return s, nil
}

func (r *serviceRepo) ListActive(context.Context) ([]*service.Service, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	var out []*service.Service
	for _, s := range r.u.st.services {
		if s.Active() {
			out = append(out, s)
		}
	}
	slices.SortFunc(out, func(a, b *service.Service) int { return strings.Compare(a.ID().String(), b.ID().String()) })
	return out, nil
}

type availabilityRepo struct {
	u *UoW
}

func (r *availabilityRepo) Upsert(_ context.Context, entries []availability.Entry) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for _, e := range entries {
		r.u.st.availability[availabilityKey{date: dates.FormatDay(e.Date), serviceID: e.ServiceID}] = e
	}
	return nil
}

func (r *availabilityRepo) FindMonth(_ context.Context, serviceID uuid.UUID, month time.Time) ([]availability.Entry, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	prefix := dates.FormatMonth(month)
	var out []availability.Entry
	for k, e := range r.u.st.availability {
		if k.serviceID == serviceID && k.date[:7] == prefix {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b availability.Entry) int { return a.Date.Compare(b.Date) })
	return out, nil
}

type watermarkRepo struct {
	u *UoW
}

func (r *watermarkRepo) Get(_ context.Context, name string) (time.Time, bool, error) {
	t, ok := r.u.Watermark(name)
	return t, ok, nil
}

func (r *watermarkRepo) Set(_ context.Context, name string, watermark time.Time) error {
	r.u.SetWatermark(name, watermark)
	return nil
}

type settingsRepo struct {
	u *UoW
}

func (r *settingsRepo) Load(context.Context) (settings.Document, bool, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	if r.u.st.settings == nil {
		return settings.Document{}, false, nil
	}
	return *r.u.st.settings, true, nil
}

func (r *settingsRepo) Save(_ context.Context, doc settings.Document) error {
	r.u.SetSettings(doc)
	return nil
}

func (r *settingsRepo) LoadWatchChannel(context.Context) (calendar.Channel, bool, error) {
	ch, ok := r.u.Channel()
	return ch, ok, nil
}

func (r *settingsRepo) SaveWatchChannel(_ context.Context, ch calendar.Channel) error {
	r.u.SetChannel(ch)
	return nil
}
