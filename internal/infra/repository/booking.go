package repository

import (
	"context"
	"time"

	"booking-calendar-sync/internal/domain/booking"
	"booking-calendar-sync/internal/domain/slot"
	"booking-calendar-sync/internal/infra"
	"booking-calendar-sync/internal/infra/db"
	"booking-calendar-sync/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, service_id, client_name, client_email, client_phone, client_note,
	start_at, end_at, duration_min, prep_min, status, external_event_id,
	client_token, admin_token, proposed_start, proposed_end, language, wait_window_min,
	reminder_opt_in, reminder_sent, revision, synced_revision, created_at, updated_at`

// overlapsRange matches blocking bookings whose interval, or proposed interval while
// awaiting the client's answer, overlaps tstzrange($1, $2).
const overlapsRange = `status NOT IN ('cancelled', 'rejected')
	AND (tstzrange(start_at, end_at, '[)') && tstzrange($1, $2, '[)')
	  OR (status = 'admin_proposal' AND proposed_start IS NOT NULL
	      AND tstzrange(proposed_start, proposed_end, '[)') && tstzrange($1, $2, '[)')))`

type bookingRow struct {
	ID              uuid.UUID          `db:"id"`
	ServiceID       uuid.UUID          `db:"service_id"`
	ClientName      string             `db:"client_name"`
	ClientEmail     string             `db:"client_email"`
	ClientPhone     string             `db:"client_phone"`
	ClientNote      string             `db:"client_note"`
	StartAt         time.Time          `db:"start_at"`
	EndAt           time.Time          `db:"end_at"`
	DurationMin     int32              `db:"duration_min"`
	PrepMin         int32              `db:"prep_min"`
	Status          string             `db:"status"`
	ExternalEventID pgtype.Text        `db:"external_event_id"`
	ClientToken     string             `db:"client_token"`
	AdminToken      string             `db:"admin_token"`
	ProposedStart   pgtype.Timestamptz `db:"proposed_start"`
	ProposedEnd     pgtype.Timestamptz `db:"proposed_end"`
	Language        string             `db:"language"`
	WaitWindowMin   int32              `db:"wait_window_min"`
	ReminderOptIn   bool               `db:"reminder_opt_in"`
	ReminderSent    bool               `db:"reminder_sent"`
	Revision        int64              `db:"revision"`
	SyncedRevision  int64              `db:"synced_revision"`
	CreatedAt       time.Time          `db:"created_at"`
	UpdatedAt       time.Time          `db:"updated_at"`
}

func (r bookingRow) toDomain() *booking.Booking {
	return booking.Reconstruct(booking.Snapshot{
		ID:        r.ID,
		ServiceID: r.ServiceID,
		Client: booking.Client{
			Name:  r.ClientName,
			Email: r.ClientEmail,
			Phone: r.ClientPhone,
			Note:  r.ClientNote,
		},
		Start:           r.StartAt,
		End:             r.EndAt,
		Duration:        time.Duration(r.DurationMin) * time.Minute,
		Prep:            time.Duration(r.PrepMin) * time.Minute,
		Status:          booking.Status(r.Status),
		ExternalEventID: pgconv.StringFromPgtype(r.ExternalEventID),
		ClientToken:     r.ClientToken,
		AdminToken:      r.AdminToken,
		ProposedStart:   pgconv.TimePtrFromPgtype(r.ProposedStart),
		ProposedEnd:     pgconv.TimePtrFromPgtype(r.ProposedEnd),
		Language:        r.Language,
		WaitWindow:      time.Duration(r.WaitWindowMin) * time.Minute,
		ReminderOptIn:   r.ReminderOptIn,
		ReminderSent:    r.ReminderSent,
		Revision:        r.Revision,
		SyncedRevision:  r.SyncedRevision,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	})
}

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

// LockForCreate must run inside a transaction. SHARE ROW EXCLUSIVE conflicts with
// itself and with row writes but not with plain reads.
func (r *BookingRepository) LockForCreate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `LOCK TABLE bookings IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return infra.WrapRepoErr("failed to lock bookings", err)
	}
	return nil
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, interval slot.Interval, exclude uuid.UUID) ([]*booking.Booking, error) {
	return r.list(ctx, "failed to find overlapping bookings",
		`SELECT `+bookingColumns+` FROM bookings WHERE `+overlapsRange+` AND id <> $3 ORDER BY start_at`,
		interval.Start, interval.End, exclude)
}

func (r *BookingRepository) ListBlocking(ctx context.Context, from, to time.Time) ([]*booking.Booking, error) {
	return r.list(ctx, "failed to list blocking bookings",
		`SELECT `+bookingColumns+` FROM bookings WHERE `+overlapsRange+` ORDER BY start_at`,
		from, to)
}

func (r *BookingRepository) ListUnmirrored(ctx context.Context, limit int) ([]*booking.Booking, error) {
	return r.list(ctx, "failed to list unmirrored bookings",
		`SELECT `+bookingColumns+` FROM bookings WHERE revision <> synced_revision ORDER BY updated_at LIMIT $1`,
		limit)
}

func (r *BookingRepository) ListReminderCandidates(ctx context.Context, from, to time.Time) ([]*booking.Booking, error) {
	return r.list(ctx, "failed to list reminder candidates",
		`SELECT `+bookingColumns+` FROM bookings
		 WHERE status = 'confirmed' AND reminder_opt_in AND NOT reminder_sent
		   AND start_at > $1 AND start_at <= $2
		 ORDER BY start_at`,
		from, to)
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	s := b.Snapshot()
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`,
		s.ID, s.ServiceID, s.Client.Name, s.Client.Email, s.Client.Phone, s.Client.Note,
		s.Start, s.End, minutes(s.Duration), minutes(s.Prep), string(s.Status), pgconv.StringToNullablePgtype(s.ExternalEventID),
		s.ClientToken, s.AdminToken, pgconv.TimePtrToPgtype(s.ProposedStart), pgconv.TimePtrToPgtype(s.ProposedEnd),
		s.Language, minutes(s.WaitWindow), s.ReminderOptIn, s.ReminderSent, s.Revision, s.SyncedRevision,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// Update stores the state changed by transitions. The mirrored revision and the
// reminder flag have dedicated conditional updates.
func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	s := b.Snapshot()
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET start_at = $2, end_at = $3, status = $4, proposed_start = $5, proposed_end = $6,
		    revision = $7, updated_at = $8
		WHERE id = $1`,
		s.ID, s.Start, s.End, string(s.Status),
		pgconv.TimePtrToPgtype(s.ProposedStart), pgconv.TimePtrToPgtype(s.ProposedEnd),
		s.Revision, s.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) MarkMirrored(ctx context.Context, id uuid.UUID, eventID string, revision int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET external_event_id = $2, synced_revision = $3
		WHERE id = $1 AND synced_revision < $3`,
		id, pgconv.StringToNullablePgtype(eventID), revision,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark booking mirrored", err)
	}
	return nil
}

func (r *BookingRepository) MarkReminderSent(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE bookings SET reminder_sent = true WHERE id = $1 AND reminder_sent = false`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark reminder sent", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.one(ctx, "booking by id", `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
}

func (r *BookingRepository) FindByClientToken(ctx context.Context, token string) (*booking.Booking, error) {
	return r.one(ctx, "booking by client token", `SELECT `+bookingColumns+` FROM bookings WHERE client_token = $1`, token)
}

func (r *BookingRepository) FindByExternalEventID(ctx context.Context, eventID string) (*booking.Booking, error) {
	return r.one(ctx, "booking by external event", `SELECT `+bookingColumns+` FROM bookings WHERE external_event_id = $1`, eventID)
}

func (r *BookingRepository) one(ctx context.Context, what, query string, args ...any) (*booking.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query "+what, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[bookingRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(what+" not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan "+what, err)
	}
	return row.toDomain(), nil
}

func (r *BookingRepository) list(ctx context.Context, msg, query string, args ...any) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[bookingRow])
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	out := make([]*booking.Booking, len(collected))
	for i, row := range collected {
		out[i] = row.toDomain()
	}
	return out, nil
}

func minutes(d time.Duration) int32 {
	return int32(d / time.Minute)
}
