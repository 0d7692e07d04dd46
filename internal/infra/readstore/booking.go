package readstore

import (
	"context"
	"time"

	"booking-calendar-sync/internal/infra"
	"booking-calendar-sync/internal/infra/db"
	"booking-calendar-sync/internal/pkg/pgconv"
	"booking-calendar-sync/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type bookingViewRow struct {
	ID            uuid.UUID          `db:"id"`
	ServiceID     uuid.UUID          `db:"service_id"`
	ServiceName   string             `db:"service_name"`
	Status        string             `db:"status"`
	StartAt       time.Time          `db:"start_at"`
	EndAt         time.Time          `db:"end_at"`
	ProposedStart pgtype.Timestamptz `db:"proposed_start"`
	ProposedEnd   pgtype.Timestamptz `db:"proposed_end"`
	ClientName    string             `db:"client_name"`
	ClientEmail   string             `db:"client_email"`
	Language      string             `db:"language"`
	ReminderOptIn bool               `db:"reminder_opt_in"`
	CreatedAt     time.Time          `db:"created_at"`
}

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByClientToken(ctx context.Context, clientToken string) (*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT b.id, b.service_id, s.name AS service_name, b.status, b.start_at, b.end_at,
		       b.proposed_start, b.proposed_end, b.client_name, b.client_email,
		       b.language, b.reminder_opt_in, b.created_at
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		WHERE b.client_token = $1`,
		clientToken,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booking view", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[bookingViewRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking view", err)
	}

	return &queries.BookingView{
		ID:            row.ID,
		ServiceID:     row.ServiceID,
		ServiceName:   row.ServiceName,
		Status:        row.Status,
		Start:         row.StartAt,
		End:           row.EndAt,
		ProposedStart: pgconv.TimePtrFromPgtype(row.ProposedStart),
		ProposedEnd:   pgconv.TimePtrFromPgtype(row.ProposedEnd),
		ClientName:    row.ClientName,
		ClientEmail:   row.ClientEmail,
		Language:      row.Language,
		ReminderOptIn: row.ReminderOptIn,
		CreatedAt:     row.CreatedAt,
	}, nil
}
