package repository

import (
	"context"
	"time"

	"booking-calendar-sync/internal/domain/availability"
	"booking-calendar-sync/internal/infra"
	"booking-calendar-sync/internal/infra/db"
	"booking-calendar-sync/internal/pkg/dates"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type availabilityRow struct {
	Date      time.Time `db:"date"`
	ServiceID uuid.UUID `db:"service_id"`
	Status    string    `db:"status"`
}

type AvailabilityRepository struct {
	db db.DBTX
}

func NewAvailabilityRepository(db db.DBTX) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// Upsert writes all entries in one statement; (date, service_id) is the conflict key,
// so recomputing a month replaces rows instead of duplicating them.
func (r *AvailabilityRepository) Upsert(ctx context.Context, entries []availability.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	days := make([]string, len(entries))
	services := make([]string, len(entries))
	statuses := make([]string, len(entries))
	for i, e := range entries {
		days[i] = dates.FormatDay(e.Date)
		services[i] = e.ServiceID.String()
		statuses[i] = string(e.Status)
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO availability_index (date, service_id, status)
		SELECT * FROM unnest($1::date[], $2::uuid[], $3::text[])
		ON CONFLICT (date, service_id) DO UPDATE
		SET status = EXCLUDED.status`,
		days, services, statuses,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert availability", err)
	}
	return nil
}

func (r *AvailabilityRepository) FindMonth(ctx context.Context, serviceID uuid.UUID, month time.Time) ([]availability.Entry, error) {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	rows, err := r.db.Query(ctx, `
		SELECT date, service_id, status
		FROM availability_index
		WHERE service_id = $1 AND date >= $2::date AND date < $3::date
		ORDER BY date`,
		serviceID, dates.FormatDay(first), dates.FormatDay(first.AddDate(0, 1, 0)),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query availability", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[availabilityRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan availability", err)
	}
	out := make([]availability.Entry, len(collected))
	for i, row := range collected {
		out[i] = availability.Entry{
			Date:      row.Date,
			ServiceID: row.ServiceID,
			Status:    availability.Status(row.Status),
		}
	}
	return out, nil
}
