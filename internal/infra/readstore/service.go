package readstore

import (
	"context"

	"booking-calendar-sync/internal/infra"
	"booking-calendar-sync/internal/infra/db"
	"booking-calendar-sync/internal/pkg/pgconv"
	"booking-calendar-sync/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type serviceViewRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	DurationMin int32     `db:"duration_min"`
	PrepMin     int32     `db:"prep_min"`
	Price       string    `db:"price"`
}

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(db db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: db}
}

func (r *ServiceReadStore) ListActive(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, duration_min, prep_min, price::text AS price
		FROM services
		WHERE active
		ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[serviceViewRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan services", err)
	}

	views := make([]*queries.ServiceView, 0, len(collected))
	for _, row := range collected {
		price, err := pgconv.DecimalFromText(row.Price)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid service price", err, infra.KindDBFailure)
		}
		views = append(views, &queries.ServiceView{
			ID:          row.ID,
			Name:        row.Name,
			DurationMin: int(row.DurationMin),
			PrepMin:     int(row.PrepMin),
			Price:       price,
		})
	}
	return views, nil
}
