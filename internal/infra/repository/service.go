package repository

import (
	"context"
	"time"

	"booking-calendar-sync/internal/domain/service"
	"booking-calendar-sync/internal/infra"
	"booking-calendar-sync/internal/infra/db"
	"booking-calendar-sync/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const serviceColumns = `id, name, duration_min, prep_min, price::text AS price, active`

type serviceRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	DurationMin int32     `db:"duration_min"`
	PrepMin     int32     `db:"prep_min"`
	Price       string    `db:"price"`
	Active      bool      `db:"active"`
}

func (r serviceRow) toDomain() (*service.Service, error) {
	price, err := pgconv.DecimalFromText(r.Price)
	if err != nil {
		return nil, err
	}
	return service.ReconstructService(
		r.ID,
		r.Name,
		time.Duration(r.DurationMin)*time.Minute,
		time.Duration(r.PrepMin)*time.Minute,
		price,
		r.Active,
	), nil
}

type ServiceRepository struct {
	db db.DBTX
}

func NewServiceRepository(db db.DBTX) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	rows, err := r.db.Query(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query service", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[serviceRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan service", err)
	}
	svc, err := row.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("invalid service price", err)
	}
	return svc, nil
}

func (r *ServiceRepository) ListActive(ctx context.Context) ([]*service.Service, error) {
	rows, err := r.db.Query(ctx, `SELECT `+serviceColumns+` FROM services WHERE active ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[serviceRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan services", err)
	}
	out := make([]*service.Service, 0, len(collected))
	for _, row := range collected {
		svc, err := row.toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("invalid service price", err)
		}
		out = append(out, svc)
	}
	return out, nil
}
