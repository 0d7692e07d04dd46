package repository

import (
	"context"
	"time"

	"booking-calendar-sync/internal/infra"
	"booking-calendar-sync/internal/infra/db"
	"booking-calendar-sync/internal/pkg/pgconv"
)

type WatermarkRepository struct {
	db db.DBTX
}

func NewWatermarkRepository(db db.DBTX) *WatermarkRepository {
	return &WatermarkRepository{db: db}
}

func (r *WatermarkRepository) Get(ctx context.Context, name string) (time.Time, bool, error) {
	var watermark time.Time
	err := r.db.QueryRow(ctx, `SELECT watermark FROM sync_watermarks WHERE name = $1`, name).Scan(&watermark)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, infra.WrapRepoErr("failed to get watermark", err)
	}
	return watermark, true, nil
}

func (r *WatermarkRepository) Set(ctx context.Context, name string, watermark time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sync_watermarks (name, watermark) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET watermark = EXCLUDED.watermark`,
		name, watermark,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set watermark", err)
	}
	return nil
}
