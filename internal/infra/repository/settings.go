package repository

import (
	"context"
	"encoding/json"

	"booking-calendar-sync/internal/domain/calendar"
	"booking-calendar-sync/internal/domain/settings"
	"booking-calendar-sync/internal/infra"
	"booking-calendar-sync/internal/infra/db"
	"booking-calendar-sync/internal/pkg/pgconv"
)

const (
	settingsKeyBusiness     = "business"
	settingsKeyWatchChannel = "watch_channel"
)

// SettingsRepository stores JSON documents in the settings key/value table.
type SettingsRepository struct {
	db db.DBTX
}

func NewSettingsRepository(db db.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Load(ctx context.Context) (settings.Document, bool, error) {
	var doc settings.Document
	found, err := r.get(ctx, settingsKeyBusiness, &doc)
	return doc, found, err
}

func (r *SettingsRepository) Save(ctx context.Context, doc settings.Document) error {
	return r.put(ctx, settingsKeyBusiness, doc)
}

func (r *SettingsRepository) LoadWatchChannel(ctx context.Context) (calendar.Channel, bool, error) {
	var ch calendar.Channel
	found, err := r.get(ctx, settingsKeyWatchChannel, &ch)
	return ch, found, err
}

func (r *SettingsRepository) SaveWatchChannel(ctx context.Context, ch calendar.Channel) error {
	return r.put(ctx, settingsKeyWatchChannel, ch)
}

func (r *SettingsRepository) get(ctx context.Context, key string, dest any) (bool, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to load "+key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, infra.WrapRepoErr("failed to decode "+key, err, infra.KindDBFailure)
	}
	return true, nil
}

func (r *SettingsRepository) put(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return infra.WrapRepoErr("failed to encode "+key, err, infra.KindDBFailure)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, string(raw),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save "+key, err)
	}
	return nil
}
