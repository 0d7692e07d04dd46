package queries

import (
	"context"

	"booking-calendar-sync/internal/domain/settings"
	"booking-calendar-sync/internal/usecase/shared"
)

type SettingsQueries interface {
	GetSettings(ctx context.Context) (settings.Document, error)
}

type settingsQueriesImpl struct {
	source *shared.SettingsSource
}

func NewSettingsQueries(source *shared.SettingsSource) SettingsQueries {
	return &settingsQueriesImpl{source: source}
}

// GetSettings returns the effective document: stored values, or the install defaults.
func (q *settingsQueriesImpl) GetSettings(ctx context.Context) (settings.Document, error) {
	s, err := q.source.Load(ctx)
	if err != nil {
		return settings.Document{}, err
	}
	return s.Document(), nil
}
