package shared

import (
	"context"
	"time"

	"booking-calendar-sync/internal/domain/settings"
	"booking-calendar-sync/internal/pkg/errs"
)

// SettingsSource loads the typed settings once per request or job. The stored
// document wins over the defaults; the location is fixed per install.
type SettingsSource struct {
	uow      UnitOfWork
	loc      *time.Location
	defaults settings.Document
}

func NewSettingsSource(uow UnitOfWork, loc *time.Location, defaults settings.Document) *SettingsSource {
	return &SettingsSource{uow: uow, loc: loc, defaults: defaults}
}

func (s *SettingsSource) Location() *time.Location {
	return s.loc
}

func (s *SettingsSource) Load(ctx context.Context) (settings.Settings, error) {
	doc, found, err := s.uow.Reads().Settings().Load(ctx)
	if err != nil {
		return settings.Settings{}, errs.Wrap(err, "load settings")
	}
	if !found {
		doc = s.defaults
	}
	return doc.Parse(s.loc)
}
