package service

import (
	"strings"
	"time"

	"booking-calendar-sync/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDuration = errs.Class("service duration must be positive", errs.ErrValidation)
	ErrInvalidPrep     = errs.Class("preparation time cannot be negative", errs.ErrValidation)
	ErrNegativePrice   = errs.Class("price cannot be negative", errs.ErrValidation)
	ErrEmptyName       = errs.Class("service name is required", errs.ErrValidation)
)

type Service struct {
	id       uuid.UUID
	name     string
	duration time.Duration
	prep     time.Duration
	price    decimal.Decimal
	active   bool
}

func NewService(name string, duration, prep time.Duration, price decimal.Decimal) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if prep < 0 {
		return nil, ErrInvalidPrep
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &Service{
		id:       uuid.New(),
		name:     name,
		duration: duration,
		prep:     prep,
		price:    price,
		active:   true,
	}, nil
}

func ReconstructService(id uuid.UUID, name string, duration, prep time.Duration, price decimal.Decimal, active bool) *Service {
	return &Service{
		id:       id,
		name:     name,
		duration: duration,
		prep:     prep,
		price:    price,
		active:   active,
	}
}

func (s *Service) ID() uuid.UUID           { return s.id }
func (s *Service) Name() string            { return s.name }
func (s *Service) Duration() time.Duration { return s.duration }
func (s *Service) Prep() time.Duration     { return s.prep }
func (s *Service) Price() decimal.Decimal  { return s.price }
func (s *Service) Active() bool            { return s.active }

// Span is the time a booking of this service blocks: duration plus preparation buffer.
func (s *Service) Span() time.Duration {
	return s.duration + s.prep
}
