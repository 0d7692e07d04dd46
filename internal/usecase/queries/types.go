package queries

import (
	"time"

	"booking-calendar-sync/internal/domain/availability"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ServiceView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	DurationMin int             `json:"duration_min"`
	PrepMin     int             `json:"prep_min"`
	Price       decimal.Decimal `json:"price"`
}

// BookingView is what the client sees through their token. The admin token is never exposed.
type BookingView struct {
	ID            uuid.UUID  `json:"id"`
	ServiceID     uuid.UUID  `json:"service_id"`
	ServiceName   string     `json:"service_name"`
	Status        string     `json:"status"`
	Start         time.Time  `json:"start"`
	End           time.Time  `json:"end"`
	ProposedStart *time.Time `json:"proposed_start,omitempty"`
	ProposedEnd   *time.Time `json:"proposed_end,omitempty"`
	ClientName    string     `json:"client_name"`
	ClientEmail   string     `json:"client_email"`
	Language      string     `json:"language"`
	ReminderOptIn bool       `json:"reminder_opt_in"`
	CreatedAt     time.Time  `json:"created_at"`
}

type DaySlots struct {
	Date  string      `json:"date"`
	Slots []time.Time `json:"slots"`
}

type AvailabilityView struct {
	ServiceID uuid.UUID  `json:"service_id"`
	From      string     `json:"from"`
	To        string     `json:"to"`
	Days      []DaySlots `json:"days"`
}

type MonthlyAvailabilityView struct {
	ServiceID uuid.UUID                      `json:"service_id"`
	Month     string                         `json:"month"`
	Days      map[string]availability.Status `json:"days"`
}
