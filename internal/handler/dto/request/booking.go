package request

import (
	"booking-calendar-sync/internal/domain/booking"
	"booking-calendar-sync/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID     uuid.UUID `json:"service_id" binding:"required"`
	Date          string    `json:"date" binding:"required,datetime=2006-01-02"`
	Time          string    `json:"time" binding:"required,datetime=15:04"`
	Name          string    `json:"name" binding:"required,max=200"`
	Email         string    `json:"email" binding:"required,email,max=320"`
	Phone         string    `json:"phone" binding:"omitempty,max=50"`
	Note          string    `json:"note" binding:"omitempty,max=2000"`
	Language      string    `json:"language" binding:"omitempty,len=2"`
	ReminderOptIn bool      `json:"reminder_opt_in"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ServiceID:     r.ServiceID,
		Date:          r.Date,
		Time:          r.Time,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Note:          r.Note,
		Language:      r.Language,
		ReminderOptIn: r.ReminderOptIn,
	}
}

// TimeRequest names a new interval. DurationMin defaults to the booking's own duration.
type TimeRequest struct {
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string `json:"time" binding:"required,datetime=15:04"`
	DurationMin int    `json:"duration_min" binding:"omitempty,min=1,max=1440"`
}

func (r *TimeRequest) ToInput() commands.TimeInput {
	in := commands.TimeInput{Date: r.Date, Time: r.Time}
	if r.DurationMin > 0 {
		in.Duration = minutes(r.DurationMin)
	}
	return in
}

type DecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accept decline reject"`
}

func (r *DecisionRequest) ToDecision() booking.Decision {
	return booking.Decision(r.Decision)
}
