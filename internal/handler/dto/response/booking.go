package response

import (
	"time"

	"booking-calendar-sync/internal/usecase/commands"
	"booking-calendar-sync/internal/usecase/queries"
)

type CreateBookingResponse struct {
	BookingID   string    `json:"booking_id"`
	ClientToken string    `json:"client_token"`
	Status      string    `json:"status"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Mirrored    bool      `json:"mirrored"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID:   r.BookingID.String(),
		ClientToken: r.ClientToken,
		Status:      string(r.Status),
		Start:       r.Start,
		End:         r.End,
		Mirrored:    r.Mirrored,
	}
}

type BookingResponse struct {
	ID            string     `json:"id"`
	ServiceID     string     `json:"service_id"`
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
	CreatedAt     int64      `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:            v.ID.String(),
		ServiceID:     v.ServiceID.String(),
		ServiceName:   v.ServiceName,
		Status:        v.Status,
		Start:         v.Start,
		End:           v.End,
		ProposedStart: v.ProposedStart,
		ProposedEnd:   v.ProposedEnd,
		ClientName:    v.ClientName,
		ClientEmail:   v.ClientEmail,
		Language:      v.Language,
		ReminderOptIn: v.ReminderOptIn,
		CreatedAt:     v.CreatedAt.Unix(),
	}
}

type StatusResponse struct {
	Status string `json:"status"`
}
