package shared

import (
	"time"

	"booking-calendar-sync/internal/domain/booking"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotifyBookingCreated      NotificationKind = "booking_created"
	NotifyBookingAccepted     NotificationKind = "booking_accepted"
	NotifyBookingRejected     NotificationKind = "booking_rejected"
	NotifyRescheduleRequested NotificationKind = "reschedule_requested"
	NotifyRescheduleAccepted  NotificationKind = "reschedule_accepted"
	NotifyProposalSent        NotificationKind = "proposal_sent"
	NotifyProposalAccepted    NotificationKind = "proposal_accepted"
	NotifyProposalDeclined    NotificationKind = "proposal_declined"
	NotifyProposalRevoked     NotificationKind = "proposal_revoked"
	NotifyCancelledByClient   NotificationKind = "cancelled_by_client"
	NotifyCancelledBySync     NotificationKind = "cancelled_by_sync"
	NotifyRescheduledBySync   NotificationKind = "rescheduled_by_sync"
	NotifyReminderDue         NotificationKind = "reminder_due"
)

type Audience string

const (
	AudienceClient Audience = "client"
	AudienceAdmin  Audience = "admin"
)

// Notification is the structured data handed to the notifier at a transition point.
type Notification struct {
	Kind          NotificationKind `json:"kind"`
	Audience      Audience         `json:"audience"`
	BookingID     uuid.UUID        `json:"booking_id"`
	Status        booking.Status   `json:"status"`
	Language      string           `json:"language"`
	ClientName    string           `json:"client_name"`
	ClientEmail   string           `json:"client_email"`
	Start         time.Time        `json:"start"`
	End           time.Time        `json:"end"`
	ProposedStart *time.Time       `json:"proposed_start,omitempty"`
	ProposedEnd   *time.Time       `json:"proposed_end,omitempty"`
	ClientToken   string           `json:"client_token,omitempty"`
	AdminToken    string           `json:"admin_token,omitempty"`
}

// NewNotification fills the booking fields. Only the audience's own token is included.
func NewNotification(kind NotificationKind, audience Audience, b *booking.Booking) Notification {
	n := Notification{
		Kind:        kind,
		Audience:    audience,
		BookingID:   b.ID(),
		Status:      b.Status(),
		Language:    b.Language(),
		ClientName:  b.Client().Name,
		ClientEmail: b.Client().Email,
		Start:       b.Start(),
		End:         b.End(),
	}
	if p, ok := b.Proposed(); ok {
		n.ProposedStart, n.ProposedEnd = &p.Start, &p.End
	}
	switch audience {
	case AudienceClient:
		n.ClientToken = b.ClientToken()
	case AudienceAdmin:
		n.AdminToken = b.AdminToken()
	}
	return n
}
